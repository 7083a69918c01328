package i18n

import (
	"os"
	"strings"
)

var CurrentLang = "en"

// Diccionario simple: Clave -> Mapa de idiomas
var messages = map[string]map[string]string{
	"config_missing": {
		"en": "No config file found, using defaults.",
		"es": "No se encontró fichero de configuración, usando valores por defecto.",
	},
	"config_read_error": {
		"en": "Error reading config: %v",
		"es": "Error leyendo la configuración: %v",
	},
	"config_decode_error": {
		"en": "Error decoding config: %v",
		"es": "Error decodificando la configuración: %v",
	},
	"banner_title": {
		"en": "🚀 STORAGE SCAN UPLOADER STARTING",
		"es": "🚀 INICIANDO STORAGE SCAN UPLOADER",
	},
	"profile_detected": {
		"en": "✓ Existing profile detected - Your MetaMask setup will be restored",
		"es": "✓ Perfil existente detectado - Tu configuración de MetaMask será restaurada",
	},
	"browser_starting": {
		"en": "Setting up Chrome browser...",
		"es": "Preparando el navegador Chrome...",
	},
	"browser_profile": {
		"en": "Using profile directory: %s",
		"es": "Usando directorio de perfil: %s",
	},
	"browser_system": {
		"en": "Using system browser: %s",
		"es": "Usando navegador del sistema: %s",
	},
	"browser_download_fail": {
		"en": "System browser launch failed, falling back to managed download...",
		"es": "Falló el navegador del sistema, descargando uno gestionado...",
	},
	"browser_ready": {
		"en": "✓ Chrome browser launched successfully",
		"es": "✓ Navegador Chrome iniciado correctamente",
	},
	"prompt_batch_size": {
		"en": "How many images would you like to upload?",
		"es": "¿Cuántas imágenes quieres subir?",
	},
	"prompt_tx_delay": {
		"en": "→ Enter transaction wait time in seconds",
		"es": "→ Introduce el tiempo de espera de transacción en segundos",
	},
	"prompt_positive": {
		"en": "⚠️  Please enter a positive number",
		"es": "⚠️  Por favor, introduce un número positivo",
	},
	"prompt_numeric": {
		"en": "⚠️  Please enter a valid number",
		"es": "⚠️  Por favor, introduce un número válido",
	},
	"tx_delay_set": {
		"en": "✓ Transaction wait time: %d seconds",
		"es": "✓ Tiempo de espera de transacción: %d segundos",
	},
	"nav_loading": {
		"en": "→ Loading page...",
		"es": "→ Cargando página...",
	},
	"nav_loaded": {
		"en": "✓ Page loaded",
		"es": "✓ Página cargada",
	},
	"connect_looking": {
		"en": "Looking for 'Connect Wallet' button...",
		"es": "Buscando el botón 'Connect Wallet'...",
	},
	"connect_found": {
		"en": "✓ Found wallet connection button",
		"es": "✓ Botón de conexión de cartera encontrado",
	},
	"connect_missing": {
		"en": "❌ Connect wallet button not found!",
		"es": "❌ ¡No se encontró el botón de conexión de cartera!",
	},
	"wallet_press_enter": {
		"en": "\n→ Press Enter once wallet is connected...",
		"es": "\n→ Pulsa Enter cuando la cartera esté conectada...",
	},
	"net_missing": {
		"en": "no internet connection available",
		"es": "no hay conexión a internet disponible",
	},
	"downloading_n": {
		"en": "\nDownloading %d random images...",
		"es": "\nDescargando %d imágenes aleatorias...",
	},
	"downloading_one": {
		"en": "Downloading image %d/%d...",
		"es": "Descargando imagen %d/%d...",
	},
	"image_ok": {
		"en": "✓ Image %d downloaded successfully",
		"es": "✓ Imagen %d descargada correctamente",
	},
	"image_attempt_fail": {
		"en": "⚠️  Attempt %d: failed to download image %d: %v",
		"es": "⚠️  Intento %d: fallo descargando la imagen %d: %v",
	},
	"image_failed_all": {
		"en": "❌ Failed to download image %d after %d attempts",
		"es": "❌ No se pudo descargar la imagen %d tras %d intentos",
	},
	"partial_warning": {
		"en": "⚠️  Warning: Only %d out of %d images were downloaded",
		"es": "⚠️  Aviso: Solo se descargaron %d de %d imágenes",
	},
	"all_downloaded": {
		"en": "✓ Successfully downloaded all %d images",
		"es": "✓ Se descargaron las %d imágenes correctamente",
	},
	"item_processing": {
		"en": "📌 Processing Image %d/%d",
		"es": "📌 Procesando imagen %d/%d",
	},
	"stage_preparing": {
		"en": "⏳ Preparing file upload...",
		"es": "⏳ Preparando subida del archivo...",
	},
	"stage_ready": {
		"en": "✅ File ready",
		"es": "✅ Archivo listo",
	},
	"trigger_starting": {
		"en": "⏳ Initiating upload...",
		"es": "⏳ Iniciando la subida...",
	},
	"trigger_started": {
		"en": "✅ Upload started",
		"es": "✅ Subida iniciada",
	},
	"popup_waiting": {
		"en": "⏳ Waiting for MetaMask...",
		"es": "⏳ Esperando a MetaMask...",
	},
	"popup_detected": {
		"en": "👉 MetaMask popup detected",
		"es": "👉 Ventana de MetaMask detectada",
	},
	"success_waiting": {
		"en": "⏳ Waiting %d seconds for transaction completion...",
		"es": "⏳ Esperando %d segundos a que complete la transacción...",
	},
	"success_missed": {
		"en": "⚠️  Upload completion not detected yet",
		"es": "⚠️  Aún no se detecta que la subida haya terminado",
	},
	"success_retry": {
		"en": "🔄 Retrying...",
		"es": "🔄 Reintentando...",
	},
	"success_done": {
		"en": "🎉 Upload completed successfully!",
		"es": "🎉 ¡Subida completada correctamente!",
	},
	"reload_next": {
		"en": "🔄 Refreshing page for next upload...",
		"es": "🔄 Recargando la página para la siguiente subida...",
	},
	"reload_done": {
		"en": "✅ Page refreshed",
		"es": "✅ Página recargada",
	},
	"item_error": {
		"en": "❌ Image %d failed at step '%s': %v",
		"es": "❌ La imagen %d falló en el paso '%s': %v",
	},
	"item_skipped": {
		"en": "⏭️  Skipping image %d",
		"es": "⏭️  Omitiendo la imagen %d",
	},
	"batch_abandoned": {
		"en": "🛑 Remaining uploads abandoned by operator",
		"es": "🛑 Subidas restantes abandonadas por el operador",
	},
	"batch_summary": {
		"en": "📊 Successfully processed %d/%d images",
		"es": "📊 Procesadas correctamente %d/%d imágenes",
	},
	"confirm_looking": {
		"en": "⏳ Looking for confirm button...",
		"es": "⏳ Buscando el botón de confirmación...",
	},
	"confirm_attempt": {
		"en": "🔍 Attempt %d/%d to find confirm button...",
		"es": "🔍 Intento %d/%d de encontrar el botón de confirmación...",
	},
	"confirm_clicked": {
		"en": "✓ Confirm button clicked (attempt %d)",
		"es": "✓ Botón de confirmación pulsado (intento %d)",
	},
	"confirm_not_found": {
		"en": "⚠️  Button not found on attempt %d",
		"es": "⚠️  Botón no encontrado en el intento %d",
	},
	"confirm_manual_header": {
		"en": "❌ Automatic confirmation failed after all attempts",
		"es": "❌ La confirmación automática falló tras todos los intentos",
	},
	"confirm_manual_hint": {
		"en": "💡 Please check the MetaMask popup and click confirm manually",
		"es": "💡 Revisa la ventana de MetaMask y pulsa confirmar manualmente",
	},
	"prompt_manual_confirm": {
		"en": "Did you click confirm manually? (y/n): ",
		"es": "¿Pulsaste confirmar manualmente? (s/n): ",
	},
	"prompt_retry_decision": {
		"en": "🔄 (r)etry this upload, (s)kip it, or (a)bandon the batch? ",
		"es": "🔄 ¿(r)eintentar esta subida, (s)altarla o (a)bandonar el lote? ",
	},
	"prompt_image_retry": {
		"en": "Enter 'r' to retry this image, or any other key to continue: ",
		"es": "Escribe 'r' para reintentar esta imagen, u otra tecla para continuar: ",
	},
	"report_saved": {
		"en": "📝 Run report saved to %s",
		"es": "📝 Informe de ejecución guardado en %s",
	},
	"cleanup_section": {
		"en": "\n🧹 CLEANUP",
		"es": "\n🧹 LIMPIEZA",
	},
	"cleanup_images": {
		"en": "→ Removing temporary files...",
		"es": "→ Eliminando archivos temporales...",
	},
	"cleanup_images_done": {
		"en": "✓ Temporary images removed",
		"es": "✓ Imágenes temporales eliminadas",
	},
	"cleanup_browser": {
		"en": "→ Closing browser...",
		"es": "→ Cerrando el navegador...",
	},
	"cleanup_browser_done": {
		"en": "✓ Browser closed",
		"es": "✓ Navegador cerrado",
	},
	"setup_title": {
		"en": "=== Installing MetaMask Extension ===",
		"es": "=== Instalando la extensión MetaMask ===",
	},
	"setup_step_1": {
		"en": "1. Install MetaMask extension",
		"es": "1. Instala la extensión MetaMask",
	},
	"setup_step_2": {
		"en": "2. Set up your wallet (create new or import existing)",
		"es": "2. Configura tu cartera (crea una nueva o importa una existente)",
	},
	"setup_step_3": {
		"en": "3. Once setup is complete, run the 'run' command",
		"es": "3. Cuando termine la configuración, ejecuta el comando 'run'",
	},
	"setup_press_enter": {
		"en": "\nPress Enter ONLY after MetaMask is fully set up...",
		"es": "\nPulsa Enter SOLO cuando MetaMask esté completamente configurado...",
	},
}

// Init detecta el idioma del sistema
func Init() {
	// En Linux/Mac, la variable LANG suele ser "es_ES.UTF-8", "en_US.UTF-8", etc.
	langEnv := os.Getenv("LANG")
	if strings.HasPrefix(langEnv, "es") {
		CurrentLang = "es"
	} else {
		CurrentLang = "en"
	}
}

// T traduce una clave al idioma actual
func T(key string) string {
	if translations, ok := messages[key]; ok {
		if val, ok := translations[CurrentLang]; ok {
			return val
		}
		// Fallback a inglés si falta la traducción específica
		return translations["en"]
	}
	return key
}
