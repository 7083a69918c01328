package config

import (
	"os"
	"path/filepath"
	"runtime"

	"storagescan-uploader/internal/i18n"
	"storagescan-uploader/internal/logger"

	"github.com/spf13/viper"
)

type Config struct {
	WebsiteURL     string `mapstructure:"website_url"`
	ScratchPath    string `mapstructure:"scratch_path"`     // Staged images, wiped every run
	BrowserPath    string `mapstructure:"browser_path"`     // Parent dir for browser profiles
	Headless       bool   `mapstructure:"headless"`         // MetaMask popups need a visible window, keep false
	ReportPath     string `mapstructure:"report_path"`      // Where the run report JSON is written
	ImageSourceURL string `mapstructure:"image_source_url"` // Random image endpoint

	// Timing and retry ceilings. Seconds unless noted.
	TransactionDelay int `mapstructure:"transaction_delay"` // Default wait for on-chain settlement
	ControlTimeout   int `mapstructure:"control_timeout"`   // Bounded wait for upload controls
	PopupTimeout     int `mapstructure:"popup_timeout"`     // Bounded wait for the extension popup
	SuccessTimeout   int `mapstructure:"success_timeout"`   // Bounded poll for the success indicator
	SettleDelay      int `mapstructure:"settle_delay"`      // Fixed wait for async rendering
	ConfirmAttempts  int `mapstructure:"confirm_attempts"`  // DOM scans per driver call
	ConfirmRetries   int `mapstructure:"confirm_retries"`   // Driver calls per item
	SuccessRetries   int `mapstructure:"success_retries"`   // Success-wait re-entries per item
	AcquireRetries   int `mapstructure:"acquire_retries"`   // Download attempts per image
}

var AppConfig Config

func InitConfig() {
	// 1. Define config filename
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// 2. Search paths based on OS
	if runtime.GOOS == "linux" {
		viper.AddConfigPath("/etc/storagescan-uploader/")
		viper.AddConfigPath("$HOME/.config/storagescan-uploader")
		viper.AddConfigPath(".")
	} else if runtime.GOOS == "darwin" {
		home, _ := os.UserHomeDir()
		viper.AddConfigPath(filepath.Join(home, ".config", "storagescan-uploader"))
		viper.AddConfigPath(".")
	} else {
		viper.AddConfigPath(".")
	}

	// 3. Default values
	cwd, _ := os.Getwd()
	viper.SetDefault("website_url", "https://storagescan-newton.0g.ai/tool")
	viper.SetDefault("scratch_path", filepath.Join(cwd, "temp_images"))
	viper.SetDefault("browser_path", filepath.Join(cwd, "browser_profiles"))
	viper.SetDefault("headless", false)
	viper.SetDefault("report_path", filepath.Join(cwd, "run-report.json"))
	viper.SetDefault("image_source_url", "https://picsum.photos/800/600")

	viper.SetDefault("transaction_delay", 60)
	viper.SetDefault("control_timeout", 10)
	viper.SetDefault("popup_timeout", 20)
	viper.SetDefault("success_timeout", 30)
	viper.SetDefault("settle_delay", 3)
	viper.SetDefault("confirm_attempts", 3)
	viper.SetDefault("confirm_retries", 3)
	viper.SetDefault("success_retries", 3)
	viper.SetDefault("acquire_retries", 3)

	// 4. Attempt to read
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.Debug(i18n.T("config_missing"))
		} else {
			logger.Error(i18n.T("config_read_error"), err)
			os.Exit(1)
		}
	}

	// 5. Load into struct
	if err := viper.Unmarshal(&AppConfig); err != nil {
		logger.Error(i18n.T("config_decode_error"), err)
	}
}
