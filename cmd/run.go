package cmd

import (
	"fmt"
	"strings"
	"time"

	"storagescan-uploader/internal/acquirer"
	"storagescan-uploader/internal/config"
	"storagescan-uploader/internal/i18n"
	"storagescan-uploader/internal/logger"
	"storagescan-uploader/internal/operator"
	"storagescan-uploader/internal/session"
	"storagescan-uploader/internal/uploader"
	"storagescan-uploader/internal/wallet"
	"storagescan-uploader/internal/workspace"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Upload a batch of images and confirm each through the wallet popup",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBatch(operator.NewStdin())
	},
}

func runBatch(op operator.Prompt) error {
	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Println(i18n.T("banner_title"))
	fmt.Println(strings.Repeat("=", 50))

	n := op.BatchSize()
	cfg := config.AppConfig

	ws := workspace.New(cfg.ScratchPath, cfg.BrowserPath)
	existed, err := ws.EnsureProfile()
	if err != nil {
		return fmt.Errorf("failed to prepare profile directory: %w", err)
	}
	if existed {
		logger.Info(i18n.T("profile_detected"))
	}
	if err := ws.PrepareScratch(); err != nil {
		return err
	}

	br, err := session.New(ws.Profile, cfg.Headless)
	if err != nil {
		ws.CleanScratch()
		return err
	}
	defer cleanup(ws, br)

	// Configuration
	fmt.Println("\n📋 CONFIGURATION")
	fmt.Println("----------------")
	delay := op.TransactionDelay(cfg.TransactionDelay)
	logger.Info(i18n.T("tx_delay_set"), delay)

	// Navigation
	fmt.Println("\n🌐 WEBSITE NAVIGATION")
	fmt.Println("-------------------")
	logger.Info("→ URL: %s", cfg.WebsiteURL)
	logger.Info(i18n.T("nav_loading"))
	mainCtx, err := br.OpenMain(cfg.WebsiteURL)
	if err != nil {
		return err
	}
	time.Sleep(5 * time.Second)
	logger.Info(i18n.T("nav_loaded"))

	// Wallet connection
	fmt.Println("\n🦊 METAMASK CONNECTION")
	fmt.Println("--------------------")
	wallet.Connect(br)
	op.WaitEnter(i18n.T("wallet_press_enter"))

	// Image acquisition
	fmt.Println("\n📸 IMAGE PROCESSING")
	fmt.Println("----------------")
	fetcher := acquirer.New(cfg.ImageSourceURL, ws.Scratch, cfg.AcquireRetries, op)
	acquired, err := fetcher.Fetch(n)
	if err != nil {
		logger.Error("%v", err)
		return err
	}

	items := make([]*uploader.Item, len(acquired))
	for i, a := range acquired {
		items[i] = &uploader.Item{ID: a.ID, Path: a.Path}
	}

	// Upload process
	fmt.Println("\n📤 UPLOAD PROCESS")
	fmt.Println("--------------")
	locator := wallet.NewLocator(br)
	driver := wallet.NewDriver(wallet.DefaultMatch(), op, cfg.ConfirmAttempts)
	seq := uploader.NewSequencer(br, mainCtx, locator, driver, timingsFromConfig(cfg, delay))
	runner := uploader.NewBatchRunner(seq, op)

	report, runErr := runner.Run(items)
	if report != nil {
		if err := report.Save(cfg.ReportPath); err != nil {
			logger.Warn("failed to save run report: %v", err)
		} else {
			logger.Info(i18n.T("report_saved"), cfg.ReportPath)
		}
	}
	if runErr != nil {
		return runErr
	}

	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Println("✨ AUTOMATION COMPLETED")
	fmt.Println(strings.Repeat("=", 50))
	op.WaitEnter("\n→ Press Enter to close the browser...")
	return nil
}

func timingsFromConfig(cfg config.Config, txDelay int) uploader.Timings {
	t := uploader.DefaultTimings(time.Duration(txDelay) * time.Second)
	t.ControlTimeout = time.Duration(cfg.ControlTimeout) * time.Second
	t.PopupTimeout = time.Duration(cfg.PopupTimeout) * time.Second
	t.SuccessTimeout = time.Duration(cfg.SuccessTimeout) * time.Second
	t.Settle = time.Duration(cfg.SettleDelay) * time.Second
	t.ConfirmRetries = cfg.ConfirmRetries
	t.SuccessRetries = cfg.SuccessRetries
	return t
}

// cleanup always runs, whether the run succeeded, partially succeeded or
// errored out.
func cleanup(ws workspace.Paths, br *session.Browser) {
	fmt.Println(i18n.T("cleanup_section"))
	fmt.Println("--------")
	logger.Info(i18n.T("cleanup_images"))
	ws.CleanScratch()
	logger.Info(i18n.T("cleanup_images_done"))
	logger.Info(i18n.T("cleanup_browser"))
	br.Quit()
	logger.Info(i18n.T("cleanup_browser_done"))
}
