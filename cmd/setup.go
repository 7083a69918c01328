package cmd

import (
	"fmt"

	"storagescan-uploader/internal/config"
	"storagescan-uploader/internal/i18n"
	"storagescan-uploader/internal/operator"
	"storagescan-uploader/internal/session"
	"storagescan-uploader/internal/workspace"

	"github.com/spf13/cobra"
)

const metamaskStoreURL = "https://chromewebstore.google.com/detail/metamask/nkbihfbeogaeaoehlefnkodbefgpgknn"

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time MetaMask install into the persistent profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetup(operator.NewStdin())
	},
}

// runSetup opens the extension store inside the automation profile so the
// operator can install and configure the wallet once. Later runs reuse the
// profile.
func runSetup(op operator.Prompt) error {
	cfg := config.AppConfig
	ws := workspace.New(cfg.ScratchPath, cfg.BrowserPath)
	if _, err := ws.EnsureProfile(); err != nil {
		return fmt.Errorf("failed to prepare profile directory: %w", err)
	}

	br, err := session.New(ws.Profile, false)
	if err != nil {
		return err
	}
	defer br.Quit()

	if err := br.Navigate(metamaskStoreURL); err != nil {
		return err
	}

	fmt.Println("\n" + i18n.T("setup_title"))
	fmt.Println(i18n.T("setup_step_1"))
	fmt.Println(i18n.T("setup_step_2"))
	fmt.Println(i18n.T("setup_step_3"))
	op.WaitEnter(i18n.T("setup_press_enter"))
	return nil
}
