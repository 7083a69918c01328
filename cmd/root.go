package cmd

import (
	"fmt"
	"os"

	"storagescan-uploader/internal/config"
	"storagescan-uploader/internal/i18n"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "storagescan-uploader",
	Short: "Storage Scan batch upload automation",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		i18n.Init() // Detectar idioma PRIMERO
		config.InitConfig()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
