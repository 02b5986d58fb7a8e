package cmd

import (
	"github.com/spf13/cobra"

	"github.com/alertdeskhq/alertdesk/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize alertdesk configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure alertdesk and generates a .alertdesk.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
