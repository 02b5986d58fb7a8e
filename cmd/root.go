package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "alertdesk",
	Short: "Civic incident alert server with a grounded AI assistant",
	Long: `Alertdesk ingests civic incident reports (lost passports, long
queues, tempered IDs) with photo evidence, tracks per-scenario KPIs,
and answers questions about the accumulated alert history through an
LLM chat grounded on the recorded data.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".alertdesk.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
