package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alertdeskhq/alertdesk/internal/db"
	mcpserver "github.com/alertdeskhq/alertdesk/internal/mcp"
	"github.com/alertdeskhq/alertdesk/internal/notifications"
	"github.com/alertdeskhq/alertdesk/internal/report"
)

var serveMCPCmd = &cobra.Command{
	Use:   "serve-mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing alert KPIs, the notification log and scenario detection as tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		database, err := db.Open(cfg.DatabasePath())
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		// Stdout carries the MCP protocol; status goes to stderr.
		fmt.Fprintf(os.Stderr, "alertdesk MCP server started on stdio (db=%s)\n", cfg.DatabasePath())

		mcpserver.Version = Version

		srv := mcpserver.NewServer(report.NewStore(database), notifications.NewStore(database))
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(serveMCPCmd)
}
