package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alertdeskhq/alertdesk/internal/chat"
	"github.com/alertdeskhq/alertdesk/internal/db"
	"github.com/alertdeskhq/alertdesk/internal/notifications"
	"github.com/alertdeskhq/alertdesk/internal/report"
	"github.com/alertdeskhq/alertdesk/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the alertdesk HTTP server",
	Long:  `Starts the alertdesk server: report submission, KPIs, the notification log, uploaded photo serving, and the grounded alert chat.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort != 0 {
			cfg.Port = servePort
		}

		database, err := db.Open(cfg.DatabasePath())
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		reports := report.NewStore(database)
		notifs := notifications.NewStore(database)
		pipeline := report.NewPipeline(reports, notifs, cfg.UploadsDir())

		provider := createLLMProviderFromConfig(cfg)
		if provider == nil {
			fmt.Fprintln(os.Stderr, "Warning: OPENAI_API_KEY is not set; the alert chat is disabled.")
		}
		assembler := chat.NewAssembler(reports, notifs)
		gateway := chat.NewGateway(assembler, provider, cfg.Model)

		srv := server.New(server.Config{
			Port:       cfg.Port,
			UploadsDir: cfg.UploadsDir(),
			AllowAll:   cfg.AllowAllOrigins,
		})

		report.RegisterRoutes(srv.Router(), pipeline, reports, cfg.MaxUploadMB<<20)
		notifications.RegisterRoutes(srv.Router(), notifs)
		chat.RegisterRoutes(srv.Router(), gateway)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "override the configured HTTP port")
	rootCmd.AddCommand(serveCmd)
}
