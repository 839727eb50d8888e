package cmd

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/awesomegic/gicbank/internal/config"
	"github.com/awesomegic/gicbank/internal/server"
)

var port int

// serveCmd runs the JSON API over the same in-memory bank.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the banking operations as a JSON API",
	Long: `Serve exposes the ledger operations over HTTP:

  POST /api/v1/transactions
  POST /api/v1/rules
  GET  /api/v1/accounts/{account}/statements/{yearMonth}

plus /health and prometheus /metrics. State is in-memory only and is lost
when the process exits.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&port, "port", 0, "listen port (default from GICBANK_PORT or 8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Serve logs as structured JSON, unlike the interactive session.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if port == 0 {
		port = cfg.Port
	}

	svc, err := newService()
	if err != nil {
		return err
	}

	addr := fmt.Sprintf(":%d", port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      server.New(svc),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		slog.Info("shutting down server")
		if err := srv.Close(); err != nil {
			slog.Error("server shutdown error", "error", err)
		}
	}()

	slog.Info("starting gicbank API", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
