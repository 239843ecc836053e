package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgallion1/askdoc/internal/api"
	"github.com/dgallion1/askdoc/internal/config"
	"github.com/dgallion1/askdoc/internal/store"
	"github.com/spf13/cobra"
)

var (
	servePort string
	serveDoc  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the questionnaire form and answer API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "listen port (overrides PORT)")
	serveCmd.Flags().StringVar(&serveDoc, "doc", "", "questionnaire document (overrides DOC_PATH)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if servePort != "" {
		cfg.Port = servePort
	}
	if serveDoc != "" {
		cfg.DocPath = serveDoc
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	st := store.New(cfg.DocPath)
	if _, err := st.Read(); err != nil {
		return err
	}

	srv := api.NewServer(st, log, cfg)
	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting askdoc", "port", cfg.Port, "document", cfg.DocPath)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
