// ABOUTME: Serve command running the HTTP API
// ABOUTME: Wires config, logging, middleware, and graceful shutdown

package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/inferlab/inference-cost-analyzer/internal/config"
	"github.com/inferlab/inference-cost-analyzer/internal/handlers"
	"github.com/inferlab/inference-cost-analyzer/internal/logger"
	"github.com/inferlab/inference-cost-analyzer/internal/middleware"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Start the inference cost analyzer HTTP API.

Configuration comes from environment variables (optionally a .env file):
  PORT                 Listen port (default: 8080)
  CORS_ALLOWED_ORIGINS Comma-separated allowed origins (default: none)
  MAX_REQUEST_BODY_KB  POST body size limit in KB (default: 64)
  LOG_LEVEL            debug, info, warn, error (default: info)
  LOG_FORMAT           text or json (default: text)
  COMPARE_TOKENS       Default token count for the compare sweep (default: 1000)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	slog.Info("Starting inference cost analyzer API")

	h := handlers.NewHandler(cfg)
	cors := middleware.CORS(cfg.CORSAllowedOrigins)

	mux := http.NewServeMux()
	for _, route := range h.Routes() {
		mux.HandleFunc(route.Method+" "+route.Path,
			middleware.Chain(route.Handler, middleware.LogRequest, cors))
	}
	// Preflight requests carry their own method, so they need a catch-all.
	mux.HandleFunc("OPTIONS /api/v1/", middleware.Chain(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}, middleware.LogRequest, cors))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "addr", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}

	return nil
}
