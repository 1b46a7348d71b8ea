package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/humane-hq/humane/config"
)

// RunWithShutdown starts the HTTP server and blocks until a shutdown signal
// arrives, then stops the server gracefully.
func RunWithShutdown(cfg *config.AppConfig, logger *slog.Logger) error {
	if cfg == nil {
		return errors.New("app config is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	server, err := StartHTTPServer(&HTTPServerConfig{Config: cfg, Logger: logger})
	if err != nil {
		return err
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	logger.Info("shutting down...")

	return ShutdownHTTPServer(context.Background(), server, logger)
}
