package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/netgrid/internal/logging"
	httpapi "github.com/aretw0/netgrid/pkg/adapters/http"
)

// ServeOptions contains the configuration for the 'serve' command.
type ServeOptions struct {
	ConfigPath string
	Addr       string
	Debug      bool
}

// Serve starts the inspection API and blocks until interrupted.
func Serve(opts ServeOptions) error {
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}
	logger := logging.New(level)

	sys, _, err := loadSystem(opts.ConfigPath)
	if err != nil {
		return err
	}

	handler := httpapi.NewHandler(sys, httpapi.WithLogger(logger))
	server := &http.Server{
		Addr:    opts.Addr,
		Handler: handler,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("inspection API listening", "addr", opts.Addr, "devices", sys.Net.Len())
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
