package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/Elephant-Learning/Elephant-Backend/internal/config"
	"github.com/Elephant-Learning/Elephant-Backend/internal/transport/middleware"
)

// Run is the application entry point. It loads configuration, opens the
// entity store, serves the REST API and shuts the server down gracefully
// once ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("store_driver", cfg.Store.Driver),
		slog.String("log_level", cfg.Log.Level),
	)

	b, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer b.close()

	var rateLimit middleware.Middleware
	if cfg.RateLimit.RequestsPerMinute > 0 {
		rl := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer rl.Stop()
		rateLimit = rl.Limit(cfg.RateLimit.RequestsPerMinute)
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      newHandler(newRouter(b, cfg.Limits, logger), cfg, logger, rateLimit),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// serve runs srv until ctx is canceled or the listener fails, then drains
// in-flight requests within cfg.ShutdownTimeout.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}
