package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"raynott-storefront/internal/admin"
	"raynott-storefront/internal/cart"
	"raynott-storefront/internal/catalog"
	"raynott-storefront/internal/checkout"
	"raynott-storefront/internal/config"
	"raynott-storefront/internal/httpserver"
	"raynott-storefront/internal/session"
	"raynott-storefront/internal/upstream"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := buildLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	client := upstream.New(cfg.UpstreamBaseURL, cfg.UpstreamTimeout, logger)
	catalogService := catalog.New(client)
	adminService := admin.New(client, logger)
	sessions := session.NewManager(cfg.SessionTTL, func(c *cart.Store) *checkout.Orchestrator {
		return checkout.New(client, c, cfg.CheckoutRedirect, logger)
	}, logger)

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go sessions.Run(sweepCtx, cfg.SessionSweep)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Sessions:         sessions,
		Catalog:          catalogService,
		Admin:            adminService,
		Auth:             client,
		Pinger:           client,
		CORSAllowOrigins: cfg.CORSAllowOrigins,
	})
	if err != nil {
		logger.Fatal("init server", zap.Error(err))
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting http server", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		logger.Error("server error", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	} else {
		logger.Info("server stopped")
	}
}

func buildLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
