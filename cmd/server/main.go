package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/light-bringer/catalog-service/internal/config"
	"github.com/light-bringer/catalog-service/internal/services"
	"github.com/light-bringer/catalog-service/internal/telemetry"
	transport "github.com/light-bringer/catalog-service/internal/transport/http"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	if err := run(logger); err != nil {
		logger.Fatalf("Failed to run server: %v", err)
	}
}

func run(logger *logrus.Logger) error {
	ctx := context.Background()

	// 1. Load configuration from environment variables
	cfg, err := config.Load(logger)
	if err != nil {
		return err
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.Info("Starting Catalog Service...")
	logger.Infof("Spanner Database: %s", cfg.SpannerDatabase)
	logger.Infof("HTTP Port: %s", cfg.HTTPPort)

	// 2. Initialize the metrics pipeline
	telem, err := telemetry.New()
	if err != nil {
		return err
	}

	// 3. Initialize service dependencies
	serviceOpts, err := services.NewServiceOptions(ctx, cfg.SpannerDatabase, logger)
	if err != nil {
		return err
	}
	defer serviceOpts.Close()

	// 4. Create the HTTP server
	server := transport.NewServer(cfg.HTTPPort, serviceOpts.ProductHandler, logger, telem)

	// 5. Start serving in the background
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	// 6. Wait for a shutdown signal or a server failure
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Infof("Received %s, shutting down gracefully...", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("HTTP server shutdown error: %v", err)
	}

	if err := telem.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Telemetry shutdown error: %v", err)
	}

	return nil
}
