package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	encryptservice "github.com/Minby93/EncryptService"
	"github.com/Minby93/EncryptService/internal/api"
	"github.com/Minby93/EncryptService/internal/config"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Log.Level,
	}))
	slog.SetDefault(logger)
	logger.Info("configuration loaded", "config", cfg.String())

	svc, err := encryptservice.New(encryptservice.Options{
		Engine: cfg.Cipher.Engine,
	})
	if err != nil {
		logger.Error("unable to create encryption service", "engine", cfg.Cipher.Engine, "error", err)
		os.Exit(1)
	}

	server := api.New(svc, api.Options{
		Logger:            logger,
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.Burst,
		MaxBodyBytes:      cfg.Server.MaxBodyBytes,
	})

	ln, err := api.Listen(cfg.Addr(), cfg.Server.ProxyProtocol)
	if err != nil {
		logger.Error("unable to start listener", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = server.Serve(ctx, ln, cfg.Server.ShutdownTimeout); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
