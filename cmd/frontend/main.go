package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"pet-adoption/internal/bootstrap"
	"pet-adoption/internal/frontend"
	"pet-adoption/internal/platform/config"
	"pet-adoption/internal/platform/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadFrontend()
	if err != nil {
		logger.NewFromEnv().Error("config error", map[string]any{"err": err})
		os.Exit(1)
	}
	log := logger.New(cfg.Log.Options())

	h := frontend.NewHandler(frontend.Options{
		CatalogURL: cfg.CatalogURL,
		Logger:     log,
	})

	log.Info("frontend starting", map[string]any{"addr": cfg.Server.Addr(), "catalog_url": cfg.CatalogURL})
	if err := bootstrap.Serve(ctx, bootstrap.NewServer(cfg.Server.Addr(), h), cfg.Server.ShutdownTimeout, log); err != nil {
		log.Error("server error", map[string]any{"err": err})
		os.Exit(1)
	}
}
