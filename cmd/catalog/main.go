package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	recordsclient "pet-adoption/internal/adapters/records"
	"pet-adoption/internal/bootstrap"
	"pet-adoption/internal/platform/config"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/router"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadCatalog()
	if err != nil {
		logger.NewFromEnv().Error("config error", map[string]any{"err": err})
		os.Exit(1)
	}
	log := logger.New(cfg.Log.Options())

	repo, closeDB, err := bootstrap.OpenCatalogStore(ctx, cfg.Storage, log)
	if err != nil {
		log.Error("storage init failed", map[string]any{"err": err})
		os.Exit(1)
	}
	defer closeDB()

	recorder, err := recordsclient.NewClient(recordsclient.Config{
		BaseURL: cfg.RecordsURL,
		Timeout: cfg.RecordsTimeout,
	})
	if err != nil {
		log.Error("records client", map[string]any{"err": err})
		os.Exit(1)
	}

	h := router.NewCatalogRouter(router.CatalogOptions{
		Animals:       repo,
		Recorder:      recorder,
		Logger:        log,
		AllowedOrigin: cfg.Server.AllowedOrigin,
	})

	log.Info("catalog service starting", map[string]any{"addr": cfg.Server.Addr(), "records_url": cfg.RecordsURL})
	if err := bootstrap.Serve(ctx, bootstrap.NewServer(cfg.Server.Addr(), h), cfg.Server.ShutdownTimeout, log); err != nil {
		log.Error("server error", map[string]any{"err": err})
		closeDB()
		os.Exit(1)
	}
}
