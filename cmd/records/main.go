package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"pet-adoption/internal/adapters/notify"
	"pet-adoption/internal/bootstrap"
	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/platform/config"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/router"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadRecords()
	if err != nil {
		logger.NewFromEnv().Error("config error", map[string]any{"err": err})
		os.Exit(1)
	}
	log := logger.New(cfg.Log.Options())

	repo, closeDB, err := bootstrap.OpenRecordsStore(ctx, cfg.Storage, log)
	if err != nil {
		log.Error("storage init failed", map[string]any{"err": err})
		os.Exit(1)
	}
	defer closeDB()

	// NATS es opcional: sin NATS_URL no se publican notificaciones.
	var notifier adoptions.Notifier
	if cfg.NATSURL != "" {
		pub, err := notify.Connect(cfg.NATSURL, cfg.NATSSubject, cfg.Log.App)
		if err != nil {
			log.Warn("nats unavailable, notifications disabled", map[string]any{"err": err})
		} else {
			defer pub.Close()
			notifier = pub
		}
	}

	h := router.NewRecordsRouter(router.RecordsOptions{
		Adoptions:     repo,
		Notifier:      notifier,
		Logger:        log,
		AllowedOrigin: cfg.Server.AllowedOrigin,
	})

	log.Info("records service starting", map[string]any{"addr": cfg.Server.Addr()})
	if err := bootstrap.Serve(ctx, bootstrap.NewServer(cfg.Server.Addr(), h), cfg.Server.ShutdownTimeout, log); err != nil {
		log.Error("server error", map[string]any{"err": err})
		closeDB()
		os.Exit(1)
	}
}
