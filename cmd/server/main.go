package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"goldencitizen-backend/internal/config"
	"goldencitizen-backend/internal/database"
	"goldencitizen-backend/internal/leads"
	"goldencitizen-backend/internal/logger"
	"goldencitizen-backend/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewStructured("error", "console").Error("Config yüklenemedi", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	log := logger.NewStructured(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	for _, w := range cfg.Warnings {
		log.Warn(w, nil)
	}

	db, err := database.Init(cfg, log)
	if err != nil {
		log.WithError(err).Error("Veritabanı başlatılamadı", nil)
		os.Exit(1)
	}

	notifier := newNotifier(cfg, log)

	app := server.New(server.Deps{
		Config:   cfg,
		DB:       db,
		Notifier: notifier,
		Log:      log,
	})

	go func() {
		log.Info("Server çalışıyor", map[string]interface{}{"port": cfg.HTTPPort})
		if err := app.Listen(":" + cfg.HTTPPort); err != nil {
			log.WithError(err).Error("Server durdu", nil)
			os.Exit(1)
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	log.Info("Kapatma sinyali alındı", nil)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.WithError(err).Warn("Server düzgün kapanmadı", nil)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// Redis yoksa ya da ping başarısızsa bildirimler loga düşer, form çalışmaya devam eder.
func newNotifier(cfg *config.Config, log logger.Logger) leads.Notifier {
	if cfg.RedisAddr == "" {
		return leads.NewLogNotifier(log)
	}

	client := leads.NewRedisClient(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.WithError(err).Warn("Redis'e bağlanılamadı, lead bildirimleri loglanacak", map[string]interface{}{"addr": cfg.RedisAddr})
		_ = client.Close()
		return leads.NewLogNotifier(log)
	}

	log.Info("Lead bildirimleri Redis kuyruğuna yazılacak", map[string]interface{}{"key": cfg.LeadQueueKey})
	return leads.NewRedisNotifier(client, cfg.LeadQueueKey)
}
