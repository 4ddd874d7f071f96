package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"onyxtaxi/config"
	"onyxtaxi/pkg/api"
	"onyxtaxi/pkg/logger"
	"onyxtaxi/pkg/schema"
	"onyxtaxi/service"
	"onyxtaxi/storage/postgres"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.ServiceName)

	store, err := postgres.New(context.Background(), cfg, log)
	if err != nil {
		log.Error("Failed to connect to postgres", logger.Error(err))
		os.Exit(1)
	}
	defer store.Close()

	schemas, err := schema.New()
	if err != nil {
		log.Error("Failed to compile schemas", logger.Error(err))
		os.Exit(1)
	}

	svc := service.New(store, log)
	srv := api.New(cfg, schemas, svc, log)

	go func() {
		log.Info("HTTP server is starting...", logger.Int("port", cfg.AppPort))
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server failed", logger.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("HTTP server shutdown error", logger.Error(err))
	}
}
