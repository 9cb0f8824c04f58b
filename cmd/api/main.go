package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"constructax/internal/config"
	"constructax/internal/database"
	"constructax/internal/server"
	"constructax/pkg/logger"
)

func main() {
	log := logger.Must(logger.New())
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load("")
	if err != nil {
		log.Fatal("invalid configuration: " + err.Error())
	}

	pool, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database: " + err.Error())
	}
	defer pool.Close()

	if err := database.RunMigrations(pool); err != nil {
		log.Fatal("failed to run migrations: " + err.Error())
	}

	srv := server.New(cfg, pool, log)

	go func() {
		log.Info("server listening on " + srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("http server error: " + err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server gracefully ...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Warn("server shutdown: " + err.Error())
	}
	log.Info("server exiting")
}
