package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"orderprocessor/internal/app/server/api"
	"orderprocessor/internal/app/server/config"
	"orderprocessor/internal/infrastructure/migration"
	"orderprocessor/internal/infrastructure/storage/postgres"
	redisstore "orderprocessor/internal/infrastructure/storage/redis"
	"orderprocessor/internal/utils/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	conf := config.MustLoad()
	log := logger.New(conf.Env)

	if err := run(conf, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(conf *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mg := migration.NewMigration(conf, migration.DefaultEngine)
	if err := mg.Up(); err != nil {
		return err
	}

	storage, err := postgres.New(ctx, conf.DB.DatabaseURI)
	if err != nil {
		return err
	}
	defer storage.Close()

	cache, err := redisstore.New(ctx, conf.Cache.RedisAddr, conf.Cache.RedisPassword)
	if err != nil {
		return err
	}
	defer cache.Close()

	mux := api.New(storage, cache, log)

	server := &http.Server{
		Addr:    conf.RunAddress(),
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "port", conf.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
