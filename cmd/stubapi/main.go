// Command stubapi runs the in-memory stand-in for the hardware-store
// backend so the storefront client can be exercised without real
// infrastructure.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hardwarehub/storefront/internal/infrastructure/config"
	"github.com/hardwarehub/storefront/internal/stubapi"
	"github.com/hardwarehub/storefront/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: false})

	store := stubapi.NewStore(cfg.Stub.JWTSecret, time.Duration(cfg.Stub.TokenTTLMinutes)*time.Minute)
	if err := store.SeedAdmin(cfg.Stub.AdminEmail, cfg.Stub.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("seeding admin account failed")
	}

	notifier := stubapi.NewNotifier(0, log)
	notifier.Start(ctx)

	e := stubapi.NewRouter(store, notifier, stubapi.Options{JWTSecret: cfg.Stub.JWTSecret}, log)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)
	}()

	log.Info().Str("port", cfg.Stub.Port).Msg("stub backend listening")
	if err := e.Start(":" + cfg.Stub.Port); err != nil {
		log.Info().Err(err).Msg("server stopped")
	}
	os.Exit(0)
}
