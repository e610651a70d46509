package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"gitlab.connectwisedev.com/coffee-service/pkg/api"
	"gitlab.connectwisedev.com/coffee-service/pkg/config"
	"gitlab.connectwisedev.com/coffee-service/pkg/logger"
	"gitlab.connectwisedev.com/coffee-service/pkg/storefront"
)

func main() {
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	l := logger.New(os.Stdout, cfg.LogLevel)

	ctx := context.Background()
	svc, closeRepo, err := storefront.Bootstrap(ctx, cfg, l)
	if err != nil {
		l.Fatal().Err(err).Msg("failed to start storefront")
	}
	defer closeRepo()

	// the menu is the landing view
	svc.EnterCatalog(ctx)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           api.SetupRouter(api.NewHandler(svc), l),
		ReadHeaderTimeout: 10 * time.Second,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	shutdownCompleted := make(chan struct{}, 1)
	go func() {
		<-sigChan
		l.Info().Msg("received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			l.Error().Err(err).Msg("server shutdown error")
		}
		shutdownCompleted <- struct{}{}
	}()

	l.Info().Str("addr", srv.Addr).Str("state_backend", cfg.StateBackend).Msg("server starting")
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		l.Fatal().Err(err).Msg("server stopped")
	}
	<-shutdownCompleted
	l.Info().Msg("shutdown completed")
}
