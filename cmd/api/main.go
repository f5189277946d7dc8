package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"nutriplan/internal/chat"
	"nutriplan/internal/config"
	"nutriplan/internal/database"
	"nutriplan/internal/gemini"
	"nutriplan/internal/mealplan"
	"nutriplan/internal/server"
)

func gracefulShutdown(apiServer *http.Server, done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Info().Msg("shutting down gracefully, press Ctrl+C again to force")
	stop()

	// In-flight requests get 5 seconds to finish.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exiting")
	done <- true
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx := context.Background()
	db, err := database.NewService(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database initialization failed")
	}
	defer db.Close()

	client := gemini.NewClient(cfg.GeminiAPIKey)

	apiServer, err := server.NewServer(server.Deps{
		Config:    cfg,
		DB:        db,
		Generator: mealplan.NewGenerator(client),
		Assistant: chat.NewAssistant(client),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("server initialization failed")
	}

	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, done)

	log.Info().Int("port", cfg.Port).Msg("server starting")
	if err := apiServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("http server error")
	}

	<-done
	log.Info().Msg("graceful shutdown complete")
}
