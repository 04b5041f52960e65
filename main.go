package main

import (
	"antopolis/config"
	"antopolis/database"
	"antopolis/logger"
	"antopolis/route"
	"antopolis/storage"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	gin.SetMode(cfg.GinMode)
	logger.New(cfg.LogLevel, cfg.GinMode != gin.ReleaseMode)

	if err := database.InitDatabase(cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	if err := storage.InitStorage(context.Background(), cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialise upload storage")
	}

	router := route.NewRouter(cfg)
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}
	if err := database.CloseDatabase(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to close database")
	}
	log.Info().Msg("Server stopped")
}
