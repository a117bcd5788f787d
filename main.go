package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/raushankrgupta/trymeup/api"
	"github.com/raushankrgupta/trymeup/config"
	"github.com/raushankrgupta/trymeup/session"
	"github.com/raushankrgupta/trymeup/utils"
	"github.com/rs/zerolog/log"
)

func main() {
	config.LoadConfig()
	logger := utils.InitLogger("trymeup", config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gemini, err := utils.NewGeminiClient(ctx, config.GeminiAPIKey, config.GeminiImageModel, config.GeminiTextModel)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Gemini client")
	}
	defer gemini.Close()

	manager := session.NewManager(session.Factory{
		Decoder:   utils.NewImageDecoder(config.MaxUploadBytes),
		Generator: gemini,
		Feedback:  gemini,
		Options: session.Options{
			NotificationDuration: config.NotificationDuration,
			FeedbackTimeout:      config.FeedbackTimeout,
			Logger:               &logger,
		},
	}, config.SessionIdleTimeout)
	defer manager.Close()

	router := api.NewRouter(&api.Handler{
		Sessions:          manager,
		JWTSecret:         config.JWTSecret,
		GenerationTimeout: config.GenerationTimeout,
		MaxUploadBytes:    config.MaxUploadBytes,
	})

	srv := &http.Server{
		Addr:              ":" + config.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", config.Port).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
