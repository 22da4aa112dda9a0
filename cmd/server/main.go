package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/notmyst33d/schedapi-ssr/internal/config"
	"github.com/notmyst33d/schedapi-ssr/internal/handler"
	"github.com/notmyst33d/schedapi-ssr/internal/logger"
	"github.com/notmyst33d/schedapi-ssr/internal/page"
	"github.com/notmyst33d/schedapi-ssr/internal/router"
	"github.com/notmyst33d/schedapi-ssr/internal/schedapi"
	"github.com/notmyst33d/schedapi-ssr/internal/service"
	"github.com/notmyst33d/schedapi-ssr/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("api", cfg.APIBaseURL).
		Msg("Starting schedapi-ssr")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	// ─── Initialize Renderer and Backend Client ────────────────────────
	renderer, err := page.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse page templates")
	}
	apiClient := schedapi.New(cfg.APIBaseURL, cfg.APITimeout)

	// ─── Initialize Services ───────────────────────────────────────────
	scheduleService := service.NewScheduleService(apiClient, log)

	// ─── Initialize Handlers ───────────────────────────────────────────
	handlers := &router.Handlers{
		Schedule: handler.NewScheduleHandler(scheduleService, renderer, log),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
