package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"github.com/benbeisheim/chessmaster-backend/internal/config"
	"github.com/benbeisheim/chessmaster-backend/internal/controller"
	"github.com/benbeisheim/chessmaster-backend/internal/logging"
	"github.com/benbeisheim/chessmaster-backend/internal/middleware"
	"github.com/benbeisheim/chessmaster-backend/internal/service"
	"github.com/benbeisheim/chessmaster-backend/internal/store"
)

func main() {
	cfg, err := config.Load(os.Getenv("CHESSMASTER_CONFIG"))
	if err != nil {
		fallback := logging.New(config.Default().Log, os.Stderr)
		fallback.Fatal().Err(err).Msg("failed to load config")
	}
	log := logging.New(cfg.Log, os.Stderr)

	archive, err := store.Open(cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open archive")
	}
	defer archive.Close()

	// Initialize services
	matchManager := service.NewMatchManager(archive, log)
	matchService := service.NewMatchService(matchManager, archive, log)

	// Initialize controllers
	matchController := controller.NewMatchController(matchService, log)
	wsController := controller.NewWebSocketController(matchService, log)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(middleware.RequestLogger(log))
	controller.RegisterRoutes(app, cfg.Server, matchController, wsController)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	log.Info().Str("addr", cfg.Server.Addr).Msg("listening")
	if err := app.Listen(cfg.Server.Addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
	}
}
