package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/benbeisheim/chessmaster-backend/internal/config"
	"github.com/benbeisheim/chessmaster-backend/internal/middleware"
)

// RegisterRoutes wires the REST and websocket endpoints onto app.
func RegisterRoutes(app *fiber.App, cfg config.ServerConfig, mc *MatchController, wsc *WebSocketController) {
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// Set up WebSocket routes
	app.Get("/ws/match/:matchId",
		middleware.EnsurePlayerID(),
		middleware.WebSocketUpgrade(),
		websocket.New(wsc.HandleConnection, websocket.Config{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			Origins:         []string{cfg.AllowOrigins},
		}),
	)

	// Set up REST routes
	api := app.Group("/api", middleware.EnsurePlayerID())
	api.Get("/validate", mc.ValidateMove)

	matchRoutes := api.Group("/match")
	matchRoutes.Post("/", mc.CreateMatch)
	matchRoutes.Get("/:matchId", mc.GetMatchState)
	matchRoutes.Delete("/:matchId", mc.DeleteMatch)
	matchRoutes.Post("/:matchId/move", mc.MakeMove)
	matchRoutes.Post("/:matchId/reset", mc.ResetMatch)
	matchRoutes.Get("/:matchId/history", mc.GetHistory)
}
