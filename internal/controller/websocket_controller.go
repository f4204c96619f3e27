package controller

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog"

	"github.com/benbeisheim/chessmaster-backend/internal/middleware"
	"github.com/benbeisheim/chessmaster-backend/internal/model"
	"github.com/benbeisheim/chessmaster-backend/internal/service"
	"github.com/benbeisheim/chessmaster-backend/internal/ws"
)

type WebSocketController struct {
	matchService *service.MatchService
	log          zerolog.Logger
}

func NewWebSocketController(matchService *service.MatchService, log zerolog.Logger) *WebSocketController {
	return &WebSocketController{
		matchService: matchService,
		log:          log,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	matchID := c.Params("matchId")
	playerID, _ := c.Locals(middleware.PlayerIDKey).(string)
	log := wsc.log.With().Str("match_id", matchID).Str("player_id", playerID).Logger()

	if err := wsc.matchService.RegisterConnection(matchID, playerID, c); err != nil {
		log.Warn().Err(err).Msg("failed to register connection")
		reason := "Connection rejected"
		if errors.Is(err, service.ErrConnectionExists) {
			reason = "Connection already exists"
		}
		c.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, reason),
		)
		c.Close()
		return
	}
	log.Info().Msg("websocket connected")

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Debug().Err(err).Msg("read error")
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Debug().Err(err).Msg("parse error")
			wsc.matchService.SendError(matchID, playerID, fmt.Errorf("malformed message: %w", err))
			continue
		}

		if err := wsc.handleMessage(matchID, msg); err != nil {
			log.Debug().Err(err).Str("type", string(msg.Type)).Msg("handle error")
			wsc.matchService.SendError(matchID, playerID, err)
		}
	}

	wsc.matchService.UnregisterConnection(matchID, playerID, c)
	log.Info().Msg("websocket disconnected")
}

// handleMessage applies one inbound message. The resulting state reaches the
// client through the session broadcast, so only errors come back here.
func (wsc *WebSocketController) handleMessage(matchID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var req model.MoveRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return fmt.Errorf("malformed move: %w", err)
		}
		_, err := wsc.matchService.HandleMove(matchID, req)
		return err

	case ws.MessageTypeReset:
		_, err := wsc.matchService.ResetMatch(matchID)
		return err

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}
