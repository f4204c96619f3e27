package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/benbeisheim/chessmaster-backend/internal/model"
	"github.com/benbeisheim/chessmaster-backend/internal/service"
)

type MatchController struct {
	matchService *service.MatchService
	log          zerolog.Logger
}

func NewMatchController(matchService *service.MatchService, log zerolog.Logger) *MatchController {
	return &MatchController{matchService: matchService, log: log}
}

// statusFor maps service and model errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrMatchNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrMatchExists):
		return fiber.StatusConflict
	// a failed lookup wins over a bad prefix on the same label
	case errors.Is(err, model.ErrUnknownLabel):
		return fiber.StatusNotFound
	case errors.Is(err, model.ErrUnsupportedKind),
		errors.Is(err, model.ErrIllegalMove),
		errors.Is(err, model.ErrInvalidSquare),
		errors.Is(err, model.ErrLabelTaken),
		errors.Is(err, model.ErrLabelMismatch):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

func (mc *MatchController) fail(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		mc.log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
		msg = "internal error"
	}
	return c.Status(status).JSON(fiber.Map{
		"error": msg,
	})
}

func (mc *MatchController) CreateMatch(c *fiber.Ctx) error {
	matchID, err := mc.matchService.CreateMatch()
	if err != nil {
		return mc.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Match created",
		"match_id": matchID,
	})
}

func (mc *MatchController) GetMatchState(c *fiber.Ctx) error {
	state, err := mc.matchService.GetMatchState(c.Params("matchId"))
	if err != nil {
		return mc.fail(c, err)
	}
	return c.JSON(state)
}

func (mc *MatchController) MakeMove(c *fiber.Ctx) error {
	var req model.MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid move body",
		})
	}

	rec, err := mc.matchService.HandleMove(c.Params("matchId"), req)
	if err != nil {
		return mc.fail(c, err)
	}
	return c.JSON(rec)
}

func (mc *MatchController) ResetMatch(c *fiber.Ctx) error {
	state, err := mc.matchService.ResetMatch(c.Params("matchId"))
	if err != nil {
		return mc.fail(c, err)
	}
	return c.JSON(state)
}

func (mc *MatchController) DeleteMatch(c *fiber.Ctx) error {
	if err := mc.matchService.DeleteMatch(c.Params("matchId")); err != nil {
		return mc.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (mc *MatchController) GetHistory(c *fiber.Ctx) error {
	moves, err := mc.matchService.History(c.Params("matchId"))
	if err != nil {
		return mc.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"moves": moves,
	})
}

// ValidateMove answers whether a piece kind may move between two squares,
// e.g. GET /api/validate?kind=rook&from=a1&to=a8.
func (mc *MatchController) ValidateMove(c *fiber.Ctx) error {
	legal, err := mc.matchService.ValidateMove(c.Query("kind"), c.Query("from"), c.Query("to"))
	if err != nil {
		return mc.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"legal": legal,
	})
}
