package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/benbeisheim/chessmaster-backend/internal/model"
)

type MatchService struct {
	matchManager *MatchManager
	archive      Archive
	log          zerolog.Logger
}

func NewMatchService(matchManager *MatchManager, archive Archive, log zerolog.Logger) *MatchService {
	return &MatchService{
		matchManager: matchManager,
		archive:      archive,
		log:          log,
	}
}

func (ms *MatchService) CreateMatch() (string, error) {
	matchID := uuid.New().String()

	if err := ms.matchManager.CreateMatch(matchID); err != nil {
		return "", fmt.Errorf("failed to create match: %w", err)
	}

	return matchID, nil
}

func (ms *MatchService) GetMatchState(matchID string) (model.MatchState, error) {
	return ms.matchManager.GetMatchState(matchID)
}

func (ms *MatchService) HandleMove(matchID string, req model.MoveRequest) (model.MoveRecord, error) {
	return ms.matchManager.MakeMove(matchID, req.Label, req.Destination)
}

func (ms *MatchService) ResetMatch(matchID string) (model.MatchState, error) {
	return ms.matchManager.ResetMatch(matchID)
}

func (ms *MatchService) DeleteMatch(matchID string) error {
	return ms.matchManager.DeleteMatch(matchID)
}

// History returns the archived move log of a match. Without an archive the
// in-memory log is returned instead.
func (ms *MatchService) History(matchID string) ([]model.MoveRecord, error) {
	session, err := ms.matchManager.GetSession(matchID)
	if err != nil {
		return nil, err
	}
	if ms.archive == nil {
		return session.State().Log, nil
	}

	moves, err := ms.archive.LoadLog(matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return moves, nil
}

// ValidateMove checks a move for a piece of the given kind without touching
// any match.
func (ms *MatchService) ValidateMove(kind, from, to string) (bool, error) {
	pieceType, ok := model.ParsePieceType(kind)
	if !ok {
		return false, fmt.Errorf("%w: %q", model.ErrUnsupportedKind, kind)
	}
	if !model.ValidSquare(from) {
		return false, &model.ConstructionError{Kind: pieceType, Square: from}
	}
	return model.IsLegal(pieceType, from, to), nil
}

func (ms *MatchService) RegisterConnection(matchID, playerID string, conn Conn) error {
	ms.log.Debug().Str("match_id", matchID).Str("player_id", playerID).Msg("registering connection")
	return ms.matchManager.RegisterConnection(matchID, playerID, conn)
}

func (ms *MatchService) UnregisterConnection(matchID, playerID string, conn Conn) {
	ms.log.Debug().Str("match_id", matchID).Str("player_id", playerID).Msg("unregistering connection")
	ms.matchManager.UnregisterConnection(matchID, playerID, conn)
}

func (ms *MatchService) SendError(matchID, playerID string, err error) error {
	return ms.matchManager.SendError(matchID, playerID, err)
}
