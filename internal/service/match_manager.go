// service/match_manager.go
package service

import (
	"errors"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/benbeisheim/chessmaster-backend/internal/model"
)

var (
	ErrMatchNotFound = errors.New("match not found")
	ErrMatchExists   = errors.New("match already exists")
)

type MatchManager struct {
	sessions map[string]*Session
	archive  Archive
	opts     []model.MatchOption
	log      zerolog.Logger
	mu       sync.RWMutex
}

// NewMatchManager creates an empty manager. archive may be nil, in which case
// moves are only kept in memory. opts are applied to every match created.
func NewMatchManager(archive Archive, log zerolog.Logger, opts ...model.MatchOption) *MatchManager {
	return &MatchManager{
		sessions: make(map[string]*Session),
		archive:  archive,
		opts:     opts,
		log:      log,
	}
}

func (mm *MatchManager) CreateMatch(matchID string) error {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	if _, exists := mm.sessions[matchID]; exists {
		return ErrMatchExists
	}

	mm.sessions[matchID] = NewSession(matchID, mm.archive, mm.log, mm.opts...)
	mm.log.Info().Str("match_id", matchID).Msg("match created")
	return nil
}

func (mm *MatchManager) GetSession(matchID string) (*Session, error) {
	mm.mu.RLock()
	defer mm.mu.RUnlock()

	session, exists := mm.sessions[matchID]
	if !exists {
		return nil, ErrMatchNotFound
	}

	return session, nil
}

// DeleteMatch removes a match and clears its archived log. Callers still
// holding the session see ErrMatchNotFound from then on.
func (mm *MatchManager) DeleteMatch(matchID string) error {
	mm.mu.Lock()
	session, exists := mm.sessions[matchID]
	if !exists {
		mm.mu.Unlock()
		return ErrMatchNotFound
	}
	delete(mm.sessions, matchID)
	mm.mu.Unlock()

	if err := session.Close(); err != nil {
		return err
	}
	mm.log.Info().Str("match_id", matchID).Msg("match deleted")
	return nil
}

// MatchIDs lists the live matches in sorted order.
func (mm *MatchManager) MatchIDs() []string {
	mm.mu.RLock()
	defer mm.mu.RUnlock()

	ids := make([]string, 0, len(mm.sessions))
	for id := range mm.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (mm *MatchManager) GetMatchState(matchID string) (model.MatchState, error) {
	session, err := mm.GetSession(matchID)
	if err != nil {
		return model.MatchState{}, err
	}
	return session.State(), nil
}

func (mm *MatchManager) MakeMove(matchID, label, dest string) (model.MoveRecord, error) {
	session, err := mm.GetSession(matchID)
	if err != nil {
		return model.MoveRecord{}, err
	}
	return session.Move(label, dest)
}

func (mm *MatchManager) ResetMatch(matchID string) (model.MatchState, error) {
	session, err := mm.GetSession(matchID)
	if err != nil {
		return model.MatchState{}, err
	}
	return session.Reset()
}

func (mm *MatchManager) RegisterConnection(matchID, playerID string, conn Conn) error {
	session, err := mm.GetSession(matchID)
	if err != nil {
		return err
	}
	return session.RegisterConnection(playerID, conn)
}

func (mm *MatchManager) UnregisterConnection(matchID, playerID string, conn Conn) {
	session, err := mm.GetSession(matchID)
	if err != nil {
		return
	}
	session.UnregisterConnection(playerID, conn)
}

func (mm *MatchManager) SendError(matchID, playerID string, sendErr error) error {
	session, err := mm.GetSession(matchID)
	if err != nil {
		return err
	}
	return session.SendError(playerID, sendErr)
}
