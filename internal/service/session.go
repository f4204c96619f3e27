package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/benbeisheim/chessmaster-backend/internal/model"
	"github.com/benbeisheim/chessmaster-backend/internal/ws"
)

var ErrConnectionExists = errors.New("connection already exists")

// Conn is the part of a websocket connection a session writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Archive persists the move log of a match.
type Archive interface {
	AppendMove(matchID string, seq int, rec model.MoveRecord) error
	LoadLog(matchID string) ([]model.MoveRecord, error)
	DeleteLog(matchID string) error
}

// guardedConn serializes writes; a websocket allows one writer at a time.
type guardedConn struct {
	mu   sync.Mutex
	conn Conn
}

func (g *guardedConn) WriteJSON(v interface{}) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.conn.WriteJSON(v)
}

// The connections watching a specific match
type SessionConnections struct {
	connections map[string]*guardedConn // playerID -> connection
	mu          sync.RWMutex
}

func NewSessionConnections() *SessionConnections {
	return &SessionConnections{
		connections: make(map[string]*guardedConn),
	}
}

// Session wraps a single match so it can be shared between requests. Every
// access to the match goes through the session lock.
type Session struct {
	ID          string
	mu          sync.Mutex
	match       *model.Match
	archive     Archive
	connections *SessionConnections
	log         zerolog.Logger
	closed      bool
}

func NewSession(id string, archive Archive, log zerolog.Logger, opts ...model.MatchOption) *Session {
	return &Session{
		ID:          id,
		match:       model.NewMatch(opts...),
		archive:     archive,
		connections: NewSessionConnections(),
		log:         log.With().Str("match_id", id).Logger(),
	}
}

func (s *Session) State() model.MatchState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.match.State()
}

// Move applies a move to the match, archives it and pushes the new state to
// every watcher.
func (s *Session) Move(label, dest string) (model.MoveRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return model.MoveRecord{}, ErrMatchNotFound
	}
	rec, err := s.match.Move(label, dest)
	if err != nil {
		s.log.Debug().Err(err).Str("label", label).Str("dest", dest).Msg("move rejected")
		return model.MoveRecord{}, err
	}
	s.log.Info().Str("from", rec.From).Str("to", rec.To).Int("seq", s.match.Len()).Msg("move accepted")

	if s.archive != nil {
		if err := s.archive.AppendMove(s.ID, s.match.Len(), rec); err != nil {
			s.log.Error().Err(err).Int("seq", s.match.Len()).Msg("failed to archive move")
		}
	}
	s.broadcastState()
	return rec, nil
}

// Reset puts the match back to the standard layout. The archived log is
// cleared first; if that fails the match is left untouched so the archive and
// the move sequence never disagree.
func (s *Session) Reset() (model.MatchState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return model.MatchState{}, ErrMatchNotFound
	}
	if s.archive != nil {
		if err := s.archive.DeleteLog(s.ID); err != nil {
			s.log.Error().Err(err).Msg("failed to clear archived log")
			return model.MatchState{}, fmt.Errorf("failed to clear archived log: %w", err)
		}
	}
	s.match.Reset()
	s.log.Info().Msg("match reset")
	s.broadcastState()
	return s.match.State(), nil
}

// Close marks the session as deleted and clears its archived log. Moves that
// reach the session afterwards fail with ErrMatchNotFound.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrMatchNotFound
	}
	s.closed = true
	if s.archive != nil {
		if err := s.archive.DeleteLog(s.ID); err != nil {
			return fmt.Errorf("failed to clear archived log: %w", err)
		}
	}
	return nil
}

func (s *Session) RegisterConnection(playerID string, conn Conn) error {
	connID := fmt.Sprintf("%p", conn)

	s.connections.mu.Lock()
	if _, exists := s.connections.connections[playerID]; exists {
		s.connections.mu.Unlock()
		return ErrConnectionExists
	}
	gc := &guardedConn{conn: conn}
	s.connections.connections[playerID] = gc
	s.connections.mu.Unlock()
	s.log.Debug().Str("player_id", playerID).Str("conn", connID).Msg("registered connection")

	// Send initial state
	s.mu.Lock()
	state := s.match.State()
	s.mu.Unlock()
	if err := s.send(playerID, gc, ws.MessageTypeMatchState, state); err != nil {
		s.UnregisterConnection(playerID, conn)
		return err
	}
	return nil
}

// UnregisterConnection drops the connection of playerID, but only if it is
// still conn; a newer connection for the same player is left alone.
func (s *Session) UnregisterConnection(playerID string, conn Conn) {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()

	if current, exists := s.connections.connections[playerID]; exists && current.conn == conn {
		delete(s.connections.connections, playerID)
		s.log.Debug().Str("player_id", playerID).Msg("unregistered connection")
	}
}

// SendError reports err to the connection of a single player.
func (s *Session) SendError(playerID string, err error) error {
	s.connections.mu.RLock()
	gc, ok := s.connections.connections[playerID]
	s.connections.mu.RUnlock()
	if !ok {
		return fmt.Errorf("no connection for player %s", playerID)
	}
	return gc.WriteJSON(ws.NewErrorMessage(err.Error()))
}

func (s *Session) ConnectionCount() int {
	s.connections.mu.RLock()
	defer s.connections.mu.RUnlock()
	return len(s.connections.connections)
}

// broadcastState sends the match state to every connection. Callers hold s.mu.
func (s *Session) broadcastState() {
	msg, err := ws.NewMessage(ws.MessageTypeMatchState, s.match.State())
	if err != nil {
		s.log.Error().Err(err).Msg("failed to marshal match state")
		return
	}

	// Snapshot the connections so no lock is held while writing
	s.connections.mu.RLock()
	active := make(map[string]*guardedConn, len(s.connections.connections))
	for playerID, gc := range s.connections.connections {
		active[playerID] = gc
	}
	s.connections.mu.RUnlock()

	for playerID, gc := range active {
		if err := gc.WriteJSON(msg); err != nil {
			s.log.Warn().Err(err).Str("player_id", playerID).Msg("failed to send state, dropping connection")
			s.connections.mu.Lock()
			if s.connections.connections[playerID] == gc {
				delete(s.connections.connections, playerID)
			}
			s.connections.mu.Unlock()
			gc.conn.Close()
		}
	}
}

func (s *Session) send(playerID string, gc *guardedConn, t ws.MessageType, payload any) error {
	msg, err := ws.NewMessage(t, payload)
	if err != nil {
		return err
	}
	if err := gc.WriteJSON(msg); err != nil {
		return fmt.Errorf("send %s to %s: %w", t, playerID, err)
	}
	return nil
}
