package model

import (
	"fmt"
	"sort"
)

// Match keeps every piece on the board keyed by its label and a log of all
// moves made through it. Pieces live in an arena; the label index points into
// it and is rewritten on every successful move so a key always equals the
// label of the piece it points to.
//
// A Match is not safe for concurrent use.
type Match struct {
	pieces []*Piece
	index  map[string]int
	log    []MoveRecord
	clock  *Clock
}

type MatchOption func(*Match)

// WithClock makes the match stamp the moves of the pieces it creates with c.
// A nil clock leaves the default in place.
func WithClock(c *Clock) MatchOption {
	return func(m *Match) {
		if c != nil {
			m.clock = c
		}
	}
}

// MatchState is the JSON view of a match.
type MatchState struct {
	Pieces map[string]PieceState `json:"pieces"`
	Log    []MoveRecord          `json:"log"`
	Moves  int                   `json:"moves"`
}

// NewMatch returns a match set up with the standard layout.
func NewMatch(opts ...MatchOption) *Match {
	m := newMatch(opts)
	m.Reset()
	return m
}

// NewMatchWithPieces builds a match around an existing registry instead of the
// standard layout. Every key must be the label of the piece stored under it.
// The match takes ownership of the pieces: from then on they must only be
// moved through Match.Move, or their keys go stale.
func NewMatchWithPieces(pieces map[string]*Piece, opts ...MatchOption) (*Match, error) {
	m := newMatch(opts)

	labels := make([]string, 0, len(pieces))
	for label := range pieces {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		p := pieces[label]
		if p == nil {
			return nil, &LabelError{Label: label, Err: ErrLabelMismatch}
		}
		if p.Label() != label {
			return nil, &LabelError{Label: label, Err: fmt.Errorf("%w %s", ErrLabelMismatch, p.Label())}
		}
		m.place(p)
	}
	return m, nil
}

func newMatch(opts []MatchOption) *Match {
	m := &Match{
		index: make(map[string]int),
		log:   make([]MoveRecord, 0),
		clock: defaultClock,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Reset clears the log and puts fresh pieces on the standard squares.
func (m *Match) Reset() {
	m.pieces = make([]*Piece, 0, len(standardLayout))
	m.index = make(map[string]int, len(standardLayout))
	m.log = make([]MoveRecord, 0)

	for _, pl := range standardLayout {
		p, err := newPiece(pl.kind, pl.square, pl.color, m.clock)
		if err != nil {
			panic(err) // the standard layout only holds valid squares
		}
		m.place(p)
	}
}

func (m *Match) place(p *Piece) {
	m.pieces = append(m.pieces, p)
	m.index[p.Label()] = len(m.pieces) - 1
}

// Move moves the piece registered under label to dest.
//
// A label not in the registry gives ErrUnknownLabel. Only rooks, bishops,
// kings and queens can be moved; any other label prefix gives
// ErrUnsupportedKind, together with ErrUnknownLabel when the label is also
// missing. A destination the piece cannot reach gives ErrIllegalMove and one
// whose label already belongs to another piece gives ErrLabelTaken.
// On error the match is left untouched.
func (m *Match) Move(label, dest string) (MoveRecord, error) {
	var kind PieceType
	supported := false
	if label != "" {
		kind, supported = typeForPrefix(label[:1])
	}

	slot, ok := m.index[label]
	if !ok {
		if !supported {
			return MoveRecord{}, &LabelError{Label: label, Err: fmt.Errorf("%w: %w", ErrUnknownLabel, ErrUnsupportedKind)}
		}
		return MoveRecord{}, &LabelError{Label: label, Err: ErrUnknownLabel}
	}
	if !supported {
		return MoveRecord{}, &LabelError{Label: label, Err: ErrUnsupportedKind}
	}
	piece := m.pieces[slot]
	if piece.Type() != kind {
		return MoveRecord{}, &LabelError{Label: label, Err: ErrLabelMismatch}
	}

	if !piece.IsLegalMove(dest) {
		return MoveRecord{}, fmt.Errorf("%w: %s to %q", ErrIllegalMove, label, dest)
	}
	sq, _ := ToNumeric(dest)
	newLabel := kind.Prefix() + sq.String()
	if other, taken := m.index[newLabel]; taken && other != slot {
		return MoveRecord{}, &LabelError{Label: newLabel, Err: ErrLabelTaken}
	}

	record, ok := piece.Move(dest)
	if !ok {
		return MoveRecord{}, fmt.Errorf("%w: %s to %q", ErrIllegalMove, label, dest)
	}
	m.log = append(m.log, record)
	delete(m.index, label)
	m.index[newLabel] = slot
	return record, nil
}

// Len is the number of moves made through the match since the last reset.
func (m *Match) Len() int {
	return len(m.log)
}

func (m *Match) Log() []MoveRecord {
	log := make([]MoveRecord, len(m.log))
	copy(log, m.log)
	return log
}

// Notation renders the log as space separated moves, e.g. "Ke1-Ke2 Ra1-Ra4".
func (m *Match) Notation() string {
	return formatMoves(m.log)
}

// Piece returns the piece registered under label. The piece is still owned by
// the match; move it with Match.Move, never with Piece.Move.
func (m *Match) Piece(label string) (*Piece, bool) {
	slot, ok := m.index[label]
	if !ok {
		return nil, false
	}
	return m.pieces[slot], true
}

// Labels returns the registry keys in sorted order.
func (m *Match) Labels() []string {
	labels := make([]string, 0, len(m.index))
	for label := range m.index {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

func (m *Match) State() MatchState {
	pieces := make(map[string]PieceState, len(m.index))
	for label, slot := range m.index {
		pieces[label] = m.pieces[slot].State()
	}
	return MatchState{
		Pieces: pieces,
		Log:    m.Log(),
		Moves:  m.Len(),
	}
}
