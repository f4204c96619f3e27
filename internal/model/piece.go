package model

import "fmt"

// Piece is a single piece on the board together with every move it has made.
// A Piece is not safe for concurrent use. Pieces held by a Match must only be
// moved through Match.Move.
type Piece struct {
	kind     PieceType
	color    PlayerColor
	position string
	history  []MoveRecord
	clock    *Clock
}

// PieceState is the JSON view of a piece.
type PieceState struct {
	Type     PieceType    `json:"type"`
	Color    PlayerColor  `json:"color,omitempty"`
	Position string       `json:"position"`
	Square   Square       `json:"square"`
	History  []MoveRecord `json:"history"`
}

// NewPiece places a piece of the given kind on start. It fails with a
// *ConstructionError when start is not a square on the board.
func NewPiece(kind PieceType, start string) (*Piece, error) {
	return newPiece(kind, start, PlayerColorNone, defaultClock)
}

func newPiece(kind PieceType, start string, color PlayerColor, clock *Clock) (*Piece, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, kind)
	}
	sq, ok := ToNumeric(start)
	if !ok {
		return nil, &ConstructionError{Kind: kind, Square: start}
	}
	return &Piece{
		kind:     kind,
		color:    color,
		position: sq.String(),
		history:  make([]MoveRecord, 0),
		clock:    clock,
	}, nil
}

func (p *Piece) Type() PieceType {
	return p.kind
}

func (p *Piece) Color() PlayerColor {
	return p.color
}

// Position is the current square in lower-case algebraic notation.
func (p *Piece) Position() string {
	return p.position
}

func (p *Piece) Square() Square {
	sq, _ := ToNumeric(p.position)
	return sq
}

// Label is the registry key of the piece: its prefix followed by its square.
func (p *Piece) Label() string {
	return p.kind.Prefix() + p.position
}

func (p *Piece) History() []MoveRecord {
	history := make([]MoveRecord, len(p.history))
	copy(history, p.history)
	return history
}

func (p *Piece) IsLegalMove(dest string) bool {
	return IsLegal(p.kind, p.position, dest)
}

// Move moves the piece to dest if its movement rule allows it. The returned
// record is also appended to the piece's history. When ok is false nothing
// about the piece has changed.
func (p *Piece) Move(dest string) (MoveRecord, bool) {
	if !p.IsLegalMove(dest) {
		return MoveRecord{}, false
	}
	sq, _ := ToNumeric(dest)

	prefix := p.kind.Prefix()
	record := MoveRecord{
		From:      prefix + p.position,
		To:        prefix + sq.String(),
		Timestamp: p.clock.Stamp(),
	}
	p.position = sq.String()
	p.history = append(p.history, record)
	return record, true
}

func (p *Piece) State() PieceState {
	return PieceState{
		Type:     p.kind,
		Color:    p.color,
		Position: p.position,
		Square:   p.Square(),
		History:  p.History(),
	}
}
