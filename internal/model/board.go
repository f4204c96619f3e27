package model

import (
	"fmt"
	"strings"
)

type PieceType string

const (
	Base   PieceType = "base"
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
)

type pieceDescriptor struct {
	prefix string
}

var pieceDescriptors = map[PieceType]pieceDescriptor{
	Base:   {prefix: ""},
	King:   {prefix: "K"},
	Queen:  {prefix: "Q"},
	Rook:   {prefix: "R"},
	Bishop: {prefix: "B"},
}

// Prefix is the one-letter notation that starts a piece's label.
// Base pieces have none.
func (p PieceType) Prefix() string {
	return pieceDescriptors[p].prefix
}

func (p PieceType) Valid() bool {
	_, ok := pieceDescriptors[p]
	return ok
}

// ParsePieceType accepts a type name ("rook") or its prefix ("R"), case-insensitive.
func ParsePieceType(s string) (PieceType, bool) {
	t := PieceType(strings.ToLower(s))
	if t.Valid() {
		return t, true
	}
	if s == "" {
		return "", false
	}
	return typeForPrefix(strings.ToUpper(s))
}

// typeForPrefix resolves a label prefix. Only the kinds a match can move are
// addressable this way; the base kind has no prefix.
func typeForPrefix(prefix string) (PieceType, bool) {
	switch prefix {
	case "R":
		return Rook, true
	case "B":
		return Bishop, true
	case "K":
		return King, true
	case "Q":
		return Queen, true
	}
	return "", false
}

// Square is a zero-based board coordinate: X runs over files a..h,
// Y over ranks 1..8.
type Square struct {
	X int `json:"x"`
	Y int `json:"y"`
}

var fileIndex = map[byte]int{'a': 0, 'b': 1, 'c': 2, 'd': 3, 'e': 4, 'f': 5, 'g': 6, 'h': 7}

var rankIndex = map[byte]int{'1': 0, '2': 1, '3': 2, '4': 3, '5': 4, '6': 5, '7': 6, '8': 7}

// ToNumeric converts algebraic notation such as "e4" into a Square.
// The file letter is case-insensitive. ok is false for anything that is not
// exactly a file a..h followed by a rank 1..8.
func ToNumeric(square string) (Square, bool) {
	if len(square) != 2 {
		return Square{}, false
	}
	x, ok := fileIndex[toLowerASCII(square[0])]
	if !ok {
		return Square{}, false
	}
	y, ok := rankIndex[square[1]]
	if !ok {
		return Square{}, false
	}
	return Square{X: x, Y: y}, true
}

func ValidSquare(square string) bool {
	_, ok := ToNumeric(square)
	return ok
}

func (s Square) Valid() bool {
	return s.X >= 0 && s.X <= 7 && s.Y >= 0 && s.Y <= 7
}

// String renders the square in lower-case algebraic notation.
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.X, s.Y)
	}
	return fmt.Sprintf("%c%d", 'a'+s.X, s.Y+1)
}

func toLowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

type placement struct {
	kind   PieceType
	square string
	color  PlayerColor
}

// standardLayout is the partial back rank every match starts from.
var standardLayout = []placement{
	{Rook, "a1", PlayerColorWhite},
	{Rook, "h1", PlayerColorWhite},
	{Bishop, "c1", PlayerColorWhite},
	{Bishop, "f1", PlayerColorWhite},
	{King, "e1", PlayerColorWhite},
	{Rook, "a8", PlayerColorBlack},
	{Rook, "h8", PlayerColorBlack},
	{Bishop, "c8", PlayerColorBlack},
	{Bishop, "f8", PlayerColorBlack},
	{King, "e8", PlayerColorBlack},
}
