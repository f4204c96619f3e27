package model

import (
	"fmt"
	"strings"
)

// MoveRecord is one committed move. From and To are labels, i.e. the kind
// prefix followed by the square, e.g. "Ra1" -> "Ra8".
type MoveRecord struct {
	From      string  `json:"from"`
	To        string  `json:"to"`
	Timestamp float64 `json:"timestamp"`
}

func (m MoveRecord) String() string {
	return fmt.Sprintf("%s-%s", m.From, m.To)
}

// MoveRequest is what a client sends to move a piece of a match.
type MoveRequest struct {
	Label       string `json:"label"`
	Destination string `json:"destination"`
}

func formatMoves(moves []MoveRecord) string {
	parts := make([]string, 0, len(moves))
	for _, m := range moves {
		parts = append(parts, m.String())
	}
	return strings.Join(parts, " ")
}
