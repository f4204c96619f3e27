package model

// PlayerColor is the side a piece belongs to. It is informational only:
// moves are never checked against whose turn it is.
type PlayerColor string

const (
	PlayerColorWhite PlayerColor = "white"
	PlayerColorBlack PlayerColor = "black"
	PlayerColorNone  PlayerColor = ""
)
