package model

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSquare   = errors.New("invalid square")
	ErrIllegalMove     = errors.New("illegal move")
	ErrUnknownLabel    = errors.New("unknown piece label")
	ErrUnsupportedKind = errors.New("unsupported piece kind")
	// ErrLabelTaken is returned when a move would land a piece on the label
	// already owned by another piece of the same kind.
	ErrLabelTaken    = errors.New("label already taken")
	ErrLabelMismatch = errors.New("label does not match piece")
)

// ConstructionError reports a piece that could not be placed on its start square.
type ConstructionError struct {
	Kind   PieceType
	Square string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("`%s` is not a legal start position for %s", e.Square, e.Kind)
}

func (e *ConstructionError) Unwrap() error {
	return ErrInvalidSquare
}

// LabelError carries the label a registry operation failed on.
type LabelError struct {
	Label string
	Err   error
}

func (e *LabelError) Error() string {
	return fmt.Sprintf("%s: %q", e.Err, e.Label)
}

func (e *LabelError) Unwrap() error {
	return e.Err
}
