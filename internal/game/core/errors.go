package core

import (
	"errors"
	"fmt"
)

var (
	ErrPieceNotFound     = errors.New("piece not found")
	ErrInvalidMove       = errors.New("invalid move")
	ErrOutOfBounds       = errors.New("position out of bounds")
	ErrCellOccupied      = errors.New("cell already occupied")
	ErrInvalidDimensions = errors.New("invalid board dimensions")
)

// MoveError describes a move rejected by a piece's legality rule.
// Board holds the rendered board at the time of the rejection.
type MoveError struct {
	Piece  string
	Target Position
	Board  string
	Err    error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("%v for %s to row: %d col: %d\nBoard state\n%s", e.Err, e.Piece, e.Target.Row, e.Target.Col, e.Board)
}

func (e *MoveError) Unwrap() error { return e.Err }

// WrapPositionError annotates err with the offending position. Returns nil for a nil err.
func WrapPositionError(pos Position, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("row %d col %d: %w", pos.Row, pos.Col, err)
}

// WrapPieceError annotates err with the piece it concerns. Returns nil for a nil err.
func WrapPieceError(p Piece, err error) error {
	if err == nil {
		return nil
	}
	if p == nil {
		return fmt.Errorf("piece: %w", err)
	}
	return fmt.Errorf("%s [%s]: %w", p, p.ID(), err)
}
