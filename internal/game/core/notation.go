package core

import (
	chess "github.com/corentings/chess/v2"
)

const (
	// BoardRanks and BoardFiles are the dimensions of a standard chess board
	BoardRanks = 8
	BoardFiles = 8
)

// Notation converts a board position to algebraic notation. Column 0 is
// file a and row 0 is rank 8, matching a board printed from White's side.
func Notation(pos Position) (string, error) {
	if !pos.IsValid(BoardRanks, BoardFiles) {
		return "", WrapPositionError(pos, ErrOutOfBounds)
	}
	return ToSquare(pos).String(), nil
}

// ToSquare maps an in-range position to its chess square
func ToSquare(pos Position) chess.Square {
	file := chess.File(pos.Col)
	rank := chess.Rank(BoardRanks - 1 - pos.Row)
	return chess.NewSquare(file, rank)
}

// FromSquare is the inverse of ToSquare
func FromSquare(sq chess.Square) Position {
	return Position{Row: BoardRanks - 1 - int(sq.Rank()), Col: int(sq.File())}
}
