package core

import "fmt"

// AddPiece writes piece into the cell at pos and records pos on the piece.
// It is a raw placement primitive: there is no legality or vacancy check and
// the piece is not removed from any cell it already occupies, so calling it on
// a placed piece leaves a second reference behind. Only the bounds are checked.
func (b *Board) AddPiece(piece Piece, pos Position) error {
	if !b.InBounds(pos) {
		return WrapPieceError(piece, WrapPositionError(pos, ErrOutOfBounds))
	}
	b.cells[pos.Row][pos.Col] = piece
	piece.setPosition(pos)
	return nil
}

// MovePiece moves the piece with the given id to pos if its movement rule
// allows it. On failure the board is left unchanged.
func (b *Board) MovePiece(id string, pos Position) error {
	piece, ok := b.GetPieceByID(id)
	if !ok {
		return fmt.Errorf("no piece found for id %s: %w", id, ErrPieceNotFound)
	}

	if !b.InBounds(pos) {
		return WrapPieceError(piece, WrapPositionError(pos, ErrOutOfBounds))
	}

	if !piece.IsValidMove(pos) {
		return &MoveError{
			Piece:  piece.String(),
			Target: pos,
			Board:  b.String(),
			Err:    ErrInvalidMove,
		}
	}

	from := piece.Position()
	b.cells[from.Row][from.Col] = nil
	b.cells[pos.Row][pos.Col] = piece
	piece.setPosition(pos)
	return nil
}
