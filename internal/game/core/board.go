package core

import (
	"fmt"
	"strings"
)

// Board is a fixed-size grid holding at most one piece per cell.
type Board struct {
	rows, cols int
	cells      [][]Piece // cells[row][col], nil means empty
}

// NewBoard creates an empty rows x cols board and places each piece at its
// recorded position. Pieces outside the grid or sharing a cell are rejected.
func NewBoard(rows, cols int, pieces ...Piece) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions)
	}

	b := &Board{rows: rows, cols: cols, cells: make([][]Piece, rows)}
	for r := range b.cells {
		b.cells[r] = make([]Piece, cols)
	}

	for _, p := range pieces {
		pos := p.Position()
		if !b.InBounds(pos) {
			return nil, WrapPieceError(p, WrapPositionError(pos, ErrOutOfBounds))
		}
		if occupant := b.cells[pos.Row][pos.Col]; occupant != nil {
			return nil, WrapPieceError(p, WrapPositionError(pos, fmt.Errorf("%w by %s", ErrCellOccupied, occupant)))
		}
		b.cells[pos.Row][pos.Col] = p
	}
	return b, nil
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

// InBounds checks if a position is within board boundaries
func (b *Board) InBounds(pos Position) bool {
	return pos.IsValid(b.rows, b.cols)
}

// GetPieceByID scans every cell for the piece with the given id
func (b *Board) GetPieceByID(id string) (Piece, bool) {
	for _, row := range b.cells {
		for _, p := range row {
			if p != nil && p.ID() == id {
				return p, true
			}
		}
	}
	return nil, false
}

// GetPieceByPosition returns the piece at pos, if any. Out-of-range
// positions return ErrOutOfBounds.
func (b *Board) GetPieceByPosition(pos Position) (Piece, bool, error) {
	if !b.InBounds(pos) {
		return nil, false, WrapPositionError(pos, ErrOutOfBounds)
	}
	p := b.cells[pos.Row][pos.Col]
	return p, p != nil, nil
}

// Pieces returns the pieces on the board in row-major order
func (b *Board) Pieces() []Piece {
	var out []Piece
	for _, row := range b.cells {
		for _, p := range row {
			if p != nil {
				out = append(out, p)
			}
		}
	}
	return out
}

// Snapshot returns the cell markers used by String, one slice per row
func (b *Board) Snapshot() [][]string {
	grid := make([][]string, b.rows)
	for r, row := range b.cells {
		grid[r] = make([]string, b.cols)
		for c, p := range row {
			grid[r][c] = cellMarker(p)
		}
	}
	return grid
}

// String renders the board as rows of space-separated markers: '-' for an
// empty cell, otherwise the first character of the piece's String().
func (b *Board) String() string {
	var sb strings.Builder
	for r, row := range b.Snapshot() {
		if r > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(strings.Join(row, " "))
	}
	return sb.String()
}

func cellMarker(p Piece) string {
	if p == nil {
		return "-"
	}
	return p.String()[:1]
}
