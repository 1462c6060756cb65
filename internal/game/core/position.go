package core

import (
	"fmt"

	"github.com/mitchelldurbincs/RookBishopSimulator/internal/common"
)

// Position is a zero-based (row, column) pair on a board.
// The type itself enforces no range; the Board does.
type Position struct {
	Row, Col int
}

// NewPosition creates a new position with the given row and column
func NewPosition(row, col int) Position {
	return Position{Row: row, Col: col}
}

// IsValid checks if the position is within a rows x cols grid
func (p Position) IsValid(rows, cols int) bool {
	return p.Row >= 0 && p.Row < rows && p.Col >= 0 && p.Col < cols
}

// Add returns a new position that is the sum of this position and another
func (p Position) Add(other Position) Position {
	return Position{Row: p.Row + other.Row, Col: p.Col + other.Col}
}

// Sub returns the offset from other to this position
func (p Position) Sub(other Position) Position {
	return Position{Row: p.Row - other.Row, Col: p.Col - other.Col}
}

// Equal checks if two positions are equal
func (p Position) Equal(other Position) bool {
	return p.Row == other.Row && p.Col == other.Col
}

// SharesLine reports whether other is on the same row or the same column
func (p Position) SharesLine(other Position) bool {
	return p.Row == other.Row || p.Col == other.Col
}

// SharesDiagonal reports whether |Δrow| == |Δcol|
func (p Position) SharesDiagonal(other Position) bool {
	d := p.Sub(other)
	return common.Abs(d.Row) == common.Abs(d.Col)
}

// String returns a string representation of the position
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

