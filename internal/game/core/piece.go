package core

import "fmt"

// Side is the owning side of a piece. It only affects display.
type Side int

const (
	White Side = iota
	Black
)

func (s Side) String() string {
	switch s {
	case White:
		return "WHITE"
	case Black:
		return "BLACK"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Initial returns the first letter of the side name
func (s Side) Initial() string {
	return s.String()[:1]
}

// Piece is a movable game piece. The set of implementations is closed:
// *Rook and *Bishop.
type Piece interface {
	ID() string
	Name() string
	Side() Side
	Row() int
	Col() int
	Position() Position
	// IsValidMove reports whether the piece's movement rule allows moving
	// to target. It ignores other pieces and board edges.
	IsValidMove(target Position) bool
	String() string

	setPosition(Position)
}

type pieceBase struct {
	id   string
	name string
	side Side
	pos  Position
}

func newPieceBase(name string, pos Position, side Side, ids IDSource) pieceBase {
	if ids == nil {
		ids = DefaultIDs
	}
	return pieceBase{id: ids.NewID(), name: name, side: side, pos: pos}
}

func (p *pieceBase) ID() string              { return p.id }
func (p *pieceBase) Name() string            { return p.name }
func (p *pieceBase) Side() Side              { return p.side }
func (p *pieceBase) Row() int                { return p.pos.Row }
func (p *pieceBase) Col() int                { return p.pos.Col }
func (p *pieceBase) Position() Position      { return p.pos }
func (p *pieceBase) setPosition(to Position) { p.pos = to }

// String formats the piece as Name(S), e.g. Rook(B)
func (p *pieceBase) String() string {
	return fmt.Sprintf("%s(%s)", p.name, p.side.Initial())
}

// Rook moves orthogonally any number of spaces
type Rook struct {
	pieceBase
}

// NewRook creates a rook at pos. A nil ids uses DefaultIDs.
func NewRook(pos Position, side Side, ids IDSource) *Rook {
	return &Rook{pieceBase: newPieceBase("Rook", pos, side, ids)}
}

// IsValidMove is true for any target on the same row or column, including the current cell
func (r *Rook) IsValidMove(target Position) bool {
	return r.pos.SharesLine(target)
}

// Bishop moves diagonally any number of spaces
type Bishop struct {
	pieceBase
}

// NewBishop creates a bishop at pos. A nil ids uses DefaultIDs.
func NewBishop(pos Position, side Side, ids IDSource) *Bishop {
	return &Bishop{pieceBase: newPieceBase("Bishop", pos, side, ids)}
}

// IsValidMove is true when the row and column deltas have equal magnitude
func (b *Bishop) IsValidMove(target Position) bool {
	return b.pos.SharesDiagonal(target)
}
