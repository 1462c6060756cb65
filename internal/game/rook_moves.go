package game

import (
	"fmt"

	"github.com/mitchelldurbincs/RookBishopSimulator/internal/common"
	"github.com/mitchelldurbincs/RookBishopSimulator/internal/game/core"
	"github.com/mitchelldurbincs/RookBishopSimulator/internal/game/events"
)

// Direction is the way the rook moves on a turn. The simulated rook only
// ever moves right or up.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "UP"
	case DirectionRight:
		return "RIGHT"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// RookMoveData is one turn's random rook move
type RookMoveData struct {
	Direction      Direction
	NumberOfSpaces int
}

// CalculateMoveData flips a coin for the direction (0 = right, 1 = up) and
// rolls two six-sided dice for the distance.
func (s *Simulator) CalculateMoveData() RookMoveData {
	direction := DirectionUp
	if s.flipCoin() == 0 {
		direction = DirectionRight
	}
	return RookMoveData{
		Direction:      direction,
		NumberOfSpaces: s.rollDie() + s.rollDie(),
	}
}

func (s *Simulator) flipCoin() int { return s.random.IntBetween(0, 1) }
func (s *Simulator) rollDie() int  { return s.random.IntBetween(1, 6) }

// WrapRight moves col right by spaces, wrapping past the last file back to the first
func WrapRight(col, spaces, files int) int {
	return common.Abs((col + spaces) % files)
}

// WrapUp moves row up (towards row 0) by spaces. Past the top it re-enters
// from the bottom: a remainder r of the overshoot gives ranks-r, and an exact
// multiple of ranks lands on row 0.
func WrapUp(row, spaces, ranks int) int {
	newRow := row - spaces
	if newRow >= 0 {
		return newRow
	}
	remainder := common.Abs(newRow) % ranks
	if remainder == 0 {
		return 0
	}
	return ranks - remainder
}

// TargetFor computes where a move takes the rook from its current position
func (s *Simulator) TargetFor(move RookMoveData) (core.Position, error) {
	target := s.rook.Position()
	switch move.Direction {
	case DirectionRight:
		target.Col = WrapRight(target.Col, move.NumberOfSpaces, core.BoardFiles)
	case DirectionUp:
		target.Row = WrapUp(target.Row, move.NumberOfSpaces, core.BoardRanks)
	default:
		return core.Position{}, fmt.Errorf("%w: %s", ErrNoDirection, move.Direction)
	}
	return target, nil
}

// moveRook draws a random move and applies it
func (s *Simulator) moveRook() error {
	return s.applyRookMove(s.CalculateMoveData())
}

func (s *Simulator) applyRookMove(move RookMoveData) error {
	from := s.rook.Position()
	to, err := s.TargetFor(move)
	if err != nil {
		return err
	}

	// same row or column by construction, so the rook's rule accepts it
	if err := s.board.MovePiece(s.rook.ID(), to); err != nil {
		return err
	}

	moved := events.NewRookMovedEvent(s.simID, s.numberOfTurns, move.Direction.String(), move.NumberOfSpaces, from, to)
	s.logger.Debug().
		Str("direction", moved.Direction).
		Int("spaces", moved.Spaces).
		Str("from", moved.FromSquare).
		Str("to", moved.ToSquare).
		Msg("Rook moved")
	s.eventBus.Publish(moved)
	return nil
}
