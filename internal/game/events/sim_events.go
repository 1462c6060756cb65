package events

import (
	"fmt"
	"time"

	"github.com/mitchelldurbincs/RookBishopSimulator/internal/game/core"
)

// Event type constants
const (
	TypeSimulationStarted = "simulation.started"
	TypeSimulationEnded   = "simulation.ended"
	TypeBoardRendered     = "board.rendered"
	TypeRookMoved         = "rook.moved"
	TypeStateTransition   = "state.transition"
)

// SimulationStartedEvent is published once, before the first turn
type SimulationStartedEvent struct {
	BaseEvent
	RookID      string
	BishopID    string
	RookStart   core.Position
	BishopStart core.Position
	MaxTurns    int
}

// NewSimulationStartedEvent creates a new SimulationStartedEvent
func NewSimulationStartedEvent(simID string, rook, bishop core.Piece, maxTurns int) *SimulationStartedEvent {
	return &SimulationStartedEvent{
		BaseEvent:   newBase(TypeSimulationStarted, simID),
		RookID:      rook.ID(),
		BishopID:    bishop.ID(),
		RookStart:   rook.Position(),
		BishopStart: bishop.Position(),
		MaxTurns:    maxTurns,
	}
}

// SimulationEndedEvent is published when a winner has been decided
type SimulationEndedEvent struct {
	BaseEvent
	Winner           string
	WinnerID         string
	Turns            int
	TurnLimitReached bool
	Duration         time.Duration
}

// NewSimulationEndedEvent creates a new SimulationEndedEvent
func NewSimulationEndedEvent(simID string, winner core.Piece, turns int, limitReached bool, duration time.Duration) *SimulationEndedEvent {
	return &SimulationEndedEvent{
		BaseEvent:        newBase(TypeSimulationEnded, simID),
		Winner:           winner.String(),
		WinnerID:         winner.ID(),
		Turns:            turns,
		TurnLimitReached: limitReached,
		Duration:         duration,
	}
}

// BoardRenderedEvent carries the board as it stands after Turn turns
type BoardRenderedEvent struct {
	BaseEvent
	Turn  int
	Board string
}

// NewBoardRenderedEvent creates a new BoardRenderedEvent
func NewBoardRenderedEvent(simID string, turn int, board string) *BoardRenderedEvent {
	return &BoardRenderedEvent{
		BaseEvent: newBase(TypeBoardRendered, simID),
		Turn:      turn,
		Board:     board,
	}
}

// Text is the human-readable form written by console sinks
func (e *BoardRenderedEvent) Text() string {
	return fmt.Sprintf("Board after %d turns\n%s\n\n", e.Turn, e.Board)
}

// RookMovedEvent is published after each successful rook move
type RookMovedEvent struct {
	BaseEvent
	Turn       int
	Direction  string
	Spaces     int
	From       core.Position
	To         core.Position
	FromSquare string
	ToSquare   string
}

// NewRookMovedEvent creates a new RookMovedEvent. Squares are left empty for
// positions that have no algebraic name.
func NewRookMovedEvent(simID string, turn int, direction string, spaces int, from, to core.Position) *RookMovedEvent {
	fromSq, _ := core.Notation(from)
	toSq, _ := core.Notation(to)
	return &RookMovedEvent{
		BaseEvent:  newBase(TypeRookMoved, simID),
		Turn:       turn,
		Direction:  direction,
		Spaces:     spaces,
		From:       from,
		To:         to,
		FromSquare: fromSq,
		ToSquare:   toSq,
	}
}

// Description returns e.g. "Moving rook UP 7 spaces from h1 to h2"
func (e *RookMovedEvent) Description() string {
	return fmt.Sprintf("Moving rook %s %d spaces from %s to %s", e.Direction, e.Spaces, e.FromSquare, e.ToSquare)
}

// StateTransitionEvent is published when the simulation moves between phases
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string
	ToPhase   string
	Reason    string
}

// NewStateTransitionEvent creates a new StateTransitionEvent
func NewStateTransitionEvent(simID, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBase(TypeStateTransition, simID),
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}
