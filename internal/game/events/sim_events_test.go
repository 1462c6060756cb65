package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/RookBishopSimulator/internal/game/core"
)

func TestRookMovedEvent_Description(t *testing.T) {
	e := NewRookMovedEvent("sim", 3, "RIGHT", 3, core.Position{Row: 7, Col: 7}, core.Position{Row: 7, Col: 2})

	assert.Equal(t, TypeRookMoved, e.Type())
	assert.Equal(t, "h1", e.FromSquare)
	assert.Equal(t, "c1", e.ToSquare)
	assert.Equal(t, "Moving rook RIGHT 3 spaces from h1 to c1", e.Description())
}

func TestRookMovedEvent_OffBoardSquares(t *testing.T) {
	e := NewRookMovedEvent("sim", 1, "UP", 2, core.Position{Row: 9, Col: 0}, core.Position{Row: 7, Col: 0})

	assert.Empty(t, e.FromSquare)
	assert.Equal(t, "a1", e.ToSquare)
}

func TestBoardRenderedEvent_Text(t *testing.T) {
	e := NewBoardRenderedEvent("sim", 4, "- R\nB -")
	assert.Equal(t, "Board after 4 turns\n- R\nB -\n\n", e.Text())
}

func TestSimulationEvents(t *testing.T) {
	rook := core.NewRook(core.Position{Row: 7, Col: 7}, core.Black, nil)
	bishop := core.NewBishop(core.Position{Row: 5, Col: 2}, core.White, nil)

	started := NewSimulationStartedEvent("sim-1", rook, bishop, 15)
	assert.Equal(t, TypeSimulationStarted, started.Type())
	assert.Equal(t, "sim-1", started.SimulationID())
	assert.Equal(t, rook.ID(), started.RookID)
	assert.Equal(t, bishop.ID(), started.BishopID)
	assert.Equal(t, core.Position{Row: 7, Col: 7}, started.RookStart)
	assert.Equal(t, core.Position{Row: 5, Col: 2}, started.BishopStart)
	assert.Equal(t, 15, started.MaxTurns)
	assert.WithinDuration(t, time.Now(), started.Timestamp(), time.Second)

	ended := NewSimulationEndedEvent("sim-1", bishop, 4, false, time.Second)
	assert.Equal(t, "Bishop(W)", ended.Winner)
	assert.Equal(t, bishop.ID(), ended.WinnerID)
	assert.Equal(t, 4, ended.Turns)
	assert.False(t, ended.TurnLimitReached)

	transition := NewStateTransitionEvent("sim-1", "Running", "Ended", "winner found")
	assert.Equal(t, TypeStateTransition, transition.Type())
	assert.Equal(t, "Running", transition.FromPhase)
	assert.Equal(t, "Ended", transition.ToPhase)
}
