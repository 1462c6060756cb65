package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/RookBishopSimulator/internal/game/core"
	"github.com/mitchelldurbincs/RookBishopSimulator/internal/testutil"
)

func TestWrapRight(t *testing.T) {
	tests := []struct {
		name     string
		col      int
		spaces   int
		expected int
	}{
		{"no wrap", 1, 4, 5},
		{"wrap from last file", 7, 3, 2},
		{"full lap", 0, 8, 0},
		{"land on last file", 0, 7, 7},
		{"max dice", 7, 12, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WrapRight(tt.col, tt.spaces, core.BoardFiles))
		})
	}
}

func TestWrapUp(t *testing.T) {
	tests := []struct {
		name     string
		row      int
		spaces   int
		expected int
	}{
		{"no wrap", 7, 3, 4},
		{"land on top row", 5, 5, 0},
		{"wrap by remainder", 1, 5, 4},
		{"exact multiple", 0, 8, 0},
		{"full lap", 3, 8, 3},
		{"max dice", 7, 12, 3},
		{"wrap one past top", 2, 3, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WrapUp(tt.row, tt.spaces, core.BoardRanks))
		})
	}
}

func TestWrap_AlwaysInRange(t *testing.T) {
	for start := 0; start < 8; start++ {
		for spaces := 2; spaces <= 12; spaces++ {
			col := WrapRight(start, spaces, core.BoardFiles)
			row := WrapUp(start, spaces, core.BoardRanks)
			assert.True(t, col >= 0 && col < core.BoardFiles, "col %d from %d+%d", col, start, spaces)
			assert.True(t, row >= 0 && row < core.BoardRanks, "row %d from %d-%d", row, start, spaces)
		}
	}
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "UP", DirectionUp.String())
	assert.Equal(t, "RIGHT", DirectionRight.String())
	assert.Equal(t, "Direction(9)", Direction(9).String())
}

func TestCalculateMoveData(t *testing.T) {
	tests := []struct {
		name     string
		rolls    [3]int
		expected RookMoveData
	}{
		{"heads moves right", [3]int{0, 3, 4}, RookMoveData{Direction: DirectionRight, NumberOfSpaces: 7}},
		{"tails moves up", [3]int{1, 6, 6}, RookMoveData{Direction: DirectionUp, NumberOfSpaces: 12}},
		{"minimum roll", [3]int{1, 1, 1}, RookMoveData{Direction: DirectionUp, NumberOfSpaces: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			random := testutil.RookMoves(tt.rolls)
			sim := newTestSimulator(t, core.Position{Row: 7, Col: 7}, core.Position{Row: 5, Col: 2}, 1, random)

			assert.Equal(t, tt.expected, sim.CalculateMoveData())
			assert.Equal(t, 3, random.Calls)
		})
	}
}

func TestCalculateMoveData_OnlyRightOrUp(t *testing.T) {
	sim := newTestSimulator(t, core.Position{Row: 7, Col: 7}, core.Position{Row: 5, Col: 2}, 1, testutil.NewTestSource(99))

	for i := 0; i < 500; i++ {
		move := sim.CalculateMoveData()
		assert.Contains(t, []Direction{DirectionUp, DirectionRight}, move.Direction)
		assert.True(t, move.NumberOfSpaces >= 2 && move.NumberOfSpaces <= 12)
	}
}

func TestTargetFor(t *testing.T) {
	sim := newTestSimulator(t, core.Position{Row: 1, Col: 7}, core.Position{Row: 5, Col: 2}, 1, safeCycle())

	right, err := sim.TargetFor(RookMoveData{Direction: DirectionRight, NumberOfSpaces: 3})
	require.NoError(t, err)
	assert.Equal(t, core.Position{Row: 1, Col: 2}, right)

	up, err := sim.TargetFor(RookMoveData{Direction: DirectionUp, NumberOfSpaces: 5})
	require.NoError(t, err)
	assert.Equal(t, core.Position{Row: 4, Col: 7}, up)

	_, err = sim.TargetFor(RookMoveData{Direction: Direction(7), NumberOfSpaces: 2})
	assert.ErrorIs(t, err, ErrNoDirection)
}

func TestApplyRookMove(t *testing.T) {
	sim := newTestSimulator(t, core.Position{Row: 7, Col: 7}, core.Position{Row: 5, Col: 2}, 1, safeCycle())
	rec := record(sim.EventBus())

	require.NoError(t, sim.applyRookMove(RookMoveData{Direction: DirectionUp, NumberOfSpaces: 9}))

	assert.Equal(t, core.Position{Row: 6, Col: 7}, sim.Rook().Position())
	_, ok, err := sim.Board().GetPieceByPosition(core.Position{Row: 7, Col: 7})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []string{"Moving rook UP 9 spaces from h1 to h2"}, rec.moves)
}

func TestApplyRookMove_UnknownDirection(t *testing.T) {
	sim := newTestSimulator(t, core.Position{Row: 7, Col: 7}, core.Position{Row: 5, Col: 2}, 1, safeCycle())
	rec := record(sim.EventBus())

	err := sim.applyRookMove(RookMoveData{Direction: Direction(3), NumberOfSpaces: 4})
	assert.ErrorIs(t, err, ErrNoDirection)
	assert.Equal(t, core.Position{Row: 7, Col: 7}, sim.Rook().Position())
	assert.Empty(t, rec.moves)
}
