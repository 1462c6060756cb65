package rules

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/RookBishopSimulator/internal/game/core"
)

// WinConditionChecker decides whether either piece can capture the other
type WinConditionChecker struct {
	logger zerolog.Logger
}

// NewWinConditionChecker creates a new win condition checker
func NewWinConditionChecker(logger zerolog.Logger) *WinConditionChecker {
	return &WinConditionChecker{
		logger: logger.With().Str("component", "WinConditionChecker").Logger(),
	}
}

// DetermineWinner returns the piece that could capture its opponent from the
// current positions, or nil. The rook is checked first and the bishop second,
// so when both could capture the bishop wins.
func (wc *WinConditionChecker) DetermineWinner(rook, bishop core.Piece) core.Piece {
	var winner core.Piece

	rookCanCapture := CanCapture(rook, bishop)
	bishopCanCapture := CanCapture(bishop, rook)

	if rookCanCapture {
		winner = rook
	}
	if bishopCanCapture {
		winner = bishop
	}

	ev := wc.logger.Debug().
		Bool("rook_can_capture", rookCanCapture).
		Bool("bishop_can_capture", bishopCanCapture)
	if winner != nil {
		ev = ev.Str("winner", winner.String())
	}
	ev.Msg("Win condition check complete")

	return winner
}

// CanCapture reports whether attacker's movement rule reaches target's cell
func CanCapture(attacker, target core.Piece) bool {
	return attacker.IsValidMove(target.Position())
}
