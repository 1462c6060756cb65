package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mitchelldurbincs/RookBishopSimulator/internal/game"
	"github.com/mitchelldurbincs/RookBishopSimulator/internal/game/core"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned for formats other than text, json and yaml
var ErrUnknownFormat = errors.New("unknown report format")

// PieceInfo describes a piece at the end of a run
type PieceInfo struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Side   string `json:"side" yaml:"side"`
	Square string `json:"square" yaml:"square"`
}

// Result is the report for a single run
type Result struct {
	SimulationID     string    `json:"simulation_id" yaml:"simulation_id"`
	Winner           string    `json:"winner" yaml:"winner"`
	WinnerID         string    `json:"winner_id" yaml:"winner_id"`
	Turns            int       `json:"turns" yaml:"turns"`
	MaxTurns         int       `json:"max_turns" yaml:"max_turns"`
	TurnLimitReached bool      `json:"turn_limit_reached" yaml:"turn_limit_reached"`
	Rook             PieceInfo `json:"rook" yaml:"rook"`
	Bishop           PieceInfo `json:"bishop" yaml:"bishop"`
	Board            []string  `json:"board" yaml:"board"`
}

// Batch is the report for a batch of runs
type Batch struct {
	game.BatchStats `yaml:",inline"`
	AvgTurns        float64 `json:"mean_turns" yaml:"mean_turns"`
}

// NewResult builds a report from a finished simulator and its result
func NewResult(sim *game.Simulator, result game.SimResult) (Result, error) {
	if result.Winner == nil {
		return Result{}, fmt.Errorf("simulation %s has no winner", sim.SimID())
	}

	rook, err := pieceInfo(sim.Rook())
	if err != nil {
		return Result{}, err
	}
	bishop, err := pieceInfo(sim.Bishop())
	if err != nil {
		return Result{}, err
	}

	rows := sim.Board().Snapshot()
	board := make([]string, len(rows))
	for i, row := range rows {
		board[i] = strings.Join(row, " ")
	}

	return Result{
		SimulationID:     sim.SimID(),
		Winner:           result.Winner.String(),
		WinnerID:         result.Winner.ID(),
		Turns:            result.NumberOfTurns,
		MaxTurns:         sim.MaxTurns(),
		TurnLimitReached: result.TurnLimitReached,
		Rook:             rook,
		Bishop:           bishop,
		Board:            board,
	}, nil
}

func pieceInfo(p core.Piece) (PieceInfo, error) {
	square, err := core.Notation(p.Position())
	if err != nil {
		return PieceInfo{}, core.WrapPieceError(p, err)
	}
	return PieceInfo{
		ID:     p.ID(),
		Name:   p.Name(),
		Side:   p.Side().String(),
		Square: square,
	}, nil
}

// NewBatch builds a report from batch stats
func NewBatch(stats game.BatchStats) Batch {
	return Batch{BatchStats: stats, AvgTurns: stats.MeanTurns()}
}

// Text renders the one-line summary
func (r Result) Text() string {
	return fmt.Sprintf("%s won after %d turns", r.Winner, r.Turns)
}

// Text renders the batch totals, one per line
func (b Batch) Text() string {
	return fmt.Sprintf("Runs: %d\nRook wins: %d (%d at the turn limit)\nBishop wins: %d\nMean turns: %.2f",
		b.Runs, b.RookWins, b.TurnLimitWins, b.BishopWins, b.AvgTurns)
}

type texter interface {
	Text() string
}

// Write renders a Result or Batch to w in the given format
func Write(w io.Writer, format string, report texter) error {
	switch format {
	case FormatText, "":
		_, err := fmt.Fprintln(w, report.Text())
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
