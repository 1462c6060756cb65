package game

import (
	"context"
	"fmt"

	"github.com/mitchelldurbincs/RookBishopSimulator/internal/game/core"
)

// BatchStats summarises many runs from the same starting positions
type BatchStats struct {
	Runs          int `json:"runs" yaml:"runs"`
	RookWins      int `json:"rook_wins" yaml:"rook_wins"`
	BishopWins    int `json:"bishop_wins" yaml:"bishop_wins"`
	TurnLimitWins int `json:"turn_limit_wins" yaml:"turn_limit_wins"` // rook wins by default, included in RookWins
	TotalTurns    int `json:"total_turns" yaml:"total_turns"`
}

// Record adds one result to the stats
func (b *BatchStats) Record(r SimResult) {
	b.Runs++
	b.TotalTurns += r.NumberOfTurns
	if r.TurnLimitReached {
		b.TurnLimitWins++
	}
	switch r.Winner.(type) {
	case *core.Rook:
		b.RookWins++
	case *core.Bishop:
		b.BishopWins++
	}
}

// MeanTurns is the average number of turns per run
func (b BatchStats) MeanTurns() float64 {
	if b.Runs == 0 {
		return 0
	}
	return float64(b.TotalTurns) / float64(b.Runs)
}

// RunBatch runs the configured simulation runs times, sharing the random
// source and event bus. SimIDs get a -<n> suffix when a base ID is set.
// It stops early if ctx is cancelled.
func RunBatch(ctx context.Context, cfg SimulatorConfig, runs int) (BatchStats, []SimResult, error) {
	var stats BatchStats
	if runs <= 0 {
		return stats, nil, fmt.Errorf("%w: runs must be positive, got %d", ErrInvalidConfig, runs)
	}

	baseID := cfg.SimID
	results := make([]SimResult, 0, runs)
	for i := 0; i < runs; i++ {
		select {
		case <-ctx.Done():
			cfg.Logger.Warn().Err(ctx.Err()).Int("completed_runs", i).Msg("Batch cancelled")
			return stats, results, ctx.Err()
		default:
		}

		runCfg := cfg
		if baseID != "" {
			runCfg.SimID = fmt.Sprintf("%s-%d", baseID, i+1)
		}

		sim, err := NewSimulator(runCfg)
		if err != nil {
			return stats, results, err
		}
		// reuse the first run's defaults so every run draws from one sequence
		cfg.Random = sim.random
		cfg.EventBus = sim.eventBus

		result, err := sim.Simulate()
		if err != nil {
			return stats, results, fmt.Errorf("run %d: %w", i+1, err)
		}
		stats.Record(result)
		results = append(results, result)
	}

	cfg.Logger.Info().
		Int("runs", stats.Runs).
		Int("rook_wins", stats.RookWins).
		Int("bishop_wins", stats.BishopWins).
		Float64("mean_turns", stats.MeanTurns()).
		Msg("Batch finished")

	return stats, results, nil
}
