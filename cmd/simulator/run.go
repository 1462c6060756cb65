package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/RookBishopSimulator/internal/common"
	"github.com/mitchelldurbincs/RookBishopSimulator/internal/config"
	"github.com/mitchelldurbincs/RookBishopSimulator/internal/game"
	"github.com/mitchelldurbincs/RookBishopSimulator/internal/game/core"
	"github.com/mitchelldurbincs/RookBishopSimulator/internal/game/events"
	"github.com/mitchelldurbincs/RookBishopSimulator/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/RookBishopSimulator/internal/report"
)

// flagOverrides holds flag values; -1 and empty mean "use config"
type flagOverrides struct {
	logLevel string
	runs     int
	seed     int64
	maxTurns int
	output   string
}

// options is the resolved configuration for one invocation
type options struct {
	rookStart   core.Position
	bishopStart core.Position
	maxTurns    int
	seed        int64
	runs        int
	logLevel    string
	logFormat   string
	output      string
	boardLog    bool

	// boardOut receives the per-turn board and move lines; nil picks
	// stdout for text reports and stderr otherwise
	boardOut io.Writer
	logger   *zerolog.Logger
}

func resolveOptions(c *config.Config, f flagOverrides) (options, error) {
	opts := options{
		rookStart:   c.Simulation.RookStart.Position(),
		bishopStart: c.Simulation.BishopStart.Position(),
		maxTurns:    c.Simulation.MaxTurns,
		seed:        c.Simulation.Seed,
		runs:        c.Simulation.Runs,
		logLevel:    c.Logging.Level,
		logFormat:   c.Logging.Format,
		output:      c.Output.Format,
		boardLog:    c.Output.BoardLog,
	}

	// Use config defaults if not overridden by flags
	if f.logLevel != "" {
		opts.logLevel = f.logLevel
	}
	if f.runs != -1 {
		opts.runs = f.runs
	}
	if f.seed != -1 {
		opts.seed = f.seed
	}
	if f.maxTurns != -1 {
		opts.maxTurns = f.maxTurns
	}
	if f.output != "" {
		opts.output = f.output
	}

	if opts.runs <= 0 {
		return opts, fmt.Errorf("%w: runs must be positive, got %d", game.ErrInvalidConfig, opts.runs)
	}
	if opts.maxTurns < 0 {
		return opts, fmt.Errorf("%w: max turns must be non-negative, got %d", game.ErrInvalidConfig, opts.maxTurns)
	}
	switch opts.output {
	case report.FormatText, report.FormatJSON, report.FormatYAML:
	default:
		return opts, fmt.Errorf("%w: %q", report.ErrUnknownFormat, opts.output)
	}
	return opts, nil
}

// configReload is a reloaded config resolved against the flags, or the
// reason it was rejected
type configReload struct {
	opts options
	err  error
}

// reloadHandler builds the WatchConfig callback. It runs on the watcher
// goroutine, so it only sends on out and never logs. A reload arriving while
// another is still queued is dropped.
func reloadHandler(overrides flagOverrides, out chan<- configReload) func(*config.Config, error) {
	return func(c *config.Config, err error) {
		var r configReload
		if err != nil {
			r.err = err
		} else {
			r.opts, r.err = resolveOptions(c, overrides)
		}
		select {
		case out <- r:
		default:
		}
	}
}

// run executes one simulation, or a batch when runs > 1, and writes the
// report to out
func run(ctx context.Context, out io.Writer, opts options) error {
	logger := log.Logger
	if opts.logger != nil {
		logger = *opts.logger
	}

	var random common.RandomSource
	if opts.seed == 0 {
		random = common.NewRandSource(nil)
	} else {
		random = common.NewSeededSource(opts.seed)
	}

	bus := events.NewEventBus()
	eventLogger := subscribers.NewLoggerSubscriber("event-logger", logger, zerolog.DebugLevel)
	eventLogger.SetDevMode(zerolog.GlobalLevel() == zerolog.TraceLevel)
	bus.Subscribe(eventLogger)

	// batches only report totals
	if opts.boardLog && opts.runs == 1 {
		boardOut := opts.boardOut
		if boardOut == nil {
			boardOut = os.Stdout
			if opts.output != report.FormatText {
				boardOut = os.Stderr
			}
		}
		bus.Subscribe(subscribers.NewConsoleSubscriber("console", boardOut, true))
	}

	cfg := game.SimulatorConfig{
		RookStart:   opts.rookStart,
		BishopStart: opts.bishopStart,
		MaxTurns:    opts.maxTurns,
		Random:      random,
		EventBus:    bus,
		Logger:      logger,
	}

	logger.Info().
		Str("rook", opts.rookStart.String()).
		Str("bishop", opts.bishopStart.String()).
		Int("max_turns", opts.maxTurns).
		Int("runs", opts.runs).
		Int64("seed", opts.seed).
		Msg("Starting simulation")

	if opts.runs > 1 {
		stats, _, err := game.RunBatch(ctx, cfg, opts.runs)
		if err != nil {
			return err
		}
		return report.Write(out, opts.output, report.NewBatch(stats))
	}

	sim, err := game.NewSimulator(cfg)
	if err != nil {
		return err
	}
	result, err := sim.Simulate()
	if err != nil {
		return err
	}
	r, err := report.NewResult(sim, result)
	if err != nil {
		return err
	}
	return report.Write(out, opts.output, r)
}
