package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/RookBishopSimulator/internal/common"
	"github.com/mitchelldurbincs/RookBishopSimulator/internal/game/core"
	"github.com/mitchelldurbincs/RookBishopSimulator/internal/game/events"
	"github.com/mitchelldurbincs/RookBishopSimulator/internal/game/rules"
	"github.com/mitchelldurbincs/RookBishopSimulator/internal/game/states"
)

// SimulatorConfig holds everything needed to set up a run
type SimulatorConfig struct {
	RookStart   core.Position
	BishopStart core.Position
	MaxTurns    int

	// Optional collaborators; zero values get defaults in NewSimulator
	Random   common.RandomSource
	IDs      core.IDSource
	EventBus *events.EventBus
	Logger   zerolog.Logger // zero value logs nothing
	SimID    string
}

// SimResult is the outcome of one run
type SimResult struct {
	Winner        core.Piece
	NumberOfTurns int
	// TurnLimitReached is set when nobody could capture before the cap and
	// the rook won by default
	TurnLimitReached bool
}

// Simulator runs a rook moving at random against a stationary bishop
type Simulator struct {
	rook          *core.Rook
	bishop        *core.Bishop
	board         *core.Board
	maxTurns      int
	numberOfTurns int

	random       common.RandomSource
	eventBus     *events.EventBus
	winCondition *rules.WinConditionChecker
	stateMachine *states.StateMachine
	simID        string
	logger       zerolog.Logger
}

// NewSimulator places a black rook and a white bishop on an 8x8 board
func NewSimulator(cfg SimulatorConfig) (*Simulator, error) {
	if cfg.MaxTurns < 0 {
		return nil, fmt.Errorf("%w: max turns %d is negative", ErrInvalidConfig, cfg.MaxTurns)
	}

	if cfg.SimID == "" {
		cfg.SimID = uuid.NewString()
	}
	logger := cfg.Logger.With().Str("component", "Simulator").Str("simulation_id", cfg.SimID).Logger()

	if cfg.Random == nil {
		logger.Debug().Msg("No random source provided, creating time-seeded source")
		cfg.Random = common.NewRandSource(nil)
	}
	if cfg.EventBus == nil {
		cfg.EventBus = events.NewEventBus()
	}

	rook := core.NewRook(cfg.RookStart, core.Black, cfg.IDs)
	bishop := core.NewBishop(cfg.BishopStart, core.White, cfg.IDs)

	board, err := core.NewBoard(core.BoardRanks, core.BoardFiles, rook, bishop)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	s := &Simulator{
		rook:         rook,
		bishop:       bishop,
		board:        board,
		maxTurns:     cfg.MaxTurns,
		random:       cfg.Random,
		eventBus:     cfg.EventBus,
		winCondition: rules.NewWinConditionChecker(logger),
		stateMachine: states.NewStateMachine(cfg.SimID, cfg.EventBus, logger),
		simID:        cfg.SimID,
		logger:       logger,
	}

	logger.Debug().
		Str("rook", rook.Position().String()).
		Str("bishop", bishop.Position().String()).
		Int("max_turns", cfg.MaxTurns).
		Msg("Simulator created")

	return s, nil
}

// Simulate runs turns until a piece could capture the other or the turn cap
// is reached. The win check happens before each move, so starting positions
// that already allow a capture end the run after zero turns. At the cap the
// rook wins by default.
func (s *Simulator) Simulate() (SimResult, error) {
	if err := s.stateMachine.TransitionTo(states.PhaseRunning, "simulation started"); err != nil {
		return SimResult{}, fmt.Errorf("%w: %w", ErrSimulationFinished, err)
	}

	start := time.Now()
	s.eventBus.Publish(events.NewSimulationStartedEvent(s.simID, s.rook, s.bishop, s.maxTurns))
	s.publishBoard()

	var winner core.Piece
	for i := 0; i < s.maxTurns; i++ {
		winner = s.DetermineWinner()
		if winner != nil {
			break
		}

		s.numberOfTurns++
		if err := s.moveRook(); err != nil {
			s.fail(err)
			return SimResult{}, fmt.Errorf("turn %d: %w", s.numberOfTurns, err)
		}
		s.publishBoard()
	}

	result := SimResult{Winner: winner, NumberOfTurns: s.numberOfTurns}
	reason := "capture possible"
	if winner == nil {
		result.Winner = s.rook
		result.TurnLimitReached = true
		reason = "turn limit reached"
	}

	if err := s.stateMachine.TransitionTo(states.PhaseEnded, reason); err != nil {
		return SimResult{}, err
	}
	s.eventBus.Publish(events.NewSimulationEndedEvent(
		s.simID,
		result.Winner,
		result.NumberOfTurns,
		result.TurnLimitReached,
		time.Since(start),
	))

	s.logger.Info().
		Str("winner", result.Winner.String()).
		Int("turns", result.NumberOfTurns).
		Bool("turn_limit_reached", result.TurnLimitReached).
		Msg("Simulation finished")

	return result, nil
}

// DetermineWinner returns the piece that could capture the other right now, or nil
func (s *Simulator) DetermineWinner() core.Piece {
	return s.winCondition.DetermineWinner(s.rook, s.bishop)
}

func (s *Simulator) fail(err error) {
	s.logger.Error().Err(err).Int("turn", s.numberOfTurns).Msg("Simulation aborted")
	if tErr := s.stateMachine.TransitionTo(states.PhaseError, err.Error()); tErr != nil {
		s.logger.Error().Err(tErr).Msg("Failed to transition to Error state")
	}
}

func (s *Simulator) publishBoard() {
	s.eventBus.Publish(events.NewBoardRenderedEvent(s.simID, s.numberOfTurns, s.board.String()))
}

// Public accessors
func (s *Simulator) Rook() *core.Rook           { return s.rook }
func (s *Simulator) Bishop() *core.Bishop       { return s.bishop }
func (s *Simulator) Board() *core.Board         { return s.board }
func (s *Simulator) MaxTurns() int              { return s.maxTurns }
func (s *Simulator) NumberOfTurns() int         { return s.numberOfTurns }
func (s *Simulator) SimID() string              { return s.simID }
func (s *Simulator) Phase() states.SimPhase     { return s.stateMachine.CurrentPhase() }
func (s *Simulator) EventBus() *events.EventBus { return s.eventBus }
