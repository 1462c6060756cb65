package states

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/RookBishopSimulator/internal/game/events"
)

// Transition represents a state transition in the history
type Transition struct {
	From      SimPhase
	To        SimPhase
	Timestamp time.Time
	Reason    string
}

// StateMachine tracks the phase of one simulation run
type StateMachine struct {
	mu           sync.RWMutex
	simID        string
	currentPhase SimPhase
	history      []Transition
	eventBus     events.Publisher
	logger       zerolog.Logger
}

// NewStateMachine creates a state machine in PhaseInitializing. eventBus may be nil.
func NewStateMachine(simID string, eventBus events.Publisher, logger zerolog.Logger) *StateMachine {
	return &StateMachine{
		simID:        simID,
		currentPhase: PhaseInitializing,
		history:      make([]Transition, 0, 4),
		eventBus:     eventBus,
		logger:       logger.With().Str("component", "StateMachine").Str("simulation_id", simID).Logger(),
	}
}

// CurrentPhase returns the current phase
func (sm *StateMachine) CurrentPhase() SimPhase {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.currentPhase
}

// TransitionTo attempts to transition to the specified phase
func (sm *StateMachine) TransitionTo(targetPhase SimPhase, reason string) error {
	sm.mu.Lock()
	previousPhase := sm.currentPhase
	if !previousPhase.CanTransitionTo(targetPhase) {
		sm.mu.Unlock()
		return fmt.Errorf("invalid transition from %s to %s", previousPhase, targetPhase)
	}

	sm.history = append(sm.history, Transition{
		From:      previousPhase,
		To:        targetPhase,
		Timestamp: time.Now(),
		Reason:    reason,
	})
	sm.currentPhase = targetPhase
	sm.mu.Unlock()

	// published outside the lock so subscribers may query the machine
	if sm.eventBus != nil {
		sm.eventBus.Publish(events.NewStateTransitionEvent(
			sm.simID,
			previousPhase.String(),
			targetPhase.String(),
			reason,
		))
	}

	sm.logger.Debug().
		Str("from_phase", previousPhase.String()).
		Str("to_phase", targetPhase.String()).
		Str("reason", reason).
		Msg("State transition completed")

	return nil
}

// GetHistory returns a copy of the transition history
func (sm *StateMachine) GetHistory() []Transition {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	history := make([]Transition, len(sm.history))
	copy(history, sm.history)
	return history
}

// CanTransitionTo checks if a transition to the target phase is allowed
func (sm *StateMachine) CanTransitionTo(targetPhase SimPhase) bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.currentPhase.CanTransitionTo(targetPhase)
}
