package states

import "fmt"

// SimPhase represents the current phase of a simulation run
type SimPhase int

const (
	// PhaseInitializing - board and pieces being set up
	PhaseInitializing SimPhase = iota

	// PhaseRunning - turns remain and no winner yet
	PhaseRunning

	// PhaseEnded - winner found or turn cap reached
	PhaseEnded

	// PhaseError - a move or configuration error aborted the run
	PhaseError
)

// String returns the string representation of a SimPhase
func (p SimPhase) String() string {
	switch p {
	case PhaseInitializing:
		return "Initializing"
	case PhaseRunning:
		return "Running"
	case PhaseEnded:
		return "Ended"
	case PhaseError:
		return "Error"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// IsTerminal returns true if the phase represents a terminal state
func (p SimPhase) IsTerminal() bool {
	return p == PhaseEnded || p == PhaseError
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p SimPhase) AllowedTransitions() []SimPhase {
	switch p {
	case PhaseInitializing:
		return []SimPhase{PhaseRunning, PhaseError}
	case PhaseRunning:
		return []SimPhase{PhaseEnded, PhaseError}
	default:
		return []SimPhase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p SimPhase) CanTransitionTo(target SimPhase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}
