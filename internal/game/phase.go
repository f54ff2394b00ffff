package game

import "github.com/verte-zerg/hitzone/internal/model"

// Phase names where a session is in its lifecycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseCountdown
	PhaseReady
	PhaseRotating
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCountdown:
		return "counting down"
	case PhaseReady:
		return "ready"
	case PhaseRotating:
		return "rotating"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// PhaseOf derives the lifecycle phase from a state snapshot.
func PhaseOf(st model.GameState) Phase {
	switch {
	case st.IsWin:
		return PhaseWon
	case st.IsLoose:
		return PhaseLost
	case st.IsRotating:
		return PhaseRotating
	case st.IsStarted && st.Countdown > 0:
		return PhaseCountdown
	case st.IsStarted:
		return PhaseReady
	default:
		return PhaseIdle
	}
}
