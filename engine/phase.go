package engine

// GamePhase is the simulation lifecycle stage
type GamePhase uint8

const (
	PhaseNotStarted GamePhase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

func (p GamePhase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseRunning:
		return "Running"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// AcceptsMoves reports whether direction commands are taken in this phase
func (p GamePhase) AcceptsMoves() bool {
	return p == PhaseNotStarted || p == PhaseRunning
}
