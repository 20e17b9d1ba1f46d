package engine

// GameState is the session lifecycle phase
type GameState uint8

const (
	StateNotStarted GameState = iota
	StateRunning
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateNotStarted:
		return "NotStarted"
	case StateRunning:
		return "Running"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
