package config

// GameStateID is the run state of the game loop
type GameStateID int

const (
	StateExit GameStateID = iota
	StateRunning
)

func (s GameStateID) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateExit:
		return "exit"
	default:
		return "unknown"
	}
}
