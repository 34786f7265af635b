package config

// StateID identifies a player movement state.
type StateID int

const (
	StateNone StateID = iota - 1

	Idle
	Running
)

func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	default:
		return "none"
	}
}
