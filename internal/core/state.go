package core

// State represents the lifecycle state of a resource.
type State string

const (
	StateStopped State = "stopped"
	StateRunning State = "running"
	StateDeleted State = "deleted"
)

func (s State) String() string {
	return string(s)
}
