package session

// StateKind enumerates the generation states of a session.
type StateKind int

const (
	StateIdle StateKind = iota
	StateGenerating
	StateDone
	StateFailed
)

func (k StateKind) String() string {
	switch k {
	case StateGenerating:
		return "generating"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// State is the tagged generation state. Exactly one of Idle, Generating, Done
// or Failed.
type State interface {
	Kind() StateKind
	isState()
}

// Idle means nothing has been generated yet.
type Idle struct{}

// Generating means the request numbered Seq is in flight.
type Generating struct {
	Seq uint64
}

// Done holds the latest generated report text.
type Done struct {
	Text string
}

// Failed holds the message shown to the user after a failed generation.
type Failed struct {
	Message string
}

func (Idle) Kind() StateKind       { return StateIdle }
func (Generating) Kind() StateKind { return StateGenerating }
func (Done) Kind() StateKind       { return StateDone }
func (Failed) Kind() StateKind     { return StateFailed }

func (Idle) isState()       {}
func (Generating) isState() {}
func (Done) isState()       {}
func (Failed) isState()     {}
