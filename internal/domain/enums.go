package domain

// AppMode selects which view of the report is rendered. It is orthogonal to
// the generation state of a session.
type AppMode string

const (
	ModeField AppMode = "field"
	ModeAdmin AppMode = "admin"
)

// Toggle returns the other mode.
func (m AppMode) Toggle() AppMode {
	if m == ModeAdmin {
		return ModeField
	}
	return ModeAdmin
}

// Label returns the human-facing name of the mode.
func (m AppMode) Label() string {
	switch m {
	case ModeAdmin:
		return "Admin / Cost"
	default:
		return "Field Entry"
	}
}
