package usecase

import "strings"

// Intent classifies an assistant command into one of a fixed set of
// actions. Classification is plain keyword dispatch on the lowercased
// command; there is no dialogue state.
type Intent int

const (
	IntentUnknown Intent = iota
	IntentGreet
	IntentStatus
	IntentProcess
	IntentHelp
)

// String returns the wire tag for the intent.
func (i Intent) String() string {
	switch i {
	case IntentGreet:
		return "greet"
	case IntentStatus:
		return "status"
	case IntentProcess:
		return "process"
	case IntentHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ClassifyIntent maps a free-text command to an Intent. Triggers are
// checked in a fixed order, first hit wins.
func ClassifyIntent(command string) Intent {
	c := strings.ToLower(command)
	switch {
	case strings.Contains(c, "hello"):
		return IntentGreet
	case strings.Contains(c, "catalog"), strings.Contains(c, "status"):
		return IntentStatus
	case strings.Contains(c, "process"), strings.Contains(c, "fill"), strings.Contains(c, "enrich"):
		return IntentProcess
	case strings.Contains(c, "help"):
		return IntentHelp
	default:
		return IntentUnknown
	}
}
