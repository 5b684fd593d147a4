package domain

// Action is the lifecycle transition applied to an issue.
type Action string

const (
	ActionNone   Action = "none"   // Nothing changed
	ActionReopen Action = "reopen" // Label removed and issue reopened
	ActionClose  Action = "close"  // Labeled, commented and closed
)

// Display returns a human-readable representation of the action.
func (a Action) Display() string {
	switch a {
	case ActionReopen:
		return "Reopened"
	case ActionClose:
		return "Closed"
	default:
		return "No change"
	}
}

// Event is a triggering issue event.
type Event struct {
	Payload Payload
	Issue   Issue
	Name    string // Action name from the payload, e.g. "opened" or "edited"
}
