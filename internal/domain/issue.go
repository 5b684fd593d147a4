// Package domain contains core business entities and interfaces.
package domain

import (
	"fmt"
	"slices"
)

// IssueState is the open/closed state of an issue on the tracker.
type IssueState string

const (
	StateOpen   IssueState = "open"
	StateClosed IssueState = "closed"
)

// ParseIssueState converts a tracker state string into an IssueState.
func ParseIssueState(s string) (IssueState, error) {
	switch IssueState(s) {
	case StateOpen, StateClosed:
		return IssueState(s), nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrInvalidIssueState)
}

// IssueKey identifies an issue on the tracker.
type IssueKey struct {
	Owner  string
	Repo   string
	Number int
}

// String returns the owner/repo#number form.
func (k IssueKey) String() string {
	return fmt.Sprintf("%s/%s#%d", k.Owner, k.Repo, k.Number)
}

// Issue is the state of an issue as read once from the triggering event.
// Fields are ordered to minimize memory padding.
type Issue struct {
	Key    IssueKey
	Title  string
	Body   string
	Author string     // Login of the issue author
	State  IssueState // open or closed
	Labels []string
}

// IsClosed returns true if the issue is closed.
func (i *Issue) IsClosed() bool {
	return i.State == StateClosed
}

// HasLabel returns true if the issue carries the given label.
func (i *Issue) HasLabel(name string) bool {
	return slices.Contains(i.Labels, name)
}
