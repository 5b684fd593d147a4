// Package event reads GitHub Actions event payloads.
package event

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/runoshun/issue-guard/internal/domain"
)

// Ensure the package types implement the domain ports.
var (
	_ domain.EventLoader = Loader{}
	_ domain.Payload     = Payload{}
)

// Payload is a read-only view of the raw event JSON.
type Payload struct {
	raw string
}

// NewPayload wraps raw event JSON.
func NewPayload(raw []byte) Payload {
	return Payload{raw: string(raw)}
}

// Lookup resolves a dotted path such as "issue.user.login".
// Objects and arrays render as their JSON text; null counts as missing.
func (p Payload) Lookup(path string) (string, bool) {
	r := gjson.Get(p.raw, path)
	if !r.Exists() || r.Type == gjson.Null {
		return "", false
	}
	return r.String(), true
}

// Loader reads events from disk.
type Loader struct{}

// LoadEvent reads and parses the event at path.
func (Loader) LoadEvent(path string) (*domain.Event, error) {
	if path == "" {
		return nil, fmt.Errorf("event path is empty (set GITHUB_EVENT_PATH or --event-path): %w", domain.ErrInvalidEvent)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read event: %w", err)
	}
	return Parse(data)
}

// Parse builds a domain.Event from raw event JSON.
func Parse(data []byte) (*domain.Event, error) {
	if !gjson.ValidBytes(data) {
		return nil, domain.ErrInvalidEvent
	}
	root := gjson.ParseBytes(data)

	issue := root.Get("issue")
	if !issue.IsObject() {
		return nil, domain.ErrNoIssueInEvent
	}

	state, err := domain.ParseIssueState(issue.Get("state").String())
	if err != nil {
		return nil, fmt.Errorf("parse issue: %w", err)
	}

	var labels []string
	for _, l := range issue.Get("labels.#.name").Array() {
		labels = append(labels, l.String())
	}

	owner := root.Get("repository.owner.login").String()
	repo := root.Get("repository.name").String()
	if owner == "" || repo == "" {
		return nil, fmt.Errorf("repository owner or name missing: %w", domain.ErrInvalidEvent)
	}

	return &domain.Event{
		Name:    root.Get("action").String(),
		Payload: NewPayload(data),
		Issue: domain.Issue{
			Key: domain.IssueKey{
				Owner:  owner,
				Repo:   repo,
				Number: int(issue.Get("number").Int()),
			},
			Title:  issue.Get("title").String(),
			Body:   issue.Get("body").String(),
			Author: issue.Get("user.login").String(),
			State:  state,
			Labels: labels,
		},
	}, nil
}
