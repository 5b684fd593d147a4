package domain

import "context"

// IssueTracker is the remote issue tracker. Every call may fail with a
// network or auth error; callers treat failures as fatal for the run.
type IssueTracker interface {
	// GetIssue retrieves an issue.
	GetIssue(ctx context.Context, key IssueKey) (*Issue, error)

	// ListLabels returns the names of the labels on an issue.
	ListLabels(ctx context.Context, key IssueKey) ([]string, error)

	// RemoveLabel removes a label from an issue.
	RemoveLabel(ctx context.Context, key IssueKey, name string) error

	// AddLabels adds labels to an issue. Adding a present label is a no-op.
	AddLabels(ctx context.Context, key IssueKey, labels []string) error

	// CreateComment posts a comment on an issue.
	CreateComment(ctx context.Context, key IssueKey, body string) error

	// UpdateState opens or closes an issue.
	UpdateState(ctx context.Context, key IssueKey, state IssueState) error
}

// TemplateSource loads the configured issue templates.
type TemplateSource interface {
	// Load returns the templates sorted by file name.
	Load(ctx context.Context) ([]Template, error)
}

// EventLoader reads the triggering event.
type EventLoader interface {
	// LoadEvent parses the event at path.
	LoadEvent(path string) (*Event, error)
}

// ConfigLoader resolves the effective configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults, file, environment).
	Load() (Config, error)
}

// Repository describes the local git checkout.
type Repository interface {
	// Root returns the working tree root.
	Root() string

	// RemoteRepo returns the owner and name of the GitHub origin remote.
	RemoteRepo() (owner, repo string, err error)
}
