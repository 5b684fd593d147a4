// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"slices"

	"github.com/runoshun/issue-guard/internal/domain"
)

// Ensure mocks implement their ports.
var (
	_ domain.IssueTracker   = (*MockIssueTracker)(nil)
	_ domain.TemplateSource = (*MockTemplateSource)(nil)
	_ domain.ConfigLoader   = (*MockConfigLoader)(nil)
)

// TrackerCall records one mutating or reading call on MockIssueTracker.
type TrackerCall struct {
	Op  string // "get", "list_labels", "remove_label", "add_labels", "comment", "state"
	Arg string // Label name(s), comment body or state
}

// MockIssueTracker is a test double for domain.IssueTracker.
// It keeps a single in-memory issue and records every call in order.
// Fields are ordered to minimize memory padding.
type MockIssueTracker struct {
	Issue          *domain.Issue
	Calls          []TrackerCall
	Comments       []string
	GetErr         error
	ListLabelsErr  error
	RemoveLabelErr error
	AddLabelsErr   error
	CommentErr     error
	UpdateStateErr error
}

// NewMockIssueTracker creates a tracker holding a copy of issue.
func NewMockIssueTracker(issue domain.Issue) *MockIssueTracker {
	issue.Labels = slices.Clone(issue.Labels)
	return &MockIssueTracker{Issue: &issue}
}

// GetIssue returns a copy of the stored issue.
func (m *MockIssueTracker) GetIssue(_ context.Context, key domain.IssueKey) (*domain.Issue, error) {
	m.Calls = append(m.Calls, TrackerCall{Op: "get", Arg: key.String()})
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	issue := *m.Issue
	issue.Labels = slices.Clone(m.Issue.Labels)
	return &issue, nil
}

// ListLabels returns the stored labels.
func (m *MockIssueTracker) ListLabels(_ context.Context, _ domain.IssueKey) ([]string, error) {
	m.Calls = append(m.Calls, TrackerCall{Op: "list_labels"})
	if m.ListLabelsErr != nil {
		return nil, m.ListLabelsErr
	}
	return slices.Clone(m.Issue.Labels), nil
}

// RemoveLabel removes a label from the stored issue.
func (m *MockIssueTracker) RemoveLabel(_ context.Context, _ domain.IssueKey, name string) error {
	m.Calls = append(m.Calls, TrackerCall{Op: "remove_label", Arg: name})
	if m.RemoveLabelErr != nil {
		return m.RemoveLabelErr
	}
	m.Issue.Labels = slices.DeleteFunc(m.Issue.Labels, func(l string) bool { return l == name })
	return nil
}

// AddLabels adds labels that are not already present.
func (m *MockIssueTracker) AddLabels(_ context.Context, _ domain.IssueKey, labels []string) error {
	for _, l := range labels {
		m.Calls = append(m.Calls, TrackerCall{Op: "add_labels", Arg: l})
	}
	if m.AddLabelsErr != nil {
		return m.AddLabelsErr
	}
	for _, l := range labels {
		if !slices.Contains(m.Issue.Labels, l) {
			m.Issue.Labels = append(m.Issue.Labels, l)
		}
	}
	return nil
}

// CreateComment records a comment.
func (m *MockIssueTracker) CreateComment(_ context.Context, _ domain.IssueKey, body string) error {
	m.Calls = append(m.Calls, TrackerCall{Op: "comment", Arg: body})
	if m.CommentErr != nil {
		return m.CommentErr
	}
	m.Comments = append(m.Comments, body)
	return nil
}

// UpdateState sets the stored issue state.
func (m *MockIssueTracker) UpdateState(_ context.Context, _ domain.IssueKey, state domain.IssueState) error {
	m.Calls = append(m.Calls, TrackerCall{Op: "state", Arg: string(state)})
	if m.UpdateStateErr != nil {
		return m.UpdateStateErr
	}
	m.Issue.State = state
	return nil
}

// Ops returns the recorded operation names in call order.
func (m *MockIssueTracker) Ops() []string {
	ops := make([]string, 0, len(m.Calls))
	for _, c := range m.Calls {
		ops = append(ops, c.Op)
	}
	return ops
}

// MockTemplateSource is a test double for domain.TemplateSource.
type MockTemplateSource struct {
	Templates []domain.Template
	LoadErr   error
	Loads     int
}

// Load returns the configured templates.
func (m *MockTemplateSource) Load(_ context.Context) ([]domain.Template, error) {
	m.Loads++
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Templates, nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	LoadErr error
	Config  domain.Config
}

// Load returns the configured config.
func (m *MockConfigLoader) Load() (domain.Config, error) {
	if m.LoadErr != nil {
		return domain.Config{}, m.LoadErr
	}
	return m.Config, nil
}
