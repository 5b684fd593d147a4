package event

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/issue-guard/internal/domain"
)

const openedEvent = `{
  "action": "opened",
  "issue": {
    "number": 7,
    "title": "Crash on start",
    "body": "## Describe the bug\nIt crashes.",
    "state": "open",
    "labels": [{"name": "bug"}, {"name": "triage"}],
    "user": {"login": "octocat"},
    "milestone": null
  },
  "repository": {
    "name": "hello-world",
    "owner": {"login": "acme"}
  },
  "sender": {"login": "octocat"}
}`

func TestParse(t *testing.T) {
	ev, err := Parse([]byte(openedEvent))

	require.NoError(t, err)
	assert.Equal(t, "opened", ev.Name)
	assert.Equal(t, domain.IssueKey{Owner: "acme", Repo: "hello-world", Number: 7}, ev.Issue.Key)
	assert.Equal(t, "Crash on start", ev.Issue.Title)
	assert.Equal(t, "## Describe the bug\nIt crashes.", ev.Issue.Body)
	assert.Equal(t, "octocat", ev.Issue.Author)
	assert.Equal(t, domain.StateOpen, ev.Issue.State)
	assert.Equal(t, []string{"bug", "triage"}, ev.Issue.Labels)
}

func TestParse_NullBody(t *testing.T) {
	ev, err := Parse([]byte(`{"issue":{"number":1,"state":"closed","body":null},"repository":{"name":"r","owner":{"login":"o"}}}`))

	require.NoError(t, err)
	assert.Empty(t, ev.Issue.Body)
	assert.Equal(t, domain.StateClosed, ev.Issue.State)
	assert.Empty(t, ev.Issue.Labels)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		data    string
	}{
		{name: "invalid json", data: `{"issue":`, wantErr: domain.ErrInvalidEvent},
		{name: "no issue", data: `{"pull_request":{}}`, wantErr: domain.ErrNoIssueInEvent},
		{name: "bad state", data: `{"issue":{"state":"merged"},"repository":{"name":"r","owner":{"login":"o"}}}`, wantErr: domain.ErrInvalidIssueState},
		{name: "no repository", data: `{"issue":{"state":"open"}}`, wantErr: domain.ErrInvalidEvent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPayload_Lookup(t *testing.T) {
	p := NewPayload([]byte(openedEvent))

	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{"issue.user.login", "octocat", true},
		{"issue.number", "7", true},
		{"issue.labels.1.name", "triage", true},
		{"repository.owner", `{"login": "acme"}`, true},
		{"issue.milestone", "", false},
		{"issue.assignee.login", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := p.Lookup(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPayload_RendersCloseMessage(t *testing.T) {
	msg, err := domain.RenderMessage(domain.DefaultCloseMessage, NewPayload([]byte(openedEvent)))

	require.NoError(t, err)
	assert.Contains(t, msg, "@octocat: hello!")
}

func TestLoader_LoadEvent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "event.json")
	require.NoError(t, os.WriteFile(path, []byte(openedEvent), 0o600))

	ev, err := Loader{}.LoadEvent(path)
	require.NoError(t, err)
	assert.Equal(t, 7, ev.Issue.Key.Number)

	_, err = Loader{}.LoadEvent(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Loader{}.LoadEvent("")
	assert.ErrorIs(t, err, domain.ErrInvalidEvent)
}
