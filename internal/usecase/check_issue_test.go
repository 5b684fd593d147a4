package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/issue-guard/internal/domain"
	"github.com/runoshun/issue-guard/internal/infra/markdown"
	"github.com/runoshun/issue-guard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckIssue(tracker domain.IssueTracker, src *testutil.MockTemplateSource) *CheckIssue {
	parser := markdown.New()
	return NewCheckIssue(tracker, src, domain.NewChecker(parser, parser))
}

func TestCheckIssue_Execute_LocalBody(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantValid bool
	}{
		{"valid body", validBody, true},
		{"missing title", "### Describe the bug\n", false},
		{"superset of titles", "## Extra\n\n" + validBody + "\n## Environment\n", true},
		{"empty body", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			src := &testutil.MockTemplateSource{Templates: bugTemplates()}
			uc := newCheckIssue(nil, src)

			// Execute
			out, err := uc.Execute(context.Background(), CheckIssueInput{Body: tt.body})

			// Assert
			require.NoError(t, err)
			assert.Nil(t, out.Issue)
			assert.Len(t, out.Templates, 1)
			assert.Equal(t, tt.wantValid, out.Verdict.IsValid())
		})
	}
}

func TestCheckIssue_Execute_MissingTitlesReported(t *testing.T) {
	// Setup
	src := &testutil.MockTemplateSource{Templates: bugTemplates()}
	uc := newCheckIssue(nil, src)

	// Execute
	out, err := uc.Execute(context.Background(), CheckIssueInput{Body: "### Describe the bug\n"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"Bug report": {"Code to reproduce"}}, out.Verdict.MissingTitles)
}

func TestCheckIssue_Execute_FetchesIssue(t *testing.T) {
	// Setup
	issue := newTestIssue(domain.StateOpen, validBody)
	tracker := testutil.NewMockIssueTracker(issue)
	src := &testutil.MockTemplateSource{Templates: bugTemplates()}
	uc := newCheckIssue(tracker, src)

	// Execute
	out, err := uc.Execute(context.Background(), CheckIssueInput{Body: "ignored", Key: issue.Key})

	// Assert
	require.NoError(t, err)
	require.NotNil(t, out.Issue)
	assert.Equal(t, issue.Key, out.Issue.Key)
	assert.True(t, out.Verdict.IsValid())
	assert.Equal(t, []string{"get"}, tracker.Ops())
}

func TestCheckIssue_Execute_Errors(t *testing.T) {
	t.Run("no tracker for remote issue", func(t *testing.T) {
		uc := newCheckIssue(nil, &testutil.MockTemplateSource{})

		_, err := uc.Execute(context.Background(), CheckIssueInput{Key: domain.IssueKey{Owner: "o", Repo: "r", Number: 1}})

		assert.ErrorIs(t, err, domain.ErrMissingToken)
	})

	t.Run("get issue", func(t *testing.T) {
		tracker := testutil.NewMockIssueTracker(newTestIssue(domain.StateOpen, ""))
		tracker.GetErr = assert.AnError
		uc := newCheckIssue(tracker, &testutil.MockTemplateSource{})

		_, err := uc.Execute(context.Background(), CheckIssueInput{Key: domain.IssueKey{Owner: "o", Repo: "r", Number: 1}})

		assert.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "get issue")
	})

	t.Run("load templates", func(t *testing.T) {
		uc := newCheckIssue(nil, &testutil.MockTemplateSource{LoadErr: assert.AnError})

		_, err := uc.Execute(context.Background(), CheckIssueInput{Body: validBody})

		assert.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "load templates")
	})
}

func TestListTemplates_Execute(t *testing.T) {
	// Setup
	src := &testutil.MockTemplateSource{Templates: bugTemplates()}
	uc := NewListTemplates(src)

	// Execute
	out, err := uc.Execute(context.Background(), ListTemplatesInput{})

	// Assert
	require.NoError(t, err)
	require.Len(t, out.Templates, 1)
	assert.Equal(t, []string{"Describe the bug", "Code to reproduce"}, out.Templates[0].Titles())
	assert.Equal(t, 1, src.Loads)
}

func TestListTemplates_Execute_Error(t *testing.T) {
	// Setup
	uc := NewListTemplates(&testutil.MockTemplateSource{LoadErr: assert.AnError})

	// Execute
	_, err := uc.Execute(context.Background(), ListTemplatesInput{})

	// Assert
	assert.ErrorIs(t, err, assert.AnError)
}
