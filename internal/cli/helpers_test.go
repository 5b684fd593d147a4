package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/runoshun/issue-guard/internal/app"
	"github.com/runoshun/issue-guard/internal/domain"
	"github.com/runoshun/issue-guard/internal/infra/event"
	"github.com/runoshun/issue-guard/internal/testutil"
)

const bugTemplate = `---
name: Bug report
about: Report a problem
labels: bug
---

### Describe the bug

### Code to reproduce

` + "```\n<placeholder>\n```\n"

const validBody = "### Describe the bug\n\nIt crashes.\n\n### Code to reproduce\n\n```python\ndef foo(): pass\n```\n"

// stubRepo is a domain.Repository with a fixed remote.
type stubRepo struct {
	err   error
	root  string
	owner string
	repo  string
}

func (s stubRepo) Root() string { return s.root }

func (s stubRepo) RemoteRepo() (string, string, error) {
	return s.owner, s.repo, s.err
}

// newTestContainer creates a container rooted at a temp dir holding the bug template.
func newTestContainer(t *testing.T, cfg domain.Config, repo domain.Repository) (*app.Container, *bytes.Buffer) {
	t.Helper()

	root := t.TempDir()
	dir := filepath.Join(root, domain.DefaultTemplateDir)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bug.md"), []byte(bugTemplate), 0o644))

	var logs bytes.Buffer
	c := app.NewWithDeps(app.Config{RepoRoot: root, InRepo: repo != nil}, &testutil.MockConfigLoader{Config: cfg}, event.Loader{}, repo, &logs)
	return c, &logs
}

// executeCommand runs the root command with args and returns stdout.
func executeCommand(t *testing.T, c *app.Container, stdin string, args ...string) (string, error) {
	t.Helper()

	root := NewRootCommand(c, "test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(bytes.NewBufferString(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}
