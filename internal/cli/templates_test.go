package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/issue-guard/internal/domain"
)

func TestTemplatesCommand(t *testing.T) {
	// Setup
	c, _ := newTestContainer(t, domain.NewDefaultConfig(), nil)

	// Execute
	out, err := executeCommand(t, c, "", "templates")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Bug report")
	assert.Contains(t, out, "bug.md")
	assert.Contains(t, out, "Describe the bug, Code to reproduce")
}

func TestTemplatesCommand_EmptyDir(t *testing.T) {
	// Setup
	c, _ := newTestContainer(t, domain.NewDefaultConfig(), nil)

	// Execute
	out, err := executeCommand(t, c, "", "templates", "--template-dir", t.TempDir())

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out, "No templates found")
}

func TestTemplatesCommand_MissingDir(t *testing.T) {
	// Setup
	cfg := domain.NewDefaultConfig()
	cfg.TemplateDir = "does/not/exist"
	c, _ := newTestContainer(t, cfg, nil)

	// Execute
	_, err := executeCommand(t, c, "", "templates")

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load templates")
}
