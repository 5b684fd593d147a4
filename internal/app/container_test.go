package app

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/issue-guard/internal/domain"
	"github.com/runoshun/issue-guard/internal/infra/config"
	"github.com/runoshun/issue-guard/internal/infra/event"
	"github.com/runoshun/issue-guard/internal/testutil"
)

func TestNew_InRepository(t *testing.T) {
	// Setup
	root := t.TempDir()
	_, err := git.PlainInit(root, false)
	require.NoError(t, err)

	// Execute
	c, err := New(root)

	// Assert
	require.NoError(t, err)
	assert.True(t, c.Config.InRepo)
	assert.NotNil(t, c.Repository)
	assert.Equal(t, root, c.Config.RepoRoot)
}

func TestNew_OutsideRepository(t *testing.T) {
	// Setup
	dir := t.TempDir()

	// Execute
	c, err := New(dir)

	// Assert
	require.NoError(t, err)
	assert.False(t, c.Config.InRepo)
	assert.Nil(t, c.Repository)
	assert.Equal(t, dir, c.Config.RepoRoot)
}

func TestContainer_LoadConfig(t *testing.T) {
	// Setup
	base := domain.NewDefaultConfig()
	base.ClosedLabel = "from-file"
	base.Warnings = []string{"unknown section: extra"}
	var logs bytes.Buffer
	c := NewWithDeps(Config{RepoRoot: t.TempDir()}, &testutil.MockConfigLoader{Config: base}, event.Loader{}, nil, &logs)

	// Execute
	cfg, err := c.LoadConfig(config.Overrides{ClosedLabel: "from-flag"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.ClosedLabel)
	assert.Contains(t, logs.String(), "[WARN] [config] unknown section: extra")
}

func TestContainer_LoadConfig_Error(t *testing.T) {
	// Setup
	c := NewWithDeps(Config{}, &testutil.MockConfigLoader{LoadErr: domain.ErrInvalidConfig}, event.Loader{}, nil, &bytes.Buffer{})

	// Execute
	_, err := c.LoadConfig(config.Overrides{})

	// Assert
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestContainer_UseCaseFactories(t *testing.T) {
	// Setup
	root := t.TempDir()
	c := NewWithDeps(Config{RepoRoot: root}, &testutil.MockConfigLoader{}, event.Loader{}, nil, &bytes.Buffer{})
	cfg := domain.NewDefaultConfig()
	cfg.Token = "token"

	// Execute
	enforce, err := c.EnforceTemplateUseCase(cfg)
	require.NoError(t, err)
	check, err := c.CheckIssueUseCase(cfg)
	require.NoError(t, err)

	// Assert
	assert.NotNil(t, enforce)
	assert.NotNil(t, check)
	assert.NotNil(t, c.ListTemplatesUseCase(cfg))
	assert.NotNil(t, c.ShowConfigUseCase())
	assert.Equal(t, filepath.Join(root, domain.DefaultTemplateDir), c.TemplateSource(cfg).Dir())
}

func TestContainer_IssueTracker_InvalidURL(t *testing.T) {
	// Setup
	c := NewWithDeps(Config{}, &testutil.MockConfigLoader{}, event.Loader{}, nil, &bytes.Buffer{})
	cfg := domain.NewDefaultConfig()
	cfg.APIURL = "://bad"

	// Execute
	_, err := c.EnforceTemplateUseCase(cfg)

	// Assert
	assert.Error(t, err)
}
