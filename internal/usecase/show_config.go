package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/issue-guard/internal/domain"
)

// ShowConfigInput contains the input for the ShowConfig use case.
type ShowConfigInput struct{}

// ShowConfigOutput contains the output of the ShowConfig use case.
type ShowConfigOutput struct {
	Path         string        // Repository config file path
	TemplatePath string        // Resolved template directory
	Config       domain.Config // Effective configuration
	Exists       bool          // Whether the repository config file exists
}

// ShowConfig reports the effective configuration and where it came from.
type ShowConfig struct {
	loader   domain.ConfigLoader
	repoRoot string
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(loader domain.ConfigLoader, repoRoot string) *ShowConfig {
	return &ShowConfig{
		loader:   loader,
		repoRoot: repoRoot,
	}
}

// Execute loads the configuration.
func (uc *ShowConfig) Execute(_ context.Context, _ ShowConfigInput) (*ShowConfigOutput, error) {
	cfg, err := uc.loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	path := filepath.Join(uc.repoRoot, domain.ConfigFileName)
	exists := true
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat config: %w", err)
		}
		exists = false
	}

	return &ShowConfigOutput{
		Path:         path,
		TemplatePath: cfg.TemplatePath(uc.repoRoot),
		Config:       cfg,
		Exists:       exists,
	}, nil
}
