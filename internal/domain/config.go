package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ConfigFileName is the repository configuration file, relative to the repo root.
const ConfigFileName = ".github/issue-guard.toml"

// DefaultAPIURL is the public GitHub REST endpoint.
const DefaultAPIURL = "https://api.github.com"

// Config is the effective configuration for one invocation.
// It is resolved once at startup and passed by value.
// Fields are ordered to minimize memory padding.
type Config struct {
	Token        string    // Never read from files
	CloseMessage string    // Close comment template
	ClosedLabel  string    // Label marking template-closed issues (optional)
	TemplateDir  string    // Issue template directory
	EventPath    string    // Path to the event payload JSON
	APIURL       string    // GitHub REST endpoint
	Warnings     []string  // Unknown keys and other non-fatal issues
	Log          LogConfig // [log] settings
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string // Log level: debug, info, warn, error
}

// NewDefaultConfig returns the configuration used when nothing is set.
func NewDefaultConfig() Config {
	return Config{
		CloseMessage: DefaultCloseMessage,
		TemplateDir:  DefaultTemplateDir,
		APIURL:       DefaultAPIURL,
		Log:          LogConfig{Level: "info"},
	}
}

// Validate checks the settings required to act on an issue.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return ErrMissingToken
	}
	if err := ValidateMessage(c.CloseMessage); err != nil {
		return err
	}
	if c.TemplateDir == "" {
		return fmt.Errorf("template directory is empty: %w", ErrInvalidConfig)
	}
	return nil
}

// TemplatePath resolves the template directory against root.
func (c Config) TemplatePath(root string) string {
	if filepath.IsAbs(c.TemplateDir) {
		return c.TemplateDir
	}
	return filepath.Join(root, c.TemplateDir)
}

// MaskedToken returns the token with all but its last four characters hidden.
func (c Config) MaskedToken() string {
	if c.Token == "" {
		return "(not set)"
	}
	if len(c.Token) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(c.Token)-4) + c.Token[len(c.Token)-4:]
}
