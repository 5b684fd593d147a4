// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/issue-guard/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// GlobalConfigFile is the per-user configuration file name inside the global directory.
const GlobalConfigFile = "config.toml"

// Environment variables read by the loader. GitHub Actions exposes each
// action input as INPUT_<NAME> with the input name upper-cased.
const (
	EnvInputToken       = "INPUT_GITHUB-TOKEN"
	EnvInputMessage     = "INPUT_ISSUE-CLOSE-MESSAGE"
	EnvInputLabel       = "INPUT_CLOSED-ISSUES-LABEL"
	EnvInputTemplateDir = "INPUT_TEMPLATE-DIR"
	EnvToken            = "GITHUB_TOKEN"
	EnvEventPath        = "GITHUB_EVENT_PATH"
	EnvAPIURL           = "GITHUB_API_URL"
	EnvRunnerDebug      = "RUNNER_DEBUG"
)

// Loader loads configuration from TOML files and the environment.
type Loader struct {
	getenv        func(string) string
	repoRoot      string // Repository root; the repo config lives at .github/issue-guard.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/issue-guard)
}

// NewLoader creates a new Loader reading the process environment.
func NewLoader(repoRoot string) *Loader {
	return &Loader{
		getenv:        os.Getenv,
		repoRoot:      repoRoot,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithEnv creates a new Loader with a custom global config directory
// and environment lookup. This is useful for testing.
func NewLoaderWithEnv(repoRoot, globalConfDir string, getenv func(string) string) *Loader {
	return &Loader{
		getenv:        getenv,
		repoRoot:      repoRoot,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "issue-guard")
}

// Load returns the merged configuration.
// Precedence: default <- global file <- repo file <- environment.
func (l *Loader) Load() (domain.Config, error) {
	base := domain.NewDefaultConfig()

	if l.globalConfDir != "" {
		global, err := l.loadFile(filepath.Join(l.globalConfDir, GlobalConfigFile))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return domain.Config{}, err
		}
		if global != nil {
			base = mergeConfigs(base, *global)
		}
	}

	if l.repoRoot != "" {
		repo, err := l.loadFile(filepath.Join(l.repoRoot, domain.ConfigFileName))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return domain.Config{}, err
		}
		if repo != nil {
			base = mergeConfigs(base, *repo)
		}
	}

	return mergeConfigs(base, l.fromEnv()), nil
}

// fromEnv reads action inputs and runner variables.
// Empty values count as unset, since the runner exports declared but unset inputs as "".
func (l *Loader) fromEnv() domain.Config {
	cfg := domain.Config{
		Token:        l.getenv(EnvInputToken),
		CloseMessage: l.getenv(EnvInputMessage),
		ClosedLabel:  l.getenv(EnvInputLabel),
		TemplateDir:  l.getenv(EnvInputTemplateDir),
		EventPath:    l.getenv(EnvEventPath),
		APIURL:       l.getenv(EnvAPIURL),
	}
	if cfg.Token == "" {
		cfg.Token = l.getenv(EnvToken)
	}
	if l.getenv(EnvRunnerDebug) == "1" {
		cfg.Log.Level = "debug"
	}
	return cfg
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w: %w", path, domain.ErrInvalidConfig, err)
	}

	cfg := convertRawToDomainConfig(raw)
	return &cfg, nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) domain.Config {
	var res domain.Config
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "close":
			for k, v := range m {
				switch k {
				case "message":
					if s, ok := v.(string); ok {
						res.CloseMessage = s
					}
				case "label":
					if s, ok := v.(string); ok {
						res.ClosedLabel = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [close]: %s", k))
				}
			}
		case "templates":
			for k, v := range m {
				switch k {
				case "dir":
					if s, ok := v.(string); ok {
						res.TemplateDir = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [templates]: %s", k))
				}
			}
		case "github":
			for k, v := range m {
				switch k {
				case "api_url":
					if s, ok := v.(string); ok {
						res.APIURL = s
					}
				case "token":
					warnings = append(warnings, "[github].token is ignored; pass the token through the environment")
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [github]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.Log.Level = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override domain.Config) domain.Config {
	result := base
	if len(override.Warnings) > 0 {
		result.Warnings = append(append([]string{}, base.Warnings...), override.Warnings...)
	}

	if override.Token != "" {
		result.Token = override.Token
	}
	if override.CloseMessage != "" {
		result.CloseMessage = override.CloseMessage
	}
	if override.ClosedLabel != "" {
		result.ClosedLabel = override.ClosedLabel
	}
	if override.TemplateDir != "" {
		result.TemplateDir = override.TemplateDir
	}
	if override.EventPath != "" {
		result.EventPath = override.EventPath
	}
	if override.APIURL != "" {
		result.APIURL = override.APIURL
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	return result
}

// Overrides holds values set explicitly on the command line.
type Overrides struct {
	Token        string
	CloseMessage string
	ClosedLabel  string
	TemplateDir  string
	EventPath    string
	LogLevel     string
}

// Apply returns cfg with every non-empty override applied.
func (o Overrides) Apply(cfg domain.Config) domain.Config {
	return mergeConfigs(cfg, domain.Config{
		Token:        o.Token,
		CloseMessage: o.CloseMessage,
		ClosedLabel:  o.ClosedLabel,
		TemplateDir:  o.TemplateDir,
		EventPath:    o.EventPath,
		Log:          domain.LogConfig{Level: o.LogLevel},
	})
}
