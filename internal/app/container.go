// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/runoshun/issue-guard/internal/domain"
	"github.com/runoshun/issue-guard/internal/infra/config"
	"github.com/runoshun/issue-guard/internal/infra/event"
	"github.com/runoshun/issue-guard/internal/infra/git"
	"github.com/runoshun/issue-guard/internal/infra/github"
	"github.com/runoshun/issue-guard/internal/infra/logging"
	"github.com/runoshun/issue-guard/internal/infra/markdown"
	"github.com/runoshun/issue-guard/internal/infra/templates"
	"github.com/runoshun/issue-guard/internal/usecase"
)

// EnvGitHubActions is set to "true" by the Actions runner.
const EnvGitHubActions = "GITHUB_ACTIONS"

// Config holds the application paths.
type Config struct {
	RepoRoot string // Root of the git working tree, or the start directory outside a repository
	InRepo   bool   // Whether RepoRoot is a git working tree
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	ConfigLoader domain.ConfigLoader
	Events       domain.EventLoader
	Repository   domain.Repository // nil outside a git repository

	// Pointer fields
	Parser *markdown.Parser
	Logger *slog.Logger
	level  *slog.LevelVar

	// Configuration
	Config Config
}

// New creates a new Container rooted at the repository containing dir.
// Outside a repository dir itself is used as the root.
func New(dir string) (*Container, error) {
	cfg := Config{RepoRoot: dir}

	var repo domain.Repository
	gitClient, err := git.NewClient(dir)
	switch {
	case err == nil:
		repo = gitClient
		cfg.RepoRoot = gitClient.Root()
		cfg.InRepo = true
	case errors.Is(err, domain.ErrNotGitRepository):
	default:
		return nil, err
	}

	configLoader := config.NewLoader(cfg.RepoRoot)
	appConfig, _ := configLoader.Load() // ignore error, use defaults; commands report it

	level := new(slog.LevelVar)
	level.Set(logging.ParseLevel(appConfig.Log.Level))
	logger := logging.New(os.Stderr, level, os.Getenv(EnvGitHubActions) == "true")

	return &Container{
		ConfigLoader: configLoader,
		Events:       event.Loader{},
		Repository:   repo,
		Parser:       markdown.New(),
		Logger:       logger,
		level:        level,
		Config:       cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, loader domain.ConfigLoader, events domain.EventLoader, repo domain.Repository, w io.Writer) *Container {
	level := new(slog.LevelVar)
	return &Container{
		ConfigLoader: loader,
		Events:       events,
		Repository:   repo,
		Parser:       markdown.New(),
		Logger:       logging.New(w, level, false),
		level:        level,
		Config:       cfg,
	}
}

// LoadConfig resolves the effective configuration with command line overrides applied.
func (c *Container) LoadConfig(o config.Overrides) (domain.Config, error) {
	cfg, err := c.ConfigLoader.Load()
	if err != nil {
		return domain.Config{}, err
	}
	cfg = o.Apply(cfg)
	c.level.Set(logging.ParseLevel(cfg.Log.Level))
	for _, w := range cfg.Warnings {
		c.Logger.Warn(w, "category", "config")
	}
	return cfg, nil
}

// Checker returns a checker backed by the markdown parser.
func (c *Container) Checker() *domain.Checker {
	return domain.NewChecker(c.Parser, c.Parser)
}

// TemplateSource returns the template source for cfg.
func (c *Container) TemplateSource(cfg domain.Config) *templates.Source {
	return templates.New(cfg.TemplatePath(c.Config.RepoRoot), c.Parser)
}

// IssueTracker returns a GitHub client for cfg.
func (c *Container) IssueTracker(cfg domain.Config) (*github.Client, error) {
	return github.New(cfg.Token, cfg.APIURL, c.Logger)
}

// UseCase factory methods

// EnforceTemplateUseCase returns a new EnforceTemplate use case.
func (c *Container) EnforceTemplateUseCase(cfg domain.Config) (*usecase.EnforceTemplate, error) {
	tracker, err := c.IssueTracker(cfg)
	if err != nil {
		return nil, err
	}
	return usecase.NewEnforceTemplate(cfg, tracker, c.TemplateSource(cfg), c.Checker(), c.Logger), nil
}

// CheckIssueUseCase returns a new CheckIssue use case.
// The tracker is only wired when a token is available.
func (c *Container) CheckIssueUseCase(cfg domain.Config) (*usecase.CheckIssue, error) {
	var tracker domain.IssueTracker
	if cfg.Token != "" {
		client, err := c.IssueTracker(cfg)
		if err != nil {
			return nil, err
		}
		tracker = client
	}
	return usecase.NewCheckIssue(tracker, c.TemplateSource(cfg), c.Checker()), nil
}

// ListTemplatesUseCase returns a new ListTemplates use case.
func (c *Container) ListTemplatesUseCase(cfg domain.Config) *usecase.ListTemplates {
	return usecase.NewListTemplates(c.TemplateSource(cfg))
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigLoader, c.Config.RepoRoot)
}
