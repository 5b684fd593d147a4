package domain

import "errors"

// Domain errors.
var (
	ErrMissingToken           = errors.New("github token is required (set INPUT_GITHUB-TOKEN, GITHUB_TOKEN or --token)")
	ErrInvalidMessageTemplate = errors.New("invalid close message template")
	ErrInvalidConfig          = errors.New("invalid configuration")
	ErrInvalidEvent           = errors.New("invalid event payload")
	ErrNoIssueInEvent         = errors.New("event payload does not contain an issue")
	ErrInvalidIssueState      = errors.New("invalid issue state")
	ErrInvalidFrontMatter     = errors.New("invalid template front matter")
	ErrNotGitRepository       = errors.New("not a git repository (or any of the parent directories)")
	ErrNoRemote               = errors.New("no GitHub remote configured")
)
