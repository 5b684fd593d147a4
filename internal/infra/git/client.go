// Package git locates the local repository and its GitHub remote.
package git

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-git/go-git/v5"

	"github.com/runoshun/issue-guard/internal/domain"
)

// Ensure Client implements domain.Repository.
var _ domain.Repository = (*Client)(nil)

// DefaultRemote is the remote consulted for the GitHub owner and repository.
const DefaultRemote = "origin"

// Client wraps an opened repository.
type Client struct {
	repo     *git.Repository
	repoRoot string // Working tree root
}

// NewClient opens the repository containing dir, searching parent directories.
func NewClient(dir string) (*Client, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, domain.ErrNotGitRepository
		}
		return nil, fmt.Errorf("open repository: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("open worktree: %w", err)
	}
	return &Client{repo: repo, repoRoot: wt.Filesystem.Root()}, nil
}

// Root returns the working tree root.
func (c *Client) Root() string {
	return c.repoRoot
}

// RemoteRepo returns the owner and name of the origin remote.
func (c *Client) RemoteRepo() (owner, repo string, err error) {
	remote, err := c.repo.Remote(DefaultRemote)
	if err != nil {
		if errors.Is(err, git.ErrRemoteNotFound) {
			return "", "", domain.ErrNoRemote
		}
		return "", "", fmt.Errorf("read remote %s: %w", DefaultRemote, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", "", domain.ErrNoRemote
	}
	return ParseRemoteURL(urls[0])
}

// ParseRemoteURL extracts owner and repo from a remote URL.
// Supports both SSH and HTTPS formats:
//   - git@github.com:owner/repo.git
//   - ssh://git@github.com/owner/repo.git
//   - https://github.com/owner/repo.git
//   - https://github.com/owner/repo
func ParseRemoteURL(remoteURL string) (owner, repo string, err error) {
	remoteURL = strings.TrimSpace(remoteURL)

	var path string
	switch {
	case strings.Contains(remoteURL, "://"):
		u, perr := url.Parse(remoteURL)
		if perr != nil {
			return "", "", fmt.Errorf("invalid remote URL %s: %w", remoteURL, perr)
		}
		path = u.Path
	case strings.Contains(remoteURL, "@") && strings.Contains(remoteURL, ":"):
		// scp-like syntax: user@host:owner/repo.git
		path = remoteURL[strings.Index(remoteURL, ":")+1:]
	default:
		return "", "", fmt.Errorf("unsupported remote URL: %s", remoteURL)
	}

	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")
	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid remote URL: %s", remoteURL)
	}
	return parts[0], parts[1], nil
}
