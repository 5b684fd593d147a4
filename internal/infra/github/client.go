// Package github implements domain.IssueTracker on top of the GitHub REST API.
package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/go-github/v68/github"

	"github.com/runoshun/issue-guard/internal/domain"
)

// Ensure Client implements domain.IssueTracker.
var _ domain.IssueTracker = (*Client)(nil)

// rateLimitMaxElapsed bounds how long a single call waits out rate limiting.
const rateLimitMaxElapsed = 30 * time.Second

// Client talks to the GitHub issues API.
type Client struct {
	gh      *github.Client
	logger  *slog.Logger
	backOff func() backoff.BackOff
}

// New creates a Client authenticated with token.
// apiURL may point at a GitHub Enterprise REST endpoint; empty means api.github.com.
func New(token, apiURL string, logger *slog.Logger) (*Client, error) {
	return NewWithHTTPClient(nil, token, apiURL, logger)
}

// NewWithHTTPClient creates a Client using httpClient for transport.
// This is primarily used for testing with httptest servers.
func NewWithHTTPClient(httpClient *http.Client, token, apiURL string, logger *slog.Logger) (*Client, error) {
	gh := github.NewClient(httpClient)
	if token != "" {
		gh = gh.WithAuthToken(token)
	}
	if apiURL != "" && apiURL != domain.DefaultAPIURL {
		if !strings.HasSuffix(apiURL, "/") {
			apiURL += "/"
		}
		u, err := url.Parse(apiURL)
		if err != nil {
			return nil, fmt.Errorf("parse api url: %w", err)
		}
		gh.BaseURL = u
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{gh: gh, logger: logger, backOff: newRateLimitBackOff}, nil
}

func newRateLimitBackOff() backoff.BackOff {
	// BackOff implementations are stateful; always return a fresh instance.
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = rateLimitMaxElapsed
	return bo
}

// isRateLimited reports whether err is a primary or secondary rate limit.
func isRateLimited(err error) bool {
	var rle *github.RateLimitError
	var arle *github.AbuseRateLimitError
	return errors.As(err, &rle) || errors.As(err, &arle)
}

// withRetry runs op, retrying only while GitHub reports rate limiting.
func (c *Client) withRetry(ctx context.Context, name string, op func() error) error {
	return backoff.RetryNotify(func() error {
		err := op()
		if err != nil && isRateLimited(err) {
			return err
		}
		if err != nil {
			return backoff.Permanent(err)
		}
		return nil
	}, backoff.WithContext(c.backOff(), ctx), func(err error, d time.Duration) {
		c.logger.Warn("rate limited, retrying", "category", "github", "op", name, "wait", d, "error", err)
	})
}

// GetIssue retrieves an issue.
func (c *Client) GetIssue(ctx context.Context, key domain.IssueKey) (*domain.Issue, error) {
	var issue *github.Issue
	err := c.withRetry(ctx, "get issue", func() error {
		var err error
		issue, _, err = c.gh.Issues.Get(ctx, key.Owner, key.Repo, key.Number)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get issue %s: %w", key, err)
	}

	state, err := domain.ParseIssueState(issue.GetState())
	if err != nil {
		return nil, fmt.Errorf("get issue %s: %w", key, err)
	}
	labels := make([]string, 0, len(issue.Labels))
	for _, l := range issue.Labels {
		labels = append(labels, l.GetName())
	}
	return &domain.Issue{
		Key:    key,
		Title:  issue.GetTitle(),
		Body:   issue.GetBody(),
		Author: issue.GetUser().GetLogin(),
		State:  state,
		Labels: labels,
	}, nil
}

// ListLabels returns every label name on the issue, following pagination.
func (c *Client) ListLabels(ctx context.Context, key domain.IssueKey) ([]string, error) {
	var names []string
	opts := &github.ListOptions{PerPage: 100}
	for {
		var labels []*github.Label
		var resp *github.Response
		err := c.withRetry(ctx, "list labels", func() error {
			var err error
			labels, resp, err = c.gh.Issues.ListLabelsByIssue(ctx, key.Owner, key.Repo, key.Number, opts)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("list labels on %s: %w", key, err)
		}
		for _, l := range labels {
			names = append(names, l.GetName())
		}
		if resp == nil || resp.NextPage == 0 {
			return names, nil
		}
		opts.Page = resp.NextPage
	}
}

// RemoveLabel removes a label from the issue.
func (c *Client) RemoveLabel(ctx context.Context, key domain.IssueKey, name string) error {
	err := c.withRetry(ctx, "remove label", func() error {
		_, err := c.gh.Issues.RemoveLabelForIssue(ctx, key.Owner, key.Repo, key.Number, name)
		return err
	})
	if err != nil {
		return fmt.Errorf("remove label %q from %s: %w", name, key, err)
	}
	return nil
}

// AddLabels adds labels to the issue.
func (c *Client) AddLabels(ctx context.Context, key domain.IssueKey, labels []string) error {
	err := c.withRetry(ctx, "add labels", func() error {
		_, _, err := c.gh.Issues.AddLabelsToIssue(ctx, key.Owner, key.Repo, key.Number, labels)
		return err
	})
	if err != nil {
		return fmt.Errorf("add labels to %s: %w", key, err)
	}
	return nil
}

// CreateComment posts a comment on the issue.
func (c *Client) CreateComment(ctx context.Context, key domain.IssueKey, body string) error {
	err := c.withRetry(ctx, "create comment", func() error {
		_, _, err := c.gh.Issues.CreateComment(ctx, key.Owner, key.Repo, key.Number, &github.IssueComment{Body: github.Ptr(body)})
		return err
	})
	if err != nil {
		return fmt.Errorf("comment on %s: %w", key, err)
	}
	return nil
}

// UpdateState opens or closes the issue.
func (c *Client) UpdateState(ctx context.Context, key domain.IssueKey, state domain.IssueState) error {
	err := c.withRetry(ctx, "update state", func() error {
		_, _, err := c.gh.Issues.Edit(ctx, key.Owner, key.Repo, key.Number, &github.IssueRequest{State: github.Ptr(string(state))})
		return err
	})
	if err != nil {
		return fmt.Errorf("set %s state to %s: %w", key, state, err)
	}
	return nil
}
