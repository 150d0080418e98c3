// Package tracker proxies the GitHub issues API so dashboard users can file
// and browse bug reports for the configured repository without their own
// GitHub credentials.  Thin I/O wrapper; no pagination beyond GitHub's
// defaults, no retries.
package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Issue is the subset of the GitHub issue payload exposed to the dashboard.
type Issue struct {
	Number  int      `json:"number"`
	Title   string   `json:"title"`
	Body    string   `json:"body"`
	State   string   `json:"state"`
	HTMLURL string   `json:"html_url"`
	Labels  []string `json:"labels"`
}

// Client talks to the GitHub REST API for one repository.
type Client struct {
	base  string
	repo  string // "owner/repo"
	token string
	http  *http.Client
}

// NewClient builds a client for the given repository.  base is overridable
// for tests; empty means api.github.com.
func NewClient(base, repo, token string) *Client {
	if base == "" {
		base = "https://api.github.com"
	}
	return &Client{
		base:  base,
		repo:  repo,
		token: token,
		http:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured reports whether a target repository is set.
func (c *Client) Configured() bool { return c.repo != "" }

// ListIssues returns the repository's issues in the given state
// ("open", "closed", "all"; empty means open).
func (c *Client) ListIssues(ctx context.Context, state string) ([]Issue, error) {
	if state == "" {
		state = "open"
	}
	u := fmt.Sprintf("%s/repos/%s/issues?state=%s", c.base, c.repo, state)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	c.auth(req)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tracker: list issues: status %d", resp.StatusCode)
	}

	var raw []struct {
		Number  int    `json:"number"`
		Title   string `json:"title"`
		Body    string `json:"body"`
		State   string `json:"state"`
		HTMLURL string `json:"html_url"`
		Labels  []struct {
			Name string `json:"name"`
		} `json:"labels"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}
	out := make([]Issue, 0, len(raw))
	for _, r := range raw {
		iss := Issue{Number: r.Number, Title: r.Title, Body: r.Body, State: r.State, HTMLURL: r.HTMLURL}
		for _, l := range r.Labels {
			iss.Labels = append(iss.Labels, l.Name)
		}
		out = append(out, iss)
	}
	return out, nil
}

// CreateIssue opens a new issue and returns it.
func (c *Client) CreateIssue(ctx context.Context, title, body string, labels []string) (Issue, error) {
	payload, err := json.Marshal(map[string]any{
		"title":  title,
		"body":   body,
		"labels": labels,
	})
	if err != nil {
		return Issue{}, err
	}
	u := fmt.Sprintf("%s/repos/%s/issues", c.base, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return Issue{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	c.auth(req)
	resp, err := c.http.Do(req)
	if err != nil {
		return Issue{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return Issue{}, fmt.Errorf("tracker: create issue: status %d", resp.StatusCode)
	}

	var r struct {
		Number  int    `json:"number"`
		Title   string `json:"title"`
		Body    string `json:"body"`
		State   string `json:"state"`
		HTMLURL string `json:"html_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return Issue{}, err
	}
	return Issue{Number: r.Number, Title: r.Title, Body: r.Body, State: r.State, HTMLURL: r.HTMLURL}, nil
}

func (c *Client) auth(req *http.Request) {
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
