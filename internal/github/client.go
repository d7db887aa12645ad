// Package github is a minimal client for the GitHub repository listing
// used on profile pages.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"devconnect/internal/models"
	"devconnect/internal/observability"
)

// Repo is the subset of repository fields the profile page renders.
type Repo struct {
	Name            string `json:"name"`
	HTMLURL         string `json:"html_url"`
	Description     string `json:"description"`
	StargazersCount int    `json:"stargazers_count"`
	WatchersCount   int    `json:"watchers_count"`
	ForksCount      int    `json:"forks_count"`
}

// Client calls the GitHub API with service credentials. Credentials are
// sent as basic auth and must never surface in errors or logs.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
}

// NewClient returns a Client for api.github.com. A single attempt per
// lookup, bounded by the HTTP client timeout; no retries.
func NewClient(clientID, clientSecret string) *Client {
	return &Client{
		baseURL:      "https://api.github.com",
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Repos returns up to the 5 most recently created public repositories
// for the given username. Any failure (transport, non-200, bad body)
// maps to the same upstream error so nothing internal leaks to callers.
func (c *Client) Repos(ctx context.Context, username string) ([]Repo, error) {
	endpoint := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created&direction=desc",
		c.baseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, models.NewUpstreamError("No Github profile found")
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.clientID != "" && c.clientSecret != "" {
		req.SetBasicAuth(c.clientID, c.clientSecret)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		observability.GithubLookups.WithLabelValues("error").Inc()
		return nil, models.NewUpstreamError("No Github profile found")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		observability.GithubLookups.WithLabelValues("non_200").Inc()
		return nil, models.NewUpstreamError("No Github profile found")
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		observability.GithubLookups.WithLabelValues("error").Inc()
		return nil, models.NewUpstreamError("No Github profile found")
	}

	var repos []Repo
	if err := json.Unmarshal(body, &repos); err != nil {
		observability.GithubLookups.WithLabelValues("bad_body").Inc()
		return nil, models.NewUpstreamError("No Github profile found")
	}

	observability.GithubLookups.WithLabelValues("ok").Inc()
	return repos, nil
}
