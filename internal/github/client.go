// Package github lists repositories through the go-github library.
package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"
	gh "github.com/google/go-github/v82/github"

	"github.com/dvieira/portfolio-be/internal/models"
)

// Client wraps the go-github client behind the RepoLister contract.
type Client struct {
	gh *gh.Client
}

// NewClient creates a GitHub API client. The token is optional; without one
// requests run against the anonymous rate limit. The ratelimit middleware
// sleeps through secondary rate limits instead of failing.
func NewClient(token string) *Client {
	rateLimitClient := github_ratelimit.NewClient(nil)
	client := gh.NewClient(rateLimitClient)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	return &Client{gh: client}
}

// NewClientWithHTTPClient creates a Client against a custom base URL. This
// constructor is intended for testing against an httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL string) (*Client, error) {
	client := gh.NewClient(httpClient)

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	client.BaseURL = u

	return &Client{gh: client}, nil
}

// ListPublicRepos retrieves all public repositories of a user, most recently
// pushed first. Pagination is handled automatically.
func (c *Client) ListPublicRepos(ctx context.Context, username string) ([]models.Repo, error) {
	opts := &gh.RepositoryListByUserOptions{
		Type:      "owner",
		Sort:      "pushed",
		Direction: "desc",
		ListOptions: gh.ListOptions{
			PerPage: 100,
		},
	}

	var all []models.Repo
	for {
		repos, resp, err := c.gh.Repositories.ListByUser(ctx, username, opts)
		if err != nil {
			return nil, fmt.Errorf("listing repositories for %s (page %d): %w", username, opts.Page, err)
		}

		for _, r := range repos {
			if r.GetPrivate() || r.GetFork() {
				continue
			}
			all = append(all, mapRepo(r))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	if all == nil {
		all = []models.Repo{}
	}
	return all, nil
}

func mapRepo(r *gh.Repository) models.Repo {
	return models.Repo{
		ID:          r.GetID(),
		Name:        r.GetName(),
		FullName:    r.GetFullName(),
		Description: r.GetDescription(),
		HTMLURL:     r.GetHTMLURL(),
		Language:    r.GetLanguage(),
		Stars:       r.GetStargazersCount(),
		Forks:       r.GetForksCount(),
		Topics:      r.Topics,
		PushedAt:    r.GetPushedAt().Time,
	}
}
