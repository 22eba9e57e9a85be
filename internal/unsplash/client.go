// Package unsplash finds fallback cover images for projects created without one.
package unsplash

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://api.unsplash.com"

// Client queries the Unsplash search API.
type Client struct {
	client    *resty.Client
	accessKey string
}

// New creates an Unsplash client with the given access key.
func New(accessKey string) *Client {
	cli := resty.New().
		SetBaseURL(defaultBaseURL).
		SetTimeout(10 * time.Second)
	return &Client{client: cli, accessKey: accessKey}
}

// NewWithBaseURL creates a client against a custom base URL, for tests.
func NewWithBaseURL(accessKey, baseURL string) *Client {
	c := New(accessKey)
	c.client.SetBaseURL(baseURL)
	return c
}

type searchResult struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
	} `json:"results"`
}

// FindCoverImage returns the URL of the first landscape photo matching the
// query, or an error when nothing matches.
func (c *Client) FindCoverImage(query string) (string, error) {
	var result searchResult
	resp, err := c.client.R().
		SetHeader("Authorization", "Client-ID "+c.accessKey).
		SetQueryParams(map[string]string{
			"query":       query,
			"per_page":    "1",
			"orientation": "landscape",
		}).
		SetResult(&result).
		Get("/search/photos")
	if err != nil {
		return "", fmt.Errorf("searching unsplash: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("unsplash returned status %d", resp.StatusCode())
	}
	if len(result.Results) == 0 {
		return "", fmt.Errorf("no image found for query %q", query)
	}
	return result.Results[0].URLs.Regular, nil
}
