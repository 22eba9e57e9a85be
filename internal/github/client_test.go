package github

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPublicRepos(t *testing.T) {
	handler := http.NewServeMux()
	handler.HandleFunc("/users/octocat/repos", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[
			{"id": 1, "name": "hello-world", "full_name": "octocat/hello-world",
			 "description": "My first repo", "html_url": "https://github.com/octocat/hello-world",
			 "language": "Go", "stargazers_count": 42, "forks_count": 3,
			 "topics": ["go", "demo"], "private": false, "fork": false,
			 "pushed_at": "2026-01-10T12:00:00Z"},
			{"id": 2, "name": "forked-thing", "full_name": "octocat/forked-thing",
			 "private": false, "fork": true},
			{"id": 3, "name": "secret", "full_name": "octocat/secret",
			 "private": true, "fork": false}
		]`)
	})
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClientWithHTTPClient(server.Client(), server.URL+"/")
	require.NoError(t, err)

	repos, err := client.ListPublicRepos(context.Background(), "octocat")
	require.NoError(t, err)

	// Forks and private repos are skipped.
	require.Len(t, repos, 1)
	repo := repos[0]
	assert.Equal(t, int64(1), repo.ID)
	assert.Equal(t, "octocat/hello-world", repo.FullName)
	assert.Equal(t, "Go", repo.Language)
	assert.Equal(t, 42, repo.Stars)
	assert.Equal(t, []string{"go", "demo"}, repo.Topics)
	assert.Equal(t, 2026, repo.PushedAt.Year())
}

func TestListPublicRepos_Error(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	client, err := NewClientWithHTTPClient(server.Client(), server.URL+"/")
	require.NoError(t, err)

	_, err = client.ListPublicRepos(context.Background(), "ghost")
	assert.Error(t, err)
}

func TestListPublicRepos_Empty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[]`)
	}))
	t.Cleanup(server.Close)

	client, err := NewClientWithHTTPClient(server.Client(), server.URL+"/")
	require.NoError(t, err)

	repos, err := client.ListPublicRepos(context.Background(), "octocat")
	require.NoError(t, err)
	assert.NotNil(t, repos)
	assert.Empty(t, repos)
}
