package unsplash

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCoverImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/photos", r.URL.Path)
		assert.Equal(t, "Client-ID test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "portfolio", r.URL.Query().Get("query"))
		assert.Equal(t, "landscape", r.URL.Query().Get("orientation"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"results":[{"urls":{"regular":"https://images.unsplash.com/photo-1?w=1080"}}]}`)
	}))
	t.Cleanup(server.Close)

	client := NewWithBaseURL("test-key", server.URL)
	url, err := client.FindCoverImage("portfolio")
	require.NoError(t, err)
	assert.Equal(t, "https://images.unsplash.com/photo-1?w=1080", url)
}

func TestFindCoverImage_NoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"results":[]}`)
	}))
	t.Cleanup(server.Close)

	client := NewWithBaseURL("test-key", server.URL)
	_, err := client.FindCoverImage("nothing")
	assert.Error(t, err)
}

func TestFindCoverImage_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":["OAuth error"]}`, http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)

	client := NewWithBaseURL("bad-key", server.URL)
	_, err := client.FindCoverImage("portfolio")
	assert.Error(t, err)
}
