package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/dvieira/portfolio-be/internal/services"
)

// GithubHandler exposes the cached GitHub repositories to the admin panel.
type GithubHandler struct {
	service services.RepoServiceProvider
}

// NewGithubHandler creates a new GithubHandler.
func NewGithubHandler(service services.RepoServiceProvider) *GithubHandler {
	return &GithubHandler{service: service}
}

// GetRepos handles the request to list the cached repositories.
func (h *GithubHandler) GetRepos(w http.ResponseWriter, r *http.Request) {
	repos, err := h.service.GetCachedRepos()
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve cached repos")
		writeError(w, http.StatusInternalServerError, "Failed to retrieve repositories")
		return
	}
	writeData(w, http.StatusOK, repos)
}

// Sync handles the request to force a cache refresh from the GitHub API.
func (h *GithubHandler) Sync(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.SyncRepos(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Manual GitHub sync failed")
		writeError(w, http.StatusBadGateway, "Failed to sync repositories")
		return
	}
	writeData(w, http.StatusOK, map[string]int{"synced": count})
}
