package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/dvieira/portfolio-be/internal/models"
	"github.com/dvieira/portfolio-be/internal/services"
)

// AchievementHandler handles HTTP requests related to achievements.
type AchievementHandler struct {
	service services.AchievementServiceProvider
}

// NewAchievementHandler creates a new AchievementHandler.
func NewAchievementHandler(service services.AchievementServiceProvider) *AchievementHandler {
	return &AchievementHandler{service: service}
}

// GetAll handles the request to list achievements.
func (h *AchievementHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	achievements, err := h.service.GetAllAchievements()
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve achievements")
		writeError(w, http.StatusInternalServerError, "Failed to retrieve achievements")
		return
	}
	writeData(w, http.StatusOK, achievements)
}

// Get handles the request to get a single achievement by its ID.
func (h *AchievementHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	a, err := h.service.GetAchievementByID(id)
	if err != nil {
		log.Warn().Err(err).Str("achievement_id", id).Msg("Failed to get achievement by ID")
		writeError(w, http.StatusNotFound, "Achievement not found")
		return
	}
	writeData(w, http.StatusOK, a)
}

// Create handles the request to create a new achievement.
func (h *AchievementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var a models.Achievement
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if a.Title == "" {
		writeError(w, http.StatusBadRequest, "Title is required")
		return
	}

	created, err := h.service.CreateAchievement(a)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create achievement")
		writeError(w, http.StatusInternalServerError, "Failed to create achievement")
		return
	}
	writeData(w, http.StatusCreated, created)
}

// Update handles the request to update an existing achievement.
func (h *AchievementHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var a models.Achievement
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateAchievement(id, a)
	if err != nil {
		log.Error().Err(err).Str("achievement_id", id).Msg("Failed to update achievement")
		writeError(w, http.StatusNotFound, "Achievement not found")
		return
	}
	writeData(w, http.StatusOK, updated)
}

// Delete handles the request to delete an achievement.
func (h *AchievementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.DeleteAchievement(id); err != nil {
		log.Error().Err(err).Str("achievement_id", id).Msg("Failed to delete achievement")
		writeError(w, http.StatusInternalServerError, "Failed to delete achievement")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
