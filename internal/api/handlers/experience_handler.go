package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/dvieira/portfolio-be/internal/models"
	"github.com/dvieira/portfolio-be/internal/services"
)

// ExperienceHandler handles HTTP requests related to work experience.
type ExperienceHandler struct {
	service services.ExperienceServiceProvider
}

// NewExperienceHandler creates a new ExperienceHandler.
func NewExperienceHandler(service services.ExperienceServiceProvider) *ExperienceHandler {
	return &ExperienceHandler{service: service}
}

// GetAll handles the request to list experience entries.
func (h *ExperienceHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	experiences, err := h.service.GetAllExperiences()
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve experiences")
		writeError(w, http.StatusInternalServerError, "Failed to retrieve experiences")
		return
	}
	writeData(w, http.StatusOK, experiences)
}

// Get handles the request to get a single entry by its ID.
func (h *ExperienceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	exp, err := h.service.GetExperienceByID(id)
	if err != nil {
		log.Warn().Err(err).Str("experience_id", id).Msg("Failed to get experience by ID")
		writeError(w, http.StatusNotFound, "Experience not found")
		return
	}
	writeData(w, http.StatusOK, exp)
}

// Create handles the request to create a new entry.
func (h *ExperienceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var exp models.Experience
	if err := json.NewDecoder(r.Body).Decode(&exp); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if exp.Role == "" || exp.Company == "" {
		writeError(w, http.StatusBadRequest, "Role and company are required")
		return
	}

	created, err := h.service.CreateExperience(exp)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create experience")
		writeError(w, http.StatusInternalServerError, "Failed to create experience")
		return
	}
	writeData(w, http.StatusCreated, created)
}

// Update handles the request to update an existing entry.
func (h *ExperienceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var exp models.Experience
	if err := json.NewDecoder(r.Body).Decode(&exp); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateExperience(id, exp)
	if err != nil {
		log.Error().Err(err).Str("experience_id", id).Msg("Failed to update experience")
		writeError(w, http.StatusNotFound, "Experience not found")
		return
	}
	writeData(w, http.StatusOK, updated)
}

// Delete handles the request to delete an entry.
func (h *ExperienceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.DeleteExperience(id); err != nil {
		log.Error().Err(err).Str("experience_id", id).Msg("Failed to delete experience")
		writeError(w, http.StatusInternalServerError, "Failed to delete experience")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
