package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/dvieira/portfolio-be/internal/models"
	"github.com/dvieira/portfolio-be/internal/services"
)

// SkillHandler handles HTTP requests related to skills.
type SkillHandler struct {
	service services.SkillServiceProvider
}

// NewSkillHandler creates a new SkillHandler.
func NewSkillHandler(service services.SkillServiceProvider) *SkillHandler {
	return &SkillHandler{service: service}
}

// GetAll handles the request to list skills. Supports ?category=.
func (h *SkillHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	skills, err := h.service.GetAllSkills(r.URL.Query().Get("category"))
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve skills")
		writeError(w, http.StatusInternalServerError, "Failed to retrieve skills")
		return
	}
	writeData(w, http.StatusOK, skills)
}

// Get handles the request to get a single skill by its ID.
func (h *SkillHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	skill, err := h.service.GetSkillByID(id)
	if err != nil {
		log.Warn().Err(err).Str("skill_id", id).Msg("Failed to get skill by ID")
		writeError(w, http.StatusNotFound, "Skill not found")
		return
	}
	writeData(w, http.StatusOK, skill)
}

// Create handles the request to create a new skill.
func (h *SkillHandler) Create(w http.ResponseWriter, r *http.Request) {
	var skill models.Skill
	if err := json.NewDecoder(r.Body).Decode(&skill); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if skill.Name == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}

	created, err := h.service.CreateSkill(skill)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create skill")
		writeError(w, http.StatusInternalServerError, "Failed to create skill")
		return
	}
	writeData(w, http.StatusCreated, created)
}

// Update handles the request to update an existing skill.
func (h *SkillHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var skill models.Skill
	if err := json.NewDecoder(r.Body).Decode(&skill); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateSkill(id, skill)
	if err != nil {
		log.Error().Err(err).Str("skill_id", id).Msg("Failed to update skill")
		writeError(w, http.StatusNotFound, "Skill not found")
		return
	}
	writeData(w, http.StatusOK, updated)
}

// Delete handles the request to delete a skill.
func (h *SkillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.DeleteSkill(id); err != nil {
		log.Error().Err(err).Str("skill_id", id).Msg("Failed to delete skill")
		writeError(w, http.StatusInternalServerError, "Failed to delete skill")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
