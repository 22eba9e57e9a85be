package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/dvieira/portfolio-be/internal/models"
	"github.com/dvieira/portfolio-be/internal/services"
)

// ProjectHandler handles HTTP requests related to projects.
type ProjectHandler struct {
	service services.ProjectServiceProvider
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(service services.ProjectServiceProvider) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// GetAll handles the request to list projects. Supports ?featured=true|false
// and ?sort=order|recent.
func (h *ProjectHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	filter := services.ProjectFilter{Sort: r.URL.Query().Get("sort")}
	if v := r.URL.Query().Get("featured"); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid featured filter")
			return
		}
		filter.Featured = &featured
	}

	projects, err := h.service.GetAllProjects(filter)
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve projects")
		writeError(w, http.StatusInternalServerError, "Failed to retrieve projects")
		return
	}
	writeData(w, http.StatusOK, projects)
}

// Get handles the request to get a single project by its ID.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	project, err := h.service.GetProjectByID(id)
	if err != nil {
		log.Warn().Err(err).Str("project_id", id).Msg("Failed to get project by ID")
		writeError(w, http.StatusNotFound, "Project not found")
		return
	}
	writeData(w, http.StatusOK, project)
}

// Create handles the request to create a new project.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var project models.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if project.Title == "" {
		writeError(w, http.StatusBadRequest, "Title is required")
		return
	}

	created, err := h.service.CreateProject(project)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create project")
		writeError(w, http.StatusInternalServerError, "Failed to create project")
		return
	}
	writeData(w, http.StatusCreated, created)
}

// Update handles the request to update an existing project.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var project models.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateProject(id, project)
	if err != nil {
		log.Error().Err(err).Str("project_id", id).Msg("Failed to update project")
		writeError(w, http.StatusNotFound, "Project not found")
		return
	}
	writeData(w, http.StatusOK, updated)
}

// Delete handles the request to delete a project.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.DeleteProject(id); err != nil {
		log.Error().Err(err).Str("project_id", id).Msg("Failed to delete project")
		writeError(w, http.StatusInternalServerError, "Failed to delete project")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
