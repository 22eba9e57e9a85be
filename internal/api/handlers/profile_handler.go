package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/dvieira/portfolio-be/internal/models"
	"github.com/dvieira/portfolio-be/internal/services"
)

// ProfileHandler handles the about and contact singleton documents.
type ProfileHandler struct {
	service services.ProfileServiceProvider
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(service services.ProfileServiceProvider) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// GetAbout handles the public request for the about document.
func (h *ProfileHandler) GetAbout(w http.ResponseWriter, r *http.Request) {
	about, err := h.service.GetAbout()
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve about info")
		writeError(w, http.StatusInternalServerError, "Failed to retrieve about info")
		return
	}
	writeData(w, http.StatusOK, about)
}

// UpdateAbout handles the protected upsert of the about document.
func (h *ProfileHandler) UpdateAbout(w http.ResponseWriter, r *http.Request) {
	var about models.About
	if err := json.NewDecoder(r.Body).Decode(&about); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateAbout(about)
	if err != nil {
		log.Error().Err(err).Msg("Failed to update about info")
		writeError(w, http.StatusInternalServerError, "Failed to update about info")
		return
	}
	writeData(w, http.StatusOK, updated)
}

// GetContact handles the public request for the contact document.
func (h *ProfileHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	contact, err := h.service.GetContact()
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve contact info")
		writeError(w, http.StatusInternalServerError, "Failed to retrieve contact info")
		return
	}
	writeData(w, http.StatusOK, contact)
}

// UpdateContact handles the protected upsert of the contact document.
func (h *ProfileHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	var contact models.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateContact(contact)
	if err != nil {
		log.Error().Err(err).Msg("Failed to update contact info")
		writeError(w, http.StatusInternalServerError, "Failed to update contact info")
		return
	}
	writeData(w, http.StatusOK, updated)
}
