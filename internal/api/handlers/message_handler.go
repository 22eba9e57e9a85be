package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/dvieira/portfolio-be/internal/models"
	"github.com/dvieira/portfolio-be/internal/services"
)

// MessageHandler handles the public contact form and the admin inbox.
type MessageHandler struct {
	service services.MessageServiceProvider
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(service services.MessageServiceProvider) *MessageHandler {
	return &MessageHandler{service: service}
}

// Create handles a public contact-form submission.
func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var msg models.Message
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.service.CreateMessage(msg)
	if err != nil {
		log.Warn().Err(err).Msg("Rejected contact message")
		writeError(w, http.StatusBadRequest, "Name, email and body are required")
		return
	}
	writeData(w, http.StatusCreated, created)
}

// GetAll handles the request to list the inbox.
func (h *MessageHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	messages, err := h.service.GetAllMessages()
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve messages")
		writeError(w, http.StatusInternalServerError, "Failed to retrieve messages")
		return
	}
	writeData(w, http.StatusOK, messages)
}

// Get handles the request to get a single message by its ID.
func (h *MessageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	msg, err := h.service.GetMessageByID(id)
	if err != nil {
		log.Warn().Err(err).Str("message_id", id).Msg("Failed to get message by ID")
		writeError(w, http.StatusNotFound, "Message not found")
		return
	}
	writeData(w, http.StatusOK, msg)
}

// MarkRead handles the request to flag a message as read.
func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	msg, err := h.service.MarkMessageRead(id)
	if err != nil {
		log.Warn().Err(err).Str("message_id", id).Msg("Failed to mark message read")
		writeError(w, http.StatusNotFound, "Message not found")
		return
	}
	writeData(w, http.StatusOK, msg)
}

// Delete handles the request to delete a message.
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.DeleteMessage(id); err != nil {
		log.Error().Err(err).Str("message_id", id).Msg("Failed to delete message")
		writeError(w, http.StatusInternalServerError, "Failed to delete message")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
