package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/dvieira/portfolio-be/internal/services"
)

// maxUploadSize bounds a single uploaded file.
const maxUploadSize = 10 << 20 // 10 MiB

// UploadHandler handles file uploads for the admin panel.
type UploadHandler struct {
	service services.UploadServiceProvider
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(service services.UploadServiceProvider) *UploadHandler {
	return &UploadHandler{service: service}
}

// Create handles a multipart upload. The file part must be named "file".
func (h *UploadHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read uploaded file")
		writeError(w, http.StatusInternalServerError, "Failed to read file")
		return
	}

	up, err := h.service.SaveFile(header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		log.Error().Err(err).Str("file", header.Filename).Msg("Failed to store upload")
		writeError(w, http.StatusInternalServerError, "Failed to store file")
		return
	}
	writeData(w, http.StatusCreated, up)
}

// GetAll handles the request to list stored uploads.
func (h *UploadHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	uploads, err := h.service.GetAllUploads()
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve uploads")
		writeError(w, http.StatusInternalServerError, "Failed to retrieve uploads")
		return
	}
	writeData(w, http.StatusOK, uploads)
}

// Delete handles the request to delete an upload by its public URL.
func (h *UploadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.URL == "" {
		writeError(w, http.StatusBadRequest, "URL is required")
		return
	}

	if err := h.service.DeleteByURL(payload.URL); err != nil {
		log.Warn().Err(err).Str("url", payload.URL).Msg("Failed to delete upload")
		writeError(w, http.StatusNotFound, "Upload not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
