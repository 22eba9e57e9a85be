package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/dvieira/portfolio-be/internal/auth"
	"github.com/dvieira/portfolio-be/internal/services"
)

// AuthHandler handles login and session introspection.
type AuthHandler struct {
	admins services.AdminServiceProvider
	auth   *auth.Auth
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(admins services.AdminServiceProvider, a *auth.Auth) *AuthHandler {
	return &AuthHandler{admins: admins, auth: a}
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies credentials and issues a session token. Unknown usernames
// and wrong passwords produce the same response.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	admin, err := h.admins.Authenticate(payload.Username, payload.Password)
	if err != nil {
		log.Warn().Str("username", payload.Username).Msg("Failed authentication attempt")
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.auth.GenerateToken(admin)
	if err != nil {
		log.Error().Err(err).Str("admin_id", admin.ID).Msg("Failed to generate token")
		writeError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"token":   token,
		"admin":   admin,
	})
}

// Me returns the admin profile resolved by the gate for the presented token.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	admin, ok := auth.AdminFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve admin from context")
		writeError(w, http.StatusInternalServerError, "Could not retrieve admin from token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"admin":   admin,
	})
}
