package api

import (
	"net/http"

	"github.com/phrazzld/taskr-api/internal/api/shared"
	"github.com/phrazzld/taskr-api/internal/service/auth"
)

// AuthHandler handles sign-up and sign-in requests.
type AuthHandler struct {
	service auth.Service
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(service auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

// SignUp handles POST /auth/signup. It responds 201 with no body.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	creds, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	if err := h.service.SignUp(r.Context(), creds); err != nil {
		HandleAPIError(w, r, err, "Failed to create user")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// SignIn handles POST /auth/signin and returns {"accessToken": "..."}.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	creds, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	token, err := h.service.SignIn(r.Context(), creds)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to sign in")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, token)
}

func decodeCredentials(w http.ResponseWriter, r *http.Request) (auth.Credentials, bool) {
	var creds auth.Credentials

	if err := shared.DecodeJSON(w, r, &creds); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return creds, false
	}

	if err := shared.ValidateRequest(&creds); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return creds, false
	}

	return creds, true
}
