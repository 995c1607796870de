package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/herodex/herodex/internal/model"
	"github.com/herodex/herodex/internal/render"
	"github.com/herodex/herodex/internal/service"
)

// SystemHandler serves the unauthenticated endpoints: login and health.
type SystemHandler struct {
	authSvc *service.AuthService
}

// NewSystemHandler creates a SystemHandler.
func NewSystemHandler(authSvc *service.AuthService) *SystemHandler {
	return &SystemHandler{authSvc: authSvc}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates a username/password pair and returns a bearer token.
// POST /api/login
func (h *SystemHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := readJSON(r, &req); err != nil {
		render.Message(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" {
		render.Message(w, r, http.StatusBadRequest, "Username and password are required")
		return
	}

	token, err := h.authSvc.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			render.Message(w, r, http.StatusUnauthorized, "Invalid credentials!")
			return
		}
		render.Error(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	render.Respond(w, r, http.StatusOK, model.TokenResponse{Token: token})
}

// Health reports liveness.
// GET /api/health
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	render.Respond(w, r, http.StatusOK, model.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
