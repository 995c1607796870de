package handler

import (
	"net/http"

	"github.com/herodex/herodex/internal/model"
	"github.com/herodex/herodex/internal/render"
	"github.com/herodex/herodex/internal/store"
)

// SpecialtyHandler serves the specialty endpoints.
type SpecialtyHandler struct {
	store *store.Store
}

// NewSpecialtyHandler creates a SpecialtyHandler backed by the given store.
func NewSpecialtyHandler(st *store.Store) *SpecialtyHandler {
	return &SpecialtyHandler{store: st}
}

// List returns all specialties.
// GET /api/specialties
func (h *SpecialtyHandler) List(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.store.ListSpecialties(r.Context())
	if err != nil {
		render.Error(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	render.Respond(w, r, http.StatusOK, model.SpecialtyListResponse{
		Specialties: specialties,
		Count:       len(specialties),
	})
}
