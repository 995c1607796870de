package handler

import (
	"net/http"

	"github.com/herodex/herodex/internal/model"
	"github.com/herodex/herodex/internal/render"
	"github.com/herodex/herodex/internal/store"
)

// RoleHandler serves the role endpoints.
type RoleHandler struct {
	store *store.Store
}

// NewRoleHandler creates a RoleHandler backed by the given store.
func NewRoleHandler(st *store.Store) *RoleHandler {
	return &RoleHandler{store: st}
}

// List returns all roles.
// GET /api/roles
func (h *RoleHandler) List(w http.ResponseWriter, r *http.Request) {
	roles, err := h.store.ListRoles(r.Context())
	if err != nil {
		render.Error(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	render.Respond(w, r, http.StatusOK, model.RoleListResponse{
		Roles: roles,
		Count: len(roles),
	})
}

// Heroes returns the heroes assigned to a role. An unknown role id yields an
// empty array, not a 404.
// GET /api/roles/{id}/heroes
func (h *RoleHandler) Heroes(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		render.Error(w, r, http.StatusBadRequest, "Invalid role id")
		return
	}

	heroes, err := h.store.ListHeroesByRole(r.Context(), id)
	if err != nil {
		render.Error(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	render.Respond(w, r, http.StatusOK, model.RoleHeroesResponse{
		Heroes: heroes,
		Count:  len(heroes),
	})
}
