package handler

import (
	"errors"
	"net/http"

	"github.com/herodex/herodex/internal/model"
	"github.com/herodex/herodex/internal/render"
	"github.com/herodex/herodex/internal/store"
)

// StatsHandler serves the hero-stats endpoints.
type StatsHandler struct {
	store *store.Store
}

// NewStatsHandler creates a StatsHandler backed by the given store.
func NewStatsHandler(st *store.Store) *StatsHandler {
	return &StatsHandler{store: st}
}

// Create inserts a new stats row.
// POST /api/hero-stats
func (h *StatsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.HeroStatsInput
	if err := readJSON(r, &in); err != nil || in.Empty() {
		render.Error(w, r, http.StatusBadRequest, "Stats data required")
		return
	}

	id, err := h.store.CreateHeroStats(r.Context(), in)
	if err != nil {
		render.Error(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	render.Respond(w, r, http.StatusCreated, model.CreatedResponse{
		Message: "Hero stats created successfully",
		ID:      id,
	})
}

// Get returns one stats row by id.
// GET /api/hero-stats/{id}
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		render.Error(w, r, http.StatusBadRequest, "Invalid stats id")
		return
	}

	stats, err := h.store.GetHeroStats(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			render.Error(w, r, http.StatusNotFound, "Stats not found")
			return
		}
		render.Error(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	render.Respond(w, r, http.StatusOK, model.StatsResponse{Stats: *stats})
}
