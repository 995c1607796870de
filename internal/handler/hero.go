package handler

import (
	"errors"
	"net/http"

	"github.com/herodex/herodex/internal/model"
	"github.com/herodex/herodex/internal/render"
	"github.com/herodex/herodex/internal/store"
)

// HeroHandler serves the hero CRUD and search endpoints.
type HeroHandler struct {
	store *store.Store
}

// NewHeroHandler creates a HeroHandler backed by the given store.
func NewHeroHandler(st *store.Store) *HeroHandler {
	return &HeroHandler{store: st}
}

// Create inserts a new hero.
// POST /api/heroes
func (h *HeroHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.HeroInput
	if err := readJSON(r, &in); err != nil || in.HeroName == nil || *in.HeroName == "" {
		render.Error(w, r, http.StatusBadRequest, "Hero name is required")
		return
	}

	id, err := h.store.CreateHero(r.Context(), in)
	if err != nil {
		render.Error(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	render.Respond(w, r, http.StatusCreated, model.CreatedResponse{
		Message: "Hero created successfully",
		ID:      id,
	})
}

// List returns all heroes with joined role, specialty, and stat fields.
// GET /api/heroes
func (h *HeroHandler) List(w http.ResponseWriter, r *http.Request) {
	heroes, err := h.store.ListHeroes(r.Context())
	if err != nil {
		render.Error(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	render.Respond(w, r, http.StatusOK, model.HeroListResponse{
		Heroes: heroes,
		Count:  len(heroes),
	})
}

// Get returns a single hero by id.
// GET /api/heroes/{id}
func (h *HeroHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		render.Error(w, r, http.StatusBadRequest, "Invalid hero id")
		return
	}

	hero, err := h.store.GetHero(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			render.Error(w, r, http.StatusNotFound, "Hero not found")
			return
		}
		render.Error(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	render.Respond(w, r, http.StatusOK, model.HeroResponse{Hero: *hero})
}

// Update overwrites a hero's full field set.
// PUT /api/heroes/{id}
func (h *HeroHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		render.Error(w, r, http.StatusBadRequest, "Invalid hero id")
		return
	}

	var in model.HeroInput
	if err := readJSON(r, &in); err != nil || in.Empty() {
		render.Error(w, r, http.StatusBadRequest, "No data provided")
		return
	}

	if err := h.store.UpdateHero(r.Context(), id, in); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			render.Error(w, r, http.StatusNotFound, "Hero not found")
			return
		}
		render.Error(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	render.Message(w, r, http.StatusOK, "Hero updated successfully")
}

// Delete removes a hero.
// DELETE /api/heroes/{id}
func (h *HeroHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		render.Error(w, r, http.StatusBadRequest, "Invalid hero id")
		return
	}

	if err := h.store.DeleteHero(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			render.Error(w, r, http.StatusNotFound, "Hero not found")
			return
		}
		render.Error(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	render.Message(w, r, http.StatusOK, "Hero deleted successfully")
}

// Search returns heroes matching a substring across name, origin, and
// difficulty.
// GET /api/heroes/search?q=
func (h *HeroHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if term == "" {
		render.Error(w, r, http.StatusBadRequest, "Search term required")
		return
	}

	heroes, err := h.store.SearchHeroes(r.Context(), term)
	if err != nil {
		render.Error(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	render.Respond(w, r, http.StatusOK, model.HeroSearchResponse{
		Heroes: heroes,
		Count:  len(heroes),
	})
}
