package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/herodex/herodex/internal/model"
	"github.com/herodex/herodex/internal/server/middleware"
	"github.com/herodex/herodex/internal/service"
	"github.com/herodex/herodex/internal/store"
)

const testJWTSecret = "test-secret-for-handler-tests"

// testEnv holds shared state for handler integration tests: an in-memory
// store with seed data, the auth service, and a router with the API routes
// mounted behind the real auth middleware.
type testEnv struct {
	store   *store.Store
	authSvc *service.AuthService
	router  chi.Router
	token   string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := store.Open(store.Config{Driver: "sqlite"})
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	if err := st.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	authSvc := service.NewAuthService(st, testJWTSecret, 0)
	token, err := authSvc.IssueToken("admin")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	sysHandler := NewSystemHandler(authSvc)
	heroHandler := NewHeroHandler(st)
	roleHandler := NewRoleHandler(st)
	statsHandler := NewStatsHandler(st)
	specialtyHandler := NewSpecialtyHandler(st)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/login", sysHandler.Login)
		r.Get("/health", sysHandler.Health)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(authSvc))

			r.Post("/heroes", heroHandler.Create)
			r.Get("/heroes", heroHandler.List)
			r.Get("/heroes/search", heroHandler.Search)
			r.Get("/heroes/{id}", heroHandler.Get)
			r.Put("/heroes/{id}", heroHandler.Update)
			r.Delete("/heroes/{id}", heroHandler.Delete)

			r.Get("/roles", roleHandler.List)
			r.Get("/roles/{id}/heroes", roleHandler.Heroes)

			r.Post("/hero-stats", statsHandler.Create)
			r.Get("/hero-stats/{id}", statsHandler.Get)

			r.Get("/specialties", specialtyHandler.List)
		})
	})

	return &testEnv{
		store:   st,
		authSvc: authSvc,
		router:  r,
		token:   token,
	}
}

// do executes an authenticated request against the test router.
func (e *testEnv) do(t *testing.T, method, path string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+e.token)
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

// doAnon executes a request without an Authorization header.
func (e *testEnv) doAnon(t *testing.T, method, path string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

// seedHero inserts a hero and returns its id.
func (e *testEnv) seedHero(t *testing.T, name string, roleID *int64) int64 {
	t.Helper()
	origin := "Test Origin"
	difficulty := "Hard"
	id, err := e.store.CreateHero(context.Background(), model.HeroInput{
		HeroName:   &name,
		Origin:     &origin,
		Difficulty: &difficulty,
		RoleID:     roleID,
	})
	if err != nil {
		t.Fatalf("seedHero: %v", err)
	}
	return id
}

func toJSON(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("toJSON: %v", err)
	}
	return buf
}

func assertStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rr.Code, want, rr.Body.String())
	}
}

func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(v); err != nil {
		t.Fatalf("decodeJSON: %v; body = %s", err, rr.Body.String())
	}
}

func int64p(v int64) *int64 { return &v }

func itoa(id int64) string { return strconv.FormatInt(id, 10) }
