package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/herodex/herodex/internal/store"
)

func TestLoginValidCredentials(t *testing.T) {
	env := newTestEnv(t)

	body := toJSON(t, map[string]string{
		"username": store.DefaultAdminUsername,
		"password": store.DefaultAdminPassword,
	})
	rr := env.doAnon(t, "POST", "/api/login", body)
	assertStatus(t, rr, http.StatusOK)

	var resp struct {
		Token string `json:"token"`
	}
	decodeJSON(t, rr, &resp)
	if resp.Token == "" {
		t.Fatal("expected non-empty token")
	}

	// The issued token must be accepted by the verifier.
	subject, err := env.authSvc.VerifyToken(resp.Token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if subject != store.DefaultAdminUsername {
		t.Errorf("subject = %q, want %q", subject, store.DefaultAdminUsername)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		body map[string]string
		want int
	}{
		{"wrong password", map[string]string{"username": "admin", "password": "nope"}, http.StatusUnauthorized},
		{"unknown user", map[string]string{"username": "ghost", "password": "password"}, http.StatusUnauthorized},
		{"missing password", map[string]string{"username": "admin"}, http.StatusBadRequest},
		{"missing username", map[string]string{"password": "password"}, http.StatusBadRequest},
		{"empty body", map[string]string{}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := env.doAnon(t, "POST", "/api/login", toJSON(t, tt.body))
			assertStatus(t, rr, tt.want)
		})
	}
}

func TestHealthNoAuthRequired(t *testing.T) {
	env := newTestEnv(t)

	rr := env.doAnon(t, "GET", "/api/health", nil)
	assertStatus(t, rr, http.StatusOK)

	var resp struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}
	decodeJSON(t, rr, &resp)
	if resp.Status != "healthy" {
		t.Errorf("status = %q, want healthy", resp.Status)
	}
	if _, err := time.Parse(time.RFC3339, resp.Timestamp); err != nil {
		t.Errorf("timestamp %q is not RFC3339: %v", resp.Timestamp, err)
	}
}

func TestProtectedEndpointsRequireToken(t *testing.T) {
	env := newTestEnv(t)

	paths := []struct {
		method string
		path   string
	}{
		{"GET", "/api/heroes"},
		{"POST", "/api/heroes"},
		{"GET", "/api/heroes/1"},
		{"PUT", "/api/heroes/1"},
		{"DELETE", "/api/heroes/1"},
		{"GET", "/api/heroes/search?q=x"},
		{"GET", "/api/roles"},
		{"GET", "/api/roles/1/heroes"},
		{"POST", "/api/hero-stats"},
		{"GET", "/api/hero-stats/1"},
		{"GET", "/api/specialties"},
	}

	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			rr := env.doAnon(t, p.method, p.path, nil)
			assertStatus(t, rr, http.StatusUnauthorized)

			var resp struct {
				Message string `json:"message"`
			}
			decodeJSON(t, rr, &resp)
			if resp.Message != "Token is missing!" {
				t.Errorf("message = %q", resp.Message)
			}
		})
	}
}
