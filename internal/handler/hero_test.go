package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/herodex/herodex/internal/model"
)

func TestCreateHero(t *testing.T) {
	env := newTestEnv(t)

	body := toJSON(t, map[string]any{
		"hero_name":  "Layla",
		"origin":     "Lantis Mountains",
		"difficulty": "Easy",
		"role_id":    5,
	})
	rr := env.do(t, "POST", "/api/heroes", body)
	assertStatus(t, rr, http.StatusCreated)

	var resp struct {
		Message string `json:"message"`
		ID      int64  `json:"id"`
	}
	decodeJSON(t, rr, &resp)
	if resp.Message != "Hero created successfully" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.ID == 0 {
		t.Error("expected non-zero id")
	}
}

func TestCreateHeroRequiresName(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"no name", map[string]any{"origin": "Somewhere", "difficulty": "Hard", "role_id": 1}},
		{"empty name", map[string]any{"hero_name": ""}},
		{"empty body", map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := env.do(t, "POST", "/api/heroes", toJSON(t, tt.body))
			assertStatus(t, rr, http.StatusBadRequest)

			var resp struct {
				Error string `json:"error"`
			}
			decodeJSON(t, rr, &resp)
			if resp.Error != "Hero name is required" {
				t.Errorf("error = %q", resp.Error)
			}
		})
	}
}

func TestListHeroes(t *testing.T) {
	env := newTestEnv(t)
	env.seedHero(t, "Alpha", int64p(1))
	env.seedHero(t, "Bravo", nil)

	rr := env.do(t, "GET", "/api/heroes", nil)
	assertStatus(t, rr, http.StatusOK)

	var resp struct {
		Heroes []map[string]any `json:"heroes"`
		Count  int              `json:"count"`
	}
	decodeJSON(t, rr, &resp)
	if resp.Count != 2 || len(resp.Heroes) != 2 {
		t.Fatalf("count = %d, len = %d, want 2", resp.Count, len(resp.Heroes))
	}

	// Joined fields are present as keys even when null.
	second := resp.Heroes[1]
	for _, key := range []string{"role_name", "role_description", "specialty_name", "hp", "mana", "attack", "defense", "movement_speed"} {
		v, present := second[key]
		if !present {
			t.Errorf("key %q missing from payload", key)
			continue
		}
		if v != nil {
			t.Errorf("key %q = %v, want null for unset foreign key", key, v)
		}
	}
	if second["hero_name"] != "Bravo" {
		t.Errorf("hero_name = %v", second["hero_name"])
	}
}

func TestGetHero(t *testing.T) {
	env := newTestEnv(t)
	id := env.seedHero(t, "Tigreal", int64p(1))

	rr := env.do(t, "GET", "/api/heroes/"+itoa(id), nil)
	assertStatus(t, rr, http.StatusOK)

	var resp struct {
		Hero model.HeroDetail `json:"hero"`
	}
	decodeJSON(t, rr, &resp)
	if resp.Hero.HeroName != "Tigreal" {
		t.Errorf("hero_name = %q", resp.Hero.HeroName)
	}
	if resp.Hero.RoleName == nil || *resp.Hero.RoleName != "Tank" {
		t.Errorf("role_name = %v, want Tank", resp.Hero.RoleName)
	}
}

func TestGetHeroNotFound(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, "GET", "/api/heroes/9999", nil)
	assertStatus(t, rr, http.StatusNotFound)

	var resp struct {
		Error string `json:"error"`
	}
	decodeJSON(t, rr, &resp)
	if resp.Error != "Hero not found" {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestUpdateHero(t *testing.T) {
	env := newTestEnv(t)
	id := env.seedHero(t, "Zilong", nil)

	body := toJSON(t, map[string]any{
		"hero_name":  "Zilong",
		"origin":     "Changban",
		"difficulty": "Easy",
		"role_id":    2,
	})
	rr := env.do(t, "PUT", "/api/heroes/"+itoa(id), body)
	assertStatus(t, rr, http.StatusOK)

	var resp struct {
		Message string `json:"message"`
	}
	decodeJSON(t, rr, &resp)
	if resp.Message != "Hero updated successfully" {
		t.Errorf("message = %q", resp.Message)
	}

	get := env.do(t, "GET", "/api/heroes/"+itoa(id), nil)
	var fetched struct {
		Hero model.HeroDetail `json:"hero"`
	}
	decodeJSON(t, get, &fetched)
	if fetched.Hero.RoleName == nil || *fetched.Hero.RoleName != "Fighter" {
		t.Errorf("role_name = %v, want Fighter after update", fetched.Hero.RoleName)
	}
}

func TestUpdateHeroErrors(t *testing.T) {
	env := newTestEnv(t)
	id := env.seedHero(t, "Zilong", nil)

	t.Run("empty body", func(t *testing.T) {
		rr := env.do(t, "PUT", "/api/heroes/"+itoa(id), toJSON(t, map[string]any{}))
		assertStatus(t, rr, http.StatusBadRequest)
	})

	t.Run("unknown id", func(t *testing.T) {
		body := toJSON(t, map[string]any{"hero_name": "Nobody"})
		rr := env.do(t, "PUT", "/api/heroes/9999", body)
		assertStatus(t, rr, http.StatusNotFound)
	})
}

func TestDeleteHero(t *testing.T) {
	env := newTestEnv(t)
	id := env.seedHero(t, "Doomed", nil)

	rr := env.do(t, "DELETE", "/api/heroes/"+itoa(id), nil)
	assertStatus(t, rr, http.StatusOK)

	rr = env.do(t, "GET", "/api/heroes/"+itoa(id), nil)
	assertStatus(t, rr, http.StatusNotFound)

	rr = env.do(t, "DELETE", "/api/heroes/"+itoa(id), nil)
	assertStatus(t, rr, http.StatusNotFound)
}

func TestSearchHeroes(t *testing.T) {
	env := newTestEnv(t)

	for _, h := range []struct {
		name, origin, difficulty string
	}{
		{"Eudora", "Magic Academy", "Easy"},
		{"Gord", "Mage Tower", "Medium"},
		{"Balmond", "Wastes", "Hard"},
	} {
		name, origin, difficulty := h.name, h.origin, h.difficulty
		if _, err := env.store.CreateHero(context.Background(), model.HeroInput{
			HeroName: &name, Origin: &origin, Difficulty: &difficulty,
		}); err != nil {
			t.Fatalf("CreateHero: %v", err)
		}
	}

	rr := env.do(t, "GET", "/api/heroes/search?q=mage", nil)
	assertStatus(t, rr, http.StatusOK)

	var resp struct {
		Heroes []map[string]any `json:"heroes"`
		Count  int              `json:"count"`
	}
	decodeJSON(t, rr, &resp)
	if resp.Count != 1 {
		t.Fatalf("count = %d, want 1; heroes = %v", resp.Count, resp.Heroes)
	}
	if resp.Heroes[0]["hero_name"] != "Gord" {
		t.Errorf("hero_name = %v, want Gord", resp.Heroes[0]["hero_name"])
	}
}

func TestSearchRequiresTerm(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, "GET", "/api/heroes/search", nil)
	assertStatus(t, rr, http.StatusBadRequest)

	var resp struct {
		Error string `json:"error"`
	}
	decodeJSON(t, rr, &resp)
	if resp.Error != "Search term required" {
		t.Errorf("error = %q", resp.Error)
	}
}

// The same request must yield semantically equal payloads in both formats.
func TestHeroFormatsAgree(t *testing.T) {
	env := newTestEnv(t)
	id := env.seedHero(t, "Franco", int64p(1))

	jsonRR := env.do(t, "GET", "/api/heroes/"+itoa(id), nil)
	assertStatus(t, jsonRR, http.StatusOK)
	xmlRR := env.do(t, "GET", "/api/heroes/"+itoa(id)+"?format=xml", nil)
	assertStatus(t, xmlRR, http.StatusOK)

	if ct := xmlRR.Header().Get("Content-Type"); ct != "application/xml" {
		t.Errorf("Content-Type = %q, want application/xml", ct)
	}

	var decoded struct {
		Hero map[string]json.RawMessage `json:"hero"`
	}
	decodeJSON(t, jsonRR, &decoded)

	xmlBody := xmlRR.Body.String()
	if !strings.Contains(xmlBody, "<response><hero>") {
		t.Fatalf("xml not wrapped in response root: %s", xmlBody)
	}
	// Every JSON key appears as an XML element.
	for key := range decoded.Hero {
		if !strings.Contains(xmlBody, "<"+key+">") {
			t.Errorf("xml missing element <%s>: %s", key, xmlBody)
		}
	}
	if !strings.Contains(xmlBody, "<hero_name>Franco</hero_name>") {
		t.Errorf("xml missing hero name: %s", xmlBody)
	}
}
