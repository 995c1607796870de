package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/herodex/herodex/internal/model"
)

// heroDetailSelect is the joined projection served by the hero list and get
// endpoints. LEFT JOINs preserve heroes whose foreign keys are NULL or
// dangling; the joined columns come back as NULL in that case.
const heroDetailSelect = `
	SELECT
		h.id,
		h.hero_name,
		h.origin,
		h.difficulty,
		r.role_name,
		r.description AS role_description,
		s.specialty_name,
		hs.hp,
		hs.mana,
		hs.attack,
		hs.defense,
		hs.movement_speed
	FROM heroes h
	LEFT JOIN roles r ON h.role_id = r.id
	LEFT JOIN specialties s ON h.specialty_id = s.id
	LEFT JOIN hero_stats hs ON h.hero_stats_id = hs.id`

// CreateHero inserts a new hero and returns its id. Foreign keys are not
// validated against existing rows.
func (s *Store) CreateHero(ctx context.Context, in model.HeroInput) (int64, error) {
	// Optional text fields default to empty strings on create.
	origin := ""
	if in.Origin != nil {
		origin = *in.Origin
	}
	difficulty := ""
	if in.Difficulty != nil {
		difficulty = *in.Difficulty
	}

	id, err := s.insert(ctx, `
		INSERT INTO heroes (hero_name, origin, difficulty, role_id, hero_stats_id, specialty_id)
		VALUES (?, ?, ?, ?, ?, ?)`,
		in.HeroName, origin, difficulty, in.RoleID, in.HeroStatsID, in.SpecialtyID)
	if err != nil {
		return 0, fmt.Errorf("insert hero: %w", err)
	}
	return id, nil
}

// ListHeroes returns every hero with joined role, specialty, and stat fields.
func (s *Store) ListHeroes(ctx context.Context) ([]model.HeroDetail, error) {
	heroes := []model.HeroDetail{}
	if err := s.db.SelectContext(ctx, &heroes, heroDetailSelect+" ORDER BY h.id"); err != nil {
		return nil, fmt.Errorf("select heroes: %w", err)
	}
	return heroes, nil
}

// GetHero returns one hero by id with joined fields, or ErrNotFound.
func (s *Store) GetHero(ctx context.Context, id int64) (*model.HeroDetail, error) {
	var hero model.HeroDetail
	q := s.db.Rebind(heroDetailSelect + " WHERE h.id = ?")
	if err := s.db.GetContext(ctx, &hero, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select hero: %w", err)
	}
	return &hero, nil
}

// heroExists is the pre-read backing update and delete. The check/mutate pair
// is not atomic against concurrent deletes; at this system's scale the race
// is accepted.
func (s *Store) heroExists(ctx context.Context, id int64) (bool, error) {
	var found int64
	q := s.db.Rebind("SELECT id FROM heroes WHERE id = ?")
	err := s.db.GetContext(ctx, &found, q, id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check hero: %w", err)
	}
	return true, nil
}

// UpdateHero overwrites the full field set of a hero. Fields absent from the
// input are written as NULL. Returns ErrNotFound when the id does not exist.
func (s *Store) UpdateHero(ctx context.Context, id int64, in model.HeroInput) error {
	ok, err := s.heroExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	q := s.db.Rebind(`
		UPDATE heroes
		SET hero_name = ?, origin = ?, difficulty = ?,
		    role_id = ?, hero_stats_id = ?, specialty_id = ?
		WHERE id = ?`)
	if _, err := s.db.ExecContext(ctx, q,
		in.HeroName, in.Origin, in.Difficulty,
		in.RoleID, in.HeroStatsID, in.SpecialtyID, id); err != nil {
		return fmt.Errorf("update hero: %w", err)
	}
	return nil
}

// DeleteHero removes a hero. Returns ErrNotFound when the id does not exist.
// Rows referencing the hero are untouched; delete is physical removal only.
func (s *Store) DeleteHero(ctx context.Context, id int64) error {
	ok, err := s.heroExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	q := s.db.Rebind("DELETE FROM heroes WHERE id = ?")
	if _, err := s.db.ExecContext(ctx, q, id); err != nil {
		return fmt.Errorf("delete hero: %w", err)
	}
	return nil
}

// SearchHeroes returns heroes whose name, origin, or difficulty contains the
// term, case-insensitively. LOWER on both sides keeps the match
// case-insensitive across dialects regardless of collation.
func (s *Store) SearchHeroes(ctx context.Context, term string) ([]model.HeroSummary, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	q := s.db.Rebind(`
		SELECT
			h.id,
			h.hero_name,
			h.origin,
			h.difficulty,
			r.role_name,
			s.specialty_name
		FROM heroes h
		LEFT JOIN roles r ON h.role_id = r.id
		LEFT JOIN specialties s ON h.specialty_id = s.id
		WHERE LOWER(h.hero_name) LIKE ?
		   OR LOWER(COALESCE(h.origin, '')) LIKE ?
		   OR LOWER(COALESCE(h.difficulty, '')) LIKE ?
		ORDER BY h.id`)

	heroes := []model.HeroSummary{}
	if err := s.db.SelectContext(ctx, &heroes, q, pattern, pattern, pattern); err != nil {
		return nil, fmt.Errorf("search heroes: %w", err)
	}
	return heroes, nil
}
