package store

import (
	"context"
	"fmt"

	"github.com/herodex/herodex/internal/model"
)

// ListRoles returns every role.
func (s *Store) ListRoles(ctx context.Context) ([]model.Role, error) {
	roles := []model.Role{}
	if err := s.db.SelectContext(ctx, &roles,
		"SELECT id, role_name, description FROM roles ORDER BY id"); err != nil {
		return nil, fmt.Errorf("select roles: %w", err)
	}
	return roles, nil
}

// ListHeroesByRole returns the heroes assigned to a role. The INNER JOIN
// means an unknown role id yields an empty slice, not an error.
func (s *Store) ListHeroesByRole(ctx context.Context, roleID int64) ([]model.RoleHero, error) {
	q := s.db.Rebind(`
		SELECT h.id, h.hero_name, h.origin, h.difficulty, r.role_name
		FROM heroes h
		JOIN roles r ON h.role_id = r.id
		WHERE r.id = ?
		ORDER BY h.id`)

	heroes := []model.RoleHero{}
	if err := s.db.SelectContext(ctx, &heroes, q, roleID); err != nil {
		return nil, fmt.Errorf("select heroes by role: %w", err)
	}
	return heroes, nil
}

// ListSpecialties returns every specialty.
func (s *Store) ListSpecialties(ctx context.Context) ([]model.Specialty, error) {
	specialties := []model.Specialty{}
	if err := s.db.SelectContext(ctx, &specialties,
		"SELECT id, specialty_name, description FROM specialties ORDER BY id"); err != nil {
		return nil, fmt.Errorf("select specialties: %w", err)
	}
	return specialties, nil
}
