package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/herodex/herodex/internal/model"
)

// CreateHeroStats inserts a stats row and returns its id. Absent fields are
// stored as NULL.
func (s *Store) CreateHeroStats(ctx context.Context, in model.HeroStatsInput) (int64, error) {
	id, err := s.insert(ctx, `
		INSERT INTO hero_stats (hp, mana, attack, defense, movement_speed)
		VALUES (?, ?, ?, ?, ?)`,
		in.HP, in.Mana, in.Attack, in.Defense, in.MovementSpeed)
	if err != nil {
		return 0, fmt.Errorf("insert hero stats: %w", err)
	}
	return id, nil
}

// GetHeroStats returns one stats row by id, or ErrNotFound.
func (s *Store) GetHeroStats(ctx context.Context, id int64) (*model.HeroStats, error) {
	var stats model.HeroStats
	q := s.db.Rebind("SELECT id, hp, mana, attack, defense, movement_speed FROM hero_stats WHERE id = ?")
	if err := s.db.GetContext(ctx, &stats, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select hero stats: %w", err)
	}
	return &stats, nil
}
