package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/herodex/herodex/internal/model"
)

// GetAdminByUsername returns the admin account for a username, or
// ErrNotFound.
func (s *Store) GetAdminByUsername(ctx context.Context, username string) (*model.Admin, error) {
	var admin model.Admin
	q := s.db.Rebind(`
		SELECT id, username, password_hash, created_at, last_login_at
		FROM admins WHERE username = ?`)
	if err := s.db.GetContext(ctx, &admin, q, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select admin: %w", err)
	}
	return &admin, nil
}

// CreateAdmin inserts an admin account. The password must already be hashed.
func (s *Store) CreateAdmin(ctx context.Context, username, passwordHash string) error {
	_, err := s.insert(ctx,
		"INSERT INTO admins (username, password_hash, created_at) VALUES (?, ?, ?)",
		username, passwordHash, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// HasAnyAdmin reports whether at least one admin account exists.
func (s *Store) HasAnyAdmin(ctx context.Context) (bool, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM admins"); err != nil {
		return false, fmt.Errorf("count admins: %w", err)
	}
	return count > 0, nil
}

// UpdateAdminLastLogin stamps the last successful login time.
func (s *Store) UpdateAdminLastLogin(ctx context.Context, id int64) error {
	q := s.db.Rebind("UPDATE admins SET last_login_at = ? WHERE id = ?")
	if _, err := s.db.ExecContext(ctx, q, time.Now().UTC(), id); err != nil {
		return fmt.Errorf("update admin last login: %w", err)
	}
	return nil
}
