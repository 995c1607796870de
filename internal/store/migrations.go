package store

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// DefaultAdminUsername and DefaultAdminPassword are the demo account seeded
// by Migrate when the admins table is empty. Replace it in any real
// deployment: herodex admin create.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "password"
)

// Migrate creates the schema if it does not exist and seeds reference data
// (roles, specialties) plus the default admin account on a fresh database.
// It is idempotent.
//
// The hero foreign-key columns are intentionally unconstrained: inserts are
// not validated against roles/hero_stats/specialties, and deleting a
// referenced row leaves a dangling id that surfaces as NULL join fields.
func (s *Store) Migrate(ctx context.Context) error {
	for i, stmt := range s.migrations() {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}
	return s.seed(ctx)
}

func (s *Store) migrations() []string {
	var serial, text, integer, timestamp string
	switch s.driver {
	case "mysql":
		serial = "BIGINT PRIMARY KEY AUTO_INCREMENT"
		text = "VARCHAR(255)"
		integer = "BIGINT"
		timestamp = "DATETIME"
	case "postgres":
		serial = "BIGSERIAL PRIMARY KEY"
		text = "TEXT"
		integer = "BIGINT"
		timestamp = "TIMESTAMPTZ"
	default: // sqlite
		serial = "INTEGER PRIMARY KEY AUTOINCREMENT"
		text = "TEXT"
		integer = "INTEGER"
		timestamp = "DATETIME"
	}

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS roles (
			id {serial},
			role_name {text} NOT NULL,
			description {text} NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE IF NOT EXISTS specialties (
			id {serial},
			specialty_name {text} NOT NULL,
			description {text} NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE IF NOT EXISTS hero_stats (
			id {serial},
			hp {integer},
			mana {integer},
			attack {integer},
			defense {integer},
			movement_speed {integer}
		)`,

		`CREATE TABLE IF NOT EXISTS heroes (
			id {serial},
			hero_name {text} NOT NULL,
			origin {text},
			difficulty {text},
			role_id {integer},
			hero_stats_id {integer},
			specialty_id {integer}
		)`,

		`CREATE TABLE IF NOT EXISTS admins (
			id {serial},
			username {text} NOT NULL UNIQUE,
			password_hash {text} NOT NULL,
			created_at {timestamp} NOT NULL,
			last_login_at {timestamp}
		)`,
	}

	r := strings.NewReplacer(
		"{serial}", serial,
		"{text}", text,
		"{integer}", integer,
		"{timestamp}", timestamp,
	)
	out := make([]string, len(stmts))
	for i, stmt := range stmts {
		out[i] = r.Replace(stmt)
	}
	return out
}

// seedRoles and seedSpecialties mirror the reference rows of the original
// hero catalog.
var seedRoles = [][2]string{
	{"Tank", "Durable frontliners who absorb damage for the team"},
	{"Fighter", "Balanced melee combatants with damage and durability"},
	{"Assassin", "High-mobility burst damage dealers targeting backlines"},
	{"Mage", "Magic damage dealers with powerful area spells"},
	{"Marksman", "Ranged physical damage carries that scale with items"},
	{"Support", "Utility heroes that protect and enable allies"},
}

var seedSpecialties = [][2]string{
	{"Crowd Control", "Disables and displaces enemy heroes"},
	{"Burst", "Eliminates targets with short, high-damage windows"},
	{"Charge", "Engages fights by closing distance quickly"},
	{"Damage", "Sustained damage output"},
	{"Regen", "Recovers health or mana over time"},
	{"Push", "Pressures and destroys turrets quickly"},
}

func (s *Store) seed(ctx context.Context) error {
	var roleCount int
	if err := s.db.GetContext(ctx, &roleCount, "SELECT COUNT(*) FROM roles"); err != nil {
		return fmt.Errorf("count roles: %w", err)
	}
	if roleCount == 0 {
		for _, r := range seedRoles {
			if _, err := s.insert(ctx,
				"INSERT INTO roles (role_name, description) VALUES (?, ?)", r[0], r[1]); err != nil {
				return fmt.Errorf("seed role %s: %w", r[0], err)
			}
		}
	}

	var specCount int
	if err := s.db.GetContext(ctx, &specCount, "SELECT COUNT(*) FROM specialties"); err != nil {
		return fmt.Errorf("count specialties: %w", err)
	}
	if specCount == 0 {
		for _, sp := range seedSpecialties {
			if _, err := s.insert(ctx,
				"INSERT INTO specialties (specialty_name, description) VALUES (?, ?)", sp[0], sp[1]); err != nil {
				return fmt.Errorf("seed specialty %s: %w", sp[0], err)
			}
		}
	}

	hasAdmin, err := s.HasAnyAdmin(ctx)
	if err != nil {
		return err
	}
	if !hasAdmin {
		hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash default password: %w", err)
		}
		if err := s.CreateAdmin(ctx, DefaultAdminUsername, string(hash)); err != nil {
			return fmt.Errorf("seed default admin: %w", err)
		}
	}
	return nil
}
