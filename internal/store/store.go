package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Config holds the connection parameters for the backing database. Driver is
// one of "mysql", "postgres", or "sqlite". For sqlite only Path is used; an
// empty Path opens an in-memory database.
type Config struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	Database string
	Path     string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultConfig returns a Config with the pool defaults used in production.
func DefaultConfig() Config {
	return Config{
		Driver:          "sqlite",
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: time.Minute,
	}
}

// DSN builds the driver-specific connection string.
func (c Config) DSN() (string, error) {
	switch c.Driver {
	case "mysql":
		mc := mysqldriver.NewConfig()
		mc.Net = "tcp"
		mc.Addr = fmt.Sprintf("%s:%d", c.Host, c.Port)
		mc.User = c.User
		mc.Passwd = c.Password
		mc.DBName = c.Database
		mc.ParseTime = true
		return mc.FormatDSN(), nil
	case "postgres":
		return fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
			c.User, c.Password, c.Host, c.Port, c.Database), nil
	case "sqlite":
		if c.Path == "" {
			return ":memory:?_journal_mode=WAL", nil
		}
		if err := os.MkdirAll(filepath.Dir(c.Path), 0o755); err != nil {
			return "", fmt.Errorf("create data dir: %w", err)
		}
		return c.Path + "?_journal_mode=WAL&_busy_timeout=5000", nil
	default:
		return "", fmt.Errorf("unsupported driver %q", c.Driver)
	}
}

// sqlDriverName maps the logical driver name to the registered database/sql
// driver.
func (c Config) sqlDriverName() string {
	switch c.Driver {
	case "postgres":
		return "pgx"
	default:
		return c.Driver
	}
}

// Store provides data access for heroes, roles, hero stats, specialties, and
// admin accounts. Handlers receive a *Store through their constructors; there
// is no package-level database handle.
type Store struct {
	db     *sqlx.DB
	driver string
}

// Open connects to the database described by cfg and applies pool settings.
// It does not create the schema; call Migrate for that.
func Open(cfg Config) (*Store, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Connect(cfg.sqlDriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("%s connect: %w", cfg.Driver, err)
	}

	if cfg.Driver == "sqlite" {
		// SQLite doesn't support concurrent writes.
		db.SetMaxOpenConns(1)
	} else {
		if cfg.MaxOpenConns > 0 {
			db.SetMaxOpenConns(cfg.MaxOpenConns)
		}
		if cfg.MaxIdleConns > 0 {
			db.SetMaxIdleConns(cfg.MaxIdleConns)
		}
		if cfg.ConnMaxLifetime > 0 {
			db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
		}
		if cfg.ConnMaxIdleTime > 0 {
			db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
		}
	}

	return &Store{db: db, driver: cfg.Driver}, nil
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the database connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Driver returns the logical driver name ("mysql", "postgres", "sqlite").
func (s *Store) Driver() string {
	return s.driver
}

// supportsReturning reports whether the dialect uses INSERT ... RETURNING to
// obtain generated ids instead of LastInsertId.
func (s *Store) supportsReturning() bool {
	return s.driver == "postgres"
}

// insert executes an INSERT written with ? placeholders and returns the
// generated id, bridging the LastInsertId / RETURNING dialect split.
func (s *Store) insert(ctx context.Context, query string, args ...any) (int64, error) {
	if s.supportsReturning() {
		var id int64
		q := s.db.Rebind(query + " RETURNING id")
		if err := s.db.QueryRowxContext(ctx, q, args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}

	res, err := s.db.ExecContext(ctx, s.db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
