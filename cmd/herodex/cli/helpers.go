package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/herodex/herodex/internal/store"
)

// storeConfig assembles the database configuration from viper. For sqlite
// with no configured path the database lives under ~/.herodex.
func storeConfig() store.Config {
	cfg := store.DefaultConfig()
	cfg.Driver = viper.GetString("db.driver")
	cfg.Host = viper.GetString("db.host")
	cfg.Port = viper.GetInt("db.port")
	cfg.User = viper.GetString("db.user")
	cfg.Password = viper.GetString("db.password")
	cfg.Database = viper.GetString("db.name")
	cfg.Path = viper.GetString("db.path")

	if cfg.Driver == "sqlite" && cfg.Path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			cfg.Path = filepath.Join(home, ".herodex", "herodex.db")
		}
	}
	return cfg
}

// openStore connects to the configured database.
func openStore() (*store.Store, error) {
	st, err := store.Open(storeConfig())
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// jwtSecret returns the configured signing secret and whether it is the
// development fallback.
func jwtSecret() (string, bool) {
	secret := viper.GetString("auth.jwt_secret")
	if secret == "" {
		return "herodex-dev-secret-change-me", true
	}
	return secret, false
}

// tokenTTL returns the configured token lifetime.
func tokenTTL() time.Duration {
	return time.Duration(viper.GetInt("auth.token_ttl_hours")) * time.Hour
}
