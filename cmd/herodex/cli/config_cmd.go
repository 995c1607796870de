package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage Herodex configuration",
		Long:  "Initialize a default configuration file or display the current effective configuration.",
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

// ---------- config init ----------

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default herodex.yaml configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing config file")

	return cmd
}

const defaultConfigFile = `# Herodex Configuration

server:
  host: 0.0.0.0
  port: 8080
  rate_limit: 300

db:
  # driver: mysql | postgres | sqlite
  driver: sqlite
  # path: /var/lib/herodex/herodex.db   # sqlite only
  # host: localhost
  # port: 3306
  # user: herodex
  # password: change-me
  # name: herodex

auth:
  # Signing secret for bearer tokens. Required in production; can also be
  # supplied via HERODEX_AUTH_JWT_SECRET.
  # jwt_secret: change-me
  token_ttl_hours: 24
`

func runConfigInit(force bool) error {
	const path = "herodex.yaml"

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := os.WriteFile(path, []byte(defaultConfigFile), 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}

// ---------- config show ----------

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := viper.AllSettings()

			// Never print the signing secret or DB password.
			if auth, ok := settings["auth"].(map[string]any); ok {
				if _, ok := auth["jwt_secret"]; ok {
					auth["jwt_secret"] = "***"
				}
			}
			if db, ok := settings["db"].(map[string]any); ok {
				if _, ok := db["password"]; ok {
					db["password"] = "***"
				}
			}

			out, err := yaml.Marshal(settings)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
