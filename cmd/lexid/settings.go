package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lexid/internal/config"
)

// loadConfig reads lexid.toml and the environment, then applies the global
// flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Root().PersistentFlags()
	explicit, err := flags.GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, _, err := config.Load(".", explicit, nil)
	if err != nil {
		return config.Config{}, err
	}

	if flags.Changed("color") {
		if cfg.Check.Color, err = flags.GetString("color"); err != nil {
			return config.Config{}, fmt.Errorf("failed to get color flag: %w", err)
		}
	}
	if flags.Changed("max-diagnostics") {
		if cfg.Check.MaxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return config.Config{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
	}
	return cfg, cfg.Validate()
}
