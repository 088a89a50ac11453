// Package cmd implements the CLI application driving the dashboard.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	env "github.com/caarlos0/env/v11"

	"github.com/Ray-XRay/wealthdash-google"
	"github.com/Ray-XRay/wealthdash-google/kvstore"
)

// config is the environment-driven application configuration. Everything a
// subcommand needs beyond its own flags comes from here.
type config struct {
	DataDir  string `env:"WEALTHDASH_DIR"`
	RatesURL string `env:"WEALTHDASH_RATES_URL"`
	Model    string `env:"WEALTHDASH_MODEL"`
	Base     string `env:"WEALTHDASH_BASE" envDefault:"HKD"`
}

// loadConfig parses the environment and fills in the default data dir.
func loadConfig() (config, error) {
	cfg, err := env.ParseAs[config]()
	if err != nil {
		return config{}, fmt.Errorf("cannot read configuration from environment: %w", err)
	}
	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return config{}, fmt.Errorf("cannot locate home dir, set WEALTHDASH_DIR: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".wealthdash")
	}
	return cfg, nil
}

// openStore restores the store from the configured data dir. The store
// persists itself on every mutation, so there is no matching close.
func openStore(cfg config) (*wealthdash.Store, error) {
	kv, err := kvstore.Open(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	return wealthdash.OpenStore(kv), nil
}

// baseCurrency resolves the display currency: the -b flag when given,
// otherwise the configured default.
func baseCurrency(flagValue string, cfg config) wealthdash.Currency {
	if flagValue != "" {
		return wealthdash.CoerceCurrency(flagValue)
	}
	return wealthdash.CoerceCurrency(cfg.Base)
}
