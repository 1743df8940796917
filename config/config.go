// Package config loads the optional vcdim.yaml/env-var configuration
// layer consulted by cmd/vcdim (spec.md §1.1 ambient stack), merged under
// explicit --flag overrides set by the CLI itself.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds the tunables the CLI driver reads at startup. None of them
// change the combinatorial algorithms' semantics, only their verbosity
// and the witness.VCEngine cover-size ceiling override.
type Config struct {
	// Verbosity is the default applog.Level name ("debug", "info",
	// "warn", "error") used when the CLI's --verbose flag is absent.
	Verbosity string `mapstructure:"verbosity"`

	// CoverSizeCeiling overrides witness.VCEngine's default cover-size
	// ceiling of ⌈log2 d⌉ (spec.md §4.6) when positive; 0 means "use the
	// theoretical default".
	CoverSizeCeiling int `mapstructure:"cover_size_ceiling"`
}

// Load reads configuration from configPath (if nonempty) or the standard
// search locations ("./vcdim.yaml", "./configs/vcdim.yaml"), falling back
// to defaults when no file is found. Environment variables prefixed
// VCDIM_ override file values.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("vcdim")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file: defaults stand.
		} else if os.IsNotExist(err) {
			// Explicit path named but absent: defaults stand.
		} else {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	v.SetEnvPrefix("VCDIM")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("verbosity", "info")
	v.SetDefault("cover_size_ceiling", 0)
}
