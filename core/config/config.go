// Package config loads optional tool-wide defaults from an
// odoo-tools.toml file at the checkout root, with ODOO_TOOLS_*
// environment overrides. CLI flags take precedence over everything
// loaded here.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	// FileName is the optional per-checkout configuration file.
	FileName = "odoo-tools.toml"

	envPrefix = "ODOO_TOOLS"
)

// Config holds the defaults both subcommands consult.
type Config struct {
	Jsconfig JsconfigConfig `mapstructure:"jsconfig"`
	Index    IndexConfig    `mapstructure:"index"`
}

// JsconfigConfig configures the jsconfig generator.
type JsconfigConfig struct {
	// Output is the document path, relative to the base directory.
	Output string `mapstructure:"output"`
	// ExtraRoots are addon roots scanned after the fixed roots and
	// before any roots given on the command line.
	ExtraRoots []string `mapstructure:"extra_roots"`
}

// IndexConfig configures the codebase indexer.
type IndexConfig struct {
	// Output is the index document path.
	Output string `mapstructure:"output"`
	// Excludes are patterns added to the built-in exclude set.
	Excludes []string `mapstructure:"excludes"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	return Config{
		Jsconfig: JsconfigConfig{Output: "jsconfig.json"},
		Index:    IndexConfig{Output: "codebase_index.md"},
	}
}

// Load reads odoo-tools.toml from baseDir when present and applies
// environment overrides. A missing file is not an error; a malformed
// one is.
func Load(baseDir string) (*Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("jsconfig.output", defaults.Jsconfig.Output)
	v.SetDefault("jsconfig.extra_roots", defaults.Jsconfig.ExtraRoots)
	v.SetDefault("index.output", defaults.Index.Output)
	v.SetDefault("index.excludes", defaults.Index.Excludes)

	v.SetConfigName(strings.TrimSuffix(FileName, ".toml"))
	v.SetConfigType("toml")
	v.AddConfigPath(baseDir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}
