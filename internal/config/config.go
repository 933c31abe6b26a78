// Package config loads the histodiff CLI's optional TOML settings file,
// following the same decode-over-defaults pattern the corpus uses for its
// own TOML-backed server/client configs.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the CLI's tunable defaults. Every field has a zero-value
// fallback applied by Default before the file (if any) is decoded over it,
// so a partial or missing config file is never an error by itself.
type Config struct {
	// MaxChainLen caps how many occurrences of a token the histogram
	// finder will chase before giving up on it as an anchor. 0 means use
	// the package default.
	MaxChainLen int `toml:"max_chain_len,omitempty"`
	// ContextLines is the number of unchanged lines to show around each
	// hunk in unified-diff output.
	ContextLines int `toml:"context_lines,omitempty"`
	// Color enables ANSI coloring of added/removed lines in CLI output.
	Color bool `toml:"color,omitempty"`
}

// Default returns the CLI's built-in defaults.
func Default() *Config {
	return &Config{
		MaxChainLen:  63,
		ContextLines: 3,
		Color:        true,
	}
}

// Load reads path as TOML over Default's values. A missing file is not an
// error; Load returns the defaults unchanged in that case.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	if _, err := toml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}
