// Package config loads gitstat configuration from
// ~/.config/gitstat/config.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EnvHashPrefix overrides hash_prefix, mirroring the variable the
// accompanying zsh theme exports.
const EnvHashPrefix = "GITSTAT_HASH_PREFIX"

// PromptConfig holds the symbols used by the rendered prompt segment.
type PromptConfig struct {
	AheadSymbol     string `toml:"ahead_symbol"`
	BehindSymbol    string `toml:"behind_symbol"`
	StagedSymbol    string `toml:"staged_symbol"`
	ConflictSymbol  string `toml:"conflict_symbol"`
	ChangedSymbol   string `toml:"changed_symbol"`
	UntrackedSymbol string `toml:"untracked_symbol"`
	StashSymbol     string `toml:"stash_symbol"`
	CleanSymbol     string `toml:"clean_symbol"`
}

// Config holds the gitstat configuration.
type Config struct {
	// HashPrefix is rendered before the commit hash in prompt mode when
	// HEAD is detached, so a hash is visually distinct from a branch.
	HashPrefix string `toml:"hash_prefix"`

	Prompt PromptConfig `toml:"prompt"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		HashPrefix: ":",
		Prompt: PromptConfig{
			AheadSymbol:     "↑",
			BehindSymbol:    "↓",
			StagedSymbol:    "●",
			ConflictSymbol:  "✖",
			ChangedSymbol:   "✚",
			UntrackedSymbol: "…",
			StashSymbol:     "⚑",
			CleanSymbol:     "✔",
		},
	}
}

// Path returns the path of the config file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gitstat", "config.toml"), nil
}

// Load reads the config file, applying defaults for everything unset.
// A missing file is not an error; a file that exists but does not parse
// is. The GITSTAT_HASH_PREFIX environment variable overrides hash_prefix
// either way.
func Load() (Config, error) {
	cfg := Default()

	path, err := Path()
	if err != nil {
		return applyEnv(cfg), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(cfg), nil
		}
		return applyEnv(cfg), fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return applyEnv(Default()), fmt.Errorf("failed to parse config file: %w", err)
	}

	return applyEnv(cfg), nil
}

func applyEnv(cfg Config) Config {
	if prefix, ok := os.LookupEnv(EnvHashPrefix); ok {
		cfg.HashPrefix = prefix
	}
	return cfg
}
