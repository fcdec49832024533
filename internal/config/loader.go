package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the file name looked up in the user and local directories.
const configFile = "duel.yaml"

// Load loads the duel configuration.
// Search order: customPath -> ~/.invaders/configs/duel.yaml -> ./configs/duel.yaml -> embedded default.
// Only a custom path that cannot be read, parsed or validated is an error;
// the other locations fall through silently.
func Load(customPath string) (DuelConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DuelConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DuelConfig{}, fmt.Errorf("failed to load config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if cfg, err := loadOptional(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := loadOptional(filepath.Join("configs", configFile)); err == nil {
		return cfg, nil
	}

	if cfg, err := Parse(defaultDuelYAML); err == nil {
		return cfg, nil
	}
	return DefaultDuelConfig(), nil // Fallback to hardcoded if embed fails
}

// Parse decodes YAML on top of the built-in defaults, so a file may set
// only the values it wants to change, and validates the result. Unknown
// keys are rejected so a misspelled setting cannot silently keep its
// default. An empty document yields the defaults.
func Parse(data []byte) (DuelConfig, error) {
	cfg := DefaultDuelConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return DuelConfig{}, fmt.Errorf("%w: failed to parse: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return DuelConfig{}, err
	}
	return cfg, nil
}

func loadOptional(path string) (DuelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DuelConfig{}, err
	}
	return Parse(data)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", "configs", filename)
}
