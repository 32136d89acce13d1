package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const fileName = "gemlink.yaml"

// Load loads the Gem Link configuration.
// Search order: customPath -> ~/.gemlink/configs/gemlink.yaml -> ./configs/gemlink.yaml -> embedded default.
// Keys missing from a file keep their default values.
func Load(customPath string) (GemLinkConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GemLinkConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data, customPath)
		if err != nil {
			return GemLinkConfig{}, err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data, userCfgPath); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", fileName)
	if data, err := os.ReadFile(localPath); err == nil {
		if cfg, err := parse(data, localPath); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultGemLinkYAML, "embedded")
	if err != nil {
		return DefaultGemLinkConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parse(data []byte, source string) (GemLinkConfig, error) {
	cfg := DefaultGemLinkConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GemLinkConfig{}, fmt.Errorf("failed to parse config %s: %w", source, err)
	}
	cfg.Source = source
	return cfg, nil
}

// Marshal renders the config as YAML.
func (c GemLinkConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gemlink", "configs", filename)
}

// LoadDotEnv loads KEY=VALUE pairs from path (./.env when empty) into the
// process environment without overriding variables that are already set.
// A missing default file is not an error; a missing explicit file is.
func LoadDotEnv(path string) error {
	explicit := path != ""
	if !explicit {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: cannot load env file %s: %w", path, err)
	}
	return nil
}

// Environment variables recognized by ApplyEnv.
const (
	EnvWidth      = "GEMLINK_WIDTH"
	EnvHeight     = "GEMLINK_HEIGHT"
	EnvAdjacency  = "GEMLINK_ADJACENCY"
	EnvMoves      = "GEMLINK_MOVES"
	EnvTarget     = "GEMLINK_TARGET"
	EnvMinMatch   = "GEMLINK_MIN_MATCH"
	EnvTargetType = "GEMLINK_TARGET_TYPE"
	EnvTheme      = "GEMLINK_THEME"
)

// ApplyEnv overrides config values from GEMLINK_* environment variables.
// A variable that is set but not an integer is an error.
func ApplyEnv(cfg *GemLinkConfig) error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvWidth, &cfg.Board.Width},
		{EnvHeight, &cfg.Board.Height},
		{EnvAdjacency, &cfg.Board.Adjacency},
		{EnvMoves, &cfg.Rules.MoveLimit},
		{EnvTarget, &cfg.Rules.TargetGemCount},
		{EnvMinMatch, &cfg.Rules.MinMatchCount},
		{EnvTargetType, &cfg.Rules.TargetTypeIndex},
	}
	for _, e := range ints {
		raw, ok := os.LookupEnv(e.key)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("config: %s=%q is not an integer", e.key, raw)
		}
		*e.dst = v
	}
	if theme, ok := os.LookupEnv(EnvTheme); ok && theme != "" {
		cfg.Theme = theme
	}
	return nil
}
