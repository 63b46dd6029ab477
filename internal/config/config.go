package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/telophasehq/tangent/pkg/mapper"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	// DataDir is the base directory for host-owned state.
	DataDir string `json:"dataDir" toml:"dataDir"`

	Cache CacheConfig `json:"cache" toml:"cache"`

	// Mappers holds per-mapper settings, keyed by mapper name.
	Mappers map[string]map[string]string `json:"mappers" toml:"mappers"`
}

// CacheConfig bounds the host scalar cache.
type CacheConfig struct {
	// Path is the cache directory, relative to DataDir unless absolute.
	Path string `json:"path" toml:"path"`
	// DefaultTTLMs applies to writes that give no TTL.
	DefaultTTLMs int64 `json:"defaultTtlMs" toml:"defaultTtlMs"`
	// MaxTTLMs clamps every write.
	MaxTTLMs int64 `json:"maxTtlMs" toml:"maxTtlMs"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		DataDir: "./data",
		Cache: CacheConfig{
			Path:         "cache",
			DefaultTTLMs: 60_000,
			MaxTTLMs:     86_400_000,
		},
	}
}

// Load reads configuration from a JSON or TOML file (by extension). If
// path is empty, returns defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch filepath.Ext(path) {
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	return cfg, nil
}

// CachePath resolves the cache directory against DataDir.
func (c Config) CachePath() string {
	if filepath.IsAbs(c.Cache.Path) {
		return c.Cache.Path
	}
	return filepath.Join(c.DataDir, c.Cache.Path)
}

// MapperConfigs converts the per-mapper settings into the registry's
// shape.
func (c Config) MapperConfigs() map[string]mapper.Config {
	if len(c.Mappers) == 0 {
		return nil
	}
	out := make(map[string]mapper.Config, len(c.Mappers))
	for name, kv := range c.Mappers {
		out[name] = mapper.Config(kv)
	}
	return out
}
