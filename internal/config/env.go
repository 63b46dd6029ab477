package config

import (
	"os"
	"strconv"
)

// FromEnv overlays TANGENT_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("TANGENT_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("TANGENT_CACHE_PATH"); v != "" {
		cfg.Cache.Path = v
	}
	if v := os.Getenv("TANGENT_CACHE_DEFAULT_TTL_MS"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Cache.DefaultTTLMs = n
		}
	}
	if v := os.Getenv("TANGENT_CACHE_MAX_TTL_MS"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Cache.MaxTTLMs = n
		}
	}
}
