// Package config loads the engine configuration: cache location and TTL
// bounds, plus per-mapper settings maps. Files may be JSON or TOML (by
// extension); TANGENT_* environment variables overlay file values.
package config
