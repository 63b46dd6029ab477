package runtime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	cfgpkg "github.com/telophasehq/tangent/internal/config"
	"github.com/telophasehq/tangent/internal/hostcache"
	pebblestore "github.com/telophasehq/tangent/internal/storage/pebble"
	"github.com/telophasehq/tangent/pkg/log"
	"github.com/telophasehq/tangent/pkg/mapper"
	"github.com/telophasehq/tangent/pkg/record"
)

// Options for building the Runtime.
type Options struct {
	// DataDir overrides Config.DataDir when set.
	DataDir string
	Fsync   pebblestore.FsyncMode
	Config  cfgpkg.Config
	Logger  log.Logger
}

// Runtime wires cache, config, and the mapper registry for a single
// engine instance.
type Runtime struct {
	cache    *hostcache.Cache
	registry *mapper.Registry
	config   cfgpkg.Config
	logger   log.Logger
}

// Open initializes the host cache and registry and returns a Runtime.
func Open(opts Options) (*Runtime, error) {
	cfg := opts.Config
	if opts.DataDir != "" {
		cfg.DataDir = opts.DataDir
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}

	cache, err := hostcache.Open(hostcache.Options{
		Dir:        cfg.CachePath(),
		DefaultTTL: time.Duration(cfg.Cache.DefaultTTLMs) * time.Millisecond,
		MaxTTL:     time.Duration(cfg.Cache.MaxTTLMs) * time.Millisecond,
		Fsync:      opts.Fsync,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("runtime: open cache: %w", err)
	}

	registry := mapper.NewRegistry(
		mapper.WithLogger(logger),
		mapper.WithCache(cache),
		mapper.WithConfigs(cfg.MapperConfigs()),
	)

	return &Runtime{
		cache:    cache,
		registry: registry,
		config:   cfg,
		logger:   logger,
	}, nil
}

// Close closes underlying resources.
func (r *Runtime) Close() error {
	if r.cache == nil {
		return nil
	}
	return r.cache.Close()
}

// CheckHealth performs a simple liveness check on the backing store.
func (r *Runtime) CheckHealth(ctx context.Context) error {
	if r.cache == nil {
		return errors.New("cache not open")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	_, _, err := r.cache.Get("health")
	return err
}

// Registry returns the mapper registry.
func (r *Runtime) Registry() *mapper.Registry { return r.registry }

// Cache returns the host scalar cache.
func (r *Runtime) Cache() *hostcache.Cache { return r.cache }

// Config returns the runtime configuration.
func (r *Runtime) Config() cfgpkg.Config { return r.config }

// ParseBatch splits newline-delimited JSON into records. Blank lines are
// skipped; a malformed line fails the whole batch.
func (r *Runtime) ParseBatch(data []byte) ([]*record.Record, error) {
	var out []*record.Record
	for i, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		rec, err := record.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("runtime: line %d: %w", i+1, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// Process runs one batch through a registered mapper.
func (r *Runtime) Process(h *mapper.Handle, recs []*record.Record) (mapper.Output, error) {
	return r.registry.Process(h, recs)
}
