package hostcache

import (
	"errors"
	"time"

	pebblestore "github.com/telophasehq/tangent/internal/storage/pebble"
	"github.com/telophasehq/tangent/pkg/log"
	"github.com/telophasehq/tangent/pkg/record"
)

const keyPrefix = "cache/"

// NowMs returns current time in milliseconds since Unix epoch. Stubbed in
// tests.
var NowMs = func() int64 { return time.Now().UnixMilli() }

// Options configures the cache.
type Options struct {
	// Dir is the Pebble directory backing the cache.
	Dir string
	// DefaultTTL applies when Set is called with ttl <= 0.
	DefaultTTL time.Duration
	// MaxTTL clamps every write.
	MaxTTL time.Duration
	// Fsync selects the store's durability policy.
	Fsync pebblestore.FsyncMode
	// Logger is optional.
	Logger log.Logger
}

// Cache is a TTL'd scalar KV store over Pebble.
type Cache struct {
	db         *pebblestore.DB
	defaultTTL time.Duration
	maxTTL     time.Duration
	logger     log.Logger
}

// Open initializes the backing store and returns the cache.
func Open(opts Options) (*Cache, error) {
	if opts.DefaultTTL <= 0 {
		opts.DefaultTTL = time.Minute
	}
	if opts.MaxTTL <= 0 {
		opts.MaxTTL = 24 * time.Hour
	}
	if opts.DefaultTTL > opts.MaxTTL {
		opts.DefaultTTL = opts.MaxTTL
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}

	db, err := pebblestore.Open(pebblestore.Options{DataDir: opts.Dir, Fsync: opts.Fsync})
	if err != nil {
		return nil, err
	}

	logger = logger.WithComponent("hostcache")
	logger.Info("cache initialized", log.Str("dir", opts.Dir))

	return &Cache{
		db:         db,
		defaultTTL: opts.DefaultTTL,
		maxTTL:     opts.MaxTTL,
		logger:     logger,
	}, nil
}

// Close closes the backing store.
func (c *Cache) Close() error { return c.db.Close() }

func cacheKey(key string) []byte {
	out := make([]byte, 0, len(keyPrefix)+len(key))
	out = append(out, keyPrefix...)
	return append(out, key...)
}

// Get returns the live value for key. Stale entries are deleted on read
// and report a miss. Corrupt entries also report a miss.
func (c *Cache) Get(key string) (record.Scalar, bool, error) {
	k := cacheKey(key)
	raw, err := c.db.Get(k)
	if err != nil {
		if errors.Is(err, pebblestore.ErrNotFound) {
			return record.Scalar{}, false, nil
		}
		return record.Scalar{}, false, err
	}
	expiresAt, v, ok := decodeEntry(raw)
	if !ok {
		c.logger.Warn("dropping corrupt cache entry", log.Str("key", key))
		_ = c.db.Delete(k)
		return record.Scalar{}, false, nil
	}
	if expiresAt <= NowMs() {
		if err := c.db.Delete(k); err != nil {
			return record.Scalar{}, false, err
		}
		return record.Scalar{}, false, nil
	}
	return v, true, nil
}

// Set stores v under key. A ttl <= 0 uses the default; every ttl is
// clamped to the maximum.
func (c *Cache) Set(key string, v record.Scalar, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	if ttl > c.maxTTL {
		ttl = c.maxTTL
	}
	expiresAt := NowMs() + ttl.Milliseconds()
	return c.db.Set(cacheKey(key), encodeEntry(expiresAt, v))
}

// Del removes key, reporting whether an entry existed.
func (c *Cache) Del(key string) (bool, error) {
	k := cacheKey(key)
	if _, err := c.db.Get(k); err != nil {
		if errors.Is(err, pebblestore.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := c.db.Delete(k); err != nil {
		return false, err
	}
	return true, nil
}

// Reset drops every cache entry.
func (c *Cache) Reset() error {
	start := []byte(keyPrefix)
	end := []byte(keyPrefix)
	end[len(end)-1]++ // "cache0" bounds the "cache/" keyspace
	return c.db.DeleteRange(start, end)
}
