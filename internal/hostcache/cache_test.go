package hostcache

import (
	"testing"
	"time"

	"github.com/telophasehq/tangent/pkg/record"
)

func openTestCache(t *testing.T, opts Options) *Cache {
	t.Helper()
	if opts.Dir == "" {
		opts.Dir = t.TempDir()
	}
	c, err := Open(opts)
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

// stubClock pins NowMs to a controllable instant for the test's duration.
func stubClock(t *testing.T, startMs int64) *int64 {
	t.Helper()
	now := startMs
	prev := NowMs
	NowMs = func() int64 { return now }
	t.Cleanup(func() { NowMs = prev })
	return &now
}

func TestCacheSetGet(t *testing.T) {
	c := openTestCache(t, Options{})

	if err := c.Set("tenant", record.Str("acme"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := c.Get("tenant")
	if err != nil || !ok {
		t.Fatalf("get: %v, %v", ok, err)
	}
	if !v.Equal(record.Str("acme")) {
		t.Fatalf("value: %v", v)
	}

	if _, ok, err := c.Get("missing"); err != nil || ok {
		t.Fatalf("missing key: %v, %v", ok, err)
	}

	// Overwrite replaces the value.
	if err := c.Set("tenant", record.Int(7), time.Minute); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, ok, _ = c.Get("tenant")
	if !ok || !v.Equal(record.Int(7)) {
		t.Fatalf("after overwrite: %v, %v", v, ok)
	}
}

func TestCacheExpiry(t *testing.T) {
	now := stubClock(t, 1_000_000)
	c := openTestCache(t, Options{})

	if err := c.Set("k", record.Str("v"), 5*time.Second); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, ok, _ := c.Get("k"); !ok {
		t.Fatalf("fresh entry missed")
	}

	*now += 4_999
	if _, ok, _ := c.Get("k"); !ok {
		t.Fatalf("entry expired early")
	}

	*now += 1
	if _, ok, err := c.Get("k"); err != nil || ok {
		t.Fatalf("stale entry served: %v, %v", ok, err)
	}

	// Lazy expiry removed the row; a later Get stays a plain miss.
	if _, ok, _ := c.Get("k"); ok {
		t.Fatalf("stale entry resurrected")
	}
}

func TestCacheDefaultAndMaxTTL(t *testing.T) {
	now := stubClock(t, 0)
	c := openTestCache(t, Options{
		DefaultTTL: 10 * time.Second,
		MaxTTL:     time.Minute,
	})

	// ttl <= 0 takes the default.
	if err := c.Set("d", record.Str("x"), 0); err != nil {
		t.Fatalf("set: %v", err)
	}
	*now = 9_999
	if _, ok, _ := c.Get("d"); !ok {
		t.Fatalf("default ttl too short")
	}
	*now = 10_000
	if _, ok, _ := c.Get("d"); ok {
		t.Fatalf("default ttl not applied")
	}

	// An oversized ttl clamps to the max.
	*now = 0
	if err := c.Set("m", record.Str("x"), time.Hour); err != nil {
		t.Fatalf("set: %v", err)
	}
	*now = 60_000
	if _, ok, _ := c.Get("m"); ok {
		t.Fatalf("ttl not clamped to max")
	}
}

func TestOpenClampsDefaultToMax(t *testing.T) {
	now := stubClock(t, 0)
	c := openTestCache(t, Options{
		DefaultTTL: time.Hour,
		MaxTTL:     time.Second,
	})
	if err := c.Set("k", record.Str("x"), 0); err != nil {
		t.Fatalf("set: %v", err)
	}
	*now = 1_000
	if _, ok, _ := c.Get("k"); ok {
		t.Fatalf("default ttl exceeded max")
	}
}

func TestCacheDel(t *testing.T) {
	c := openTestCache(t, Options{})

	if err := c.Set("k", record.Boolean(true), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	existed, err := c.Del("k")
	if err != nil || !existed {
		t.Fatalf("del existing: %v, %v", existed, err)
	}
	if _, ok, _ := c.Get("k"); ok {
		t.Fatalf("deleted key still readable")
	}
	existed, err = c.Del("k")
	if err != nil || existed {
		t.Fatalf("del missing: %v, %v", existed, err)
	}
}

func TestCacheReset(t *testing.T) {
	c := openTestCache(t, Options{})

	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(k, record.Int(1), time.Minute); err != nil {
			t.Fatalf("set %s: %v", k, err)
		}
	}
	if err := c.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	for _, k := range []string{"a", "b", "c"} {
		if _, ok, _ := c.Get(k); ok {
			t.Fatalf("key %s survived reset", k)
		}
	}
}

func TestCacheCorruptEntryIsAMiss(t *testing.T) {
	c := openTestCache(t, Options{})

	if err := c.db.Set(cacheKey("bad"), []byte("garbage")); err != nil {
		t.Fatalf("raw set: %v", err)
	}
	if _, ok, err := c.Get("bad"); err != nil || ok {
		t.Fatalf("corrupt entry served: %v, %v", ok, err)
	}
}

func TestCachePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	c, err := Open(Options{Dir: dir})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := c.Set("k", record.Str("v"), time.Hour); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	c2, err := Open(Options{Dir: dir})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer c2.Close()
	v, ok, err := c2.Get("k")
	if err != nil || !ok || !v.Equal(record.Str("v")) {
		t.Fatalf("after reopen: %v, %v, %v", v, ok, err)
	}
}
