package mapper

import (
	"time"

	"github.com/telophasehq/tangent/pkg/frame"
	"github.com/telophasehq/tangent/pkg/logview"
	"github.com/telophasehq/tangent/pkg/record"
	"github.com/telophasehq/tangent/pkg/selector"
)

// Meta is a mapper's static identity.
type Meta struct {
	Name    string
	Version string
}

// Mapper is the common half of the contract: identity and routing probe.
// Every mapper must additionally implement exactly one of RawMapper or
// FrameMapper.
type Mapper interface {
	// Metadata returns the static identity. No side effects.
	Metadata() Meta

	// Probe returns the ordered selector list used for routing. It is
	// called once, at registration; selectors must be pure and reusable
	// across records.
	Probe() []selector.Selector
}

// RawMapper emits raw bytes for a batch, conventionally one
// newline-delimited JSON record per accepted input.
type RawMapper interface {
	Mapper
	ProcessLogs(views []*logview.View) ([]byte, error)
}

// FrameMapper emits an ordered sequence of Frames for a batch.
type FrameMapper interface {
	Mapper
	ProcessLogs(views []*logview.View) ([]frame.Frame, error)
}

// Config is the per-mapper settings map handed to mappers at
// registration.
type Config map[string]string

// Get returns the value for key.
func (c Config) Get(key string) (string, bool) {
	v, ok := c[key]
	return v, ok
}

// Cache is the host-provided scalar KV surface mappers may use across
// records. A zero ttl asks for the host's default; hosts clamp to their
// maximum.
type Cache interface {
	Get(key string) (record.Scalar, bool, error)
	Set(key string, v record.Scalar, ttl time.Duration) error
	Del(key string) (bool, error)
}

// Env bundles the host services available to a mapper.
type Env struct {
	Config Config
	Cache  Cache
}

// Binder is implemented by mappers that want host services. Bind is
// called once, during registration, before Probe.
type Binder interface {
	Bind(env Env)
}

// Output is a batch result: exactly one of Raw or Frames is set,
// depending on the mapper flavor.
type Output struct {
	Raw    []byte
	Frames []frame.Frame
}
