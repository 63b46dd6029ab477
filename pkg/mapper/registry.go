package mapper

import (
	"errors"
	"fmt"

	"github.com/telophasehq/tangent/pkg/id"
	"github.com/telophasehq/tangent/pkg/log"
	"github.com/telophasehq/tangent/pkg/logview"
	"github.com/telophasehq/tangent/pkg/selector"
)

// ErrFlavor reports a mapper implementing neither or both ProcessLogs
// flavors.
var ErrFlavor = errors.New("mapper: must implement exactly one of RawMapper or FrameMapper")

// Handle is a registered mapper with its compiled probe.
type Handle struct {
	meta      Meta
	mapper    Mapper
	selectors []*selector.Compiled
}

// Meta returns the mapper's identity.
func (h *Handle) Meta() Meta { return h.meta }

// Accepts reports whether at least one probe selector matches the view.
func (h *Handle) Accepts(v *logview.View) bool {
	return selector.MatchAny(h.selectors, v)
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the registry logger.
func WithLogger(l log.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

// WithCache provides the scalar cache handed to Binder mappers.
func WithCache(c Cache) Option {
	return func(r *Registry) { r.cache = c }
}

// WithConfigs provides per-mapper settings, keyed by mapper name.
func WithConfigs(configs map[string]Config) Option {
	return func(r *Registry) { r.configs = configs }
}

// Registry holds registered mappers and routes batches to them.
type Registry struct {
	handles []*Handle
	byName  map[string]*Handle
	cache   Cache
	configs map[string]Config
	logger  log.Logger
	gen     *id.Generator
}

// NewRegistry builds an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		byName: make(map[string]*Handle),
		logger: log.NewNopLogger(),
		gen:    id.NewGenerator(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.WithComponent("mapper")
	return r
}

// Register binds host services, compiles the mapper's probe, and adds it
// to the registry. A selector that fails to compile rejects the mapper.
func (r *Registry) Register(m Mapper) (*Handle, error) {
	meta := m.Metadata()
	if meta.Name == "" {
		return nil, errors.New("mapper: empty name in metadata")
	}
	if _, dup := r.byName[meta.Name]; dup {
		return nil, fmt.Errorf("mapper: %q already registered", meta.Name)
	}

	switch m.(type) {
	case RawMapper, FrameMapper:
	default:
		return nil, fmt.Errorf("%q: %w", meta.Name, ErrFlavor)
	}
	if _, raw := m.(RawMapper); raw {
		if _, fr := m.(FrameMapper); fr {
			return nil, fmt.Errorf("%q: %w", meta.Name, ErrFlavor)
		}
	}

	if b, ok := m.(Binder); ok {
		b.Bind(Env{Config: r.configs[meta.Name], Cache: r.cache})
	}

	sels := m.Probe()
	compiled, err := selector.CompileAll(sels)
	if err != nil {
		r.logger.Warn("mapper rejected",
			log.Str("name", meta.Name),
			log.Err(err),
		)
		return nil, fmt.Errorf("mapper %q: probe: %w", meta.Name, err)
	}

	h := &Handle{meta: meta, mapper: m, selectors: compiled}
	r.handles = append(r.handles, h)
	r.byName[meta.Name] = h
	r.logger.Info("mapper registered",
		log.Str("name", meta.Name),
		log.Str("version", meta.Version),
		log.Int("selectors", len(compiled)),
	)
	return h, nil
}

// Handles returns registered mappers in registration order.
func (r *Registry) Handles() []*Handle { return r.handles }

// Lookup returns the handle registered under name.
func (r *Registry) Lookup(name string) (*Handle, bool) {
	h, ok := r.byName[name]
	return h, ok
}
