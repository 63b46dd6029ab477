// Package runtime wires storage, config, the host cache, and the mapper
// registry into a single engine instance. It exposes Open/Close, a basic
// health check, and helpers to parse record batches and run them through
// registered mappers.
//
// Example:
//
//	cfg := config.Default()
//	rt, _ := runtime.Open(runtime.Options{DataDir: t.TempDir(), Config: cfg})
//	defer rt.Close()
//	h, _ := rt.Registry().Register(m)
//	recs, _ := rt.ParseBatch(ndjson)
//	out, _ := rt.Process(h, recs)
package runtime
