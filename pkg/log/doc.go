// Package log provides Tangent's structured logging facade.
//
// # Overview
//
// The package exposes a small Logger interface with leveled methods and a
// Field type for structured context. Internally it is backed by Go's
// standard library slog via a custom handler that routes records through
// the formatter/output pipeline, so output stays consistent across the
// codebase while slog-based tooling keeps working.
//
// Quick start
//
//	l := log.NewLogger(
//	    log.WithLevel(log.InfoLevel),
//	    log.WithFormatter(&log.TextFormatter{}),
//	    log.WithOutput(log.NewConsoleOutput()),
//	)
//	l = l.WithComponent("mapper")
//	l.Info("mapper registered", log.Str("name", "syslog"), log.Int("selectors", 2))
//
// NewNopLogger returns a logger that discards everything; it is the
// default wherever a Logger is optional.
package log
