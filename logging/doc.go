// Package logging provides a minimal logging interface and adapters for FrameMesh.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn, Error)
// that the host, registries and binding layer use for observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//   - FrameMeshLogger with contextual helpers and domain specific logging
//     helpers for ticks, scene transitions and lifetime bindings
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	host := object.NewHost(logger)
//
// The design intentionally keeps the interface minimal to avoid vendor lock-in
// while supporting structured logging where available.
package logging
