// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics, overwrite diagnostics, and debug introspection layer for
// overring. All instrumentation lives here, outside the ring's hot path:
//   - Metrics telemetry registry with snapshot reads
//   - Eviction journal recording overwrite events
//   - Instrumented ring wrapper counting puts/gets/overwrites
//   - Debug hooks and probe registration
package control
