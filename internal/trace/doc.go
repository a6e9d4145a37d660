// Package trace provides structured event tracing for the oxbow tools.
//
// Tracing is the logging layer: passes over the HIR open spans, and cache
// and verifier code emit point events. Events carry a scope; the tracer's
// level decides which scopes reach the output.
//
// # Usage
//
//	oxbow stats --trace=- --trace-level=detail crate.mp
//
// # Tracers
//
//   - Nop: zero-overhead tracer used when tracing is off
//   - StreamTracer: writes every event immediately (text or NDJSON)
//   - RingTracer: keeps the last N events for a dump after a crash
//   - MultiTracer: fans out to several tracers
//
// # Scopes
//
//   - ScopeDriver: CLI commands
//   - ScopePass: whole-crate passes (visit, verify, encode)
//   - ScopeOwner: per-owner work, one item or partition
//   - ScopeNode: single nodes
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "verify", 0)
//	defer span.End("")
package trace
