// Package trace provides a tracing subsystem for the compiler.
//
// The trace package enables tracking of compilation phases, file processing,
// and other operations to help diagnose performance issues and hangs.
//
// # Usage
//
// A Tracer is supplied via compiler.Options.Tracer and propagated through
// the pipeline via context.
//
// # Architecture
//
// The package provides several tracer implementations:
//
//   - Nop (nopTracer): Zero-overhead no-op tracer when disabled
//   - StreamTracer: Immediate write to output (file/stderr)
//   - RingTracer: Circular buffer for crash dumps
//   - MultiTracer: Combines multiple tracers
//
// # Levels
//
// Tracing verbosity is controlled by levels:
//
//   - LevelOff: No tracing
//   - LevelError: Only crash dumps
//   - LevelPhase: Driver and pass boundaries
//   - LevelDetail: Module-level events
//   - LevelDebug: Everything including AST nodes
//
// # Scopes
//
// Events are categorized by scope:
//
//   - ScopeDriver: Top-level CLI operations
//   - ScopeModule: Per-module processing
//   - ScopePass: Compilation phases (lex, parse, lower, sema)
//   - ScopeNode: AST node level (future)
//
// # Context Propagation
//
// Tracers are propagated through the compilation pipeline via context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "parse", parentID)
//	defer span.End("")
package trace
