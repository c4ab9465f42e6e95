// Package trace provides the tracing subsystem of php-cs-fixer.
//
// Tracing follows a run from the driver down to single fixer applications and
// helps find the files or rule interactions that make a run slow or prevent it
// from converging.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	php-cs-fixer fix --trace=- --trace-level=detail src/
//
// # Architecture
//
// The package provides several tracer implementations:
//
//   - Nop: Zero-overhead no-op tracer when disabled
//   - StreamTracer: Immediate write to output (file/stderr)
//   - RingTracer: Circular buffer dumped when a run fails
//   - MultiTracer: Combines multiple tracers
//
// # Levels
//
//   - LevelOff: No tracing
//   - LevelError: Only error events (cache read failures, convergence warnings)
//   - LevelPhase: Driver and file boundaries
//   - LevelDetail: Fixed-point passes
//   - LevelDebug: Everything including single fixer applications
//
// # Spans
//
// A file span is started with BeginFile; passes and fixers hang below it via
// Child and inherit the file name:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.BeginFile(trace.FromContext(ctx), path, trace.ParentID(ctx))
//	pass := span.Child(trace.ScopePass, "pass:1")
//	pass.End("")
//	span.End("fixed")
package trace
