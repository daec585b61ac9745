// Package diag defines the core diagnostic model shared by all compiler
// phases: severities, codes, the Diagnostic record itself, the generic
// DiagnosticBuilder, and DiagCtxt, the single point every pass reports
// through.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture
//     findings produced by the lexer, parser, import resolver and semantic
//     checks.
//   - Offer a builder that statically distinguishes "this call reported an
//     error" from "this call reported something informational" via the
//     EmissionGuarantee type parameter, the closest Go gets to the reference
//     design's compile-time must-use diagnostic.
//   - Model fix suggestions as structured edits that a CLI or editor
//     integration can apply.
//
// # Scope
//
// Package diag performs no formatting, IO, or CLI integration; rendering
// lives in internal/diagfmt. It does not resolve spans to files either —
// that's source.SourceMap's job, since Span itself carries no file
// reference.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – nine-level enum (see severity.go) mirroring the reference
//     design's Allow/Note/Help/Warning/Error/Fatal taxonomy.
//   - Code – stable 4-digit identifier (see codes.go).
//   - Message – human oriented text.
//   - Spans – a MultiSpan: one primary span plus any number of labelled
//     secondary spans.
//   - Notes – auxiliary spans/messages.
//   - Fixes – optional Fix records describing an automated correction.
//
// # Emitting diagnostics
//
// Passes hold a *DiagCtxt and build a diagnostic through one of its
// constructors (NewError, NewWarning, NewFatal, ...), chain Span/Note/Help/
// Fix as needed, then call Emit. Emit's return type is the constructor's
// EmissionGuarantee: NewError's Emit returns ErrorGuaranteed, so a function
// that needs proof an error was reported before continuing can simply
// require one as a parameter.
//
// DiagCtxt owns error/warning counters, deduplication, and the Emitter that
// actually renders or stores each diagnostic. Bag additionally collects
// diagnostics (e.g. per source file) for sorting before being handed to a
// golden-file comparison or to a BagEmitter.
//
// # Consumers
//
//   - internal/diagfmt: renders Diagnostics into human/JSON output.
//   - internal/compiler: merges each parsed file's Bag into one
//     (Compiler.Diagnostics); cmd/solc decides the process exit code from
//     that Bag's HasErrors.
package diag
