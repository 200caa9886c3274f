// Package diag defines the diagnostic model shared by the back-end passes.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture findings
//     produced by the emission-time validation passes.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Scope
//
// Package diag does not perform any formatting, IO, or CLI integration.
// Rendering lives in internal/diagfmt; orchestration lives in internal/driver.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing to the issue. A zero
//     span means the entity has no syntactic anchor; formatters must render
//     such diagnostics without a location rather than invent one.
//   - Notes – optional secondary spans/messages for additional context.
//
// # Emitting diagnostics
//
// Passes should use a diag.Reporter to decouple emission from storage.
// diag.BagReporter aggregates diagnostics into a Bag, which preserves the
// exact order and multiplicity of reports: the emission-name validator relies
// on both, so Bag never deduplicates.
package diag
