// Package emit computes and validates the names that will be written into
// the compiled module.
//
// It has three concerns, run strictly after binding on an immutable symbol
// tree:
//
//   - Name synthesis (names.go): deterministic, collision-free names for
//     compiler-generated symbols that have no user-written name — accessor
//     methods, auto-property backing fields, lambda methods, iterator/async
//     state machines, anonymous-type fields, fixed-buffer backing storage.
//   - Qualified-name composition (qualname.go): the exact string the metadata
//     format stores for a symbol — namespace prefix, explicit-interface
//     prefix, generic-arity suffix.
//   - Length validation (validate.go, limits.go, report.go): a single
//     pre-emission traversal that checks every emittable name, local, and
//     resource against the hard limits of the metadata and debug formats and
//     turns violations into diagnostics.
//
// The package never performs emission itself: it only decides pass/fail and
// produces the strings a writer would emit. Error-class violations
// (metadata name/path) block emission; the debug-local warning merely drops
// the local's name from debug data.
//
// Validation collects the complete violation list before anything is
// reported and never deduplicates: a synthesized entity reached from two
// traversal roots (definition and reference site) legitimately reports
// twice with identical arguments.
package emit
