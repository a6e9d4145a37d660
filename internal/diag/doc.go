// Package diag defines the diagnostic model used by the HIR verifier and the
// cache loader.
//
// Diagnostic is the central record: severity, a stable code, a short message,
// the primary span and optional notes. Producers emit through a Reporter so
// they do not depend on storage; BagReporter collects into a Bag, which sorts
// entries deterministically before output.
//
// Codes are grouped by range:
//
//   - HIR0001-HIR0999: structural invariants of a built crate
//   - IO4000-IO4999: reading and decoding cached crates
//
// Package diag does no IO of its own. FormatShort renders diagnostics into
// one stable line per entry for CLI output and tests.
package diag
