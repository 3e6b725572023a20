// Package diag defines the diagnostic model shared by all front-end phases.
//
// Diagnostic is the central record: severity, a stable numeric code, a
// message, the primary source span, and optional secondary notes. Phases
// never render diagnostics themselves; they emit through a Reporter and
// formatting lives in internal/diagfmt.
//
// Bag accumulates diagnostics with a cap and supports deterministic sorting
// and deduplication. BagReporter adapts a Bag to the Reporter interface;
// DedupReporter filters repeated reports before forwarding.
//
// Keep the model deterministic and data-only: the same input must always
// produce the same diagnostics in the same order.
package diag
