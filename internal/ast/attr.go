package ast

import "rill/internal/source"

// Attr describes an attribute of the form `#[name(args...)]`.
type Attr struct {
	Name source.StringID
	Args []AttrArg
	Span source.Span
}

// AttrArg is a single attribute argument word, optionally `name = value`.
// Only the name participates in validation; values are preserved for
// later phases.
type AttrArg struct {
	Name     source.StringID
	HasValue bool
	Span     source.Span
}
