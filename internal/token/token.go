package token

import (
	"rill/internal/source"
)

// Token represents a single source token with its location.
// Text is populated for identifiers and literals only.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwFn, KwStruct, KwUnion, KwEnum, KwMod, KwConst, KwStatic, KwTrait, KwImpl, KwPub:
		return true
	default:
		return false
	}
}
