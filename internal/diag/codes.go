package diag

import (
	"fmt"
)

// Code identifies a diagnostic kind. Codes are stable across releases:
// 1xxx lexical, 2xxx syntactic, 3xxx semantic.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003

	// Syntactic
	SynUnexpectedToken     Code = 2001
	SynExpectIdentifier    Code = 2002
	SynUnclosedDelimiter   Code = 2003
	SynExpectAttrName      Code = 2004
	SynUnterminatedAttr    Code = 2005
	SynEnumExpectBody      Code = 2006
	SynExpectItem          Code = 2007
	SynUnexpectedTopLevel  Code = 2008
	SynVisibilityDangling  Code = 2009
	SynExpectVariant       Code = 2010

	// Semantic
	SemaAttrWrongTarget Code = 3001
	SemaReprConflict    Code = 3002
)

func (c Code) String() string {
	return fmt.Sprintf("RL%04d", uint16(c))
}
