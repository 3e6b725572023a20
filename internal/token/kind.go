package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// IntLit represents an integer literal.
	IntLit
	// StringLit represents a string literal.
	StringLit

	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwUnion represents the 'union' keyword.
	KwUnion // union
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwMod represents the 'mod' keyword.
	KwMod // mod
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwStatic represents the 'static' keyword.
	KwStatic // static
	// KwTrait represents the 'trait' keyword.
	KwTrait // trait
	// KwImpl represents the 'impl' keyword.
	KwImpl // impl
	// KwPub represents the 'pub' keyword.
	KwPub // pub

	// Hash represents '#'.
	Hash // #
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// Comma represents ','.
	Comma // ,
	// Semicolon represents ';'.
	Semicolon // ;
	// Colon represents ':'.
	Colon // :
	// Assign represents '='.
	Assign // =
	// Arrow represents '->'.
	Arrow // ->
	// Symbol covers punctuation the declaration grammar does not interpret
	// (operators inside skipped bodies and signatures).
	Symbol
)

var kindNames = [...]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Ident:     "Ident",
	IntLit:    "IntLit",
	StringLit: "StringLit",
	KwFn:      "fn",
	KwStruct:  "struct",
	KwUnion:   "union",
	KwEnum:    "enum",
	KwMod:     "mod",
	KwConst:   "const",
	KwStatic:  "static",
	KwTrait:   "trait",
	KwImpl:    "impl",
	KwPub:     "pub",
	Hash:      "#",
	LBracket:  "[",
	RBracket:  "]",
	LParen:    "(",
	RParen:    ")",
	LBrace:    "{",
	RBrace:    "}",
	Comma:     ",",
	Semicolon: ";",
	Colon:     ":",
	Assign:    "=",
	Arrow:     "->",
	Symbol:    "Symbol",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}

// IsItemKeyword reports whether the token can start a declaration.
func (k Kind) IsItemKeyword() bool {
	switch k {
	case KwFn, KwStruct, KwUnion, KwEnum, KwMod, KwConst, KwStatic, KwTrait, KwImpl:
		return true
	default:
		return false
	}
}
