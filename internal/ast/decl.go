package ast

import "rill/internal/source"

// DeclKind discriminates declaration nodes.
type DeclKind uint8

const (
	DeclFn DeclKind = iota
	DeclStruct
	DeclUnion
	DeclEnum
	DeclMod
	DeclConst
	DeclTrait
	DeclImpl
)

var declKindNames = [...]string{
	DeclFn:     "fn",
	DeclStruct: "struct",
	DeclUnion:  "union",
	DeclEnum:   "enum",
	DeclMod:    "mod",
	DeclConst:  "const",
	DeclTrait:  "trait",
	DeclImpl:   "impl",
}

func (k DeclKind) String() string {
	if int(k) < len(declKindNames) {
		return declKindNames[k]
	}
	return "unknown"
}

// Decl is one declaration in the tree. Variants is populated for enums
// only; Decls holds the nested declarations of a mod body.
type Decl struct {
	Kind     DeclKind
	Name     source.StringID
	Span     source.Span
	Attrs    []Attr
	Variants []Variant
	Decls    []*Decl
}

// VariantKind discriminates enum variant payload shapes.
type VariantKind uint8

const (
	// VariantUnit is a bare variant without payload.
	VariantUnit VariantKind = iota
	// VariantTuple carries a parenthesized payload.
	VariantTuple
	// VariantStruct carries a braced field payload.
	VariantStruct
)

// Variant is one member of an enum declaration.
type Variant struct {
	Name source.StringID
	Kind VariantKind
	Span source.Span
}
