package sema

import "rill/internal/ast"

// Target classifies a declaration for attribute applicability checks.
type Target uint8

const (
	TargetFn Target = iota
	TargetStruct
	TargetUnion
	TargetEnum
	TargetOther
)

func (t Target) String() string {
	switch t {
	case TargetFn:
		return "function"
	case TargetStruct:
		return "struct"
	case TargetUnion:
		return "union"
	case TargetEnum:
		return "enum"
	}
	return "other"
}

// targetMask is a set of targets, used by the repr word table.
type targetMask uint8

func (t Target) mask() targetMask {
	return 1 << t
}

const (
	maskFn     = targetMask(1) << TargetFn
	maskStruct = targetMask(1) << TargetStruct
	maskUnion  = targetMask(1) << TargetUnion
	maskEnum   = targetMask(1) << TargetEnum
)

// TargetOf classifies a declaration. Modules, constants, traits and impls
// are TargetOther: no attribute checked by this pass applies to them.
func TargetOf(d *ast.Decl) Target {
	switch d.Kind {
	case ast.DeclFn:
		return TargetFn
	case ast.DeclStruct:
		return TargetStruct
	case ast.DeclUnion:
		return TargetUnion
	case ast.DeclEnum:
		return TargetEnum
	default:
		return TargetOther
	}
}

// IsCLikeEnum reports whether d is an enum all of whose variants are unit
// variants. False for non-enum declarations. Pure; usable outside the
// attribute pass.
func IsCLikeEnum(d *ast.Decl) bool {
	if d == nil || d.Kind != ast.DeclEnum {
		return false
	}
	for _, v := range d.Variants {
		if v.Kind != ast.VariantUnit {
			return false
		}
	}
	return true
}
