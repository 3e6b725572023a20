package sema

import (
	"rill/internal/ast"
	"rill/internal/diag"
	"rill/internal/source"
)

// Options configure the attribute validation pass over one file.
type Options struct {
	Reporter diag.Reporter
	Interner *source.Interner
}

// Check validates every attribute in the file: each attribute must be legal
// for the declaration kind it decorates, and the words of a single repr
// attribute must not contradict each other. The tree is read-only; findings
// go to opts.Reporter in source order. The pass never fails and never stops
// early.
func Check(file *ast.File, opts Options) {
	if file == nil || opts.Interner == nil {
		return
	}
	c := &attrChecker{
		reporter: opts.Reporter,
		interner: opts.Interner,
	}
	ast.Inspect(file, func(d *ast.Decl) {
		target := TargetOf(d)
		cLikeEnum := IsCLikeEnum(d)
		for i := range d.Attrs {
			c.checkAttribute(&d.Attrs[i], d, target, cLikeEnum)
		}
	})
}

type attrChecker struct {
	reporter diag.Reporter
	interner *source.Interner
}

// checkAttribute dispatches on the attribute name. Unknown names are
// ignored.
func (c *attrChecker) checkAttribute(attr *ast.Attr, decl *ast.Decl, target Target, cLikeEnum bool) {
	name, ok := c.interner.Lookup(attr.Name)
	if !ok || name == "" {
		return
	}
	switch lookupAttrRule(name) {
	case attrRuleInline:
		c.checkInline(attr, decl, target)
	case attrRuleRepr:
		c.checkRepr(attr, decl, target, cLikeEnum)
	}
}

// checkInline verifies that #[inline] decorates a function.
func (c *attrChecker) checkInline(attr *ast.Attr, decl *ast.Decl, target Target) {
	if target == TargetFn {
		return
	}
	diag.ReportError(c.reporter, diag.SemaAttrWrongTarget, attr.Span,
		"attribute should be applied to function").
		WithNote(decl.Span, "not a function").
		Emit()
}

// checkRepr verifies each word of a #[repr(...)] attribute against the
// declaration kind and warns when the words of this occurrence contradict
// each other. The tally is local to one attribute occurrence.
func (c *attrChecker) checkRepr(attr *ast.Attr, decl *ast.Decl, target Target, cLikeEnum bool) {
	intReprs := 0
	isC := false
	isSimd := false

	for i := range attr.Args {
		name, ok := c.interner.Lookup(attr.Args[i].Name)
		if !ok || name == "" {
			continue
		}
		spec, known := reprWords[name]
		if !known {
			continue
		}

		// The tally counts hints whether or not they are legal here.
		switch spec.class {
		case reprClassC:
			isC = true
		case reprClassSimd:
			isSimd = true
		case reprClassInt:
			intReprs++
		}

		if spec.targets&target.mask() != 0 {
			continue
		}
		diag.ReportError(c.reporter, diag.SemaAttrWrongTarget, attr.Span, spec.message).
			WithNote(decl.Span, "not "+spec.label).
			Emit()
	}

	// The intReprs == 1 arm is deliberate: with two or more integer hints
	// the first arm already fires, and the arms are not exclusive.
	if intReprs > 1 ||
		(isSimd && isC) ||
		(intReprs == 1 && isC && cLikeEnum) {
		diag.ReportWarning(c.reporter, diag.SemaReprConflict, attr.Span,
			"conflicting representation hints").Emit()
	}
}
