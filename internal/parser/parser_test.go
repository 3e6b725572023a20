package parser

import (
	"testing"

	"rill/internal/ast"
	"rill/internal/diag"
	"rill/internal/source"
)

type parseResult struct {
	file     *ast.File
	bag      *diag.Bag
	interner *source.Interner
	fs       *source.FileSet
}

func parse(t *testing.T, src string) parseResult {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rl", []byte(src))
	bag := diag.NewBag(32)
	interner := source.NewInterner()
	file := ParseFile(fs.Get(id), Options{
		Reporter: diag.BagReporter{Bag: bag},
		Interner: interner,
	})
	return parseResult{file: file, bag: bag, interner: interner, fs: fs}
}

func (r parseResult) name(id source.StringID) string {
	s, _ := r.interner.Lookup(id)
	return s
}

func TestParseDeclKinds(t *testing.T) {
	res := parse(t, `
fn run(x: i32) -> i32 { x }
struct Point { x: i32, y: i32 }
union Raw { bits: u64 }
enum Mode { A, B }
mod sub { fn inner() {} }
const LIMIT: i32 = 10;
trait Render { fn draw(); }
impl Render for Point { fn draw() {} }
`)
	if res.bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", res.bag.Items())
	}
	wantKinds := []ast.DeclKind{
		ast.DeclFn, ast.DeclStruct, ast.DeclUnion, ast.DeclEnum,
		ast.DeclMod, ast.DeclConst, ast.DeclTrait, ast.DeclImpl,
	}
	if len(res.file.Decls) != len(wantKinds) {
		t.Fatalf("expected %d declarations, got %d", len(wantKinds), len(res.file.Decls))
	}
	for i, want := range wantKinds {
		if res.file.Decls[i].Kind != want {
			t.Fatalf("decl %d: expected %v, got %v", i, want, res.file.Decls[i].Kind)
		}
	}

	mod := res.file.Decls[4]
	if len(mod.Decls) != 1 || mod.Decls[0].Kind != ast.DeclFn {
		t.Fatalf("expected one nested fn in mod, got %+v", mod.Decls)
	}
	if res.name(mod.Decls[0].Name) != "inner" {
		t.Fatalf("nested fn name: got %q", res.name(mod.Decls[0].Name))
	}
}

func TestParseAttrs(t *testing.T) {
	res := parse(t, `
#[inline]
#[repr(C, align = 8)]
fn hot() {}
`)
	if res.bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", res.bag.Items())
	}
	decl := res.file.Decls[0]
	if len(decl.Attrs) != 2 {
		t.Fatalf("expected 2 attributes, got %d", len(decl.Attrs))
	}
	if res.name(decl.Attrs[0].Name) != "inline" || len(decl.Attrs[0].Args) != 0 {
		t.Fatalf("unexpected first attribute: %+v", decl.Attrs[0])
	}
	repr := decl.Attrs[1]
	if res.name(repr.Name) != "repr" || len(repr.Args) != 2 {
		t.Fatalf("unexpected repr attribute: %+v", repr)
	}
	if res.name(repr.Args[0].Name) != "C" || repr.Args[0].HasValue {
		t.Fatalf("unexpected first repr word: %+v", repr.Args[0])
	}
	if res.name(repr.Args[1].Name) != "align" || !repr.Args[1].HasValue {
		t.Fatalf("unexpected second repr word: %+v", repr.Args[1])
	}
}

func TestParseEnumVariants(t *testing.T) {
	res := parse(t, `enum Shape { Dot, Line(f64, f64), Poly { sides: u8 } }`)
	if res.bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", res.bag.Items())
	}
	decl := res.file.Decls[0]
	if len(decl.Variants) != 3 {
		t.Fatalf("expected 3 variants, got %d", len(decl.Variants))
	}
	wantKinds := []ast.VariantKind{ast.VariantUnit, ast.VariantTuple, ast.VariantStruct}
	for i, want := range wantKinds {
		if decl.Variants[i].Kind != want {
			t.Fatalf("variant %d: expected %v, got %v", i, want, decl.Variants[i].Kind)
		}
	}
	if res.name(decl.Variants[1].Name) != "Line" {
		t.Fatalf("variant 1 name: got %q", res.name(decl.Variants[1].Name))
	}
}

func TestParseRecoversAfterBadDecl(t *testing.T) {
	res := parse(t, `
banana banana;
struct Ok;
`)
	if !res.bag.HasErrors() {
		t.Fatalf("expected syntax errors")
	}
	if len(res.file.Decls) != 1 || res.file.Decls[0].Kind != ast.DeclStruct {
		t.Fatalf("expected recovery to reach the struct, got %+v", res.file.Decls)
	}
}

func TestParseDanglingPub(t *testing.T) {
	res := parse(t, `pub ;`)
	found := false
	for _, d := range res.bag.Items() {
		if d.Code == diag.SynVisibilityDangling {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected dangling pub diagnostic, got %v", res.bag.Items())
	}
}

func TestParseUnclosedBody(t *testing.T) {
	res := parse(t, `fn broken() {`)
	found := false
	for _, d := range res.bag.Items() {
		if d.Code == diag.SynUnclosedDelimiter {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected unclosed delimiter diagnostic, got %v", res.bag.Items())
	}
}

func TestParseStrayCloseBrace(t *testing.T) {
	res := parse(t, `}
fn after() {}`)
	if !res.bag.HasErrors() {
		t.Fatalf("expected error for stray brace")
	}
	if len(res.file.Decls) != 1 || res.file.Decls[0].Kind != ast.DeclFn {
		t.Fatalf("expected parser to recover past stray brace, got %+v", res.file.Decls)
	}
}
