package lexer

import (
	"testing"

	"rill/internal/diag"
	"rill/internal/source"
	"rill/internal/token"
)

func tokenize(t *testing.T, src string) ([]token.Token, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rl", []byte(src))
	bag := diag.NewBag(16)
	toks := Tokenize(fs.Get(id), diag.BagReporter{Bag: bag})
	return toks, bag
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.Kind)
	}
	return out
}

func TestTokenizeAttribute(t *testing.T) {
	toks, bag := tokenize(t, "#[repr(C, u8)]\nfn main() {}")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}

	want := []token.Kind{
		token.Hash, token.LBracket, token.Ident, token.LParen, token.Ident,
		token.Comma, token.Ident, token.RParen, token.RBracket,
		token.KwFn, token.Ident, token.LParen, token.RParen,
		token.LBrace, token.RBrace, token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if toks[2].Text != "repr" || toks[4].Text != "C" || toks[6].Text != "u8" {
		t.Fatalf("unexpected identifier texts: %q %q %q", toks[2].Text, toks[4].Text, toks[6].Text)
	}
}

func TestTokenizeComments(t *testing.T) {
	toks, bag := tokenize(t, "// line\n/* block /* nested */ */ struct S;")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	want := []token.Kind{token.KwStruct, token.Ident, token.Semicolon, token.EOF}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestTokenizeSpans(t *testing.T) {
	toks, _ := tokenize(t, "enum E")
	if toks[0].Span.Start != 0 || toks[0].Span.End != 4 {
		t.Fatalf("enum span: got %v", toks[0].Span)
	}
	if toks[1].Span.Start != 5 || toks[1].Span.End != 6 {
		t.Fatalf("ident span: got %v", toks[1].Span)
	}
}

func TestUnterminatedString(t *testing.T) {
	_, bag := tokenize(t, `const S = "oops`)
	if bag.Len() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", bag.Len())
	}
	if bag.Items()[0].Code != diag.LexUnterminatedString {
		t.Fatalf("expected %v, got %v", diag.LexUnterminatedString, bag.Items()[0].Code)
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	_, bag := tokenize(t, "/* never closed")
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexUnterminatedBlockComment {
		t.Fatalf("expected unterminated block comment diagnostic, got %v", bag.Items())
	}
}

func TestUnknownChar(t *testing.T) {
	toks, bag := tokenize(t, "fn $")
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexUnknownChar {
		t.Fatalf("expected unknown char diagnostic, got %v", bag.Items())
	}
	if toks[1].Kind != token.Invalid {
		t.Fatalf("expected Invalid token for $, got %v", toks[1].Kind)
	}
}

func TestArrowVsMinus(t *testing.T) {
	toks, _ := tokenize(t, "-> -")
	if toks[0].Kind != token.Arrow {
		t.Fatalf("expected Arrow, got %v", toks[0].Kind)
	}
	if toks[1].Kind != token.Symbol {
		t.Fatalf("expected Symbol for bare minus, got %v", toks[1].Kind)
	}
}
