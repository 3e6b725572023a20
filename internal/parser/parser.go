package parser

import (
	"fmt"

	"rill/internal/ast"
	"rill/internal/diag"
	"rill/internal/lexer"
	"rill/internal/source"
	"rill/internal/token"
)

// Options configure a parse of one file.
type Options struct {
	Reporter diag.Reporter
	Interner *source.Interner
}

// ParseFile scans and parses one source file into a declaration tree.
// Syntax errors are reported through opts.Reporter; the parser recovers at
// the next declaration and always returns a (possibly partial) file.
func ParseFile(file *source.File, opts Options) *ast.File {
	interner := opts.Interner
	if interner == nil {
		interner = source.NewInterner()
	}
	p := &parser{
		toks:     lexer.Tokenize(file, opts.Reporter),
		reporter: opts.Reporter,
		interner: interner,
		fileID:   file.ID,
	}
	return p.parseFile()
}

type parser struct {
	toks     []token.Token
	pos      int
	reporter diag.Reporter
	interner *source.Interner
	fileID   source.FileID
}

func (p *parser) cur() token.Token {
	return p.toks[p.pos]
}

func (p *parser) peek(delta int) token.Token {
	idx := p.pos + delta
	if idx >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}
	return p.toks[idx]
}

func (p *parser) at(kind token.Kind) bool {
	return p.cur().Kind == kind
}

func (p *parser) advance() token.Token {
	tok := p.cur()
	if tok.Kind != token.EOF {
		p.pos++
	}
	return tok
}

func (p *parser) errorAt(code diag.Code, span source.Span, format string, args ...any) {
	diag.ReportError(p.reporter, code, span, fmt.Sprintf(format, args...)).Emit()
}

func (p *parser) parseFile() *ast.File {
	file := &ast.File{FileID: p.fileID}
	for !p.at(token.EOF) {
		if decl := p.parseDecl(); decl != nil {
			file.Decls = append(file.Decls, decl)
		}
	}
	return file
}

// parseDecl parses one declaration, or reports and recovers when the input
// does not start one. Returns nil on recovery.
func (p *parser) parseDecl() *ast.Decl {
	attrs := p.parseAttrs()

	start := p.cur().Span
	if p.at(token.KwPub) {
		p.advance()
		if !p.cur().Kind.IsItemKeyword() {
			p.errorAt(diag.SynVisibilityDangling, start, "'pub' must be followed by a declaration")
			p.syncDecl()
			return nil
		}
	}

	var decl *ast.Decl
	switch p.cur().Kind {
	case token.KwFn:
		decl = p.parseFn()
	case token.KwStruct:
		decl = p.parseStruct()
	case token.KwUnion:
		decl = p.parseUnion()
	case token.KwEnum:
		decl = p.parseEnum()
	case token.KwMod:
		decl = p.parseMod()
	case token.KwConst, token.KwStatic:
		decl = p.parseConst()
	case token.KwTrait:
		decl = p.parseTrait()
	case token.KwImpl:
		decl = p.parseImpl()
	default:
		p.errorAt(diag.SynExpectItem, p.cur().Span,
			"expected declaration, found %s", p.cur().Kind)
		if p.at(token.RBrace) {
			// A stray '}' would stall recovery; the enclosing parse loop
			// has no declaration to close here, so consume it.
			p.advance()
		}
		p.syncDecl()
		return nil
	}
	if decl == nil {
		return nil
	}
	decl.Attrs = attrs
	decl.Span = start.Cover(decl.Span)
	return decl
}

// syncDecl skips tokens until something that can start a declaration.
func (p *parser) syncDecl() {
	for !p.at(token.EOF) {
		tok := p.cur()
		if tok.Kind.IsItemKeyword() || tok.Kind == token.KwPub || tok.Kind == token.RBrace {
			return
		}
		if tok.Kind == token.Hash && p.peek(1).Kind == token.LBracket {
			return
		}
		p.advance()
	}
}

func (p *parser) expectIdent() (source.StringID, source.Span, bool) {
	if !p.at(token.Ident) {
		p.errorAt(diag.SynExpectIdentifier, p.cur().Span,
			"expected identifier, found %s", p.cur().Kind)
		return source.NoStringID, p.cur().Span, false
	}
	tok := p.advance()
	return p.interner.Intern(tok.Text), tok.Span, true
}

// skipBalanced consumes a bracketed token run, counting only the requested
// delimiter pair. The current token must be open.
func (p *parser) skipBalanced(open, close token.Kind) source.Span {
	openTok := p.advance()
	span := openTok.Span
	depth := 1
	for depth > 0 {
		tok := p.cur()
		if tok.Kind == token.EOF {
			p.errorAt(diag.SynUnclosedDelimiter, openTok.Span, "unclosed %s", open)
			return span
		}
		switch tok.Kind {
		case open:
			depth++
		case close:
			depth--
		}
		span = span.Cover(tok.Span)
		p.advance()
	}
	return span
}
