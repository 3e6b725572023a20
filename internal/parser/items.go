package parser

import (
	"rill/internal/ast"
	"rill/internal/diag"
	"rill/internal/source"
	"rill/internal/token"
)

// parseAttrs consumes a run of `#[name(args...)]` attributes.
func (p *parser) parseAttrs() []ast.Attr {
	var attrs []ast.Attr
	for p.at(token.Hash) && p.peek(1).Kind == token.LBracket {
		hash := p.advance() // '#'
		p.advance()         // '['
		span := hash.Span

		attr := ast.Attr{}
		if p.at(token.Ident) {
			tok := p.advance()
			attr.Name = p.interner.Intern(tok.Text)
			span = span.Cover(tok.Span)
		} else {
			p.errorAt(diag.SynExpectAttrName, p.cur().Span,
				"expected attribute name, found %s", p.cur().Kind)
		}

		if p.at(token.LParen) {
			attr.Args = p.parseAttrArgs()
		}

		if p.at(token.RBracket) {
			span = span.Cover(p.advance().Span)
		} else {
			p.errorAt(diag.SynUnterminatedAttr, hash.Span, "attribute is missing ']'")
			// Resynchronize on the stray ']' if one follows on this attr.
			for !p.at(token.EOF) && !p.at(token.RBracket) && !p.cur().Kind.IsItemKeyword() && !p.at(token.Hash) {
				p.advance()
			}
			if p.at(token.RBracket) {
				span = span.Cover(p.advance().Span)
			}
		}

		attr.Span = span
		attrs = append(attrs, attr)
	}
	return attrs
}

// parseAttrArgs consumes `( word ("," word)* ","? )` where each word is an
// identifier optionally followed by `= value`.
func (p *parser) parseAttrArgs() []ast.AttrArg {
	open := p.advance() // '('
	var args []ast.AttrArg
	for !p.at(token.RParen) && !p.at(token.EOF) {
		if !p.at(token.Ident) {
			p.errorAt(diag.SynUnexpectedToken, p.cur().Span,
				"expected attribute argument, found %s", p.cur().Kind)
			// Skip to the next comma or the closing paren.
			for !p.at(token.EOF) && !p.at(token.Comma) && !p.at(token.RParen) {
				p.advance()
			}
		} else {
			tok := p.advance()
			arg := ast.AttrArg{
				Name: p.interner.Intern(tok.Text),
				Span: tok.Span,
			}
			if p.at(token.Assign) {
				p.advance()
				switch p.cur().Kind {
				case token.Ident, token.IntLit, token.StringLit:
					arg.HasValue = true
					arg.Span = arg.Span.Cover(p.advance().Span)
				default:
					p.errorAt(diag.SynUnexpectedToken, p.cur().Span,
						"expected attribute value, found %s", p.cur().Kind)
				}
			}
			args = append(args, arg)
		}
		if p.at(token.Comma) {
			p.advance()
		} else {
			break
		}
	}
	if p.at(token.RParen) {
		p.advance()
	} else {
		p.errorAt(diag.SynUnclosedDelimiter, open.Span, "unclosed (")
	}
	return args
}

func (p *parser) parseFn() *ast.Decl {
	kw := p.advance()
	decl := &ast.Decl{Kind: ast.DeclFn, Span: kw.Span}
	name, nameSpan, ok := p.expectIdent()
	if !ok {
		p.syncDecl()
		return decl
	}
	decl.Name = name
	decl.Span = decl.Span.Cover(nameSpan)

	if p.at(token.LParen) {
		decl.Span = decl.Span.Cover(p.skipBalanced(token.LParen, token.RParen))
	} else {
		p.errorAt(diag.SynUnexpectedToken, p.cur().Span,
			"expected parameter list, found %s", p.cur().Kind)
	}

	// Return type tokens run up to the body or terminating semicolon.
	for !p.at(token.LBrace) && !p.at(token.Semicolon) && !p.at(token.EOF) {
		if p.cur().Kind.IsItemKeyword() || p.at(token.Hash) || p.at(token.RBrace) {
			p.errorAt(diag.SynUnexpectedToken, p.cur().Span,
				"expected function body or ';', found %s", p.cur().Kind)
			return decl
		}
		decl.Span = decl.Span.Cover(p.advance().Span)
	}

	switch p.cur().Kind {
	case token.LBrace:
		decl.Span = decl.Span.Cover(p.skipBalanced(token.LBrace, token.RBrace))
	case token.Semicolon:
		decl.Span = decl.Span.Cover(p.advance().Span)
	default:
		p.errorAt(diag.SynUnexpectedToken, p.cur().Span, "expected function body or ';'")
	}
	return decl
}

func (p *parser) parseStruct() *ast.Decl {
	kw := p.advance()
	decl := &ast.Decl{Kind: ast.DeclStruct, Span: kw.Span}
	name, nameSpan, ok := p.expectIdent()
	if !ok {
		p.syncDecl()
		return decl
	}
	decl.Name = name
	decl.Span = decl.Span.Cover(nameSpan)

	switch p.cur().Kind {
	case token.LBrace:
		decl.Span = decl.Span.Cover(p.skipBalanced(token.LBrace, token.RBrace))
	case token.LParen:
		decl.Span = decl.Span.Cover(p.skipBalanced(token.LParen, token.RParen))
		if p.at(token.Semicolon) {
			decl.Span = decl.Span.Cover(p.advance().Span)
		} else {
			p.errorAt(diag.SynUnexpectedToken, p.cur().Span, "expected ';' after tuple struct")
		}
	case token.Semicolon:
		decl.Span = decl.Span.Cover(p.advance().Span)
	default:
		p.errorAt(diag.SynUnexpectedToken, p.cur().Span,
			"expected struct body, found %s", p.cur().Kind)
		p.syncDecl()
	}
	return decl
}

func (p *parser) parseUnion() *ast.Decl {
	kw := p.advance()
	decl := &ast.Decl{Kind: ast.DeclUnion, Span: kw.Span}
	name, nameSpan, ok := p.expectIdent()
	if !ok {
		p.syncDecl()
		return decl
	}
	decl.Name = name
	decl.Span = decl.Span.Cover(nameSpan)

	if p.at(token.LBrace) {
		decl.Span = decl.Span.Cover(p.skipBalanced(token.LBrace, token.RBrace))
	} else {
		p.errorAt(diag.SynUnexpectedToken, p.cur().Span,
			"expected union body, found %s", p.cur().Kind)
		p.syncDecl()
	}
	return decl
}

func (p *parser) parseEnum() *ast.Decl {
	kw := p.advance()
	decl := &ast.Decl{Kind: ast.DeclEnum, Span: kw.Span}
	name, nameSpan, ok := p.expectIdent()
	if !ok {
		p.syncDecl()
		return decl
	}
	decl.Name = name
	decl.Span = decl.Span.Cover(nameSpan)

	if !p.at(token.LBrace) {
		p.errorAt(diag.SynEnumExpectBody, p.cur().Span,
			"expected enum body, found %s", p.cur().Kind)
		p.syncDecl()
		return decl
	}
	p.advance() // '{'

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		// Variant attributes are allowed syntactically but carry no
		// meaning in this phase.
		p.parseAttrs()

		if !p.at(token.Ident) {
			p.errorAt(diag.SynExpectVariant, p.cur().Span,
				"expected enum variant, found %s", p.cur().Kind)
			for !p.at(token.EOF) && !p.at(token.Comma) && !p.at(token.RBrace) {
				p.advance()
			}
		} else {
			tok := p.advance()
			variant := ast.Variant{
				Name: p.interner.Intern(tok.Text),
				Kind: ast.VariantUnit,
				Span: tok.Span,
			}
			switch p.cur().Kind {
			case token.LParen:
				variant.Kind = ast.VariantTuple
				variant.Span = variant.Span.Cover(p.skipBalanced(token.LParen, token.RParen))
			case token.LBrace:
				variant.Kind = ast.VariantStruct
				variant.Span = variant.Span.Cover(p.skipBalanced(token.LBrace, token.RBrace))
			}
			decl.Variants = append(decl.Variants, variant)
		}

		if p.at(token.Comma) {
			p.advance()
		} else {
			break
		}
	}

	if p.at(token.RBrace) {
		decl.Span = decl.Span.Cover(p.advance().Span)
	} else {
		p.errorAt(diag.SynUnclosedDelimiter, kw.Span, "unclosed {")
	}
	return decl
}

func (p *parser) parseMod() *ast.Decl {
	kw := p.advance()
	decl := &ast.Decl{Kind: ast.DeclMod, Span: kw.Span}
	name, nameSpan, ok := p.expectIdent()
	if !ok {
		p.syncDecl()
		return decl
	}
	decl.Name = name
	decl.Span = decl.Span.Cover(nameSpan)

	if !p.at(token.LBrace) {
		p.errorAt(diag.SynUnexpectedToken, p.cur().Span,
			"expected module body, found %s", p.cur().Kind)
		p.syncDecl()
		return decl
	}
	p.advance() // '{'

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		if nested := p.parseDecl(); nested != nil {
			decl.Decls = append(decl.Decls, nested)
		}
		if p.at(token.RBrace) {
			break
		}
	}

	if p.at(token.RBrace) {
		decl.Span = decl.Span.Cover(p.advance().Span)
	} else {
		p.errorAt(diag.SynUnclosedDelimiter, kw.Span, "unclosed {")
	}
	return decl
}

func (p *parser) parseConst() *ast.Decl {
	kw := p.advance() // 'const' or 'static'
	decl := &ast.Decl{Kind: ast.DeclConst, Span: kw.Span}
	name, nameSpan, ok := p.expectIdent()
	if !ok {
		p.syncDecl()
		return decl
	}
	decl.Name = name
	decl.Span = decl.Span.Cover(nameSpan)

	for !p.at(token.Semicolon) && !p.at(token.EOF) {
		if p.cur().Kind.IsItemKeyword() || p.at(token.Hash) || p.at(token.RBrace) {
			p.errorAt(diag.SynUnexpectedToken, p.cur().Span, "expected ';' after constant")
			return decl
		}
		decl.Span = decl.Span.Cover(p.advance().Span)
	}
	if p.at(token.Semicolon) {
		decl.Span = decl.Span.Cover(p.advance().Span)
	} else {
		p.errorAt(diag.SynUnexpectedToken, p.cur().Span, "expected ';' after constant")
	}
	return decl
}

func (p *parser) parseTrait() *ast.Decl {
	kw := p.advance()
	decl := &ast.Decl{Kind: ast.DeclTrait, Span: kw.Span}
	name, nameSpan, ok := p.expectIdent()
	if !ok {
		p.syncDecl()
		return decl
	}
	decl.Name = name
	decl.Span = decl.Span.Cover(nameSpan)

	if p.at(token.LBrace) {
		decl.Span = decl.Span.Cover(p.skipBalanced(token.LBrace, token.RBrace))
	} else {
		p.errorAt(diag.SynUnexpectedToken, p.cur().Span,
			"expected trait body, found %s", p.cur().Kind)
		p.syncDecl()
	}
	return decl
}

func (p *parser) parseImpl() *ast.Decl {
	kw := p.advance()
	decl := &ast.Decl{Kind: ast.DeclImpl, Span: kw.Span}

	// The implementing type header is opaque to this phase; remember the
	// first identifier as the display name.
	for !p.at(token.LBrace) && !p.at(token.EOF) {
		tok := p.cur()
		if tok.Kind.IsItemKeyword() || tok.Kind == token.Hash || tok.Kind == token.RBrace {
			p.errorAt(diag.SynUnexpectedToken, tok.Span,
				"expected impl body, found %s", tok.Kind)
			return decl
		}
		if tok.Kind == token.Ident && decl.Name == source.NoStringID {
			decl.Name = p.interner.Intern(tok.Text)
		}
		decl.Span = decl.Span.Cover(p.advance().Span)
	}

	if p.at(token.LBrace) {
		decl.Span = decl.Span.Cover(p.skipBalanced(token.LBrace, token.RBrace))
	} else {
		p.errorAt(diag.SynUnexpectedToken, kw.Span, "expected impl body")
	}
	return decl
}
