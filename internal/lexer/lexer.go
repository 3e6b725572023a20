package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"rill/internal/diag"
	"rill/internal/source"
	"rill/internal/token"
)

// Lexer scans one source file into tokens. Lexical problems are emitted
// through the reporter; scanning always continues to EOF.
type Lexer struct {
	file     *source.File
	reporter diag.Reporter
	off      uint32
	end      uint32
}

// New creates a lexer over file. reporter may be nil when the caller does
// not care about lexical diagnostics.
func New(file *source.File, reporter diag.Reporter) *Lexer {
	end, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		panic(fmt.Errorf("file length overflow: %w", err))
	}
	return &Lexer{
		file:     file,
		reporter: reporter,
		end:      end,
	}
}

// Tokenize scans the whole file and returns its tokens, EOF included.
func Tokenize(file *source.File, reporter diag.Reporter) []token.Token {
	lx := New(file, reporter)
	toks := make([]token.Token, 0, 128)
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func (lx *Lexer) span(start uint32) source.Span {
	return source.Span{File: lx.file.ID, Start: start, End: lx.off}
}

func (lx *Lexer) peek() byte {
	if lx.off >= lx.end {
		return 0
	}
	return lx.file.Content[lx.off]
}

func (lx *Lexer) peekAt(delta uint32) byte {
	if lx.off+delta >= lx.end {
		return 0
	}
	return lx.file.Content[lx.off+delta]
}

// Next returns the next token, skipping whitespace and comments.
func (lx *Lexer) Next() token.Token {
	lx.skipTrivia()

	start := lx.off
	if lx.off >= lx.end {
		return token.Token{Kind: token.EOF, Span: lx.span(start)}
	}

	c := lx.peek()
	switch {
	case isIdentStart(c):
		return lx.scanIdent(start)
	case isDigit(c):
		return lx.scanNumber(start)
	case c == '"':
		return lx.scanString(start)
	}

	lx.off++
	switch c {
	case '#':
		return token.Token{Kind: token.Hash, Span: lx.span(start)}
	case '[':
		return token.Token{Kind: token.LBracket, Span: lx.span(start)}
	case ']':
		return token.Token{Kind: token.RBracket, Span: lx.span(start)}
	case '(':
		return token.Token{Kind: token.LParen, Span: lx.span(start)}
	case ')':
		return token.Token{Kind: token.RParen, Span: lx.span(start)}
	case '{':
		return token.Token{Kind: token.LBrace, Span: lx.span(start)}
	case '}':
		return token.Token{Kind: token.RBrace, Span: lx.span(start)}
	case ',':
		return token.Token{Kind: token.Comma, Span: lx.span(start)}
	case ';':
		return token.Token{Kind: token.Semicolon, Span: lx.span(start)}
	case ':':
		return token.Token{Kind: token.Colon, Span: lx.span(start)}
	case '=':
		return token.Token{Kind: token.Assign, Span: lx.span(start)}
	case '-':
		if lx.peek() == '>' {
			lx.off++
			return token.Token{Kind: token.Arrow, Span: lx.span(start)}
		}
		return token.Token{Kind: token.Symbol, Span: lx.span(start)}
	case '+', '*', '/', '%', '<', '>', '&', '|', '^', '!', '?', '.', '@', '\'':
		return token.Token{Kind: token.Symbol, Span: lx.span(start)}
	}

	diag.ReportError(lx.reporter, diag.LexUnknownChar, lx.span(start),
		fmt.Sprintf("unknown character %q", c)).Emit()
	return token.Token{Kind: token.Invalid, Span: lx.span(start)}
}

func (lx *Lexer) skipTrivia() {
	for lx.off < lx.end {
		c := lx.peek()
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			lx.off++
		case c == '/' && lx.peekAt(1) == '/':
			for lx.off < lx.end && lx.peek() != '\n' {
				lx.off++
			}
		case c == '/' && lx.peekAt(1) == '*':
			lx.skipBlockComment()
		default:
			return
		}
	}
}

func (lx *Lexer) skipBlockComment() {
	start := lx.off
	lx.off += 2
	depth := 1
	for lx.off < lx.end {
		if lx.peek() == '/' && lx.peekAt(1) == '*' {
			depth++
			lx.off += 2
			continue
		}
		if lx.peek() == '*' && lx.peekAt(1) == '/' {
			depth--
			lx.off += 2
			if depth == 0 {
				return
			}
			continue
		}
		lx.off++
	}
	diag.ReportError(lx.reporter, diag.LexUnterminatedBlockComment,
		source.Span{File: lx.file.ID, Start: start, End: lx.off},
		"unterminated block comment").Emit()
}

func (lx *Lexer) scanIdent(start uint32) token.Token {
	for lx.off < lx.end && isIdentPart(lx.peek()) {
		lx.off++
	}
	text := string(lx.file.Content[start:lx.off])
	if kind, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: kind, Span: lx.span(start), Text: text}
	}
	return token.Token{Kind: token.Ident, Span: lx.span(start), Text: text}
}

func (lx *Lexer) scanNumber(start uint32) token.Token {
	for lx.off < lx.end && (isDigit(lx.peek()) || lx.peek() == '_') {
		lx.off++
	}
	return token.Token{
		Kind: token.IntLit,
		Span: lx.span(start),
		Text: string(lx.file.Content[start:lx.off]),
	}
}

func (lx *Lexer) scanString(start uint32) token.Token {
	lx.off++ // opening quote
	for lx.off < lx.end {
		c := lx.peek()
		if c == '\\' && lx.off+1 < lx.end {
			lx.off += 2
			continue
		}
		if c == '"' {
			lx.off++
			return token.Token{
				Kind: token.StringLit,
				Span: lx.span(start),
				Text: string(lx.file.Content[start:lx.off]),
			}
		}
		if c == '\n' {
			break
		}
		lx.off++
	}
	diag.ReportError(lx.reporter, diag.LexUnterminatedString, lx.span(start),
		"unterminated string literal").Emit()
	return token.Token{Kind: token.Invalid, Span: lx.span(start)}
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
