package lexer

import (
	"lexid/internal/diag"
	"lexid/internal/source"
	"lexid/internal/token"
)

// Lexer slices a name source into candidates and validates them.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token
	hold   []token.Trivia
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token with its leading trivia. Trivia
// after the last significant token is attached to EOF. After EOF it keeps
// returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()
	var tok token.Token
	if lx.cursor.EOF() {
		// хвостовые trivia уходят в EOF
		tok = token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	} else if k, ok := token.LookupPunct(lx.cursor.Peek()); ok {
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		tok = token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
	} else {
		tok = lx.scanName()
	}

	tok.Leading = lx.hold
	lx.hold = nil
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// All drains the lexer, EOF token included.
func (lx *Lexer) All() []token.Token {
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind.IsEOF() {
			return out
		}
	}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) *diag.ReportBuilder {
	if lx.opts.Reporter == nil {
		return nil
	}
	return diag.NewReportBuilder(lx.opts.Reporter, sev, code, sp, msg)
}
