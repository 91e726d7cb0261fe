package lexer

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"lexid/internal/diag"
	"lexid/internal/name"
	"lexid/internal/source"
	"lexid/internal/token"
)

// isCandidateByte reports whether b continues a candidate. Candidates end at
// trivia and punctuation only; everything else, illegal bytes included, is
// handed to the name checker so the diagnostic can point at it.
func isCandidateByte(b byte) bool {
	if isSpace(b) || b == '\n' || b == '#' {
		return false
	}
	_, punct := token.LookupPunct(b)
	return !punct
}

// scanName slices a maximal candidate and validates it. A rejected candidate
// yields an Invalid token without a Name.
func (lx *Lexer) scanName() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isCandidateByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	raw := lx.file.Content[sp.Start:sp.End]
	text := string(raw)

	if limit := lx.opts.maxTokenLen(); len(raw) > limit {
		lx.report(diag.LexTokenTooLong, diag.SevError, sp,
			fmt.Sprintf("candidate is %d bytes long, limit is %d", len(raw), limit)).Emit()
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}

	n, err := name.ParseBytes(raw)
	if err != nil {
		lx.reportInvalid(sp, raw, err)
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}

	if _, reserved := lx.opts.Reserved[text]; reserved {
		lx.report(diag.NameReservedWord, lx.opts.ReservedSeverity, sp,
			fmt.Sprintf("%s %q is reserved", n.Category(), text)).Emit()
	}
	return token.Token{Kind: token.KindOf(n.Category()), Span: sp, Text: text, Name: n}
}

func (lx *Lexer) reportInvalid(sp source.Span, raw []byte, err error) {
	var ne *name.InvalidNameError
	if !errors.As(err, &ne) {
		lx.report(diag.UnknownCode, diag.SevError, sp, err.Error()).Emit()
		return
	}

	primary := sp
	switch ne.Reason {
	case name.ReasonBadLeadingCharacter, name.ReasonIllegalCharacter:
		// подсвечиваем весь UTF-8 символ, а не один байт
		_, size := utf8.DecodeRune(raw[ne.Index:])
		from, convErr := safecast.Conv[uint32](ne.Index)
		if convErr != nil {
			panic(fmt.Errorf("candidate offset overflow: %w", convErr))
		}
		primary = sp.Sub(from, from+uint32(size)) // #nosec G115 -- rune size is at most 4
	}

	b := lx.report(diag.CodeForReason(ne.Reason), diag.SevError, primary, ne.Error())
	if ne.Reason == name.ReasonBadLeadingCharacter {
		b = b.WithNote(sp, leadingHint(ne.Category))
	}
	b.Emit()
}

func leadingHint(c name.Category) string {
	switch c {
	case name.CategoryIdentifier:
		return "identifiers start with a lowercase letter a-z"
	case name.CategoryTypeName:
		return "type names start with an uppercase letter A-Z"
	case name.CategoryOperator:
		return "operators start with one of + - * / % ~ < > = ? !"
	default:
		return "names start with a letter or an operator symbol"
	}
}
