// Package testkit holds invariant checks shared by tests and fuzz harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"lexid/internal/name"
	"lexid/internal/source"
	"lexid/internal/token"
)

// CheckTokenInvariants runs a minimal set of invariants on a scanned file:
// 1) the stream ends with exactly one EOF, at the end of content
// 2) every other token span is non-empty, inside the file and after the previous one
// 3) token text is the content under its span
// 4) name tokens carry a name of the matching category that re-validates;
// Invalid tokens carry none
// 5) leading trivia and token spans tile the content with no gaps
func CheckTokenInvariants(toks []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if len(toks) == 0 {
		return fmt.Errorf("empty token stream")
	}

	// 1) EOF
	last := toks[len(toks)-1]
	if last.Kind != token.EOF {
		return fmt.Errorf("stream ends with %s, not EOF", last.Kind)
	}
	if last.Span.Start != lenContent || !last.Span.Empty() {
		return fmt.Errorf("EOF span %v is not at end of content (%d)", last.Span, lenContent)
	}

	var prevEnd uint32
	for i, tok := range toks[:len(toks)-1] {
		sp := tok.Span
		// 2) spans
		if tok.Kind == token.EOF {
			return fmt.Errorf("token %d: EOF before end of stream", i)
		}
		if sp.File != sf.ID {
			return fmt.Errorf("token %d: span file mismatch: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.End <= sp.Start {
			return fmt.Errorf("token %d: empty span %v", i, sp)
		}
		if sp.End > lenContent {
			return fmt.Errorf("token %d: span end beyond content: %d > %d", i, sp.End, lenContent)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d: span %v overlaps previous token ending at %d", i, sp, prevEnd)
		}
		prevEnd = sp.End

		// 3) text
		if got := string(sf.Content[sp.Start:sp.End]); got != tok.Text {
			return fmt.Errorf("token %d: text %q, content %q", i, tok.Text, got)
		}

		// 4) names
		switch {
		case tok.Kind.IsName():
			if tok.Name == nil {
				return fmt.Errorf("token %d: %s without name", i, tok.Kind)
			}
			if token.KindOf(tok.Name.Category()) != tok.Kind {
				return fmt.Errorf("token %d: kind %s carries %#v", i, tok.Kind, tok.Name)
			}
			if tok.Name.Text() != tok.Text {
				return fmt.Errorf("token %d: name %q differs from text %q", i, tok.Name.Text(), tok.Text)
			}
			if err := name.Check(tok.Name.Category(), tok.Text); err != nil {
				return fmt.Errorf("token %d: %w", i, err)
			}
		case tok.Name != nil:
			return fmt.Errorf("token %d: %s carries name %#v", i, tok.Kind, tok.Name)
		}
	}

	// 5) coverage
	var at uint32
	for i, tok := range toks {
		for j, tr := range tok.Leading {
			if tr.Span.Start != at || tr.Span.End <= tr.Span.Start || tr.Span.End > lenContent {
				return fmt.Errorf("token %d trivia %d: span %v, expected start at %d", i, j, tr.Span, at)
			}
			if got := string(sf.Content[tr.Span.Start:tr.Span.End]); got != tr.Text {
				return fmt.Errorf("token %d trivia %d: text %q, content %q", i, j, tr.Text, got)
			}
			at = tr.Span.End
		}
		if tok.Span.Start != at {
			return fmt.Errorf("token %d: starts at %d, previous coverage ends at %d", i, tok.Span.Start, at)
		}
		at = tok.Span.End
	}
	if at != lenContent {
		return fmt.Errorf("tokens and trivia cover %d of %d bytes", at, lenContent)
	}
	return nil
}
