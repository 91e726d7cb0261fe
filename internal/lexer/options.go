package lexer

import (
	"lexid/internal/diag"
)

// DefaultMaxTokenLen bounds a single candidate when Options.MaxTokenLen is zero.
const DefaultMaxTokenLen = 1 << 10

type Options struct {
	// Reporter receives diagnostics; nil drops them and scanning continues.
	Reporter diag.Reporter
	// MaxTokenLen rejects longer candidates; 0 selects DefaultMaxTokenLen.
	MaxTokenLen int
	// Reserved lists valid names that are reported with ReservedSeverity.
	// The token itself is still produced.
	Reserved         map[string]struct{}
	ReservedSeverity diag.Severity
}

func (o Options) maxTokenLen() int {
	if o.MaxTokenLen <= 0 {
		return DefaultMaxTokenLen
	}
	return o.MaxTokenLen
}
