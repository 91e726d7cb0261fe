package token

// Kind is the category of a scanned token.
type Kind uint8

const (
	// Invalid marks a rejected candidate or an unknown byte.
	Invalid Kind = iota
	// EOF marks the end of input.
	EOF

	// Ident is a lowercase-leading name.
	Ident
	// TypeName is an uppercase-leading name.
	TypeName
	// Operator is a symbol-leading name.
	Operator

	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
	LBrace    // {
	RBrace    // }
	Comma     // ,
	Semicolon // ;
	Colon     // :
)

var kindNames = [...]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Ident:     "Ident",
	TypeName:  "TypeName",
	Operator:  "Operator",
	LParen:    "LParen",
	RParen:    "RParen",
	LBracket:  "LBracket",
	RBracket:  "RBracket",
	LBrace:    "LBrace",
	RBrace:    "RBrace",
	Comma:     "Comma",
	Semicolon: "Semicolon",
	Colon:     "Colon",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsEOF reports whether k is EOF.
func (k Kind) IsEOF() bool { return k == EOF }

// IsName reports whether k is one of the three name kinds.
func (k Kind) IsName() bool { return k >= Ident && k <= Operator }

// IsPunct reports whether k is a delimiter.
func (k Kind) IsPunct() bool { return k >= LParen && k <= Colon }

// LookupPunct maps a delimiter byte to its kind.
func LookupPunct(b byte) (Kind, bool) {
	switch b {
	case '(':
		return LParen, true
	case ')':
		return RParen, true
	case '[':
		return LBracket, true
	case ']':
		return RBracket, true
	case '{':
		return LBrace, true
	case '}':
		return RBrace, true
	case ',':
		return Comma, true
	case ';':
		return Semicolon, true
	case ':':
		return Colon, true
	default:
		return Invalid, false
	}
}
