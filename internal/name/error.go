package name

import (
	"errors"
	"fmt"
)

// ErrInvalidName is the sentinel wrapped by every *InvalidNameError.
var ErrInvalidName = errors.New("invalid name")

// Reason classifies why a candidate was rejected.
type Reason uint8

const (
	// ReasonEmpty: the candidate has zero length.
	ReasonEmpty Reason = iota + 1
	// ReasonBadLeadingCharacter: the first byte is outside the category leading set.
	ReasonBadLeadingCharacter
	// ReasonIllegalCharacter: a byte after the first is outside the category alphabet.
	ReasonIllegalCharacter
	// ReasonReservedOperator: the candidate is the bare "=".
	ReasonReservedOperator
	// ReasonUnknownCategory: the category value is not declared.
	ReasonUnknownCategory
)

func (r Reason) String() string {
	switch r {
	case ReasonEmpty:
		return "Empty"
	case ReasonBadLeadingCharacter:
		return "BadLeadingCharacter"
	case ReasonIllegalCharacter:
		return "IllegalCharacter"
	case ReasonReservedOperator:
		return "ReservedOperator"
	case ReasonUnknownCategory:
		return "UnknownCategory"
	default:
		return "Unknown"
	}
}

// InvalidNameError describes a rejected candidate. It carries the reason and,
// for character errors, the byte offset inside the candidate. Source positions
// are the caller's business.
type InvalidNameError struct {
	Category Category
	Reason   Reason
	Index    int  // offset of the offending byte; meaningful for character reasons
	Char     byte // offending byte; meaningful for character reasons
	Text     string
}

func (e *InvalidNameError) Error() string {
	switch e.Reason {
	case ReasonEmpty:
		return fmt.Sprintf("invalid %s: empty name", e.Category)
	case ReasonBadLeadingCharacter:
		return fmt.Sprintf("invalid %s %q: %s cannot start with %s", e.Category, e.Text, e.Category, describeByte(e.Char))
	case ReasonIllegalCharacter:
		return fmt.Sprintf("invalid %s %q: illegal character %s at offset %d", e.Category, e.Text, describeByte(e.Char), e.Index)
	case ReasonReservedOperator:
		return fmt.Sprintf("invalid %s %q: reserved", e.Category, e.Text)
	default:
		return fmt.Sprintf("invalid name %q: unknown category %d", e.Text, uint8(e.Category))
	}
}

// Unwrap returns ErrInvalidName for errors.Is compatibility.
func (e *InvalidNameError) Unwrap() error {
	return ErrInvalidName
}

func describeByte(b byte) string {
	if b >= 0x20 && b < 0x7f {
		return fmt.Sprintf("%q", rune(b))
	}
	return fmt.Sprintf("byte 0x%02x", b)
}

// ReasonOf extracts the rejection reason from err, if it is a name error.
func ReasonOf(err error) (Reason, bool) {
	var ne *InvalidNameError
	if errors.As(err, &ne) {
		return ne.Reason, true
	}
	return 0, false
}
