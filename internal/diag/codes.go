package diag

import (
	"fmt"

	"lexid/internal/name"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo         Code = 1000
	LexUnknownChar  Code = 1001
	LexTokenTooLong Code = 1005

	// Name validation
	NameEmpty            Code = 1100
	NameBadLeading       Code = 1101
	NameIllegalChar      Code = 1102
	NameReservedOperator Code = 1103
	NameReservedWord     Code = 1104

	IOLoadFileError Code = 4001

	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:          "Unknown error",
	LexInfo:              "Lexical information",
	LexUnknownChar:       "Unknown character",
	LexTokenTooLong:      "Token too long",
	NameEmpty:            "Empty name",
	NameBadLeading:       "Bad leading character",
	NameIllegalChar:      "Illegal character in name",
	NameReservedOperator: "Reserved operator",
	NameReservedWord:     "Reserved name",
	IOLoadFileError:      "I/O load file error",
	ObsTimings:           "Pipeline timings",
}

// CodeForReason maps a name rejection reason to its diagnostic code.
func CodeForReason(r name.Reason) Code {
	switch r {
	case name.ReasonEmpty:
		return NameEmpty
	case name.ReasonBadLeadingCharacter:
		return NameBadLeading
	case name.ReasonIllegalCharacter:
		return NameIllegalChar
	case name.ReasonReservedOperator:
		return NameReservedOperator
	default:
		return UnknownCode
	}
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 1100:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 1100 && ic < 2000:
		return fmt.Sprintf("NAM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
