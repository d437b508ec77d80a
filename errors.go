// Copyright (C) 2024 Alex Hofstead. All Rights Reserved.

package jot

import "fmt"

// Kind is the type of a grammar violation reported by the parser.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid           Kind = iota // invalid kind
	UnexpectedChar                // a character the grammar does not allow here
	UnexpectedKeyword             // a malformed true, false, or null literal
	UnknownEscape                 // a backslash followed by an unrecognized character
	InvalidUnicode                // a malformed \uXXXX escape or surrogate pair
	LeadingZero                   // a numeric literal with a redundant leading zero
	EarlyEndOfStream              // input exhausted mid-production
	ExtraChars                    // content remaining after a complete value
	DepthExceeded                 // nesting deeper than the configured bound
)

var kindStr = [...]string{
	Invalid:           "invalid error kind",
	UnexpectedChar:    "unexpected character",
	UnexpectedKeyword: "unknown keyword",
	UnknownEscape:     "unknown escape character",
	InvalidUnicode:    "invalid Unicode escape",
	LeadingZero:       "extra leading zeroes",
	EarlyEndOfStream:  "unexpected end of input",
	ExtraChars:        "extra characters after value",
	DepthExceeded:     "nesting depth exceeded",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// SyntaxError is the concrete type of errors reported by the parser. Every
// deviation from the grammar is a SyntaxError; none is recovered internally.
type SyntaxError struct {
	Kind  Kind
	Char  rune   // the offending character, for UnexpectedChar and UnknownEscape
	Extra string // the remaining input, for ExtraChars
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	switch e.Kind {
	case UnexpectedChar, UnknownEscape:
		return fmt.Sprintf("%s %q", e.Kind, e.Char)
	case ExtraChars:
		return fmt.Sprintf("%s: %q", e.Kind, e.Extra)
	default:
		return e.Kind.String()
	}
}
