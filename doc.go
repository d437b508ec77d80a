// Copyright (C) 2024 Alex Hofstead. All Rights Reserved.

// Package jot provides the input cursor and error types shared by the jot
// JSON parser.
//
// # Reading
//
// The Reader type is a forward rune cursor with one rune of pushback.
// Construct a reader from an io.Reader and call Next to consume runes:
//
//	r := jot.NewReader(input)
//	ch, err := r.Next()
//
// Next returns io.EOF when the input has been fully consumed. Unread pushes
// the most recently read rune back onto the input, and SkipSpace discards
// whitespace and returns the first significant rune. The parser in the ast
// subpackage drives a Reader directly; most callers will not need one.
//
// # Errors
//
// Every grammar violation the parser reports is a *SyntaxError carrying a
// Kind that identifies the violated rule and, where it helps, the offending
// characters. Use errors.As to recover the structured form:
//
//	var serr *jot.SyntaxError
//	if errors.As(err, &serr) && serr.Kind == jot.LeadingZero {
//	   ...
//	}
//
// Errors carry no line or column information; the parser keeps no position
// state.
//
// # Parsing
//
// See the ast subpackage for the value model and the parse entry points.
package jot
