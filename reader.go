// Copyright (C) 2024 Alex Hofstead. All Rights Reserved.

package jot

import (
	"bufio"
	"io"
)

// A Reader is a forward cursor over a stream of runes with one rune of
// pushback. It is the input form consumed by the parser: each production
// reads runes with Next and the number production returns its terminating
// rune to the stream with Unread.
type Reader struct {
	r *bufio.Reader
}

// NewReader constructs a new Reader that consumes input from r.
func NewReader(r io.Reader) *Reader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Reader{r: br}
}

// Next returns the next rune of the input. At the end of the input it
// returns io.EOF.
func (r *Reader) Next() (rune, error) {
	ch, _, err := r.r.ReadRune()
	return ch, err
}

// Unread pushes the most recently read rune back onto the input, so that
// the next call to Next or SkipSpace will see it again. Only the single
// rune returned by the last successful Next can be unread.
func (r *Reader) Unread() { r.r.UnreadRune() }

// SkipSpace discards whitespace and returns the first significant rune,
// which has been consumed. At the end of the input it returns io.EOF.
func (r *Reader) SkipSpace() (rune, error) {
	for {
		ch, err := r.Next()
		if err != nil {
			return 0, err
		}
		if !IsSpace(ch) {
			return ch, nil
		}
	}
}

// IsSpace reports whether ch is one of the four JSON whitespace characters.
func IsSpace(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}
