// Copyright (C) 2024 Alex Hofstead. All Rights Reserved.

package jot_test

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/hofstead/jot"

	"github.com/google/go-cmp/cmp"
)

func TestReader(t *testing.T) {
	r := jot.NewReader(strings.NewReader("ab"))

	ch, err := r.Next()
	if ch != 'a' || err != nil {
		t.Errorf("Next: got %q, %v; want 'a', nil", ch, err)
	}
	r.Unread()
	ch, err = r.Next()
	if ch != 'a' || err != nil {
		t.Errorf("Next after Unread: got %q, %v; want 'a', nil", ch, err)
	}
	ch, err = r.Next()
	if ch != 'b' || err != nil {
		t.Errorf("Next: got %q, %v; want 'b', nil", ch, err)
	}
	if ch, err = r.Next(); err != io.EOF {
		t.Errorf("Next at end: got %q, %v; want io.EOF", ch, err)
	}
}

func TestReaderRunes(t *testing.T) {
	const input = "aé本\U0001F610"
	r := jot.NewReader(bufio.NewReader(strings.NewReader(input)))

	var got []rune
	for {
		ch, err := r.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("Next: unexpected error: %v", err)
		}
		got = append(got, ch)
	}
	if diff := cmp.Diff([]rune(input), got); diff != "" {
		t.Errorf("Runes: (-want, +got)\n%s", diff)
	}
}

func TestSkipSpace(t *testing.T) {
	tests := []struct {
		input string
		first rune
		eof   bool
	}{
		{"x", 'x', false},
		{"   x", 'x', false},
		{"\t\r\n {", '{', false},
		{"", 0, true},
		{" \n\t\r ", 0, true},
	}
	for _, test := range tests {
		r := jot.NewReader(strings.NewReader(test.input))
		ch, err := r.SkipSpace()
		if test.eof {
			if err != io.EOF {
				t.Errorf("SkipSpace(%#q): got %q, %v; want io.EOF", test.input, ch, err)
			}
			continue
		}
		if err != nil || ch != test.first {
			t.Errorf("SkipSpace(%#q): got %q, %v; want %q, nil", test.input, ch, err, test.first)
		}
	}
}

func TestIsSpace(t *testing.T) {
	for _, ch := range " \t\r\n" {
		if !jot.IsSpace(ch) {
			t.Errorf("IsSpace(%q): got false, want true", ch)
		}
	}
	for _, ch := range "\v\f  x0" {
		if jot.IsSpace(ch) {
			t.Errorf("IsSpace(%q): got true, want false", ch)
		}
	}
}
