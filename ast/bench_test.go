// Copyright (C) 2024 Alex Hofstead. All Rights Reserved.

package ast_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/hofstead/jot/ast"

	"github.com/intel-go/fastjson"
)

// benchInput builds a moderately nested document so the three decoders see
// the same mix of objects, arrays, strings, and numbers.
func benchInput() []byte {
	var sb strings.Builder
	sb.WriteString(`{"episodes": [`)
	for i := 0; i < 500; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, `{"episode": %d, "title": "entry \u00%02x", "summary": "whatever blah blah %d", "hasDetail": %v, "tags": ["a", "b", null], "score": %d.%d}`,
			i, 0x41+i%26, i, i%2 == 0, i, i%10)
	}
	sb.WriteString(`]}`)
	return []byte(sb.String())
}

func BenchmarkParse(b *testing.B) {
	input := benchInput()
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("encoding/json", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var v any
			if err := json.Unmarshal(input, &v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("fastjson", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var v any
			if err := fastjson.Unmarshal(input, &v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("ast", func(b *testing.B) {
		text := string(input)
		for i := 0; i < b.N; i++ {
			if _, err := ast.Parse(text); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}
