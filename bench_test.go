package jval_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/creachadair/jval"
	"github.com/creachadair/jval/internal/testutil"
)

// benchInput returns a synthetic document with n records.
func benchInput(n int) []byte {
	var sb strings.Builder
	sb.WriteString("[\n")
	for i := range n {
		if i > 0 {
			sb.WriteString(",\n")
		}
		fmt.Fprintf(&sb, `  {"id": %d, "name": "record\t%d", "score": %d.%d, "delta": -%d, `+
			`"tags": ["a", "b", "c"], "ok": %v, "next": null}`, i, i, i, i%100, i, i%2 == 0)
	}
	sb.WriteString("\n]\n")
	return []byte(sb.String())
}

func BenchmarkParse(b *testing.B) {
	input := benchInput(2000)
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Unmarshal", func(b *testing.B) {
		b.SetBytes(int64(len(input)))
		for i := 0; i < b.N; i++ {
			var v any
			if err := json.Unmarshal(input, &v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Parser", func(b *testing.B) {
		b.SetBytes(int64(len(input)))
		for i := 0; i < b.N; i++ {
			v, err := jval.ParseBytes(input)
			if err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
			v.Release()
		}
	})

	b.Run("SmallChunks", func(b *testing.B) {
		chunks := testutil.Chunks(string(input), 64)
		b.SetBytes(int64(len(input)))
		for i := 0; i < b.N; i++ {
			v, err := testutil.ParseChunks(chunks...)
			if err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
			v.Release()
		}
	})
}

func BenchmarkFormat(b *testing.B) {
	v, err := jval.ParseBytes(benchInput(2000))
	if err != nil {
		b.Fatalf("Parse: %v", err)
	}
	b.Run("Formatter", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sb strings.Builder
			if err := jval.Format(&sb, &v); err != nil {
				b.Fatalf("Format: %v", err)
			}
		}
	})
	b.Run("JSON", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = v.JSON()
		}
	})
}

func TestBenchInput(t *testing.T) {
	v, err := jval.ParseBytes(benchInput(50))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n := v.Array().Len(); n != 50 {
		t.Errorf("Records: got %d, want 50", n)
	}
}
