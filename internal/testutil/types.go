// Package testutil defines support code for unit tests.
package testutil

import "github.com/creachadair/jval"

// Documents are valid JSON inputs covering each kind of value, used by tests
// that check properties over a variety of inputs.
var Documents = []string{
	`null`,
	`true`,
	`false`,
	`0`,
	`12345`,
	`-17`,
	`3.25`,
	`-1.5e-3`,
	`""`,
	`"a\tb\nc \"quoted\" back\\slash"`,
	`[]`,
	`{}`,
	`[1, -2, 3.5, "four", true, false, null]`,
	`{"a": 1, "b": [1, 2, 3], "c": {"d": null}}`,
	`{"z": 1, "y": 2, "x": 3, "w": {"v": [], "u": {}}}`,
	`[[[[["deep"]]]], {"k": [{"k": [{"k": "v"}]}]}]`,
	` { "spaced" : [ 1 , 2 ] , "out" : "" } `,
	"{\r\n\t\"lines\": [\n\t\t10,\n\t\t20\n\t]\n}\n",
}

// Chunks splits s into consecutive chunks of n bytes each. The last chunk may
// be shorter. If n <= 0, Chunks returns s as a single chunk.
func Chunks(s string, n int) []string {
	if n <= 0 || n >= len(s) {
		return []string{s}
	}
	var out []string
	for len(s) > n {
		out = append(out, s[:n])
		s = s[n:]
	}
	return append(out, s)
}

// Splits returns every division of s into two chunks, including the
// divisions with an empty first or last chunk.
func Splits(s string) [][]string {
	out := make([][]string, 0, len(s)+1)
	for i := 0; i <= len(s); i++ {
		out = append(out, []string{s[:i], s[i:]})
	}
	return out
}

// ParseChunks delivers chunks to a new parser in order and returns the
// finished value.
func ParseChunks(chunks ...string) (jval.Value, error) {
	p := jval.NewParser()
	for _, c := range chunks {
		if err := p.DigestString(c); err != nil {
			return jval.Value{}, err
		}
	}
	return p.Finish()
}
