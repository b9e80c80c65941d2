// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import "go4.org/mem"

// quoteEsc maps each byte that must be escaped to the letter of its escape.
var quoteEsc = [...]byte{
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	'"':  '"',
	'\\': '\\',
}

// Quote encodes a string to escape characters for inclusion in a JSON string.
// Only double quotes, backslashes, newlines, tabs, and carriage returns are
// escaped; all other bytes are copied unchanged.
func Quote(src mem.RO) []byte { return AppendQuote(make([]byte, 0, src.Len()), src) }

// AppendQuote appends the escaped encoding of src to buf, as Quote, and
// returns the extended slice.
func AppendQuote(buf []byte, src mem.RO) []byte {
	for src.Len() != 0 {
		i := indexEscape(src)
		if i < 0 {
			return mem.Append(buf, src)
		}
		buf = mem.Append(buf, src.SliceTo(i))
		buf = append(buf, '\\', quoteEsc[src.At(i)])
		src = src.SliceFrom(i + 1)
	}
	return buf
}

// indexEscape returns the offset of the first byte of src that requires an
// escape, or -1.
func indexEscape(src mem.RO) int {
	for i := 0; i < src.Len(); i++ {
		if b := src.At(i); int(b) < len(quoteEsc) && quoteEsc[b] != 0 {
			return i
		}
	}
	return -1
}
