// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jval

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/creachadair/jval/internal/escape"
)

// A Formatter carries the settings for pretty-printing values.
// A zero value is ready for use with default settings.
type Formatter struct {
	// Indent is the text used for each level of indentation.
	// If empty, a single tab is used.
	Indent string

	// Compact, if true, renders values without any insignificant whitespace.
	// When Compact is set, Indent is ignored.
	Compact bool
}

func (f Formatter) indent() string {
	if f.Indent == "" {
		return "\t"
	}
	return f.Indent
}

// Format renders a pretty-printed representation of v to w with default
// settings.
func Format(w io.Writer, v *Value) error {
	var f Formatter
	return f.Format(w, v)
}

// FormatToString formats v to a string with default settings.
// In case of error in formatting, it returns an empty string.
func FormatToString(v *Value) string {
	var buf bytes.Buffer
	if Format(&buf, v) != nil {
		return ""
	}
	return buf.String()
}

// Format renders a representation of v to w using the settings from f.
// Nothing is written if v cannot be encoded.
func (f Formatter) Format(w io.Writer, v *Value) error {
	if v == nil {
		return ErrNullPointer
	}
	buf, err := f.appendValue(nil, v, 0)
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}

// JSON returns the compact JSON encoding of v. It returns "" if v cannot be
// encoded, which happens only for non-finite floating-point numbers.
func (v *Value) JSON() string {
	buf, err := Formatter{Compact: true}.appendValue(nil, v, 0)
	if err != nil {
		return ""
	}
	return string(buf)
}

func (f Formatter) newline(buf []byte, depth int) []byte {
	if f.Compact {
		return buf
	}
	buf = append(buf, '\n')
	return append(buf, strings.Repeat(f.indent(), depth)...)
}

func (f Formatter) appendValue(buf []byte, v *Value, depth int) ([]byte, error) {
	switch v.typ {
	case TypeObject:
		return f.appendObject(buf, v.obj, depth)
	case TypeArray:
		return f.appendArray(buf, v.arr, depth)
	case TypeString:
		return appendString(buf, &v.str), nil
	case TypeBool:
		if v.b {
			return append(buf, "true"...), nil
		}
		return append(buf, "false"...), nil
	case TypeNumber:
		return v.num.appendJSON(buf)
	case TypeNull:
		return append(buf, "null"...), nil
	}
	return buf, fmt.Errorf("format %v: %w", v.typ, ErrInvalidArgument)
}

func (f Formatter) appendArray(buf []byte, a *Array, depth int) ([]byte, error) {
	buf = append(buf, '[')
	if a.Len() == 0 {
		return append(buf, ']'), nil
	}
	for i, elt := range a.All() {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = f.newline(buf, depth+1)
		var err error
		buf, err = f.appendValue(buf, elt, depth+1)
		if err != nil {
			return buf, err
		}
	}
	buf = f.newline(buf, depth)
	return append(buf, ']'), nil
}

func (f Formatter) appendObject(buf []byte, o *Object, depth int) ([]byte, error) {
	buf = append(buf, '{')
	if o.Len() == 0 {
		return append(buf, '}'), nil
	}
	var i int
	for key, val := range o.All() {
		if i > 0 {
			buf = append(buf, ',')
		}
		i++
		buf = f.newline(buf, depth+1)
		buf = appendString(buf, key)
		if f.Compact {
			buf = append(buf, ':')
		} else {
			buf = append(buf, ':', ' ')
		}
		var err error
		buf, err = f.appendValue(buf, val, depth+1)
		if err != nil {
			return buf, err
		}
	}
	buf = f.newline(buf, depth)
	return append(buf, '}'), nil
}

func appendString(buf []byte, t *Text) []byte {
	buf = append(buf, '"')
	buf = escape.AppendQuote(buf, t.ro())
	return append(buf, '"')
}
