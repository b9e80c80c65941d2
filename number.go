// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jval

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NumberKind identifies the representation of a Number.
type NumberKind byte

// Constants defining the valid NumberKind values. The zero value is U64,
// which is the representation a parsed number starts with.
const (
	U64 NumberKind = iota // unsigned 64-bit integer
	I64                   // signed 64-bit integer
	F64                   // 64-bit IEEE 754 float
)

var kindStr = [...]string{U64: "u64", I64: "i64", F64: "f64"}

func (k NumberKind) String() string {
	if int(k) >= len(kindStr) {
		return "invalid"
	}
	return kindStr[k]
}

// A Number is a JSON number, tagged with its representation.
// The payload holds the bits of a uint64, int64, or float64 according to kind.
type Number struct {
	kind NumberKind
	bits uint64
}

// Uint returns an unsigned integer Number.
func Uint(u uint64) Number { return Number{kind: U64, bits: u} }

// Int returns a signed integer Number.
func Int(i int64) Number { return Number{kind: I64, bits: uint64(i)} }

// Float returns a floating-point Number.
func Float(f float64) Number { return Number{kind: F64, bits: math.Float64bits(f)} }

func (n Number) u() uint64  { return n.bits }
func (n Number) i() int64   { return int64(n.bits) }
func (n Number) f() float64 { return math.Float64frombits(n.bits) }

// Kind reports the representation of n.
func (n Number) Kind() NumberKind { return n.kind }

// Uint64 returns n as an unsigned integer, converting if necessary.
func (n Number) Uint64() uint64 {
	switch n.kind {
	case I64:
		return uint64(n.i())
	case F64:
		return uint64(n.f())
	}
	return n.u()
}

// Int64 returns n as a signed integer, converting if necessary.
func (n Number) Int64() int64 {
	switch n.kind {
	case U64:
		return int64(n.u())
	case F64:
		return int64(n.f())
	}
	return n.i()
}

// Float64 returns n as a float, converting if necessary.
func (n Number) Float64() float64 {
	switch n.kind {
	case U64:
		return float64(n.u())
	case I64:
		return float64(n.i())
	}
	return n.f()
}

// Equal reports whether n and m have the same value. Integers compare by
// value regardless of whether they are signed, but an integer never equals a
// float.
func (n Number) Equal(m Number) bool {
	switch {
	case n.kind == F64 || m.kind == F64:
		return n.kind == m.kind && n.f() == m.f()
	case n.kind == m.kind:
		return n.bits == m.bits
	case n.kind == I64:
		return n.i() >= 0 && n.bits == m.bits
	default:
		return m.i() >= 0 && n.bits == m.bits
	}
}

// appendJSON appends the JSON text of n to buf. Floats always include a
// decimal point or an exponent, so that they parse back as floats.
func (n Number) appendJSON(buf []byte) ([]byte, error) {
	switch n.kind {
	case U64:
		return strconv.AppendUint(buf, n.u(), 10), nil
	case I64:
		return strconv.AppendInt(buf, n.i(), 10), nil
	case F64:
		if math.IsInf(n.f(), 0) || math.IsNaN(n.f()) {
			return buf, fmt.Errorf("cannot encode %v: %w", n.f(), ErrInvalidArgument)
		}
		start := len(buf)
		buf = strconv.AppendFloat(buf, n.f(), 'g', -1, 64)
		if !strings.ContainsAny(string(buf[start:]), ".e") {
			buf = append(buf, '.', '0')
		}
		return buf, nil
	}
	return buf, fmt.Errorf("number kind %v: %w", n.kind, ErrInvalidArgument)
}

// String returns the JSON text of n, or a diagnostic if n cannot be encoded.
func (n Number) String() string {
	buf, err := n.appendJSON(nil)
	if err != nil {
		return fmt.Sprintf("Number(%v)", n.f())
	}
	return string(buf)
}
