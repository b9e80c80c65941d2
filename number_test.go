// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jval_test

import (
	"math"
	"testing"
	"unsafe"

	"github.com/creachadair/jval"
)

func TestNumberConvert(t *testing.T) {
	u := jval.Uint(42)
	i := jval.Int(-42)
	f := jval.Float(42.75)

	if u.Kind() != jval.U64 || i.Kind() != jval.I64 || f.Kind() != jval.F64 {
		t.Errorf("Kinds: got %v, %v, %v", u.Kind(), i.Kind(), f.Kind())
	}
	if got := u.Int64(); got != 42 {
		t.Errorf("Uint.Int64: got %d, want 42", got)
	}
	if got := i.Float64(); got != -42 {
		t.Errorf("Int.Float64: got %v, want -42", got)
	}
	if got := f.Int64(); got != 42 {
		t.Errorf("Float.Int64: got %d, want 42", got)
	}
	if got := f.Uint64(); got != 42 {
		t.Errorf("Float.Uint64: got %d, want 42", got)
	}

	for _, tc := range []struct {
		a, b jval.Number
		want bool
	}{
		{jval.Uint(1), jval.Int(1), true},
		{jval.Int(5), jval.Uint(5), true},
		{jval.Int(0), jval.Uint(0), true},
		{jval.Int(-1), jval.Uint(math.MaxUint64), false},
		{jval.Uint(1 << 63), jval.Int(math.MinInt64), false},
		{jval.Uint(1), jval.Float(1), false},
		{jval.Int(-1), jval.Float(-1), false},
		{jval.Float(0.5), jval.Float(0.5), true},
	} {
		if got := tc.a.Equal(tc.b); got != tc.want {
			t.Errorf("%v(%v).Equal(%v(%v)): got %v, want %v", tc.a.Kind(), tc.a, tc.b.Kind(), tc.b, got, tc.want)
		}
		if got := tc.b.Equal(tc.a); got != tc.want {
			t.Errorf("%v(%v).Equal(%v(%v)): got %v, want %v", tc.b.Kind(), tc.b, tc.a.Kind(), tc.a, got, tc.want)
		}
	}

	for _, tc := range []struct {
		n    jval.Number
		want string
	}{
		{jval.Uint(0), "0"},
		{jval.Int(math.MinInt64), "-9223372036854775808"},
		{jval.Float(100), "100.0"},
		{jval.Float(0.1), "0.1"},
		{jval.Float(math.Inf(1)), "Number(+Inf)"},
	} {
		if got := tc.n.String(); got != tc.want {
			t.Errorf("String %v: got %q, want %q", tc.want, got, tc.want)
		}
	}
	if got := jval.F64.String(); got != "f64" {
		t.Errorf("F64.String: got %q, want f64", got)
	}
}

func TestNumberSize(t *testing.T) {
	// A kind tag and one 64-bit payload.
	if got := unsafe.Sizeof(jval.Number{}); got > 16 {
		t.Errorf("Sizeof(Number): got %d, want <= 16", got)
	}
	for _, f := range []float64{0, math.Copysign(0, -1), math.MaxFloat64, -1.5} {
		if got := jval.Float(f).Float64(); math.Float64bits(got) != math.Float64bits(f) {
			t.Errorf("Float(%v): got %v", f, got)
		}
	}
	if got := jval.Int(math.MinInt64).Int64(); got != math.MinInt64 {
		t.Errorf("Int(MinInt64): got %d", got)
	}
}
