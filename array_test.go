// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jval_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jval"
	"github.com/google/go-cmp/cmp"
)

func num(u uint64) jval.Value { return jval.NumberValue(jval.Uint(u)) }

func str(s string) jval.Value {
	v, err := jval.String(s)
	if err != nil {
		panic(err)
	}
	return v
}

// arrayJSON returns the compact JSON of each element of a.
func arrayJSON(a *jval.Array) []string {
	var out []string
	for _, v := range a.All() {
		out = append(out, v.JSON())
	}
	return out
}

func TestNewArray(t *testing.T) {
	for _, size := range []int{0, -1} {
		if _, err := jval.NewArray(size); !errors.Is(err, jval.ErrInvalidArgument) {
			t.Errorf("NewArray(%d): got %v, want %v", size, err, jval.ErrInvalidArgument)
		}
	}
	a, err := jval.NewArray(3)
	if err != nil {
		t.Fatalf("NewArray(3): %v", err)
	}
	if a.Len() != 0 || a.Cap() != 3 {
		t.Errorf("NewArray(3): len=%d cap=%d, want 0, 3", a.Len(), a.Cap())
	}
}

func TestArrayAppend(t *testing.T) {
	var a jval.Array
	for i := range 20 {
		v := num(uint64(i))
		if err := a.Append(&v, jval.Move); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
		if !v.IsNull() {
			t.Errorf("Append %d: moved value is %v, want null", i, v)
		}
	}
	if a.Len() != 20 || a.Cap() != 32 {
		t.Errorf("After 20 appends: len=%d cap=%d, want 20, 32", a.Len(), a.Cap())
	}

	// Copy mode leaves the caller's value intact and independent.
	s := str("shared")
	if err := a.Append(&s, jval.Copy); err != nil {
		t.Fatalf("Append copy: %v", err)
	}
	if err := s.Text().AppendString("!"); err != nil {
		t.Fatalf("AppendString: %v", err)
	}
	last, err := a.At(a.Len() - 1)
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	if got := last.Str(); got != "shared" {
		t.Errorf("Copied element: got %q, want shared", got)
	}

	if err := a.Append(nil, jval.Copy); !errors.Is(err, jval.ErrNullPointer) {
		t.Errorf("Append(nil): got %v, want %v", err, jval.ErrNullPointer)
	}
}

func TestArrayRemove(t *testing.T) {
	var a jval.Array
	for _, s := range []string{"a", "b", "c", "b", "d", "b"} {
		v := str(s)
		if err := a.Append(&v, jval.Move); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	if err := a.DeleteAt(0); err != nil {
		t.Fatalf("DeleteAt(0): %v", err)
	}
	if err := a.DeleteAt(a.Len()); !errors.Is(err, jval.ErrNotFound) {
		t.Errorf("DeleteAt(len): got %v, want %v", err, jval.ErrNotFound)
	}
	if diff := cmp.Diff([]string{`"b"`, `"c"`, `"b"`, `"d"`, `"b"`}, arrayJSON(&a)); diff != "" {
		t.Errorf("After DeleteAt (-want, +got):\n%s", diff)
	}

	key := str("b")
	if i, err := a.Index(&key); err != nil || i != 0 {
		t.Errorf("Index(b): got %d, %v; want 0, nil", i, err)
	}
	n, err := a.DeleteValue(&key)
	if err != nil || n != 3 {
		t.Errorf("DeleteValue(b): got %d, %v; want 3, nil", n, err)
	}
	if diff := cmp.Diff([]string{`"c"`, `"d"`}, arrayJSON(&a)); diff != "" {
		t.Errorf("After DeleteValue (-want, +got):\n%s", diff)
	}
	if _, err := a.DeleteValue(&key); !errors.Is(err, jval.ErrNotFound) {
		t.Errorf("DeleteValue(b) again: got %v, want %v", err, jval.ErrNotFound)
	}
	if _, err := a.Index(&key); !errors.Is(err, jval.ErrNotFound) {
		t.Errorf("Index(b) after delete: got %v, want %v", err, jval.ErrNotFound)
	}

	v, err := a.TakeAt(1)
	if err != nil || v.Str() != "d" {
		t.Errorf("TakeAt(1): got %v, %v; want d", v, err)
	}
	if p, _ := a.At(1); !p.IsNull() {
		t.Errorf("At(1) after TakeAt: got %v, want null", p)
	}

	for a.Len() > 0 {
		if _, err := a.Pop(); err != nil {
			t.Fatalf("Pop: %v", err)
		}
	}
	if _, err := a.Pop(); !errors.Is(err, jval.ErrIllegalOperation) {
		t.Errorf("Pop(empty): got %v, want %v", err, jval.ErrIllegalOperation)
	}
}

func TestArrayCopy(t *testing.T) {
	src, err := jval.ParseString(`[1, "two", [3, {"four": 4}]]`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cp, err := src.Copy()
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if !jval.Equal(&src, &cp) {
		t.Fatalf("Copy: got %s, want %s", cp.JSON(), src.JSON())
	}

	// Releasing the original does not disturb the copy.
	src.Release()
	if !src.IsNull() {
		t.Errorf("Release: got %v, want null", src)
	}
	if got, want := cp.JSON(), `[1,"two",[3,{"four":4}]]`; got != want {
		t.Errorf("Copy after release: got %s, want %s", got, want)
	}
}
