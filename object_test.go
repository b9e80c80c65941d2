// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jval_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/creachadair/jval"
	"github.com/google/go-cmp/cmp"
)

func TestObjectOrder(t *testing.T) {
	keys := []string{"zulu", "alpha", "mike", "bravo", "yankee", "charlie"}
	var o jval.Object
	for i, key := range keys {
		v := num(uint64(i))
		if err := o.InsertString(key, &v, jval.Move); err != nil {
			t.Fatalf("Insert %q: %v", key, err)
		}
	}
	if diff := cmp.Diff(keys, o.Keys()); diff != "" {
		t.Errorf("Keys (-want, +got):\n%s", diff)
	}

	var got []string
	for key, val := range o.All() {
		got = append(got, fmt.Sprintf("%s=%s", key.String(), val.JSON()))
	}
	want := []string{"zulu=0", "alpha=1", "mike=2", "bravo=3", "yankee=4", "charlie=5"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("All (-want, +got):\n%s", diff)
	}

	// Deleting a key preserves the order of the rest.
	v, err := o.Delete("mike")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if n, ok := v.Number(); !ok || n.Uint64() != 2 {
		t.Errorf("Delete: got %v, want 2", v)
	}
	if diff := cmp.Diff([]string{"zulu", "alpha", "bravo", "yankee", "charlie"}, o.Keys()); diff != "" {
		t.Errorf("Keys after delete (-want, +got):\n%s", diff)
	}
	if _, err := o.Delete("mike"); !errors.Is(err, jval.ErrNotFound) {
		t.Errorf("Delete again: got %v, want %v", err, jval.ErrNotFound)
	}
	if _, err := o.Find("mike"); !errors.Is(err, jval.ErrNotFound) {
		t.Errorf("Find deleted: got %v, want %v", err, jval.ErrNotFound)
	}

	// A deleted key may be inserted again, at the end.
	w := str("again")
	if err := o.InsertString("mike", &w, jval.Move); err != nil {
		t.Fatalf("Reinsert: %v", err)
	}
	if diff := cmp.Diff([]string{"zulu", "alpha", "bravo", "yankee", "charlie", "mike"}, o.Keys()); diff != "" {
		t.Errorf("Keys after reinsert (-want, +got):\n%s", diff)
	}
}

func TestObjectDuplicate(t *testing.T) {
	var o jval.Object
	a, b := num(1), num(2)
	if err := o.InsertString("k", &a, jval.Copy); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	key, _ := jval.NewText("k")
	err := o.Insert(&key, &b, jval.Move)
	if !errors.Is(err, jval.ErrIllegalOperation) {
		t.Fatalf("Insert duplicate: got %v, want %v", err, jval.ErrIllegalOperation)
	}

	// Neither the object nor the arguments were modified.
	if o.Len() != 1 {
		t.Errorf("Len: got %d, want 1", o.Len())
	}
	if v, err := o.Find("k"); err != nil {
		t.Errorf("Find: %v", err)
	} else if n, _ := v.Number(); n.Uint64() != 1 {
		t.Errorf("Find: got %v, want 1", v)
	}
	if !key.EqualString("k") {
		t.Errorf("Key after failed insert: got %q, want k", key.String())
	}
	if n, ok := b.Number(); !ok || n.Uint64() != 2 {
		t.Errorf("Value after failed insert: got %v, want 2", b)
	}
}

func TestObjectRehash(t *testing.T) {
	const size = 8
	o, err := jval.NewObject(size)
	if err != nil {
		t.Fatalf("NewObject: %v", err)
	}
	// Insert one more key than there are buckets, forcing a rehash, and check
	// that every key remains reachable.
	for i := range size + 1 {
		v := num(uint64(i))
		if err := o.InsertString(fmt.Sprintf("key%d", i), &v, jval.Move); err != nil {
			t.Fatalf("Insert %d: %v", i, err)
		}
	}
	for i := range size + 1 {
		key := fmt.Sprintf("key%d", i)
		v, err := o.Find(key)
		if err != nil {
			t.Errorf("Find %q: %v", key, err)
			continue
		}
		if n, _ := v.Number(); n.Uint64() != uint64(i) {
			t.Errorf("Find %q: got %v, want %d", key, v, i)
		}
	}

	// A larger population exercises several rehashes.
	for i := size + 1; i < 1000; i++ {
		v := num(uint64(i))
		if err := o.InsertString(fmt.Sprintf("key%d", i), &v, jval.Move); err != nil {
			t.Fatalf("Insert %d: %v", i, err)
		}
	}
	for i := range 1000 {
		if _, err := o.Find(fmt.Sprintf("key%d", i)); err != nil {
			t.Errorf("Find key%d: %v", i, err)
		}
	}
	keys := o.Keys()
	for i, key := range keys {
		if want := fmt.Sprintf("key%d", i); key != want {
			t.Errorf("Key %d: got %q, want %q", i, key, want)
			break
		}
	}
}

func TestObjectCopy(t *testing.T) {
	src, err := jval.ParseString(`{"b": [1, 2], "a": {"c": "d"}}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cp, err := src.Copy()
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if diff := cmp.Diff([]string{"b", "a"}, cp.Object().Keys()); diff != "" {
		t.Errorf("Copy keys (-want, +got):\n%s", diff)
	}

	// Modifying the copy does not affect the original.
	if _, err := cp.Object().Delete("b"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got, want := src.JSON(), `{"b":[1,2],"a":{"c":"d"}}`; got != want {
		t.Errorf("Original: got %s, want %s", got, want)
	}
	if got, want := cp.JSON(), `{"a":{"c":"d"}}`; got != want {
		t.Errorf("Copy: got %s, want %s", got, want)
	}
}

func TestObjectErrors(t *testing.T) {
	if _, err := jval.NewObject(0); !errors.Is(err, jval.ErrInvalidArgument) {
		t.Errorf("NewObject(0): got %v, want %v", err, jval.ErrInvalidArgument)
	}
	var o jval.Object
	if err := o.Insert(nil, nil, jval.Copy); !errors.Is(err, jval.ErrNullPointer) {
		t.Errorf("Insert(nil): got %v, want %v", err, jval.ErrNullPointer)
	}
	if _, err := o.Find("x"); !errors.Is(err, jval.ErrNotFound) {
		t.Errorf("Find on empty: got %v, want %v", err, jval.ErrNotFound)
	}
	if _, err := o.Delete("x"); !errors.Is(err, jval.ErrNotFound) {
		t.Errorf("Delete on empty: got %v, want %v", err, jval.ErrNotFound)
	}
}
