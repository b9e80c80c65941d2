// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jval

import (
	"fmt"
	"iter"
	"slices"
	"unsafe"

	"go4.org/mem"
)

// An Object is a hash map from string keys to values that remembers the
// order in which keys were inserted. The zero value is an empty Object ready
// for use.
type Object struct {
	buckets []*entry // separately-chained hash buckets
	order   []*entry // live entries in insertion order
}

// An entry is one key/value pair of an Object.
type entry struct {
	key  Text
	val  Value
	hash uint64
	next *entry // next in bucket chain
}

var entrySize = int(unsafe.Sizeof(entry{}))

// NewObject returns a new empty object with size hash buckets.
func NewObject(size int) (*Object, error) {
	if size <= 0 {
		return nil, fmt.Errorf("object size %d: %w", size, ErrInvalidArgument)
	}
	buckets, err := alloc[*entry](size)
	if err != nil {
		return nil, err
	}
	return &Object{buckets: buckets}, nil
}

// Len reports the number of keys in o.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.order)
}

func (o *Object) lookup(key mem.RO, h uint64) *entry {
	if len(o.buckets) == 0 {
		return nil
	}
	for e := o.buckets[h%uint64(len(o.buckets))]; e != nil; e = e.next {
		if e.hash == h && e.key.ro().Equal(key) {
			return e
		}
	}
	return nil
}

// Insert adds key with value v to o. If key is already present, Insert
// reports ErrIllegalOperation and o is not modified.
//
// With mode Copy, o stores copies of key and v. With Move, o takes ownership
// of both, leaving key empty and v null. When Insert fails, neither key nor v
// is modified.
func (o *Object) Insert(key *Text, v *Value, mode Mode) error {
	if o == nil || key == nil || v == nil {
		return ErrNullPointer
	}
	h := hashKey(key.ro())
	if o.lookup(key.ro(), h) != nil {
		return fmt.Errorf("duplicate key %q: %w", key.String(), ErrIllegalOperation)
	}
	if len(o.order) >= len(o.buckets) {
		if err := o.rehash(); err != nil {
			return err
		}
	}

	var e *entry
	switch mode {
	case Copy:
		k, err := key.Copy()
		if err != nil {
			return err
		}
		nv, err := v.Copy()
		if err != nil {
			return err
		}
		e = &entry{key: k, val: nv, hash: h}
	case Move:
		e = &entry{key: key.Take(), val: v.Take(), hash: h}
	default:
		return fmt.Errorf("transfer mode %d: %w", mode, ErrInvalidArgument)
	}
	o.link(e)
	o.order = append(o.order, e)
	return nil
}

// InsertString adds key with value v to o, as Insert.
func (o *Object) InsertString(key string, v *Value, mode Mode) error {
	k, err := NewText(key)
	if err != nil {
		return err
	}
	return o.Insert(&k, v, mode)
}

func (o *Object) link(e *entry) {
	b := e.hash % uint64(len(o.buckets))
	e.next = o.buckets[b]
	o.buckets[b] = e
}

// rehash doubles the number of buckets and relinks every entry.
func (o *Object) rehash() error {
	size, err := nextCap(len(o.buckets), entrySize)
	if err != nil {
		return err
	}
	buckets, err := alloc[*entry](size)
	if err != nil {
		return err
	}
	o.buckets = buckets
	for _, e := range o.order {
		o.link(e)
	}
	return nil
}

// Find returns a pointer to the value for key in o, or ErrNotFound.
func (o *Object) Find(key string) (*Value, error) {
	if o == nil {
		return nil, ErrNullPointer
	}
	k := mem.S(key)
	if e := o.lookup(k, hashKey(k)); e != nil {
		return &e.val, nil
	}
	return nil, fmt.Errorf("key %q: %w", key, ErrNotFound)
}

// Delete removes key from o and returns its value, transferring ownership to
// the caller. The remaining keys keep their insertion order.
func (o *Object) Delete(key string) (Value, error) {
	if o == nil {
		return Value{}, ErrNullPointer
	}
	k := mem.S(key)
	h := hashKey(k)
	if len(o.buckets) != 0 {
		b := h % uint64(len(o.buckets))
		for pp := &o.buckets[b]; *pp != nil; pp = &(*pp).next {
			if e := *pp; e.hash == h && e.key.ro().Equal(k) {
				*pp = e.next
				o.order = slices.DeleteFunc(o.order, func(x *entry) bool { return x == e })
				e.key.Release()
				return e.val.Take(), nil
			}
		}
	}
	return Value{}, fmt.Errorf("key %q: %w", key, ErrNotFound)
}

// Copy returns a deep copy of o with the same keys in the same order. If any
// key or value fails to copy, the partial copy is released.
func (o *Object) Copy() (*Object, error) {
	if o == nil {
		return nil, ErrNullPointer
	}
	buckets, err := alloc[*entry](max(len(o.buckets), initialCap))
	if err != nil {
		return nil, err
	}
	out := &Object{buckets: buckets, order: make([]*entry, 0, len(o.order))}
	for _, e := range o.order {
		k, err := e.key.Copy()
		if err != nil {
			out.Release()
			return nil, err
		}
		v, err := e.val.Copy()
		if err != nil {
			out.Release()
			return nil, err
		}
		ne := &entry{key: k, val: v, hash: e.hash}
		out.link(ne)
		out.order = append(out.order, ne)
	}
	return out, nil
}

// Release recursively releases every key and value in o and discards its
// storage.
func (o *Object) Release() {
	if o == nil {
		return
	}
	for _, e := range o.order {
		e.key.Release()
		e.val.Release()
	}
	*o = Object{}
}

// All returns an iterator over the keys and values of o in insertion order.
// The key views are only valid until o is modified.
func (o *Object) All() iter.Seq2[*Text, *Value] {
	return func(yield func(*Text, *Value) bool) {
		if o == nil {
			return
		}
		for _, e := range o.order {
			if !yield(&e.key, &e.val) {
				return
			}
		}
	}
}

// Keys returns a copy of the keys of o in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.order))
	for i, e := range o.order {
		keys[i] = e.key.String()
	}
	return keys
}
