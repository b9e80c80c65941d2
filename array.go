// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jval

import (
	"fmt"
	"iter"
	"unsafe"
)

// An Array is a growable, ordered sequence of values. The zero value is an
// empty Array ready for use.
type Array struct {
	items []Value // len(items) is the capacity
	n     int
}

var valueSize = int(unsafe.Sizeof(Value{}))

// NewArray returns a new empty array with capacity for size values.
func NewArray(size int) (*Array, error) {
	if size <= 0 {
		return nil, fmt.Errorf("array size %d: %w", size, ErrInvalidArgument)
	}
	items, err := alloc[Value](size)
	if err != nil {
		return nil, err
	}
	return &Array{items: items}, nil
}

// Len reports the number of values in a.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return a.n
}

// Cap reports the capacity of a.
func (a *Array) Cap() int {
	if a == nil {
		return 0
	}
	return len(a.items)
}

// Append adds v to the end of a. With mode Copy a deep copy of v is stored;
// with Move, a takes ownership of the contents of v and v is left null.
func (a *Array) Append(v *Value, mode Mode) error {
	if a == nil || v == nil {
		return ErrNullPointer
	}
	if a.n == len(a.items) {
		if err := a.grow(); err != nil {
			return err
		}
	}
	nv, err := transfer(v, mode)
	if err != nil {
		return err
	}
	a.items[a.n] = nv
	a.n++
	return nil
}

func (a *Array) grow() error {
	size, err := nextCap(len(a.items), valueSize)
	if err != nil {
		return err
	}
	items, err := alloc[Value](size)
	if err != nil {
		return err
	}
	copy(items, a.items[:a.n])
	a.items = items
	return nil
}

// Pop removes and returns the last value of a, transferring ownership to the
// caller. It reports ErrIllegalOperation if a is empty.
func (a *Array) Pop() (Value, error) {
	if a == nil {
		return Value{}, ErrNullPointer
	} else if a.n == 0 {
		return Value{}, fmt.Errorf("pop empty array: %w", ErrIllegalOperation)
	}
	a.n--
	return a.items[a.n].Take(), nil
}

// At returns a pointer to the value at offset i. The pointer is valid until
// the next modification of a.
func (a *Array) At(i int) (*Value, error) {
	if err := a.checkIndex(i); err != nil {
		return nil, err
	}
	return &a.items[i], nil
}

// TakeAt transfers ownership of the value at offset i to the caller, leaving
// null in its place.
func (a *Array) TakeAt(i int) (Value, error) {
	if err := a.checkIndex(i); err != nil {
		return Value{}, err
	}
	return a.items[i].Take(), nil
}

// DeleteAt releases the value at offset i and shifts the values after it down
// by one position.
func (a *Array) DeleteAt(i int) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	a.items[i].Release()
	a.removeAt(i)
	return nil
}

func (a *Array) removeAt(i int) {
	copy(a.items[i:a.n], a.items[i+1:a.n])
	a.n--
	a.items[a.n] = Value{}
}

func (a *Array) checkIndex(i int) error {
	if a == nil {
		return ErrNullPointer
	} else if i < 0 || i >= a.n {
		return fmt.Errorf("index %d of %d: %w", i, a.n, ErrNotFound)
	}
	return nil
}

// Index returns the offset of the first value in a that is equal to v, or
// ErrNotFound.
func (a *Array) Index(v *Value) (int, error) {
	if a == nil || v == nil {
		return -1, ErrNullPointer
	}
	for i := range a.n {
		if Equal(&a.items[i], v) {
			return i, nil
		}
	}
	return -1, ErrNotFound
}

// DeleteValue releases every value in a that is equal to v, preserving the
// order of the rest, and reports how many were removed. It reports
// ErrNotFound if no value matched.
func (a *Array) DeleteValue(v *Value) (int, error) {
	if a == nil || v == nil {
		return 0, ErrNullPointer
	}
	var nd int
	for i := 0; i < a.n; {
		if Equal(&a.items[i], v) {
			a.items[i].Release()
			a.removeAt(i)
			nd++
		} else {
			i++
		}
	}
	if nd == 0 {
		return 0, ErrNotFound
	}
	return nd, nil
}

// Copy returns a deep copy of a with the same capacity. If any element fails
// to copy, the partial copy is released.
func (a *Array) Copy() (*Array, error) {
	if a == nil {
		return nil, ErrNullPointer
	}
	items, err := alloc[Value](max(len(a.items), initialCap))
	if err != nil {
		return nil, err
	}
	out := &Array{items: items}
	for i := range a.n {
		cp, err := a.items[i].Copy()
		if err != nil {
			out.Release()
			return nil, err
		}
		out.items[i] = cp
		out.n++
	}
	return out, nil
}

// Release recursively releases every value in a and discards its storage.
func (a *Array) Release() {
	if a == nil {
		return
	}
	for i := range a.n {
		a.items[i].Release()
	}
	*a = Array{}
}

// truncate releases the values of a at offsets n and beyond.
func (a *Array) truncate(n int) {
	for a.n > n {
		a.n--
		a.items[a.n].Release()
	}
}

// All returns an iterator over the offsets and values of a, in order.
func (a *Array) All() iter.Seq2[int, *Value] {
	return func(yield func(int, *Value) bool) {
		for i := range a.Len() {
			if !yield(i, &a.items[i]) {
				return
			}
		}
	}
}
