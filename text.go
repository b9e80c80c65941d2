// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jval

import "go4.org/mem"

// A Text is a growable byte string with an explicit length and capacity.
// The zero value is an empty Text ready for use.
//
// Assigning a Text shares its buffer; use Copy to obtain an independent
// value, and treat the source of a move as released.
type Text struct {
	buf []byte // len(buf) is the capacity
	n   int    // bytes in use
}

// NewText returns a new Text holding a copy of s.
func NewText(s string) (Text, error) {
	var t Text
	if err := t.AppendString(s); err != nil {
		return Text{}, err
	}
	return t, nil
}

// Len reports the number of bytes in t.
func (t *Text) Len() int { return t.n }

// Cap reports the capacity of t in bytes.
func (t *Text) Cap() int { return len(t.buf) }

// Bytes returns a view of the contents of t. The view is only valid until
// the next modification of t.
func (t *Text) Bytes() []byte { return t.buf[:t.n] }

// String returns a copy of the contents of t as a string.
func (t *Text) String() string { return string(t.buf[:t.n]) }

func (t *Text) ro() mem.RO { return mem.B(t.buf[:t.n]) }

// AppendByte appends ch to t, growing its capacity if necessary.
func (t *Text) AppendByte(ch byte) error {
	if t == nil {
		return ErrNullPointer
	}
	if t.n == len(t.buf) {
		if err := t.grow(t.n + 1); err != nil {
			return err
		}
	}
	t.buf[t.n] = ch
	t.n++
	return nil
}

// AppendString appends the bytes of s to t.
func (t *Text) AppendString(s string) error {
	if t == nil {
		return ErrNullPointer
	}
	if t.n+len(s) > len(t.buf) {
		if err := t.grow(t.n + len(s)); err != nil {
			return err
		}
	}
	t.n += mem.S(s).Copy(t.buf[t.n:])
	return nil
}

// grow doubles the capacity of t until it can hold at least want bytes.
func (t *Text) grow(want int) error {
	if want < 0 {
		return ErrMaxSize
	}
	size := len(t.buf)
	for size < want {
		next, err := nextCap(size, 1)
		if err != nil {
			return err
		}
		size = next
	}
	nb, err := alloc[byte](size)
	if err != nil {
		return err
	}
	copy(nb, t.buf[:t.n])
	t.buf = nb
	return nil
}

// Copy returns a copy of t that does not share storage with t. The copy has
// one byte of spare capacity.
func (t *Text) Copy() (Text, error) {
	nb, err := alloc[byte](t.n + 1)
	if err != nil {
		return Text{}, err
	}
	copy(nb, t.buf[:t.n])
	return Text{buf: nb, n: t.n}, nil
}

// Take transfers the contents of t to the caller, leaving t empty.
func (t *Text) Take() Text {
	out := *t
	*t = Text{}
	return out
}

// Release discards the storage of t, leaving it empty.
func (t *Text) Release() { *t = Text{} }

// Equal reports whether t and u contain the same bytes.
func (t *Text) Equal(u *Text) bool { return t.ro().Equal(u.ro()) }

// EqualString reports whether t contains exactly the bytes of s.
func (t *Text) EqualString(s string) bool { return t.ro().EqualString(s) }

// Compare compares t and u byte-wise, returning -1 if t < u, 0 if t == u, and
// +1 if t > u. If one is a prefix of the other, the shorter sorts first.
func (t *Text) Compare(u *Text) int {
	a, b := t.ro(), u.ro()
	if a.Equal(b) {
		return 0
	} else if a.Less(b) {
		return -1
	}
	return 1
}

// FNV-1a parameters for 64-bit hashes.
const (
	fnvOffset = 14695981039346656037
	fnvPrime  = 1099511628211
)

// hashKey returns the 64-bit FNV-1a hash of the bytes of key.
func hashKey(key mem.RO) uint64 {
	h := uint64(fnvOffset)
	for i := 0; i < key.Len(); i++ {
		h ^= uint64(key.At(i))
		h *= fnvPrime
	}
	return h
}
