// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jval

// Equal reports whether a and b are structurally equal. Objects are equal if
// they have the same keys with equal values, regardless of key order. Arrays
// are equal if they have equal values in the same order. Numbers are equal
// as reported by Number.Equal.
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	} else if a.typ != b.typ {
		return false
	}
	switch a.typ {
	case TypeNull:
		return true
	case TypeBool:
		return a.b == b.b
	case TypeNumber:
		return a.num.Equal(b.num)
	case TypeString:
		return a.str.Equal(&b.str)
	case TypeArray:
		if a.arr.Len() != b.arr.Len() {
			return false
		}
		for i, av := range a.arr.All() {
			if !Equal(av, &b.arr.items[i]) {
				return false
			}
		}
		return true
	case TypeObject:
		if a.obj.Len() != b.obj.Len() {
			return false
		}
		for _, e := range a.obj.order {
			bv := b.obj.lookup(e.key.ro(), e.hash)
			if bv == nil || !Equal(&e.val, &bv.val) {
				return false
			}
		}
		return true
	}
	return false
}
