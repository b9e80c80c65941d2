// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jval

import (
	"math"
	"runtime"
)

// initialCap is the capacity given to a Text, Array, or Object on first use.
const initialCap = 8

// nextCap returns the capacity following cur when growing by doubling, or
// ErrMaxSize if doubling would overflow the index arithmetic for elements of
// the given size in bytes.
func nextCap(cur, elemSize int) (int, error) {
	if cur == 0 {
		return initialCap, nil
	}
	if cur > math.MaxInt/2 || cur*2 > math.MaxInt/elemSize {
		return 0, ErrMaxSize
	}
	return cur * 2, nil
}

// alloc allocates a slice of n elements. A runtime failure in the allocation
// itself (for example a length the runtime refuses) is reported as
// ErrAllocation instead of a panic.
func alloc[T any](n int) (out []T, err error) {
	defer func() {
		if x := recover(); x != nil {
			if _, ok := x.(runtime.Error); !ok {
				panic(x)
			}
			out, err = nil, ErrAllocation
		}
	}()
	return make([]T, n), nil
}
