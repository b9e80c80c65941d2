// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jval

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"go4.org/mem"
)

// numFlag records which parts of a number have been seen.
type numFlag uint16

const (
	numSign     numFlag = 1 << iota // leading '-'
	numDigit                        // at least one integer digit
	numPeriod                       // decimal point
	numFracDigit                    // at least one fraction digit
	numExponent                     // exponent marker 'e' or 'E'
	numExpSign                      // sign after the exponent marker
	numExpNeg                       // the exponent sign was '-'
	numExpDigit                     // at least one exponent digit
)

// maxExpDigits bounds the magnitude of an accumulated exponent. Any larger
// exponent already overflows or underflows a float64.
const maxExpDigits = 1_000_000

// A numberAcc accumulates the digits of a number one byte at a time.
//
// Integers accumulate in u (unsigned) or i (signed, as a non-positive value so
// that math.MinInt64 is representable). When the number acquires a fraction or
// exponent, or an integer digit would overflow, the accumulator switches to
// F64 and collects the decimal digits with a power-of-ten adjustment, which
// are converted with correct rounding when the number ends.
type numberAcc struct {
	kind  NumberKind
	flags numFlag
	u     uint64
	i     int64

	digits []byte // decimal significand digits (F64), reused between numbers
	scale  int    // power of ten applied to digits by fraction digits
	exp    int    // explicit exponent magnitude
}

// reset prepares a for a new number.
func (a *numberAcc) reset() { *a = numberAcc{digits: a.digits[:0]} }

func (a *numberAcc) has(f numFlag) bool { return a.flags&f != 0 }

// negative starts a signed number.
func (a *numberAcc) negative() {
	a.reset()
	a.kind = I64
	a.flags = numSign
}

// digit accumulates the decimal digit d.
func (a *numberAcc) digit(d byte) error {
	n := uint64(d - '0')
	if n > 9 {
		return fmt.Errorf("invalid digit %q", d)
	}
	if a.has(numExponent) {
		a.flags |= numExpDigit
		if a.exp < maxExpDigits {
			a.exp = a.exp*10 + int(n)
		}
		return nil
	}
	if a.has(numPeriod) {
		a.flags |= numFracDigit
	} else {
		a.flags |= numDigit
	}

	switch a.kind {
	case U64:
		if a.u <= (math.MaxUint64-n)/10 {
			a.u = a.u*10 + n
			return nil
		}
		a.promote()
	case I64:
		if a.i >= (math.MinInt64+int64(n))/10 {
			a.i = a.i*10 - int64(n)
			return nil
		}
		a.promote()
	}
	a.mantDigit(n)
	return nil
}

// mantDigit adds n to the float significand.
func (a *numberAcc) mantDigit(n uint64) {
	a.digits = append(a.digits, '0'+byte(n))
	if a.has(numPeriod) {
		a.scale--
	}
}

// promote converts an integer accumulation to a float accumulation.
func (a *numberAcc) promote() {
	switch a.kind {
	case U64:
		a.digits = strconv.AppendUint(a.digits[:0], a.u, 10)
	case I64:
		a.digits = strconv.AppendUint(a.digits[:0], uint64(-(a.i+1))+1, 10)
	}
	a.kind = F64
	a.u, a.i = 0, 0
}

// period accepts a decimal point.
func (a *numberAcc) period() error {
	switch {
	case a.has(numPeriod):
		return errors.New("extra decimal point in number")
	case a.has(numExponent):
		return errors.New("decimal point in exponent")
	case !a.has(numDigit):
		return errors.New("decimal point without leading digit")
	}
	a.flags |= numPeriod
	if a.kind != F64 {
		a.promote()
	}
	return nil
}

// exponent accepts an exponent marker.
func (a *numberAcc) exponent() error {
	switch {
	case a.has(numExponent):
		return errors.New("extra exponent in number")
	case !a.has(numDigit):
		return errors.New("exponent without leading digit")
	case a.has(numPeriod) && !a.has(numFracDigit):
		return errors.New("exponent without fraction digit")
	}
	a.flags |= numExponent
	if a.kind != F64 {
		a.promote()
	}
	return nil
}

// sign accepts '+' or '-' immediately following an exponent marker.
func (a *numberAcc) sign(ch byte) error {
	if !a.has(numExponent) || a.has(numExpSign|numExpDigit) {
		return fmt.Errorf("unexpected %q in number", ch)
	}
	a.flags |= numExpSign
	if ch == '-' {
		a.flags |= numExpNeg
	}
	return nil
}

// finish reports the completed number, or an error if the accumulated text
// is not a complete number.
func (a *numberAcc) finish() (Number, error) {
	switch {
	case !a.has(numDigit):
		return Number{}, errors.New("number has no digits")
	case a.has(numPeriod) && !a.has(numFracDigit):
		return Number{}, errors.New("number has no fraction digits")
	case a.has(numExponent) && !a.has(numExpDigit):
		return Number{}, errors.New("number has no exponent digits")
	}
	switch a.kind {
	case U64:
		return Uint(a.u), nil
	case I64:
		return Int(a.i), nil
	}

	e := a.scale
	if a.has(numExpNeg) {
		e -= a.exp
	} else {
		e += a.exp
	}
	text := append(a.digits, 'e')
	text = strconv.AppendInt(text, int64(e), 10)
	a.digits = text[:0]

	// The conversion reports a range error for both overflow and underflow;
	// only overflow is an error here, and underflow rounds to zero.
	f, err := mem.ParseFloat(mem.B(text), 64)
	if math.IsInf(f, 0) {
		return Number{}, fmt.Errorf("number out of range: %w", ErrMaxSize)
	} else if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Number{}, fmt.Errorf("invalid number: %w", err)
	}
	if a.has(numSign) {
		f = -f
	}
	return Float(f), nil
}
