// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jval

import "fmt"

// Type is the type of a JSON value.
type Type byte

// Constants defining the valid Type values. The zero value is TypeNull.
const (
	TypeNull   Type = iota // null
	TypeObject             // object: { ... }
	TypeArray              // array: [ ... ]
	TypeString             // quoted string
	TypeBool               // true or false
	TypeNumber             // number
)

var typeStr = [...]string{
	TypeNull:   "null",
	TypeObject: "object",
	TypeArray:  "array",
	TypeString: "string",
	TypeBool:   "bool",
	TypeNumber: "number",
}

func (t Type) String() string {
	if int(t) >= len(typeStr) {
		return "invalid"
	}
	return typeStr[t]
}

// Mode selects how a value is transferred into a container.
type Mode byte

const (
	// Copy stores a deep copy of the value; the caller keeps the original.
	Copy Mode = iota

	// Move transfers ownership of the value to the container; the caller's
	// value is left as null.
	Move
)

// A Value is an arbitrary JSON value. The zero value is null.
//
// A Value owns its string, array, or object contents. Assigning a Value
// shares those contents, so containers take values either by Copy, which
// clones them, or by Move, which leaves the source null. Use Take to move a
// value out of a variable explicitly.
type Value struct {
	typ Type
	b   bool
	num Number
	str Text
	arr *Array
	obj *Object
}

// Bool returns a Boolean value.
func Bool(b bool) Value { return Value{typ: TypeBool, b: b} }

// NumberValue returns a number value.
func NumberValue(n Number) Value { return Value{typ: TypeNumber, num: n} }

// String returns a string value holding a copy of s.
func String(s string) (Value, error) {
	t, err := NewText(s)
	if err != nil {
		return Value{}, err
	}
	return Value{typ: TypeString, str: t}, nil
}

// TextValue returns a string value that takes ownership of t, leaving t
// empty.
func TextValue(t *Text) Value { return Value{typ: TypeString, str: t.Take()} }

// ObjectValue returns an object value that takes ownership of o. If o == nil,
// a new empty object is allocated.
func ObjectValue(o *Object) Value {
	if o == nil {
		o = new(Object)
	}
	return Value{typ: TypeObject, obj: o}
}

// ArrayValue returns an array value that takes ownership of a. If a == nil, a
// new empty array is allocated.
func ArrayValue(a *Array) Value {
	if a == nil {
		a = new(Array)
	}
	return Value{typ: TypeArray, arr: a}
}

// Type reports the type of v.
func (v *Value) Type() Type { return v.typ }

// IsNull reports whether v is null.
func (v *Value) IsNull() bool { return v.typ == TypeNull }

// Bool reports the value of a Boolean, and whether v is a Boolean.
func (v *Value) Bool() (bool, bool) { return v.b, v.typ == TypeBool }

// Number reports the value of a number, and whether v is a number.
func (v *Value) Number() (Number, bool) { return v.num, v.typ == TypeNumber }

// Text returns the contents of a string value, or nil if v is not a string.
func (v *Value) Text() *Text {
	if v.typ != TypeString {
		return nil
	}
	return &v.str
}

// Str returns a copy of the contents of a string value, or "" if v is not a
// string.
func (v *Value) Str() string {
	if v.typ != TypeString {
		return ""
	}
	return v.str.String()
}

// Array returns the contents of an array value, or nil.
func (v *Value) Array() *Array {
	if v.typ != TypeArray {
		return nil
	}
	return v.arr
}

// Object returns the contents of an object value, or nil.
func (v *Value) Object() *Object {
	if v.typ != TypeObject {
		return nil
	}
	return v.obj
}

// Copy returns a deep copy of v. If the copy fails, any partial copy is
// released and v is not modified.
func (v *Value) Copy() (Value, error) {
	if v == nil {
		return Value{}, ErrNullPointer
	}
	switch v.typ {
	case TypeObject:
		o, err := v.obj.Copy()
		if err != nil {
			return Value{}, err
		}
		return Value{typ: TypeObject, obj: o}, nil
	case TypeArray:
		a, err := v.arr.Copy()
		if err != nil {
			return Value{}, err
		}
		return Value{typ: TypeArray, arr: a}, nil
	case TypeString:
		t, err := v.str.Copy()
		if err != nil {
			return Value{}, err
		}
		return Value{typ: TypeString, str: t}, nil
	case TypeBool, TypeNumber, TypeNull:
		return *v, nil
	default:
		return Value{}, fmt.Errorf("copy %v: %w", v.typ, ErrInvalidArgument)
	}
}

// Take transfers ownership of v to the caller, leaving v null.
func (v *Value) Take() Value {
	out := *v
	*v = Value{}
	return out
}

// Release recursively discards the contents of v, leaving it null.
func (v *Value) Release() {
	switch v.typ {
	case TypeObject:
		v.obj.Release()
	case TypeArray:
		v.arr.Release()
	case TypeString:
		v.str.Release()
	}
	*v = Value{}
}

// transfer returns the value to store in a container for v under mode m.
func transfer(v *Value, m Mode) (Value, error) {
	if v == nil {
		return Value{}, ErrNullPointer
	}
	switch m {
	case Copy:
		return v.Copy()
	case Move:
		return v.Take(), nil
	default:
		return Value{}, fmt.Errorf("transfer mode %d: %w", m, ErrInvalidArgument)
	}
}

// String returns a brief human-readable summary of v.
func (v Value) String() string {
	switch v.typ {
	case TypeObject:
		return fmt.Sprintf("Object(len=%d)", v.obj.Len())
	case TypeArray:
		return fmt.Sprintf("Array(len=%d)", v.arr.Len())
	case TypeString:
		return fmt.Sprintf("String(%q)", v.str.String())
	case TypeBool:
		return fmt.Sprintf("Bool(%v)", v.b)
	case TypeNumber:
		return fmt.Sprintf("Number(%v %s)", v.num.kind, v.num)
	}
	return "Null"
}
