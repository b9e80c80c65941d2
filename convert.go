// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jval

import (
	"fmt"
	"maps"
	"slices"
)

// ToValue converts a Go value to a Value. It panics if v cannot be
// converted. The supported types are:
//
//   - nil, which becomes null
//   - bool
//   - string
//   - signed and unsigned integers of any width; non-negative values are
//     unsigned (U64), as the parser would read them
//   - float32 and float64
//   - Number
//   - Value and *Value, which are copied
//   - []any, whose elements must be supported
//   - map[string]any, whose values must be supported; keys are sorted
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Value{}
	case Value:
		return mustValue(t.Copy())
	case *Value:
		return mustValue(t.Copy())
	case bool:
		return Bool(t)
	case string:
		return mustValue(String(t))
	case Number:
		return NumberValue(t)
	case int:
		return intValue(int64(t))
	case int8:
		return intValue(int64(t))
	case int16:
		return intValue(int64(t))
	case int32:
		return intValue(int64(t))
	case int64:
		return intValue(t)
	case uint:
		return NumberValue(Uint(uint64(t)))
	case uint8:
		return NumberValue(Uint(uint64(t)))
	case uint16:
		return NumberValue(Uint(uint64(t)))
	case uint32:
		return NumberValue(Uint(uint64(t)))
	case uint64:
		return NumberValue(Uint(t))
	case float32:
		return NumberValue(Float(float64(t)))
	case float64:
		return NumberValue(Float(t))
	case []any:
		a := new(Array)
		for _, elt := range t {
			ev := ToValue(elt)
			mustOK(a.Append(&ev, Move))
		}
		return ArrayValue(a)
	case map[string]any:
		o := new(Object)
		for _, key := range slices.Sorted(maps.Keys(t)) {
			ev := ToValue(t[key])
			mustOK(o.InsertString(key, &ev, Move))
		}
		return ObjectValue(o)
	default:
		panic(fmt.Sprintf("unsupported value type %T", v))
	}
}

// intValue returns a number for i in the representation the parser would
// choose for its decimal text.
func intValue(i int64) Value {
	if i >= 0 {
		return NumberValue(Uint(uint64(i)))
	}
	return NumberValue(Int(i))
}

func mustValue(v Value, err error) Value {
	mustOK(err)
	return v
}

func mustOK(err error) {
	if err != nil {
		panic(err)
	}
}

// Interface converts v to a plain Go value: nil for null, bool, string,
// uint64, int64, or float64 for the corresponding scalars, []any for arrays,
// and map[string]any for objects.
func (v *Value) Interface() any {
	switch v.typ {
	case TypeBool:
		return v.b
	case TypeString:
		return v.str.String()
	case TypeNumber:
		switch v.num.kind {
		case U64:
			return v.num.u()
		case I64:
			return v.num.i()
		}
		return v.num.f()
	case TypeArray:
		out := make([]any, 0, v.arr.Len())
		for _, elt := range v.arr.All() {
			out = append(out, elt.Interface())
		}
		return out
	case TypeObject:
		out := make(map[string]any, v.obj.Len())
		for key, val := range v.obj.All() {
			out[key.String()] = val.Interface()
		}
		return out
	}
	return nil
}
