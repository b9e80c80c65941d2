// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jval implements an in-memory JSON value model with an incremental
// parser and a pretty-printer.
//
// # Values
//
// A Value holds a JSON null, Boolean, number, string, array, or object. The
// zero Value is null. Strings are stored as a Text, arrays as an Array, and
// objects as an Object, which remembers the insertion order of its keys:
//
//	o := new(jval.Object)
//	v := jval.NumberValue(jval.Uint(1))
//	if err := o.InsertString("a", &v, jval.Move); err != nil {
//	   log.Fatalf("Insert: %v", err)
//	}
//
// Containers take values either by Copy, which stores a deep copy, or by
// Move, which transfers ownership and leaves the caller's value null.
//
// Numbers are tagged with their representation: U64 for unsigned integers,
// I64 for integers with a leading minus sign, and F64 for numbers with a
// fraction or exponent, or integers too large for 64 bits.
//
// # Parsing
//
// The Parser type consumes input in chunks of any size. Tokens may be split
// across chunks at any point, and the result is the same as parsing the
// whole input at once:
//
//	p := jval.NewParser()
//	for _, chunk := range chunks {
//	   if err := p.Digest(chunk); err != nil {
//	      log.Fatalf("Parse failed: %v", err)
//	   }
//	}
//	v, err := p.Finish()
//
// Syntax errors are reported with concrete type *jval.SyntaxError, which
// matches ErrInvalidCharacter with errors.Is. The Parse, ParseReader,
// ParseBytes, and ParseString functions wrap this loop for common inputs.
//
// The parser accepts standard JSON with these restrictions: the only string
// escapes are \n, \t, \r, \", and \; and duplicate object keys are rejected.
//
// # Formatting
//
// A Formatter renders a Value as text, indented by one tab per level by
// default. The JSON method of Value renders compact text.
package jval
