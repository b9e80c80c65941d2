// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jval

// State is the state of a Parser.
type State byte

// Constants defining the valid State values.
const (
	Idle             State = iota // awaiting a root value
	ObjectState                   // inside an object, between members
	KeyState                      // inside an object key
	ArrayState                    // inside an array, between elements
	StringState                   // inside a string value
	IntNumber                     // number with a leading sign
	UintNumber                    // unsigned integer
	FloatNumber                   // number with a fraction, exponent, or overflow
	Boolean                       // inside true or false
	NullLiteral                   // inside null
	Escape                        // after a backslash in a string or key
	ExpectEndOrComma              // after a complete value
	InvalidCharacter              // after a syntax error
)

var stateStr = [...]string{
	Idle:             "idle",
	ObjectState:      "object",
	KeyState:         "key",
	ArrayState:       "array",
	StringState:      "string",
	IntNumber:        "int",
	UintNumber:       "uint",
	FloatNumber:      "float",
	Boolean:          "boolean",
	NullLiteral:      "null",
	Escape:           "escape",
	ExpectEndOrComma: "end or comma",
	InvalidCharacter: "invalid character",
}

func (s State) String() string {
	v := int(s)
	if v >= len(stateStr) {
		return stateStr[InvalidCharacter]
	}
	return stateStr[v]
}

// isNumber reports whether s is one of the number states.
func (s State) isNumber() bool { return s == IntNumber || s == UintNumber || s == FloatNumber }

// numberState returns the parser state for a number of kind k.
func numberState(k NumberKind) State {
	switch k {
	case I64:
		return IntNumber
	case F64:
		return FloatNumber
	}
	return UintNumber
}

// parseFlag records pending punctuation inside a container.
type parseFlag byte

const (
	keyEnd        parseFlag = 1 << iota // a key is complete, awaiting ':'
	valueStart                          // ':' seen, awaiting a value
	trailingComma                       // ',' seen, awaiting an element
)

func isSpace(ch byte) bool { return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' }

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

// A Trace describes one state transition of a Parser.
type Trace struct {
	Offset int   // byte offset of the input that caused the transition
	Char   byte  // the input byte
	From   State // the state before the transition
	To     State // the state after the transition
	Depth  int   // container nesting depth after the transition
}
