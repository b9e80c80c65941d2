// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jval

import (
	"errors"
	"fmt"

	"github.com/creachadair/jval/internal/escape"
	"github.com/creachadair/mds/stack"
	"go4.org/mem"
)

// DefaultMaxDepth is the default limit on the nesting depth of objects and
// arrays accepted by a Parser.
const DefaultMaxDepth = 10000

var errFinished = fmt.Errorf("parser is finished: %w", ErrIllegalOperation)

// A Parser is an incremental JSON parser. The input is delivered in chunks of
// any size by calls to Digest, and the resulting value is recovered by Finish.
// Tokens may be split across chunk boundaries at any point.
//
// A Parser is single-use: after Finish, Discard, or an error, all further
// calls report ErrIllegalOperation.
type Parser struct {
	states stack.Stack[State] // enclosing states; cur is the innermost
	marks  stack.Stack[int]   // offset in temps of each open container
	keys   []Text             // object keys awaiting their containers
	temps  Array              // values awaiting their containers
	root   Value
	ok     bool // root is valid

	cur    State
	flags  parseFlag
	num    numberAcc
	lit    string // literal being matched
	litPos int    // bytes of lit matched so far

	maxDepth int
	trace    func(Trace)

	offset int
	loc    LineCol
	done   bool
}

// NewParser constructs a new Parser awaiting input.
func NewParser() *Parser {
	p := &Parser{maxDepth: DefaultMaxDepth, loc: LineCol{Line: 1}}
	p.states.Push(Idle)
	return p
}

// SetMaxDepth sets the maximum nesting depth of objects and arrays. Input
// that exceeds this depth is rejected with a syntax error that wraps
// ErrMaxSize. If n <= 0, DefaultMaxDepth is used.
func (p *Parser) SetMaxDepth(n int) {
	if n <= 0 {
		n = DefaultMaxDepth
	}
	p.maxDepth = n
}

// SetTrace installs f to be called on every state transition of p.
// If f == nil, tracing is disabled.
func (p *Parser) SetTrace(f func(Trace)) { p.trace = f }

// Offset reports the number of input bytes successfully consumed by p.
func (p *Parser) Offset() int { return p.offset }

// Digest consumes the next chunk of input.
func (p *Parser) Digest(chunk []byte) error { return p.digest(mem.B(chunk)) }

// DigestString consumes the next chunk of input from a string.
func (p *Parser) DigestString(chunk string) error { return p.digest(mem.S(chunk)) }

func (p *Parser) digest(chunk mem.RO) error {
	if p.done {
		return errFinished
	}
	p.cur, _ = p.states.Pop()
	for i := 0; i < chunk.Len(); i++ {
		ch := chunk.At(i)
		if err := p.step(ch); err != nil {
			return p.abort(err)
		}
		p.offset++
		p.loc = p.loc.advance(ch)
	}
	p.states.Push(p.cur)
	return nil
}

// Finish reports the end of input and returns the complete value. It reports
// a *SyntaxError if the input is empty or incomplete.
func (p *Parser) Finish() (Value, error) {
	if p.done {
		return Value{}, errFinished
	}
	p.cur, _ = p.states.Pop()
	if p.cur.isNumber() {
		if err := p.endNumber(0); err != nil {
			return Value{}, p.abort(err)
		}
	}
	if p.cur != ExpectEndOrComma || p.states.Len() != 1 || p.parent() != Idle ||
		p.flags != 0 || p.temps.Len() != 0 || len(p.keys) != 0 || !p.ok {
		return Value{}, p.abort(p.syntaxErr(0, nil, "unexpected end of input in %v", p.cur))
	}
	v := p.root.Take()
	p.release()
	p.done = true
	return v, nil
}

// Discard releases any partial value held by p. After Discard, p can no
// longer be used.
func (p *Parser) Discard() {
	p.release()
	p.done = true
}

func (p *Parser) release() {
	p.root.Release()
	p.temps.Release()
	for i := range p.keys {
		p.keys[i].Release()
	}
	p.keys = nil
	p.states = stack.Stack[State]{}
	p.marks = stack.Stack[int]{}
	p.ok = false
}

// abort discards the state of p after err.
func (p *Parser) abort(err error) error {
	var serr *SyntaxError
	if errors.As(err, &serr) {
		p.enter(InvalidCharacter, serr.Char)
	}
	p.release()
	p.done = true
	return err
}

func (p *Parser) syntaxErr(ch byte, cause error, msg string, args ...any) error {
	return &SyntaxError{
		Offset:   p.offset,
		Location: p.loc,
		Char:     ch,
		State:    p.cur,
		Message:  fmt.Sprintf(msg, args...),
		err:      cause,
	}
}

// enter makes s the current state.
func (p *Parser) enter(s State, ch byte) {
	if p.trace != nil {
		p.trace(Trace{Offset: p.offset, Char: ch, From: p.cur, To: s, Depth: p.marks.Len()})
	}
	p.cur = s
}

// push saves the current state and enters s.
func (p *Parser) push(s State, ch byte) {
	p.states.Push(p.cur)
	p.enter(s, ch)
}

// pop restores the most recently saved state.
func (p *Parser) pop(ch byte) {
	s, ok := p.states.Pop()
	if !ok {
		s = InvalidCharacter
	}
	p.enter(s, ch)
}

// parent reports the most recently saved state without removing it.
func (p *Parser) parent() State {
	s, ok := p.states.Pop()
	if !ok {
		return InvalidCharacter
	}
	p.states.Push(s)
	return s
}

func (p *Parser) step(ch byte) error {
	switch p.cur {
	case StringState, KeyState:
		return p.stepText(ch)
	case Escape:
		return p.stepEscape(ch)
	case Boolean, NullLiteral:
		return p.stepLiteral(ch)
	case IntNumber, UintNumber, FloatNumber:
		if ended, err := p.stepNumber(ch); err != nil || !ended {
			return err
		}
		// The number was ended by ch, which is handled below.
	}
	return p.stepStruct(ch)
}

func (p *Parser) stepText(ch byte) error {
	switch ch {
	case '"':
		if p.cur == KeyState {
			p.pop(ch)
			p.flags |= keyEnd
			return nil
		}
		p.enter(ExpectEndOrComma, ch)
		if p.parent() == Idle {
			v, err := p.temps.Pop()
			if err != nil {
				return err
			}
			p.setRoot(&v)
		}
		return nil
	case '\\':
		p.push(Escape, ch)
		return nil
	}
	return p.appendText(ch)
}

// appendText adds ch to the key or string under construction.
func (p *Parser) appendText(ch byte) error {
	if p.cur == KeyState {
		return p.keys[len(p.keys)-1].AppendByte(ch)
	}
	return p.temps.items[p.temps.n-1].str.AppendByte(ch)
}

func (p *Parser) stepEscape(ch byte) error {
	c, ok := escape.Decode(ch)
	if !ok {
		return p.syntaxErr(ch, nil, "invalid %q after escape", ch)
	}
	p.pop(ch)
	return p.appendText(c)
}

func (p *Parser) stepLiteral(ch byte) error {
	if p.litPos >= len(p.lit) || ch != p.lit[p.litPos] {
		return p.syntaxErr(ch, nil, "invalid %q in constant %q", ch, p.lit)
	}
	p.litPos++
	if p.litPos < len(p.lit) {
		return nil
	}
	var v Value
	if p.cur == Boolean {
		v = Bool(p.lit == "true")
	}
	p.enter(ExpectEndOrComma, ch)
	return p.store(&v)
}

// stepNumber consumes ch as part of a number. It reports true if ch ended the
// number without being consumed.
func (p *Parser) stepNumber(ch byte) (bool, error) {
	var err error
	switch {
	case isDigit(ch):
		err = p.num.digit(ch)
	case ch == '.':
		err = p.num.period()
	case ch == 'e' || ch == 'E':
		err = p.num.exponent()
	case ch == '+' || ch == '-':
		err = p.num.sign(ch)
	case isSpace(ch) || ch == ',' || ch == '}' || ch == ']':
		return true, p.endNumber(ch)
	default:
		return false, p.syntaxErr(ch, nil, "unexpected %q in number", ch)
	}
	if err != nil {
		return false, p.syntaxErr(ch, nil, "%v", err)
	}
	if s := numberState(p.num.kind); s != p.cur {
		p.enter(s, ch)
	}
	return false, nil
}

// endNumber completes the number under construction.
func (p *Parser) endNumber(ch byte) error {
	n, err := p.num.finish()
	if err != nil {
		return p.syntaxErr(ch, err, "%v", err)
	}
	p.enter(ExpectEndOrComma, ch)
	v := NumberValue(n)
	return p.store(&v)
}

// store records a complete scalar value, either as the root or as a pending
// element of the innermost container.
func (p *Parser) store(v *Value) error {
	if p.parent() == Idle {
		p.setRoot(v)
		return nil
	}
	return p.temps.Append(v, Move)
}

func (p *Parser) setRoot(v *Value) {
	p.root = v.Take()
	p.ok = true
}

// stepStruct handles ch outside of any string, number, or constant.
func (p *Parser) stepStruct(ch byte) error {
	if isSpace(ch) {
		return nil
	}
	switch ch {
	case ',':
		if p.cur != ExpectEndOrComma || p.parent() == Idle {
			return p.syntaxErr(ch, nil, "unexpected comma")
		}
		p.pop(ch)
		p.flags |= trailingComma
		return nil

	case ':':
		if p.cur != ObjectState || p.flags != keyEnd {
			return p.syntaxErr(ch, nil, "unexpected colon")
		}
		p.flags = valueStart
		return nil

	case '}', ']':
		return p.closeContainer(ch)

	case '"':
		if p.cur == ObjectState && p.flags&(keyEnd|valueStart) == 0 {
			p.flags = 0
			p.keys = append(p.keys, Text{})
			p.push(KeyState, ch)
			return nil
		}
	}
	if !p.atValue() {
		return p.syntaxErr(ch, nil, "unexpected %q", ch)
	}
	return p.beginValue(ch)
}

// atValue reports whether a value may begin in the current state.
func (p *Parser) atValue() bool {
	switch p.cur {
	case Idle, ArrayState:
		return true
	case ObjectState:
		return p.flags&valueStart != 0
	}
	return false
}

func (p *Parser) beginValue(ch byte) error {
	p.flags = 0
	switch ch {
	case '"':
		v := Value{typ: TypeString}
		if err := p.temps.Append(&v, Move); err != nil {
			return err
		}
		p.push(StringState, ch)
	case '-':
		p.num.negative()
		p.push(IntNumber, ch)
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		p.num.reset()
		p.num.digit(ch)
		p.push(UintNumber, ch)
	case 't', 'f':
		p.beginLiteral(Boolean, ch)
	case 'n':
		p.beginLiteral(NullLiteral, ch)
	case '{', '[':
		return p.openContainer(ch)
	default:
		return p.syntaxErr(ch, nil, "unexpected %q", ch)
	}
	return nil
}

func (p *Parser) beginLiteral(s State, ch byte) {
	switch ch {
	case 't':
		p.lit = "true"
	case 'f':
		p.lit = "false"
	default:
		p.lit = "null"
	}
	p.litPos = 1
	p.push(s, ch)
}

func (p *Parser) openContainer(ch byte) error {
	if p.marks.Len() >= p.maxDepth {
		return p.syntaxErr(ch, ErrMaxSize, "nesting depth exceeds %d", p.maxDepth)
	}
	v, next := ArrayValue(nil), ArrayState
	if ch == '{' {
		v, next = ObjectValue(nil), ObjectState
	}
	p.marks.Push(p.temps.Len())
	if err := p.temps.Append(&v, Move); err != nil {
		return err
	}
	p.push(next, ch)
	return nil
}

func (p *Parser) closeContainer(ch byte) error {
	if p.cur == ExpectEndOrComma {
		p.pop(ch)
	}
	want := ArrayState
	if ch == '}' {
		want = ObjectState
	}
	switch {
	case p.cur != want:
		return p.syntaxErr(ch, nil, "unexpected %q", ch)
	case p.flags&trailingComma != 0:
		return p.syntaxErr(ch, nil, "trailing comma before %q", ch)
	case p.flags&keyEnd != 0:
		return p.syntaxErr(ch, nil, "missing colon after key")
	case p.flags&valueStart != 0:
		return p.syntaxErr(ch, nil, "missing value after colon")
	}

	mark, _ := p.marks.Pop()
	if err := p.collect(mark, ch); err != nil {
		return err
	}
	p.enter(ExpectEndOrComma, ch)
	if p.parent() == Idle {
		v, err := p.temps.Pop()
		if err != nil {
			return err
		}
		p.setRoot(&v)
	}
	return nil
}

// collect moves the pending values above mark, and for an object the
// corresponding pending keys, into the container at mark.
func (p *Parser) collect(mark int, ch byte) error {
	slot := &p.temps.items[mark]
	n := p.temps.n - mark - 1
	switch slot.typ {
	case TypeArray:
		for i := mark + 1; i < p.temps.n; i++ {
			if err := slot.arr.Append(&p.temps.items[i], Move); err != nil {
				return err
			}
		}
	case TypeObject:
		base := len(p.keys) - n
		for i := range n {
			key := &p.keys[base+i]
			if err := slot.obj.Insert(key, &p.temps.items[mark+1+i], Move); errors.Is(err, ErrIllegalOperation) {
				return p.syntaxErr(ch, err, "duplicate key %q", key.String())
			} else if err != nil {
				return err
			}
		}
		p.keys = p.keys[:base]
	}
	p.temps.truncate(mark + 1)
	return nil
}
