/******************************************************************************\
* The Ember Language                                                          *
*                                                                              *
* Copyright 2024-2026 The Ember Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                *
\******************************************************************************/

package bytecode

import (
	"strconv"

	"github.com/emberlang/ember/pkg/object"
)

// ValueKind identifies which variant of the Value tagged union is populated.
type ValueKind int

const (
	ValueBool ValueKind = iota
	ValueNone
	ValueNum
	ValueObj
)

// Value is an Ember runtime value: a tagged union of bool, none, double and
// heap-object reference. The zero Value is Bool(false); use the
// constructors below to build any particular variant.
type Value struct {
	kind ValueKind
	b    bool
	n    float64
	o    object.Object
}

// Bool builds a Value holding b.
func Bool(b bool) Value { return Value{kind: ValueBool, b: b} }

// None builds the "none" Value.
func None() Value { return Value{kind: ValueNone} }

// Num builds a Value holding the float64 n.
func Num(n float64) Value { return Value{kind: ValueNum, n: n} }

// Obj builds a Value holding a non-owning reference to a heap Object. The
// Object's lifetime is owned by the VM's Heap, not by this Value.
func Obj(o object.Object) Value { return Value{kind: ValueObj, o: o} }

// Kind reports which variant v holds.
func (v Value) Kind() ValueKind { return v.kind }

// IsBool reports whether v holds a bool.
func (v Value) IsBool() bool { return v.kind == ValueBool }

// IsNone reports whether v holds none.
func (v Value) IsNone() bool { return v.kind == ValueNone }

// IsNum reports whether v holds a double.
func (v Value) IsNum() bool { return v.kind == ValueNum }

// IsObj reports whether v holds a heap-object reference.
func (v Value) IsObj() bool { return v.kind == ValueObj }

// IsString reports whether v holds a reference to a String object.
func (v Value) IsString() bool {
	if v.kind != ValueObj {
		return false
	}
	_, ok := v.o.(*object.String)
	return ok
}

// AsBool returns v's bool payload. Only meaningful if IsBool(v).
func (v Value) AsBool() bool { return v.b }

// AsNum returns v's double payload. Only meaningful if IsNum(v).
func (v Value) AsNum() float64 { return v.n }

// AsObj returns v's Object reference. Only meaningful if IsObj(v).
func (v Value) AsObj() object.Object { return v.o }

// AsString returns v's underlying String object. Panics if !IsString(v); the
// compiler and VM are expected to have already checked that.
func (v Value) AsString() *object.String { return v.o.(*object.String) }

// IsFalsey reports whether v is "falsey": none or Bool(false). Every other
// value, including Num(0) and the empty string, is truthy.
func (v Value) IsFalsey() bool {
	return v.kind == ValueNone || (v.kind == ValueBool && !v.b)
}

// Equals implements Ember's equality: cross-variant comparisons are always
// false; bools and doubles compare by value (so NaN != NaN, per IEEE-754);
// objects compare by identity, which for Strings is equivalent to structural
// equality because all Strings are interned.
func Equals(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case ValueBool:
		return a.b == b.b
	case ValueNone:
		return true
	case ValueNum:
		return a.n == b.n
	case ValueObj:
		return a.o == b.o
	default:
		return false
	}
}

// String formats v the way OP_PRINT does: "true"/"false" for bools, "none"
// for none, a shortest-roundtrip decimal for numbers, and the raw bytes for
// strings.
func (v Value) String() string {
	switch v.kind {
	case ValueBool:
		if v.b {
			return "true"
		}
		return "false"
	case ValueNone:
		return "none"
	case ValueNum:
		return strconv.FormatFloat(v.n, 'g', -1, 64)
	case ValueObj:
		if s, ok := v.o.(*object.String); ok {
			return s.Chars
		}
		return "<object>"
	default:
		return "<invalid value>"
	}
}
