// This file is part of docopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package value implements the tagged-union result type docopt hands back
// for every declared name: empty, bool, integer, string, or list of string.
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind int

// Value kinds.
const (
	Empty Kind = iota
	Bool
	Int
	Str
	List
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case Bool:
		return "Bool"
	case Int:
		return "Int"
	case Str:
		return "Str"
	case List:
		return "List"
	default:
		return "Unknown"
	}
}

// Value is a tagged union over the four result shapes the docopt language
// produces, plus Empty for "unset scalar option with no default".
type Value struct {
	kind Kind
	b    bool
	i    int64
	s    string
	l    []string
}

// IllegalCastError is raised when an accessor is called against the wrong Kind.
type IllegalCastError struct {
	Expected Kind
	Actual   Kind
}

func (e *IllegalCastError) Error() string {
	return fmt.Sprintf("illegal cast: expected %s, got %s", e.Expected, e.Actual)
}

// NonNumericError is raised by AsInt when a Str value isn't a base-10 integer.
type NonNumericError struct {
	Value string
}

func (e *NonNumericError) Error() string {
	return fmt.Sprintf("value %q is not numeric", e.Value)
}

// NewEmpty returns the Empty value, used for scalar options with no default
// that were never supplied on the command line.
func NewEmpty() *Value { return &Value{kind: Empty} }

// NewBool wraps a bool, used for no-arg options and their Int-counter promotion base case.
func NewBool(b bool) *Value { return &Value{kind: Bool, b: b} }

// NewInt wraps an int64, used for command/option occurrence counters.
func NewInt(i int64) *Value { return &Value{kind: Int, i: i} }

// NewStr wraps a string, used for scalar positionals and options with an argument.
func NewStr(s string) *Value { return &Value{kind: Str, s: s} }

// NewList wraps a []string, used for repeated positionals and repeated
// argument-taking options. The slice is copied so callers can't mutate it
// out from under a shared Value after normalization unification.
func NewList(l []string) *Value {
	cp := make([]string, len(l))
	copy(cp, l)
	return &Value{kind: List, l: cp}
}

// Kind reports which variant v holds.
func (v *Value) Kind() Kind { return v.kind }

// Bool returns the wrapped bool, or an IllegalCastError if v is not a Bool.
func (v *Value) Bool() (bool, error) {
	if v.kind != Bool {
		return false, &IllegalCastError{Expected: Bool, Actual: v.kind}
	}
	return v.b, nil
}

// Int returns the wrapped int64, or an IllegalCastError if v is not an Int.
func (v *Value) Int() (int64, error) {
	if v.kind != Int {
		return 0, &IllegalCastError{Expected: Int, Actual: v.kind}
	}
	return v.i, nil
}

// Str returns the wrapped string, or an IllegalCastError if v is not a Str.
func (v *Value) Str() (string, error) {
	if v.kind != Str {
		return "", &IllegalCastError{Expected: Str, Actual: v.kind}
	}
	return v.s, nil
}

// List returns the wrapped []string, or an IllegalCastError if v is not a List.
func (v *Value) List() ([]string, error) {
	if v.kind != List {
		return nil, &IllegalCastError{Expected: List, Actual: v.kind}
	}
	cp := make([]string, len(v.l))
	copy(cp, v.l)
	return cp, nil
}

// AsInt additionally accepts a Str variant, parsing it as a base-10 signed
// integer. It fails with NonNumericError if the full string isn't consumed.
func (v *Value) AsInt() (int64, error) {
	if v.kind == Int {
		return v.i, nil
	}
	if v.kind == Str {
		n, err := strconv.ParseInt(strings.TrimSpace(v.s), 10, 64)
		if err != nil {
			return 0, &NonNumericError{Value: v.s}
		}
		return n, nil
	}
	return 0, &IllegalCastError{Expected: Int, Actual: v.kind}
}

// Truthy reports whether v is truthy in matcher bookkeeping: Empty is
// falsy, every other kind is truthy regardless of its payload (an
// Int(0) counter or an empty List are still "present").
func (v *Value) Truthy() bool {
	return v.kind != Empty
}

// Equal reports deep equality between v and other, treating two Empty
// values as equal regardless of any unused payload.
func (v *Value) Equal(other *Value) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case Empty:
		return true
	case Bool:
		return v.b == other.b
	case Int:
		return v.i == other.i
	case Str:
		return v.s == other.s
	case List:
		if len(v.l) != len(other.l) {
			return false
		}
		for i := range v.l {
			if v.l[i] != other.l[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Hash returns a stable, kind-dependent hash suitable for use as a fast
// pre-filter bucket key ahead of true structural equality (Equal). It is
// intentionally not used as identity on its own: see
// internal/normalize.FixIdentities.
func (v *Value) Hash() uint64 {
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211
	h := uint64(offset64)
	mix := func(b byte) {
		h ^= uint64(b)
		h *= prime64
	}
	mix(byte(v.kind))
	switch v.kind {
	case Bool:
		if v.b {
			mix(1)
		}
	case Int:
		for i := 0; i < 8; i++ {
			mix(byte(v.i >> (8 * i)))
		}
	case Str:
		for i := 0; i < len(v.s); i++ {
			mix(v.s[i])
		}
	case List:
		for _, s := range v.l {
			for i := 0; i < len(s); i++ {
				mix(s[i])
			}
			mix(0)
		}
	}
	return h
}

func (v *Value) String() string {
	switch v.kind {
	case Empty:
		return "<empty>"
	case Bool:
		return fmt.Sprintf("%v", v.b)
	case Int:
		return fmt.Sprintf("%d", v.i)
	case Str:
		return fmt.Sprintf("%q", v.s)
	case List:
		return fmt.Sprintf("%v", v.l)
	default:
		return "<invalid>"
	}
}
