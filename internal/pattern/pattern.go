// This file is part of docopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package pattern implements the docopt pattern tree: the leaf and branch
// node kinds a usage line compiles into, plus the structural-equality and
// flattening operations the normalization and matching passes need.
//
// Matching itself lives in internal/matcher, which type-switches over these
// node kinds rather than dispatching through a virtual method: a closed sum
// type fits a Go rewrite better than the reference implementation's
// polymorphism.
package pattern

import (
	"strconv"

	"github.com/dgryski/docopt/internal/value"
)

// Kind identifies the three leaf varieties.
type Kind int

// Leaf kinds.
const (
	CommandKind Kind = iota
	ArgumentKind
	OptionKind
)

func (k Kind) String() string {
	switch k {
	case CommandKind:
		return "Command"
	case ArgumentKind:
		return "Argument"
	case OptionKind:
		return "Option"
	default:
		return "Unknown"
	}
}

// Node is any pattern tree element, leaf or branch.
type Node interface {
	// Flatten returns every leaf reachable from this node whose Kind is in
	// kinds (or every leaf, if kinds is empty), in tree order.
	Flatten(kinds ...Kind) []*Leaf
	// Children returns this node's child nodes, or nil for a leaf.
	Children() []Node
	// SetChildren replaces this node's children in place. It panics on a
	// Leaf: leaves have no children.
	SetChildren(children []Node)
	// Equal reports structural equality: same node kind and, recursively,
	// equal children (branches) or equal declared shape (leaves). Runtime
	// captured values are not part of identity.
	Equal(other Node) bool
	// Hash is a fast pre-filter for Equal, not a substitute for it — see
	// DESIGN.md's "equality-by-hash" decision.
	Hash() uint64
	String() string
}

// Leaf is a Command, Argument, or Option node.
type Leaf struct {
	Kind Kind

	// Name holds the Command literal or the Argument's <angle>/UPPER name.
	// Unused for Option, whose name is derived from Short/Long.
	Name string

	// Short and Long hold an Option's dash forms ("-v", "--verbose"),
	// dashes included — DisplayName returns one of these directly as the
	// result map key. Unused for Command/Argument.
	Short string
	Long  string

	// ArgCount is 0 or 1, meaningful only for Option.
	ArgCount int

	Val *value.Value
}

// NewCommand returns a Command leaf with the given initial truthy value.
func NewCommand(name string, val *value.Value) *Leaf {
	return &Leaf{Kind: CommandKind, Name: name, Val: val}
}

// NewArgument returns an Argument leaf.
func NewArgument(name string, val *value.Value) *Leaf {
	return &Leaf{Kind: ArgumentKind, Name: name, Val: val}
}

// NewOption returns an Option leaf.
func NewOption(short, long string, argCount int, val *value.Value) *Leaf {
	return &Leaf{Kind: OptionKind, Short: short, Long: long, ArgCount: argCount, Val: val}
}

// DisplayName returns the key used for the result map: the long form if
// present, else the short form, else Name for Command/Argument leaves.
func (l *Leaf) DisplayName() string {
	if l.Kind == OptionKind {
		if l.Long != "" {
			return l.Long
		}
		return l.Short
	}
	return l.Name
}

// Flatten returns []*Leaf{l} if l.Kind is in kinds (or kinds is empty).
func (l *Leaf) Flatten(kinds ...Kind) []*Leaf {
	if len(kinds) == 0 {
		return []*Leaf{l}
	}
	for _, k := range kinds {
		if l.Kind == k {
			return []*Leaf{l}
		}
	}
	return nil
}

// Children always returns nil for a leaf.
func (l *Leaf) Children() []Node { return nil }

// SetChildren panics: a leaf has no children.
func (l *Leaf) SetChildren([]Node) { panic("pattern: SetChildren called on a Leaf") }

// Equal compares declared shape, not captured value, per spec.md's
// identity invariant (structurally equal subtrees become one owned node).
func (l *Leaf) Equal(other Node) bool {
	o, ok := other.(*Leaf)
	if !ok || o.Kind != l.Kind {
		return false
	}
	switch l.Kind {
	case OptionKind:
		return l.Short == o.Short && l.Long == o.Long && l.ArgCount == o.ArgCount
	default:
		return l.Name == o.Name
	}
}

// Hash is a fast pre-filter for Equal.
func (l *Leaf) Hash() uint64 {
	h := fnvOffset
	mix := func(s string) {
		for i := 0; i < len(s); i++ {
			h ^= uint64(s[i])
			h *= fnvPrime
		}
		h ^= 0xff
		h *= fnvPrime
	}
	mix(l.Kind.String())
	switch l.Kind {
	case OptionKind:
		mix(l.Short)
		mix(l.Long)
		mix(strconv.Itoa(l.ArgCount))
	default:
		mix(l.Name)
	}
	return h
}

func (l *Leaf) String() string {
	switch l.Kind {
	case OptionKind:
		return "Option(" + l.Short + ", " + l.Long + ")"
	case CommandKind:
		return "Command(" + l.Name + ")"
	default:
		return "Argument(" + l.Name + ")"
	}
}

const (
	fnvOffset uint64 = 14695981039346656037
	fnvPrime  uint64 = 1099511628211
)
