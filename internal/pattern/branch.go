// This file is part of docopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package pattern

// branch is the shared shape of every multi-child node: an ordered list of
// children. The five branch kinds below embed it and differ only in how
// internal/matcher walks them.
type branch struct {
	children []Node
}

func (b *branch) Children() []Node { return b.children }

func (b *branch) SetChildren(children []Node) { b.children = children }

func (b *branch) flatten(kinds ...Kind) []*Leaf {
	var out []*Leaf
	for _, c := range b.children {
		out = append(out, c.Flatten(kinds...)...)
	}
	return out
}

func equalChildren(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func hashChildren(prefix string, children []Node) uint64 {
	h := fnvOffset
	mixByte := func(c byte) {
		h ^= uint64(c)
		h *= fnvPrime
	}
	for i := 0; i < len(prefix); i++ {
		mixByte(prefix[i])
	}
	for _, c := range children {
		ch := c.Hash()
		for i := 0; i < 8; i++ {
			mixByte(byte(ch >> (8 * i)))
		}
	}
	return h
}

// Required matches only if every child matches, in order.
type Required struct{ branch }

// NewRequired wraps children in a Required branch.
func NewRequired(children ...Node) *Required { return &Required{branch{children}} }

func (r *Required) Flatten(kinds ...Kind) []*Leaf { return r.flatten(kinds...) }
func (r *Required) Equal(other Node) bool {
	o, ok := other.(*Required)
	return ok && equalChildren(r.children, o.children)
}
func (r *Required) Hash() uint64   { return hashChildren("Required", r.children) }
func (r *Required) String() string { return nodeString("Required", r.children) }

// Optional matches each child independently and always succeeds.
type Optional struct{ branch }

// NewOptional wraps children in an Optional branch.
func NewOptional(children ...Node) *Optional { return &Optional{branch{children}} }

func (o *Optional) Flatten(kinds ...Kind) []*Leaf { return o.flatten(kinds...) }
func (o *Optional) Equal(other Node) bool {
	x, ok := other.(*Optional)
	return ok && equalChildren(o.children, x.children)
}
func (o *Optional) Hash() uint64   { return hashChildren("Optional", o.children) }
func (o *Optional) String() string { return nodeString("Optional", o.children) }

// OptionsShortcut is a placeholder for the literal word "options" in a
// usage line. It starts empty; internal/usage fills it with every option
// descriptor not already named elsewhere in the usage line (spec.md §4.8),
// before normalization runs. It behaves exactly like Optional during
// matching.
type OptionsShortcut struct{ branch }

// NewOptionsShortcut returns an empty shortcut placeholder.
func NewOptionsShortcut() *OptionsShortcut { return &OptionsShortcut{} }

func (o *OptionsShortcut) Flatten(kinds ...Kind) []*Leaf { return o.flatten(kinds...) }
func (o *OptionsShortcut) Equal(other Node) bool {
	x, ok := other.(*OptionsShortcut)
	return ok && equalChildren(o.children, x.children)
}
func (o *OptionsShortcut) Hash() uint64   { return hashChildren("OptionsShortcut", o.children) }
func (o *OptionsShortcut) String() string { return nodeString("OptionsShortcut", o.children) }

// OneOrMore repeats its single child one or more times.
type OneOrMore struct{ branch }

// NewOneOrMore wraps a single child. Panics if child is nil: a OneOrMore
// with no child is a grammar-construction bug, not a runtime condition.
func NewOneOrMore(child Node) *OneOrMore {
	if child == nil {
		panic("pattern: OneOrMore requires exactly one child")
	}
	return &OneOrMore{branch{[]Node{child}}}
}

// Child returns the single repeated node.
func (o *OneOrMore) Child() Node { return o.children[0] }

func (o *OneOrMore) Flatten(kinds ...Kind) []*Leaf { return o.flatten(kinds...) }
func (o *OneOrMore) Equal(other Node) bool {
	x, ok := other.(*OneOrMore)
	return ok && equalChildren(o.children, x.children)
}
func (o *OneOrMore) Hash() uint64   { return hashChildren("OneOrMore", o.children) }
func (o *OneOrMore) String() string { return nodeString("OneOrMore", o.children) }

// Either matches exactly one alternative; internal/matcher breaks ties by
// leftover minimization (fewest unconsumed argv tokens), earliest
// declaration first — see its doc comment for the full contract.
type Either struct{ branch }

// NewEither wraps alternatives in an Either branch.
func NewEither(alternatives ...Node) *Either { return &Either{branch{alternatives}} }

func (e *Either) Flatten(kinds ...Kind) []*Leaf { return e.flatten(kinds...) }
func (e *Either) Equal(other Node) bool {
	x, ok := other.(*Either)
	return ok && equalChildren(e.children, x.children)
}
func (e *Either) Hash() uint64   { return hashChildren("Either", e.children) }
func (e *Either) String() string { return nodeString("Either", e.children) }

func nodeString(name string, children []Node) string {
	s := name + "("
	for i, c := range children {
		if i > 0 {
			s += ", "
		}
		s += c.String()
	}
	return s + ")"
}
