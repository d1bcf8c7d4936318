// This file is part of docopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package normalize

import (
	"strings"

	"github.com/dgryski/docopt/internal/pattern"
	"github.com/dgryski/docopt/internal/value"
)

// FixRepeatingArguments promotes the value kind of every leaf that appears
// more than once in some alternative reading of root: Command and no-arg
// Option become a counter (Int); Argument and argument-taking Option
// become a list (List). Must run after FixIdentities so the promotion is
// visible through every occurrence.
func FixRepeatingArguments(root pattern.Node) {
	for _, alt := range transform(root) {
		counts := map[*pattern.Leaf]int{}
		for _, n := range alt {
			if leaf, ok := n.(*pattern.Leaf); ok {
				counts[leaf]++
			}
		}
		for leaf, c := range counts {
			if c > 1 {
				Logger.Printf("fix repeating arguments: promoting %s (seen %d times in one alternative)", leaf.DisplayName(), c)
				promote(leaf)
			}
		}
	}
}

func promote(leaf *pattern.Leaf) {
	switch leaf.Kind {
	case pattern.CommandKind:
		leaf.Val = value.NewInt(0)
	case pattern.ArgumentKind:
		if leaf.Val != nil && leaf.Val.Kind() == value.Str {
			s, _ := leaf.Val.Str()
			leaf.Val = value.NewList(strings.Fields(s))
		} else if leaf.Val == nil || leaf.Val.Kind() != value.List {
			leaf.Val = value.NewList(nil)
		}
	case pattern.OptionKind:
		if leaf.ArgCount > 0 {
			leaf.Val = value.NewList(nil)
		} else {
			leaf.Val = value.NewInt(0)
		}
	}
}

// isBranch reports whether n is one of the five multi-child node kinds
// transform expands.
func isBranch(n pattern.Node) bool {
	switch n.(type) {
	case *pattern.Required, *pattern.Optional, *pattern.OptionsShortcut, *pattern.Either, *pattern.OneOrMore:
		return true
	}
	return false
}

// transform enumerates every top-level alternative reading of root as a
// flat slice of leaves, per spec.md §4.5. Groups are processed
// breadth-first: pick the first group still containing a branch, expand it,
// and push the resulting group(s) back onto the queue; a group with no
// branch left is a finished alternative.
func transform(root pattern.Node) [][]pattern.Node {
	groups := [][]pattern.Node{{root}}
	var result [][]pattern.Node

	for len(groups) > 0 {
		children := groups[0]
		groups = groups[1:]

		idx := -1
		for i, c := range children {
			if isBranch(c) {
				idx = i
				break
			}
		}
		if idx == -1 {
			result = append(result, children)
			continue
		}

		child := children[idx]
		rest := make([]pattern.Node, 0, len(children)-1)
		rest = append(rest, children[:idx]...)
		rest = append(rest, children[idx+1:]...)

		switch t := child.(type) {
		case *pattern.Either:
			for _, alt := range t.Children() {
				group := make([]pattern.Node, 0, len(rest)+1)
				group = append(group, alt)
				group = append(group, rest...)
				groups = append(groups, group)
			}
		case *pattern.OneOrMore:
			ch := t.Child()
			group := make([]pattern.Node, 0, len(rest)+2)
			group = append(group, ch, ch)
			group = append(group, rest...)
			groups = append(groups, group)
		default:
			group := make([]pattern.Node, 0, len(rest)+len(child.Children()))
			group = append(group, child.Children()...)
			group = append(group, rest...)
			groups = append(groups, group)
		}
	}
	return result
}
