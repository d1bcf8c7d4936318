// This file is part of docopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package matcher implements the backtracking match of a normalized
// pattern tree against the flat leaf list the argv parser produced.
//
// Match dispatches on the pattern.Node's concrete kind via a type switch
// rather than a virtual method on the node itself — a closed sum type over
// five branch kinds plus Leaf fits a Go rewrite better than per-kind
// dynamic dispatch.
//
// Either's tie-break is part of this package's observable contract, not an
// implementation detail: among alternatives that match, the one leaving
// the fewest unconsumed argv leaves wins; ties go to the earliest declared
// alternative. A program whose usage line has two alternatives that both
// fully consume argv will always prefer the first one written.
package matcher

import (
	"io"
	"log"

	"github.com/dgryski/docopt/internal/pattern"
	"github.com/dgryski/docopt/internal/value"
)

// Logger traces Either's per-alternative attempts and their leftover
// counts. Silent by default; enable with Logger.SetOutput(os.Stderr).
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Match attempts to match root against left, the flat list of argv-derived
// leaves. On success it returns the leftover (always empty for a fully
// accepted command line) and the collected leaves. On failure left and
// collected are returned unchanged (copy-on-recurse semantics: failed
// branches never mutate the caller's state).
func Match(root pattern.Node, left []*pattern.Leaf) (ok bool, remaining []*pattern.Leaf, collected []*pattern.Leaf) {
	return matchNode(root, left, nil)
}

func matchNode(n pattern.Node, left, collected []*pattern.Leaf) (bool, []*pattern.Leaf, []*pattern.Leaf) {
	switch t := n.(type) {
	case *pattern.Leaf:
		return matchLeaf(t, left, collected)
	case *pattern.Required:
		curLeft, curCollected := left, collected
		for _, c := range t.Children() {
			ok, newLeft, newCollected := matchNode(c, curLeft, curCollected)
			if !ok {
				return false, left, collected
			}
			curLeft, curCollected = newLeft, newCollected
		}
		return true, curLeft, curCollected
	case *pattern.Optional:
		return matchEachIgnoringFailure(t.Children(), left, collected)
	case *pattern.OptionsShortcut:
		return matchEachIgnoringFailure(t.Children(), left, collected)
	case *pattern.OneOrMore:
		return matchOneOrMore(t.Child(), left, collected)
	case *pattern.Either:
		return matchEither(t.Children(), left, collected)
	default:
		return false, left, collected
	}
}

// matchEachIgnoringFailure implements Optional/OptionsShortcut: every
// child is tried in turn against the running state; a failing child is
// simply skipped, a succeeding one commits its partial progress. Always
// succeeds.
func matchEachIgnoringFailure(children []pattern.Node, left, collected []*pattern.Leaf) (bool, []*pattern.Leaf, []*pattern.Leaf) {
	curLeft, curCollected := left, collected
	for _, c := range children {
		if ok, newLeft, newCollected := matchNode(c, curLeft, curCollected); ok {
			curLeft, curCollected = newLeft, newCollected
		}
	}
	return true, curLeft, curCollected
}

func matchOneOrMore(child pattern.Node, left, collected []*pattern.Leaf) (bool, []*pattern.Leaf, []*pattern.Leaf) {
	curLeft, curCollected := left, collected
	times := 0
	for {
		ok, newLeft, newCollected := matchNode(child, curLeft, curCollected)
		if !ok {
			break
		}
		fixedPoint := len(newLeft) == len(curLeft)
		curLeft, curCollected = newLeft, newCollected
		times++
		if fixedPoint {
			break
		}
	}
	if times >= 1 {
		return true, curLeft, curCollected
	}
	return false, left, collected
}

func matchEither(alternatives []pattern.Node, left, collected []*pattern.Leaf) (bool, []*pattern.Leaf, []*pattern.Leaf) {
	type outcome struct {
		ok        bool
		left      []*pattern.Leaf
		collected []*pattern.Leaf
	}
	outcomes := make([]outcome, len(alternatives))
	for i, alt := range alternatives {
		ok, newLeft, newCollected := matchNode(alt, copyLeaves(left), copyLeaves(collected))
		outcomes[i] = outcome{ok, newLeft, newCollected}
	}
	best := -1
	for i, o := range outcomes {
		if !o.ok {
			Logger.Printf("either: alternative %d failed", i)
			continue
		}
		Logger.Printf("either: alternative %d matched with %d leftover", i, len(o.left))
		if best == -1 || len(o.left) < len(outcomes[best].left) {
			best = i
		}
	}
	if best == -1 {
		return false, left, collected
	}
	Logger.Printf("either: picked alternative %d", best)
	return true, outcomes[best].left, outcomes[best].collected
}

// matchLeaf implements single_match + the collected-merge rules of
// spec.md §4.7: a counter-typed leaf increments, a list-typed leaf
// concatenates (existing items first), anything else is appended verbatim.
func matchLeaf(leaf *pattern.Leaf, left, collected []*pattern.Leaf) (bool, []*pattern.Leaf, []*pattern.Leaf) {
	idx, matched := singleMatch(leaf, left)
	if idx < 0 {
		return false, left, collected
	}

	newLeft := make([]*pattern.Leaf, 0, len(left)-1)
	newLeft = append(newLeft, left[:idx]...)
	newLeft = append(newLeft, left[idx+1:]...)

	name := leaf.DisplayName()
	newCollected := make([]*pattern.Leaf, len(collected))
	copy(newCollected, collected)

	existingIdx := -1
	for i, c := range newCollected {
		if c.DisplayName() == name {
			existingIdx = i
			break
		}
	}

	declaredKind := value.Empty
	if leaf.Val != nil {
		declaredKind = leaf.Val.Kind()
	}

	switch declaredKind {
	case value.Int:
		if existingIdx == -1 {
			add := cloneLeaf(leaf)
			add.Val = value.NewInt(1)
			newCollected = append(newCollected, add)
		} else {
			cur, _ := newCollected[existingIdx].Val.Int()
			clone := cloneLeaf(newCollected[existingIdx])
			clone.Val = value.NewInt(cur + 1)
			newCollected[existingIdx] = clone
		}
	case value.List:
		items := matchedItems(matched)
		if existingIdx == -1 {
			add := cloneLeaf(leaf)
			add.Val = value.NewList(items)
			newCollected = append(newCollected, add)
		} else {
			existingList, _ := newCollected[existingIdx].Val.List()
			combined := make([]string, 0, len(existingList)+len(items))
			combined = append(combined, existingList...)
			combined = append(combined, items...)
			clone := cloneLeaf(newCollected[existingIdx])
			clone.Val = value.NewList(combined)
			newCollected[existingIdx] = clone
		}
	default:
		newCollected = append(newCollected, matched)
	}

	return true, newLeft, newCollected
}

func matchedItems(matched *pattern.Leaf) []string {
	if matched.Val == nil {
		return nil
	}
	switch matched.Val.Kind() {
	case value.Str:
		s, _ := matched.Val.Str()
		return []string{s}
	case value.List:
		l, _ := matched.Val.List()
		return l
	default:
		return nil
	}
}

// singleMatch scans left for the first item leaf accepts, per the
// per-kind rules of spec.md §4.7: Argument accepts any positional, Command
// accepts a positional whose string equals its own name, Option accepts a
// same-named Option.
func singleMatch(leaf *pattern.Leaf, left []*pattern.Leaf) (int, *pattern.Leaf) {
	switch leaf.Kind {
	case pattern.CommandKind:
		for i, n := range left {
			if n.Kind != pattern.ArgumentKind {
				continue
			}
			if n.Val != nil && n.Val.Kind() == value.Str {
				if s, _ := n.Val.Str(); s == leaf.Name {
					return i, pattern.NewCommand(leaf.Name, value.NewBool(true))
				}
			}
			// The first Argument-kind element decides the match: a
			// Command only ever matches the very next positional, never
			// one further down left.
			break
		}
		return -1, nil
	case pattern.ArgumentKind:
		for i, n := range left {
			if n.Kind == pattern.ArgumentKind {
				return i, pattern.NewArgument(leaf.Name, n.Val)
			}
		}
		return -1, nil
	case pattern.OptionKind:
		name := leaf.DisplayName()
		for i, n := range left {
			if n.Kind == pattern.OptionKind && n.DisplayName() == name {
				return i, pattern.NewOption(leaf.Short, leaf.Long, leaf.ArgCount, n.Val)
			}
		}
		return -1, nil
	default:
		return -1, nil
	}
}

func cloneLeaf(l *pattern.Leaf) *pattern.Leaf {
	c := *l
	return &c
}

func copyLeaves(l []*pattern.Leaf) []*pattern.Leaf {
	cp := make([]*pattern.Leaf, len(l))
	copy(cp, l)
	return cp
}
