// This file is part of docopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package normalize implements the two passes that run between usage
// parsing and matching: FixIdentities (DAG canonicalization of repeated
// leaves) and FixRepeatingArguments (counter/list value-kind promotion).
package normalize

import (
	"io"
	"log"

	"github.com/dgryski/docopt/internal/pattern"
)

// Logger traces identity canonicalization and value-kind promotion.
// Silent by default; enable with Logger.SetOutput(os.Stderr).
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// FixIdentities walks root depth-first and replaces every leaf with the
// first structurally-equal leaf encountered in root's own flattened leaf
// set, so that every occurrence of (say) the --verbose option anywhere in
// the tree is the *same* *pattern.Leaf. FixRepeatingArguments relies on
// this: promoting one occurrence's Val is then visible through every
// reference, because there is only one referent.
//
// Per DESIGN.md's "equality-by-hash" decision, identity is true structural
// equality (Leaf.Equal), checked by a linear scan; Hash is not consulted,
// which closes the hash-collision hazard spec.md §9 flags against the reference
// implementation's hash-only comparison.
func FixIdentities(root pattern.Node) {
	uniq := uniqueLeaves(root.Flatten())
	Logger.Printf("fix identities: %d leaves collapsed to %d equivalence classes", len(root.Flatten()), len(uniq))
	var visit func(n pattern.Node)
	visit = func(n pattern.Node) {
		children := n.Children()
		if children == nil {
			return
		}
		for i, c := range children {
			if c.Children() == nil {
				if leaf, ok := c.(*pattern.Leaf); ok {
					children[i] = canonicalLeaf(uniq, leaf)
				}
			} else {
				visit(c)
			}
		}
		n.SetChildren(children)
	}
	visit(root)
}

// uniqueLeaves dedups leaves by structural equality, keeping the first
// occurrence as the canonical representative of its equivalence class.
func uniqueLeaves(leaves []*pattern.Leaf) []*pattern.Leaf {
	var uniq []*pattern.Leaf
	for _, l := range leaves {
		found := false
		for _, u := range uniq {
			if u.Equal(l) {
				found = true
				break
			}
		}
		if !found {
			uniq = append(uniq, l)
		}
	}
	return uniq
}

func canonicalLeaf(uniq []*pattern.Leaf, l *pattern.Leaf) *pattern.Leaf {
	for _, u := range uniq {
		if u.Equal(l) {
			return u
		}
	}
	return l
}
