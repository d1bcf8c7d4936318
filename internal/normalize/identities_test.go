// This file is part of docopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package normalize

import (
	"testing"

	"github.com/dgryski/docopt/internal/pattern"
	"github.com/dgryski/docopt/internal/value"
)

func TestFixIdentitiesUnifiesEqualLeaves(t *testing.T) {
	nameInOneOrMore := pattern.NewArgument("<name>", value.NewEmpty())
	nameElsewhere := pattern.NewArgument("<name>", value.NewEmpty())

	root := pattern.NewRequired(
		pattern.NewEither(
			pattern.NewRequired(pattern.NewCommand("new", value.NewBool(false)), pattern.NewOneOrMore(nameInOneOrMore)),
			pattern.NewRequired(nameElsewhere, pattern.NewCommand("move", value.NewBool(false))),
		),
	)
	FixIdentities(root)

	either := root.Children()[0].(*pattern.Either)
	oneOrMore := either.Children()[0].Children()[1].(*pattern.OneOrMore)
	unifiedA := oneOrMore.Child().(*pattern.Leaf)
	unifiedB := either.Children()[1].Children()[0].(*pattern.Leaf)

	if unifiedA != unifiedB {
		t.Error("FixIdentities should replace both <name> occurrences with the same *Leaf")
	}
}

func TestFixIdentitiesLeavesDistinctLeavesAlone(t *testing.T) {
	x := pattern.NewArgument("<x>", value.NewEmpty())
	y := pattern.NewArgument("<y>", value.NewEmpty())
	root := pattern.NewRequired(x, y)
	FixIdentities(root)
	if root.Children()[0].(*pattern.Leaf) == root.Children()[1].(*pattern.Leaf) {
		t.Error("distinct leaves must not be unified")
	}
}
