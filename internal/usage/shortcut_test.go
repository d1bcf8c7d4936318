// This file is part of docopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package usage

import (
	"testing"

	"github.com/dgryski/docopt/internal/optcatalog"
	"github.com/dgryski/docopt/internal/pattern"
	"github.com/dgryski/docopt/internal/value"
)

func TestResolveShortcutsFillsUndeclaredOptions(t *testing.T) {
	catalog := optcatalog.New()
	verbose := pattern.NewOption("-v", "--verbose", 0, value.NewBool(false))
	quiet := pattern.NewOption("-q", "--quiet", 0, value.NewBool(false))
	catalog.Add(verbose)
	catalog.Add(quiet)

	// -v is already named explicitly in the usage line; only -q should land
	// in the [options] shortcut.
	shortcut := pattern.NewOptionsShortcut()
	root := pattern.NewRequired(verbose, shortcut)

	ResolveShortcuts(root, catalog)

	children := shortcut.Children()
	if len(children) != 1 {
		t.Fatalf("got %d options in the shortcut, want 1", len(children))
	}
	leaf := children[0].(*pattern.Leaf)
	if leaf.Long != "--quiet" {
		t.Errorf("shortcut contains %q, want --quiet", leaf.Long)
	}
}

func TestResolveShortcutsNoShortcutIsNoOp(t *testing.T) {
	catalog := optcatalog.New()
	catalog.Add(pattern.NewOption("-v", "--verbose", 0, value.NewBool(false)))
	root := pattern.NewRequired(pattern.NewCommand("go", value.NewBool(false)))
	ResolveShortcuts(root, catalog)
}

func TestResolveShortcutsSharedAcrossMultipleShortcuts(t *testing.T) {
	catalog := optcatalog.New()
	extra := pattern.NewOption("-x", "--extra", 0, value.NewBool(false))
	catalog.Add(extra)

	scA := pattern.NewOptionsShortcut()
	scB := pattern.NewOptionsShortcut()
	root := pattern.NewEither(
		pattern.NewRequired(scA),
		pattern.NewRequired(scB),
	)
	ResolveShortcuts(root, catalog)

	if len(scA.Children()) != 1 || len(scB.Children()) != 1 {
		t.Fatalf("expected both shortcuts to receive the catalog's unclaimed options")
	}
	aLeaf := scA.Children()[0].(*pattern.Leaf)
	bLeaf := scB.Children()[0].(*pattern.Leaf)
	if aLeaf.Long != "--extra" || bLeaf.Long != "--extra" {
		t.Errorf("got %q and %q, want both shortcuts filled with --extra", aLeaf.Long, bLeaf.Long)
	}
}
