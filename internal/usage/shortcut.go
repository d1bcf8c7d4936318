// This file is part of docopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package usage

import (
	"github.com/dgryski/docopt/internal/optcatalog"
	"github.com/dgryski/docopt/internal/pattern"
)

// ResolveShortcuts fills every OptionsShortcut node in root with the
// catalog entries the usage line never named directly: the literal word
// "options" in a usage line stands for every option descriptor the usage
// line itself didn't already spell out. Must run before normalization, so
// FixIdentities and FixRepeatingArguments see the shortcut's real children
// rather than an empty placeholder.
func ResolveShortcuts(root pattern.Node, catalog *optcatalog.Catalog) {
	shortcuts := findShortcuts(root)
	if len(shortcuts) == 0 {
		return
	}

	referenced := root.Flatten(pattern.OptionKind)
	var extra []pattern.Node
	for _, o := range catalog.All() {
		named := false
		for _, r := range referenced {
			if r.Equal(o) {
				named = true
				break
			}
		}
		if !named {
			extra = append(extra, o)
		}
	}

	for _, sc := range shortcuts {
		children := make([]pattern.Node, len(extra))
		copy(children, extra)
		sc.SetChildren(children)
	}
}

func findShortcuts(n pattern.Node) []*pattern.OptionsShortcut {
	var out []*pattern.OptionsShortcut
	if sc, ok := n.(*pattern.OptionsShortcut); ok {
		out = append(out, sc)
	}
	children := n.Children()
	if children == nil {
		return out
	}
	for _, c := range children {
		out = append(out, findShortcuts(c)...)
	}
	return out
}
