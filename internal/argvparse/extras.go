// This file is part of docopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package argvparse

import (
	"github.com/dgryski/docopt/internal/pattern"
	"github.com/dgryski/docopt/internal/value"
)

// FindExtras scans the already-parsed argv leaves for a truthy -h/--help
// or --version occurrence, ahead of — and independent of — whether the
// rest of argv would otherwise match the usage pattern. This mirrors
// original_source/docopt.cpp's extras() short-circuit: "prog --help
// --bogus-flag" still prints help, even though --bogus-flag would
// otherwise fail to match anything.
func FindExtras(leaves []*pattern.Leaf) (help, version bool) {
	for _, l := range leaves {
		if l.Kind != pattern.OptionKind || l.Val == nil || l.Val.Kind() != value.Bool {
			continue
		}
		set, _ := l.Val.Bool()
		if !set {
			continue
		}
		if l.Long == "--help" || l.Short == "-h" {
			help = true
		}
		if l.Long == "--version" {
			version = true
		}
	}
	return help, version
}
