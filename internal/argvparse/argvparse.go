// This file is part of docopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package argvparse turns a user's raw argv into the flat []*pattern.Leaf
// list internal/matcher matches against the usage pattern tree.
package argvparse

import (
	"strings"

	"github.com/dgryski/docopt/internal/optcatalog"
	"github.com/dgryski/docopt/internal/optword"
	"github.com/dgryski/docopt/internal/pattern"
	"github.com/dgryski/docopt/internal/tokenstream"
	"github.com/dgryski/docopt/internal/value"
)

// Parse walks argv left to right, resolving "--name"/"--name=VAL" and
// "-xyz" option tokens against catalog (synthesizing unrecognized ones, so
// they surface later as an unmatched leaf rather than a parse failure) and
// turning everything else into a positional Argument leaf.
//
// A literal "--" stops option scanning; everything after it is a
// positional, dashes and all. When optionsFirst is set (spec.md's
// [options_first] behavior), the same thing happens at the first
// positional encountered: once a bare word appears, every token after it
// — including ones that look like options — is treated as a positional.
func Parse(argv []string, catalog *optcatalog.Catalog, optionsFirst bool) ([]*pattern.Leaf, error) {
	ts := tokenstream.NewArgv(argv)
	var out []*pattern.Leaf

	for ts.Any() {
		tok := ts.Current()
		switch {
		case tok == "--":
			ts.Pop()
			out = append(out, positionalsFromRemainder(ts)...)
		case strings.HasPrefix(tok, "--"):
			leaf, err := optword.ResolveLong(ts, catalog)
			if err != nil {
				return nil, err
			}
			out = append(out, leaf)
		case tok == "-":
			ts.Pop()
			out = append(out, pattern.NewArgument("", value.NewStr(tok)))
		case strings.HasPrefix(tok, "-"):
			leaves, err := optword.ResolveShortCluster(ts, catalog)
			if err != nil {
				return nil, err
			}
			out = append(out, leaves...)
		default:
			ts.Pop()
			out = append(out, pattern.NewArgument("", value.NewStr(tok)))
			if optionsFirst {
				out = append(out, positionalsFromRemainder(ts)...)
			}
		}
	}
	return out, nil
}

func positionalsFromRemainder(ts *tokenstream.Stream) []*pattern.Leaf {
	var out []*pattern.Leaf
	for ts.Any() {
		out = append(out, pattern.NewArgument("", value.NewStr(ts.Pop())))
	}
	return out
}
