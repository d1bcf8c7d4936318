// This file is part of docopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package optword resolves a single long-option or short-option-cluster
// token against an option catalog. Both internal/usage (tokenizing the
// usage line into a pattern tree) and internal/argvparse (tokenizing the
// user's argv into a flat leaf list) call the same two functions here —
// that sharing is deliberate: it is how the reference implementation keeps
// usage-line and argv option handling from drifting apart, and
// ts.IsParsingArgv is the single switch that tells this package which
// context it is in.
package optword

import (
	"fmt"
	"strings"

	"github.com/dgryski/docopt/internal/optcatalog"
	"github.com/dgryski/docopt/internal/pattern"
	"github.com/dgryski/docopt/internal/tokenstream"
	"github.com/dgryski/docopt/internal/value"
	"github.com/dgryski/docopt/text"
)

// ResolveLong consumes one "--name" or "--name=VAL" token from ts and
// resolves it against catalog.
//
// While parsing the usage line (ts.IsParsingArgv() false), an unknown long
// option must match exactly; when parsing argv, an unresolved name is
// additionally tried as a unique prefix of a declared long option (spec.md
// §4.3). Either way, a name absent from the catalog is synthesized and
// added, so a later occurrence — usage line or argv — resolves to the same
// entry.
//
// The returned leaf is the catalog's own entry while parsing the usage
// line (so later mutation of its default, e.g. from an option-descriptor
// line, is visible through the grammar tree), and a fresh leaf carrying the
// occurrence's captured value while parsing argv.
func ResolveLong(ts *tokenstream.Stream, catalog *optcatalog.Catalog) (*pattern.Leaf, error) {
	tok := ts.Pop()
	name := tok
	var attached string
	hasAttached := false
	if i := strings.IndexByte(tok, '='); i >= 0 {
		name = tok[:i]
		attached = tok[i+1:]
		hasAttached = true
	}

	resolved := catalog.FindLong(name)
	if resolved == nil && ts.IsParsingArgv() {
		candidates := catalog.FindLongPrefix(name)
		if len(candidates) > 1 {
			names := make([]string, len(candidates))
			for i, c := range candidates {
				names[i] = c.Long
			}
			return nil, &tokenstream.OptionError{
				Msg:        fmt.Sprintf(text.ErrorAmbiguousLongOption, tok, strings.Join(names, ", ")),
				Candidates: names,
			}
		}
		if len(candidates) == 1 {
			resolved = candidates[0]
		}
	}
	if resolved == nil {
		argCount := 0
		if hasAttached {
			argCount = 1
		}
		resolved = pattern.NewOption("", name, argCount, defaultValue(argCount))
		catalog.Add(resolved)
	}

	if hasAttached && resolved.ArgCount == 0 {
		return nil, &tokenstream.OptionError{
			Msg: fmt.Sprintf(text.ErrorUnexpectedArgToFlag, resolved.Long, attached),
		}
	}

	var captured string
	if resolved.ArgCount == 1 {
		if hasAttached {
			captured = attached
		} else {
			if !ts.Any() || ts.Current() == "--" {
				return nil, &tokenstream.OptionError{
					Msg: fmt.Sprintf(text.ErrorMissingOptionArgument, resolved.Long),
				}
			}
			captured = ts.Pop()
		}
	}

	if !ts.IsParsingArgv() {
		return resolved, nil
	}
	if resolved.ArgCount == 1 {
		return pattern.NewOption(resolved.Short, resolved.Long, 1, value.NewStr(captured)), nil
	}
	return pattern.NewOption(resolved.Short, resolved.Long, 0, value.NewBool(true)), nil
}

// ResolveShortCluster consumes one "-xyz" token from ts and walks it
// left-to-right, resolving each character against catalog. An
// argument-taking option absorbs the rest of the cluster as its value, or
// (if nothing remains) the next stream token, exactly as ResolveLong does
// for a long option's detached argument.
func ResolveShortCluster(ts *tokenstream.Stream, catalog *optcatalog.Catalog) ([]*pattern.Leaf, error) {
	tok := ts.Pop()
	rest := tok[1:]

	var out []*pattern.Leaf
	for rest != "" {
		short := "-" + rest[:1]
		rest = rest[1:]

		candidates := catalog.FindShortAll(short)
		if len(candidates) > 1 {
			names := make([]string, len(candidates))
			for i, c := range candidates {
				names[i] = c.DisplayName()
			}
			return nil, &tokenstream.OptionError{
				Msg:        fmt.Sprintf(text.ErrorAmbiguousShortOption, short[1:], len(candidates)),
				Candidates: names,
			}
		}

		var resolved *pattern.Leaf
		if len(candidates) == 1 {
			resolved = candidates[0]
		} else {
			resolved = pattern.NewOption(short, "", 0, defaultValue(0))
			catalog.Add(resolved)
		}

		var captured string
		if resolved.ArgCount != 0 {
			if rest != "" {
				captured, rest = rest, ""
			} else {
				if !ts.Any() || ts.Current() == "--" {
					return nil, &tokenstream.OptionError{
						Msg: fmt.Sprintf(text.ErrorMissingOptionArgument, short),
					}
				}
				captured = ts.Pop()
			}
		}

		if !ts.IsParsingArgv() {
			out = append(out, resolved)
			continue
		}
		if resolved.ArgCount != 0 {
			out = append(out, pattern.NewOption(resolved.Short, resolved.Long, resolved.ArgCount, value.NewStr(captured)))
		} else {
			out = append(out, pattern.NewOption(resolved.Short, resolved.Long, 0, value.NewBool(true)))
		}
	}
	return out, nil
}

func defaultValue(argCount int) *value.Value {
	if argCount == 1 {
		return value.NewEmpty()
	}
	return value.NewBool(false)
}
