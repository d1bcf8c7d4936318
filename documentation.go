// This file is part of docopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package docopt derives a command-line argument parser from a help text
written in conventional manual-page style, instead of a declarative schema.

Given a help string with a "usage:" section and, optionally, an "options:"
section, and the program's argv, Parse returns a map from every declared
name — option, positional argument, or subcommand — to its value.

# Usage text

	Naval Fate.

	Usage:
	  naval_fate.go ship new <name>...
	  naval_fate.go ship <name> move <x> <y> [--speed=<kn>]
	  naval_fate.go ship shoot <x> <y>
	  naval_fate.go mine (set|remove) <x> <y> [--moored|--drifting]
	  naval_fate.go -h | --help
	  naval_fate.go --version

	Options:
	  -h --help     Show this screen.
	  --version     Show version.
	  --speed=<kn>  Speed in knots [default: 10].
	  --moored      Moored (anchored) mine.
	  --drifting    Drifting mine.

The "usage:" section's alternatives compile into a pattern tree; the
"options:" section's descriptor lines seed the catalog of known options,
including each one's argument count and default.

# Result values

Every leaf name present in the normalized pattern tree appears in the
result map, whether or not argv supplied it — unmatched leaves carry their
post-normalization default (Int(0) for counters, List(nil) for repeated
positionals or options, Bool(false) for a no-arg option, Empty for a
scalar option without a [default: ...] tag). Use the *Value accessors
(Bool, Int, Str, List, AsInt) to read a typed result; each fails with
*IllegalCastError if called against the wrong variant.

# Help and version

Parse intercepts -h/--help and --version unless turned off with
WithHelp(false)/WithVersion(false); both are on by default. Seeing either in
argv short-circuits matching, and Parse returns ErrExitHelp or
ErrExitVersion alongside a best-effort partial result. ParseOrExit wraps
Parse for the common case: it prints the help text or version string and
exits 0, or prints a diagnostic and exits 1, so most programs only need to
call it once at startup.
*/
package docopt
