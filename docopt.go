// This file is part of docopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package docopt

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/dgryski/docopt/internal/argvparse"
	"github.com/dgryski/docopt/internal/matcher"
	"github.com/dgryski/docopt/internal/normalize"
	"github.com/dgryski/docopt/internal/optcatalog"
	"github.com/dgryski/docopt/internal/pattern"
	"github.com/dgryski/docopt/internal/tokenstream"
	"github.com/dgryski/docopt/internal/usage"
	"github.com/dgryski/docopt/internal/value"
	"github.com/dgryski/docopt/text"
)

// Value is the tagged-union result type returned for every declared name.
type Value = value.Value

// Logger receives diagnostic tracing of each Parse call's stages. It is
// silent by default; set it (e.g. log.New(os.Stderr, "docopt: ", 0)) to
// see the extracted usage section, the option catalog size, the parsed
// pattern tree, and the number of argv leaves. Normalization and matching
// are not traced through it.
var Logger = log.New(io.Discard, "", 0)

type config struct {
	help         bool
	version      bool
	optionsFirst bool
}

// Option configures a Parse call. Parse starts from help and version
// interception both on and options-first off; each Option overrides one of
// those settings.
type Option func(*config)

// WithHelp toggles whether -h/--help short-circuits matching.
func WithHelp(enabled bool) Option { return func(c *config) { c.help = enabled } }

// WithVersion toggles whether --version short-circuits matching.
func WithVersion(enabled bool) Option { return func(c *config) { c.version = enabled } }

// WithOptionsFirst toggles whether the first positional token freezes
// option parsing for the remainder of argv.
func WithOptionsFirst(enabled bool) Option { return func(c *config) { c.optionsFirst = enabled } }

// Parse derives a pattern from doc's "usage:"/"options:" sections and
// matches argv against it, returning a map from every declared name to its
// value.
//
// On success, every leaf in the normalized pattern is present in the
// result, carrying either argv's value or its post-normalization default.
// On ErrExitHelp/ErrExitVersion, Parse also returns a best-effort partial
// map (the pattern's defaults) alongside the sentinel error, so a caller
// that bypasses ParseOrExit can still inspect it.
func Parse(doc string, argv []string, opts ...Option) (map[string]*Value, error) {
	cfg := &config{help: true, version: true}
	for _, o := range opts {
		o(cfg)
	}

	usageSection, err := usage.ExtractUsageSection(doc)
	if err != nil {
		return nil, &LanguageError{Msg: err.Error()}
	}
	Logger.Printf("usage section: %q", usageSection)

	catalog := optcatalog.New()
	usage.ParseOptionDescriptors(doc, catalog)
	Logger.Printf("catalog after options section: %d entries", len(catalog.All()))

	formal := usage.FormalUsage(usageSection)
	root, err := usage.ParsePattern(formal, catalog)
	if err != nil {
		return nil, &LanguageError{Msg: err.Error()}
	}
	Logger.Printf("parsed pattern: %s", root)

	usage.ResolveShortcuts(root, catalog)
	normalize.FixIdentities(root)
	normalize.FixRepeatingArguments(root)

	leaves, err := argvparse.Parse(argv, catalog, cfg.optionsFirst)
	if err != nil {
		argErr := &ArgumentError{Msg: err.Error()}
		if oe, ok := err.(*tokenstream.OptionError); ok {
			argErr.Candidates = oe.Candidates
		}
		return nil, argErr
	}
	Logger.Printf("argv leaves: %d", len(leaves))

	partial := resultMap(root, nil)

	helpSeen, versionSeen := argvparse.FindExtras(leaves)
	if cfg.help && helpSeen {
		return partial, ErrExitHelp
	}
	if cfg.version && versionSeen {
		return partial, ErrExitVersion
	}

	ok, remaining, collected := matcher.Match(root, leaves)
	if !ok {
		return nil, &ArgumentError{Msg: text.ErrorArgumentsDidNotMatch}
	}
	if len(remaining) > 0 {
		tokens := make([]string, len(remaining))
		for i, l := range remaining {
			tokens[i] = leftoverToken(l)
		}
		return nil, &ArgumentError{Msg: fmt.Sprintf(text.ErrorUnexpectedArgument, strings.Join(tokens, " "))}
	}

	return resultMap(root, collected), nil
}

// resultMap builds the name→value map: every leaf in root's normalized
// pattern contributes its default, then collected (the matcher's accepted
// leaves) overlay with argv's actual values.
func resultMap(root pattern.Node, collected []*pattern.Leaf) map[string]*Value {
	out := make(map[string]*Value)
	for _, l := range root.Flatten() {
		out[l.DisplayName()] = l.Val
	}
	for _, c := range collected {
		out[c.DisplayName()] = c.Val
	}
	return out
}

func leftoverToken(l *pattern.Leaf) string {
	if l.Val != nil && l.Val.Kind() == value.Str {
		s, _ := l.Val.Str()
		return s
	}
	return l.DisplayName()
}
