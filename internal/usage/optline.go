// This file is part of docopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package usage

import (
	"regexp"
	"strings"

	"github.com/dgryski/docopt/internal/optcatalog"
	"github.com/dgryski/docopt/internal/pattern"
	"github.com/dgryski/docopt/internal/value"
)

var defaultRe = regexp.MustCompile(`(?i)\[default: (.*)\]`)

// ParseOptionDescriptors reads every "options:" block in doc and adds one
// catalog entry per descriptor line, seeding the catalog before the usage
// line is parsed. A descriptor line looks like:
//
//	-v, --verbose       Be verbose.
//	--speed=<kn>         Speed in knots [default: 10].
//
// the option forms and the description are separated by the first run of
// two or more spaces; argcount is 1 iff a bare placeholder word (anything
// not starting with '-') appears among the option forms.
func ParseOptionDescriptors(doc string, catalog *optcatalog.Catalog) {
	for _, block := range ExtractSection("options:", doc) {
		for _, entry := range splitDescriptorEntries(block) {
			short, long, argcount, defaultText, hasDefault := parseDescriptorEntry(entry)
			if short == "" && long == "" {
				continue
			}
			val := value.NewBool(false)
			if argcount == 1 {
				val = value.NewEmpty()
				if hasDefault {
					val = value.NewStr(defaultText)
				}
			}
			if existing := findExisting(catalog, short, long); existing != nil {
				existing.Short, existing.Long, existing.ArgCount, existing.Val = short, long, argcount, val
				continue
			}
			catalog.Add(pattern.NewOption(short, long, argcount, val))
		}
	}
}

func findExisting(catalog *optcatalog.Catalog, short, long string) *pattern.Leaf {
	if long != "" {
		if o := catalog.FindLong(long); o != nil {
			return o
		}
	}
	if short != "" {
		if matches := catalog.FindShortAll(short); len(matches) == 1 {
			return matches[0]
		}
	}
	return nil
}

// splitDescriptorEntries groups a "options:" block's lines under the most
// recent line whose first non-blank character is '-': the lines after it,
// up to the next such line or the first blank line, are that entry's
// continued description. Lines between a blank line and the next '-' line
// belong to no entry.
func splitDescriptorEntries(block string) []string {
	if i := strings.IndexByte(block, ':'); i >= 0 {
		block = block[i+1:]
	}
	var entries []string
	var cur strings.Builder
	started := false
	for _, line := range strings.Split(block, "\n") {
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), "-") {
			if started {
				entries = append(entries, cur.String())
			}
			cur.Reset()
			cur.WriteString(line)
			started = true
			continue
		}
		if started && strings.TrimSpace(line) == "" {
			entries = append(entries, cur.String())
			cur.Reset()
			started = false
			continue
		}
		if started {
			cur.WriteString("\n")
			cur.WriteString(line)
		}
	}
	if started {
		entries = append(entries, cur.String())
	}
	return entries
}

// parseDescriptorEntry parses one descriptor entry's option-forms part
// (before the first double space) into short/long/argcount, then — if
// argcount is 1 — scans the description part for a "[default: ...]" tag.
func parseDescriptorEntry(entry string) (short, long string, argcount int, defaultText string, hasDefault bool) {
	trimmed := strings.TrimSpace(entry)
	formsPart, descPart := trimmed, ""
	if idx := strings.Index(trimmed, "  "); idx >= 0 {
		formsPart, descPart = trimmed[:idx], trimmed[idx:]
	}
	cleaned := strings.NewReplacer(",", " ", "=", " ").Replace(formsPart)
	for _, tok := range strings.Fields(cleaned) {
		switch {
		case strings.HasPrefix(tok, "--"):
			long = tok
		case strings.HasPrefix(tok, "-"):
			short = tok
		default:
			argcount = 1
		}
	}
	if argcount == 1 {
		if m := defaultRe.FindStringSubmatch(descPart); m != nil {
			defaultText, hasDefault = m[1], true
		}
	}
	return
}
