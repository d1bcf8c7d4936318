// This file is part of docopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package usage parses the doc string's "usage:" section into a
// pattern.Node tree and its "options:" sections into option-catalog
// entries, then resolves the [options] shortcut against that catalog.
package usage

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dgryski/docopt/text"
)

var sectionRe = func(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?im)^([^\n]*` + name + `[^\n]*\n?(?:[ \t].*(?:\n|$))*)`)
}

// ExtractSection returns every block in doc that opens with a line
// containing name (case-insensitive), followed by its indented
// continuation lines, each block trimmed of surrounding whitespace.
func ExtractSection(name, doc string) []string {
	matches := sectionRe(name).FindAllString(doc, -1)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = strings.TrimSpace(m)
	}
	return out
}

// ExtractUsageSection returns the single "usage:" block in doc, erroring
// if none or more than one was found.
func ExtractUsageSection(doc string) (string, error) {
	sections := ExtractSection("usage:", doc)
	switch len(sections) {
	case 0:
		return "", fmt.Errorf(text.ErrorMissingUsageSection)
	case 1:
		return sections[0], nil
	default:
		return "", fmt.Errorf(text.ErrorMultipleUsageSections)
	}
}

// FormalUsage reshapes a raw usage section — "Usage: prog cmd1" followed
// by an indented "prog cmd2" line — into a single parenthesized-alternatives
// expression suitable for tokenizing: "(  cmd1) | ( cmd2 )". The leading
// "usage:" label and every
// repeated occurrence of the program name are stripped; whatever falls
// between them becomes one alternative.
func FormalUsage(section string) string {
	body := section
	if i := strings.IndexByte(section, ':'); i >= 0 {
		body = section[i+1:]
	}
	fields := strings.Fields(body)
	if len(fields) == 0 {
		return ""
	}
	prog := fields[0]

	var b strings.Builder
	b.WriteString("( ")
	for _, f := range fields[1:] {
		if f == prog {
			b.WriteString(") | (")
			continue
		}
		b.WriteByte(' ')
		b.WriteString(f)
	}
	b.WriteString(" )")
	return b.String()
}
