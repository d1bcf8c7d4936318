// This file is part of docopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package usage

import (
	"regexp"
	"strings"
)

// delimiterRe matches the grammar's structural punctuation: brackets,
// parens, the alternation bar, and the repeat marker. Everything between
// two delimiter matches is a run of plain words, split on whitespace in
// the second tokenizing stage below.
var delimiterRe = regexp.MustCompile(`\[|\]|\(|\)|\||\.\.\.`)

// Tokenize turns a formal-usage expression into a flat token slice: each
// delimiter becomes its own token, and everything between them is split on
// whitespace, so "prog" "--speed=<kn>" "(" "<name>" "<x>" "<y>" ")" "..."
// are each individual tokens fed to the recursive-descent parser.
func Tokenize(formal string) []string {
	var tokens []string
	pos := 0
	for _, m := range delimiterRe.FindAllStringIndex(formal, -1) {
		start, end := m[0], m[1]
		tokens = append(tokens, strings.Fields(formal[pos:start])...)
		tokens = append(tokens, formal[start:end])
		pos = end
	}
	tokens = append(tokens, strings.Fields(formal[pos:])...)
	return tokens
}
