// This file is part of docopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package usage

import (
	"fmt"
	"io"
	"log"
	"strings"
	"unicode"

	"github.com/dgryski/docopt/internal/optcatalog"
	"github.com/dgryski/docopt/internal/optword"
	"github.com/dgryski/docopt/internal/pattern"
	"github.com/dgryski/docopt/internal/tokenstream"
	"github.com/dgryski/docopt/internal/value"
	"github.com/dgryski/docopt/text"
)

// Logger traces usage-line tokenizing and grammar parsing. Silent by
// default; enable with Logger.SetOutput(os.Stderr).
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// parser holds the recursive-descent grammar's shared state: the token
// cursor and the option catalog atoms resolve against.
//
//	expr ::= seq ('|' seq)*
//	seq  ::= (atom ['...'])*
//	atom ::= '(' expr ')' | '[' expr ']' | 'options' | long | short
//	       | argument | command
type parser struct {
	ts      *tokenstream.Stream
	catalog *optcatalog.Catalog
}

// ParsePattern tokenizes and parses a formal-usage expression (the output
// of FormalUsage) into a pattern tree, resolving option atoms against
// catalog as it goes and synthesizing catalog entries for options the
// options section never described.
func ParsePattern(formal string, catalog *optcatalog.Catalog) (pattern.Node, error) {
	tokens := Tokenize(formal)
	Logger.Printf("tokenized formal usage into %d tokens: %v", len(tokens), tokens)
	p := &parser{ts: tokenstream.New(tokens), catalog: catalog}
	root, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.ts.Any() {
		return nil, fmt.Errorf(text.ErrorTrailingTokens, strings.Join(p.ts.Remaining(), " "))
	}
	root = pattern.NewRequired(root)
	Logger.Printf("parsed pattern tree: %s", root)
	return root, nil
}

func (p *parser) expr() (pattern.Node, error) {
	first, err := p.seq()
	if err != nil {
		return nil, err
	}
	alts := []pattern.Node{first}
	for p.ts.Current() == "|" {
		p.ts.Pop()
		next, err := p.seq()
		if err != nil {
			return nil, err
		}
		alts = append(alts, next)
	}
	if len(alts) == 1 {
		return alts[0], nil
	}
	return pattern.NewEither(alts...), nil
}

func (p *parser) seq() (pattern.Node, error) {
	var atoms []pattern.Node
	for {
		cur := p.ts.Current()
		if cur == "" || cur == "]" || cur == ")" || cur == "|" {
			break
		}
		nodes, err := p.atom()
		if err != nil {
			return nil, err
		}
		atoms = append(atoms, nodes...)
		if len(atoms) > 0 && p.ts.Current() == "..." {
			p.ts.Pop()
			atoms[len(atoms)-1] = pattern.NewOneOrMore(atoms[len(atoms)-1])
		}
	}
	if len(atoms) == 1 {
		return atoms[0], nil
	}
	return pattern.NewRequired(atoms...), nil
}

// atom returns a slice because a short-option cluster token ("-xyz")
// expands into several sibling leaves at once, not one wrapping node.
func (p *parser) atom() ([]pattern.Node, error) {
	tok := p.ts.Current()
	switch {
	case tok == "(":
		p.ts.Pop()
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.ts.Current() != ")" {
			return nil, fmt.Errorf(text.ErrorUnmatchedBracket, "(")
		}
		p.ts.Pop()
		if r, ok := inner.(*pattern.Required); ok {
			return []pattern.Node{r}, nil
		}
		return []pattern.Node{pattern.NewRequired(inner)}, nil
	case tok == "[":
		p.ts.Pop()
		if p.ts.Current() == "]" {
			p.ts.Pop()
			return []pattern.Node{pattern.NewOptional()}, nil
		}
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.ts.Current() != "]" {
			return nil, fmt.Errorf(text.ErrorUnmatchedBracket, "[")
		}
		p.ts.Pop()
		return []pattern.Node{pattern.NewOptional(inner)}, nil
	case tok == "options":
		p.ts.Pop()
		return []pattern.Node{pattern.NewOptionsShortcut()}, nil
	case tok == "--":
		p.ts.Pop()
		return []pattern.Node{pattern.NewCommand(tok, value.NewBool(false))}, nil
	case strings.HasPrefix(tok, "--"):
		leaf, err := optword.ResolveLong(p.ts, p.catalog)
		if err != nil {
			return nil, asLanguageError(err)
		}
		return []pattern.Node{leaf}, nil
	case strings.HasPrefix(tok, "-") && tok != "-":
		leaves, err := optword.ResolveShortCluster(p.ts, p.catalog)
		if err != nil {
			return nil, asLanguageError(err)
		}
		nodes := make([]pattern.Node, len(leaves))
		for i, l := range leaves {
			nodes[i] = l
		}
		return nodes, nil
	default:
		p.ts.Pop()
		if isArgumentName(tok) {
			return []pattern.Node{pattern.NewArgument(tok, value.NewEmpty())}, nil
		}
		return []pattern.Node{pattern.NewCommand(tok, value.NewBool(false))}, nil
	}
}

func asLanguageError(err error) error {
	if oe, ok := err.(*tokenstream.OptionError); ok {
		return fmt.Errorf("%s", oe.Msg)
	}
	return err
}

// isArgumentName reports whether tok is a positional argument name rather
// than a command literal: either angle-bracketed ("<name>") or entirely
// uppercase with at least one letter ("FILE", not "123").
func isArgumentName(tok string) bool {
	if strings.HasPrefix(tok, "<") && strings.HasSuffix(tok, ">") && len(tok) > 1 {
		return true
	}
	hasLetter := false
	for _, r := range tok {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}
