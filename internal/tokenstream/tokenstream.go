// This file is part of docopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package tokenstream provides a peekable cursor over a sequence of string
// tokens, shared by the usage tokenizer and the argv parser.
package tokenstream

import "strings"

// Stream is a peekable cursor over a slice of tokens. It never mutates the
// slice it was built from; popping only advances an internal index.
type Stream struct {
	data          []string
	idx           int
	isParsingArgv bool
	err           error
}

// New builds a Stream over source, used while parsing the usage text.
func New(source []string) *Stream {
	return &Stream{data: source}
}

// NewArgv builds a Stream over source, used while parsing user-supplied argv.
// IsParsingArgv reports true for streams built this way.
func NewArgv(source []string) *Stream {
	return &Stream{data: source, isParsingArgv: true}
}

// IsParsingArgv reports whether this stream was built from user argv rather
// than from the tokenized usage text. Option-parsing errors are interpreted
// differently (Language vs Argument) depending on this flag.
func (s *Stream) IsParsingArgv() bool {
	return s.isParsingArgv
}

// Current returns the token at the cursor, or "" past the end.
func (s *Stream) Current() string {
	if s.idx >= len(s.data) {
		return ""
	}
	return s.data[s.idx]
}

// Pop returns the current token and advances the cursor. Past the end it
// keeps returning "".
func (s *Stream) Pop() string {
	v := s.Current()
	if s.idx < len(s.data) {
		s.idx++
	}
	return v
}

// Any reports whether the stream has not been exhausted. Named Any rather
// than a boolean-conversion operator since Go has no truthiness overload.
func (s *Stream) Any() bool {
	return s.idx < len(s.data)
}

// Remaining returns the unconsumed tail of the stream without advancing it.
func (s *Stream) Remaining() []string {
	if s.idx >= len(s.data) {
		return []string{}
	}
	return s.data[s.idx:]
}

// RestAsString joins the unconsumed tail with sep.
func (s *Stream) RestAsString(sep string) string {
	return strings.Join(s.Remaining(), sep)
}

// SetError records an OptionError raised while consuming this stream. The
// caller (usage parser or argv parser) decides whether this becomes a
// Language or Argument error based on IsParsingArgv.
func (s *Stream) SetError(err error) {
	if s.err == nil {
		s.err = err
	}
}

// Err returns the first error recorded via SetError, if any.
func (s *Stream) Err() error {
	return s.err
}

// OptionError is raised while parsing an option token off a Stream, from
// either the usage tokenizer or the argv parser. The caller maps it to a
// Language or Argument error based on which side raised it. Candidates is
// set only for an ambiguous long-prefix or short-cluster error, listing
// every option name the abbreviation could have meant.
type OptionError struct {
	Msg        string
	Candidates []string
}

func (e *OptionError) Error() string {
	return e.Msg
}
