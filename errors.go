// This file is part of docopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package docopt

import (
	"errors"

	"github.com/dgryski/docopt/internal/value"
)

// LanguageError reports a malformed help text: a missing or duplicate
// "usage:" section, mismatched brackets, trailing tokens, or an
// unparseable option descriptor.
type LanguageError struct {
	Msg string
}

func (e *LanguageError) Error() string { return e.Msg }

// ArgumentError reports that argv didn't match any usage alternative, or
// violated an option's constraint (missing argument, disallowed =VAL,
// ambiguous prefix or short cluster). Candidates is populated for the
// ambiguous-prefix/short case, listing every option the abbreviation could
// have meant.
type ArgumentError struct {
	Msg        string
	Candidates []string
}

func (e *ArgumentError) Error() string { return e.Msg }

// ErrExitHelp is returned from Parse when help is enabled and the parsed
// argv asked for it (-h or --help). ParseOrExit prints doc and exits 0.
var ErrExitHelp = errors.New("help called")

// ErrExitVersion is returned from Parse when version is enabled and the
// parsed argv asked for it (--version). ParseOrExit prints the caller's
// version string and exits 0.
var ErrExitVersion = errors.New("version called")

// IllegalCastError is returned by a *Value accessor called against the
// wrong variant.
type IllegalCastError = value.IllegalCastError

// NonNumericError is returned by (*Value).AsInt when a Str value isn't a
// base-10 integer.
type NonNumericError = value.NonNumericError
