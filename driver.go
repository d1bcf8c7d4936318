// This file is part of docopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package docopt

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dgryski/docopt/internal/usage"
	"github.com/fatih/color"
)

// Writer receives the text of a *LanguageError or *ArgumentError failure.
// It defaults to stderr; tests point it at a buffer. Help and version
// text always goes to stdout, regardless of Writer — that's conventional
// CLI behavior, not something a caller should need to redirect.
var Writer io.Writer = os.Stderr

// exitFn is os.Exit, indirected so tests can observe the exit code
// without killing the test process.
var exitFn = os.Exit

var errorBanner = color.New(color.FgRed, color.Bold).SprintFunc()

// ParseOrExit runs Parse and handles every outcome a standalone CLI needs:
// ErrExitHelp prints doc and exits 0; ErrExitVersion prints version and
// exits 0; a *LanguageError or *ArgumentError prints a colored diagnostic
// to Writer (an *ArgumentError additionally prints the usage section) and
// exits 1. Any other error type is treated the same as *ArgumentError.
func ParseOrExit(doc string, argv []string, version string, opts ...Option) map[string]*Value {
	result, err := Parse(doc, argv, opts...)
	if err == nil {
		return result
	}

	switch {
	case err == ErrExitHelp:
		fmt.Fprintln(os.Stdout, strings.Trim(doc, "\n"))
		exitFn(0)
	case err == ErrExitVersion:
		fmt.Fprintln(os.Stdout, version)
		exitFn(0)
	case isLanguageError(err):
		fmt.Fprintln(Writer, errorBanner(err.Error()))
		exitFn(1)
	default:
		fmt.Fprintln(Writer, errorBanner(err.Error()))
		if sections := usage.ExtractSection("usage:", doc); len(sections) > 0 {
			fmt.Fprintln(Writer, sections[0])
		}
		exitFn(1)
	}
	return result
}

func isLanguageError(err error) bool {
	_, ok := err.(*LanguageError)
	return ok
}
