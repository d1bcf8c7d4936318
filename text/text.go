// This file is part of docopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text holds the user-facing messages of the usage-parsing,
// option-resolution and matching errors (ErrExitHelp, ErrExitVersion and
// the Value accessor errors carry their own strings), following the shape of the go-getoptions/text import used throughout
// that project's api.go, helpers.go, and help/help.go — one exported
// constant or format string per message, grouped by the error kind that
// raises it.
package text

// Usage/options section extraction (internal/usage).
const (
	ErrorMissingUsageSection   = "\"usage:\" (case-insensitive) not found."
	ErrorMultipleUsageSections = "More than one \"usage:\" (case-insensitive) found."
	ErrorUnmatchedBracket      = "Unmatched '%s' in usage line."
	ErrorTrailingTokens        = "Unexpected trailing tokens in usage line: %s"
	ErrorUnexpectedToken       = "Unexpected token %q while parsing usage line."
)

// Option-descriptor parsing (internal/usage).
const (
	ErrorOptionDescriptorParse = "Failed to parse option description: %q"
)

// Long/short option resolution, shared by usage-line and argv parsing
// (internal/usage, internal/argvparse).
const (
	ErrorAmbiguousLongOption   = "%s is not a unique prefix: %s?"
	ErrorUnknownLongOption     = "Unknown option %s"
	ErrorAmbiguousShortOption  = "-%s is specified ambiguously %d times"
	ErrorUnexpectedArgToFlag   = "Option %s does not take an argument, but %s was given."
	ErrorMissingOptionArgument = "Option %s requires an argument."
)

// Matching (internal/matcher, driven from the root package).
const (
	ErrorArgumentsDidNotMatch = "Arguments did not match the usage patterns."
	ErrorUnexpectedArgument   = "Unexpected argument(s): %s"
)
