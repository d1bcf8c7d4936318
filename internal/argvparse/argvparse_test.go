// This file is part of docopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package argvparse

import (
	"testing"

	"github.com/dgryski/docopt/internal/optcatalog"
	"github.com/dgryski/docopt/internal/pattern"
	"github.com/dgryski/docopt/internal/value"
)

func navalCatalog() *optcatalog.Catalog {
	c := optcatalog.New()
	c.Add(pattern.NewOption("-h", "--help", 0, value.NewBool(false)))
	c.Add(pattern.NewOption("", "--version", 0, value.NewBool(false)))
	c.Add(pattern.NewOption("", "--speed", 1, value.NewEmpty()))
	c.Add(pattern.NewOption("-v", "--verbose", 0, value.NewBool(false)))
	return c
}

func TestParsePositionalsAndCommands(t *testing.T) {
	leaves, err := Parse([]string{"ship", "new", "Titanic"}, navalCatalog(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(leaves) != 3 {
		t.Fatalf("got %d leaves, want 3", len(leaves))
	}
	for i, l := range leaves {
		if l.Kind != pattern.ArgumentKind {
			t.Errorf("leaf %d: Kind = %v, want ArgumentKind", i, l.Kind)
		}
	}
}

func TestParseLongOptionWithAttachedValue(t *testing.T) {
	leaves, err := Parse([]string{"move", "--speed=20"}, navalCatalog(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	opt := leaves[1]
	if opt.Long != "--speed" {
		t.Fatalf("got %q, want --speed", opt.Long)
	}
	got, err := opt.Val.Str()
	if err != nil || got != "20" {
		t.Errorf("value = %q (%v), want \"20\"", got, err)
	}
}

func TestParseLongOptionWithSeparateValue(t *testing.T) {
	leaves, err := Parse([]string{"--speed", "20"}, navalCatalog(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(leaves) != 1 {
		t.Fatalf("got %d leaves, want 1 (the value token is consumed)", len(leaves))
	}
	got, _ := leaves[0].Val.Str()
	if got != "20" {
		t.Errorf("value = %q, want \"20\"", got)
	}
}

func TestParseShortClusterFlags(t *testing.T) {
	leaves, err := Parse([]string{"-hv"}, navalCatalog(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(leaves) != 2 {
		t.Fatalf("got %d leaves, want 2", len(leaves))
	}
	if leaves[0].Long != "--help" || leaves[1].Long != "--verbose" {
		t.Errorf("got %q, %q, want --help, --verbose", leaves[0].Long, leaves[1].Long)
	}
}

func TestParseDoubleDashStopsOptionScanning(t *testing.T) {
	leaves, err := Parse([]string{"ship", "--", "--verbose"}, navalCatalog(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(leaves) != 2 {
		t.Fatalf("got %d leaves, want 2", len(leaves))
	}
	if leaves[1].Kind != pattern.ArgumentKind {
		t.Error("everything after '--' must be positional, even option-shaped tokens")
	}
}

func TestParseOptionsFirstFreezesAtFirstPositional(t *testing.T) {
	leaves, err := Parse([]string{"ship", "--verbose"}, navalCatalog(), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(leaves) != 2 {
		t.Fatalf("got %d leaves, want 2", len(leaves))
	}
	if leaves[1].Kind != pattern.ArgumentKind {
		t.Error("with optionsFirst, tokens after the first positional must stay positional")
	}
}

func TestParseUnknownLongOptionIsSynthesized(t *testing.T) {
	leaves, err := Parse([]string{"--bogus"}, navalCatalog(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if leaves[0].Long != "--bogus" {
		t.Errorf("got %q, want a synthesized --bogus leaf", leaves[0].Long)
	}
}

func TestParseAmbiguousLongPrefixFails(t *testing.T) {
	catalog := optcatalog.New()
	catalog.Add(pattern.NewOption("", "--flag", 0, value.NewBool(false)))
	catalog.Add(pattern.NewOption("", "--flame", 0, value.NewBool(false)))
	if _, err := Parse([]string{"--fl"}, catalog, false); err == nil {
		t.Error("expected an ambiguous-prefix error")
	}
}

func TestFindExtrasDetectsHelpAndVersion(t *testing.T) {
	leaves := []*pattern.Leaf{
		pattern.NewOption("-h", "--help", 0, value.NewBool(true)),
	}
	help, version := FindExtras(leaves)
	if !help || version {
		t.Errorf("help=%v version=%v, want true/false", help, version)
	}

	leaves = []*pattern.Leaf{
		pattern.NewOption("", "--version", 0, value.NewBool(true)),
	}
	help, version = FindExtras(leaves)
	if help || !version {
		t.Errorf("help=%v version=%v, want false/true", help, version)
	}
}

func TestFindExtrasIgnoresUnsetOptions(t *testing.T) {
	leaves := []*pattern.Leaf{
		pattern.NewOption("-h", "--help", 0, value.NewBool(false)),
	}
	help, _ := FindExtras(leaves)
	if help {
		t.Error("an unset --help leaf must not trigger the short-circuit")
	}
}
