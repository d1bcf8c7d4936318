// This file is part of docopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package docopt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const navalFateDoc = `Naval Fate.

Usage:
  naval_fate ship new <name>...
  naval_fate ship <name> move <x> <y> [--speed=<kn>]
  naval_fate ship shoot <x> <y>
  naval_fate mine (set|remove) <x> <y> [--moored|--drifting]
  naval_fate -h | --help
  naval_fate --version

Options:
  -h --help     Show this screen.
  --version     Show version.
  --speed=<kn>  Speed in knots [default: 10].
  --moored      Moored (anchored) mine.
  --drifting    Drifting mine.
`

// valueComparer lets go-cmp compare *Value by its Equal method instead of
// panicking on the type's unexported fields.
var valueComparer = cmp.Comparer(func(a, b *Value) bool {
	return a.Equal(b)
})

func parseNavalFate(t *testing.T, argv []string) map[string]*Value {
	t.Helper()
	result, err := Parse(navalFateDoc, argv)
	if err != nil {
		t.Fatalf("Parse(%v) returned an unexpected error: %v", argv, err)
	}
	return result
}

func TestNavalFateShipNew(t *testing.T) {
	got := parseNavalFate(t, []string{"ship", "new", "Titanic"})
	names, err := got["<name>"].List()
	if err != nil {
		t.Fatalf("<name> should be a List, got error: %v", err)
	}
	if diff := cmp.Diff([]string{"Titanic"}, names); diff != "" {
		t.Errorf("<name> mismatch (-want +got):\n%s", diff)
	}
	shipSet, _ := got["ship"].Bool()
	if !shipSet {
		t.Error("expected ship=true")
	}
}

func TestNavalFateShipMove(t *testing.T) {
	got := parseNavalFate(t, []string{"ship", "Titanic", "move", "1", "2", "--speed=20"})

	// <name> is shared (via FixIdentities) with the "ship new <name>..."
	// alternative, so normalization promotes it to a List everywhere, even
	// in a scenario where only one name is ever given.
	names, err := got["<name>"].List()
	if err != nil {
		t.Fatalf("<name> should be a List, got error: %v", err)
	}
	if diff := cmp.Diff([]string{"Titanic"}, names, valueComparer); diff != "" {
		t.Errorf("<name> mismatch (-want +got):\n%s", diff)
	}

	x, _ := got["<x>"].Str()
	y, _ := got["<y>"].Str()
	if x != "1" || y != "2" {
		t.Errorf("<x>=%q <y>=%q, want 1/2", x, y)
	}
	speed, _ := got["--speed"].Str()
	if speed != "20" {
		t.Errorf("--speed = %q, want \"20\"", speed)
	}
	moveSet, _ := got["move"].Bool()
	if !moveSet {
		t.Error("expected move=true")
	}
}

func TestNavalFateShipMoveDefaultSpeed(t *testing.T) {
	got := parseNavalFate(t, []string{"ship", "Titanic", "move", "1", "2"})
	speed, err := got["--speed"].Str()
	if err != nil || speed != "10" {
		t.Errorf("--speed = %q (%v), want the declared default \"10\"", speed, err)
	}
}

func TestNavalFateShipShoot(t *testing.T) {
	got := parseNavalFate(t, []string{"ship", "shoot", "3", "4"})
	shootSet, _ := got["shoot"].Bool()
	if !shootSet {
		t.Error("expected shoot=true")
	}
	x, _ := got["<x>"].Str()
	if x != "3" {
		t.Errorf("<x> = %q, want \"3\"", x)
	}
}

func TestNavalFateMineSetMoored(t *testing.T) {
	got := parseNavalFate(t, []string{"mine", "set", "10", "20", "--moored"})
	setFlag, _ := got["set"].Bool()
	moored, _ := got["--moored"].Bool()
	drifting, _ := got["--drifting"].Bool()
	if !setFlag || !moored || drifting {
		t.Errorf("set=%v moored=%v drifting=%v, want true/true/false", setFlag, moored, drifting)
	}
}

func TestNavalFateMineRemoveDrifting(t *testing.T) {
	got := parseNavalFate(t, []string{"mine", "remove", "10", "20", "--drifting"})
	removeFlag, _ := got["remove"].Bool()
	drifting, _ := got["--drifting"].Bool()
	if !removeFlag || !drifting {
		t.Errorf("remove=%v drifting=%v, want true/true", removeFlag, drifting)
	}
}

func TestNavalFateEitherMooredAndDriftingConflict(t *testing.T) {
	_, err := Parse(navalFateDoc, []string{"mine", "set", "1", "2", "--moored", "--drifting"})
	if err == nil {
		t.Error("expected an error: --moored and --drifting are declared as mutually exclusive")
	}
}

func TestNavalFateHelpShortCircuits(t *testing.T) {
	_, err := Parse(navalFateDoc, []string{"--help"})
	if err != ErrExitHelp {
		t.Errorf("err = %v, want ErrExitHelp", err)
	}
	_, err = Parse(navalFateDoc, []string{"-h"})
	if err != ErrExitHelp {
		t.Errorf("err = %v, want ErrExitHelp", err)
	}
}

func TestNavalFateVersionShortCircuits(t *testing.T) {
	_, err := Parse(navalFateDoc, []string{"--version"})
	if err != ErrExitVersion {
		t.Errorf("err = %v, want ErrExitVersion", err)
	}
}

func TestNavalFateHelpWinsOverBogusArguments(t *testing.T) {
	// extras() short-circuits ahead of matching: a trailing garbage token
	// must not suppress --help.
	_, err := Parse(navalFateDoc, []string{"--help", "--this-flag-does-not-exist"})
	if err != ErrExitHelp {
		t.Errorf("err = %v, want ErrExitHelp even with an unrecognized trailing flag", err)
	}
}

func TestNavalFateUnmatchedArgumentsFail(t *testing.T) {
	_, err := Parse(navalFateDoc, []string{"fly", "to", "the", "moon"})
	if err == nil {
		t.Error("expected an error: \"fly\" matches no alternative")
	}
}

func TestShortClusterEquivalence(t *testing.T) {
	doc := "Usage: prog [-ab]\n\nOptions:\n -a  \n -b  \n"
	clustered, err := Parse(doc, []string{"-ab"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	separate, err := Parse(doc, []string{"-a", "-b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(separate, clustered, valueComparer); diff != "" {
		t.Errorf("a short cluster must parse identically to separate flags (-want +got):\n%s", diff)
	}
}

func TestLongPrefixUniqueness(t *testing.T) {
	doc := "Usage: prog [--flag] [--flame]\n\nOptions:\n --flag  \n --flame  \n"
	if _, err := Parse(doc, []string{"--fl"}); err == nil {
		t.Error("expected an ambiguous-prefix error for --fl")
	}
	if _, err := Parse(doc, []string{"--flag"}); err != nil {
		t.Errorf("unexpected error for the fully-spelled --flag: %v", err)
	}
}

func TestEitherGreediness(t *testing.T) {
	doc := "Usage: prog (go | go fast)\n"
	got, err := Parse(doc, []string{"go", "fast"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fastSet, _ := got["fast"].Bool()
	if !fastSet {
		t.Error("the longer alternative should win when both consume argv, leaving no remainder")
	}
}
