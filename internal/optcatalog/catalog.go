// This file is part of docopt.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package optcatalog holds the option catalog: every Option leaf ever
// observed, whether declared in the options section of the help text or
// discovered while parsing the usage line or the user's argv. Both
// internal/usage and internal/argvparse share one Catalog per Parse call
// so a prefix or short cluster typed on the command line resolves against
// options declared anywhere in the help text.
package optcatalog

import "github.com/dgryski/docopt/internal/pattern"

// Catalog is an ordered, append-only set of Option leaves. Order is
// preserved (not map iteration order) because OptionsShortcut resolution
// needs declaration order to be deterministic.
type Catalog struct {
	options []*pattern.Leaf
}

// New returns an empty Catalog.
func New() *Catalog {
	return &Catalog{}
}

// All returns the catalog's entries in declaration order. Callers must not
// mutate the returned slice.
func (c *Catalog) All() []*pattern.Leaf {
	return c.options
}

// Add appends opt to the catalog. It does not de-duplicate: callers look
// up before adding.
func (c *Catalog) Add(opt *pattern.Leaf) {
	c.options = append(c.options, opt)
}

// FindLong returns the catalog entry whose Long form exactly matches name,
// or nil.
func (c *Catalog) FindLong(name string) *pattern.Leaf {
	for _, o := range c.options {
		if o.Long == name {
			return o
		}
	}
	return nil
}

// FindShort returns the catalog entry whose Short form exactly matches
// name, or nil.
func (c *Catalog) FindShort(name string) *pattern.Leaf {
	for _, o := range c.options {
		if o.Short == name {
			return o
		}
	}
	return nil
}

// FindShortAll returns every catalog entry whose Short form exactly
// matches name. Normally at most one; a length greater than one means two
// option descriptors declared the same short flag, which ResolveShortCluster
// reports as ambiguous rather than picking one arbitrarily.
func (c *Catalog) FindShortAll(name string) []*pattern.Leaf {
	var matches []*pattern.Leaf
	for _, o := range c.options {
		if o.Short == name {
			matches = append(matches, o)
		}
	}
	return matches
}

// FindLongPrefix returns every catalog entry whose Long form starts with
// prefix, in declaration order. Used for argv-side unique-prefix matching
// (spec.md §4.3); usage-line parsing never calls this, only exact lookup.
func (c *Catalog) FindLongPrefix(prefix string) []*pattern.Leaf {
	var matches []*pattern.Leaf
	for _, o := range c.options {
		if o.Long != "" && len(o.Long) >= len(prefix) && o.Long[:len(prefix)] == prefix {
			matches = append(matches, o)
		}
	}
	return matches
}
