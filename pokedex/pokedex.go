// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pokedex records the names of caught pokemon and answers which caught
// name sorts immediately before or after any given name.
//
// Names are compared bytewise, so "Magikarp" sorts between "Bulbasaur" and
// "Pikachu" and all upper case names sort before lower case ones.
package pokedex

import (
	"github.com/btcsuite/treapdex/orderedset"
	"github.com/btcsuite/treapdex/priority"
)

// Direction selects which side of a name Beside looks on.
type Direction = orderedset.Direction

const (
	// Before selects the caught name sorting immediately before a name.
	Before = orderedset.Before

	// After selects the caught name sorting immediately after a name.
	After = orderedset.After
)

// Pokedex is a collection of unique caught names.  It is not safe for
// concurrent access.
type Pokedex struct {
	names *orderedset.Set[string]
}

// New returns an empty pokedex drawing tree priorities from src, or from an
// unpredictable source when src is nil.
func New(src priority.Source) *Pokedex {
	return &Pokedex{names: orderedset.New[string](src)}
}

// Catch records name.  Catching a name that was already caught, or the empty
// name, does nothing.
func (p *Pokedex) Catch(name string) {
	if p == nil || name == "" {
		return
	}
	if p.names.Add(name) {
		log.Tracef("Caught %q (%d total)", name, p.names.Len())
	}
}

// Caught returns whether name has been caught.
func (p *Pokedex) Caught(name string) bool {
	if p == nil || name == "" {
		return false
	}
	return p.names.Contains(name)
}

// Beside returns the caught name adjacent to name in the given direction.  The
// queried name itself does not need to have been caught.  The second return
// value is false when no caught name lies in that direction.
func (p *Pokedex) Beside(dir Direction, name string) (string, bool) {
	if p == nil || p.names.Len() == 0 || name == "" {
		return "", false
	}
	return p.names.Neighbor(name, dir)
}

// Len returns the number of distinct names caught.
func (p *Pokedex) Len() int {
	if p == nil {
		return 0
	}
	return p.names.Len()
}

// Names returns every caught name in sorted order.
func (p *Pokedex) Names() []string {
	if p == nil {
		return nil
	}
	return p.names.Keys()
}
