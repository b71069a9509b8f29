// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package orderedset

import (
	"cmp"
	"fmt"

	"github.com/btcsuite/treapdex/internal/treap"
	"github.com/btcsuite/treapdex/priority"
)

// Direction selects which neighbor of a key a query returns.
type Direction = treap.Direction

const (
	// Before selects the largest member strictly less than the key.
	Before = treap.Before

	// After selects the smallest member strictly greater than the key.
	After = treap.After
)

// Set is an ordered set of unique keys.  It must be created with New or
// NewFunc.  See the package documentation for concurrency requirements.
type Set[K any] struct {
	root    *treap.Node[K]
	size    int
	compare treap.Compare[K]
	src     priority.Source
}

// New returns a new empty set of naturally ordered keys.  Priorities are drawn
// from src, or from a fresh unpredictable source when src is nil.
func New[K cmp.Ordered](src priority.Source) *Set[K] {
	return NewFunc(cmp.Compare[K], src)
}

// NewFunc returns a new empty set ordered by compare, which must return a
// negative number when a < b, zero when a == b, and a positive number when
// a > b.  Priorities are drawn from src, or from a fresh unpredictable source
// when src is nil.  It panics if compare is nil.
func NewFunc[K any](compare func(a, b K) int, src priority.Source) *Set[K] {
	if compare == nil {
		panic("orderedset: nil compare function")
	}
	if src == nil {
		src = priority.NewUnpredictable()
	}
	return &Set[K]{compare: compare, src: src}
}

// Len returns the number of keys in the set.
func (s *Set[K]) Len() int {
	return s.size
}

// Contains returns whether key is a member of the set.
func (s *Set[K]) Contains(key K) bool {
	return treap.Contains(s.root, key, s.compare)
}

// Add inserts key into the set.  It returns false, leaving the set unchanged,
// when key is already a member.
func (s *Set[K]) Add(key K) bool {
	if s.Contains(key) {
		return false
	}
	s.root, _ = treap.Insert(s.root, key, s.compare, s.src)
	s.size++
	return true
}

// Remove deletes key from the set.  It returns false, leaving the set
// unchanged, when key is not a member.
func (s *Set[K]) Remove(key K) bool {
	var removed bool
	s.root, removed = treap.Remove(s.root, key, s.compare)
	if removed {
		s.size--
	}
	return removed
}

// RemoveStrict deletes key from the set.  Unlike Remove, asking to remove a
// key that is not a member is treated as a caller error and reported with
// ErrKeyNotFound.
func (s *Set[K]) RemoveStrict(key K) error {
	if !s.Remove(key) {
		str := fmt.Sprintf("key %v is not a member of the set", key)
		log.Debugf("Strict removal failed: %s", str)
		return setError(ErrKeyNotFound, str)
	}
	return nil
}

// Neighbor returns the member adjacent to key in the given direction.  The key
// need not be a member.  The second return value is false when there is no
// such member.
func (s *Set[K]) Neighbor(key K, dir Direction) (K, bool) {
	return treap.Neighbor(s.root, key, dir, s.compare)
}

// Before returns the largest member strictly less than key.
func (s *Set[K]) Before(key K) (K, bool) {
	return s.Neighbor(key, Before)
}

// After returns the smallest member strictly greater than key.
func (s *Set[K]) After(key K) (K, bool) {
	return s.Neighbor(key, After)
}

// NextLarger is an alias for After.
func (s *Set[K]) NextLarger(key K) (K, bool) {
	return s.Neighbor(key, After)
}

// Min returns the smallest member.  The second return value is false when the
// set is empty.
func (s *Set[K]) Min() (K, bool) {
	return treap.Min(s.root)
}

// Max returns the largest member.  The second return value is false when the
// set is empty.
func (s *Set[K]) Max() (K, bool) {
	return treap.Max(s.root)
}

// ForEach invokes the passed function with every member in ascending order.
// Iteration stops early when the function returns false.  The set must not be
// modified from within the function.
func (s *Set[K]) ForEach(fn func(key K) bool) {
	treap.ForEach(s.root, fn)
}

// Keys returns all members in ascending order.
func (s *Set[K]) Keys() []K {
	keys := make([]K, 0, s.size)
	treap.ForEach(s.root, func(key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Reset efficiently removes all members from the set.
func (s *Set[K]) Reset() {
	log.Debugf("Resetting set holding %d keys", s.size)
	s.root = nil
	s.size = 0
}

// Height returns the number of nodes on the longest path from the root of the
// backing tree to a leaf.  It walks the whole tree and is meant for
// diagnostics.
func (s *Set[K]) Height() int {
	return treap.Height(s.root)
}

// Count returns the number of members by walking the backing tree.  It is
// meant for diagnostics.  Use Len otherwise.
func (s *Set[K]) Count() int {
	return treap.Count(s.root)
}

// Verify checks the ordering invariants of the backing tree and that it holds
// exactly Len members.  Violations are reported with ErrCorruptTree.
func (s *Set[K]) Verify() error {
	if err := treap.Verify(s.root, s.compare, s.size); err != nil {
		log.Errorf("Set failed verification: %v", err)
		return setError(ErrCorruptTree, err.Error())
	}
	return nil
}
