// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import "fmt"

// staticDepth is the size of the static array to use for keeping track of the
// parent stack during traversal.  Since a treap has a very high probability
// that the tree height is logarithmic, it is exceedingly unlikely that the
// parent stack will ever exceed this size even for extremely large numbers of
// keys.
const staticDepth = 128

// Compare reports the ordering of two keys: negative when a < b, zero when
// they are equal, and positive when a > b.
type Compare[K any] func(a, b K) int

// Direction selects which neighbor of a key a search returns.
type Direction int

const (
	// Before selects the largest key strictly less than the search key.
	Before Direction = iota

	// After selects the smallest key strictly greater than the search key.
	After
)

// String returns the Direction as a human-readable name.
func (d Direction) String() string {
	switch d {
	case Before:
		return "before"
	case After:
		return "after"
	}
	return fmt.Sprintf("Unknown Direction (%d)", int(d))
}

// Node is a single key in a treap.  A node exclusively owns its children.
type Node[K any] struct {
	key      K
	priority uint64
	left     *Node[K]
	right    *Node[K]
}

// newNode returns a new node from the given key and priority.  The node is not
// initially linked to any others.
func newNode[K any](key K, priority uint64) *Node[K] {
	return &Node[K]{key: key, priority: priority}
}

// Key returns the key held by the node.
func (n *Node[K]) Key() K {
	return n.key
}

// Priority returns the heap priority drawn for the node when it was created.
func (n *Node[K]) Priority() uint64 {
	return n.priority
}

// parentStack represents a stack of parent treap nodes that are used during
// traversal.  It consists of a static array for holding the parents and a
// dynamic overflow slice.  It is extremely unlikely the overflow will ever be
// hit during normal operation, however, since a treap's height is
// probabilistic, the overflow case needs to be handled properly.
type parentStack[K any] struct {
	index    int
	items    [staticDepth]*Node[K]
	overflow []*Node[K]
}

// Len returns the current number of items in the stack.
func (s *parentStack[K]) Len() int {
	return s.index
}

// At returns the item n number of items from the top of the stack, where 0 is
// the topmost item, without removing it.  It returns nil if n exceeds the
// number of items on the stack.
func (s *parentStack[K]) At(n int) *Node[K] {
	index := s.index - n - 1
	if index < 0 {
		return nil
	}

	if index < staticDepth {
		return s.items[index]
	}

	return s.overflow[index-staticDepth]
}

// Pop removes the top item from the stack.  It returns nil if the stack is
// empty.
func (s *parentStack[K]) Pop() *Node[K] {
	if s.index == 0 {
		return nil
	}

	s.index--
	if s.index < staticDepth {
		node := s.items[s.index]
		s.items[s.index] = nil
		return node
	}

	node := s.overflow[s.index-staticDepth]
	s.overflow[s.index-staticDepth] = nil
	return node
}

// Push pushes the passed item onto the top of the stack.
func (s *parentStack[K]) Push(node *Node[K]) {
	if s.index < staticDepth {
		s.items[s.index] = node
		s.index++
		return
	}

	// The overflow only grows one slot at a time since reaching each
	// additional level requires exponentially more keys.
	index := s.index - staticDepth
	if index+1 > len(s.overflow) {
		s.overflow = append(s.overflow, nil)
	}
	s.overflow[index] = node
	s.index++
}
