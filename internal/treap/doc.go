// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package treap implements the engine behind the ordered sets in this module: a
randomized binary search tree which is kept balanced in expectation by heap
ordering on per-node random priorities.

Every structural change is expressed in terms of two primitives.  Split cuts a
tree around a key into the nodes strictly less than the key, the node equal to
it (if any), and the nodes strictly greater than it.  Merge joins two trees
whose key ranges do not overlap, picking roots by priority.  Insert and Remove
are a Split followed by Merges.

None of the functions recurse.  Split and Merge thread their output through
child slots in a single downward pass, and traversals keep their own parent
stack, so a tree of unlucky height cannot exhaust the goroutine stack.

A tree is owned by exactly one caller.  Nodes are moved, never copied, and the
package performs no locking.
*/
package treap
