// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import "github.com/btcsuite/treapdex/priority"

// Split cuts the tree rooted at root around key.  It returns the tree of all
// nodes with keys less than key, the node whose key equals key (or nil), and
// the tree of all nodes with keys greater than key.  A matched node is
// detached with both of its children cleared.
//
// Only keys are compared.  The heap ordering of each output follows from the
// heap ordering of the input since every node keeps a subset of its former
// descendants.
func Split[K any](root *Node[K], key K, compare Compare[K]) (left, match, right *Node[K]) {
	// leftSlot and rightSlot are the child pointers which receive the next
	// node that belongs to the respective output.  Nodes greater than the
	// key hang off the right output through their left children and vice
	// versa.
	leftSlot, rightSlot := &left, &right
	for node := root; node != nil; {
		compareResult := compare(key, node.key)
		if compareResult < 0 {
			*rightSlot = node
			rightSlot = &node.left
			node = node.left
			continue
		}
		if compareResult > 0 {
			*leftSlot = node
			leftSlot = &node.right
			node = node.right
			continue
		}

		// The key is an exact match.  Its subtrees complete the outputs.
		*leftSlot, *rightSlot = node.left, node.right
		node.left, node.right = nil, nil
		return left, node, right
	}

	*leftSlot, *rightSlot = nil, nil
	return left, nil, right
}

// Merge joins two trees into one.  Every key in left must be strictly less
// than every key in right.  That precondition is only checked in builds with
// the treapdebug tag, which is the only use of compare.
//
// The root with the strictly higher priority wins.  Ties go to the right tree.
// The losing tree is merged into the winner's inward facing child.
func Merge[K any](left, right *Node[K], compare Compare[K]) *Node[K] {
	if debugChecks {
		assertOrdered(left, right, compare)
	}

	var root *Node[K]
	slot := &root
	for left != nil && right != nil {
		if left.priority > right.priority {
			*slot = left
			slot = &left.right
			left = left.right
			continue
		}

		*slot = right
		slot = &right.left
		right = right.left
	}
	if left != nil {
		*slot = left
	} else {
		*slot = right
	}
	return root
}

// Insert adds key to the tree rooted at root and returns the new root along
// with whether the key was absent.  Exactly one node is allocated, with a
// priority drawn from src, when the key is absent.  Inserting a key which is
// already present leaves the key set and the tree's in-order sequence
// unchanged and draws nothing from src.
func Insert[K any](root *Node[K], key K, compare Compare[K], src priority.Source) (*Node[K], bool) {
	left, match, right := Split(root, key, compare)
	inserted := match == nil
	if inserted {
		match = newNode(key, src.Uint64())
	}
	return Merge(Merge(left, match, compare), right, compare), inserted
}

// Remove deletes key from the tree rooted at root and returns the new root
// along with whether the key was present.  Removing an absent key is a no-op.
func Remove[K any](root *Node[K], key K, compare Compare[K]) (*Node[K], bool) {
	left, match, right := Split(root, key, compare)
	return Merge(left, right, compare), match != nil
}
