// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

// Contains returns whether key is in the tree rooted at root.
func Contains[K any](root *Node[K], key K, compare Compare[K]) bool {
	for node := root; node != nil; {
		compareResult := compare(key, node.key)
		if compareResult < 0 {
			node = node.left
			continue
		}
		if compareResult > 0 {
			node = node.right
			continue
		}
		return true
	}
	return false
}

// Neighbor returns the key adjacent to key in sorted order in the given
// direction.  The key itself need not be in the tree.  The second return value
// is false when no such key exists.
//
// The search carries the best candidate seen so far.  Descending away from the
// requested direction passes a key on the requested side, which becomes the
// new best.  On an exact match the answer is the nearest key within the
// match's subtree on the requested side, falling back to the best candidate.
func Neighbor[K any](root *Node[K], key K, dir Direction, compare Compare[K]) (K, bool) {
	var best *Node[K]
	for node := root; node != nil; {
		compareResult := compare(key, node.key)
		if compareResult < 0 {
			if dir == After {
				best = node
			}
			node = node.left
			continue
		}
		if compareResult > 0 {
			if dir == Before {
				best = node
			}
			node = node.right
			continue
		}

		// The key is an exact match, so the neighbor is the closest key
		// in the subtree on the requested side when there is one.
		if dir == Before {
			if sub := node.left; sub != nil {
				best = rightmost(sub)
			}
		} else if sub := node.right; sub != nil {
			best = leftmost(sub)
		}
		break
	}

	if best == nil {
		var zero K
		return zero, false
	}
	return best.key, true
}

// leftmost returns the node with the smallest key in the non-empty subtree
// rooted at node.
func leftmost[K any](node *Node[K]) *Node[K] {
	for node.left != nil {
		node = node.left
	}
	return node
}

// rightmost returns the node with the largest key in the non-empty subtree
// rooted at node.
func rightmost[K any](node *Node[K]) *Node[K] {
	for node.right != nil {
		node = node.right
	}
	return node
}

// Min returns the smallest key in the tree.  The second return value is false
// when the tree is empty.
func Min[K any](root *Node[K]) (K, bool) {
	if root == nil {
		var zero K
		return zero, false
	}
	return leftmost(root).key, true
}

// Max returns the largest key in the tree.  The second return value is false
// when the tree is empty.
func Max[K any](root *Node[K]) (K, bool) {
	if root == nil {
		var zero K
		return zero, false
	}
	return rightmost(root).key, true
}
