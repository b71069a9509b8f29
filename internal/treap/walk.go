// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import "fmt"

// ForEach invokes the passed function with every key in the tree in ascending
// order.  Iteration stops early when the function returns false.
func ForEach[K any](root *Node[K], fn func(key K) bool) {
	// Add the root node and all children to the left of it to the list of
	// nodes to traverse and loop until they, and all of their child nodes,
	// have been traversed.
	var parents parentStack[K]
	for node := root; node != nil; node = node.left {
		parents.Push(node)
	}
	for parents.Len() > 0 {
		node := parents.Pop()
		if !fn(node.key) {
			return
		}

		// Extend the nodes to traverse by all children to the left of
		// the current node's right child.
		for node := node.right; node != nil; node = node.left {
			parents.Push(node)
		}
	}
}

// Count returns the number of nodes in the tree by walking it.  Callers that
// need the size on a hot path must maintain their own counter.
func Count[K any](root *Node[K]) int {
	var count int
	ForEach(root, func(K) bool {
		count++
		return true
	})
	return count
}

// Height returns the number of nodes on the longest root-to-leaf path, which
// is zero for an empty tree.
func Height[K any](root *Node[K]) int {
	if root == nil {
		return 0
	}

	// Walk the tree one level at a time.
	var height int
	level := []*Node[K]{root}
	for len(level) > 0 {
		height++
		var next []*Node[K]
		for _, node := range level {
			if node.left != nil {
				next = append(next, node.left)
			}
			if node.right != nil {
				next = append(next, node.right)
			}
		}
		level = next
	}
	return height
}

// bounded is a node awaiting verification along with the exclusive key range
// its subtree must fall within.
type bounded[K any] struct {
	node         *Node[K]
	lower, upper *Node[K]
}

// Verify checks the tree rooted at root for the binary search tree ordering of
// keys, the heap ordering of priorities, and that it holds exactly wantCount
// nodes.  A negative wantCount skips the count check.  It returns a descriptive
// error for the first violation found.
func Verify[K any](root *Node[K], compare Compare[K], wantCount int) error {
	var count int
	pending := []bounded[K]{{node: root}}
	for len(pending) > 0 {
		item := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		node := item.node
		if node == nil {
			continue
		}
		count++

		if item.lower != nil && compare(item.lower.key, node.key) >= 0 {
			return fmt.Errorf("key %v is not greater than ancestor key %v",
				node.key, item.lower.key)
		}
		if item.upper != nil && compare(node.key, item.upper.key) >= 0 {
			return fmt.Errorf("key %v is not less than ancestor key %v",
				node.key, item.upper.key)
		}
		for _, child := range [2]*Node[K]{node.left, node.right} {
			if child != nil && child.priority > node.priority {
				return fmt.Errorf("child %v priority %d exceeds parent "+
					"%v priority %d", child.key, child.priority,
					node.key, node.priority)
			}
		}

		pending = append(pending,
			bounded[K]{node: node.left, lower: item.lower, upper: node},
			bounded[K]{node: node.right, lower: node, upper: item.upper})
	}

	if wantCount >= 0 && count != wantCount {
		return fmt.Errorf("tree holds %d nodes, want %d", count, wantCount)
	}
	return nil
}
