// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build treapdebug

package treap

import "fmt"

// debugChecks enables the precondition assertions in Merge.
const debugChecks = true

// assertOrdered panics unless every key in left is strictly less than every
// key in right.
func assertOrdered[K any](left, right *Node[K], compare Compare[K]) {
	if left == nil || right == nil {
		return
	}
	maxLeft, minRight := rightmost(left), leftmost(right)
	if compare(maxLeft.key, minRight.key) >= 0 {
		panic(fmt.Sprintf("treap: merge of overlapping trees (left max "+
			"%v, right min %v)", maxLeft.key, minRight.key))
	}
}
