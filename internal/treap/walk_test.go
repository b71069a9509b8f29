// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import (
	"cmp"
	"reflect"
	"strings"
	"testing"

	"github.com/btcsuite/treapdex/priority"
)

// buildChain returns a degenerate tree of numKeys sequential keys where every
// node only has a left child.  Ascending keys with ascending priorities force
// each new key to become the root.
func buildChain(numKeys int) *Node[int] {
	var next uint64
	src := priority.Func(func() uint64 {
		next++
		return next
	})
	var root *Node[int]
	for key := 0; key < numKeys; key++ {
		root, _ = Insert(root, key, cmp.Compare[int], src)
	}
	return root
}

// TestForEach ensures keys are visited in ascending order and that returning
// false stops the iteration.
func TestForEach(t *testing.T) {
	t.Parallel()

	keys := []int{9, 1, 8, 2, 7, 3, 6, 4, 5}
	root := buildTree(keys, 9)

	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if got := inOrder(root); !reflect.DeepEqual(got, want) {
		t.Fatalf("ForEach: got %v, want %v", got, want)
	}

	var visited []int
	ForEach(root, func(key int) bool {
		visited = append(visited, key)
		return key < 4
	})
	if !reflect.DeepEqual(visited, []int{1, 2, 3, 4}) {
		t.Fatalf("ForEach: early stop visited %v", visited)
	}

	var numIterated int
	ForEach[int](nil, func(int) bool {
		numIterated++
		return true
	})
	if numIterated != 0 {
		t.Fatalf("ForEach: unexpected iterate count - got %d, want 0",
			numIterated)
	}
}

// TestDegenerateTree ensures a tree far deeper than the static parent stack is
// handled by every traversal.
func TestDegenerateTree(t *testing.T) {
	t.Parallel()

	const numKeys = 5 * staticDepth
	root := buildChain(numKeys)

	if got := Height(root); got != numKeys {
		t.Fatalf("Height: got %d, want %d", got, numKeys)
	}
	if got := Count(root); got != numKeys {
		t.Fatalf("Count: got %d, want %d", got, numKeys)
	}
	if err := Verify(root, cmp.Compare[int], numKeys); err != nil {
		t.Fatalf("Verify: %v", err)
	}

	var want int
	ForEach(root, func(key int) bool {
		if key != want {
			t.Fatalf("ForEach: got %d, want %d", key, want)
		}
		want++
		return true
	})

	if !Contains(root, 0, cmp.Compare[int]) {
		t.Fatal("Contains 0: deepest key not found")
	}
	if got, ok := Neighbor(root, 0, After, cmp.Compare[int]); !ok || got != 1 {
		t.Fatalf("Neighbor(0, after): got (%d, %v), want 1", got, ok)
	}
	if got, ok := Neighbor(root, numKeys, Before, cmp.Compare[int]); !ok ||
		got != numKeys-1 {

		t.Fatalf("Neighbor(%d, before): got (%d, %v), want %d", numKeys,
			got, ok, numKeys-1)
	}
}

// TestHeightCount ensures the diagnostics report empty and small trees
// correctly.
func TestHeightCount(t *testing.T) {
	t.Parallel()

	if got := Height[int](nil); got != 0 {
		t.Fatalf("Height: got %d, want 0", got)
	}
	if got := Count[int](nil); got != 0 {
		t.Fatalf("Count: got %d, want 0", got)
	}

	root := buildTree([]int{1, 2, 3, 4, 5, 6, 7}, 10)
	if got := Count(root); got != 7 {
		t.Fatalf("Count: got %d, want 7", got)
	}
	if got := Height(root); got < 3 || got > 7 {
		t.Fatalf("Height: got %d, want within [3, 7]", got)
	}
}

// TestVerify ensures each kind of invariant violation is detected.
func TestVerify(t *testing.T) {
	t.Parallel()

	// misorderedDeep places a key in the right subtree of its
	// grandparent even though it is less than the grandparent.
	misorderedDeep := newNode(10, 9)
	misorderedDeep.right = newNode(20, 8)
	misorderedDeep.right.left = newNode(5, 7)

	heapViolation := newNode(10, 1)
	heapViolation.left = newNode(5, 2)

	duplicate := newNode(10, 9)
	duplicate.right = newNode(10, 8)

	tests := []struct {
		name      string
		root      *Node[int]
		wantCount int
		wantErr   string
	}{
		{name: "empty", root: nil, wantCount: 0},
		{name: "valid", root: buildTree([]int{3, 1, 2}, 11), wantCount: 3},
		{name: "skip count", root: buildTree([]int{3, 1, 2}, 11), wantCount: -1},
		{name: "wrong count", root: buildTree([]int{3, 1, 2}, 11),
			wantCount: 4, wantErr: "holds 3 nodes"},
		{name: "misordered", root: misorderedDeep, wantCount: 3,
			wantErr: "not greater than ancestor"},
		{name: "heap", root: heapViolation, wantCount: 2,
			wantErr: "priority 2 exceeds"},
		{name: "duplicate", root: duplicate, wantCount: 2,
			wantErr: "not greater than ancestor"},
	}

	for _, test := range tests {
		err := Verify(test.root, cmp.Compare[int], test.wantCount)
		if test.wantErr == "" {
			if err != nil {
				t.Errorf("%q: unexpected error: %v", test.name, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), test.wantErr) {
			t.Errorf("%q: got error %v, want one containing %q",
				test.name, err, test.wantErr)
		}
	}
}
