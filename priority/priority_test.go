// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package priority

import (
	"testing"
)

// TestSeededDeterministic ensures two seeded sources with the same seed produce
// identical sequences while different seeds diverge.
func TestSeededDeterministic(t *testing.T) {
	t.Parallel()

	const numDraws = 64
	a, b, c := NewSeeded(7), NewSeeded(7), NewSeeded(8)
	var diverged bool
	for i := 0; i < numDraws; i++ {
		gotA, gotB, gotC := a.Uint64(), b.Uint64(), c.Uint64()
		if gotA != gotB {
			t.Fatalf("Uint64 #%d: mismatched draws - got %d, want %d",
				i, gotB, gotA)
		}
		if gotA != gotC {
			diverged = true
		}
	}
	if !diverged {
		t.Fatalf("Uint64: seeds 7 and 8 produced the same %d draws",
			numDraws)
	}
}

// TestUnpredictableDistinct ensures unpredictable sources do not repeat values
// over a short run, which would indicate a broken seed.
func TestUnpredictableDistinct(t *testing.T) {
	t.Parallel()

	src := NewUnpredictable()
	seen := make(map[uint64]struct{})
	for i := 0; i < 1000; i++ {
		v := src.Uint64()
		if _, ok := seen[v]; ok {
			t.Fatalf("Uint64 #%d: repeated priority %d", i, v)
		}
		seen[v] = struct{}{}
	}
}

// TestSequence ensures the sequence source replays its values and wraps.
func TestSequence(t *testing.T) {
	t.Parallel()

	src := Sequence(3, 1, 2)
	want := []uint64{3, 1, 2, 3, 1, 2, 3}
	for i, w := range want {
		if got := src.Uint64(); got != w {
			t.Fatalf("Uint64 #%d: got %d, want %d", i, got, w)
		}
	}
}

// TestSequenceEmpty ensures an empty sequence is rejected.
func TestSequenceEmpty(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("Sequence: did not panic on empty input")
		}
	}()
	Sequence()
}

// TestFunc ensures the adapter forwards to the wrapped function.
func TestFunc(t *testing.T) {
	t.Parallel()

	var calls uint64
	src := Func(func() uint64 {
		calls++
		return calls * 10
	})
	if got := src.Uint64(); got != 10 {
		t.Fatalf("Uint64: got %d, want 10", got)
	}
	if got := src.Uint64(); got != 20 {
		t.Fatalf("Uint64: got %d, want 20", got)
	}
}
