// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package priority

import (
	crand "crypto/rand"
	"math/rand/v2"
)

// pcgIncrement is mixed into the second PCG word so that a single seed value
// still yields a well-formed generator state.
const pcgIncrement = 0xda3e39cb94b95bdb

// Source supplies heap priorities.  Each call must return a fresh value drawn
// independently of all previous values.  *rand.Rand from math/rand/v2
// satisfies this interface directly.
type Source interface {
	Uint64() uint64
}

// Func adapts an ordinary function to the Source interface.
type Func func() uint64

// Uint64 returns the result of calling f.
func (f Func) Uint64() uint64 {
	return f()
}

// NewSeeded returns a deterministic source.  Two sources created with the same
// seed produce the same sequence of priorities.
func NewSeeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^pcgIncrement))
}

// NewUnpredictable returns a ChaCha8 source keyed from the operating system's
// entropy pool.  It panics if the entropy pool cannot be read, mirroring the
// behavior of the runtime when it is unable to seed its own generators.
func NewUnpredictable() Source {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		panic("priority: unable to read system entropy: " + err.Error())
	}
	return rand.New(rand.NewChaCha8(seed))
}

// Sequence returns a source which replays the passed priorities in order and
// wraps around once they are exhausted.  It is intended for tests which need to
// force a specific tree shape.  It panics when no priorities are provided.
func Sequence(priorities ...uint64) Source {
	if len(priorities) == 0 {
		panic("priority: empty sequence")
	}
	next := 0
	return Func(func() uint64 {
		p := priorities[next]
		next = (next + 1) % len(priorities)
		return p
	})
}
