// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build !treapdebug

package treap

const debugChecks = false

func assertOrdered[K any](left, right *Node[K], compare Compare[K]) {}
