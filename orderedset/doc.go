// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package orderedset provides a generic ordered set backed by a treap.

Keys are kept unique and sorted.  Besides membership, the set answers neighbor
queries: the largest key strictly before an arbitrary key and the smallest key
strictly after it, whether or not that key is itself a member.  Add, Remove,
Contains and the neighbor queries all run in expected O(log n) time, and Len is
O(1).

The balance of the underlying treap depends on the priority source the set is
created with.  When keys are supplied by an untrusted party, use an
unpredictable source (the default) so the party cannot force a degenerate
shape.

A Set is not safe for concurrent access.  Callers that share a set between
goroutines must serialize all access, including reads.

# Errors

RemoveStrict and Verify return errors of type Error.  The ErrorCode field
identifies the specific failure:

	if err := set.RemoveStrict(key); err != nil {
		var sErr orderedset.Error
		if errors.As(err, &sErr) && sErr.ErrorCode == orderedset.ErrKeyNotFound {
			// The key was not a member.
		}
	}
*/
package orderedset
