// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package priority provides the sources of random heap priorities consumed by the
treap-backed ordered sets in this module.

A treap only stays balanced in expectation when node priorities are independent
of the keys and uniformly distributed.  When the keys come from an untrusted
party, the priorities must also be unpredictable to that party, otherwise a
chosen sequence of keys can degrade the tree into a list.  NewUnpredictable is
the right choice in that case.  NewSeeded produces a reproducible sequence which
is useful for tests and for replaying a run.

Sources are not safe for concurrent use.  Each set owns the source it was
created with.
*/
package priority
