// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package query implements the text drivers for ordered sets and the pokedex.

The set driver reads a whitespace separated stream.  The first token is the
number of commands that follow.  Each command operates on one of the sets
created so far, addressed by its zero-based creation index:

	make                 create a new empty set
	add i v              print 1 if v was added to set i, 0 if already present
	remove i v           print 1 if v was removed from set i, 0 if absent
	contains i v         print 1 if v is in set i, 0 otherwise
	next_larger i v      print the smallest member of set i greater than v, or !
	prev_smaller i v     print the largest member of set i less than v, or !
	len i                print the number of members of set i

Keys are signed 64-bit integers.

The pokedex driver reads one command per line:

	catch NAME           record NAME
	before NAME          report the caught name before NAME
	after NAME           report the caught name after NAME

Blank lines and lines starting with # are skipped.
*/
package query
