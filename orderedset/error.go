// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package orderedset

import "fmt"

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrKeyNotFound indicates a strict removal was requested for a key
	// that is not a member of the set.
	ErrKeyNotFound ErrorCode = iota

	// ErrCorruptTree indicates the tree backing a set violates one of its
	// ordering invariants or disagrees with the maintained size.
	ErrCorruptTree

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrKeyNotFound: "ErrKeyNotFound",
	ErrCorruptTree: "ErrCorruptTree",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error identifies a set operation failure.  The caller can use errors.As to
// determine if a failure came from this package and access the ErrorCode field
// to ascertain the specific reason.
type Error struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// setError creates an Error given a set of arguments.
func setError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}
