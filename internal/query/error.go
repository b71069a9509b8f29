// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package query

import "fmt"

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrMalformedInput indicates the input ended early, the command count
	// was not a non-negative integer, or a command was missing arguments.
	ErrMalformedInput ErrorCode = iota

	// ErrUnknownCommand indicates a command name that is not recognized.
	ErrUnknownCommand

	// ErrSetIndex indicates a command referenced a set that has not been
	// created.
	ErrSetIndex

	// ErrInvalidKey indicates a key could not be parsed as an integer.
	ErrInvalidKey

	// ErrAbsentKey indicates a removal of a key that is not a member while
	// strict removal is enabled.
	ErrAbsentKey

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrMalformedInput: "ErrMalformedInput",
	ErrUnknownCommand: "ErrUnknownCommand",
	ErrSetIndex:       "ErrSetIndex",
	ErrInvalidKey:     "ErrInvalidKey",
	ErrAbsentKey:      "ErrAbsentKey",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error identifies a problem with a command stream.  The caller can use
// errors.As to access the ErrorCode field and ascertain the specific reason.
type Error struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// queryError creates an Error given a set of arguments.
func queryError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}
