// Copyright (c) 2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcjson

import (
	"fmt"
)

// ErrorCode identifies a kind of error.  These error codes are NOT used for
// JSON-RPC response errors and they are NOT used for user input validation
// failures, which are reported with ValidationErrors.  They describe misuse of
// the package itself or a payload that does not match the documented shape of
// the remote API.
type ErrorCode int

// These constants are used to identify a specific RuleError.
const (
	// ErrDuplicateMethod indicates a command with the specified method
	// already exists.
	ErrDuplicateMethod ErrorCode = iota

	// ErrInvalidType indicates a type was passed that is not the required
	// type.
	ErrInvalidType

	// ErrUnregisteredMethod indicates a method was specified that has not
	// been registered.
	ErrUnregisteredMethod

	// ErrShapeMismatch indicates the top-level JSON kind of a result (string,
	// object, array, ...) is not one the result type knows how to handle.
	// This signals a change of the remote API contract rather than bad user
	// input.
	ErrShapeMismatch

	// ErrEncode indicates a command parameter could not be marshalled into
	// its wire representation.
	ErrEncode

	// ErrRPCResponse indicates the remote server answered with a non-null
	// error object, so the result must not be parsed.
	ErrRPCResponse

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrDuplicateMethod:    "ErrDuplicateMethod",
	ErrInvalidType:        "ErrInvalidType",
	ErrUnregisteredMethod: "ErrUnregisteredMethod",
	ErrShapeMismatch:      "ErrShapeMismatch",
	ErrEncode:             "ErrEncode",
	ErrRPCResponse:        "ErrRPCResponse",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error identifies a general error.  This differs from an RPCError in that this
// error typically is used more by the consumers of the package as opposed to
// RPCErrors which are intended to be returned to the client across the wire via
// a JSON-RPC Response.  The caller can use type assertions to determine the
// specific error and access the ErrorCode field.
type Error struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Is allows errors.Is to match an Error against another Error value carrying
// the same code, regardless of the description.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok {
		return false
	}
	return t.ErrorCode == e.ErrorCode
}

// makeError creates an Error given a set of arguments.
func makeError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}
