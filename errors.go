// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecdsa

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrMalformedEncoding is returned when a buffer that should contain a
	// DER structure has a wrong tag, an inconsistent or truncated length
	// field, or otherwise violates the encoding rules.
	ErrMalformedEncoding = ErrorKind("ErrMalformedEncoding")

	// ErrUnknownCurve is returned when a decoded curve object identifier
	// does not match any curve in the registry.
	ErrUnknownCurve = ErrorKind("ErrUnknownCurve")

	// ErrMalformedKey is returned when a secret exponent is outside the
	// range [1, order), a serialized key has the wrong length, or a public
	// point does not satisfy the curve equation.
	ErrMalformedKey = ErrorKind("ErrMalformedKey")

	// ErrMalformedSignature is returned when a raw signature is not exactly
	// twice the curve byte length or a DER signature has trailing bytes
	// after the sequence.
	ErrMalformedSignature = ErrorKind("ErrMalformedSignature")

	// ErrBadSignature is returned when a well-formed signature fails the
	// verification equation.  This is the expected outcome of checking a
	// forged or corrupted signature, as opposed to an unusable input.
	ErrBadSignature = ErrorKind("ErrBadSignature")

	// ErrUnsupportedValue is returned when attempting to DER-encode a value
	// the codec does not support, such as a negative integer.
	ErrUnsupportedValue = ErrorKind("ErrUnsupportedValue")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to keys, signatures, or their
// serialized forms.  It has full support for errors.Is and errors.As, so the
// caller can ascertain the specific reason for the error by checking the
// underlying error kind.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
