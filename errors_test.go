// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecdsa

import (
	"errors"
	"testing"
)

// TestErrorKindStringer tests the stringized output for the ErrorKind type.
func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrMalformedEncoding, "ErrMalformedEncoding"},
		{ErrUnknownCurve, "ErrUnknownCurve"},
		{ErrMalformedKey, "ErrMalformedKey"},
		{ErrMalformedSignature, "ErrMalformedSignature"},
		{ErrBadSignature, "ErrBadSignature"},
		{ErrUnsupportedValue, "ErrUnsupportedValue"},
	}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestError tests the error output for the Error type.
func TestError(t *testing.T) {
	tests := []struct {
		in   Error
		want string
	}{{
		Error{Description: "some error"},
		"some error",
	}, {
		Error{Description: "human-readable error"},
		"human-readable error",
	}}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestErrorKindIsAs ensures both ErrorKind and Error can be identified as
// being a specific error kind via errors.Is and unwrapped via errors.As.
func TestErrorKindIsAs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
		wantAs    ErrorKind
	}{{
		name:      "ErrMalformedEncoding == ErrMalformedEncoding",
		err:       ErrMalformedEncoding,
		target:    ErrMalformedEncoding,
		wantMatch: true,
		wantAs:    ErrMalformedEncoding,
	}, {
		name:      "Error.ErrMalformedEncoding == ErrMalformedEncoding",
		err:       makeError(ErrMalformedEncoding, ""),
		target:    ErrMalformedEncoding,
		wantMatch: true,
		wantAs:    ErrMalformedEncoding,
	}, {
		name:      "Error.ErrMalformedEncoding == Error.ErrMalformedEncoding",
		err:       makeError(ErrMalformedEncoding, ""),
		target:    makeError(ErrMalformedEncoding, ""),
		wantMatch: true,
		wantAs:    ErrMalformedEncoding,
	}, {
		name:      "ErrBadSignature != ErrMalformedSignature",
		err:       ErrBadSignature,
		target:    ErrMalformedSignature,
		wantMatch: false,
		wantAs:    ErrBadSignature,
	}, {
		name:      "Error.ErrBadSignature != ErrMalformedSignature",
		err:       makeError(ErrBadSignature, ""),
		target:    ErrMalformedSignature,
		wantMatch: false,
		wantAs:    ErrBadSignature,
	}, {
		name:      "ErrBadSignature != Error.ErrMalformedSignature",
		err:       ErrBadSignature,
		target:    makeError(ErrMalformedSignature, ""),
		wantMatch: false,
		wantAs:    ErrBadSignature,
	}, {
		name:      "Error.ErrUnknownCurve != Error.ErrMalformedKey",
		err:       makeError(ErrUnknownCurve, ""),
		target:    makeError(ErrMalformedKey, ""),
		wantMatch: false,
		wantAs:    ErrUnknownCurve,
	}}

	for _, test := range tests {
		// Ensure the error matches or not depending on the expected result.
		result := errors.Is(test.err, test.target)
		if result != test.wantMatch {
			t.Errorf("%s: incorrect error identification -- got %v, want %v",
				test.name, result, test.wantMatch)
			continue
		}

		// Ensure the underlying error kind can be unwrapped and is the
		// expected kind.
		var kind ErrorKind
		if !errors.As(test.err, &kind) {
			t.Errorf("%s: unable to unwrap to error kind", test.name)
			continue
		}
		if kind != test.wantAs {
			t.Errorf("%s: unexpected unwrapped error kind -- got %v, want %v",
				test.name, kind, test.wantAs)
			continue
		}
	}
}
