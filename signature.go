// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecdsa

import (
	"fmt"
	"math/big"
)

// SignatureEncoder converts an (r, s) pair into a wire form for the given
// curve.  SignatureDecoder reverses it.  Both the fixed-width raw codec and
// the DER codec satisfy these types, and callers may substitute their own.
type SignatureEncoder func(r, s *big.Int, curve *Curve) ([]byte, error)

// SignatureDecoder converts wire bytes back into an (r, s) pair for the
// given curve.
type SignatureDecoder func(sig []byte, curve *Curve) (r, s *big.Int, err error)

// EncodeSignatureRaw serializes r and s as two fixed-width big-endian
// strings of the curve's byte length, concatenated.  This is the default
// signature form.
func EncodeSignatureRaw(r, s *big.Int, curve *Curve) ([]byte, error) {
	out := make([]byte, curve.SignatureLen())
	r.FillBytes(out[:curve.BaseLen])
	s.FillBytes(out[curve.BaseLen:])
	return out, nil
}

// DecodeSignatureRaw parses a fixed-width raw signature.  Any input whose
// length is not exactly twice the curve's byte length fails with
// ErrMalformedSignature.
func DecodeSignatureRaw(sig []byte, curve *Curve) (*big.Int, *big.Int, error) {
	if len(sig) != curve.SignatureLen() {
		return nil, nil, makeError(ErrMalformedSignature, fmt.Sprintf(
			"raw signature is %d bytes, want %d for %v",
			len(sig), curve.SignatureLen(), curve))
	}
	r := new(big.Int).SetBytes(sig[:curve.BaseLen])
	s := new(big.Int).SetBytes(sig[curve.BaseLen:])
	return r, s, nil
}

// EncodeSignatureDER serializes r and s as a DER SEQUENCE of two INTEGERs.
func EncodeSignatureDER(r, s *big.Int, curve *Curve) ([]byte, error) {
	rEnc, err := EncodeInteger(r)
	if err != nil {
		return nil, err
	}
	sEnc, err := EncodeInteger(s)
	if err != nil {
		return nil, err
	}
	return EncodeSequence(rEnc, sEnc), nil
}

// DecodeSignatureDER parses a DER SEQUENCE of two INTEGERs.  Structural
// violations fail with ErrMalformedEncoding; trailing bytes after the
// sequence fail with ErrMalformedSignature.
func DecodeSignatureDER(sig []byte, curve *Curve) (*big.Int, *big.Int, error) {
	body, rest, err := RemoveSequence(sig)
	if err != nil {
		return nil, nil, err
	}
	if len(rest) != 0 {
		return nil, nil, makeError(ErrMalformedSignature, fmt.Sprintf(
			"%d trailing bytes after DER signature", len(rest)))
	}
	r, body, err := RemoveInteger(body)
	if err != nil {
		return nil, nil, err
	}
	s, body, err := RemoveInteger(body)
	if err != nil {
		return nil, nil, err
	}
	if len(body) != 0 {
		return nil, nil, makeError(ErrMalformedEncoding, fmt.Sprintf(
			"%d trailing bytes inside DER signature sequence", len(body)))
	}
	return r, s, nil
}

// SplitSignatureRaw returns the two fixed-width halves of a raw signature as
// separate strings, for callers that transport r and s independently.
func SplitSignatureRaw(sig []byte, curve *Curve) (rStr, sStr []byte, err error) {
	if len(sig) != curve.SignatureLen() {
		return nil, nil, makeError(ErrMalformedSignature, fmt.Sprintf(
			"raw signature is %d bytes, want %d for %v",
			len(sig), curve.SignatureLen(), curve))
	}
	return sig[:curve.BaseLen], sig[curve.BaseLen:], nil
}
