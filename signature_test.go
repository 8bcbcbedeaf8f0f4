// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecdsa

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignatureRawRoundTrip(t *testing.T) {
	curve := NIST192p()
	r := big.NewInt(0x1234)
	s := new(big.Int).Sub(curve.Order, big.NewInt(1))

	sig, err := EncodeSignatureRaw(r, s, curve)
	require.NoError(t, err)
	require.Len(t, sig, curve.SignatureLen())

	r2, s2, err := DecodeSignatureRaw(sig, curve)
	require.NoError(t, err)
	assert.Zero(t, r.Cmp(r2))
	assert.Zero(t, s.Cmp(s2))

	rHalf, sHalf, err := SplitSignatureRaw(sig, curve)
	require.NoError(t, err)
	assert.Equal(t, sig[:curve.BaseLen], rHalf)
	assert.Equal(t, sig[curve.BaseLen:], sHalf)
}

func TestSignatureRawBadLength(t *testing.T) {
	curve := NIST192p()

	_, _, err := DecodeSignatureRaw(make([]byte, curve.SignatureLen()-1), curve)
	assert.ErrorIs(t, err, ErrMalformedSignature)

	_, _, err = DecodeSignatureRaw(make([]byte, curve.SignatureLen()+1), curve)
	assert.ErrorIs(t, err, ErrMalformedSignature)

	_, _, err = SplitSignatureRaw(nil, curve)
	assert.ErrorIs(t, err, ErrMalformedSignature)
}

func TestSignatureDERRoundTrip(t *testing.T) {
	curve := NIST256p()
	priv, err := SigningKeyFromSeed([]byte("der-sig"), curve)
	require.NoError(t, err)
	data := []byte("data")

	sig, err := priv.Sign(data, nil, nil, EncodeSignatureDER)
	require.NoError(t, err)

	// DER output starts with a SEQUENCE tag, unlike the fixed raw form.
	require.NotEmpty(t, sig)
	assert.EqualValues(t, 0x30, sig[0])

	assert.NoError(t, priv.VerifyingKey().Verify(sig, data, nil, DecodeSignatureDER))

	r, s, err := DecodeSignatureDER(sig, curve)
	require.NoError(t, err)
	reencoded, err := EncodeSignatureDER(r, s, curve)
	require.NoError(t, err)
	assert.Equal(t, sig, reencoded)
}

func TestSignatureDERMalformed(t *testing.T) {
	curve := NIST256p()
	r, s := big.NewInt(5), big.NewInt(7)
	sig, err := EncodeSignatureDER(r, s, curve)
	require.NoError(t, err)

	// Bytes after the outer sequence.
	_, _, err = DecodeSignatureDER(append(sig, 0x00), curve)
	assert.ErrorIs(t, err, ErrMalformedSignature)

	// Bytes inside the sequence after the two integers.
	inner := EncodeSequence(mustInt(t, r), mustInt(t, s), []byte{0x00})
	_, _, err = DecodeSignatureDER(inner, curve)
	assert.ErrorIs(t, err, ErrMalformedEncoding)

	// Not a sequence at all.
	_, _, err = DecodeSignatureDER([]byte{0x02, 0x01, 0x05}, curve)
	assert.ErrorIs(t, err, ErrMalformedEncoding)
}

func TestVerifyRejectsOutOfRangeComponents(t *testing.T) {
	curve := NIST192p()
	priv, err := SigningKeyFromSeed([]byte("range"), curve)
	require.NoError(t, err)
	pub := priv.VerifyingKey()
	data := []byte("data")

	cases := []struct {
		name string
		r, s *big.Int
	}{
		{"zero r", big.NewInt(0), big.NewInt(1)},
		{"zero s", big.NewInt(1), big.NewInt(0)},
		{"r at order", curve.Order, big.NewInt(1)},
		{"s at order", big.NewInt(1), curve.Order},
	}
	for _, tc := range cases {
		sig, err := EncodeSignatureRaw(tc.r, tc.s, curve)
		require.NoError(t, err, tc.name)
		assert.ErrorIs(t, pub.Verify(sig, data, nil, nil), ErrBadSignature,
			tc.name)
	}
}

func mustInt(t *testing.T, n *big.Int) []byte {
	t.Helper()
	enc, err := EncodeInteger(n)
	require.NoError(t, err)
	return enc
}
