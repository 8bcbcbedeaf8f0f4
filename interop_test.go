// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecdsa

import (
	stdecdsa "crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"math/big"
	"testing"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	decredecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/cryptobyte"
	cryptobyteasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// The DER and PEM key forms follow RFC 5915 and RFC 5480, so keys must move
// between this package and crypto/x509 in both directions without loss.
func TestX509KeyInterop(t *testing.T) {
	curves := []struct {
		ours *Curve
		std  elliptic.Curve
	}{
		{NIST256p(), elliptic.P256()},
		{NIST384p(), elliptic.P384()},
	}
	for _, tc := range curves {
		priv, err := GenerateKey(tc.ours, nil)
		require.NoError(t, err, tc.ours.Name)

		stdPriv, err := x509.ParseECPrivateKey(priv.SerializeDER())
		require.NoError(t, err, tc.ours.Name)
		assert.Zero(t, priv.Secret().Cmp(stdPriv.D), tc.ours.Name)

		parsed, err := x509.ParsePKIXPublicKey(priv.VerifyingKey().SerializeDER())
		require.NoError(t, err, tc.ours.Name)
		stdPub, ok := parsed.(*stdecdsa.PublicKey)
		require.True(t, ok, tc.ours.Name)
		x, y := priv.VerifyingKey().Point()
		assert.Zero(t, x.Cmp(stdPub.X), tc.ours.Name)
		assert.Zero(t, y.Cmp(stdPub.Y), tc.ours.Name)

		// And the way back.
		other, err := stdecdsa.GenerateKey(tc.std, rand.Reader)
		require.NoError(t, err, tc.ours.Name)
		otherDER, err := x509.MarshalECPrivateKey(other)
		require.NoError(t, err, tc.ours.Name)
		ourPriv, err := ParseSigningKeyDER(otherDER)
		require.NoError(t, err, tc.ours.Name)
		assert.Equal(t, tc.ours, ourPriv.Curve())
		assert.Zero(t, ourPriv.Secret().Cmp(other.D), tc.ours.Name)

		pubDER, err := x509.MarshalPKIXPublicKey(&other.PublicKey)
		require.NoError(t, err, tc.ours.Name)
		ourPub, err := ParseVerifyingKeyDER(pubDER)
		require.NoError(t, err, tc.ours.Name)
		assert.True(t, ourPriv.VerifyingKey().Equal(ourPub), tc.ours.Name)
	}
}

func TestStdlibSignatureInterop(t *testing.T) {
	priv, err := GenerateKey(NIST256p(), nil)
	require.NoError(t, err)
	data := []byte("data")
	digest := TruncatedDigest(sha256.New)

	parsed, err := x509.ParsePKIXPublicKey(priv.VerifyingKey().SerializeDER())
	require.NoError(t, err)
	stdPub := parsed.(*stdecdsa.PublicKey)

	// Our signature, their verifier.
	sig, err := priv.Sign(data, nil, digest, EncodeSignatureDER)
	require.NoError(t, err)
	hashed := sha256.Sum256(data)
	assert.True(t, stdecdsa.VerifyASN1(stdPub, hashed[:], sig))

	// Their signature, our verifier.
	stdPriv, err := x509.ParseECPrivateKey(priv.SerializeDER())
	require.NoError(t, err)
	stdSig, err := stdecdsa.SignASN1(rand.Reader, stdPriv, hashed[:])
	require.NoError(t, err)
	assert.NoError(t, priv.VerifyingKey().Verify(stdSig, data, digest,
		DecodeSignatureDER))
}

// An independent ASN.1 reader must agree with our hand-rolled DER encoder
// about what the signature contains.
func TestCryptobyteReadsDERSignature(t *testing.T) {
	curve := NIST256p()
	r := big.NewInt(0x0123456789abcdef)
	s := new(big.Int).Sub(curve.Order, big.NewInt(2))
	sig, err := EncodeSignatureDER(r, s, curve)
	require.NoError(t, err)

	var inner cryptobyte.String
	input := cryptobyte.String(sig)
	gotR, gotS := new(big.Int), new(big.Int)
	ok := input.ReadASN1(&inner, cryptobyteasn1.SEQUENCE) &&
		input.Empty() &&
		inner.ReadASN1Integer(gotR) &&
		inner.ReadASN1Integer(gotS) &&
		inner.Empty()
	require.True(t, ok)
	assert.Zero(t, r.Cmp(gotR))
	assert.Zero(t, s.Cmp(gotS))
}

func TestSecp256k1Interop(t *testing.T) {
	secret := make([]byte, 32)
	for i := range secret {
		secret[i] = byte(i + 1)
	}
	priv, err := SigningKeyFromSecret(new(big.Int).SetBytes(secret), SECP256k1())
	require.NoError(t, err)
	data := []byte("data")
	hashed := sha256.Sum256(data)
	digest := TruncatedDigest(sha256.New)

	dcrPriv := secp256k1.PrivKeyFromBytes(secret)
	dcrPub := dcrPriv.PubKey()

	// Both stacks must agree on the public point.
	assert.Equal(t, dcrPub.SerializeUncompressed()[1:],
		priv.VerifyingKey().Serialize())

	// Our signature, their verifier.
	sig, err := priv.Sign(data, nil, digest, EncodeSignatureDER)
	require.NoError(t, err)
	dcrSig, err := decredecdsa.ParseDERSignature(sig)
	require.NoError(t, err)
	assert.True(t, dcrSig.Verify(hashed[:], dcrPub))

	// Their signature, our verifier.
	theirs := decredecdsa.Sign(dcrPriv, hashed[:])
	assert.NoError(t, priv.VerifyingKey().Verify(theirs.Serialize(), data,
		digest, DecodeSignatureDER))
}
