// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecdsa

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"
	"math/big"
)

// PEM markers for the two key forms.
const (
	pemMarkerSigningKey   = "EC PRIVATE KEY"
	pemMarkerVerifyingKey = "PUBLIC KEY"
)

// VerifyingKey is a public point on a named curve.  It is immutable after
// construction and may be shared freely between goroutines.
type VerifyingKey struct {
	curve *Curve
	x, y  *big.Int
}

// SigningKey is a secret exponent on a named curve, together with the
// verifying key it derives.  It is immutable after construction and may be
// shared freely between goroutines.
type SigningKey struct {
	curve *Curve
	d     *big.Int
	vk    *VerifyingKey
}

// bigIntEqual reports whether a and b are equal leaking only their bit
// length through timing side-channels.
func bigIntEqual(a, b *big.Int) bool {
	return subtle.ConstantTimeCompare(a.Bytes(), b.Bytes()) == 1
}

// VerifyingKeyFromPoint constructs a verifying key from a public point.  The
// point must satisfy the curve equation and must not be the identity;
// malformed points fail with ErrMalformedKey.
func VerifyingKeyFromPoint(curve *Curve, x, y *big.Int) (*VerifyingKey, error) {
	if x.Sign() == 0 && y.Sign() == 0 {
		return nil, makeError(ErrMalformedKey,
			"public point is the identity")
	}
	if !curve.ops.IsOnCurve(x, y) {
		return nil, makeError(ErrMalformedKey, fmt.Sprintf(
			"public point is not on %v", curve))
	}
	return &VerifyingKey{
		curve: curve,
		x:     new(big.Int).Set(x),
		y:     new(big.Int).Set(y),
	}, nil
}

// ParseVerifyingKey parses the raw fixed-width public key form: the
// big-endian x and y coordinates, each exactly the curve's byte length,
// concatenated.  Note that unlike the SEC1 uncompressed form there is no
// leading 0x04 format byte.
func ParseVerifyingKey(raw []byte, curve *Curve) (*VerifyingKey, error) {
	if len(raw) != curve.VerifyingKeyLen() {
		return nil, makeError(ErrMalformedKey, fmt.Sprintf(
			"raw public key is %d bytes, want %d for %v",
			len(raw), curve.VerifyingKeyLen(), curve))
	}
	x := new(big.Int).SetBytes(raw[:curve.BaseLen])
	y := new(big.Int).SetBytes(raw[curve.BaseLen:])
	return VerifyingKeyFromPoint(curve, x, y)
}

// ParseVerifyingKeyDER parses a SubjectPublicKeyInfo structure:
//
//	SEQUENCE {
//	    SEQUENCE { OID id-ecPublicKey, OID namedCurve }
//	    BIT STRING { 0x00 0x04 || x || y }
//	}
//
// The curve is recovered from the registry by its encoded identifier.
func ParseVerifyingKeyDER(der []byte) (*VerifyingKey, error) {
	outer, rest, err := RemoveSequence(der)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, makeError(ErrMalformedEncoding, fmt.Sprintf(
			"%d trailing bytes after DER public key", len(rest)))
	}

	algo, pointPart, err := RemoveSequence(outer)
	if err != nil {
		return nil, err
	}
	oidPK, curvePart, err := RemoveObject(algo)
	if err != nil {
		return nil, err
	}
	if !arcsEqual(oidPK, oidECPublicKey) {
		return nil, makeError(ErrMalformedEncoding, fmt.Sprintf(
			"public key algorithm %v is not id-ecPublicKey", oidPK))
	}
	_, rest, err = RemoveObject(curvePart)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, makeError(ErrMalformedEncoding, fmt.Sprintf(
			"%d trailing bytes after curve identifier", len(rest)))
	}
	curve, err := CurveFromEncodedOID(curvePart)
	if err != nil {
		return nil, err
	}

	pointStr, rest, err := RemoveBitString(pointPart)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, makeError(ErrMalformedEncoding, fmt.Sprintf(
			"%d trailing bytes after public point", len(rest)))
	}
	if len(pointStr) < 2 || pointStr[0] != 0x00 || pointStr[1] != 0x04 {
		return nil, makeError(ErrMalformedEncoding,
			"public point is not in uncompressed form")
	}
	return ParseVerifyingKey(pointStr[2:], curve)
}

// ParseVerifyingKeyPEM parses a PEM "PUBLIC KEY" block.
func ParseVerifyingKeyPEM(data []byte) (*VerifyingKey, error) {
	der, err := FromPEM(data, pemMarkerVerifyingKey)
	if err != nil {
		return nil, err
	}
	return ParseVerifyingKeyDER(der)
}

// Curve returns the curve the key is bound to.
func (vk *VerifyingKey) Curve() *Curve {
	return vk.curve
}

// Point returns the coordinates of the public point.  The returned values
// must not be modified.
func (vk *VerifyingKey) Point() (x, y *big.Int) {
	return vk.x, vk.y
}

// Equal reports whether vk and other hold the same point on the same curve.
func (vk *VerifyingKey) Equal(other *VerifyingKey) bool {
	return vk.curve == other.curve &&
		bigIntEqual(vk.x, other.x) && bigIntEqual(vk.y, other.y)
}

// Serialize returns the raw fixed-width public key form parsed by
// ParseVerifyingKey.  The curve itself is not part of the serialized form.
func (vk *VerifyingKey) Serialize() []byte {
	out := make([]byte, vk.curve.VerifyingKeyLen())
	vk.x.FillBytes(out[:vk.curve.BaseLen])
	vk.y.FillBytes(out[vk.curve.BaseLen:])
	return out
}

// SerializeDER returns the SubjectPublicKeyInfo form parsed by
// ParseVerifyingKeyDER.
func (vk *VerifyingKey) SerializeDER() []byte {
	pointStr := append([]byte{0x00, 0x04}, vk.Serialize()...)
	return EncodeSequence(
		EncodeSequence(encodedOIDECPublicKey, vk.curve.EncodedOID),
		EncodeBitString(pointStr),
	)
}

// SerializePEM returns the DER form wrapped in PEM "PUBLIC KEY" framing.
func (vk *VerifyingKey) SerializePEM() []byte {
	return ToPEM(vk.SerializeDER(), pemMarkerVerifyingKey)
}

// Verify checks the signature over message.  decode recovers (r, s) from
// the signature bytes (nil means the raw fixed-width form) and digest
// reduces the message (nil means the deterministic default Sign uses).
//
// A nil return means the signature is valid.  A well-formed signature that
// fails the verification equation returns ErrBadSignature; structurally
// unusable input returns ErrMalformedSignature or ErrMalformedEncoding.
func (vk *VerifyingKey) Verify(sig, message []byte, digest DigestFunc, decode SignatureDecoder) error {
	if digest == nil {
		digest = PRNGDigest
	}
	if decode == nil {
		decode = DecodeSignatureRaw
	}

	r, s, err := decode(sig, vk.curve)
	if err != nil {
		return err
	}
	n := vk.curve.Order
	if r.Sign() < 1 || r.Cmp(n) >= 0 || s.Sign() < 1 || s.Cmp(n) >= 0 {
		return makeError(ErrBadSignature,
			"signature values are outside [1, order)")
	}

	z, err := digest(message, n)
	if err != nil {
		return err
	}

	// SEC 1, Version 2.0, Section 4.1.4
	w := new(big.Int).ModInverse(s, n)
	u1 := new(big.Int).Mul(z, w)
	u1.Mod(u1, n)
	u2 := new(big.Int).Mul(r, w)
	u2.Mod(u2, n)

	ops := vk.curve.ops
	x1, y1 := ops.ScalarBaseMult(u1.Bytes())
	x2, y2 := ops.ScalarMult(vk.x, vk.y, u2.Bytes())
	x, y := ops.Add(x1, y1, x2, y2)
	if x.Sign() == 0 && y.Sign() == 0 {
		return makeError(ErrBadSignature,
			"verification equation yields the identity")
	}
	if new(big.Int).Mod(x, n).Cmp(r) != 0 {
		return makeError(ErrBadSignature,
			"signature does not match message")
	}
	return nil
}

// GenerateKey generates a signing key on the curve, drawing the secret
// exponent uniformly from [1, order) via rejection sampling over entropy.
// A nil entropy source means the operating system's cryptographically
// strong randomness.  Deterministic entropy sources such as PRNG are
// accepted purely to support reproducible construction and must never be
// used for production keys.
func GenerateKey(curve *Curve, entropy io.Reader) (*SigningKey, error) {
	if entropy == nil {
		entropy = rand.Reader
	}
	d, err := randrange(curve.Order, entropy)
	if err != nil {
		return nil, err
	}
	return SigningKeyFromSecret(d, curve)
}

// SigningKeyFromSeed derives a signing key from a seed.  The same seed
// yields the same key in every process on every platform.
func SigningKeyFromSeed(seed []byte, curve *Curve) (*SigningKey, error) {
	return GenerateKey(curve, NewPRNG(seed))
}

// SigningKeyFromSecret constructs a signing key from a known secret
// exponent.  Exponents outside [1, order) fail with ErrMalformedKey.
func SigningKeyFromSecret(d *big.Int, curve *Curve) (*SigningKey, error) {
	if d.Sign() < 1 || d.Cmp(curve.Order) >= 0 {
		return nil, makeError(ErrMalformedKey, fmt.Sprintf(
			"secret exponent is outside [1, order) for %v", curve))
	}

	d = new(big.Int).Set(d)
	x, y := curve.ops.ScalarBaseMult(d.Bytes())
	return &SigningKey{
		curve: curve,
		d:     d,
		vk:    &VerifyingKey{curve: curve, x: x, y: y},
	}, nil
}

// ParseSigningKey parses the raw private key form: the big-endian secret
// exponent, exactly the curve's byte length.
func ParseSigningKey(raw []byte, curve *Curve) (*SigningKey, error) {
	if len(raw) != curve.BaseLen {
		return nil, makeError(ErrMalformedKey, fmt.Sprintf(
			"raw private key is %d bytes, want %d for %v",
			len(raw), curve.BaseLen, curve))
	}
	return SigningKeyFromSecret(new(big.Int).SetBytes(raw), curve)
}

// ParseSigningKeyDER parses an RFC 5915 EC private key structure:
//
//	SEQUENCE {
//	    INTEGER 1
//	    OCTET STRING privateKey
//	    [0] { OID namedCurve }
//	    [1] { BIT STRING publicKey }   -- ignored, rederived from the secret
//	}
func ParseSigningKeyDER(der []byte) (*SigningKey, error) {
	body, rest, err := RemoveSequence(der)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, makeError(ErrMalformedEncoding, fmt.Sprintf(
			"%d trailing bytes after DER private key", len(rest)))
	}

	version, body, err := RemoveInteger(body)
	if err != nil {
		return nil, err
	}
	if version.Cmp(big.NewInt(1)) != 0 {
		return nil, makeError(ErrMalformedEncoding, fmt.Sprintf(
			"private key version %v, want 1", version))
	}

	privkeyStr, body, err := RemoveOctetString(body)
	if err != nil {
		return nil, err
	}

	tag, curvePart, _, err := RemoveConstructed(body)
	if err != nil {
		return nil, err
	}
	if tag != 0 {
		return nil, makeError(ErrMalformedEncoding, fmt.Sprintf(
			"constructed tag %d where curve identifier [0] expected", tag))
	}
	_, rest, err = RemoveObject(curvePart)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, makeError(ErrMalformedEncoding, fmt.Sprintf(
			"%d trailing bytes after curve identifier", len(rest)))
	}
	curve, err := CurveFromEncodedOID(curvePart)
	if err != nil {
		return nil, err
	}

	// DER integers shed leading zero bytes; pad the secret back out to the
	// fixed width the raw parser wants.
	if len(privkeyStr) < curve.BaseLen {
		padded := make([]byte, curve.BaseLen)
		copy(padded[curve.BaseLen-len(privkeyStr):], privkeyStr)
		privkeyStr = padded
	}
	return ParseSigningKey(privkeyStr, curve)
}

// ParseSigningKeyPEM parses a PEM "EC PRIVATE KEY" block.  A redundant
// leading "EC PARAMETERS" block, as written by openssl ecparam -genkey, is
// skipped.
func ParseSigningKeyPEM(data []byte) (*SigningKey, error) {
	der, err := FromPEM(data, pemMarkerSigningKey)
	if err != nil {
		return nil, err
	}
	return ParseSigningKeyDER(der)
}

// Curve returns the curve the key is bound to.
func (sk *SigningKey) Curve() *Curve {
	return sk.curve
}

// Secret returns a copy of the secret exponent.
func (sk *SigningKey) Secret() *big.Int {
	return new(big.Int).Set(sk.d)
}

// VerifyingKey returns the verifying key derived from the secret exponent.
func (sk *SigningKey) VerifyingKey() *VerifyingKey {
	return sk.vk
}

// Equal reports whether sk and other hold the same secret on the same curve.
func (sk *SigningKey) Equal(other *SigningKey) bool {
	return sk.curve == other.curve && bigIntEqual(sk.d, other.d)
}

// Serialize returns the raw private key form parsed by ParseSigningKey.
func (sk *SigningKey) Serialize() []byte {
	out := make([]byte, sk.curve.BaseLen)
	sk.d.FillBytes(out)
	return out
}

// SerializeDER returns the RFC 5915 form parsed by ParseSigningKeyDER.
func (sk *SigningKey) SerializeDER() []byte {
	version, err := EncodeInteger(big.NewInt(1))
	if err != nil {
		// EncodeInteger only fails for negative values.
		panic(err)
	}
	pointStr := append([]byte{0x00, 0x04}, sk.vk.Serialize()...)
	return EncodeSequence(
		version,
		EncodeOctetString(sk.Serialize()),
		EncodeConstructed(0, sk.curve.EncodedOID),
		EncodeConstructed(1, EncodeBitString(pointStr)),
	)
}

// SerializePEM returns the DER form wrapped in PEM "EC PRIVATE KEY" framing.
func (sk *SigningKey) SerializePEM() []byte {
	return ToPEM(sk.SerializeDER(), pemMarkerSigningKey)
}

// Sign signs message.  The nonce is drawn uniformly from [1, order) via
// rejection sampling over entropy (nil means the operating system's
// cryptographically strong randomness).  digest reduces the message to an
// integer and encode selects the signature wire form; nil selects the
// deterministic default reduction and the raw fixed-width form.
//
// Passing a deterministic entropy source makes the signature reproducible:
// the same key, message, and entropy always produce identical bytes.  Nonce
// reuse across different messages leaks the private key, so deterministic
// sources are strictly for tests.
func (sk *SigningKey) Sign(message []byte, entropy io.Reader, digest DigestFunc, encode SignatureEncoder) ([]byte, error) {
	if entropy == nil {
		entropy = rand.Reader
	}
	if digest == nil {
		digest = PRNGDigest
	}
	if encode == nil {
		encode = EncodeSignatureRaw
	}

	n := sk.curve.Order
	z, err := digest(message, n)
	if err != nil {
		return nil, err
	}

	var r, s *big.Int
	for {
		k, err := randrange(n, entropy)
		if err != nil {
			return nil, err
		}
		kinv := new(big.Int).ModInverse(k, n)

		rx, _ := sk.curve.ops.ScalarBaseMult(k.Bytes())
		r = new(big.Int).Mod(rx, n)
		if r.Sign() == 0 {
			continue
		}

		s = new(big.Int).Mul(r, sk.d)
		s.Add(s, z)
		s.Mul(s, kinv)
		s.Mod(s, n)
		if s.Sign() == 0 {
			continue
		}
		break
	}
	return encode(r, s, sk.curve)
}
