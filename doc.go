// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package ecdsa implements the Elliptic Curve Digital Signature Algorithm over
a registry of named short-Weierstrass curves, together with the serialized
forms needed to interchange keys and signatures: raw fixed-width binary,
ASN.1 DER, and PEM-wrapped DER.

Signing keys are generated from the operating system's randomness, derived
reproducibly from a seed, or constructed from a known secret exponent.  Both
key generation and per-signature nonces draw from [1, order) by try-try-again
rejection sampling, so the results are exactly uniform with no modulo bias.
Signature and key DER forms follow RFC 5915 (EC private keys), RFC 5480
(SubjectPublicKeyInfo), and the usual SEQUENCE-of-two-INTEGERs signature
structure, so they interchange with other standards-conformant
implementations.

One deliberate divergence: the raw fixed-width public key form is the bare
concatenation of the big-endian x and y coordinates, without the SEC1 0x04
uncompressed-point prefix most implementations emit.  Callers exchanging raw
public keys with other software must account for this; the DER and PEM forms
carry the standard tagged point and need no such care.

Keys are immutable once constructed and safe for concurrent use.  Every
fallible operation returns an error wrapping one of the ErrorKind values in
this package, so callers can tell a rejected signature (ErrBadSignature)
apart from unusable input (ErrMalformedSignature, ErrMalformedEncoding).
*/
package ecdsa
