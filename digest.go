// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecdsa

import (
	"hash"
	"math/big"
)

// DigestFunc reduces a message to the integer that enters the signing and
// verification equations.  Sign and Verify must be given the same DigestFunc
// for a signature to check out.
type DigestFunc func(message []byte, order *big.Int) (*big.Int, error)

// PRNGDigest is the default DigestFunc: it rejection-samples an integer in
// [1, order) from the deterministic expansion of the message bytes, so the
// same message always reduces to the same integer.
func PRNGDigest(message []byte, order *big.Int) (*big.Int, error) {
	return randrange(order, NewPRNG(message))
}

// TruncatedDigest returns a DigestFunc that hashes the message with newHash
// and interprets the left-most bitlength(order) bits of the digest as a
// big-endian integer.  This matches how hash-based ECDSA implementations
// (FIPS 186-4, section 6.4) reduce digests, so signatures produced with it
// verify under those implementations and vice versa.
func TruncatedDigest(newHash func() hash.Hash) DigestFunc {
	return func(message []byte, order *big.Int) (*big.Int, error) {
		h := newHash()
		h.Write(message)
		return hashToInt(h.Sum(nil), order), nil
	}
}

// hashToInt converts a digest to an integer, using the left-most bits to
// match the bit-length of the order.
func hashToInt(digest []byte, order *big.Int) *big.Int {
	orderBits := order.BitLen()
	orderBytes := (orderBits + 7) / 8
	if len(digest) > orderBytes {
		digest = digest[:orderBytes]
	}

	ret := new(big.Int).SetBytes(digest)
	excess := len(digest)*8 - orderBits
	if excess > 0 {
		ret.Rsh(ret, uint(excess))
	}
	return ret
}
