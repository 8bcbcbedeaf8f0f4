// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecdsa

import (
	"crypto/sha256"
	"errors"
	"io"
	"math/big"
	"strconv"
)

var errOrderTooSmall = errors.New("order must be at least 2")

// randrange returns an integer uniformly distributed in [1, order), reading
// entropy from src.  It uses try-try-again rejection sampling: draw
// ceil(bitlength(order)/8) bytes, mask off any surplus high bits so the
// candidate lies in [0, 2^bitlength(order)), and accept it if it falls in
// range.  Because 2^bitlength(order) < 2*order, the expected number of draws
// is below two, and the result carries no modulo bias.
//
// Reading from src may block under the entropy provider's contract;
// randrange adds no timeout of its own.
func randrange(order *big.Int, src io.Reader) (*big.Int, error) {
	nbits := order.BitLen()
	nbytes := (nbits + 7) / 8
	if nbits < 2 {
		return nil, errOrderTooSmall
	}

	mask := byte(0xff >> (8*nbytes - nbits))
	buf := make([]byte, nbytes)
	for {
		if _, err := io.ReadFull(src, buf); err != nil {
			return nil, err
		}
		buf[0] &= mask
		candidate := new(big.Int).SetBytes(buf)
		if candidate.Sign() > 0 && candidate.Cmp(order) < 0 {
			return candidate, nil
		}
	}
}

// PRNG deterministically expands a seed into an unbounded byte stream: block
// i of the stream is sha256("prng-<i>-<seed>").  The same seed produces the
// same stream on every platform, which is what makes seeded key generation
// and seeded signing reproducible.
//
// A PRNG must never be the entropy source for production keys or nonces; it
// exists for reproducible construction and tests only.
type PRNG struct {
	seed    []byte
	counter int
	block   []byte
}

// NewPRNG returns a deterministic entropy stream expanded from seed.
func NewPRNG(seed []byte) *PRNG {
	return &PRNG{seed: append([]byte(nil), seed...)}
}

// Read fills b from the stream.  It never fails.
func (p *PRNG) Read(b []byte) (int, error) {
	for i := range b {
		if len(p.block) == 0 {
			input := append([]byte("prng-"+strconv.Itoa(p.counter)+"-"), p.seed...)
			sum := sha256.Sum256(input)
			p.block = sum[:]
			p.counter++
		}
		b[i] = p.block[0]
		p.block = p.block[1:]
	}
	return len(b), nil
}
