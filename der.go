// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecdsa

// This file implements the minimal ASN.1 DER subset needed for keys and
// signatures: INTEGER, SEQUENCE, OBJECT IDENTIFIER, OCTET STRING, BIT STRING,
// and the context-specific constructed tags used by EC private-key
// structures.  The decode functions are pure parsing functions over an
// immutable byte buffer: they consume a prefix and return the unconsumed
// remainder, so callers compose them without copying beyond slicing.

import (
	"encoding/pem"
	"fmt"
	"math"
	"math/big"
)

// ASN.1 identifier octets for the types used here.
const (
	tagInteger     = 0x02
	tagBitString   = 0x03
	tagOctetString = 0x04
	tagObject      = 0x06
	tagSequence    = 0x30
	tagContext     = 0xa0
)

// EncodeInteger encodes a non-negative arbitrary-precision integer as a DER
// INTEGER.  The body is the minimal-length big-endian encoding, with a single
// 0x00 byte prepended when the high bit of the first byte would otherwise be
// set (DER treats INTEGER bodies as two's complement).  Zero encodes as a
// single zero byte.  Negative integers fail with ErrUnsupportedValue.
func EncodeInteger(n *big.Int) ([]byte, error) {
	if n.Sign() < 0 {
		str := fmt.Sprintf("cannot DER-encode negative integer %v", n)
		return nil, makeError(ErrUnsupportedValue, str)
	}

	body := n.Bytes()
	if len(body) == 0 {
		body = []byte{0x00}
	}
	if body[0]&0x80 != 0 {
		body = append([]byte{0x00}, body...)
	}

	out := []byte{tagInteger}
	out = append(out, EncodeLength(len(body))...)
	return append(out, body...), nil
}

// RemoveInteger parses one DER INTEGER from the front of buf and returns the
// value along with the unconsumed remainder.
func RemoveInteger(buf []byte) (*big.Int, []byte, error) {
	body, rest, err := removeTLV(buf, tagInteger, "INTEGER")
	if err != nil {
		return nil, nil, err
	}
	if len(body) == 0 {
		return nil, nil, makeError(ErrMalformedEncoding,
			"DER INTEGER with empty body")
	}
	return new(big.Int).SetBytes(body), rest, nil
}

// EncodeNumber encodes a non-negative integer in the base-128 form used by
// OBJECT IDENTIFIER sub-identifiers: seven bits per byte, high bit set on
// every byte except the last.
func EncodeNumber(n int) []byte {
	var b128 []byte
	for n > 0 {
		b128 = append([]byte{byte(n&0x7f) | 0x80}, b128...)
		n >>= 7
	}
	if len(b128) == 0 {
		return []byte{0x00}
	}
	b128[len(b128)-1] &^= 0x80
	return b128
}

// ReadNumber parses one base-128 sub-identifier from the front of buf and
// returns the value along with the number of bytes consumed.
func ReadNumber(buf []byte) (int, int, error) {
	number := 0
	for i, b := range buf {
		if number > math.MaxInt>>7 {
			return 0, 0, makeError(ErrMalformedEncoding,
				"base-128 number exceeds supported range")
		}
		number = number<<7 | int(b&0x7f)
		if b&0x80 == 0 {
			return number, i + 1, nil
		}
	}
	return 0, 0, makeError(ErrMalformedEncoding,
		"truncated base-128 number")
}

// EncodeLength encodes a DER length field.  Lengths below 128 occupy a
// single byte; larger lengths use a leading byte of 0x80|numLengthBytes
// followed by the minimal big-endian encoding of the length.
func EncodeLength(length int) []byte {
	if length < 0x80 {
		return []byte{byte(length)}
	}
	var body []byte
	for l := length; l > 0; l >>= 8 {
		body = append([]byte{byte(l)}, body...)
	}
	return append([]byte{0x80 | byte(len(body))}, body...)
}

// ReadLength parses a DER length field from the front of buf and returns the
// length along with the number of bytes consumed.  The reserved
// indefinite-length marker (a lone 0x80) is rejected.
func ReadLength(buf []byte) (int, int, error) {
	if len(buf) == 0 {
		return 0, 0, makeError(ErrMalformedEncoding, "empty length field")
	}
	if buf[0]&0x80 == 0 {
		return int(buf[0]), 1, nil
	}

	llen := int(buf[0] & 0x7f)
	if llen == 0 {
		return 0, 0, makeError(ErrMalformedEncoding,
			"indefinite-length encoding is not permitted in DER")
	}
	if llen > 8 {
		return 0, 0, makeError(ErrMalformedEncoding, fmt.Sprintf(
			"length field of %d bytes exceeds supported range", llen))
	}
	if llen > len(buf)-1 {
		return 0, 0, makeError(ErrMalformedEncoding, fmt.Sprintf(
			"length field wants %d bytes but only %d remain",
			llen, len(buf)-1))
	}
	length := 0
	for _, b := range buf[1 : 1+llen] {
		// No structure handled here comes anywhere near 2^31 bytes, and
		// letting the accumulator wrap would turn the length negative.
		if length >= 1<<23 {
			return 0, 0, makeError(ErrMalformedEncoding,
				"length field value exceeds supported range")
		}
		length = length<<8 | int(b)
	}
	return length, 1 + llen, nil
}

// EncodeOID encodes a dotted arc sequence as a DER OBJECT IDENTIFIER.  The
// first two arcs are combined as 40*arc0+arc1; each remaining arc is encoded
// in base-128 form.  The first arc must be 0, 1, or 2, and the second arc
// must be below 40 unless the first arc is 2.
func EncodeOID(arcs ...int) ([]byte, error) {
	if len(arcs) < 2 {
		return nil, makeError(ErrUnsupportedValue,
			"object identifier needs at least two arcs")
	}
	if arcs[0] < 0 || arcs[0] > 2 || arcs[1] < 0 ||
		(arcs[0] < 2 && arcs[1] > 39) {
		return nil, makeError(ErrUnsupportedValue, fmt.Sprintf(
			"object identifier arcs %d.%d are out of range",
			arcs[0], arcs[1]))
	}

	body := EncodeNumber(40*arcs[0] + arcs[1])
	for _, arc := range arcs[2:] {
		if arc < 0 {
			return nil, makeError(ErrUnsupportedValue, fmt.Sprintf(
				"object identifier arc %d is negative", arc))
		}
		body = append(body, EncodeNumber(arc)...)
	}
	out := []byte{tagObject}
	out = append(out, EncodeLength(len(body))...)
	return append(out, body...), nil
}

// RemoveObject parses one DER OBJECT IDENTIFIER from the front of buf and
// returns the arc sequence along with the unconsumed remainder.
func RemoveObject(buf []byte) ([]int, []byte, error) {
	body, rest, err := removeTLV(buf, tagObject, "OBJECT IDENTIFIER")
	if err != nil {
		return nil, nil, err
	}
	if len(body) == 0 {
		return nil, nil, makeError(ErrMalformedEncoding,
			"DER OBJECT IDENTIFIER with empty body")
	}

	var numbers []int
	for len(body) > 0 {
		n, consumed, err := ReadNumber(body)
		if err != nil {
			return nil, nil, err
		}
		numbers = append(numbers, n)
		body = body[consumed:]
	}
	// The first sub-identifier packs two arcs.  Values of 80 and above mean
	// a first arc of 2, whose second arc is unbounded.
	arcs := []int{numbers[0] / 40, numbers[0] % 40}
	if numbers[0] >= 80 {
		arcs = []int{2, numbers[0] - 80}
	}
	return append(arcs, numbers[1:]...), rest, nil
}

// EncodeSequence wraps the concatenation of the pre-encoded parts in a DER
// SEQUENCE.
func EncodeSequence(parts ...[]byte) []byte {
	var body []byte
	for _, part := range parts {
		body = append(body, part...)
	}
	out := []byte{tagSequence}
	out = append(out, EncodeLength(len(body))...)
	return append(out, body...)
}

// RemoveSequence unwraps a DER SEQUENCE from the front of buf, returning its
// body along with the unconsumed remainder.
func RemoveSequence(buf []byte) ([]byte, []byte, error) {
	return removeTLV(buf, tagSequence, "SEQUENCE")
}

// EncodeConstructed wraps body in a context-specific constructed tag with a
// DER length prefix.  EC private-key structures use tags 0 and 1 for the
// curve identifier and embedded public key.
func EncodeConstructed(tag int, body []byte) []byte {
	out := []byte{tagContext | byte(tag)}
	out = append(out, EncodeLength(len(body))...)
	return append(out, body...)
}

// RemoveConstructed unwraps a context-specific constructed element from the
// front of buf, returning its tag number and body along with the unconsumed
// remainder.
func RemoveConstructed(buf []byte) (int, []byte, []byte, error) {
	if len(buf) == 0 {
		return 0, nil, nil, makeError(ErrMalformedEncoding,
			"empty buffer where constructed element expected")
	}
	if buf[0]&0xe0 != tagContext {
		return 0, nil, nil, makeError(ErrMalformedEncoding, fmt.Sprintf(
			"wanted context-specific constructed tag, got 0x%02x", buf[0]))
	}
	tag := int(buf[0] & 0x1f)
	body, rest, err := removeBody(buf[1:])
	if err != nil {
		return 0, nil, nil, err
	}
	return tag, body, rest, nil
}

// EncodeOctetString wraps b in a DER OCTET STRING.
func EncodeOctetString(b []byte) []byte {
	out := []byte{tagOctetString}
	out = append(out, EncodeLength(len(b))...)
	return append(out, b...)
}

// RemoveOctetString unwraps a DER OCTET STRING from the front of buf.
func RemoveOctetString(buf []byte) ([]byte, []byte, error) {
	return removeTLV(buf, tagOctetString, "OCTET STRING")
}

// EncodeBitString wraps b in a DER BIT STRING.  The body is taken verbatim:
// callers supply the leading unused-bits count byte themselves, matching how
// the key structures embed 0x00 0x04 || x || y.
func EncodeBitString(b []byte) []byte {
	out := []byte{tagBitString}
	out = append(out, EncodeLength(len(b))...)
	return append(out, b...)
}

// RemoveBitString unwraps a DER BIT STRING from the front of buf, returning
// the raw body including the unused-bits count byte.
func RemoveBitString(buf []byte) ([]byte, []byte, error) {
	return removeTLV(buf, tagBitString, "BIT STRING")
}

// removeTLV parses one tag-length-value element with the given tag from the
// front of buf and returns the body and the unconsumed remainder.
func removeTLV(buf []byte, tag byte, name string) ([]byte, []byte, error) {
	if len(buf) == 0 {
		return nil, nil, makeError(ErrMalformedEncoding, fmt.Sprintf(
			"empty buffer where %s expected", name))
	}
	if buf[0] != tag {
		return nil, nil, makeError(ErrMalformedEncoding, fmt.Sprintf(
			"wanted %s tag 0x%02x, got 0x%02x", name, tag, buf[0]))
	}
	return removeBody(buf[1:])
}

// removeBody parses a length field followed by that many content bytes.
func removeBody(buf []byte) ([]byte, []byte, error) {
	length, llen, err := ReadLength(buf)
	if err != nil {
		return nil, nil, err
	}
	if length > len(buf)-llen {
		return nil, nil, makeError(ErrMalformedEncoding, fmt.Sprintf(
			"length field wants %d content bytes but only %d remain",
			length, len(buf)-llen))
	}
	return buf[llen : llen+length], buf[llen+length:], nil
}

// ToPEM wraps der in PEM framing with the given marker, e.g.
// "EC PRIVATE KEY" or "PUBLIC KEY".
func ToPEM(der []byte, marker string) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: marker, Bytes: der})
}

// FromPEM extracts the DER bytes of the first PEM block with the given
// marker, skipping blocks of other types (OpenSSL private-key files carry a
// redundant "EC PARAMETERS" block ahead of the key itself).
func FromPEM(data []byte, marker string) ([]byte, error) {
	for len(data) > 0 {
		var block *pem.Block
		block, data = pem.Decode(data)
		if block == nil {
			break
		}
		if block.Type == marker {
			return block.Bytes, nil
		}
	}
	return nil, makeError(ErrMalformedEncoding, fmt.Sprintf(
		"no PEM block with marker %q", marker))
}
