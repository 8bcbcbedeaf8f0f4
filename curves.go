// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecdsa

import (
	"bytes"
	"fmt"
	"math/big"
	"sync"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Curve is an immutable named parameter bundle: the arithmetic provider with
// its base point, the order of the base point, the fixed byte width of all
// serializations for the curve, and the DER-encoded object identifier that
// names the curve inside key structures.  Curves are constructed once at
// first use and never mutated, so unsynchronized concurrent reads are safe.
type Curve struct {
	// Name is the canonical name of the curve.
	Name string

	// Order is the (prime) order of the base point.
	Order *big.Int

	// BaseLen is ceil(bitlength(Order)/8): the byte width of the order and
	// of each coordinate in fixed-width serializations.
	BaseLen int

	// OID is the dotted arc sequence identifying the curve, and EncodedOID
	// its DER OBJECT IDENTIFIER encoding.
	OID        []int
	EncodedOID []byte

	ops CurveOps
}

// VerifyingKeyLen returns the length of a raw serialized public key for the
// curve: the two fixed-width coordinates.
func (c *Curve) VerifyingKeyLen() int {
	return 2 * c.BaseLen
}

// SignatureLen returns the length of a raw serialized signature for the
// curve: the two fixed-width integers r and s.
func (c *Curve) SignatureLen() int {
	return 2 * c.BaseLen
}

func (c *Curve) String() string {
	return c.Name
}

// RFC 5480: the "unrestricted" algorithm identifier id-ecPublicKey is
// { iso(1) member-body(2) us(840) ansi-X9-62(10045) keyType(2) 1 }.
var oidECPublicKey = []int{1, 2, 840, 10045, 2, 1}

var initonce sync.Once
var nist192p *Curve
var nist224p *Curve
var nist256p *Curve
var nist384p *Curve
var nist521p *Curve
var secp256k1Curve *Curve
var allCurves []*Curve
var encodedOIDECPublicKey []byte

// arcsEqual reports whether two dotted arc sequences are identical.
func arcsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// mustEncodeOID encodes a known-good arc sequence, panicking on the
// impossible failure case so curve construction stays expression-shaped.
func mustEncodeOID(arcs ...int) []byte {
	enc, err := EncodeOID(arcs...)
	if err != nil {
		panic(err)
	}
	return enc
}

func newCurve(name string, ops CurveOps, order *big.Int, arcs ...int) *Curve {
	return &Curve{
		Name:       name,
		Order:      order,
		BaseLen:    (order.BitLen() + 7) / 8,
		OID:        arcs,
		EncodedOID: mustEncodeOID(arcs...),
		ops:        ops,
	}
}

func initAll() {
	encodedOIDECPublicKey = mustEncodeOID(oidECPublicKey...)
	initNIST192p()
	initNIST224p()
	initNIST256p()
	initNIST384p()
	initNIST521p()
	initSECP256k1()
	allCurves = []*Curve{
		nist192p, nist224p, nist256p, nist384p, nist521p, secp256k1Curve,
	}
}

func initNIST192p() {
	// See FIPS 186-3, section D.2.1
	w := &weierstrass{a: big.NewInt(-3)}
	w.p, _ = new(big.Int).SetString("6277101735386680763835789423207666416083908700390324961279", 10)
	order, _ := new(big.Int).SetString("6277101735386680763835789423176059013767194773182842284081", 10)
	w.b, _ = new(big.Int).SetString("64210519e59c80e70fa7e9ab72243049feb8deecc146b9b1", 16)
	w.gx, _ = new(big.Int).SetString("188da80eb03090f67cbf20eb43a18800f4ff0afd82ff1012", 16)
	w.gy, _ = new(big.Int).SetString("07192b95ffc8da78631011ed6b24cdd573f977a11e794811", 16)
	nist192p = newCurve("NIST192p", w, order, 1, 2, 840, 10045, 3, 1, 1)
}

func initNIST224p() {
	// See FIPS 186-3, section D.2.2
	w := &weierstrass{a: big.NewInt(-3)}
	w.p, _ = new(big.Int).SetString("26959946667150639794667015087019630673557916260026308143510066298881", 10)
	order, _ := new(big.Int).SetString("26959946667150639794667015087019625940457807714424391721682722368061", 10)
	w.b, _ = new(big.Int).SetString("b4050a850c04b3abf54132565044b0b7d7bfd8ba270b39432355ffb4", 16)
	w.gx, _ = new(big.Int).SetString("b70e0cbd6bb4bf7f321390b94a03c1d356c21122343280d6115c1d21", 16)
	w.gy, _ = new(big.Int).SetString("bd376388b5f723fb4c22dfe6cd4375a05a07476444d5819985007e34", 16)
	nist224p = newCurve("NIST224p", w, order, 1, 3, 132, 0, 33)
}

func initNIST256p() {
	// See FIPS 186-3, section D.2.3
	w := &weierstrass{a: big.NewInt(-3)}
	w.p, _ = new(big.Int).SetString("115792089210356248762697446949407573530086143415290314195533631308867097853951", 10)
	order, _ := new(big.Int).SetString("115792089210356248762697446949407573529996955224135760342422259061068512044369", 10)
	w.b, _ = new(big.Int).SetString("5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b", 16)
	w.gx, _ = new(big.Int).SetString("6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296", 16)
	w.gy, _ = new(big.Int).SetString("4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5", 16)
	nist256p = newCurve("NIST256p", w, order, 1, 2, 840, 10045, 3, 1, 7)
}

func initNIST384p() {
	// See FIPS 186-3, section D.2.4
	w := &weierstrass{a: big.NewInt(-3)}
	w.p, _ = new(big.Int).SetString("39402006196394479212279040100143613805079739270465446667948293404245721771496870329047266088258938001861606973112319", 10)
	order, _ := new(big.Int).SetString("39402006196394479212279040100143613805079739270465446667946905279627659399113263569398956308152294913554433653942643", 10)
	w.b, _ = new(big.Int).SetString("b3312fa7e23ee7e4988e056be3f82d19181d9c6efe8141120314088f5013875ac656398d8a2ed19d2a85c8edd3ec2aef", 16)
	w.gx, _ = new(big.Int).SetString("aa87ca22be8b05378eb1c71ef320ad746e1d3b628ba79b9859f741e082542a385502f25dbf55296c3a545e3872760ab7", 16)
	w.gy, _ = new(big.Int).SetString("3617de4a96262c6f5d9e98bf9292dc29f8f41dbd289a147ce9da3113b5f0b8c00a60b1ce1d7e819d7a431d7c90ea0e5f", 16)
	nist384p = newCurve("NIST384p", w, order, 1, 3, 132, 0, 34)
}

func initNIST521p() {
	// See FIPS 186-3, section D.2.5
	w := &weierstrass{a: big.NewInt(-3)}
	w.p, _ = new(big.Int).SetString("6864797660130609714981900799081393217269435300143305409394463459185543183397656052122559640661454554977296311391480858037121987999716643812574028291115057151", 10)
	order, _ := new(big.Int).SetString("6864797660130609714981900799081393217269435300143305409394463459185543183397655394245057746333217197532963996371363321113864768612440380340372808892707005449", 10)
	w.b, _ = new(big.Int).SetString("051953eb9618e1c9a1f929a21a0b68540eea2da725b99b315f3b8b489918ef109e156193951ec7e937b1652c0bd3bb1bf073573df883d2c34f1ef451fd46b503f00", 16)
	w.gx, _ = new(big.Int).SetString("c6858e06b70404e9cd9e3ecb662395b4429c648139053fb521f828af606b4d3dbaa14b5e77efe75928fe1dc127a2ffa8de3348b3c1856a429bf97e7e31c2e5bd66", 16)
	w.gy, _ = new(big.Int).SetString("11839296a789a3bc0045c8a5fb42c7d1bd998f54449579b446817afbd17273e662c97ee72995ef42640c550b9013fad0761353c7086a272c24088be94769fd16650", 16)
	nist521p = newCurve("NIST521p", w, order, 1, 3, 132, 0, 35)
}

// koblitz adapts the optimized secp256k1 implementation to CurveOps while
// preserving the (0,0)-is-identity convention used by the rest of the
// package.
type koblitz struct {
	inner *secp256k1.KoblitzCurve
}

func (c *koblitz) IsOnCurve(x, y *big.Int) bool {
	if x.Sign() == 0 && y.Sign() == 0 {
		return true
	}
	return c.inner.IsOnCurve(x, y)
}

func (c *koblitz) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	return c.inner.Add(x1, y1, x2, y2)
}

func (c *koblitz) Double(x1, y1 *big.Int) (*big.Int, *big.Int) {
	return c.inner.Double(x1, y1)
}

func (c *koblitz) ScalarMult(x1, y1 *big.Int, k []byte) (*big.Int, *big.Int) {
	return c.inner.ScalarMult(x1, y1, k)
}

func (c *koblitz) ScalarBaseMult(k []byte) (*big.Int, *big.Int) {
	return c.inner.ScalarBaseMult(k)
}

func initSECP256k1() {
	// See https://www.secg.org/sec2-v2.pdf, section 2.4.1
	inner := secp256k1.S256()
	secp256k1Curve = newCurve("SECP256k1", &koblitz{inner: inner},
		new(big.Int).Set(inner.Params().N), 1, 3, 132, 0, 10)
}

// NIST192p returns the curve also known as prime192v1 or secp192r1
// (FIPS 186-3, section D.2.1).
//
// Multiple invocations of this function will return the same value, so it
// can be used for equality checks and switch statements.
func NIST192p() *Curve {
	initonce.Do(initAll)
	return nist192p
}

// NIST224p returns the curve also known as secp224r1 (FIPS 186-3, section
// D.2.2).
func NIST224p() *Curve {
	initonce.Do(initAll)
	return nist224p
}

// NIST256p returns the curve also known as secp256r1 or prime256v1
// (FIPS 186-3, section D.2.3).
func NIST256p() *Curve {
	initonce.Do(initAll)
	return nist256p
}

// NIST384p returns the curve also known as secp384r1 (FIPS 186-3, section
// D.2.4).
func NIST384p() *Curve {
	initonce.Do(initAll)
	return nist384p
}

// NIST521p returns the curve also known as secp521r1 (FIPS 186-3, section
// D.2.5).
func NIST521p() *Curve {
	initonce.Do(initAll)
	return nist521p
}

// SECP256k1 returns the curve of the same name (SEC 2, section 2.4.1),
// backed by an optimized arithmetic implementation.
func SECP256k1() *Curve {
	initonce.Do(initAll)
	return secp256k1Curve
}

// Curves returns the registered curve set.  The returned slice must not be
// modified.
func Curves() []*Curve {
	initonce.Do(initAll)
	return allCurves
}

// CurveFromEncodedOID returns the registered curve whose DER-encoded object
// identifier matches enc exactly, or ErrUnknownCurve if there is none.
func CurveFromEncodedOID(enc []byte) (*Curve, error) {
	initonce.Do(initAll)
	for _, c := range allCurves {
		if bytes.Equal(c.EncodedOID, enc) {
			return c, nil
		}
	}
	return nil, makeError(ErrUnknownCurve, fmt.Sprintf(
		"no registered curve with object identifier %x", enc))
}
