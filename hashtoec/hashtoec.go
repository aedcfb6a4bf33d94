// Package hashtoec implements the CryptoNote hash-to-point map Hp.
//
// Hp(x) = 8 * map(Keccak256(x)), where map is the Elligator-style
// construction CryptoNote calls ge_fromfe_frombytes_vartime. The map
// interprets all 256 bits of its input as a field element (the top bit is
// not masked), goes through the Montgomery form of curve25519, and lands in
// projective Edwards coordinates. Cofactor clearing puts the result in the
// prime-order subgroup so it can be used as a key-image base.
package hashtoec

import (
	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"

	"github.com/athanorlabs/go-cryptonote/keccak"
)

var (
	feZero = new(field.Element).Zero()
	feOne  = new(field.Element).One()

	// feA is the Montgomery coefficient A = 486662.
	feA = new(field.Element).Mult32(feOne, 486662)
	// -A
	feMA = new(field.Element).Negate(feA)
	// -A^2
	feMA2 = new(field.Element).Negate(new(field.Element).Square(feA))

	feSqrtM1 = mustSqrt(new(field.Element).Negate(feOne))

	// A * (A + 2)
	feAA2 = new(field.Element).Multiply(feA, new(field.Element).Add(feA, new(field.Element).Mult32(feOne, 2)))

	// sqrt(-2 * A * (A + 2))
	feFFFB1 = mustSqrt(new(field.Element).Negate(new(field.Element).Add(feAA2, feAA2)))
	// sqrt(2 * A * (A + 2))
	feFFFB2 = mustSqrt(new(field.Element).Add(feAA2, feAA2))
	// sqrt(-sqrt(-1) * A * (A + 2))
	feFFFB3 = mustSqrt(new(field.Element).Negate(new(field.Element).Multiply(feSqrtM1, feAA2)))
	// sqrt(sqrt(-1) * A * (A + 2))
	feFFFB4 = mustSqrt(new(field.Element).Multiply(feSqrtM1, feAA2))
)

func mustSqrt(u *field.Element) *field.Element {
	r, wasSquare := new(field.Element).SqrtRatio(u, feOne)
	if wasSquare != 1 {
		panic("hashtoec: constant is not a square")
	}
	return r
}

func isNonZero(v *field.Element) bool {
	return v.Equal(feZero) == 0
}

// divPowM1 returns (u/v)^((p+3)/8) computed as u * v^3 * (u * v^7)^((p-5)/8).
func divPowM1(u, v *field.Element) *field.Element {
	v3 := new(field.Element).Square(v)
	v3.Multiply(v3, v)

	uv7 := new(field.Element).Square(v3)
	uv7.Multiply(uv7, v)
	uv7.Multiply(uv7, u)

	r := new(field.Element).Pow22523(uv7)
	r.Multiply(r, v3)
	return r.Multiply(r, u)
}

// loadFieldElement reduces all 256 bits of s modulo p = 2^255 - 19.
func loadFieldElement(s *[32]byte) *field.Element {
	u, err := new(field.Element).SetBytes(s[:])
	if err != nil {
		panic(err)
	}

	// SetBytes drops bit 255; 2^255 = 19 (mod p)
	if s[31]&0x80 != 0 {
		u.Add(u, new(field.Element).Mult32(feOne, 19))
	}
	return u
}

// FromBytes maps 32 bytes onto the curve without clearing the cofactor.
// The degenerate inputs that would produce Z = 0 map to the identity.
func FromBytes(s *[32]byte) *edwards25519.Point {
	u := loadFieldElement(s)

	// v = 2u^2, w = 2u^2 + 1
	v := new(field.Element).Square(u)
	v.Add(v, v)
	w := new(field.Element).Add(v, feOne)

	// x = w^2 - 2A^2u^2
	x := new(field.Element).Square(w)
	x.Add(x, new(field.Element).Multiply(feMA2, v))

	rX := divPowM1(w, x)
	y := new(field.Element).Square(rX)
	x.Multiply(y, x)

	z := new(field.Element).Set(feMA)
	var sign int

	switch {
	case !isNonZero(y.Subtract(w, x)):
		rX.Multiply(rX, feFFFB2)
		rX.Multiply(rX, u)
		z.Multiply(z, v)
	case !isNonZero(y.Add(w, x)):
		rX.Multiply(rX, feFFFB1)
		rX.Multiply(rX, u)
		z.Multiply(z, v)
	default:
		x.Multiply(x, feSqrtM1)
		if isNonZero(y.Subtract(w, x)) {
			rX.Multiply(rX, feFFFB3)
		} else {
			rX.Multiply(rX, feFFFB4)
		}
		sign = 1
	}

	if rX.IsNegative() != sign {
		rX.Negate(rX)
	}

	rZ := new(field.Element).Add(z, w)
	rY := new(field.Element).Subtract(z, w)
	rX.Multiply(rX, rZ)

	if !isNonZero(rZ) {
		return edwards25519.NewIdentityPoint()
	}

	// projective (X:Y:Z) to extended (X:Y:Z:T) with T = XY/Z
	zInv := new(field.Element).Invert(rZ)
	t := new(field.Element).Multiply(rX, rY)
	t.Multiply(t, zInv)

	p, err := new(edwards25519.Point).SetExtendedCoordinates(rX, rY, rZ, t)
	if err != nil {
		// unreachable: the map always lands on the curve when Z != 0
		panic(err)
	}
	return p
}

// HashToEC returns 8 * FromBytes(Keccak256(data)), a point in the
// prime-order subgroup.
func HashToEC(data []byte) *edwards25519.Point {
	h := keccak.Sum256(data)
	p := FromBytes(&h)
	return p.MultByCofactor(p)
}
