package types

import "io"

// Curve is the group capability the CryptoNote primitives are written
// against. Implementations must agree byte-for-byte on every encoding.
type Curve interface {
	Name() string
	BasePoint() Point
	// NewRandomScalar reads 64 bytes from rng and reduces them mod l.
	NewRandomScalar(rng io.Reader) (Scalar, error)
	// ScalarFromUniformBytes reduces 64 bytes mod l.
	ScalarFromUniformBytes([]byte) (Scalar, error)
	// DecodeToScalar accepts only canonical 32-byte encodings (value < l).
	DecodeToScalar([]byte) (Scalar, error)
	// DecodeToPoint accepts only canonical encodings of points on the curve.
	// It does not check subgroup membership.
	DecodeToPoint([]byte) (Point, error)
	// HashToScalar is Keccak-256 followed by reduction mod l.
	HashToScalar([]byte) Scalar
	// HashToPoint is 8 * map(Keccak-256(data)).
	HashToPoint([]byte) Point
	ScalarBaseMul(Scalar) Point
	ScalarMul(Scalar, Point) Point
	// DoubleScalarBaseMul returns a*A + b*G. It may run in variable time and
	// must only be used on public inputs.
	DoubleScalarBaseMul(a Scalar, A Point, b Scalar) Point
}

type Scalar interface {
	Add(Scalar) Scalar
	Sub(Scalar) Scalar
	Mul(Scalar) Scalar
	Negate() Scalar
	Encode() []byte
	Eq(Scalar) bool
	IsZero() bool
}

type Point interface {
	Copy() Point
	Add(Point) Point
	Sub(Point) Point
	ScalarMul(Scalar) Point
	MulByCofactor() Point
	Encode() []byte
	IsIdentity() bool
	// IsTorsionFree reports whether the point lies in the prime-order subgroup.
	IsTorsionFree() bool
	Equals(other Point) bool
}
