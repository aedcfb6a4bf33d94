package ed25519

import (
	"errors"
	"fmt"
	"io"

	"filippo.io/edwards25519"

	"github.com/athanorlabs/go-cryptonote/hashtoec"
	"github.com/athanorlabs/go-cryptonote/keccak"
	"github.com/athanorlabs/go-cryptonote/types"
)

type Curve = types.Curve
type Point = types.Point
type Scalar = types.Scalar

var _ Curve = &CurveImpl{}
var _ Scalar = &ScalarImpl{}
var _ Point = &PointImpl{}

var errNonCanonicalPoint = errors.New("non-canonical point encoding")

// orderMinusOne is l - 1; [l-1]P == -P exactly when P is torsion free.
var orderMinusOne = func() *edwards25519.Scalar {
	b := [32]byte{
		0xec, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
		0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
	}
	s, err := new(edwards25519.Scalar).SetCanonicalBytes(b[:])
	if err != nil {
		panic(err)
	}
	return s
}()

// CurveImpl is the default backend, built on filippo.io/edwards25519.
type CurveImpl struct{}

func NewCurve() Curve {
	return &CurveImpl{}
}

func (c *CurveImpl) Name() string {
	return "ed25519"
}

func (c *CurveImpl) BasePoint() Point {
	return &PointImpl{
		inner: edwards25519.NewGeneratorPoint(),
	}
}

func (c *CurveImpl) NewRandomScalar(rng io.Reader) (Scalar, error) {
	var b [64]byte
	if _, err := io.ReadFull(rng, b[:]); err != nil {
		return nil, fmt.Errorf("failed to read randomness: %w", err)
	}

	return c.ScalarFromUniformBytes(b[:])
}

func (c *CurveImpl) ScalarFromUniformBytes(b []byte) (Scalar, error) {
	s, err := new(edwards25519.Scalar).SetUniformBytes(b)
	if err != nil {
		return nil, err
	}

	return &ScalarImpl{
		inner: s,
	}, nil
}

func (c *CurveImpl) DecodeToScalar(b []byte) (Scalar, error) {
	s, err := new(edwards25519.Scalar).SetCanonicalBytes(b)
	if err != nil {
		return nil, err
	}

	return &ScalarImpl{
		inner: s,
	}, nil
}

func (c *CurveImpl) DecodeToPoint(b []byte) (Point, error) {
	p, err := new(edwards25519.Point).SetBytes(b)
	if err != nil {
		return nil, err
	}

	// SetBytes accepts y >= p; CryptoNote keys have a single encoding
	if string(p.Bytes()) != string(b) {
		return nil, errNonCanonicalPoint
	}

	return &PointImpl{
		inner: p,
	}, nil
}

func (c *CurveImpl) HashToScalar(in []byte) Scalar {
	h := keccak.Sum256(in)

	var wide [64]byte
	copy(wide[:], h[:])
	s, err := new(edwards25519.Scalar).SetUniformBytes(wide[:])
	if err != nil {
		panic(err)
	}

	return &ScalarImpl{
		inner: s,
	}
}

func (c *CurveImpl) HashToPoint(in []byte) Point {
	return &PointImpl{
		inner: hashtoec.HashToEC(in),
	}
}

func (c *CurveImpl) ScalarBaseMul(s Scalar) Point {
	ss := mustScalar(s)
	return &PointImpl{
		inner: new(edwards25519.Point).ScalarBaseMult(ss.inner),
	}
}

func (c *CurveImpl) ScalarMul(s Scalar, p Point) Point {
	ss := mustScalar(s)
	pp := mustPoint(p)
	return &PointImpl{
		inner: new(edwards25519.Point).ScalarMult(ss.inner, pp.inner),
	}
}

func (c *CurveImpl) DoubleScalarBaseMul(a Scalar, A Point, b Scalar) Point {
	aa := mustScalar(a)
	AA := mustPoint(A)
	bb := mustScalar(b)
	return &PointImpl{
		inner: new(edwards25519.Point).VarTimeDoubleScalarBaseMult(aa.inner, AA.inner, bb.inner),
	}
}

func mustScalar(s Scalar) *ScalarImpl {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *ed25519.ScalarImpl")
	}
	return ss
}

func mustPoint(p Point) *PointImpl {
	pp, ok := p.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *ed25519.PointImpl")
	}
	return pp
}

type ScalarImpl struct {
	inner *edwards25519.Scalar
}

func (s *ScalarImpl) Add(b Scalar) Scalar {
	return &ScalarImpl{
		inner: new(edwards25519.Scalar).Add(s.inner, mustScalar(b).inner),
	}
}

func (s *ScalarImpl) Sub(b Scalar) Scalar {
	return &ScalarImpl{
		inner: new(edwards25519.Scalar).Subtract(s.inner, mustScalar(b).inner),
	}
}

func (s *ScalarImpl) Mul(b Scalar) Scalar {
	return &ScalarImpl{
		inner: new(edwards25519.Scalar).Multiply(s.inner, mustScalar(b).inner),
	}
}

func (s *ScalarImpl) Negate() Scalar {
	return &ScalarImpl{
		inner: new(edwards25519.Scalar).Negate(s.inner),
	}
}

func (s *ScalarImpl) Encode() []byte {
	return s.inner.Bytes()
}

// Eq runs in constant time.
func (s *ScalarImpl) Eq(b Scalar) bool {
	return s.inner.Equal(mustScalar(b).inner) == 1
}

func (s *ScalarImpl) IsZero() bool {
	return s.inner.Equal(edwards25519.NewScalar()) == 1
}

type PointImpl struct {
	inner *edwards25519.Point
}

func (p *PointImpl) Copy() Point {
	return &PointImpl{
		inner: new(edwards25519.Point).Set(p.inner),
	}
}

func (p *PointImpl) Add(b Point) Point {
	return &PointImpl{
		inner: new(edwards25519.Point).Add(p.inner, mustPoint(b).inner),
	}
}

func (p *PointImpl) Sub(b Point) Point {
	return &PointImpl{
		inner: new(edwards25519.Point).Subtract(p.inner, mustPoint(b).inner),
	}
}

func (p *PointImpl) ScalarMul(s Scalar) Point {
	return &PointImpl{
		inner: new(edwards25519.Point).ScalarMult(mustScalar(s).inner, p.inner),
	}
}

func (p *PointImpl) MulByCofactor() Point {
	return &PointImpl{
		inner: new(edwards25519.Point).MultByCofactor(p.inner),
	}
}

func (p *PointImpl) Encode() []byte {
	return p.inner.Bytes()
}

func (p *PointImpl) IsIdentity() bool {
	return p.inner.Equal(edwards25519.NewIdentityPoint()) == 1
}

func (p *PointImpl) IsTorsionFree() bool {
	q := new(edwards25519.Point).VarTimeDoubleScalarBaseMult(orderMinusOne, p.inner, edwards25519.NewScalar())
	return q.Equal(new(edwards25519.Point).Negate(p.inner)) == 1
}

func (p *PointImpl) Equals(other Point) bool {
	return p.inner.Equal(mustPoint(other).inner) == 1
}
