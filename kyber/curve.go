// Package kyber is a portable backend built on the dedis kyber Ed25519
// group. It produces the same encodings as the ed25519 backend and exists so
// the primitives can be cross-checked against a second, independent
// implementation of the group law.
package kyber

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	dkyber "go.dedis.ch/kyber/v3"
	kedwards "go.dedis.ch/kyber/v3/group/edwards25519"

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

var (
	errWrongLength        = errors.New("encoding must be 32 bytes")
	errNonCanonicalScalar = errors.New("scalar is not reduced mod l")
	errNonCanonicalPoint  = errors.New("non-canonical point encoding")
)

var group = new(kedwards.Curve)

// order is l = 2^252 + 27742317777372353535851937790883648493.
var order, _ = new(big.Int).SetString("7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)

var orderMinusOne = group.Scalar().SetBytes(littleEndian(new(big.Int).Sub(order, big.NewInt(1))))

func littleEndian(v *big.Int) []byte {
	be := v.FillBytes(make([]byte, 32))
	for i, j := 0, len(be)-1; i < j; i, j = i+1, j-1 {
		be[i], be[j] = be[j], be[i]
	}
	return be
}

func fromLittleEndian(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i := range b {
		be[len(b)-1-i] = b[i]
	}
	return new(big.Int).SetBytes(be)
}

// CurveImpl is the kyber-backed group.
type CurveImpl struct{}

func NewCurve() Curve {
	return &CurveImpl{}
}

func (c *CurveImpl) Name() string {
	return "kyber"
}

func (c *CurveImpl) BasePoint() Point {
	return &PointImpl{
		inner: group.Point().Base(),
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
	if len(b) != 64 {
		return nil, errors.New("uniform input must be 64 bytes")
	}

	// kyber's SetBytes reads little endian and reduces mod l
	return &ScalarImpl{
		inner: group.Scalar().SetBytes(b),
	}, nil
}

func (c *CurveImpl) DecodeToScalar(b []byte) (Scalar, error) {
	if len(b) != 32 {
		return nil, errWrongLength
	}

	if fromLittleEndian(b).Cmp(order) >= 0 {
		return nil, errNonCanonicalScalar
	}

	return &ScalarImpl{
		inner: group.Scalar().SetBytes(b),
	}, nil
}

func (c *CurveImpl) DecodeToPoint(b []byte) (Point, error) {
	if len(b) != 32 {
		return nil, errWrongLength
	}

	p := group.Point()
	if err := p.UnmarshalBinary(b); err != nil {
		return nil, err
	}

	enc, err := p.MarshalBinary()
	if err != nil {
		return nil, err
	}

	if string(enc) != string(b) {
		return nil, errNonCanonicalPoint
	}

	return &PointImpl{
		inner: p,
	}, nil
}

func (c *CurveImpl) HashToScalar(in []byte) Scalar {
	h := keccak.Sum256(in)
	return &ScalarImpl{
		inner: group.Scalar().SetBytes(h[:]),
	}
}

// HashToPoint borrows the field-level map from hashtoec; kyber does not
// export its field arithmetic.
func (c *CurveImpl) HashToPoint(in []byte) Point {
	p := group.Point()
	if err := p.UnmarshalBinary(hashtoec.HashToEC(in).Bytes()); err != nil {
		panic(err)
	}

	return &PointImpl{
		inner: p,
	}
}

func (c *CurveImpl) ScalarBaseMul(s Scalar) Point {
	return &PointImpl{
		inner: group.Point().Mul(mustScalar(s).inner, nil),
	}
}

func (c *CurveImpl) ScalarMul(s Scalar, p Point) Point {
	return &PointImpl{
		inner: group.Point().Mul(mustScalar(s).inner, mustPoint(p).inner),
	}
}

func (c *CurveImpl) DoubleScalarBaseMul(a Scalar, A Point, b Scalar) Point {
	aA := group.Point().Mul(mustScalar(a).inner, mustPoint(A).inner)
	bG := group.Point().Mul(mustScalar(b).inner, nil)
	return &PointImpl{
		inner: group.Point().Add(aA, bG),
	}
}

func mustScalar(s Scalar) *ScalarImpl {
	ss, ok := s.(*ScalarImpl)
	if !ok {
		panic("invalid scalar; type is not *kyber.ScalarImpl")
	}
	return ss
}

func mustPoint(p Point) *PointImpl {
	pp, ok := p.(*PointImpl)
	if !ok {
		panic("invalid point; type is not *kyber.PointImpl")
	}
	return pp
}

type ScalarImpl struct {
	inner dkyber.Scalar
}

func (s *ScalarImpl) Add(b Scalar) Scalar {
	return &ScalarImpl{
		inner: group.Scalar().Add(s.inner, mustScalar(b).inner),
	}
}

func (s *ScalarImpl) Sub(b Scalar) Scalar {
	return &ScalarImpl{
		inner: group.Scalar().Sub(s.inner, mustScalar(b).inner),
	}
}

func (s *ScalarImpl) Mul(b Scalar) Scalar {
	return &ScalarImpl{
		inner: group.Scalar().Mul(s.inner, mustScalar(b).inner),
	}
}

func (s *ScalarImpl) Negate() Scalar {
	return &ScalarImpl{
		inner: group.Scalar().Neg(s.inner),
	}
}

func (s *ScalarImpl) Encode() []byte {
	b, err := s.inner.MarshalBinary()
	if err != nil {
		panic(err)
	}
	return b
}

func (s *ScalarImpl) Eq(b Scalar) bool {
	return s.inner.Equal(mustScalar(b).inner)
}

func (s *ScalarImpl) IsZero() bool {
	return s.inner.Equal(group.Scalar().Zero())
}

type PointImpl struct {
	inner dkyber.Point
}

func (p *PointImpl) Copy() Point {
	return &PointImpl{
		inner: p.inner.Clone(),
	}
}

func (p *PointImpl) Add(b Point) Point {
	return &PointImpl{
		inner: group.Point().Add(p.inner, mustPoint(b).inner),
	}
}

func (p *PointImpl) Sub(b Point) Point {
	return &PointImpl{
		inner: group.Point().Sub(p.inner, mustPoint(b).inner),
	}
}

func (p *PointImpl) ScalarMul(s Scalar) Point {
	return &PointImpl{
		inner: group.Point().Mul(mustScalar(s).inner, p.inner),
	}
}

func (p *PointImpl) MulByCofactor() Point {
	eight := group.Scalar().SetInt64(8)
	return &PointImpl{
		inner: group.Point().Mul(eight, p.inner),
	}
}

func (p *PointImpl) Encode() []byte {
	b, err := p.inner.MarshalBinary()
	if err != nil {
		panic(err)
	}
	return b
}

func (p *PointImpl) IsIdentity() bool {
	return p.inner.Equal(group.Point().Null())
}

func (p *PointImpl) IsTorsionFree() bool {
	q := group.Point().Mul(orderMinusOne, p.inner)
	return q.Equal(group.Point().Neg(p.inner))
}

func (p *PointImpl) Equals(other Point) bool {
	return p.inner.Equal(mustPoint(other).inner)
}
