package cryptonote

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/athanorlabs/go-cryptonote/ed25519"
	"github.com/athanorlabs/go-cryptonote/types"
)

type Curve = types.Curve
type Point = types.Point
type Scalar = types.Scalar

// Engine runs the CryptoNote primitives on one group backend with one
// randomness source. It holds no mutable state and is safe for concurrent
// use as long as its reader is.
type Engine struct {
	curve Curve
	rng   io.Reader
}

// Option configures an Engine.
type Option func(*Engine)

// WithCurve selects the group backend. The default is ed25519.NewCurve().
func WithCurve(c Curve) Option {
	return func(e *Engine) {
		e.curve = c
	}
}

// WithRandom sets the randomness source. A nil reader selects
// crypto/rand.Reader. Anything else must be cryptographically secure outside
// of tests.
func WithRandom(r io.Reader) Option {
	return func(e *Engine) {
		e.rng = r
	}
}

// NewEngine returns an engine configured by opts.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}

	if e.curve == nil {
		e.curve = ed25519.NewCurve()
	}

	if e.rng == nil {
		e.rng = rand.Reader
	}

	return e
}

// Default uses the ed25519 backend and the operating system's RNG.
var Default = NewEngine()

// Curve returns the engine's group backend.
func (e *Engine) Curve() Curve {
	return e.curve
}

func (e *Engine) decodeScalar(b []byte) (Scalar, error) {
	s, err := e.curve.DecodeToScalar(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidScalar, err)
	}
	return s, nil
}

// decodePublicKey applies the full public key check: canonical encoding, on
// the curve, not the identity, and in the prime-order subgroup.
func (e *Engine) decodePublicKey(k PublicKey) (Point, error) {
	p, err := e.curve.DecodeToPoint(k[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPublicKey, err)
	}

	if p.IsIdentity() {
		return nil, fmt.Errorf("%w: identity", ErrInvalidPublicKey)
	}

	if !p.IsTorsionFree() {
		return nil, fmt.Errorf("%w: not in the prime-order subgroup", ErrInvalidPublicKey)
	}

	return p, nil
}

// decodeDerivation only requires a canonical point on the curve; the
// derivation is hashed, never multiplied.
func (e *Engine) decodeDerivation(d KeyDerivation) (Point, error) {
	p, err := e.curve.DecodeToPoint(d[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDerivation, err)
	}
	return p, nil
}

func (e *Engine) decodeKeyImage(i KeyImage) (Point, error) {
	p, err := e.decodePublicKey(PublicKey(i))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidKeyImage, err)
	}
	return p, nil
}

func encode32(b []byte) [KeySize]byte {
	var out [KeySize]byte
	copy(out[:], b)
	return out
}

func zeroScalar(curve Curve) Scalar {
	s, err := curve.DecodeToScalar(make([]byte, KeySize))
	if err != nil {
		panic(err)
	}
	return s
}
