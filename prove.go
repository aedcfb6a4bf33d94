package cryptonote

import (
	"fmt"
)

// Signature is one (c, r) pair: 32-byte challenge followed by 32-byte response.
type Signature [SignatureSize]byte

// NewSignature packs c and r.
func NewSignature(c, r EllipticCurveScalar) Signature {
	var sig Signature
	copy(sig[:KeySize], c[:])
	copy(sig[KeySize:], r[:])
	return sig
}

// C returns the challenge half.
func (s Signature) C() EllipticCurveScalar {
	return EllipticCurveScalar(encode32(s[:KeySize]))
}

// R returns the response half.
func (s Signature) R() EllipticCurveScalar {
	return EllipticCurveScalar(encode32(s[KeySize:]))
}

// RingSignature holds one Signature per ring member, in ring order.
type RingSignature []Signature

// hashToScalar hashes the concatenated encodings of the elements.
func hashToScalar(curve Curve, prefix Hash, elements ...Point) Scalar {
	preimage := make([]byte, 0, KeySize*(1+len(elements)))
	preimage = append(preimage, prefix[:]...)

	for _, el := range elements {
		preimage = append(preimage, el.Encode()...)
	}

	return curve.HashToScalar(preimage)
}

// GenerateSignature produces a Schnorr signature over prefix:
// c = Hs(prefix || pub || k*G), r = k - c*sec.
func (e *Engine) GenerateSignature(prefix Hash, pub PublicKey, sec SecretKey) (Signature, error) {
	P, err := e.decodePublicKey(pub)
	if err != nil {
		return Signature{}, err
	}

	x, err := e.decodeScalar(sec[:])
	if err != nil {
		return Signature{}, err
	}

	if !e.curve.ScalarBaseMul(x).Equals(P) {
		return Signature{}, ErrKeyMismatch
	}

	k, err := e.curve.NewRandomScalar(e.rng)
	if err != nil {
		return Signature{}, err
	}

	c := hashToScalar(e.curve, prefix, P, e.curve.ScalarBaseMul(k))
	r := k.Sub(c.Mul(x))
	return NewSignature(EllipticCurveScalar(encode32(c.Encode())), EllipticCurveScalar(encode32(r.Encode()))), nil
}

// GenerateRingSignature signs prefix with the secret key behind
// pubs[secretIndex], linking the signature to image.
func (e *Engine) GenerateRingSignature(
	prefix Hash,
	image KeyImage,
	pubs []PublicKey,
	sec SecretKey,
	secretIndex int,
) (RingSignature, error) {
	if len(pubs) == 0 {
		return nil, fmt.Errorf("%w: empty ring", ErrRingSize)
	}

	if secretIndex < 0 || secretIndex >= len(pubs) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrSecretIndex, secretIndex, len(pubs))
	}

	x, err := e.decodeScalar(sec[:])
	if err != nil {
		return nil, err
	}

	I, err := e.decodeKeyImage(image)
	if err != nil {
		return nil, err
	}

	points := make([]Point, len(pubs))
	for i, pub := range pubs {
		points[i], err = e.decodePublicKey(pub)
		if err != nil {
			return nil, fmt.Errorf("ring member %d: %w", i, err)
		}
	}

	if !e.curve.ScalarBaseMul(x).Equals(points[secretIndex]) {
		return nil, ErrKeyMismatch
	}

	if !e.curve.HashToPoint(pubs[secretIndex][:]).ScalarMul(x).Equals(I) {
		return nil, fmt.Errorf("%w: image is not x*Hp(P) for the signer", ErrInvalidKeyImage)
	}

	cs := make([]Scalar, len(pubs))
	rs := make([]Scalar, len(pubs))
	commitments := make([]Point, 0, 2*len(pubs))
	sum := zeroScalar(e.curve)

	var k Scalar
	for i := range pubs {
		hp := e.curve.HashToPoint(pubs[i][:])

		if i == secretIndex {
			k, err = e.curve.NewRandomScalar(e.rng)
			if err != nil {
				return nil, err
			}

			// L = k*G, R = k*Hp(P)
			commitments = append(commitments, e.curve.ScalarBaseMul(k), hp.ScalarMul(k))
			continue
		}

		cs[i], err = e.curve.NewRandomScalar(e.rng)
		if err != nil {
			return nil, err
		}

		rs[i], err = e.curve.NewRandomScalar(e.rng)
		if err != nil {
			return nil, err
		}

		// L = c*P + r*G, R = r*Hp(P) + c*I
		L := e.curve.DoubleScalarBaseMul(cs[i], points[i], rs[i])
		R := hp.ScalarMul(rs[i]).Add(I.ScalarMul(cs[i]))
		commitments = append(commitments, L, R)
		sum = sum.Add(cs[i])
	}

	h := hashToScalar(e.curve, prefix, commitments...)
	cs[secretIndex] = h.Sub(sum)
	rs[secretIndex] = k.Sub(cs[secretIndex].Mul(x))

	sig := make(RingSignature, len(pubs))
	for i := range sig {
		sig[i] = NewSignature(
			EllipticCurveScalar(encode32(cs[i].Encode())),
			EllipticCurveScalar(encode32(rs[i].Encode())),
		)
	}

	return sig, nil
}
