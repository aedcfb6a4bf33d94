package cryptonote

import (
	"crypto/subtle"
)

// CheckSignature verifies a Schnorr signature produced by GenerateSignature.
func (e *Engine) CheckSignature(prefix Hash, pub PublicKey, sig Signature) bool {
	P, err := e.decodePublicKey(pub)
	if err != nil {
		return false
	}

	c, r, ok := e.decodeSignature(sig)
	if !ok {
		return false
	}

	comm := e.curve.DoubleScalarBaseMul(c, P, r)
	if comm.IsIdentity() {
		return false
	}

	h := hashToScalar(e.curve, prefix, P, comm)
	return subtle.ConstantTimeCompare(h.Encode(), c.Encode()) == 1
}

func (e *Engine) decodeSignature(sig Signature) (c, r Scalar, ok bool) {
	cb, rb := sig.C(), sig.R()

	c, err := e.curve.DecodeToScalar(cb[:])
	if err != nil {
		return nil, nil, false
	}

	r, err = e.curve.DecodeToScalar(rb[:])
	if err != nil {
		return nil, nil, false
	}

	return c, r, true
}

// CheckRingSignature verifies sig over prefix for the ring pubs and the key
// image. Ring members are processed in the order given; reordering pubs
// without reordering sig invalidates the signature.
//
// For each member i it recomputes
//
//	L_i = c_i*P_i + r_i*G
//	R_i = r_i*Hp(P_i) + c_i*I
//
// and accepts iff Hs(prefix || L_0 || R_0 || ... ) == sum(c_i).
func (e *Engine) CheckRingSignature(prefix Hash, image KeyImage, pubs []PublicKey, sig RingSignature) bool {
	if len(pubs) == 0 || len(pubs) != len(sig) {
		return false
	}

	I, err := e.decodeKeyImage(image)
	if err != nil {
		return false
	}

	sum := zeroScalar(e.curve)
	commitments := make([]Point, 0, 2*len(pubs))

	for i := range pubs {
		c, r, ok := e.decodeSignature(sig[i])
		if !ok {
			return false
		}

		P, err := e.decodePublicKey(pubs[i])
		if err != nil {
			return false
		}

		L := e.curve.DoubleScalarBaseMul(c, P, r)
		R := e.curve.HashToPoint(pubs[i][:]).ScalarMul(r).Add(I.ScalarMul(c))
		commitments = append(commitments, L, R)
		sum = sum.Add(c)
	}

	h := hashToScalar(e.curve, prefix, commitments...)
	return subtle.ConstantTimeCompare(h.Encode(), sum.Encode()) == 1
}
