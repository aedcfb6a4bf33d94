package cryptonote

import (
	"encoding/binary"
)

// GenerateKeyDerivation returns 8*sec*pub. On failure the derivation is
// all-zero and the error says which input was rejected.
func (e *Engine) GenerateKeyDerivation(pub PublicKey, sec SecretKey) (KeyDerivation, error) {
	p, err := e.decodePublicKey(pub)
	if err != nil {
		return KeyDerivation{}, err
	}

	s, err := e.decodeScalar(sec[:])
	if err != nil {
		return KeyDerivation{}, err
	}

	shared := p.ScalarMul(s).MulByCofactor()
	return KeyDerivation(encode32(shared.Encode())), nil
}

// derivationScalar is Hs(derivation || varint(outputIndex)).
func (e *Engine) derivationScalar(d KeyDerivation, outputIndex uint64) Scalar {
	buf := make([]byte, 0, KeySize+binary.MaxVarintLen64)
	buf = append(buf, d[:]...)
	buf = binary.AppendUvarint(buf, outputIndex)
	return e.curve.HashToScalar(buf)
}

// DerivationToScalar returns the per-output scalar Hs(d || varint(outputIndex)).
func (e *Engine) DerivationToScalar(d KeyDerivation, outputIndex uint64) (EllipticCurveScalar, error) {
	if _, err := e.decodeDerivation(d); err != nil {
		return EllipticCurveScalar{}, err
	}

	return EllipticCurveScalar(encode32(e.derivationScalar(d, outputIndex).Encode())), nil
}

// DerivePublicKey returns the one-time key base + Hs(d || outputIndex)*G.
func (e *Engine) DerivePublicKey(d KeyDerivation, outputIndex uint64, base PublicKey) (PublicKey, error) {
	if _, err := e.decodeDerivation(d); err != nil {
		return PublicKey{}, err
	}

	b, err := e.decodePublicKey(base)
	if err != nil {
		return PublicKey{}, err
	}

	h := e.derivationScalar(d, outputIndex)
	derived := b.Add(e.curve.ScalarBaseMul(h))
	return PublicKey(encode32(derived.Encode())), nil
}

// DeriveSecretKey returns base + Hs(d || outputIndex) mod l, the secret key
// of the matching DerivePublicKey output. Both inputs are validated.
func (e *Engine) DeriveSecretKey(d KeyDerivation, outputIndex uint64, base SecretKey) (SecretKey, error) {
	if _, err := e.decodeDerivation(d); err != nil {
		return SecretKey{}, err
	}

	b, err := e.decodeScalar(base[:])
	if err != nil {
		return SecretKey{}, err
	}

	h := e.derivationScalar(d, outputIndex)
	return SecretKey(encode32(b.Add(h).Encode())), nil
}

// UnderivePublicKey inverts DerivePublicKey: derived - Hs(d || outputIndex)*G.
func (e *Engine) UnderivePublicKey(d KeyDerivation, outputIndex uint64, derived PublicKey) (PublicKey, error) {
	if _, err := e.decodeDerivation(d); err != nil {
		return PublicKey{}, err
	}

	p, err := e.decodePublicKey(derived)
	if err != nil {
		return PublicKey{}, err
	}

	h := e.derivationScalar(d, outputIndex)
	base := p.Sub(e.curve.ScalarBaseMul(h))
	return PublicKey(encode32(base.Encode())), nil
}
