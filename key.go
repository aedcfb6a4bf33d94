package cryptonote

import "fmt"

// GenerateKeys returns a fresh key pair. The public key always passes CheckKey.
func (e *Engine) GenerateKeys() (PublicKey, SecretKey, error) {
	s, err := e.curve.NewRandomScalar(e.rng)
	if err != nil {
		return PublicKey{}, SecretKey{}, fmt.Errorf("failed to generate secret key: %w", err)
	}

	pub := e.curve.ScalarBaseMul(s)
	return PublicKey(encode32(pub.Encode())), SecretKey(encode32(s.Encode())), nil
}

// CheckKey reports whether k encodes a point of the prime-order subgroup
// other than the identity.
func (e *Engine) CheckKey(k PublicKey) bool {
	_, err := e.decodePublicKey(k)
	return err == nil
}

// SecretKeyToPublicKey returns sec*G. It fails if sec is not canonical.
func (e *Engine) SecretKeyToPublicKey(sec SecretKey) (PublicKey, error) {
	s, err := e.decodeScalar(sec[:])
	if err != nil {
		return PublicKey{}, err
	}

	return PublicKey(encode32(e.curve.ScalarBaseMul(s).Encode())), nil
}

// GenerateKeyImage returns sec*Hp(pub). The caller is responsible for pub
// being the public key of sec.
func (e *Engine) GenerateKeyImage(pub PublicKey, sec SecretKey) (KeyImage, error) {
	if _, err := e.decodePublicKey(pub); err != nil {
		return KeyImage{}, err
	}

	s, err := e.decodeScalar(sec[:])
	if err != nil {
		return KeyImage{}, err
	}

	img := e.curve.HashToPoint(pub[:]).ScalarMul(s)
	return KeyImage(encode32(img.Encode())), nil
}

// HashToPoint returns Hp(data) = 8 * map(Keccak-256(data)).
func (e *Engine) HashToPoint(data []byte) PublicKey {
	return PublicKey(encode32(e.curve.HashToPoint(data).Encode()))
}
