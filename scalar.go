package cryptonote

// CheckScalar reports whether s is canonical, i.e. s < l.
func (e *Engine) CheckScalar(s EllipticCurveScalar) bool {
	_, err := e.curve.DecodeToScalar(s[:])
	return err == nil
}

// RandomScalar draws 64 bytes from the engine's reader and reduces them
// mod l. The result is always canonical.
func (e *Engine) RandomScalar() (EllipticCurveScalar, error) {
	s, err := e.curve.NewRandomScalar(e.rng)
	if err != nil {
		return EllipticCurveScalar{}, err
	}
	return EllipticCurveScalar(encode32(s.Encode())), nil
}

// HashToScalar returns Keccak-256(data) reduced mod l.
func (e *Engine) HashToScalar(data []byte) EllipticCurveScalar {
	return EllipticCurveScalar(encode32(e.curve.HashToScalar(data).Encode()))
}
