package cryptonote

import (
	"bytes"
	"errors"
	"fmt"
)

var errInputBytesTooShort = errors.New("input bytes too short")

// Bytes encodes the ring signature as c_0 || r_0 || c_1 || r_1 || ...
func (rs RingSignature) Bytes() []byte {
	b := make([]byte, 0, len(rs)*SignatureSize)
	for _, sig := range rs {
		b = append(b, sig[:]...)
	}
	return b
}

// ParseRingSignature decodes a ring signature for a ring of n members.
// Scalars are not validated here; CheckRingSignature does that.
func ParseRingSignature(in []byte, n int) (RingSignature, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: ring size %d", ErrRingSize, n)
	}

	if len(in) < n*SignatureSize {
		return nil, fmt.Errorf("%w: %w", ErrWrongLength, errInputBytesTooShort)
	}

	if len(in) != n*SignatureSize {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrWrongLength, n*SignatureSize, len(in))
	}

	reader := bytes.NewBuffer(in)
	rs := make(RingSignature, n)
	for i := range rs {
		copy(rs[i][:], reader.Next(SignatureSize))
	}

	return rs, nil
}

// ParseSignature decodes a single 64-byte signature.
func ParseSignature(in []byte) (Signature, error) {
	var sig Signature
	if len(in) != SignatureSize {
		return sig, fmt.Errorf("%w: want %d bytes, got %d", ErrWrongLength, SignatureSize, len(in))
	}

	copy(sig[:], in)
	return sig, nil
}
