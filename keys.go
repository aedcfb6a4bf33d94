package cryptonote

import (
	"encoding/hex"
	"fmt"

	"github.com/athanorlabs/go-cryptonote/keccak"
)

// KeySize is the encoded size of every scalar, point and hash.
const KeySize = 32

// SignatureSize is the encoded size of one (c, r) signature entry.
const SignatureSize = 2 * KeySize

// EllipticCurveScalar is a little-endian integer; it is canonical iff < l.
type EllipticCurveScalar [KeySize]byte

// SecretKey is a canonical scalar.
type SecretKey [KeySize]byte

// PublicKey is a compressed point in the prime-order subgroup.
type PublicKey [KeySize]byte

// KeyDerivation is the encoding of 8*a*R, the shared secret between a
// transaction key and a view key.
type KeyDerivation [KeySize]byte

// KeyImage is x*Hp(P) for the secret x behind P.
type KeyImage [KeySize]byte

// Hash is a Keccak-256 message digest.
type Hash [KeySize]byte

func isZero(b []byte) bool {
	var acc byte
	for _, v := range b {
		acc |= v
	}
	return acc == 0
}

func (s EllipticCurveScalar) String() string { return hex.EncodeToString(s[:]) }
func (k SecretKey) String() string           { return hex.EncodeToString(k[:]) }
func (k PublicKey) String() string           { return hex.EncodeToString(k[:]) }
func (d KeyDerivation) String() string       { return hex.EncodeToString(d[:]) }
func (i KeyImage) String() string            { return hex.EncodeToString(i[:]) }
func (h Hash) String() string                { return hex.EncodeToString(h[:]) }

// IsZero reports whether k is the all-zero failure sentinel.
func (k PublicKey) IsZero() bool { return isZero(k[:]) }

// IsZero reports whether d is the all-zero failure sentinel.
func (d KeyDerivation) IsZero() bool { return isZero(d[:]) }

// FastHash is CryptoNote's cn_fast_hash, legacy Keccak-256.
func FastHash(data []byte) Hash {
	return Hash(keccak.Sum256(data))
}

func fixed32(b []byte) ([KeySize]byte, error) {
	var out [KeySize]byte
	if len(b) != KeySize {
		return out, fmt.Errorf("%w: want %d bytes, got %d", ErrWrongLength, KeySize, len(b))
	}
	copy(out[:], b)
	return out, nil
}

// ScalarFromBytes copies b into a scalar. It checks the length only.
func ScalarFromBytes(b []byte) (EllipticCurveScalar, error) {
	out, err := fixed32(b)
	return EllipticCurveScalar(out), err
}

// SecretKeyFromBytes copies b into a secret key. It checks the length only.
func SecretKeyFromBytes(b []byte) (SecretKey, error) {
	out, err := fixed32(b)
	return SecretKey(out), err
}

// PublicKeyFromBytes copies b into a public key. It checks the length only;
// use Engine.CheckKey to validate the point.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	out, err := fixed32(b)
	return PublicKey(out), err
}

// KeyDerivationFromBytes copies b into a key derivation. It checks the length only.
func KeyDerivationFromBytes(b []byte) (KeyDerivation, error) {
	out, err := fixed32(b)
	return KeyDerivation(out), err
}

// KeyImageFromBytes copies b into a key image. It checks the length only.
func KeyImageFromBytes(b []byte) (KeyImage, error) {
	out, err := fixed32(b)
	return KeyImage(out), err
}

// HashFromBytes copies b into a hash. It checks the length only.
func HashFromBytes(b []byte) (Hash, error) {
	out, err := fixed32(b)
	return Hash(out), err
}
