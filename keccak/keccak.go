// Package keccak provides the legacy (pre-FIPS 202) Keccak-256 used by
// CryptoNote as cn_fast_hash.
package keccak

import (
	"golang.org/x/crypto/sha3"
)

// Size is the digest length in bytes.
const Size = 32

// Sum256 returns the legacy Keccak-256 digest of the concatenation of the inputs.
func Sum256(data ...[]byte) [Size]byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		_, _ = h.Write(d)
	}

	var out [Size]byte
	h.Sum(out[:0])
	return out
}
