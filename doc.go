// Package cryptonote implements the elliptic-curve primitives of the
// CryptoNote protocol over the prime-order subgroup of edwards25519.
//
// The primitives fall into three groups:
//
//   - scalars: canonical-form checks, random scalars, and hash-to-scalar
//     (Keccak-256 reduced mod l)
//   - keys: key pairs, public key validation, Diffie-Hellman key derivations
//     and the derive/underive family used for one-time output keys
//   - signatures: Schnorr signatures and linkable ring signatures with key
//     images
//
// All operations hang off an Engine, which pairs a group backend (see the
// ed25519 and kyber packages) with a randomness source. The zero Engine is
// not usable; construct one with NewEngine or use Default.
//
// Every operation that can fail returns an error alongside its value, and
// the value is all-zero whenever the error is non-nil, so callers that only
// look at bytes still see the CryptoNote zero sentinel.
package cryptonote
