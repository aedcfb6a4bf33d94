// Package commands defines the cryptonote CLI, a thin hex-in/hex-out shell
// over the primitives in package cryptonote.
//
// Commands
//
//   - backend                Print the selected group backend
//   - keygen                 Generate a key pair
//   - pubkey                 Derive the public key of a secret key
//   - check-key              Validate a public key
//   - check-scalar           Check that a scalar is reduced mod l
//   - hash-to-scalar         Keccak-256 reduced mod l
//   - hash-to-point          Hash arbitrary bytes into the prime-order subgroup
//   - fast-hash              Plain Keccak-256
//   - key-image              Compute the key image of a key pair
//   - derivation             Diffie-Hellman key derivation
//   - derivation-to-scalar   Per-output scalar of a derivation
//   - derive-public          One-time output public key
//   - derive-secret          One-time output secret key
//   - underive               Recover the base public key of an output
//   - sign, verify           Schnorr signatures
//   - ring-sign, ring-verify Linkable ring signatures
//
// # Implementation
//
// The root command builds one cryptonote.Engine from --backend and --seed
// before any subcommand runs. Every argument and result is lowercase hex.
// Predicates print true or false and still exit zero; malformed input is an
// error.
package commands
