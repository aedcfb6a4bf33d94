package cryptonote

import "errors"

var (
	ErrInvalidScalar     = errors.New("scalar is not reduced mod l")
	ErrInvalidPublicKey  = errors.New("invalid public key")
	ErrInvalidDerivation = errors.New("invalid key derivation")
	ErrInvalidKeyImage   = errors.New("invalid key image")
	ErrWrongLength       = errors.New("wrong byte length")
	ErrRingSize          = errors.New("invalid ring size")
	ErrSecretIndex       = errors.New("secret index out of range")
	ErrKeyMismatch       = errors.New("secret key does not match the ring member at the secret index")
)
