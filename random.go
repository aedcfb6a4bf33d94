package cryptonote

import (
	"sync"

	"golang.org/x/crypto/sha3"
)

// DeterministicReader is a SHAKE256 stream keyed by a seed. It exists so
// tests can reproduce key material; never use it to generate real keys.
type DeterministicReader struct {
	mu  sync.Mutex
	xof sha3.ShakeHash
}

// NewDeterministicReader returns a reader whose output depends only on seed.
func NewDeterministicReader(seed []byte) *DeterministicReader {
	xof := sha3.NewShake256()
	_, _ = xof.Write(seed)
	return &DeterministicReader{
		xof: xof,
	}
}

func (r *DeterministicReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.xof.Read(p)
}
