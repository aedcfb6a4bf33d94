package cryptonote

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/athanorlabs/go-cryptonote/ed25519"
	"github.com/athanorlabs/go-cryptonote/kyber"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func mustScalar(t *testing.T, s string) EllipticCurveScalar {
	t.Helper()
	out, err := ScalarFromBytes(mustHex(t, s))
	require.NoError(t, err)
	return out
}

func newTestEngine(seed string, c Curve) *Engine {
	return NewEngine(WithCurve(c), WithRandom(NewDeterministicReader([]byte(seed))))
}

// testEngines returns one deterministic engine per backend, keyed by backend
// name and all seeded alike.
func testEngines(seed string) map[string]*Engine {
	engines := make(map[string]*Engine)
	for _, c := range []Curve{ed25519.NewCurve(), kyber.NewCurve()} {
		engines[c.Name()] = newTestEngine(seed, c)
	}
	return engines
}

var errTestRandom = errors.New("random source failed")
