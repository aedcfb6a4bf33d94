package cryptonote

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/athanorlabs/go-cryptonote/keccak"
)

const (
	orderHex         = "edd3f55c1a631258d69cf7a2def9de1400000000000000000000000000000010"
	orderMinusOneHex = "ecd3f55c1a631258d69cf7a2def9de1400000000000000000000000000000010"
)

var groupOrder, _ = new(big.Int).SetString("7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i := range b {
		out[len(b)-1-i] = b[i]
	}
	return out
}

func TestCheckScalar(t *testing.T) {
	cases := []struct {
		name string
		in   string
		ok   bool
	}{
		{"zero", "0000000000000000000000000000000000000000000000000000000000000000", true},
		{"one", "0100000000000000000000000000000000000000000000000000000000000000", true},
		{"l-1", orderMinusOneHex, true},
		{"l", orderHex, false},
		{"l+1", "eed3f55c1a631258d69cf7a2def9de1400000000000000000000000000000010", false},
		{"2^252", "0000000000000000000000000000000000000000000000000000000000000010", true},
		{"all ones", "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff", false},
		{"high byte 0x20", "0000000000000000000000000000000000000000000000000000000000000020", false},
	}

	for name, e := range testEngines("check") {
		for _, tc := range cases {
			require.Equal(t, tc.ok, e.CheckScalar(mustScalar(t, tc.in)), "%s: %s", name, tc.name)
		}
	}
}

func TestRandomScalar_Canonical(t *testing.T) {
	for name, e := range testEngines("random") {
		seen := make(map[EllipticCurveScalar]bool)
		for i := 0; i < 64; i++ {
			s, err := e.RandomScalar()
			require.NoError(t, err)
			require.True(t, e.CheckScalar(s), name)
			require.False(t, seen[s], name)
			seen[s] = true
		}
	}
}

func TestRandomScalar_Deterministic(t *testing.T) {
	a := NewEngine(WithRandom(NewDeterministicReader([]byte{42})))
	b := NewEngine(WithRandom(NewDeterministicReader([]byte{42})))
	for i := 0; i < 8; i++ {
		sa, err := a.RandomScalar()
		require.NoError(t, err)
		sb, err := b.RandomScalar()
		require.NoError(t, err)
		require.Equal(t, sa, sb)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errTestRandom
}

func TestRandomScalar_ReaderFailure(t *testing.T) {
	e := NewEngine(WithRandom(failingReader{}))
	s, err := e.RandomScalar()
	require.ErrorIs(t, err, errTestRandom)
	require.Equal(t, EllipticCurveScalar{}, s)

	_, _, err = e.GenerateKeys()
	require.ErrorIs(t, err, errTestRandom)
}

func TestHashToScalar_GoldenVector(t *testing.T) {
	expected := "427f5090283713a2a8448285f2a22cc8cf5374845766b6370425e2319e40f50d"
	for name, e := range testEngines("hash") {
		require.Equal(t, expected, e.HashToScalar(mustHex(t, "2ace")).String(), name)
	}
}

// reference reduction with math/big
func bigHashToScalar(data []byte) EllipticCurveScalar {
	h := keccak.Sum256(data)
	v := new(big.Int).SetBytes(reverse(h[:]))
	v.Mod(v, groupOrder)

	var out EllipticCurveScalar
	copy(out[:], reverse(v.FillBytes(make([]byte, 32))))
	return out
}

func TestHashToScalar_MatchesReference(t *testing.T) {
	inputs := [][]byte{
		nil,
		{},
		{0x00},
		mustHex(t, "2ace"),
		[]byte("the quick brown fox"),
		make([]byte, 200),
	}

	for name, e := range testEngines("hash") {
		for _, in := range inputs {
			got := e.HashToScalar(in)
			require.Equal(t, bigHashToScalar(in), got, name)
			require.True(t, e.CheckScalar(got), name)
			require.Equal(t, got, e.HashToScalar(in), name)
		}
	}
}

func TestHashToScalar_Empty(t *testing.T) {
	a := Default.HashToScalar(nil)
	b := Default.HashToScalar([]byte{})
	require.Equal(t, a, b)
	require.Equal(t, bigHashToScalar(nil), a)
}
