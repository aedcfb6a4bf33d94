package cryptonote

import (
	"sync"
	"testing"

	"filippo.io/edwards25519"
	"github.com/stretchr/testify/require"
)

// small-order and malformed encodings every backend must reject
var badPublicKeys = map[string]string{
	"all zero (order 4)":     "0000000000000000000000000000000000000000000000000000000000000000",
	"identity":               "0100000000000000000000000000000000000000000000000000000000000000",
	"order 2":                "ecffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f",
	"order 8":                "26e8958fc2b227b045c3f489f2ef98f0d5dfac05d3c63339b13802886d53fc05",
	"non-canonical identity": "eeffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f",
	"all ones":               "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
}

func TestGenerateKeys(t *testing.T) {
	for name, e := range testEngines("keys") {
		for i := 0; i < 16; i++ {
			pub, sec, err := e.GenerateKeys()
			require.NoError(t, err)
			require.True(t, e.CheckScalar(EllipticCurveScalar(sec)), name)
			require.True(t, e.CheckKey(pub), name)

			derived, err := e.SecretKeyToPublicKey(sec)
			require.NoError(t, err)
			require.Equal(t, pub, derived, name)
		}
	}
}

func TestGenerateKeys_BackendsAgree(t *testing.T) {
	engines := testEngines("agree")
	for i := 0; i < 8; i++ {
		pubA, secA, err := engines["ed25519"].GenerateKeys()
		require.NoError(t, err)
		pubB, secB, err := engines["kyber"].GenerateKeys()
		require.NoError(t, err)
		require.Equal(t, secA, secB)
		require.Equal(t, pubA, pubB)
	}
}

func TestCheckKey_Rejects(t *testing.T) {
	for name, e := range testEngines("check-key") {
		for desc, enc := range badPublicKeys {
			pub, err := PublicKeyFromBytes(mustHex(t, enc))
			require.NoError(t, err)
			require.False(t, e.CheckKey(pub), "%s: %s", name, desc)
		}
	}
}

func TestCheckKey_RejectsTorsion(t *testing.T) {
	pub, _, err := Default.GenerateKeys()
	require.NoError(t, err)

	P, err := new(edwards25519.Point).SetBytes(pub[:])
	require.NoError(t, err)
	T, err := new(edwards25519.Point).SetBytes(mustHex(t, badPublicKeys["order 2"]))
	require.NoError(t, err)

	mixed := PublicKey(new(edwards25519.Point).Add(P, T).Bytes())
	for name, e := range testEngines("torsion") {
		require.True(t, e.CheckKey(pub), name)
		require.False(t, e.CheckKey(mixed), name)
	}
}

func TestSecretKeyToPublicKey_NonCanonical(t *testing.T) {
	for name, e := range testEngines("sk2pk") {
		sec := SecretKey(mustScalar(t, orderHex))
		pub, err := e.SecretKeyToPublicKey(sec)
		require.ErrorIs(t, err, ErrInvalidScalar, name)
		require.True(t, pub.IsZero(), name)
	}
}

func TestSecretKeyToPublicKey_Known(t *testing.T) {
	one := SecretKey(mustScalar(t, "0100000000000000000000000000000000000000000000000000000000000000"))
	for name, e := range testEngines("base") {
		pub, err := e.SecretKeyToPublicKey(one)
		require.NoError(t, err)
		require.Equal(t, "5866666666666666666666666666666666666666666666666666666666666666", pub.String(), name)
	}
}

func TestGenerateKeyImage(t *testing.T) {
	engines := testEngines("image")
	pub, sec, err := engines["ed25519"].GenerateKeys()
	require.NoError(t, err)

	imgA, err := engines["ed25519"].GenerateKeyImage(pub, sec)
	require.NoError(t, err)
	imgB, err := engines["kyber"].GenerateKeyImage(pub, sec)
	require.NoError(t, err)
	require.Equal(t, imgA, imgB)

	again, err := engines["ed25519"].GenerateKeyImage(pub, sec)
	require.NoError(t, err)
	require.Equal(t, imgA, again)
	require.True(t, engines["ed25519"].CheckKey(PublicKey(imgA)))

	other, otherSec, err := engines["ed25519"].GenerateKeys()
	require.NoError(t, err)
	otherImg, err := engines["ed25519"].GenerateKeyImage(other, otherSec)
	require.NoError(t, err)
	require.NotEqual(t, imgA, otherImg)
}

func TestGenerateKeyImage_Invalid(t *testing.T) {
	_, sec, err := Default.GenerateKeys()
	require.NoError(t, err)

	bad, err := PublicKeyFromBytes(mustHex(t, badPublicKeys["all ones"]))
	require.NoError(t, err)

	img, err := Default.GenerateKeyImage(bad, sec)
	require.ErrorIs(t, err, ErrInvalidPublicKey)
	require.Equal(t, KeyImage{}, img)

	pub, _, err := Default.GenerateKeys()
	require.NoError(t, err)
	img, err = Default.GenerateKeyImage(pub, SecretKey(mustScalar(t, orderHex)))
	require.ErrorIs(t, err, ErrInvalidScalar)
	require.Equal(t, KeyImage{}, img)
}

func TestHashToPoint(t *testing.T) {
	engines := testEngines("hp")
	inputs := [][]byte{nil, {0}, []byte("hello"), make([]byte, 32)}
	for _, in := range inputs {
		a := engines["ed25519"].HashToPoint(in)
		b := engines["kyber"].HashToPoint(in)
		require.Equal(t, a, b)
		require.True(t, engines["ed25519"].CheckKey(a))
		require.Equal(t, a, engines["ed25519"].HashToPoint(in))
	}
}

func TestDefaultEngine_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pub, sec, err := Default.GenerateKeys()
			if err != nil {
				errs <- err
				return
			}
			derived, err := Default.SecretKeyToPublicKey(sec)
			if err == nil && derived != pub {
				err = ErrKeyMismatch
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}

func TestGenerateKeyImage_KnownVector(t *testing.T) {
	sec := SecretKey(mustScalar(t, "18e85bb2013c0c6fa7efc97e2635b8825cd44bc57b8737405a7eb81a502a0905"))
	for name, e := range testEngines("image-vector") {
		pub, err := e.SecretKeyToPublicKey(sec)
		require.NoError(t, err)
		require.Equal(t, "581ba2f8770933d8959db7185b674ee710bdb0a81cd0b436f3fa2c645415470b", pub.String(), name)

		img, err := e.GenerateKeyImage(pub, sec)
		require.NoError(t, err)
		require.Equal(t, "a8478bd2d039e2491c7e1e235d020f8c8cb4820cb4dd61839dc36a3893fb79c7", img.String(), name)
	}
}
