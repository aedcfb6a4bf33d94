package cryptonote

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type wallet struct {
	viewPub, spendPub PublicKey
	viewSec, spendSec SecretKey
}

func newWallet(t *testing.T, e *Engine) wallet {
	t.Helper()
	var w wallet
	var err error
	w.viewPub, w.viewSec, err = e.GenerateKeys()
	require.NoError(t, err)
	w.spendPub, w.spendSec, err = e.GenerateKeys()
	require.NoError(t, err)
	return w
}

func TestGenerateKeyDerivation_Shared(t *testing.T) {
	for name, e := range testEngines("derive") {
		w := newWallet(t, e)
		txPub, txSec, err := e.GenerateKeys()
		require.NoError(t, err)

		sender, err := e.GenerateKeyDerivation(w.viewPub, txSec)
		require.NoError(t, err)
		receiver, err := e.GenerateKeyDerivation(txPub, w.viewSec)
		require.NoError(t, err)

		require.Equal(t, sender, receiver, name)
		require.False(t, sender.IsZero(), name)
	}
}

func TestGenerateKeyDerivation_Invalid(t *testing.T) {
	for name, e := range testEngines("derive-bad") {
		pub, sec, err := e.GenerateKeys()
		require.NoError(t, err)

		bad, err := PublicKeyFromBytes(mustHex(t, badPublicKeys["all ones"]))
		require.NoError(t, err)
		d, err := e.GenerateKeyDerivation(bad, sec)
		require.ErrorIs(t, err, ErrInvalidPublicKey, name)
		require.True(t, d.IsZero(), name)

		d, err = e.GenerateKeyDerivation(pub, SecretKey(mustScalar(t, orderHex)))
		require.ErrorIs(t, err, ErrInvalidScalar, name)
		require.True(t, d.IsZero(), name)
	}
}

func TestDerivationToScalar(t *testing.T) {
	e := newTestEngine("d2s", Default.Curve())
	pub, sec, err := e.GenerateKeys()
	require.NoError(t, err)
	d, err := e.GenerateKeyDerivation(pub, sec)
	require.NoError(t, err)

	cases := []struct {
		index  uint64
		suffix []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{300, []byte{0xac, 0x02}},
		{1<<64 - 1, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}},
	}

	for _, tc := range cases {
		got, err := e.DerivationToScalar(d, tc.index)
		require.NoError(t, err)
		require.Equal(t, e.HashToScalar(append(d[:], tc.suffix...)), got, "index %d", tc.index)
	}
}

func TestDerivationToScalar_AcceptsTorsionPoint(t *testing.T) {
	// derivations are only hashed, so any canonical curve point is accepted
	d, err := KeyDerivationFromBytes(mustHex(t, badPublicKeys["order 2"]))
	require.NoError(t, err)
	_, err = Default.DerivationToScalar(d, 0)
	require.NoError(t, err)
}

func TestDerivationToScalar_Invalid(t *testing.T) {
	for name, e := range testEngines("d2s-bad") {
		for _, enc := range []string{badPublicKeys["all ones"], badPublicKeys["non-canonical identity"]} {
			d, err := KeyDerivationFromBytes(mustHex(t, enc))
			require.NoError(t, err)

			s, err := e.DerivationToScalar(d, 0)
			require.ErrorIs(t, err, ErrInvalidDerivation, name)
			require.Equal(t, EllipticCurveScalar{}, s, name)

			pub, err := e.DerivePublicKey(d, 0, e.HashToPoint([]byte("base")))
			require.ErrorIs(t, err, ErrInvalidDerivation, name)
			require.True(t, pub.IsZero(), name)

			sec, err := e.DeriveSecretKey(d, 0, SecretKey{1})
			require.ErrorIs(t, err, ErrInvalidDerivation, name)
			require.Equal(t, SecretKey{}, sec, name)
		}
	}
}

func TestDeriveKeys_RoundTrip(t *testing.T) {
	for name, e := range testEngines("roundtrip") {
		w := newWallet(t, e)
		txPub, txSec, err := e.GenerateKeys()
		require.NoError(t, err)

		senderD, err := e.GenerateKeyDerivation(w.viewPub, txSec)
		require.NoError(t, err)
		receiverD, err := e.GenerateKeyDerivation(txPub, w.viewSec)
		require.NoError(t, err)

		seen := make(map[PublicKey]bool)
		for _, index := range []uint64{0, 1, 2, 1000, 1 << 40} {
			out, err := e.DerivePublicKey(senderD, index, w.spendPub)
			require.NoError(t, err)
			require.True(t, e.CheckKey(out), name)
			require.False(t, seen[out], name)
			seen[out] = true

			sec, err := e.DeriveSecretKey(receiverD, index, w.spendSec)
			require.NoError(t, err)
			got, err := e.SecretKeyToPublicKey(sec)
			require.NoError(t, err)
			require.Equal(t, out, got, name)

			base, err := e.UnderivePublicKey(receiverD, index, out)
			require.NoError(t, err)
			require.Equal(t, w.spendPub, base, name)
		}
	}
}

func TestDeriveKeys_BackendsAgree(t *testing.T) {
	engines := testEngines("derive-agree")
	w := newWallet(t, engines["ed25519"])
	_, txSec, err := engines["ed25519"].GenerateKeys()
	require.NoError(t, err)

	var outs []PublicKey
	var secs []SecretKey
	for _, name := range []string{"ed25519", "kyber"} {
		e := engines[name]
		d, err := e.GenerateKeyDerivation(w.viewPub, txSec)
		require.NoError(t, err)
		out, err := e.DerivePublicKey(d, 7, w.spendPub)
		require.NoError(t, err)
		sec, err := e.DeriveSecretKey(d, 7, w.spendSec)
		require.NoError(t, err)
		outs = append(outs, out)
		secs = append(secs, sec)
	}

	require.Equal(t, outs[0], outs[1])
	require.Equal(t, secs[0], secs[1])
}

func TestDerivePublicKey_InvalidBase(t *testing.T) {
	pub, sec, err := Default.GenerateKeys()
	require.NoError(t, err)
	d, err := Default.GenerateKeyDerivation(pub, sec)
	require.NoError(t, err)

	bad, err := PublicKeyFromBytes(mustHex(t, badPublicKeys["order 8"]))
	require.NoError(t, err)

	out, err := Default.DerivePublicKey(d, 0, bad)
	require.ErrorIs(t, err, ErrInvalidPublicKey)
	require.True(t, out.IsZero())

	out, err = Default.UnderivePublicKey(d, 0, bad)
	require.ErrorIs(t, err, ErrInvalidPublicKey)
	require.True(t, out.IsZero())

	secOut, err := Default.DeriveSecretKey(d, 0, SecretKey(mustScalar(t, orderHex)))
	require.ErrorIs(t, err, ErrInvalidScalar)
	require.Equal(t, SecretKey{}, secOut)
}
