package pkcs8

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"testing"

	"github.com/signatory-io/keyinfo/crypto/oiddb"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	plain, err := x509.MarshalPKCS8PrivateKey(priv)
	require.NoError(t, err)

	encrypted := build(sequence(
		sequence(oid(oiddb.PBEWithSHA1AndDESCBC), sequence(octets([]byte("saltsalt")), integer(2048))),
		octets([]byte("ciphertext")),
	))

	cases := []struct {
		name string
		data []byte
		kind Kind
	}{
		{"plain", plain, PlainKey},
		{"encrypted", encrypted, EncryptedKey},
		{"integer", build(integer(5)), Unknown},
		{"empty sequence", build(sequence()), Unknown},
		{"octet string first", build(sequence(octets([]byte{1}))), Unknown},
		{"rsa private key", x509.MarshalPKCS1PrivateKey(priv), PlainKey},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			kind, err := Classify(c.data)
			require.NoError(t, err)
			require.Equal(t, c.kind, kind)
		})
	}
}

func TestClassifyErrors(t *testing.T) {
	_, err := Classify(nil)
	require.ErrorIs(t, err, ErrInvalidArgument)

	for _, data := range [][]byte{
		{},
		{0x30},
		{0x30, 0x03, 0x02, 0x01},
		{0x30, 0x00, 0x00},
		{0x30, 0x80, 0x00, 0x00},
	} {
		kind, err := Classify(data)
		requireInvalid(t, err, "malformed container")
		require.Equal(t, Unknown, kind)
	}
}

func TestKindString(t *testing.T) {
	require.Equal(t, "PrivateKeyInfo", PlainKey.String())
	require.Equal(t, "EncryptedPrivateKeyInfo", EncryptedKey.String())
	require.Equal(t, "Unknown", Unknown.String())
	require.Equal(t, "Unknown", Kind(42).String())
}
