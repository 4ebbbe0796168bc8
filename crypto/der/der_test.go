package der

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

func TestParse(t *testing.T) {
	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1Int64(3)
		b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
			b.AddASN1ObjectIdentifier([]int{1, 2, 840, 113549, 1, 1, 1})
			b.AddASN1NULL()
		})
		b.AddASN1OctetString([]byte{1, 2, 3})
	})
	data := b.BytesOrPanic()

	n, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, asn1.SEQUENCE, n.Tag())
	require.Equal(t, 3, n.Len())
	require.Equal(t, data, n.Raw())

	v, err := Int(n.Child(0))
	require.NoError(t, err)
	require.Equal(t, int64(3), v)

	algo := n.Child(1)
	require.Equal(t, 2, algo.Len())
	oid, err := OID(algo.Child(0))
	require.NoError(t, err)
	require.Equal(t, "1.2.840.113549.1.1.1", oid)
	require.Equal(t, asn1.NULL, algo.Child(1).Tag())

	octets := n.Child(2)
	require.Equal(t, asn1.OCTET_STRING, octets.Tag())
	require.Equal(t, []byte{1, 2, 3}, octets.Value())
	require.Zero(t, octets.Len())

	require.Nil(t, n.Child(3))
	require.Nil(t, n.Child(-1))

	var tags []asn1.Tag
	for _, c := range n.Children() {
		tags = append(tags, c.Tag())
	}
	require.Equal(t, []asn1.Tag{asn1.INTEGER, asn1.SEQUENCE, asn1.OCTET_STRING}, tags)

	_, err = OID(n.Child(0))
	require.Error(t, err)
	_, err = Int(algo.Child(0))
	require.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(nil)
	require.ErrorIs(t, err, ErrMalformed)

	_, err = Parse([]byte{})
	require.ErrorIs(t, err, ErrMalformed)

	// truncated content
	_, err = Parse([]byte{0x30, 0x05, 0x02, 0x01})
	require.ErrorIs(t, err, ErrMalformed)

	// malformed child
	_, err = Parse([]byte{0x30, 0x02, 0x02, 0x05})
	require.ErrorIs(t, err, ErrMalformed)

	_, err = Parse([]byte{0x02, 0x01, 0x00, 0x00})
	require.ErrorIs(t, err, ErrTrailingData)

	data := []byte{0x05, 0x00}
	for range MaxDepth + 1 {
		data = append([]byte{0x30, byte(len(data))}, data...)
	}
	_, err = Parse(data)
	require.ErrorIs(t, err, ErrTooDeep)
}

func TestClone(t *testing.T) {
	data := []byte{0x31, 0x03, 0x04, 0x01, 0xaa}
	n, err := Parse(data)
	require.NoError(t, err)

	c := n.Clone()
	data[4] = 0xbb
	require.Equal(t, []byte{0xaa}, c.Child(0).Value())
	require.Equal(t, []byte{0xbb}, n.Child(0).Value())
}

func TestParseObjectIdentifier(t *testing.T) {
	oid, err := ParseObjectIdentifier("1.2.840.10040.4.1")
	require.NoError(t, err)
	require.Equal(t, "1.2.840.10040.4.1", oid.String())

	for _, s := range []string{"", "1", "1..2", "3.1", "1.40", "1.-2", "a.b"} {
		_, err := ParseObjectIdentifier(s)
		require.Error(t, err, s)
	}
}
