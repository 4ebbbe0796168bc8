package pkcs8

import (
	encoding_asn1 "encoding/asn1"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

func requireInvalid(t *testing.T, err error, reason string) {
	t.Helper()
	require.ErrorIs(t, err, ErrInvalidEncoding)
	var e *EncodingError
	require.True(t, errors.As(err, &e))
	require.Equal(t, reason, e.Reason)
}

func build(f cryptobyte.BuilderContinuation) []byte {
	var b cryptobyte.Builder
	f(&b)
	return b.BytesOrPanic()
}

func rawInt(v ...byte) cryptobyte.BuilderContinuation {
	return func(b *cryptobyte.Builder) {
		b.AddASN1(asn1.INTEGER, func(b *cryptobyte.Builder) { b.AddBytes(v) })
	}
}

func sequence(items ...cryptobyte.BuilderContinuation) cryptobyte.BuilderContinuation {
	return func(b *cryptobyte.Builder) {
		b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
			for _, f := range items {
				f(b)
			}
		})
	}
}

func oid(o encoding_asn1.ObjectIdentifier) cryptobyte.BuilderContinuation {
	return func(b *cryptobyte.Builder) { b.AddASN1ObjectIdentifier(o) }
}

func octets(v []byte) cryptobyte.BuilderContinuation {
	return func(b *cryptobyte.Builder) { b.AddASN1OctetString(v) }
}

func integer(v int64) cryptobyte.BuilderContinuation {
	return func(b *cryptobyte.Builder) { b.AddASN1Int64(v) }
}

func null(b *cryptobyte.Builder) { b.AddASN1NULL() }
