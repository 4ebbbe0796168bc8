package pkix

import (
	"crypto"
	"crypto/dsa"
	"crypto/rsa"
	encoding_asn1 "encoding/asn1"
	"errors"
	"fmt"
	"math/big"

	"github.com/signatory-io/keyinfo/crypto/oiddb"
	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

// ParsePublicKey decodes an RSA or DSA SubjectPublicKeyInfo
func ParsePublicKey(der []byte) (pub crypto.PublicKey, err error) {
	src := cryptobyte.String(der)
	var (
		obj, algo cryptobyte.String
		algoOid   encoding_asn1.ObjectIdentifier
		keyData   encoding_asn1.BitString
	)

	if !src.ReadASN1(&obj, asn1.SEQUENCE) ||
		!obj.ReadASN1(&algo, asn1.SEQUENCE) ||
		!algo.ReadASN1ObjectIdentifier(&algoOid) ||
		!obj.ReadASN1BitString(&keyData) ||
		!src.Empty() {
		return nil, errors.New("pkix: failed to parse PKIX public key")
	}
	if keyData.BitLength%8 != 0 {
		return nil, errors.New("pkix: invalid public key bit string")
	}
	keyBytes := cryptobyte.String(keyData.Bytes)

	switch {
	case algoOid.Equal(oiddb.PublicKeyRSA):
		var (
			seq cryptobyte.String
			n   = new(big.Int)
			e   int
		)
		if !keyBytes.ReadASN1(&seq, asn1.SEQUENCE) ||
			!seq.ReadASN1Integer(n) ||
			!seq.ReadASN1Integer(&e) {
			return nil, errors.New("pkix: failed to parse RSA public key")
		}
		if n.Sign() <= 0 || e <= 0 {
			return nil, errors.New("pkix: invalid RSA public key")
		}
		return &rsa.PublicKey{N: n, E: e}, nil

	case algoOid.Equal(oiddb.PublicKeyDSA):
		var (
			params  cryptobyte.String
			p, q, g = new(big.Int), new(big.Int), new(big.Int)
			y       = new(big.Int)
		)
		if !algo.ReadASN1(&params, asn1.SEQUENCE) ||
			!params.ReadASN1Integer(p) ||
			!params.ReadASN1Integer(q) ||
			!params.ReadASN1Integer(g) ||
			!keyBytes.ReadASN1Integer(y) {
			return nil, errors.New("pkix: failed to parse DSA public key")
		}
		if p.Sign() <= 0 || q.Sign() <= 0 || g.Sign() <= 0 || y.Sign() <= 0 {
			return nil, errors.New("pkix: invalid DSA public key")
		}
		return &dsa.PublicKey{
			Parameters: dsa.Parameters{P: p, Q: q, G: g},
			Y:          y,
		}, nil

	default:
		return nil, fmt.Errorf("pkix: unsupported algorithm: %v", algoOid)
	}
}
