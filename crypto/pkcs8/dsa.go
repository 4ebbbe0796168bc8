package pkcs8

import (
	"bytes"
	"crypto/dsa"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

// DSAScalarSize is the width of DSA private value carried by PKCS#8
const DSAScalarSize = 20

// DSAPrivateScalar is the private value X. PKCS#8 carries no other DSA key component;
// P, Q and G travel in the algorithm parameters or in a certificate.
type DSAPrivateScalar struct {
	X []byte
}

// ParseDSAPrivateScalar decodes the INTEGER found in the key octets of a DSA PrivateKeyInfo
func ParseDSAPrivateScalar(data []byte) (*DSAPrivateScalar, error) {
	n, err := parse(data, "invalid private key format")
	if err != nil {
		return nil, err
	}
	v := n.Value()
	if n.Tag() != asn1.INTEGER || len(v) == 0 || v[0]&0x80 != 0 {
		return nil, invalid("invalid private key format")
	}
	if v = normalize(v, DSAScalarSize); len(v) != DSAScalarSize {
		return nil, invalid("private key out of range")
	}
	return &DSAPrivateScalar{X: bytes.Clone(v)}, nil
}

// PrivateKey combines X with the domain parameters. Y is derived from X if nil.
func (s *DSAPrivateScalar) PrivateKey(params *dsa.Parameters, y *big.Int) (*dsa.PrivateKey, error) {
	if params == nil || params.P == nil || params.Q == nil || params.G == nil {
		return nil, fmt.Errorf("%w: missing domain parameters", ErrInvalidArgument)
	}
	x := new(big.Int).SetBytes(s.X)
	if x.Sign() == 0 || x.Cmp(params.Q) >= 0 {
		return nil, errors.New("pkcs8: private key out of range")
	}
	if y == nil {
		y = new(big.Int).Exp(params.G, x, params.P)
	}
	return &dsa.PrivateKey{
		PublicKey: dsa.PublicKey{
			Parameters: *params,
			Y:          y,
		},
		X: x,
	}, nil
}

/*
Dss-Parms ::= SEQUENCE {
	p  INTEGER,
	q  INTEGER,
	g  INTEGER
}
*/

// ParseDSAParameters decodes DSA domain parameters as found in the algorithm identifier
func ParseDSAParameters(data []byte) (*dsa.Parameters, error) {
	if data == nil {
		return nil, ErrInvalidArgument
	}
	var (
		src     = cryptobyte.String(data)
		obj     cryptobyte.String
		p, q, g = new(big.Int), new(big.Int), new(big.Int)
	)
	if !src.ReadASN1(&obj, asn1.SEQUENCE) ||
		!obj.ReadASN1Integer(p) ||
		!obj.ReadASN1Integer(q) ||
		!obj.ReadASN1Integer(g) ||
		!obj.Empty() || !src.Empty() {
		return nil, invalid("invalid DSA parameters")
	}
	if p.Sign() <= 0 || q.Sign() <= 0 || g.Sign() <= 0 {
		return nil, invalid("invalid DSA parameters")
	}
	return &dsa.Parameters{P: p, Q: q, G: g}, nil
}
