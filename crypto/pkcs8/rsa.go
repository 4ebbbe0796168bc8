package pkcs8

import (
	"bytes"
	"crypto/rsa"
	"errors"
	"fmt"
	"math"
	"math/big"

	"golang.org/x/crypto/cryptobyte/asn1"
)

/*
RSAPrivateKey ::= SEQUENCE {
	version           Version,
	modulus           INTEGER,  -- n
	publicExponent    INTEGER,  -- e
	privateExponent   INTEGER,  -- d
	prime1            INTEGER,  -- p
	prime2            INTEGER,  -- q
	exponent1         INTEGER,  -- d mod (p-1)
	exponent2         INTEGER,  -- d mod (q-1)
	coefficient       INTEGER,  -- (inverse of q) mod p
	otherPrimeInfos   OtherPrimeInfos OPTIONAL
}
*/

// RSAKeyMaterial holds unsigned big-endian RSA parameters. Modulus and PrivateExponent are
// exactly as long as the modulus, the CRT values are half of that rounded up.
type RSAKeyMaterial struct {
	Modulus             []byte
	PublicExponent      []byte
	PrivateExponent     []byte
	PrimeP              []byte
	PrimeQ              []byte
	ExponentDP          []byte
	ExponentDQ          []byte
	CoefficientInverseQ []byte
}

const rsaNumFields = 8

var rsaFieldNames = [rsaNumFields]string{
	"modulus",
	"public exponent",
	"private exponent",
	"prime P",
	"prime Q",
	"exponent DP",
	"exponent DQ",
	"coefficient",
}

// ParseRSAKeyMaterial decodes PKCS#1 RSAPrivateKey and normalizes its integers to fixed widths
func ParseRSAKeyMaterial(data []byte) (*RSAKeyMaterial, error) {
	n, err := parse(data, "invalid RSAPrivateKey")
	if err != nil {
		return nil, err
	}
	if n.Tag() != asn1.SEQUENCE {
		return nil, invalid("invalid RSAPrivateKey")
	}
	if n.Len() == 0 || n.Child(0).Tag() != asn1.INTEGER {
		return nil, invalid("invalid version")
	}
	if n.Len() < 1+rsaNumFields {
		return nil, invalid("not enough key parameters")
	}

	var values [rsaNumFields][]byte
	for i := range values {
		c := n.Child(i + 1)
		v := c.Value()
		if c.Tag() != asn1.INTEGER || len(v) == 0 || v[0]&0x80 != 0 {
			return nil, invalid("invalid " + rsaFieldNames[i])
		}
		values[i] = v
	}

	modulus := stripLeadingZero(values[0])
	keySize := len(modulus)
	if modulus[0] == 0 {
		return nil, invalid("invalid modulus")
	}
	halfSize := (keySize + 1) / 2

	var m RSAKeyMaterial
	out := [rsaNumFields]*[]byte{
		&m.Modulus,
		&m.PublicExponent,
		&m.PrivateExponent,
		&m.PrimeP,
		&m.PrimeQ,
		&m.ExponentDP,
		&m.ExponentDQ,
		&m.CoefficientInverseQ,
	}
	for i, v := range values {
		switch i {
		case 0:
			v = modulus
		case 1:
			v = stripLeadingZero(v)
		default:
			size := halfSize
			if i == 2 {
				size = keySize
			}
			if v = normalize(v, size); len(v) != size {
				return nil, invalid(rsaFieldNames[i] + " out of range")
			}
		}
		*out[i] = bytes.Clone(v)
	}
	return &m, nil
}

// PrivateKey builds a validated crypto/rsa key. The stored CRT values must match the ones derived from P and Q.
func (m *RSAKeyMaterial) PrivateKey() (*rsa.PrivateKey, error) {
	e := new(big.Int).SetBytes(m.PublicExponent)
	if !e.IsInt64() || e.Int64() > math.MaxInt32 {
		return nil, errors.New("pkcs8: public exponent out of range")
	}
	key := rsa.PrivateKey{
		PublicKey: rsa.PublicKey{
			N: new(big.Int).SetBytes(m.Modulus),
			E: int(e.Int64()),
		},
		D: new(big.Int).SetBytes(m.PrivateExponent),
		Primes: []*big.Int{
			new(big.Int).SetBytes(m.PrimeP),
			new(big.Int).SetBytes(m.PrimeQ),
		},
	}
	if err := key.Validate(); err != nil {
		return nil, fmt.Errorf("pkcs8: %w", err)
	}
	key.Precompute()

	if key.Precomputed.Dp.Cmp(new(big.Int).SetBytes(m.ExponentDP)) != 0 ||
		key.Precomputed.Dq.Cmp(new(big.Int).SetBytes(m.ExponentDQ)) != 0 ||
		key.Precomputed.Qinv.Cmp(new(big.Int).SetBytes(m.CoefficientInverseQ)) != 0 {
		return nil, errors.New("pkcs8: inconsistent CRT parameters")
	}
	return &key, nil
}
