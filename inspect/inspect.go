// Package inspect summarizes PKCS#8 containers for humans and tooling
package inspect

import (
	"bytes"
	"crypto"
	"crypto/dsa"
	"crypto/rsa"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"
	"slices"

	"github.com/signatory-io/keyinfo/crypto/der"
	"github.com/signatory-io/keyinfo/crypto/oiddb"
	"github.com/signatory-io/keyinfo/crypto/pkcs8"
	"github.com/signatory-io/keyinfo/crypto/pkix"
	"github.com/signatory-io/keyinfo/logger"
	"golang.org/x/crypto/blake2b"
)

const (
	pemPrivateKey          = "PRIVATE KEY"
	pemEncryptedPrivateKey = "ENCRYPTED PRIVATE KEY"
	pemPublicKey           = "PUBLIC KEY"
)

// HexBytes is rendered as hex in text formats and as a byte string in CBOR
type HexBytes []byte

func (h HexBytes) MarshalText() ([]byte, error) {
	out := make([]byte, hex.EncodedLen(len(h)))
	hex.Encode(out, h)
	return out, nil
}

var ErrPublicKeyMismatch = errors.New("inspect: public key doesn't match the private key")

type Report struct {
	Kind        pkcs8.Kind       `json:"kind" yaml:"kind" cbor:"1,keyasint"`
	Fingerprint HexBytes         `json:"fingerprint,omitempty" yaml:"fingerprint,omitempty" cbor:"2,keyasint,omitempty"`
	Plain       *PlainReport     `json:"private_key_info,omitempty" yaml:"private_key_info,omitempty" cbor:"3,keyasint,omitempty"`
	Encrypted   *EncryptedReport `json:"encrypted_private_key_info,omitempty" yaml:"encrypted_private_key_info,omitempty" cbor:"4,keyasint,omitempty"`
}

type PlainReport struct {
	Version    int        `json:"version" yaml:"version" cbor:"1,keyasint"`
	Algorithm  string     `json:"algorithm" yaml:"algorithm" cbor:"2,keyasint"`
	Parameters HexBytes   `json:"parameters,omitempty" yaml:"parameters,omitempty" cbor:"3,keyasint,omitempty"`
	Attributes int        `json:"attributes" yaml:"attributes" cbor:"4,keyasint"`
	RSA        *RSAReport `json:"rsa,omitempty" yaml:"rsa,omitempty" cbor:"5,keyasint,omitempty"`
	DSA        *DSAReport `json:"dsa,omitempty" yaml:"dsa,omitempty" cbor:"6,keyasint,omitempty"`
}

type RSAReport struct {
	Bits                int      `json:"bits" yaml:"bits" cbor:"1,keyasint"`
	Modulus             HexBytes `json:"modulus" yaml:"modulus" cbor:"2,keyasint"`
	PublicExponent      HexBytes `json:"public_exponent" yaml:"public_exponent" cbor:"3,keyasint"`
	PrivateExponent     HexBytes `json:"private_exponent,omitempty" yaml:"private_exponent,omitempty" cbor:"4,keyasint,omitempty"`
	PrimeP              HexBytes `json:"prime_p,omitempty" yaml:"prime_p,omitempty" cbor:"5,keyasint,omitempty"`
	PrimeQ              HexBytes `json:"prime_q,omitempty" yaml:"prime_q,omitempty" cbor:"6,keyasint,omitempty"`
	ExponentDP          HexBytes `json:"exponent_dp,omitempty" yaml:"exponent_dp,omitempty" cbor:"7,keyasint,omitempty"`
	ExponentDQ          HexBytes `json:"exponent_dq,omitempty" yaml:"exponent_dq,omitempty" cbor:"8,keyasint,omitempty"`
	CoefficientInverseQ HexBytes `json:"coefficient,omitempty" yaml:"coefficient,omitempty" cbor:"9,keyasint,omitempty"`
}

type DSAReport struct {
	P HexBytes `json:"p,omitempty" yaml:"p,omitempty" cbor:"1,keyasint,omitempty"`
	Q HexBytes `json:"q,omitempty" yaml:"q,omitempty" cbor:"2,keyasint,omitempty"`
	G HexBytes `json:"g,omitempty" yaml:"g,omitempty" cbor:"3,keyasint,omitempty"`
	Y HexBytes `json:"y,omitempty" yaml:"y,omitempty" cbor:"4,keyasint,omitempty"`
	X HexBytes `json:"x,omitempty" yaml:"x,omitempty" cbor:"5,keyasint,omitempty"`
}

type EncryptedReport struct {
	Algorithm     string   `json:"algorithm" yaml:"algorithm" cbor:"1,keyasint"`
	Salt          HexBytes `json:"salt,omitempty" yaml:"salt,omitempty" cbor:"2,keyasint,omitempty"`
	Iterations    int      `json:"iterations,omitempty" yaml:"iterations,omitempty" cbor:"3,keyasint,omitempty"`
	EncryptedSize int      `json:"encrypted_size" yaml:"encrypted_size" cbor:"4,keyasint"`
}

type Options struct {
	// RevealPrivate includes private values in the report
	RevealPrivate bool
	// PublicKey is an optional DER SubjectPublicKeyInfo of the same key. It supplies
	// DSA domain parameters missing from the container and is checked against the private key.
	PublicKey []byte
	Logger    logger.Logger
}

// DecodeInput returns DER contents of a PKCS#8 PEM block or data itself if it's not PEM encoded
func DecodeInput(data []byte) ([]byte, error) {
	return decodePEM(data, "PKCS#8", pemPrivateKey, pemEncryptedPrivateKey)
}

// DecodePublicKey returns DER contents of a PUBLIC KEY PEM block or data itself if it's not PEM encoded
func DecodePublicKey(data []byte) ([]byte, error) {
	return decodePEM(data, "public key", pemPublicKey)
}

func decodePEM(data []byte, what string, types ...string) ([]byte, error) {
	if !bytes.Contains(data, []byte("-----BEGIN ")) {
		return data, nil
	}
	rest := data
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			return nil, fmt.Errorf("inspect: no %s PEM block found", what)
		}
		if slices.Contains(types, block.Type) {
			return block.Bytes, nil
		}
	}
}

// Inspect classifies and decodes data. Unknown containers produce a report of Unknown kind.
func Inspect(data []byte, opts *Options) (*Report, error) {
	if opts == nil {
		opts = &Options{}
	}
	body, err := DecodeInput(data)
	if err != nil {
		return nil, err
	}
	kind, err := pkcs8.Classify(body)
	if err != nil {
		return nil, err
	}
	l := opts.Logger
	if l != nil {
		l = l.With("kind", kind)
		l.Debugf("Classified %d octets", len(body))
	}

	report := Report{Kind: kind}
	switch kind {
	case pkcs8.PlainKey:
		err = report.inspectPlain(body, opts, l)
	case pkcs8.EncryptedKey:
		err = report.inspectEncrypted(body, l)
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *Report) inspectPlain(data []byte, opts *Options, l logger.Logger) error {
	info, err := pkcs8.ParsePrivateKeyInfo(data)
	if err != nil {
		return err
	}
	plain := PlainReport{
		Version:    info.Version(),
		Algorithm:  info.Algorithm(),
		Parameters: info.AlgorithmParameters(),
		Attributes: info.NumAttributes(),
	}
	r.Plain = &plain

	material, err := pkcs8.ParseKeyMaterial(info)
	if errors.Is(err, pkcs8.ErrUnsupportedAlgorithm) {
		if l != nil {
			l.Infof("Key material of algorithm %s is not decoded", info.Algorithm())
		}
		return nil
	} else if err != nil {
		return err
	}

	var public crypto.PublicKey
	if opts.PublicKey != nil {
		if public, err = pkix.ParsePublicKey(opts.PublicKey); err != nil {
			return err
		}
	}

	switch m := material.(type) {
	case *pkcs8.RSAKeyMaterial:
		if public != nil {
			pub, ok := public.(*rsa.PublicKey)
			if !ok || !bytes.Equal(pub.N.Bytes(), m.Modulus) {
				return ErrPublicKeyMismatch
			}
		}
		plain.RSA = rsaReport(m, opts.RevealPrivate)
		r.Fingerprint = Fingerprint(m.Modulus)

	case *pkcs8.DSAPrivateScalar:
		dsaReport := DSAReport{}
		if opts.RevealPrivate {
			dsaReport.X = m.X
		}
		plain.DSA = &dsaReport

		var (
			params *dsa.Parameters
			pub, _ = public.(*dsa.PublicKey)
		)
		switch {
		case public != nil && pub == nil:
			return ErrPublicKeyMismatch
		case plain.Parameters != nil:
			if params, err = pkcs8.ParseDSAParameters(plain.Parameters); err != nil {
				return err
			}
		case pub != nil:
			params = &pub.Parameters
		default:
			if l != nil {
				l.Warn("DSA domain parameters are not present in the container")
			}
			return nil
		}

		key, err := m.PrivateKey(params, nil)
		if err != nil {
			return err
		}
		if pub != nil && (pub.Y.Cmp(key.Y) != 0 || pub.P.Cmp(params.P) != 0) {
			return ErrPublicKeyMismatch
		}
		dsaReport.P, dsaReport.Q, dsaReport.G = params.P.Bytes(), params.Q.Bytes(), params.G.Bytes()
		dsaReport.Y = key.Y.Bytes()
		r.Fingerprint = Fingerprint(dsaReport.Y)
	}
	return nil
}

func rsaReport(m *pkcs8.RSAKeyMaterial, reveal bool) *RSAReport {
	out := RSAReport{
		Bits:           new(big.Int).SetBytes(m.Modulus).BitLen(),
		Modulus:        m.Modulus,
		PublicExponent: m.PublicExponent,
	}
	if reveal {
		out.PrivateExponent = m.PrivateExponent
		out.PrimeP = m.PrimeP
		out.PrimeQ = m.PrimeQ
		out.ExponentDP = m.ExponentDP
		out.ExponentDQ = m.ExponentDQ
		out.CoefficientInverseQ = m.CoefficientInverseQ
	}
	return &out
}

func (r *Report) inspectEncrypted(data []byte, l logger.Logger) error {
	info, err := pkcs8.ParseEncryptedPrivateKeyInfo(data)
	if err != nil {
		return err
	}
	if l != nil && info.HasParameters() {
		if oid, err := der.ParseObjectIdentifier(info.Algorithm()); err == nil && !oiddb.IsPBES1(oid) {
			l.Warnf("Algorithm %s is not a PKCS#5 v1.5 or PKCS#12 scheme, salt and iteration count may be meaningless", info.Algorithm())
		}
	}
	r.Encrypted = &EncryptedReport{
		Algorithm:     info.Algorithm(),
		Salt:          info.Salt(),
		Iterations:    info.IterationCount(),
		EncryptedSize: len(info.EncryptedData()),
	}
	return nil
}

// Fingerprint is BLAKE2b-256 of the public component
func Fingerprint(public []byte) HexBytes {
	sum := blake2b.Sum256(public)
	return sum[:]
}
