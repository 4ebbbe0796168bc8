package pkcs8

import (
	"bytes"
	"fmt"
	"iter"
	"slices"

	"github.com/signatory-io/keyinfo/crypto/der"
	"golang.org/x/crypto/cryptobyte/asn1"
)

/*
PrivateKeyInfo ::= SEQUENCE {
	version                   Version,
	privateKeyAlgorithm       PrivateKeyAlgorithmIdentifier,
	privateKey                PrivateKey,
	attributes           [0]  IMPLICIT Attributes OPTIONAL
}
*/

// PrivateKeyInfo is a decoded unencrypted PKCS#8 container. It owns all of its buffers.
type PrivateKeyInfo struct {
	version    int
	algorithm  string
	params     []byte
	keyOctets  []byte
	attributes []*der.Node
}

// ParsePrivateKeyInfo decodes a PrivateKeyInfo without interpreting the key octets
func ParsePrivateKeyInfo(data []byte) (*PrivateKeyInfo, error) {
	n, err := parse(data, "invalid PrivateKeyInfo")
	if err != nil {
		return nil, err
	}
	if n.Tag() != asn1.SEQUENCE || n.Len() < 3 {
		return nil, invalid("invalid PrivateKeyInfo")
	}

	ver := n.Child(0)
	if ver.Tag() != asn1.INTEGER || len(ver.Value()) == 0 {
		return nil, invalid("invalid version")
	}
	algo, params, err := parseAlgorithmIdentifier(n.Child(1))
	if err != nil {
		return nil, err
	}

	info := PrivateKeyInfo{
		// only version 0 is defined, wider values are truncated
		version:   int(ver.Value()[0]),
		algorithm: algo,
		keyOctets: bytes.Clone(n.Child(2).Value()),
	}
	if params != nil {
		info.params = bytes.Clone(params.Raw())
	}
	if attrs := n.Child(3); attrs != nil {
		for _, a := range attrs.Children() {
			info.attributes = append(info.attributes, a.Clone())
		}
	}
	return &info, nil
}

func (p *PrivateKeyInfo) Version() int { return p.version }

func (p *PrivateKeyInfo) SetVersion(v int) error {
	if v < 0 {
		return fmt.Errorf("%w: negative version %d", ErrInvalidArgument, v)
	}
	p.version = v
	return nil
}

// Algorithm returns the dotted private key algorithm OID
func (p *PrivateKeyInfo) Algorithm() string { return p.algorithm }

func (p *PrivateKeyInfo) SetAlgorithm(oid string) error {
	if _, err := der.ParseObjectIdentifier(oid); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	p.algorithm = oid
	return nil
}

// AlgorithmParameters returns the DER encoded algorithm parameters or nil if they are absent
func (p *PrivateKeyInfo) AlgorithmParameters() []byte { return bytes.Clone(p.params) }

func (p *PrivateKeyInfo) KeyOctets() []byte { return bytes.Clone(p.keyOctets) }

func (p *PrivateKeyInfo) SetKeyOctets(data []byte) { p.keyOctets = bytes.Clone(data) }

func (p *PrivateKeyInfo) NumAttributes() int { return len(p.attributes) }

// Attributes yields copies of the attribute nodes in insertion order
func (p *PrivateKeyInfo) Attributes() iter.Seq[*der.Node] {
	return func(yield func(*der.Node) bool) {
		for _, a := range p.attributes {
			if !yield(a.Clone()) {
				return
			}
		}
	}
}

func (p *PrivateKeyInfo) AddAttribute(attr *der.Node) error {
	if attr == nil {
		return ErrInvalidArgument
	}
	p.attributes = append(p.attributes, attr.Clone())
	return nil
}

func (p *PrivateKeyInfo) RemoveAttribute(i int) error {
	if i < 0 || i >= len(p.attributes) {
		return fmt.Errorf("%w: attribute index %d out of range", ErrInvalidArgument, i)
	}
	p.attributes = slices.Delete(p.attributes, i, i+1)
	return nil
}
