package pkcs8

import (
	"github.com/signatory-io/keyinfo/crypto/der"
	"golang.org/x/crypto/cryptobyte/asn1"
)

// Kind is the container type derived from the outer structure
type Kind int

const (
	Unknown Kind = iota
	PlainKey
	EncryptedKey
)

func (k Kind) String() string {
	switch k {
	case PlainKey:
		return "PrivateKeyInfo"
	case EncryptedKey:
		return "EncryptedPrivateKeyInfo"
	default:
		return "Unknown"
	}
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Classify inspects the first element of the outer SEQUENCE. A PrivateKeyInfo starts with
// its version INTEGER and an EncryptedPrivateKeyInfo with its algorithm identifier SEQUENCE.
// Well formed DER of any other shape is Unknown.
func Classify(data []byte) (Kind, error) {
	n, err := parse(data, "malformed container")
	if err != nil {
		return Unknown, err
	}
	if n.Tag() != asn1.SEQUENCE || n.Len() == 0 {
		return Unknown, nil
	}
	switch n.Child(0).Tag() {
	case asn1.INTEGER:
		return PlainKey, nil
	case asn1.SEQUENCE:
		return EncryptedKey, nil
	default:
		return Unknown, nil
	}
}

func parse(data []byte, reason string) (*der.Node, error) {
	if data == nil {
		return nil, ErrInvalidArgument
	}
	n, err := der.Parse(data)
	if err != nil {
		return nil, &EncodingError{Reason: reason, Err: err}
	}
	return n, nil
}

// parseAlgorithmIdentifier returns the algorithm OID and the optional parameters node
func parseAlgorithmIdentifier(n *der.Node) (string, *der.Node, error) {
	if n.Tag() != asn1.SEQUENCE {
		return "", nil, invalid("invalid algorithm")
	}
	if n.Len() == 0 || n.Child(0).Tag() != asn1.OBJECT_IDENTIFIER {
		return "", nil, invalid("missing algorithm OID")
	}
	oid, err := der.OID(n.Child(0))
	if err != nil {
		return "", nil, &EncodingError{Reason: "invalid algorithm OID", Err: err}
	}
	return oid, n.Child(1), nil
}
