package der

import (
	encoding_asn1 "encoding/asn1"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

// OID converts an OBJECT IDENTIFIER node into its dotted form
func OID(n *Node) (string, error) {
	if n == nil || n.tag != asn1.OBJECT_IDENTIFIER {
		return "", errors.New("der: object identifier expected")
	}
	var oid encoding_asn1.ObjectIdentifier
	src := cryptobyte.String(n.raw)
	if !src.ReadASN1ObjectIdentifier(&oid) {
		return "", errors.New("der: invalid object identifier")
	}
	return oid.String(), nil
}

// Int converts an INTEGER node into int64
func Int(n *Node) (int64, error) {
	if n == nil || n.tag != asn1.INTEGER {
		return 0, errors.New("der: integer expected")
	}
	var v int64
	src := cryptobyte.String(n.raw)
	if !src.ReadASN1Integer(&v) {
		return 0, errors.New("der: integer out of range")
	}
	return v, nil
}

// ParseObjectIdentifier parses a dotted OID string
func ParseObjectIdentifier(s string) (encoding_asn1.ObjectIdentifier, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return nil, fmt.Errorf("der: invalid object identifier %q", s)
	}
	oid := make(encoding_asn1.ObjectIdentifier, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 31)
		if err != nil {
			return nil, fmt.Errorf("der: invalid object identifier %q", s)
		}
		oid[i] = int(v)
	}
	if oid[0] > 2 || (oid[0] < 2 && oid[1] >= 40) {
		return nil, fmt.Errorf("der: invalid object identifier %q", s)
	}
	return oid, nil
}
