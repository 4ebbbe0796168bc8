package pkcs8

import (
	"fmt"

	"github.com/signatory-io/keyinfo/crypto/oiddb"
)

// ParseKeyMaterial reconstructs key material according to the container's algorithm.
// It returns either *RSAKeyMaterial or *DSAPrivateScalar.
func ParseKeyMaterial(info *PrivateKeyInfo) (any, error) {
	if info == nil {
		return nil, ErrInvalidArgument
	}
	switch info.algorithm {
	case oiddb.PublicKeyRSA.String():
		m, err := ParseRSAKeyMaterial(info.keyOctets)
		if err != nil {
			return nil, err
		}
		return m, nil

	case oiddb.PublicKeyDSA.String():
		s, err := ParseDSAPrivateScalar(info.keyOctets)
		if err != nil {
			return nil, err
		}
		return s, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, info.algorithm)
	}
}
