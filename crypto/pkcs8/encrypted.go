package pkcs8

import (
	"bytes"
	"math"

	"github.com/signatory-io/keyinfo/crypto/der"
	"golang.org/x/crypto/cryptobyte/asn1"
)

/*
EncryptedPrivateKeyInfo ::= SEQUENCE {
	encryptionAlgorithm  EncryptionAlgorithmIdentifier,
	encryptedData        EncryptedData
}

PBEParameter ::= SEQUENCE {
	salt            OCTET STRING,
	iterationCount  INTEGER
}
*/

// EncryptedPrivateKeyInfo carries the encryption metadata and the ciphertext.
// Key derivation and decryption are left to the caller.
type EncryptedPrivateKeyInfo struct {
	algorithm  string
	salt       []byte
	iterations int
	hasParams  bool
	data       []byte
}

func ParseEncryptedPrivateKeyInfo(data []byte) (*EncryptedPrivateKeyInfo, error) {
	n, err := parse(data, "invalid EncryptedPrivateKeyInfo")
	if err != nil {
		return nil, err
	}
	if n.Tag() != asn1.SEQUENCE || n.Len() < 2 {
		return nil, invalid("invalid EncryptedPrivateKeyInfo")
	}

	algo, params, err := parseAlgorithmIdentifier(n.Child(0))
	if err != nil {
		return nil, err
	}
	info := EncryptedPrivateKeyInfo{algorithm: algo}

	if params != nil {
		if params.Tag() != asn1.SEQUENCE {
			return nil, invalid("invalid algorithm parameters")
		}
		salt := params.Child(0)
		if salt == nil || salt.Tag() != asn1.OCTET_STRING {
			return nil, invalid("invalid salt")
		}
		count, err := der.Int(params.Child(1))
		if err != nil {
			return nil, &EncodingError{Reason: "invalid iteration count", Err: err}
		}
		if count < 0 || count > math.MaxInt32 {
			return nil, invalid("invalid iteration count")
		}
		info.salt = bytes.Clone(salt.Value())
		info.iterations = int(count)
		info.hasParams = true
	}

	encData := n.Child(1)
	if encData.Tag() != asn1.OCTET_STRING {
		return nil, invalid("invalid EncryptedData")
	}
	info.data = bytes.Clone(encData.Value())
	return &info, nil
}

// Algorithm returns the dotted encryption algorithm OID
func (e *EncryptedPrivateKeyInfo) Algorithm() string { return e.algorithm }

// HasParameters reports whether salt and iteration count are present
func (e *EncryptedPrivateKeyInfo) HasParameters() bool { return e.hasParams }

// Salt returns nil if the parameters are absent
func (e *EncryptedPrivateKeyInfo) Salt() []byte { return bytes.Clone(e.salt) }

// IterationCount returns 0 if the parameters are absent
func (e *EncryptedPrivateKeyInfo) IterationCount() int { return e.iterations }

func (e *EncryptedPrivateKeyInfo) EncryptedData() []byte { return bytes.Clone(e.data) }
