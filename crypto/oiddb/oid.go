package oiddb

import "encoding/asn1"

var (
	PublicKeyRSA = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}
	PublicKeyDSA = asn1.ObjectIdentifier{1, 2, 840, 10040, 4, 1}

	// PKCS#5 v1.5
	PBEWithMD2AndDESCBC  = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 5, 1}
	PBEWithMD5AndDESCBC  = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 5, 3}
	PBEWithMD2AndRC2CBC  = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 5, 4}
	PBEWithMD5AndRC2CBC  = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 5, 6}
	PBEWithSHA1AndDESCBC = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 5, 10}
	PBEWithSHA1AndRC2CBC = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 5, 11}
	PBES2                = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 5, 13}

	// PKCS#12
	PBEWithSHAAnd128BitRC4        = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 12, 1, 1}
	PBEWithSHAAnd3KeyTripleDESCBC = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 12, 1, 3}
	PBEWithSHAAnd40BitRC2CBC      = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 12, 1, 6}
)

// IsPBES1 reports whether oid names a password based scheme whose parameters are {salt, iterationCount}
func IsPBES1(oid asn1.ObjectIdentifier) bool {
	for _, o := range []asn1.ObjectIdentifier{
		PBEWithMD2AndDESCBC,
		PBEWithMD5AndDESCBC,
		PBEWithMD2AndRC2CBC,
		PBEWithMD5AndRC2CBC,
		PBEWithSHA1AndDESCBC,
		PBEWithSHA1AndRC2CBC,
		PBEWithSHAAnd128BitRC4,
		PBEWithSHAAnd3KeyTripleDESCBC,
		PBEWithSHAAnd40BitRC2CBC,
	} {
		if o.Equal(oid) {
			return true
		}
	}
	return false
}
