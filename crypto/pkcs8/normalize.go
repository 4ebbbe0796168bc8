package pkcs8

// stripLeadingZero removes the sign octet DER prepends to a non-negative integer
// whose most significant bit is set
func stripLeadingZero(b []byte) []byte {
	if len(b) > 1 && b[0] == 0 && b[1]&0x80 != 0 {
		return b[1:]
	}
	return b
}

// normalize fits an unsigned big-endian integer into size octets.
// The result may alias b and its length may still differ from size if b doesn't fit.
func normalize(b []byte, size int) []byte {
	switch {
	case len(b) == size:
		return b
	case len(b) > size:
		return stripLeadingZero(b)
	default:
		out := make([]byte, size)
		copy(out[size-len(b):], b)
		return out
	}
}
