package pkcs8

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEncoding is matched by every *EncodingError
	ErrInvalidEncoding      = errors.New("pkcs8: invalid encoding")
	ErrInvalidArgument      = errors.New("pkcs8: invalid argument")
	ErrUnsupportedAlgorithm = errors.New("pkcs8: unsupported algorithm")
)

// EncodingError reports input which is not a valid instance of the expected structure
type EncodingError struct {
	Reason string
	Err    error
}

func (e *EncodingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pkcs8: %s: %v", e.Reason, e.Err)
	}
	return "pkcs8: " + e.Reason
}

func (e *EncodingError) Unwrap() error { return e.Err }

func (e *EncodingError) Is(target error) bool { return target == ErrInvalidEncoding }

func invalid(reason string) error { return &EncodingError{Reason: reason} }
