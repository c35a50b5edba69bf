package adfgvx

import "github.com/pkg/errors"

var (
	// ErrInvalidKey is returned when a key is empty or longer than
	// MaxKeyLength.
	ErrInvalidKey = errors.New("invalid key")

	// ErrMalformedStream is returned when a cipher stream cannot be fully
	// decoded: an odd number of symbols, a symbol pair that is not in the
	// square, or fewer symbols than the column lengths require.
	ErrMalformedStream = errors.New("malformed cipher stream")

	// ErrTruncated is returned when decoding stopped after MaxMessageLength
	// characters.
	ErrTruncated = errors.New("plaintext truncated")

	// ErrMessageTooLong is returned when a plaintext exceeds MaxMessageLength.
	ErrMessageTooLong = errors.New("message too long")
)
