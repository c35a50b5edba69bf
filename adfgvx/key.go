package adfgvx

import (
	"sort"

	"github.com/pkg/errors"
)

const (
	// MaxKeyLength is the longest key accepted.
	MaxKeyLength = 8

	// MaxMessageLength is the longest plaintext accepted by Encode and the
	// most characters Decode will produce.
	MaxMessageLength = 2560
)

// ValidateKey returns ErrInvalidKey if key cannot be used for transposition.
func ValidateKey(key string) error {
	if len(key) == 0 {
		return errors.Wrap(ErrInvalidKey, "key is empty")
	}
	if len(key) > MaxKeyLength {
		return errors.Wrapf(ErrInvalidKey, "key length %d exceeds %d", len(key), MaxKeyLength)
	}
	return nil
}

// AlphabeticalOrder returns the column indices of key sorted by their key
// byte. Columns with equal key bytes keep their relative order, so order[i] is
// the original column read out i-th.
func AlphabeticalOrder(key string) []int {
	order := make([]int, len(key))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return key[order[i]] < key[order[j]]
	})
	return order
}
