// Package adfgvx implements the ADFGVX field cipher: substitution through a
// fixed 6x6 Polybius square labelled A, D, F, G, V and X, followed by a keyed
// columnar transposition.
//
// The cipher is historical and offers no real secrecy.
package adfgvx

import "bytes"

// Cipher is a validated key together with its column read-out order. A Cipher
// is immutable and safe for concurrent use.
type Cipher struct {
	key    string
	order  []int
	square *Square
}

// New returns a Cipher for key. It returns ErrInvalidKey if the key is empty
// or longer than MaxKeyLength.
func New(key string) (*Cipher, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	return &Cipher{
		key:    key,
		order:  AlphabeticalOrder(key),
		square: DefaultSquare,
	}, nil
}

// Key returns the transposition key.
func (c *Cipher) Key() string {
	return c.key
}

// Order returns a copy of the column read-out order.
func (c *Cipher) Order() []int {
	order := make([]int, len(c.order))
	copy(order, c.order)
	return order
}

// Encode enciphers plaintext with key. See Cipher.Encode.
func Encode(key, plaintext string) (string, error) {
	c, err := New(key)
	if err != nil {
		return "", err
	}
	return c.Encode(plaintext)
}

// Decode deciphers stream with key. See Cipher.Decode.
func Decode(key, stream string) (string, error) {
	c, err := New(key)
	if err != nil {
		return "", err
	}
	return c.Decode(stream)
}

// Columns holds transposed cipher columns in the order they are read out.
type Columns [][]byte

// Len returns the total number of symbols across all columns.
func (cols Columns) Len() int {
	n := 0
	for _, col := range cols {
		n += len(col)
	}
	return n
}

// String returns the flat cipher stream.
func (cols Columns) String() string {
	return string(bytes.Join(cols, nil))
}

// ValidStream reports whether stream is made only of ADFGVX symbols and has
// an even length.
func ValidStream(stream string) bool {
	if len(stream)%2 != 0 {
		return false
	}
	for i := 0; i < len(stream); i++ {
		if !IsSymbol(stream[i]) {
			return false
		}
	}
	return true
}
