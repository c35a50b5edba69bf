package adfgvx

import "github.com/pkg/errors"

// Encode substitutes every plaintext byte found in the square with its row
// and column symbols, deals the symbols round-robin into one column per key
// byte and returns the columns concatenated in alphabetical key order. Bytes
// outside the square are dropped. The result is empty iff nothing mapped.
func (c *Cipher) Encode(plaintext string) (string, error) {
	cols, err := c.EncodeColumns(plaintext)
	if err != nil {
		return "", err
	}
	return cols.String(), nil
}

// EncodeColumns is like Encode but returns the transposed columns instead of
// the joined stream.
func (c *Cipher) EncodeColumns(plaintext string) (Columns, error) {
	if len(plaintext) > MaxMessageLength {
		return nil, errors.Wrapf(ErrMessageTooLong, "message length %d exceeds %d",
			len(plaintext), MaxMessageLength)
	}
	cols := c.substitute(plaintext)
	out := make(Columns, len(cols))
	for i, idx := range c.order {
		out[i] = cols[idx]
	}
	return out, nil
}

// substitute returns the symbol columns in original key order.
func (c *Cipher) substitute(plaintext string) Columns {
	k := len(c.key)
	capacity := (2*len(plaintext) + k - 1) / k
	cols := make(Columns, k)
	for i := range cols {
		cols[i] = make([]byte, 0, capacity)
	}
	n := 0
	push := func(sym byte) {
		cols[n%k] = append(cols[n%k], sym)
		n++
	}
	for i := 0; i < len(plaintext); i++ {
		row, col, ok := c.square.SymbolsFor(plaintext[i])
		if !ok {
			continue
		}
		push(row)
		push(col)
	}
	return cols
}
