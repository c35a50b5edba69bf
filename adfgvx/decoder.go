package adfgvx

import "github.com/pkg/errors"

// Decode reverses Encode. An empty stream yields an empty plaintext.
//
// Decoding stops at the first anomaly and returns the characters produced so
// far together with an error whose cause is ErrMalformedStream. A stream with
// an odd number of symbols yields no characters at all. Output is capped at
// MaxMessageLength characters; a longer result is cut and ErrTruncated is
// returned with it.
func (c *Cipher) Decode(stream string) (string, error) {
	if len(stream) == 0 {
		return "", nil
	}
	lengths := columnLengths(len(stream), len(c.key))
	cols, filled, refillErr := refillColumns(stream, c.order, lengths)
	symbols := reassemble(cols, lengths, filled)
	if refillErr != nil {
		// Whatever precedes the first missing slot is intact; drop a dangling
		// half pair.
		symbols = symbols[:len(symbols)&^1]
	}
	plaintext, err := c.decodePairs(symbols)
	if refillErr != nil && err == nil {
		err = refillErr
	}
	return plaintext, err
}

// columnLengths returns the symbol count of each column, indexed by original
// key position. The encoder deals symbols left to right, so the first n%k
// columns in key order are the ones holding an extra symbol.
func columnLengths(n, k int) []int {
	rows, extra := n/k, n%k
	lengths := make([]int, k)
	for idx := range lengths {
		lengths[idx] = rows
		if idx < extra {
			lengths[idx]++
		}
	}
	return lengths
}

// refillColumns splits stream into columns. Columns are consumed in
// alphabetical key order and stored by original index. filled reports how many
// symbols each column actually received, which is only less than its length
// when the stream ran out.
func refillColumns(stream string, order, lengths []int) (cols Columns, filled []int, err error) {
	cols = make(Columns, len(lengths))
	filled = make([]int, len(lengths))
	pos := 0
	for _, idx := range order {
		want := lengths[idx]
		take := want
		if rem := len(stream) - pos; take > rem {
			take = rem
		}
		cols[idx] = []byte(stream[pos : pos+take])
		filled[idx] = take
		pos += take
		if take < want {
			return cols, filled, errors.Wrapf(ErrMalformedStream,
				"stream exhausted after %d symbols filling column %d", pos, idx)
		}
	}
	return cols, filled, nil
}

// reassemble reads the columns back row by row in original key order,
// stopping at the first slot that was never filled.
func reassemble(cols Columns, lengths, filled []int) []byte {
	maxLen := 0
	total := 0
	for _, l := range lengths {
		if l > maxLen {
			maxLen = l
		}
		total += l
	}
	out := make([]byte, 0, total)
	for r := 0; r < maxLen; r++ {
		for c := range cols {
			if r >= lengths[c] {
				continue
			}
			if r >= filled[c] {
				return out
			}
			out = append(out, cols[c][r])
		}
	}
	return out
}

// decodePairs maps coordinate symbol pairs back to plaintext.
func (c *Cipher) decodePairs(symbols []byte) (string, error) {
	if len(symbols)%2 != 0 {
		return "", errors.Wrapf(ErrMalformedStream, "odd symbol count %d", len(symbols))
	}
	out := make([]byte, 0, len(symbols)/2)
	for i := 0; i < len(symbols); i += 2 {
		if len(out) == MaxMessageLength {
			return string(out), errors.Wrapf(ErrTruncated,
				"%d symbols left undecoded", len(symbols)-i)
		}
		ch, ok := c.square.CharFor(symbols[i], symbols[i+1])
		if !ok {
			return string(out), errors.Wrapf(ErrMalformedStream,
				"unknown symbol pair %q at offset %d", symbols[i:i+2], i)
		}
		out = append(out, ch)
	}
	return string(out), nil
}
