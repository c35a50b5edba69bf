package adfgvx

// Symbols are the row and column labels of the substitution square, in order.
const Symbols = "ADFGVX"

var grid = [6][6]byte{
	{'A', 'B', 'C', 'D', 'E', 'F'},
	{'G', 'H', 'I', 'J', 'K', 'L'},
	{'M', 'N', 'O', 'P', 'Q', 'R'},
	{'S', 'T', 'U', 'V', 'W', 'X'},
	{'Y', 'Z', ' ', ',', '.', '1'},
	{'2', '3', '4', '5', '6', '7'},
}

// DefaultSquare is the fixed ADFGVX Polybius square. It is never modified
// after package initialization.
var DefaultSquare = newSquare(grid)

// coord is a position in the square. A zero value with ok unset marks a byte
// that is not part of the alphabet.
type coord struct {
	row, col uint8
	ok       bool
}

// Square maps plaintext bytes to coordinate symbol pairs and back.
type Square struct {
	cells  [6][6]byte
	coords [256]coord
	index  [256]int8
}

func newSquare(cells [6][6]byte) *Square {
	s := &Square{cells: cells}
	for i := range s.index {
		s.index[i] = -1
	}
	for i := 0; i < len(Symbols); i++ {
		s.index[Symbols[i]] = int8(i)
	}
	for r, row := range cells {
		for c, ch := range row {
			s.coords[ch] = coord{row: uint8(r), col: uint8(c), ok: true}
		}
	}
	return s
}

// SymbolsFor returns the row and column symbols for c. ok is false when c is
// not in the square, in which case the caller should skip it.
func (s *Square) SymbolsFor(c byte) (row, col byte, ok bool) {
	p := s.coords[c]
	if !p.ok {
		return 0, 0, false
	}
	return Symbols[p.row], Symbols[p.col], true
}

// CharFor returns the plaintext byte at the given coordinate symbols. ok is
// false when either symbol is not one of ADFGVX.
func (s *Square) CharFor(row, col byte) (byte, bool) {
	r, c := s.index[row], s.index[col]
	if r < 0 || c < 0 {
		return 0, false
	}
	return s.cells[r][c], true
}

// Contains reports whether c can be enciphered.
func (s *Square) Contains(c byte) bool {
	return s.coords[c].ok
}

// Alphabet returns the 36 plaintext characters of the square in row-major
// order.
func (s *Square) Alphabet() string {
	b := make([]byte, 0, 36)
	for _, row := range s.cells {
		b = append(b, row[:]...)
	}
	return string(b)
}

// IsSymbol reports whether c is one of the six coordinate symbols.
func IsSymbol(c byte) bool {
	return DefaultSquare.index[c] >= 0
}
