package adfgvx

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestAlphabeticalOrder(t *testing.T) {
	testCases := []struct {
		key  string
		want []int
	}{
		{"A", []int{0}},
		{"UM", []int{1, 0}},
		{"CAB", []int{1, 2, 0}},
		{"GERMAN", []int{4, 1, 0, 3, 5, 2}},
		// Duplicates keep their original relative order.
		{"BABA", []int{1, 3, 0, 2}},
		{"AAAA", []int{0, 1, 2, 3}},
		// Case-sensitive: upper case sorts before lower case.
		{"aB", []int{1, 0}},
	}
	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			require.Equal(t, tc.want, AlphabeticalOrder(tc.key))
		})
	}
}

func TestColumnLengths(t *testing.T) {
	require.Equal(t, []int{4, 3, 3}, columnLengths(10, 3))
	require.Equal(t, []int{2, 2, 2}, columnLengths(6, 3))
	require.Equal(t, []int{1, 1, 0, 0}, columnLengths(2, 4))
	require.Equal(t, []int{7}, columnLengths(7, 1))
}

// Ensure extra symbols are credited by original column position, not by
// alphabetical rank.
func TestRefillColumnsByOriginalIndex(t *testing.T) {
	order := AlphabeticalOrder("CAB")
	lengths := columnLengths(10, 3)
	cols, filled, err := refillColumns("DDXAXFDVDF", order, lengths)
	require.NoError(t, err)
	require.Equal(t, Columns{[]byte("DVDF"), []byte("DDX"), []byte("AXF")}, cols)
	require.Equal(t, lengths, filled)
	require.Equal(t, []byte("DDAVDXDXFF"), reassemble(cols, lengths, filled))
}

func TestRefillColumnsShortStream(t *testing.T) {
	order := []int{1, 0}
	lengths := []int{3, 3}
	cols, filled, err := refillColumns("GAA", order, lengths)
	require.Equal(t, ErrMalformedStream, errors.Cause(err))
	require.Equal(t, []int{0, 3}, filled)
	require.Empty(t, cols[0])
	require.Equal(t, []byte("GAA"), cols[1])
	// Column 0 row 0 was never filled, nothing can be reassembled.
	require.Empty(t, reassemble(cols, lengths, filled))

	cols, filled, err = refillColumns("GAAAV", order, lengths)
	require.Equal(t, ErrMalformedStream, errors.Cause(err))
	require.Equal(t, []int{2, 3}, filled)
	require.Equal(t, []byte("AGVA"), reassemble(cols, lengths, filled))
}

func TestReassembleUneven(t *testing.T) {
	cols := Columns{[]byte("AB"), []byte("C"), []byte("D")}
	lengths := []int{2, 1, 1}
	require.Equal(t, []byte("ACDB"), reassemble(cols, lengths, lengths))
}
