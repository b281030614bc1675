package lowmc

import "github.com/bits-and-blooms/bitset"

// Matrix is a dense n*m binary matrix over GF(2), stored one bitset.BitSet
// per row. Column j of row i corresponds directly to state/key bit index
// j under this package's big-endian bit-index convention, so there is no
// separate translation layer between a Matrix and the state it multiplies.
type Matrix struct {
	rows []*bitset.BitSet
	cols int
}

// NewMatrix allocates an n*m zero matrix.
func NewMatrix(n, m int) *Matrix {
	rows := make([]*bitset.BitSet, n)
	for i := range rows {
		rows[i] = bitset.New(uint(m))
	}
	return &Matrix{rows: rows, cols: m}
}

// Set assigns bit (i, j).
func (m *Matrix) Set(i, j int, bit bool) {
	m.rows[i].SetTo(uint(j), bit)
}

// Rows reports the number of rows.
func (m *Matrix) Rows() int {
	return len(m.rows)
}

// Cols reports the number of columns.
func (m *Matrix) Cols() int {
	return m.cols
}

// Rank computes the matrix's rank over GF(2) by forward elimination on a
// scratch copy: for each column, promote the first row at or below it
// with a 1 in that column to the pivot position and clear that column out
// of every row below. A column with no available pivot ends the scan
// early; the rank is that column's index.
func (m *Matrix) Rank() int {
	n := len(m.rows)
	if n == 0 {
		return 0
	}
	scratch := make([]*bitset.BitSet, n)
	for i, row := range m.rows {
		scratch[i] = row.Clone()
	}

	for c := 0; c < m.cols; c++ {
		if c > n-1 {
			return n
		}
		r := c
		for !scratch[r].Test(uint(c)) {
			r++
			if r >= n {
				return c
			}
		}
		scratch[c], scratch[r] = scratch[r], scratch[c]
		for i := c + 1; i < n; i++ {
			if scratch[i].Test(uint(c)) {
				scratch[i].InPlaceSymmetricDifference(scratch[c])
			}
		}
	}
	return m.cols
}

// Invert computes the inverse of a square, full-rank GF(2) matrix by
// Gauss-Jordan elimination: a downward pass puts the augmented [A|I]
// pair into row-echelon form via partial pivoting, and an
// upward pass clears every entry above each pivot. The caller is
// responsible for ensuring m is square and full rank; Invert does not
// re-check rank, matching the constant generator's guarantee that every
// linear layer it instantiates already passed a rank test.
func (m *Matrix) Invert() *Matrix {
	n := len(m.rows)
	a := make([]*bitset.BitSet, n)
	inv := make([]*bitset.BitSet, n)
	for i := 0; i < n; i++ {
		a[i] = m.rows[i].Clone()
		inv[i] = bitset.New(uint(n))
		inv[i].Set(uint(i))
	}

	row := 0
	for c := 0; c < n; c++ {
		if !a[row].Test(uint(c)) {
			r := row + 1
			for r < n && !a[r].Test(uint(c)) {
				r++
			}
			if r >= n {
				continue
			}
			a[row], a[r] = a[r], a[row]
			inv[row], inv[r] = inv[r], inv[row]
		}
		for i := row + 1; i < n; i++ {
			if a[i].Test(uint(c)) {
				a[i].InPlaceSymmetricDifference(a[row])
				inv[i].InPlaceSymmetricDifference(inv[row])
			}
		}
		row++
	}

	for c := n - 1; c >= 0; c-- {
		for r := 0; r < c; r++ {
			if a[r].Test(uint(c)) {
				a[r].InPlaceSymmetricDifference(a[c])
				inv[r].InPlaceSymmetricDifference(inv[c])
			}
		}
	}

	return &Matrix{rows: inv, cols: n}
}

// MultiplyVector computes M*state over GF(2), treating state as a column
// vector: output bit i is the parity of row i ANDed with state.
// IntersectionCardinality does the AND+popcount without materializing
// the intersection as its own bitset.
func (m *Matrix) MultiplyVector(state *bitset.BitSet) *bitset.BitSet {
	result := bitset.New(uint(len(m.rows)))
	for i, row := range m.rows {
		if row.IntersectionCardinality(state)%2 == 1 {
			result.Set(uint(i))
		}
	}
	return result
}
