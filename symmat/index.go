// Package symmat — triangular index arithmetic.
//
// The lower triangle of an n×n symmetric matrix (diagonal included) is
// flattened row-major: entry (r, c) with r ≥ c lives at r(r+1)/2 + c. The
// inverse mapping is needed by the chunked parallel builder to convert a
// flat chunk boundary back into a (row, col) starting position; it is
// computed with an *integer* square root so that chunk seams agree exactly
// with the forward formula on every platform.
package symmat

import "math/bits"

// TriLen returns the number of cells in the flattened lower triangle of an
// n×n symmetric matrix, diagonal included.
//
// Complexity: O(1).
func TriLen(dim int) int {
	return dim * (dim + 1) / 2
}

// Index computes the flat index of entry (u, v) regardless of endpoint
// order.
//
// Complexity: O(1).
func Index(u, v int) int {
	if u >= v {
		return IndexRowBigger(u, v)
	}

	return IndexRowBigger(v, u)
}

// IndexRowBigger computes the flat index of entry (r, c) assuming r ≥ c.
// The swap branch of Index is elided; the result is wrong if the
// precondition is violated (callers in hot loops assert it structurally).
//
// Complexity: O(1).
func IndexRowBigger(r, c int) int {
	return r*(r+1)/2 + c
}

// RowColFromIndex inverts the triangular flattening: for a flat index i it
// returns (row, col) with col ≥ row such that IndexRowBigger(col, row) == i.
// Note the convention: col is the triangle's major coordinate (the "r ≥ c"
// side of the forward formula), row is the minor one.
//
// Derivation: col is the largest k with k(k+1)/2 ≤ i, i.e.
// col = (⌊√(8i+1)⌋ − 1) / 2, and row = i − col(col+1)/2.
//
// Complexity: O(log i) via integer Newton iteration; no floating point.
func RowColFromIndex(i int) (row, col int) {
	col = (isqrt(uint64(8*i+1)) - 1) / 2
	row = i - col*(col+1)/2

	return row, col
}

// isqrt returns ⌊√x⌋ using Newton's method on integers.
// Deterministic and exact for the full uint64 range used here.
func isqrt(x uint64) int {
	if x < 2 {
		return int(x)
	}

	// Initial guess: a power of two at or above the root.
	var r = uint64(1) << (bits.Len64(x)/2 + 1)

	var next uint64
	for {
		next = (r + x/r) / 2
		if next >= r {
			break
		}
		r = next
	}

	return int(r)
}
