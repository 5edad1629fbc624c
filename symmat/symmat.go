// Package symmat provides a memory-compact container for symmetric edge
// data over n nodes: the lower triangle of an n×n matrix, diagonal
// included, flattened row-major into a single slice.
//
// Sym[T] is generic over the cell type because the solver stores three
// differently-typed matrices of identical shape: integer distances, scaled
// fixed-point distances, and per-edge search states.
//
// Design:
//   - Symmetric storage halves memory versus a dense mirror.
//   - Accessors are direct slice reads with no error return: the container
//     is an internal algorithmic store on trusted input, and its hot-loop
//     callers cannot afford a bounds-check-plus-error path per access.
//     Constructors validate shape and return sentinel errors.
//   - GetRowBigger/SetRowBigger elide the endpoint-swap branch for callers
//     that can assert r ≥ c structurally (Prim's inner scan).
//   - Dense() materialises an n×n row-major mirror for loops that sweep
//     all neighbors of a fixed row.
package symmat

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDimension indicates a non-positive matrix dimension.
var ErrInvalidDimension = errors.New("symmat: dimension must be > 0")

// ErrLengthMismatch indicates raw data whose length is not dim(dim+1)/2.
var ErrLengthMismatch = errors.New("symmat: data length does not match dimension")

// ErrRestrictTooLarge indicates RestrictToFirstN(k) with k > Dim().
var ErrRestrictTooLarge = errors.New("symmat: restriction exceeds dimension")

// Sym is a row-major lower-triangular store for symmetric edge data.
// The backing slice always has length dim(dim+1)/2. Diagonal cells exist
// but are semantically zero-valued; the algorithms never query (v, v).
type Sym[T any] struct {
	data []T
	dim  int
}

// New allocates a dim-node store with every cell set to fill.
//
// Complexity: O(dim²) time and memory.
func New[T any](dim int, fill T) (*Sym[T], error) {
	if dim <= 0 {
		return nil, ErrInvalidDimension
	}

	data := make([]T, TriLen(dim))
	var i int
	for i = range data {
		data[i] = fill
	}

	return &Sym[T]{data: data, dim: dim}, nil
}

// NewFromRaw wraps an existing flat lower-triangular slice.
// The slice is adopted, not copied.
func NewFromRaw[T any](data []T, dim int) (*Sym[T], error) {
	if dim <= 0 {
		return nil, ErrInvalidDimension
	}
	if len(data) != TriLen(dim) {
		return nil, ErrLengthMismatch
	}

	return &Sym[T]{data: data, dim: dim}, nil
}

// NewFromFunc materialises f(r, c) for every r ≥ c ≥ 0 sequentially.
// See NewFromFuncParallel for the chunked multi-worker variant.
//
// Complexity: O(dim²) evaluations of f.
func NewFromFunc[T any](dim int, f func(r, c int) T) (*Sym[T], error) {
	if dim <= 0 {
		return nil, ErrInvalidDimension
	}

	data := make([]T, TriLen(dim))
	var (
		r, c int
		i    int
	)
	for r = 0; r < dim; r++ {
		for c = 0; c <= r; c++ {
			data[i] = f(r, c)
			i++
		}
	}

	return &Sym[T]{data: data, dim: dim}, nil
}

// Dim returns the number of nodes.
func (s *Sym[T]) Dim() int { return s.dim }

// Raw returns the backing flat slice (length dim(dim+1)/2). Callers must
// not resize it; mutating cells through it is allowed and equivalent to Set.
func (s *Sym[T]) Raw() []T { return s.data }

// Get returns the stored value for the unordered pair {u, v}.
// Endpoint order is irrelevant; the swap happens internally.
func (s *Sym[T]) Get(u, v int) T {
	return s.data[Index(u, v)]
}

// GetRowBigger returns the value at (r, c) assuming r ≥ c.
// Returns a wrong cell if the precondition is violated.
func (s *Sym[T]) GetRowBigger(r, c int) T {
	return s.data[IndexRowBigger(r, c)]
}

// Set stores x for the unordered pair {u, v}.
func (s *Sym[T]) Set(u, v int, x T) {
	s.data[Index(u, v)] = x
}

// SetRowBigger stores x at (r, c) assuming r ≥ c.
// Writes a wrong cell if the precondition is violated.
func (s *Sym[T]) SetRowBigger(r, c int, x T) {
	s.data[IndexRowBigger(r, c)] = x
}

// Clone returns a deep copy; per-branch search state is cloned exactly once
// per spawned worker.
//
// Complexity: O(dim²) time and memory.
func (s *Sym[T]) Clone() *Sym[T] {
	data := make([]T, len(s.data))
	copy(data, s.data)

	return &Sym[T]{data: data, dim: s.dim}
}

// Dense materialises the full n×n row-major mirror by duplicating each
// off-diagonal entry. Row sweeps over the mirror are cache-friendly where
// triangular access would alternate strides.
//
// Complexity: O(dim²) time and memory.
func (s *Sym[T]) Dense() []T {
	var (
		n    = s.dim
		out  = make([]T, n*n)
		r, c int
		x    T
	)
	for r = 0; r < n; r++ {
		for c = 0; c <= r; c++ {
			x = s.GetRowBigger(r, c)
			out[r*n+c] = x
			out[c*n+r] = x
		}
	}

	return out
}

// View is a read-only restriction of a Sym to its first k nodes.
// It borrows the parent's prefix; no data is copied.
type View[T any] struct {
	data []T
	dim  int
}

// RestrictToFirstN returns a view over nodes 0..k-1. Requires k ≤ Dim().
func (s *Sym[T]) RestrictToFirstN(k int) (View[T], error) {
	if k <= 0 {
		return View[T]{}, ErrInvalidDimension
	}
	if k > s.dim {
		return View[T]{}, ErrRestrictTooLarge
	}

	return View[T]{data: s.data[:TriLen(k)], dim: k}, nil
}

// Dim returns the restricted dimension.
func (v View[T]) Dim() int { return v.dim }

// Get returns the stored value for the unordered pair {u, v} within the view.
func (v View[T]) Get(u, w int) T {
	return v.data[Index(u, w)]
}

// GetRowBigger returns the value at (r, c) assuming r ≥ c, within the view.
func (v View[T]) GetRowBigger(r, c int) T {
	return v.data[IndexRowBigger(r, c)]
}

// String renders the triangle row by row, space-separated. Intended for
// golden-file comparisons and debugging, not for hot paths.
func (s *Sym[T]) String() string {
	var (
		b    strings.Builder
		r, c int
	)
	for r = 0; r < s.dim; r++ {
		for c = 0; c <= r; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%v", s.GetRowBigger(r, c))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
