// Copyright 2026 The mlio Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package mat

import (
	"fmt"
	"sort"
)

// Sparse is a compressed-sparse-column matrix of float64 values.
//
// Entries within a column are ordered by row index. colPtr has length cols+1;
// column j occupies values[colPtr[j]:colPtr[j+1]].
type Sparse struct {
	rows, cols int
	values     []float64
	rowIdx     []int
	colPtr     []int
}

// NewSparse creates an empty rows×cols sparse matrix.
func NewSparse(rows, cols int) *Sparse {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("mat: negative dimension %dx%d", rows, cols))
	}
	return &Sparse{
		rows:   rows,
		cols:   cols,
		colPtr: make([]int, cols+1),
	}
}

// NewSparseCOO builds a sparse matrix from coordinate triples. Duplicate
// locations are summed. Explicit zeros are dropped.
func NewSparseCOO(rows, cols int, ri, ci []int, vals []float64) (*Sparse, error) {
	if len(ri) != len(ci) || len(ri) != len(vals) {
		return nil, fmt.Errorf("coordinate slices have mismatched lengths %d/%d/%d", len(ri), len(ci), len(vals))
	}
	type entry struct {
		r, c int
		v    float64
	}
	entries := make([]entry, 0, len(vals))
	for k := range vals {
		if ri[k] < 0 || ri[k] >= rows || ci[k] < 0 || ci[k] >= cols {
			return nil, fmt.Errorf("coordinate (%d,%d) out of bounds for %dx%d matrix", ri[k], ci[k], rows, cols)
		}
		entries = append(entries, entry{ri[k], ci[k], vals[k]})
	}
	sort.Slice(entries, func(a, b int) bool {
		if entries[a].c != entries[b].c {
			return entries[a].c < entries[b].c
		}
		return entries[a].r < entries[b].r
	})

	merged := entries[:0]
	for _, e := range entries {
		if n := len(merged); n > 0 && merged[n-1].r == e.r && merged[n-1].c == e.c {
			merged[n-1].v += e.v
			continue
		}
		merged = append(merged, e)
	}

	s := NewSparse(rows, cols)
	counts := make([]int, cols)
	for _, e := range merged {
		if e.v == 0 {
			continue
		}
		s.values = append(s.values, e.v)
		s.rowIdx = append(s.rowIdx, e.r)
		counts[e.c]++
	}
	for j := 0; j < cols; j++ {
		s.colPtr[j+1] = s.colPtr[j] + counts[j]
	}
	return s, nil
}

// Rows returns the number of rows.
func (s *Sparse) Rows() int { return s.rows }

// Cols returns the number of columns.
func (s *Sparse) Cols() int { return s.cols }

// NNZ returns the number of stored nonzero entries.
func (s *Sparse) NNZ() int { return len(s.values) }

// At returns the element at row i, column j.
func (s *Sparse) At(i, j int) float64 {
	if i < 0 || i >= s.rows || j < 0 || j >= s.cols {
		panic(fmt.Sprintf("mat: index (%d,%d) out of bounds for %dx%d matrix", i, j, s.rows, s.cols))
	}
	lo, hi := s.colPtr[j], s.colPtr[j+1]
	k := lo + sort.SearchInts(s.rowIdx[lo:hi], i)
	if k < hi && s.rowIdx[k] == i {
		return s.values[k]
	}
	return 0
}

// Each calls fn for every stored entry in column-major order.
func (s *Sparse) Each(fn func(i, j int, v float64)) {
	for j := 0; j < s.cols; j++ {
		for k := s.colPtr[j]; k < s.colPtr[j+1]; k++ {
			fn(s.rowIdx[k], j, s.values[k])
		}
	}
}

// T returns the transpose as a new matrix.
func (s *Sparse) T() *Sparse {
	ri := make([]int, 0, s.NNZ())
	ci := make([]int, 0, s.NNZ())
	vals := make([]float64, 0, s.NNZ())
	s.Each(func(i, j int, v float64) {
		ri = append(ri, j)
		ci = append(ci, i)
		vals = append(vals, v)
	})
	t, err := NewSparseCOO(s.cols, s.rows, ri, ci, vals)
	if err != nil {
		// Entries came from a valid matrix; out-of-bounds is impossible.
		panic(err)
	}
	return t
}

// Dense expands the matrix to dense form.
func (s *Sparse) Dense() *Dense {
	d := NewDense(s.rows, s.cols)
	s.Each(func(i, j int, v float64) { d.Set(i, j, v) })
	return d
}

// Equal reports whether s and other have identical dimensions and entries.
func (s *Sparse) Equal(other *Sparse) bool {
	if other == nil || s.rows != other.rows || s.cols != other.cols || s.NNZ() != other.NNZ() {
		return false
	}
	for k := range s.values {
		if s.values[k] != other.values[k] || s.rowIdx[k] != other.rowIdx[k] {
			return false
		}
	}
	for j := range s.colPtr {
		if s.colPtr[j] != other.colPtr[j] {
			return false
		}
	}
	return true
}

// String returns a compact description for diagnostics.
func (s *Sparse) String() string {
	return fmt.Sprintf("Sparse(%dx%d, nnz=%d)", s.rows, s.cols, s.NNZ())
}
