// SPDX-License-Identifier: MIT
// Package: lvlath/assignment
//
// builder_matrix.go — cost-matrix builder (C2, Entry Point A).
//
// Converts a minimization cost matrix into the maximization CSR graph the
// engine expects, transposing when there are more rows than columns so the
// engine always sees |L| <= |R| (see SPEC_FULL.md §4.2).

package assignment

import "fmt"

// buildFromMatrix validates cost, converts it to a maximization CSR graph,
// and reports whether it transposed the input. Weight conversion is
// w(l,r) = M + 1 - cost[l][r], where M = max over all entries; this keeps
// every retained weight >= 1 while making the maximization engine solve the
// equivalent minimization problem.
func buildFromMatrix(cost [][]int64, opts Options) (g *csrGraph, transposed bool, err error) {
	h := len(cost)
	if h == 0 || len(cost[0]) == 0 {
		return nil, false, ErrEmptyInput
	}
	w := len(cost[0])
	for i, row := range cost {
		if len(row) != w {
			return nil, false, fmt.Errorf("assignment: row %d has length %d, want %d: %w", i, len(row), w, ErrEmptyInput)
		}
		for j, c := range row {
			if c < 0 {
				return nil, false, fmt.Errorf("assignment: cost[%d][%d]=%d: %w", i, j, c, ErrNegativeWeight)
			}
		}
	}

	transposed = h > w
	if transposed {
		cost = transposeMatrix(cost, h, w)
		h, w = w, h
	}

	var maxCost int64
	for _, row := range cost {
		for _, c := range row {
			if c > maxCost {
				maxCost = c
			}
		}
	}
	m := maxCost + 1

	k := opts.RetentionK
	if k <= 0 {
		k = w
		if h < k {
			k = h
		}
	}

	g = &csrGraph{
		u:      make([]int64, h),
		rowOff: make([]int32, h+1),
		nLeft:  h,
		nRight: w,
	}

	buf := make([]weightedEdge, w)
	for l, row := range cost {
		var rowMax int64
		for r, c := range row {
			weight := m - c
			buf[r] = weightedEdge{to: int32(r), w: weight}
			if weight > rowMax {
				rowMax = weight
			}
		}
		g.u[l] = rowMax // feasibility against the full row, before retention

		retainTopK(buf, k)
		keep := k
		if keep > w {
			keep = w
		}
		g.edgeTo = append(g.edgeTo, make([]int32, keep)...)
		g.edgeW = append(g.edgeW, make([]int64, keep)...)
		base := len(g.edgeTo) - keep
		for i := 0; i < keep; i++ {
			g.edgeTo[base+i] = buf[i].to
			g.edgeW[base+i] = buf[i].w
		}
		g.rowOff[l+1] = int32(len(g.edgeTo))
	}

	return g, transposed, nil
}

// transposeMatrix returns a fresh h'xw' matrix with rows and columns
// swapped: out[j][i] = in[i][j]. Allocates a new backing store; does not
// mutate the input.
func transposeMatrix(in [][]int64, h, w int) [][]int64 {
	out := make([][]int64, w)
	flat := make([]int64, w*h)
	for j := 0; j < w; j++ {
		out[j] = flat[j*h : (j+1)*h]
		for i := 0; i < h; i++ {
			out[j][i] = in[i][j]
		}
	}

	return out
}
