// SPDX-License-Identifier: MIT
// Package: lvlath/assignment
//
// builder_adjacency.go — sparse adjacency-list builder (C2, Entry Point B).
//
// Unlike the matrix path, no transposition is performed: |L| and |R| are
// given explicitly by the caller. Negative weights are accepted silently
// (see SPEC_FULL.md §9): retention and the potentials they seed keep them
// from ever being selected.

package assignment

import "fmt"

// buildFromAdjacency validates adj against nLeft/nRight and builds the CSR
// graph. Retention caps each left vertex's out-degree at K = nLeft (per
// SPEC_FULL.md §4.2, the adjacency-list path's default).
func buildFromAdjacency(nLeft, nRight int, adj [][]AdjEdge, opts Options) (*csrGraph, error) {
	if nLeft <= 0 || nRight <= 0 {
		return nil, ErrEmptyInput
	}
	if len(adj) != nLeft {
		return nil, fmt.Errorf("assignment: len(adj)=%d, want nLeft=%d: %w", len(adj), nLeft, ErrEmptyInput)
	}
	for l, edges := range adj {
		for _, e := range edges {
			if e.To < 0 || e.To >= nRight {
				return nil, fmt.Errorf("assignment: adj[%d] right-vertex %d: %w", l, e.To, ErrIndexOutOfRange)
			}
		}
	}

	k := opts.RetentionK
	if k <= 0 {
		k = nLeft
	}

	g := &csrGraph{
		u:      make([]int64, nLeft),
		rowOff: make([]int32, nLeft+1),
		nLeft:  nLeft,
		nRight: nRight,
	}

	for l, edges := range adj {
		var rowMax int64
		buf := make([]weightedEdge, len(edges))
		for i, e := range edges {
			buf[i] = weightedEdge{to: int32(e.To), w: e.Weight}
			if e.Weight > rowMax {
				rowMax = e.Weight
			}
		}
		g.u[l] = rowMax // 0 if edges is empty, matching the spec's "or 0 if empty"

		retainTopK(buf, k)
		keep := k
		if keep > len(buf) {
			keep = len(buf)
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

	return g, nil
}
