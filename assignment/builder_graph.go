// SPDX-License-Identifier: MIT
// Package: lvlath/assignment
//
// builder_graph.go — *core.Graph-backed builder (C2, Entry Point C).
//
// Supplements the adjacency-list path for callers who already have a
// core.Graph: validates the caller-supplied bipartition strictly (unlike
// the permissive adjacency-list path) and reuses the same CSR/retention
// machinery.

package assignment

import (
	"fmt"

	"github.com/lofcz/FastHungarian/core"
)

// buildFromGraph validates g/leftIDs/rightIDs and builds the CSR graph.
// leftIDs[i] becomes CSR index i; rightIDs[j] becomes CSR index j — stable,
// caller-supplied order, no implicit sorting (matching builder's ID-scheme
// convention). Retention caps each left vertex at K = len(leftIDs).
func buildFromGraph(g *core.Graph, leftIDs, rightIDs []string, opts Options) (*csrGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(leftIDs) == 0 || len(rightIDs) == 0 {
		return nil, ErrEmptyInput
	}

	leftIndex := make(map[string]int, len(leftIDs))
	rightIndex := make(map[string]int, len(rightIDs))
	for i, id := range leftIDs {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("assignment: leftIDs[%d]=%q: %w", i, id, ErrUnknownVertex)
		}
		if _, dup := leftIndex[id]; dup {
			return nil, fmt.Errorf("assignment: leftIDs[%d]=%q duplicated: %w", i, id, ErrOverlappingPartitions)
		}
		leftIndex[id] = i
	}
	for j, id := range rightIDs {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("assignment: rightIDs[%d]=%q: %w", j, id, ErrUnknownVertex)
		}
		if _, inLeft := leftIndex[id]; inLeft {
			return nil, fmt.Errorf("assignment: %q is in both partitions: %w", id, ErrOverlappingPartitions)
		}
		if _, dup := rightIndex[id]; dup {
			return nil, fmt.Errorf("assignment: rightIDs[%d]=%q duplicated: %w", j, id, ErrOverlappingPartitions)
		}
		rightIndex[id] = j
	}

	nLeft, nRight := len(leftIDs), len(rightIDs)
	bufs := make([][]weightedEdge, nLeft)

	for _, e := range g.Edges() {
		li, fromLeft := leftIndex[e.From]
		ri, toRight := rightIndex[e.To]
		if !fromLeft || !toRight {
			return nil, fmt.Errorf("assignment: edge %s->%s: %w", e.From, e.To, ErrEdgeOutsideBipartition)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("assignment: edge %s->%s weight=%d: %w", e.From, e.To, e.Weight, ErrNegativeWeight)
		}
		bufs[li] = append(bufs[li], weightedEdge{to: int32(ri), w: e.Weight})
	}

	k := opts.RetentionK
	if k <= 0 {
		k = nLeft
	}

	out := &csrGraph{
		u:      make([]int64, nLeft),
		rowOff: make([]int32, nLeft+1),
		nLeft:  nLeft,
		nRight: nRight,
	}

	for l, buf := range bufs {
		var rowMax int64
		for _, e := range buf {
			if e.w > rowMax {
				rowMax = e.w
			}
		}
		out.u[l] = rowMax

		retainTopK(buf, k)
		keep := k
		if keep > len(buf) {
			keep = len(buf)
		}
		out.edgeTo = append(out.edgeTo, make([]int32, keep)...)
		out.edgeW = append(out.edgeW, make([]int64, keep)...)
		base := len(out.edgeTo) - keep
		for i := 0; i < keep; i++ {
			out.edgeTo[base+i] = buf[i].to
			out.edgeW[base+i] = buf[i].w
		}
		out.rowOff[l+1] = int32(len(out.edgeTo))
	}

	return out, nil
}
