// SPDX-License-Identifier: MIT
// Package: lvlath/assignment
//
// types.go — CSR edge store, potentials, and the public Result type.
//
// AI-HINT (file):
//   - csrGraph is produced once by a builder (C2) and consumed once by the
//     engine (C3); the engine never mutates edge_to/edge_w/row_off.
//   - weightedEdge is the pre-retention working-buffer element that
//     retainTopK partitions in place.

package assignment

// weightedEdge is a (right-vertex, weight) pair used in the builders'
// pre-retention working buffer. Kept as a struct-of-two-ints (no pointer
// chasing) so QuickSelect can swap elements with plain assignment.
type weightedEdge struct {
	to int32
	w  int64
}

// AdjEdge is one entry of an adjacency-list input to SolveAdjacency: an
// edge from the implicit left vertex to right-vertex index To, weighted
// Weight. Weight may be negative; see doc.go for why the adjacency-list
// path tolerates that while SolveGraph does not.
type AdjEdge struct {
	To     int
	Weight int64
}

// csrGraph is the compressed-sparse-row edge store the engine consumes.
// Edges incident to left vertex l occupy edgeTo[rowOff[l]:rowOff[l+1]],
// with matching weights at the same offsets in edgeW.
//
// u is the initial left-potential vector computed by the builder from the
// full (pre-retention) edge set, guaranteeing feasibility against the
// retained subset (see SPEC_FULL.md §4.2).
type csrGraph struct {
	edgeTo []int32
	edgeW  []int64
	rowOff []int32
	u      []int64
	nLeft  int
	nRight int
}

// Result is the outcome of a matching/assignment call, shared by all three
// entry points. Index spaces differ by entry point: for SolveMatrix the
// indices are original matrix rows/columns (with RightPair left empty when
// the matrix was transposed internally, see doc.go); for SolveAdjacency and
// SolveGraph the indices are positions in the caller's L/R vertex sets.
type Result struct {
	// LeftPair[l] is the matched right-vertex index, or -1 if l is unmatched.
	LeftPair []int

	// RightPair[r] is the matched left-vertex index, or -1 if r is unmatched.
	// Left empty by SolveMatrix when it transposed the input (see §9).
	RightPair []int

	// WeightSum is the objective value in the units of the entry point:
	// minimized cost for SolveMatrix, maximized weight for SolveAdjacency
	// and SolveGraph.
	WeightSum int64
}
