// Package assignment solves the assignment problem and, more generally,
// maximum-weight matching in a weighted bipartite graph, via a primal-dual
// (Kuhn-Munkres/Kwok-style) label-and-augment algorithm.
//
// # What & why
//
// Given a bipartite graph with left vertex set L, right vertex set R, and
// non-negative integer edge weights, the solver returns a matching of
// maximum total weight together with the induced pairing arrays. Through
// the cost-matrix entry point it instead returns an assignment minimising
// the sum of selected entries — the classical assignment problem.
//
//   - SolveMatrix  — dense h×w cost matrix, minimisation.
//   - SolveAdjacency — explicit sparse adjacency list, maximisation.
//   - SolveGraph   — *core.Graph plus a caller-supplied bipartition,
//     maximisation, with results also translated back to vertex IDs.
//
// SolveMatrix transposes a matrix with more rows than columns before
// solving; in that case Result.RightPair is left empty and only LeftPair
// (indexed by original row) is filled. SolveAdjacency accepts negative
// edge weights, while SolveMatrix and SolveGraph reject any negative cost
// or weight with ErrNegativeWeight.
//
// # How
//
// The engine maintains vertex potentials u[ℓ], v[r] and grows an
// alternating BFS tree in the tight-edge subgraph (edges where
// u[ℓ]+v[r]=w). When the tree gets stuck, it raises potentials by the
// minimum slack across the tree's frontier (a batched dual update) and
// resumes, until an augmenting path reaches an unmatched right vertex.
// One such augmentation runs per unmatched left vertex.
//
// Before the engine sees anything, each adapter (matrix, adjacency list,
// or graph) caps every left vertex's out-degree at a retention constant K
// via QuickSelect top-K (retainTopK), keeping only its highest-weighted
// edges. Kwok's bound guarantees this preserves at least one optimal
// matching while bounding memory at O(|L|·K + |R|).
//
// # Complexity
//
// O(|L|·K·(|L|+|R|)) time in the worst case, O(|L|·K + |R|) memory,
// allocated fresh per call; retainTopK itself is O(n) expected, O(n²)
// worst case per row.
//
// # Errors
//
// All three entry points validate their input before the engine ever
// runs and return a sentinel error (see errors.go) on anything malformed.
// The engine itself never fails on well-formed input; an internal
// invariant violation — which should never occur — surfaces as
// ErrInvariantViolation from the entry point rather than a panic.
package assignment
