// SPDX-License-Identifier: MIT
// Package: lvlath/assignment
//
// errors.go — sentinel errors for the assignment package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are never wrapped with formatted strings at definition site;
//     call sites attach context with fmt.Errorf("%s: %w", ...).
//   • The engine itself never returns an error; all validation happens in the
//     adapters before the engine is entered (see doc.go).

package assignment

import "errors"

// ErrEmptyInput indicates a nil or zero-dimension matrix, or zero-length
// adjacency/graph input, where at least one vertex is required.
var ErrEmptyInput = errors.New("assignment: empty input")

// ErrNegativeWeight indicates a negative cost-matrix entry, or a negative
// edge weight on the graph-backed entry point, neither of which this solver
// accepts (see §9 of the design notes for why the adjacency-list path is
// more permissive).
var ErrNegativeWeight = errors.New("assignment: negative weight")

// ErrIndexOutOfRange indicates an adjacency-list edge whose right-vertex
// index falls outside [0, |R|).
var ErrIndexOutOfRange = errors.New("assignment: right-vertex index out of range")

// ErrNilGraph indicates a nil *core.Graph was passed to SolveGraph.
var ErrNilGraph = errors.New("assignment: nil graph")

// ErrOverlappingPartitions indicates leftIDs and rightIDs share at least one
// vertex ID, violating the bipartition SolveGraph requires.
var ErrOverlappingPartitions = errors.New("assignment: left/right ID sets overlap")

// ErrUnknownVertex indicates a leftIDs/rightIDs entry that does not name a
// vertex present in the supplied graph.
var ErrUnknownVertex = errors.New("assignment: unknown vertex ID")

// ErrEdgeOutsideBipartition indicates an edge whose endpoints are not a
// (left, right) pair drawn from the caller-supplied partition.
var ErrEdgeOutsideBipartition = errors.New("assignment: edge crosses outside the bipartition")

// ErrInvariantViolation is returned only from the recover() guard at the
// single public boundary that could plausibly observe a broken engine
// invariant (see engine.go). It should never fire on correct input; its
// presence indicates a bug in this package, not in the caller.
var ErrInvariantViolation = errors.New("assignment: internal invariant violation")
