// Package lvlath is an in-memory toolkit for building weighted bipartite
// graphs and solving the assignment problem / maximum-weight bipartite
// matching over them.
//
// Under the hood, everything is organized under three subpackages:
//
//	core/       — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	builder/     — deterministic, functional-options graph construction
//	assignment/  — primal-dual (Kuhn-Munkres/Kwok-style) matching engine,
//	               with cost-matrix, adjacency-list, and *core.Graph entry points
//
// Quick example, matching a 3x3 cost matrix:
//
//	result, err := assignment.SolveMatrix(context.Background(), [][]int64{
//		{5, 1, 9},
//		{2, 8, 3},
//		{7, 4, 6},
//	})
//	// result.LeftPair == []int{1, 0, 2}, result.WeightSum == 9
//
//	go get github.com/lofcz/FastHungarian
package lvlath
