// SPDX-License-Identifier: MIT
// Package: lvlath/assignment
//
// solve.go — the three public dispatcher entry points. Each validates and
// builds the CSR graph (C2), runs the engine (C3), and adapts the result
// (C4). ctx is checked only between these phases, never inside the
// engine's inner loop, mirroring flow.EdmondsKarp.

package assignment

import (
	"context"

	"github.com/lofcz/FastHungarian/core"
)

// SolveMatrix computes a minimum-cost perfect (or maximal, if h != w)
// assignment over a non-negative integer cost matrix. LeftPair is indexed
// by original row; RightPair is left empty when the matrix was transposed
// internally (see doc.go).
func SolveMatrix(ctx context.Context, cost [][]int64, opts ...Option) (Result, error) {
	o := resolve(opts...)

	g, transposed, err := buildFromMatrix(cost, o)
	if err != nil {
		return Result{}, err
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	var result Result
	err = runGuarded(func() error {
		engineLeft, engineRight, _ := runEngine(g, o)
		result = adaptMatrixResult(cost, transposed, engineLeft, engineRight)

		return nil
	})
	if err != nil {
		return Result{}, err
	}

	return result, nil
}

// SolveAdjacency computes a maximum-weight matching over an explicit
// sparse adjacency list. Both pairing arrays are fully populated.
func SolveAdjacency(ctx context.Context, nLeft, nRight int, adj [][]AdjEdge, opts ...Option) (Result, error) {
	o := resolve(opts...)

	g, err := buildFromAdjacency(nLeft, nRight, adj, o)
	if err != nil {
		return Result{}, err
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	var result Result
	err = runGuarded(func() error {
		engineLeft, engineRight, weightSum := runEngine(g, o)
		result = Result{LeftPair: engineLeft, RightPair: engineRight, WeightSum: weightSum}

		return nil
	})
	if err != nil {
		return Result{}, err
	}

	return result, nil
}

// SolveGraph computes a maximum-weight matching over a *core.Graph given
// an explicit bipartition. Besides the index-based Result, it returns a
// leftID->rightID map for matched pairs.
func SolveGraph(ctx context.Context, g *core.Graph, leftIDs, rightIDs []string, opts ...Option) (Result, map[string]string, error) {
	o := resolve(opts...)

	csr, err := buildFromGraph(g, leftIDs, rightIDs, o)
	if err != nil {
		return Result{}, nil, err
	}

	if err := ctx.Err(); err != nil {
		return Result{}, nil, err
	}

	var result Result
	var pairs map[string]string
	err = runGuarded(func() error {
		engineLeft, engineRight, weightSum := runEngine(csr, o)
		result, pairs = adaptGraphResult(leftIDs, rightIDs, engineLeft, engineRight, weightSum)

		return nil
	})
	if err != nil {
		return Result{}, nil, err
	}

	return result, pairs, nil
}

// runGuarded invokes fn with a recover() guard converting an internal
// invariant panic from the engine into ErrInvariantViolation. This is the
// one public boundary where such a panic could surface; it should never
// fire on valid input, since the builders reject everything the engine
// cannot solve before the engine is ever entered.
func runGuarded(fn func() error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if e, ok := rec.(error); ok {
				err = e

				return
			}
			panic(rec)
		}
	}()

	return fn()
}
