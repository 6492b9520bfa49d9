// SPDX-License-Identifier: MIT
// Package: lvlath/assignment
//
// result.go — C4: packages engine output into the caller-facing Result,
// undoing the cost-matrix adapter's transposition and translating the
// graph adapter's CSR indices back to vertex IDs.

package assignment

// adaptMatrixResult undoes buildFromMatrix's transposition and recomputes
// the true cost directly from the caller's original matrix, per
// SPEC_FULL.md §4.4. engineLeft/engineRight are the engine's raw pairing
// arrays over the (possibly transposed) CSR graph.
func adaptMatrixResult(cost [][]int64, transposed bool, engineLeft, engineRight []int) Result {
	if !transposed {
		r := Result{
			LeftPair:  engineLeft,
			RightPair: engineRight,
		}
		for i, j := range r.LeftPair {
			if j != -1 {
				r.WeightSum += cost[i][j]
			}
		}

		return r
	}

	// Transposed: the engine solved over (original columns) x (original
	// rows), so its rightPair, indexed by original row, already gives the
	// matched original column. RightPair stays empty per §9's documented
	// transposition quirk.
	r := Result{LeftPair: engineRight}
	for i, j := range r.LeftPair {
		if j != -1 {
			r.WeightSum += cost[i][j]
		}
	}

	return r
}

// adaptGraphResult packages the engine's CSR-index pairing into a Result
// plus a leftID->rightID map for matched pairs, per SPEC_FULL.md §4.4.
func adaptGraphResult(leftIDs, rightIDs []string, engineLeft, engineRight []int, weightSum int64) (Result, map[string]string) {
	r := Result{
		LeftPair:  engineLeft,
		RightPair: engineRight,
		WeightSum: weightSum,
	}

	pairs := make(map[string]string, len(leftIDs))
	for l, j := range engineLeft {
		if j != -1 {
			pairs[leftIDs[l]] = rightIDs[j]
		}
	}

	return r, pairs
}
