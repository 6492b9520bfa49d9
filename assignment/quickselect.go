// SPDX-License-Identifier: MIT
// Package: lvlath/assignment
//
// quickselect.go — top-K edge retention (C1).
//
// retainTopK reorders a []weightedEdge in place so that the K entries with
// the greatest weight occupy positions [0, K). No guarantee is made about
// the internal order of that prefix, nor about the suffix order. Ties may
// land on either side of the boundary; only the multiset of weights in the
// prefix is guaranteed (see SPEC_FULL.md §4.1, property P5).

package assignment

// retainTopK partitions edges in place so edges[0:min(len(edges),k)] holds
// the k greatest-weight entries. If len(edges) <= k, edges is left
// unchanged. k < 1 is treated as k == 1 (the routine is total on any
// non-empty slice).
//
// Algorithm: iterative Hoare-style partition with median-of-three pivot
// selection, recursing only into the half containing rank k-1.
//
// Complexity: O(n) expected, O(n^2) worst case.
func retainTopK(edges []weightedEdge, k int) {
	n := len(edges)
	if n <= k {
		return
	}
	if k < 1 {
		k = 1
	}

	left, right := 0, n-1
	target := k - 1 // zero-based rank we want at the partition boundary

	for left < right {
		pivotIdx := medianOfThree(edges, left, left+(right-left)/2, right)
		storeIndex := partition(edges, left, right, pivotIdx)
		switch {
		case storeIndex == target:
			return
		case storeIndex < target:
			left = storeIndex + 1
		default:
			right = storeIndex - 1
		}
	}
}

// medianOfThree returns the index (among a, b, c) whose weight is the
// median of the three, used as the partition pivot to avoid O(n^2)
// behavior on already-sorted or adversarial inputs.
func medianOfThree(edges []weightedEdge, a, b, c int) int {
	wa, wb, wc := edges[a].w, edges[b].w, edges[c].w
	switch {
	case (wa-wb)*(wc-wa) >= 0:
		return a
	case (wb-wa)*(wc-wb) >= 0:
		return b
	default:
		return c
	}
}

// partition performs a Hoare-style partition of edges[left:right+1] around
// the weight at pivotIdx, moving entries with weight strictly greater than
// the pivot before storeIndex, then swapping the pivot into storeIndex.
// Returns the pivot's final index.
func partition(edges []weightedEdge, left, right, pivotIdx int) int {
	pivotW := edges[pivotIdx].w
	edges[pivotIdx], edges[right] = edges[right], edges[pivotIdx] // stash pivot at the end

	storeIndex := left
	for i := left; i < right; i++ {
		if edges[i].w > pivotW {
			edges[i], edges[storeIndex] = edges[storeIndex], edges[i]
			storeIndex++
		}
	}
	edges[storeIndex], edges[right] = edges[right], edges[storeIndex] // restore pivot

	return storeIndex
}
