package orchestrator

import "sort"

// #region purge-set

// purgeSet selects the slots to reassign this cycle: the bottom fraction by
// trust, every slot at or below the convergence threshold, and slots whose
// trust duplicates an earlier slot's (a proxy for degenerate duplicate
// candidates). Slot 0 is exempt while its trust is positive.
func purgeSet(trusts []float64, fraction, threshold float64) []int {
	n := len(trusts)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return trusts[order[a]] < trusts[order[b]]
	})

	marked := make(map[int]bool)
	count := int(float64(n) * fraction)
	if count > n {
		count = n
	}
	for _, idx := range order[:count] {
		marked[idx] = true
	}

	for i := 0; i < n; i++ {
		if trusts[i] <= threshold {
			marked[i] = true
		}
		for j := 0; j < i; j++ {
			if trusts[j] == trusts[i] {
				marked[i] = true
				break
			}
		}
	}

	if trusts[0] > 0 {
		delete(marked, 0)
	}

	out := make([]int, 0, len(marked))
	for idx := range marked {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

// #endregion purge-set
