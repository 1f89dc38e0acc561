// Package order prepares item lists for the branch-and-bound engines:
// it drops items that cannot fit even alone and sorts the rest by
// descending value/cost ratio, remembering where each item came from.
package order

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/knapsack"
)

// Sorted is a filtered, ratio-ordered view of an instance's items.
// Items[p] is the item at sorted position p; Index[p] is its original index.
type Sorted[V, C knapsack.Number] struct {
	Items []knapsack.Item[V, C]
	Index []int
}

// ByRatio keeps every item with cost ≤ budget and orders them by
// descending Ratio. The sort is stable: equal ratios keep instance order,
// which makes every solver built on top of it deterministic. Zero-cost
// items (ratio +Inf) come first.
//
// Complexity: O(n log n) time, O(n) memory.
func ByRatio[V, C knapsack.Number](inst *knapsack.Instance[V, C]) Sorted[V, C] {
	var (
		n      = inst.Len()
		budget = inst.Budget()
		idx    = make([]int, 0, n)
		ratio  = make([]float64, n)
		i      int
	)
	for i = 0; i < n; i++ {
		it := inst.Item(i)
		if it.Cost > budget {
			continue // infeasible even alone
		}
		ratio[i] = it.Ratio()
		idx = append(idx, i)
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(ratio[b], ratio[a])
	})

	items := make([]knapsack.Item[V, C], len(idx))
	for i = range idx {
		items[i] = inst.Item(idx[i])
	}

	return Sorted[V, C]{Items: items, Index: idx}
}

// Len returns the number of surviving items.
func (s Sorted[V, C]) Len() int { return len(s.Items) }

// ZeroCost returns how many leading items have zero cost.
// They always form a prefix because their ratio is +Inf.
func (s Sorted[V, C]) ZeroCost() int {
	var z int
	for z < len(s.Items) && s.Items[z].Cost == 0 {
		z++
	}

	return z
}
