// Package knapsacktest holds reference enumerators and deterministic
// instance builders shared by the solver test suites. It is imported from
// _test.go files only.
package knapsacktest

import (
	"math/rand/v2"

	"github.com/katalvlaran/knapsack"
)

// MaxExhaustive is the largest item count Exhaustive01 accepts (2^20 subsets).
const MaxExhaustive = 20

// Exhaustive01 returns the best 0/1 value by enumerating every subset.
// It panics when inst has more than MaxExhaustive items.
//
// Complexity: O(2^n · n).
func Exhaustive01[V, C knapsack.Number](inst *knapsack.Instance[V, C]) V {
	var (
		n      = inst.Len()
		budget = inst.Budget()
		best   V
		mask   uint32
	)
	if n > MaxExhaustive {
		panic("knapsacktest: too many items for exhaustive enumeration")
	}
	for mask = 0; mask < 1<<n; mask++ {
		var (
			v V
			c C
		)
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				it := inst.Item(i)
				v += it.Value
				c += it.Cost
			}
		}
		if c <= budget && v > best {
			best = v
		}
	}

	return best
}

// ExhaustiveUnbounded returns the best unbounded value by enumerating every
// feasible multiplicity vector, each count capped at maxCopies (≤ 0 means
// no cap beyond the budget). Zero-cost items count once, matching the
// solvers' policy.
func ExhaustiveUnbounded[V, C knapsack.Number](inst *knapsack.Instance[V, C], maxCopies int) V {
	var (
		base  V
		items []knapsack.Item[V, C]
	)
	for i := 0; i < inst.Len(); i++ {
		it := inst.Item(i)
		if it.Cost == 0 {
			base += it.Value
			continue
		}
		items = append(items, it)
	}
	if inst.Budget() < 0 {
		return 0
	}

	var rec func(k int, value V, left C) V
	rec = func(k int, value V, left C) V {
		if k == len(items) {
			return value
		}
		best := rec(k+1, value, left)
		for copies := 1; maxCopies <= 0 || copies <= maxCopies; copies++ {
			if C(copies)*items[k].Cost > left {
				break
			}
			got := rec(k+1, value+V(copies)*items[k].Value, left-C(copies)*items[k].Cost)
			if got > best {
				best = got
			}
		}

		return best
	}

	return base + rec(0, 0, inst.Budget())
}

// Random builds a reproducible instance with n items, values in
// [0, maxValue] and costs in [0, maxCost]. Roughly one item in maxCost+1
// has zero cost, so zero-cost handling is exercised too.
func Random(seed uint64, n, maxValue, maxCost, budget int) *knapsack.Instance[int, int] {
	var (
		r    = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		inst = knapsack.NewInstance[int, int](budget)
	)
	for i := 0; i < n; i++ {
		inst.AddItem(r.IntN(maxValue+1), r.IntN(maxCost+1))
	}

	return inst
}

// RandomPositive is Random without zero-cost items (costs in [1, maxCost]).
func RandomPositive(seed uint64, n, maxValue, maxCost, budget int) *knapsack.Instance[int, int] {
	var (
		r    = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		inst = knapsack.NewInstance[int, int](budget)
	)
	for i := 0; i < n; i++ {
		inst.AddItem(r.IntN(maxValue+1), 1+r.IntN(maxCost))
	}

	return inst
}
