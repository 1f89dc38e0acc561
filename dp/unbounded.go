package dp

import (
	"time"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/knapsack"
)

// Unbounded is a reusable dynamic-programming solver for the unbounded
// variant. It mirrors unbounded.Solver and is handy to cross-check it when
// costs are integral.
type Unbounded[V knapsack.Number, C constraints.Integer] struct {
	opts knapsack.Options
}

var _ knapsack.MultiSolver[int, int] = (*Unbounded[int, int])(nil)

// NewUnbounded returns an unbounded DP solver configured by opts.
func NewUnbounded[V knapsack.Number, C constraints.Integer](opts ...knapsack.Option) *Unbounded[V, C] {
	return &Unbounded[V, C]{opts: knapsack.NewOptions(opts...)}
}

// SolveUnbounded is shorthand for NewUnbounded(opts...).Solve(inst).
func SolveUnbounded[V knapsack.Number, C constraints.Integer](inst *knapsack.Instance[V, C], opts ...knapsack.Option) *knapsack.MultiSolution[V, C] {
	return NewUnbounded[V, C](opts...).Solve(inst)
}

// Solve returns an optimal take-count per item.
//
// Table:
//
//	dp[i][w] = dp[i-1][w]                                 if w < cost[i-1]
//	         = max(dp[i-1][w], dp[i][w-cost[i-1]] + value[i-1])  otherwise
//
// Reconstruction walks row i while dp[i][w] > dp[i-1][w], taking one copy of
// item i-1 per step, then moves to row i-1. Zero-cost items are taken once
// and left out of the table.
//
// Complexity: O(n·budget) time and memory.
func (u *Unbounded[V, C]) Solve(inst *knapsack.Instance[V, C]) *knapsack.MultiSolution[V, C] {
	var (
		start = time.Now()
		sol   = knapsack.NewMultiSolution(inst)
		n     = inst.Len()
	)
	if inst.Budget() < 0 {
		report(u.opts, unboundedSolverName, inst, 0, 0, start)
		return sol
	}

	var (
		budget = int(inst.Budget())
		t      = newTable[V](n+1, budget+1)
		i, w   int
	)
	for i = 1; i <= n; i++ {
		it := inst.Item(i - 1)
		if it.Cost == 0 || it.Cost > inst.Budget() {
			copy(t[i], t[i-1])
			continue
		}
		var (
			prev, cur = t[i-1], t[i]
			c         = int(it.Cost)
		)
		copy(cur[:c], prev[:c])
		for w = c; w <= budget; w++ {
			cur[w] = max(prev[w], cur[w-c]+it.Value)
		}
	}

	w = budget
	for i = n; i >= 1; i-- {
		it := inst.Item(i - 1)
		if it.Cost == 0 {
			sol.Set(i-1, 1)
			continue
		}
		var k int
		for t[i][w] > t[i-1][w] {
			k++
			w -= int(it.Cost)
		}
		sol.Set(i-1, k)
	}

	report(u.opts, unboundedSolverName, inst, countFits(inst), t.cells(), start)

	return sol
}
