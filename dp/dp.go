package dp

import (
	"time"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/knapsack"
)

// Solver names used in Stats and log lines.
const (
	solverName          = "dp"
	valueSolverName     = "dp-value"
	unboundedSolverName = "dp-unbounded"
)

// Solver is a reusable 0/1 dynamic-programming solver.
// It keeps no state between calls.
type Solver[V knapsack.Number, C constraints.Integer] struct {
	opts knapsack.Options
}

var _ knapsack.Solver[int, int] = (*Solver[int, int])(nil)

// New returns a 0/1 Solver configured by opts.
func New[V knapsack.Number, C constraints.Integer](opts ...knapsack.Option) *Solver[V, C] {
	return &Solver[V, C]{opts: knapsack.NewOptions(opts...)}
}

// Solve is shorthand for New(opts...).Solve(inst).
func Solve[V knapsack.Number, C constraints.Integer](inst *knapsack.Instance[V, C], opts ...knapsack.Option) *knapsack.Solution[V, C] {
	return New[V, C](opts...).Solve(inst)
}

// OptimalValue is shorthand for New(opts...).OptimalValue(inst).
func OptimalValue[V knapsack.Number, C constraints.Integer](inst *knapsack.Instance[V, C], opts ...knapsack.Option) V {
	return New[V, C](opts...).OptimalValue(inst)
}

// Solve returns an optimal 0/1 selection for inst.
//
// It fills the full (n+1)×(budget+1) table, then reconstructs the selection
// from dp[n][budget] backwards. Zero-cost items are always selected: their
// value is non-negative, so taking them never hurts.
//
// A zero budget or an empty item list yields an all-false selection unless
// zero-cost items are present. A negative budget (a precondition violation)
// yields the empty selection.
//
// Complexity: O(n·budget) time and memory.
func (s *Solver[V, C]) Solve(inst *knapsack.Instance[V, C]) *knapsack.Solution[V, C] {
	var (
		start = time.Now()
		sol   = knapsack.NewSolution(inst)
		n     = inst.Len()
	)
	if inst.Budget() < 0 {
		s.report(solverName, inst, 0, 0, start)
		return sol
	}

	var (
		budget = int(inst.Budget())
		t      = newTable[V](n+1, budget+1)
		i, w   int
	)
	for i = 1; i <= n; i++ {
		fillRow01(t[i-1], t[i], inst.Item(i-1), inst.Budget())
	}

	// Walk back from dp[n][budget].
	w = budget
	for i = n; i >= 1; i-- {
		it := inst.Item(i - 1)
		if it.Cost == 0 {
			sol.Add(i - 1)
			continue
		}
		if t[i][w] > t[i-1][w] {
			sol.Add(i - 1)
			w -= int(it.Cost)
		}
	}

	s.report(solverName, inst, countFits(inst), t.cells(), start)

	return sol
}

// fillRow01 computes row i of the 0/1 table from row i-1.
func fillRow01[V knapsack.Number, C constraints.Integer](prev, cur []V, it knapsack.Item[V, C], budget C) {
	if it.Cost > budget {
		copy(cur, prev) // never fits
		return
	}
	var (
		c = int(it.Cost)
		w int
	)
	copy(cur[:c], prev[:c])
	for w = c; w < len(cur); w++ {
		cur[w] = max(prev[w], prev[w-c]+it.Value)
	}
}

// OptimalValue returns the optimal 0/1 value without recovering the
// selection. It keeps one row of budget+1 values and sweeps it from high to
// low capacity, so each item is counted at most once.
//
// Complexity: O(n·budget) time, O(budget) memory.
func (s *Solver[V, C]) OptimalValue(inst *knapsack.Instance[V, C]) V {
	var (
		start = time.Now()
		zero  V
	)
	if inst.Budget() < 0 {
		s.report(valueSolverName, inst, 0, 0, start)
		return zero
	}

	var (
		budget = int(inst.Budget())
		row    = make([]V, budget+1)
		i, w   int
	)
	for i = 0; i < inst.Len(); i++ {
		it := inst.Item(i)
		if it.Cost > inst.Budget() {
			continue
		}
		c := int(it.Cost)
		for w = budget; w >= c; w-- {
			row[w] = max(row[w], row[w-c]+it.Value)
		}
	}

	s.report(valueSolverName, inst, countFits(inst), int64(len(row)), start)

	return row[budget]
}

func (s *Solver[V, C]) report(name string, inst *knapsack.Instance[V, C], candidates int, cells int64, start time.Time) {
	report(s.opts, name, inst, candidates, cells, start)
}

func report[V knapsack.Number, C constraints.Integer](opts knapsack.Options, name string, inst *knapsack.Instance[V, C], candidates int, cells int64, start time.Time) {
	opts.Report(knapsack.Stats{
		Solver:     name,
		Items:      inst.Len(),
		Candidates: candidates,
		Cells:      cells,
		Elapsed:    time.Since(start),
	})
}

// countFits returns how many items cost no more than the budget.
func countFits[V knapsack.Number, C constraints.Integer](inst *knapsack.Instance[V, C]) int {
	var k int
	for i := 0; i < inst.Len(); i++ {
		if inst.Item(i).Cost <= inst.Budget() {
			k++
		}
	}

	return k
}
