package bnb

import (
	"time"

	"github.com/katalvlaran/knapsack"
	"github.com/katalvlaran/knapsack/internal/order"
)

// solverName labels Stats and log lines produced by this package.
const solverName = "bnb"

// Solver is a reusable 0/1 branch-and-bound solver. It keeps no state
// between calls, so one Solver may serve concurrent Solve calls.
type Solver[V, C knapsack.Number] struct {
	opts knapsack.Options
}

var _ knapsack.Solver[int, int] = (*Solver[int, int])(nil)

// New returns a Solver configured by opts.
func New[V, C knapsack.Number](opts ...knapsack.Option) *Solver[V, C] {
	return &Solver[V, C]{opts: knapsack.NewOptions(opts...)}
}

// Solve is shorthand for New(opts...).Solve(inst).
func Solve[V, C knapsack.Number](inst *knapsack.Instance[V, C], opts ...knapsack.Option) *knapsack.Solution[V, C] {
	return New[V, C](opts...).Solve(inst)
}

// Solve returns an optimal 0/1 selection for inst.
//
// An empty item list or a zero budget (with no zero-cost items) yields the
// empty selection. Zero-cost items are always part of the result.
//
// Complexity: exponential worst case; O(n) memory.
func (s *Solver[V, C]) Solve(inst *knapsack.Instance[V, C]) *knapsack.Solution[V, C] {
	var (
		start  = time.Now()
		sol    = knapsack.NewSolution(inst)
		sorted = order.ByRatio(inst)
	)

	e := newEngine(sorted.Items, inst.Budget(), s.opts.Logger.WithName(solverName))
	e.search()

	for _, pos := range e.bestStack {
		sol.Add(sorted.Index[pos])
	}
	// A zero-value, zero-cost item never improves the incumbent strictly,
	// but taking it is free.
	for pos := 0; pos < sorted.ZeroCost(); pos++ {
		sol.Add(sorted.Index[pos])
	}

	s.opts.Report(knapsack.Stats{
		Solver:       solverName,
		Items:        inst.Len(),
		Candidates:   sorted.Len(),
		Nodes:        e.nodes,
		Pruned:       e.pruned,
		Improvements: e.improvements,
		Elapsed:      time.Since(start),
	})

	return sol
}
