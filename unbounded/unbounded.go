package unbounded

import (
	"time"

	"github.com/katalvlaran/knapsack"
	"github.com/katalvlaran/knapsack/internal/order"
)

const solverName = "unbounded"

// Solver is a reusable unbounded branch-and-bound solver. It keeps no state
// between calls.
type Solver[V, C knapsack.Number] struct {
	opts knapsack.Options
}

var _ knapsack.MultiSolver[int, int] = (*Solver[int, int])(nil)

// New returns a Solver configured by opts.
func New[V, C knapsack.Number](opts ...knapsack.Option) *Solver[V, C] {
	return &Solver[V, C]{opts: knapsack.NewOptions(opts...)}
}

// Solve is shorthand for New(opts...).Solve(inst).
func Solve[V, C knapsack.Number](inst *knapsack.Instance[V, C], opts ...knapsack.Option) *knapsack.MultiSolution[V, C] {
	return New[V, C](opts...).Solve(inst)
}

// Solve returns an optimal take-count per item for inst.
// Each zero-cost item gets count 1; see the package documentation.
func (s *Solver[V, C]) Solve(inst *knapsack.Instance[V, C]) *knapsack.MultiSolution[V, C] {
	var (
		start  = time.Now()
		sol    = knapsack.NewMultiSolution(inst)
		sorted = order.ByRatio(inst)
		z      = sorted.ZeroCost()
		pos    int
	)
	for pos = 0; pos < z; pos++ {
		sol.Set(sorted.Index[pos], 1)
	}

	e := newEngine(sorted.Items[z:], inst.Budget(), s.opts.Logger.WithName(solverName))
	e.search()

	for _, f := range e.bestStack {
		sol.Set(sorted.Index[z+f.pos], f.count)
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
