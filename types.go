package knapsack

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of numeric types accepted for item values and costs.
// Values need addition and a total order; costs need subtraction and a
// total order. Integral costs are required only by the DP solvers.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sentinel errors reported by Instance.Validate.
var (
	// ErrNegativeBudget indicates a budget below zero.
	ErrNegativeBudget = errors.New("knapsack: budget must be non-negative")

	// ErrNegativeCost indicates an item whose cost is below zero.
	ErrNegativeCost = errors.New("knapsack: item cost must be non-negative")

	// ErrNegativeValue indicates an item whose value is below zero.
	ErrNegativeValue = errors.New("knapsack: item value must be non-negative")

	// ErrNaN indicates a NaN budget, value or cost (float instances only).
	ErrNaN = errors.New("knapsack: NaN is not a valid budget, value or cost")
)

// ItemError reports which item failed validation.
// Unwrap exposes the sentinel, so errors.Is(err, ErrNegativeCost) works.
type ItemError struct {
	Index int
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("%v (item %d)", e.Err, e.Index)
}

func (e *ItemError) Unwrap() error { return e.Err }

// Item is a single (value, cost) pair. Treat it as immutable.
type Item[V, C Number] struct {
	Value V
	Cost  C
}

// Ratio returns Value/Cost as a float64, the efficiency used to order items.
// A zero-cost item has ratio +Inf regardless of its value, so it always
// sorts ahead of every item with a positive cost.
func (it Item[V, C]) Ratio() float64 {
	if it.Cost == 0 {
		return math.Inf(1)
	}

	return float64(it.Value) / float64(it.Cost)
}

// Solver is implemented by every 0/1 engine.
type Solver[V, C Number] interface {
	Solve(inst *Instance[V, C]) *Solution[V, C]
}

// MultiSolver is implemented by every unbounded engine.
type MultiSolver[V, C Number] interface {
	Solve(inst *Instance[V, C]) *MultiSolution[V, C]
}
