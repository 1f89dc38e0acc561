package knapsack

import (
	"math"
	"slices"
)

// Instance is a knapsack problem: a budget plus an ordered list of items.
// Item i is identified by its position; solutions refer to items by that index.
//
// An Instance is read-only while a solver runs. Solvers never modify it, so
// several solvers may share one Instance concurrently provided the caller
// does not call SetBudget or AddItem in the meantime.
type Instance[V, C Number] struct {
	budget C
	items  []Item[V, C]
}

// NewInstance returns an instance with the given budget and items.
// The items slice is copied.
func NewInstance[V, C Number](budget C, items ...Item[V, C]) *Instance[V, C] {
	return &Instance[V, C]{
		budget: budget,
		items:  slices.Clone(items),
	}
}

// SetBudget replaces the budget.
func (in *Instance[V, C]) SetBudget(b C) { in.budget = b }

// Budget returns the maximum total cost a selection may consume.
func (in *Instance[V, C]) Budget() C { return in.budget }

// AddItem appends an item; it receives index Len()-1.
func (in *Instance[V, C]) AddItem(v V, c C) {
	in.items = append(in.items, Item[V, C]{Value: v, Cost: c})
}

// Len returns the number of items.
func (in *Instance[V, C]) Len() int { return len(in.items) }

// Item returns item i. It panics if i is out of range, like a slice index.
func (in *Instance[V, C]) Item(i int) Item[V, C] { return in.items[i] }

// Items returns a copy of the item list in index order.
func (in *Instance[V, C]) Items() []Item[V, C] { return slices.Clone(in.items) }

// Validate checks the preconditions the solvers rely on but never verify:
// a non-negative budget and non-negative, non-NaN values and costs.
//
// Errors:
//   - ErrNaN, ErrNegativeBudget for the budget.
//   - *ItemError wrapping ErrNaN, ErrNegativeCost or ErrNegativeValue for
//     the first offending item.
//
// Complexity: O(n).
func (in *Instance[V, C]) Validate() error {
	if math.IsNaN(float64(in.budget)) {
		return ErrNaN
	}
	if in.budget < 0 {
		return ErrNegativeBudget
	}
	for i, it := range in.items {
		switch {
		case math.IsNaN(float64(it.Value)) || math.IsNaN(float64(it.Cost)):
			return &ItemError{Index: i, Err: ErrNaN}
		case it.Cost < 0:
			return &ItemError{Index: i, Err: ErrNegativeCost}
		case it.Value < 0:
			return &ItemError{Index: i, Err: ErrNegativeValue}
		}
	}

	return nil
}
