package bnb

import (
	"github.com/go-logr/logr"

	"github.com/katalvlaran/knapsack"
)

// engine holds the whole search state of one solve call.
// Positions refer to the ratio-sorted item list, not to instance indices.
type engine[V, C knapsack.Number] struct {
	items []knapsack.Item[V, C]
	n     int
	log   logr.Logger

	// Current path: included positions, their total value and what is left.
	stack []int
	value V
	left  C

	// Incumbent.
	best      V
	bestStack []int

	// Counters for Stats.
	nodes        int64
	pruned       int64
	improvements int64
}

func newEngine[V, C knapsack.Number](items []knapsack.Item[V, C], budget C, log logr.Logger) *engine[V, C] {
	return &engine[V, C]{
		items:     items,
		n:         len(items),
		log:       log,
		stack:     make([]int, 0, len(items)),
		left:      budget,
		bestStack: make([]int, 0, len(items)),
	}
}

// upperBound is the Dantzig bound for the items from pos onward given the
// current value and remaining budget: whole items while they fit, then the
// fractional part of the first one that does not.
func (e *engine[V, C]) upperBound(pos int, value V, left C) float64 {
	var (
		bound = float64(value)
		it    knapsack.Item[V, C]
	)
	for ; pos < e.n; pos++ {
		it = e.items[pos]
		if left < it.Cost {
			// it.Cost > left ≥ 0, so the division is safe.
			return bound + float64(left)*float64(it.Value)/float64(it.Cost)
		}
		left -= it.Cost
		bound += float64(it.Value)
	}

	return bound
}

// dive scans forward from pos, including every item that fits and whose
// bound still beats the incumbent. It returns false when the scan was cut
// short by the bound, true when it ran off the end of the list.
func (e *engine[V, C]) dive(pos int) bool {
	var it knapsack.Item[V, C]
	for ; pos < e.n; pos++ {
		it = e.items[pos]
		if e.left < it.Cost {
			continue // skip: does not fit
		}
		if e.upperBound(pos, e.value, e.left) <= float64(e.best) {
			e.pruned++
			return false
		}
		e.value += it.Value
		e.left -= it.Cost
		e.stack = append(e.stack, pos)
		e.nodes++
	}

	return true
}

// backtrack undoes the most recent include and returns the position the
// next scan starts from. The stack must not be empty.
func (e *engine[V, C]) backtrack() int {
	var top = e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	e.value -= e.items[top].Value
	e.left += e.items[top].Cost

	return top + 1
}

// record snapshots the current path as the new incumbent.
func (e *engine[V, C]) record() {
	e.best = e.value
	e.bestStack = append(e.bestStack[:0], e.stack...)
	e.improvements++
	e.log.V(2).Info("incumbent improved", "value", e.best, "depth", len(e.bestStack))
}

// search runs dive/backtrack rounds until the root scan is exhausted.
func (e *engine[V, C]) search() {
	var pos int
	for {
		if e.dive(pos) && e.value > e.best {
			e.record()
		}
		if len(e.stack) == 0 {
			return
		}
		pos = e.backtrack()
	}
}
