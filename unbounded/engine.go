package unbounded

import (
	"math"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/knapsack"
)

// frame is one stack entry: count copies of the item at sorted position pos.
type frame struct {
	pos   int
	count int
}

// engine holds the search state of one solve call. Every item in items has
// a strictly positive cost; zero-cost items are handled before the search.
type engine[V, C knapsack.Number] struct {
	items []knapsack.Item[V, C]
	n     int
	float bool // C is a floating-point type: copies need an explicit floor
	log   logr.Logger

	stack []frame
	value V
	left  C

	best      V
	bestStack []frame

	nodes        int64
	pruned       int64
	improvements int64
}

func newEngine[V, C knapsack.Number](items []knapsack.Item[V, C], budget C, log logr.Logger) *engine[V, C] {
	var one C = 1

	return &engine[V, C]{
		items:     items,
		n:         len(items),
		float:     one/2 != 0,
		log:       log,
		stack:     make([]frame, 0, len(items)),
		left:      budget,
		bestStack: make([]frame, 0, len(items)),
	}
}

// copies returns ⌊left/cost⌋ for a positive cost.
func (e *engine[V, C]) copies(left, cost C) int {
	q := left / cost
	if e.float {
		return int(math.Floor(float64(q)))
	}

	return int(q)
}

// upperBound values the subtree rooted at pos: whole copies of the item at
// pos, then the leftover capacity at the ratio of the following item.
func (e *engine[V, C]) upperBound(pos int, value V, left C) float64 {
	if pos >= e.n {
		return float64(value)
	}
	var (
		it    = e.items[pos]
		k     = e.copies(left, it.Cost)
		bound = float64(value) + float64(k)*float64(it.Value)
	)
	left -= C(k) * it.Cost
	if left > 0 && pos+1 < e.n {
		next := e.items[pos+1]
		bound += float64(left) * float64(next.Value) / float64(next.Cost)
	}

	return bound
}

// dive scans forward from pos, taking the greedy maximum of every item that
// fits while the bound still beats the incumbent. It returns false when the
// bound cut the scan short.
func (e *engine[V, C]) dive(pos int) bool {
	var (
		it knapsack.Item[V, C]
		k  int
	)
	for ; pos < e.n; pos++ {
		it = e.items[pos]
		if e.left < it.Cost {
			continue
		}
		if e.upperBound(pos, e.value, e.left) <= float64(e.best) {
			e.pruned++
			return false
		}
		k = e.copies(e.left, it.Cost) // ≥ 1 because the item fits
		e.value += V(k) * it.Value
		e.left -= C(k) * it.Cost
		e.stack = append(e.stack, frame{pos: pos, count: k})
		e.nodes++
	}

	return true
}

// backtrack gives back one copy of the top entry, pops it when no copy is
// left, and returns the position the next scan starts from.
func (e *engine[V, C]) backtrack() int {
	var (
		top = &e.stack[len(e.stack)-1]
		it  = e.items[top.pos]
		pos = top.pos + 1
	)
	e.value -= it.Value
	e.left += it.Cost
	top.count--
	if top.count == 0 {
		e.stack = e.stack[:len(e.stack)-1]
	}

	return pos
}

func (e *engine[V, C]) record() {
	e.best = e.value
	e.bestStack = append(e.bestStack[:0], e.stack...)
	e.improvements++
	e.log.V(2).Info("incumbent improved", "value", e.best, "depth", len(e.bestStack))
}

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
