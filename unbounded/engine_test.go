package unbounded

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack"
	"github.com/katalvlaran/knapsack/internal/knapsacktest"
	"github.com/katalvlaran/knapsack/internal/order"
)

// TestCopies_FloorDivision covers integer and float cost types.
func TestCopies_FloorDivision(t *testing.T) {
	ei := newEngine[int, int](nil, 0, logr.Discard())
	assert.False(t, ei.float)
	assert.Equal(t, 3, ei.copies(17, 5))
	assert.Equal(t, 0, ei.copies(4, 5))

	ef := newEngine[float64, float64](nil, 0, logr.Discard())
	assert.True(t, ef.float)
	assert.Equal(t, 2, ef.copies(1.0, 0.375))
	assert.Equal(t, 4, ef.copies(1.0, 0.25))
	assert.Equal(t, 0, ef.copies(0.2, 0.25))
}

// TestUpperBound_Values checks whole copies plus the next item's ratio.
func TestUpperBound_Values(t *testing.T) {
	items := []knapsack.Item[int, int]{
		{Value: 330, Cost: 150},
		{Value: 200, Cost: 100},
		{Value: 119, Cost: 60},
	}
	e := newEngine(items, 180, logr.Discard())

	// One copy of item 0, then 30 units at ratio 2.
	assert.Equal(t, 330.0+60.0, e.upperBound(0, 0, 180))
	// One copy of item 1, then 80 units at ratio 119/60.
	assert.InDelta(t, 200.0+80.0*119.0/60.0, e.upperBound(1, 0, 180), 1e-9)
	// Last item: whole copies only.
	assert.Equal(t, 357.0, e.upperBound(2, 0, 180))
	assert.Equal(t, 5.0, e.upperBound(3, 5, 180))
}

// TestUpperBound_Admissible checks the root bound never undercuts the optimum.
func TestUpperBound_Admissible(t *testing.T) {
	for seed := uint64(1); seed <= 60; seed++ {
		inst := knapsacktest.RandomPositive(seed, 1+int(seed%6), 50, 12, 30)
		sorted := order.ByRatio(inst)
		e := newEngine(sorted.Items, inst.Budget(), logr.Discard())

		opt := knapsacktest.ExhaustiveUnbounded(inst, 0)
		require.GreaterOrEqual(t, e.upperBound(0, 0, inst.Budget())+1e-9, float64(opt), "seed=%d", seed)
	}
}

// TestBacktrack_GivesBackOneCopy checks frame bookkeeping.
func TestBacktrack_GivesBackOneCopy(t *testing.T) {
	items := []knapsack.Item[int, int]{{Value: 10, Cost: 5}}
	e := newEngine(items, 17, logr.Discard())

	require.True(t, e.dive(0))
	assert.Equal(t, []frame{{pos: 0, count: 3}}, e.stack)
	assert.Equal(t, 30, e.value)
	assert.Equal(t, 2, e.left)

	assert.Equal(t, 1, e.backtrack())
	assert.Equal(t, []frame{{pos: 0, count: 2}}, e.stack)
	assert.Equal(t, 20, e.value)
	assert.Equal(t, 7, e.left)
}
