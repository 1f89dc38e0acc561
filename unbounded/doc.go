// Package unbounded solves the unbounded knapsack problem exactly by
// branch-and-bound: every item may be taken any non-negative number of
// times, limited only by the budget.
//
// The search discipline is the one of package bnb, generalised to carry a
// take-count per stack entry:
//
//   - Dive: at each position whose item fits, take the greedy maximum
//     ⌊budgetLeft/cost⌋ copies and push (position, count).
//   - Backtrack: take one copy fewer of the top entry and resume scanning
//     at the next position; pop the entry once its count reaches zero.
//     An optimum may use fewer than the greedy maximum of an item while
//     still taking items after it, hence the decrement-then-retry.
//
// Bound: the item at the current position contributes its greedy maximum
// number of whole copies; the capacity that remains is valued at the ratio
// of the next item, fractionally. This is the linear relaxation under the
// valid cut x ≤ ⌊budgetLeft/cost⌋ and is therefore never below the integral
// optimum of the subtree. Continuing to pack whole copies of later items
// before the fractional step would be tighter but is not a valid bound.
//
// Zero-cost items: taking more copies of a positive-value zero-cost item
// never stops paying, so each zero-cost item is taken exactly once and kept
// out of the multiplicity search.
//
// Complexity: exponential worst case; the stack holds at most one entry per
// surviving item, so memory is O(n).
package unbounded
