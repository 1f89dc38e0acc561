// Package bnb solves the 0/1 knapsack problem exactly by branch-and-bound.
//
// Each item is taken at most once. The search walks the include/skip tree
// depth-first over items sorted by descending value/cost ratio and prunes
// every subtree whose linear-relaxation (Dantzig) bound cannot beat the
// best complete selection found so far.
//
// Rationale (succinct):
//  1. Items whose cost alone exceeds the budget are dropped; the rest are
//     sorted by ratio (stable, zero-cost items first with ratio +Inf).
//  2. Bound: from a position, add whole items while they fit, then the
//     fractional share budgetLeft·value/cost of the first that does not.
//     No completion of the current partial selection can exceed it.
//  3. Search: iterative, no recursion. Only "include" decisions are pushed;
//     "skip" is the cursor moving on. A dive phase scans forward pushing
//     items that fit; a backtrack phase pops the last include, restores the
//     running value and budget, and resumes the scan right after it.
//  4. Every combination reachable in sorted order is visited at most once;
//     the stack never holds more entries than there are surviving items.
//
// Complexity:
//   - Worst case exponential in n (exact search); pruning does the real work.
//   - Per node: O(n) bound evaluation.
//   - Memory: O(n) for the stack, the incumbent and the sorted copy.
//
// Usage:
//
//	sol := bnb.Solve(inst, knapsack.WithLogger(logger))
//	fmt.Println(sol.Value(), sol.Indices())
package bnb
