// Package knapsack is an exact-optimization kernel for the knapsack family:
// given a budget and an ordered list of (value, cost) items, pick the
// multiset of items with the greatest total value whose total cost stays
// within the budget.
//
// 🚀 What is in the box?
//
//	A small, dependency-light library that brings together:
//		• Model: Item, Instance, Solution (0/1) and MultiSolution (unbounded)
//		• dp/:        dynamic programming for 0/1 (full table + reconstruction,
//		              or value-only rolling row) and for the unbounded variant
//		• bnb/:       iterative branch-and-bound for 0/1 (Dantzig bound)
//		• unbounded/: iterative branch-and-bound for the unbounded variant
//		• metrics/:   a Prometheus observer for solver statistics
//
// ✨ Guarantees:
//
//   - Exact – every solver returns a provably optimal selection.
//   - Deterministic – stable ratio ordering; same input ⇒ same selection.
//   - Synchronous – no goroutines, no I/O, no blocking; safe to run several
//     solvers concurrently on one Instance as long as nobody mutates it.
//   - Generic – Value and Cost are any integer or float type; the DP solvers
//     additionally require an integral Cost (capacity is a table index).
//
// Preconditions (not checked by the solvers): budget ≥ 0, costs ≥ 0,
// values ≥ 0. Instance.Validate reports violations for callers who want
// the check. Numeric overflow is the caller's concern: pick wide enough types.
//
// Quick example:
//
//	inst := knapsack.NewInstance[int, int](50)
//	inst.AddItem(60, 10)
//	inst.AddItem(100, 20)
//	inst.AddItem(120, 30)
//
//	sol := bnb.Solve(inst)
//	fmt.Println(sol.Value(), sol.Indices()) // 220 [1 2]
//
// Zero-cost items have ratio +Inf, sort first and are always part of the
// returned 0/1 selection. In the unbounded variant each zero-cost item is
// taken exactly once (more copies would make the objective unbounded).
//
//	go get github.com/katalvlaran/knapsack
package knapsack
