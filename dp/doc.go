// Package dp solves knapsack problems with integral costs by dynamic
// programming over (item prefix × remaining capacity).
//
// 🚀 Entry points:
//
//   - Solve          : 0/1 variant; materialises the full (n+1)×(budget+1)
//     table and walks it backwards to recover the chosen items.
//   - OptimalValue   : 0/1 variant, value only; keeps a single rolling row,
//     O(budget) memory, no reconstruction.
//   - SolveUnbounded : unbounded variant with reconstruction of take-counts.
//
// Table (0/1):
//
//	dp[0][w] = 0
//	dp[i][w] = dp[i-1][w]                                    if w < cost[i-1]
//	         = max(dp[i-1][w], dp[i-1][w-cost[i-1]] + value[i-1])  otherwise
//
// Reconstruction starts at dp[n][budget] and walks rows i = n..1: item i-1
// was taken iff dp[i][w] > dp[i-1][w], in which case w drops by its cost.
//
// Memory modes, in the same spirit as a full-matrix vs rolling-array DTW:
//
//	Solve / SolveUnbounded  O(n·budget) memory, selection recovered
//	OptimalValue            O(budget) memory, value only
//
// Cost must be an integer type: capacities are table offsets. Values may be
// any integer or float type.
//
// Complexity: O(n·budget) time for all three.
package dp
