package knapsack

// Solution is a 0/1 selection over the items of an Instance.
//
// Value and Cost are recomputed from the selection and the instance on every
// call, so they can never drift from the selection. The Instance must outlive
// the Solution and must not change while the Solution is read.
type Solution[V, C Number] struct {
	inst  *Instance[V, C]
	taken []bool
}

// NewSolution returns an empty selection (nothing taken) sized for inst.
func NewSolution[V, C Number](inst *Instance[V, C]) *Solution[V, C] {
	return &Solution[V, C]{
		inst:  inst,
		taken: make([]bool, inst.Len()),
	}
}

// Instance returns the instance this solution refers to.
func (s *Solution[V, C]) Instance() *Instance[V, C] { return s.inst }

// Len returns the number of items the selection covers.
func (s *Solution[V, C]) Len() int { return len(s.taken) }

// Add marks item i as taken.
func (s *Solution[V, C]) Add(i int) { s.taken[i] = true }

// Remove marks item i as not taken.
func (s *Solution[V, C]) Remove(i int) { s.taken[i] = false }

// Set marks item i as taken or not.
func (s *Solution[V, C]) Set(i int, taken bool) { s.taken[i] = taken }

// IsTaken reports whether item i is selected.
func (s *Solution[V, C]) IsTaken(i int) bool { return s.taken[i] }

// Indices returns the selected item indices in ascending order.
func (s *Solution[V, C]) Indices() []int {
	out := make([]int, 0, len(s.taken))
	for i, t := range s.taken {
		if t {
			out = append(out, i)
		}
	}

	return out
}

// Value returns the total value of the selected items.
func (s *Solution[V, C]) Value() V {
	var sum V
	for i, t := range s.taken {
		if t {
			sum += s.inst.items[i].Value
		}
	}

	return sum
}

// Cost returns the total cost of the selected items.
func (s *Solution[V, C]) Cost() C {
	var sum C
	for i, t := range s.taken {
		if t {
			sum += s.inst.items[i].Cost
		}
	}

	return sum
}

// Feasible reports whether Cost() ≤ Budget().
func (s *Solution[V, C]) Feasible() bool { return s.Cost() <= s.inst.budget }

// MultiSolution is an unbounded selection: a non-negative take-count per item.
// Like Solution, totals are derived from the counts on every call.
type MultiSolution[V, C Number] struct {
	inst   *Instance[V, C]
	counts []int
}

// NewMultiSolution returns an all-zero selection sized for inst.
func NewMultiSolution[V, C Number](inst *Instance[V, C]) *MultiSolution[V, C] {
	return &MultiSolution[V, C]{
		inst:   inst,
		counts: make([]int, inst.Len()),
	}
}

// Instance returns the instance this solution refers to.
func (s *MultiSolution[V, C]) Instance() *Instance[V, C] { return s.inst }

// Len returns the number of items the selection covers.
func (s *MultiSolution[V, C]) Len() int { return len(s.counts) }

// Add takes one more copy of item i.
func (s *MultiSolution[V, C]) Add(i int) { s.counts[i]++ }

// Remove drops every copy of item i.
func (s *MultiSolution[V, C]) Remove(i int) { s.counts[i] = 0 }

// Set stores the take-count of item i. Negative counts are clamped to zero.
func (s *MultiSolution[V, C]) Set(i, n int) { s.counts[i] = max(n, 0) }

// Count returns how many copies of item i are taken.
func (s *MultiSolution[V, C]) Count(i int) int { return s.counts[i] }

// IsTaken reports whether at least one copy of item i is taken.
func (s *MultiSolution[V, C]) IsTaken(i int) bool { return s.counts[i] > 0 }

// Counts returns a copy of the per-item take-counts in index order.
func (s *MultiSolution[V, C]) Counts() []int {
	out := make([]int, len(s.counts))
	copy(out, s.counts)

	return out
}

// Value returns Σ count[i]·value[i].
func (s *MultiSolution[V, C]) Value() V {
	var sum V
	for i, n := range s.counts {
		if n > 0 {
			sum += V(n) * s.inst.items[i].Value
		}
	}

	return sum
}

// Cost returns Σ count[i]·cost[i].
func (s *MultiSolution[V, C]) Cost() C {
	var sum C
	for i, n := range s.counts {
		if n > 0 {
			sum += C(n) * s.inst.items[i].Cost
		}
	}

	return sum
}

// Feasible reports whether Cost() ≤ Budget().
func (s *MultiSolution[V, C]) Feasible() bool { return s.Cost() <= s.inst.budget }
