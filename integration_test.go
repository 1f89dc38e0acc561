package knapsack_test

import (
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/katalvlaran/knapsack"
	"github.com/katalvlaran/knapsack/bnb"
	"github.com/katalvlaran/knapsack/dp"
	"github.com/katalvlaran/knapsack/internal/knapsacktest"
	"github.com/katalvlaran/knapsack/unbounded"
)

func instanceOf(budget int, pairs ...[2]int) *knapsack.Instance[int, int] {
	inst := knapsack.NewInstance[int, int](budget)
	for _, p := range pairs {
		inst.AddItem(p[0], p[1])
	}

	return inst
}

var _ = Describe("0/1 solvers", func() {
	solvers := map[string]knapsack.Solver[int, int]{
		"dp":  dp.New[int, int](),
		"bnb": bnb.New[int, int](),
	}

	DescribeTable("concrete scenarios",
		func(inst *knapsack.Instance[int, int], wantValue int, wantIdx []int) {
			for name, s := range solvers {
				sol := s.Solve(inst)
				Expect(sol.Value()).To(Equal(wantValue), name)
				Expect(sol.Indices()).To(Equal(wantIdx), name)
				Expect(sol.Feasible()).To(BeTrue(), name)
			}
		},
		Entry("classic three items", instanceOf(50, [2]int{60, 10}, [2]int{100, 20}, [2]int{120, 30}), 220, []int{1, 2}),
		Entry("best ratio item second", instanceOf(10, [2]int{10, 5}, [2]int{40, 4}, [2]int{30, 6}), 70, []int{1, 2}),
		Entry("zero budget", instanceOf(0, [2]int{5, 1}, [2]int{7, 2}), 0, []int{}),
		Entry("no items", instanceOf(10), 0, []int{}),
		Entry("zero-cost item with zero budget", instanceOf(0, [2]int{5, 0}, [2]int{1, 1}), 5, []int{0}),
		Entry("zero-value zero-cost item", instanceOf(3, [2]int{0, 0}, [2]int{4, 3}), 4, []int{0, 1}),
		Entry("single item filling the budget", instanceOf(7, [2]int{9, 7}), 9, []int{0}),
		Entry("every item too expensive", instanceOf(4, [2]int{9, 5}, [2]int{8, 6}), 0, []int{}),
	)

	It("agrees with exhaustive enumeration and across engines", func() {
		for seed := uint64(1); seed <= 60; seed++ {
			n := int(seed%12) + 1
			inst := knapsacktest.Random(seed, n, 50, 20, 40)
			want := knapsacktest.Exhaustive01(inst)

			a, b := dp.Solve(inst), bnb.Solve(inst)
			Expect(a.Value()).To(Equal(want), "dp seed=%d", seed)
			Expect(b.Value()).To(Equal(want), "bnb seed=%d", seed)
			Expect(dp.OptimalValue(inst)).To(Equal(want), "dp value seed=%d", seed)
			Expect(a.Feasible()).To(BeTrue())
			Expect(b.Feasible()).To(BeTrue())
		}
	})

	It("is deterministic", func() {
		inst := knapsacktest.Random(7, 15, 30, 10, 35)
		Expect(bnb.Solve(inst).Indices()).To(Equal(bnb.Solve(inst).Indices()))
		Expect(dp.Solve(inst).Indices()).To(Equal(dp.Solve(inst).Indices()))
	})

	It("never loses value when the budget grows", func() {
		inst := knapsacktest.RandomPositive(11, 10, 40, 12, 0)
		prevDP, prevBnB := 0, 0
		for b := 0; b <= 60; b++ {
			inst.SetBudget(b)
			v1, v2 := dp.Solve(inst).Value(), bnb.Solve(inst).Value()
			Expect(v1).To(BeNumerically(">=", prevDP))
			Expect(v2).To(BeNumerically(">=", prevBnB))
			Expect(v1).To(Equal(v2))
			prevDP, prevBnB = v1, v2
		}
	})

	It("solves one shared instance from several goroutines", func() {
		inst := knapsacktest.Random(3, 18, 100, 25, 60)
		wantValue := dp.OptimalValue(inst)

		var (
			wg  sync.WaitGroup
			mu  sync.Mutex
			got [][]int
		)
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				idx := bnb.Solve(inst).Indices()
				mu.Lock()
				got = append(got, idx)
				mu.Unlock()
			}()
		}
		wg.Wait()

		Expect(got).To(HaveLen(8))
		for _, idx := range got {
			sol := knapsack.NewSolution(inst)
			for _, i := range idx {
				sol.Add(i)
			}
			Expect(sol.Value()).To(Equal(wantValue))
			Expect(sol.Feasible()).To(BeTrue())
		}
	})

	It("handles float instances", func() {
		inst := knapsack.NewInstance[float64, float64](4.5)
		inst.AddItem(3.0, 2.0)
		inst.AddItem(2.5, 1.5)
		inst.AddItem(1.0, 2.5)
		inst.AddItem(0.5, 0)

		sol := bnb.Solve(inst)
		Expect(sol.Value()).To(Equal(knapsacktest.Exhaustive01(inst)))
		Expect(sol.Value()).To(Equal(6.0))
		Expect(sol.IsTaken(3)).To(BeTrue())
	})
})

var _ = Describe("unbounded solvers", func() {
	solvers := map[string]knapsack.MultiSolver[int, int]{
		"dp":        dp.NewUnbounded[int, int](),
		"unbounded": unbounded.New[int, int](),
	}

	DescribeTable("concrete scenarios",
		func(inst *knapsack.Instance[int, int], wantValue int, wantCounts []int) {
			for name, s := range solvers {
				sol := s.Solve(inst)
				Expect(sol.Value()).To(Equal(wantValue), name)
				Expect(sol.Counts()).To(Equal(wantCounts), name)
				Expect(sol.Feasible()).To(BeTrue(), name)
			}
		},
		Entry("single item, residual capacity", instanceOf(17, [2]int{10, 5}), 30, []int{3}),
		Entry("fewer copies of the best item", instanceOf(180, [2]int{330, 150}, [2]int{200, 100}, [2]int{119, 60}), 357, []int{0, 0, 3}),
		Entry("zero budget", instanceOf(0, [2]int{4, 1}), 0, []int{0}),
		Entry("zero-cost item taken once", instanceOf(3, [2]int{5, 0}, [2]int{2, 2}), 7, []int{1, 1}),
	)

	It("agrees with exhaustive enumeration and across engines", func() {
		for seed := uint64(1); seed <= 40; seed++ {
			n := int(seed%6) + 1
			inst := knapsacktest.Random(seed, n, 30, 9, 24)
			want := knapsacktest.ExhaustiveUnbounded(inst, 0)

			a, b := dp.SolveUnbounded(inst), unbounded.Solve(inst)
			Expect(a.Value()).To(Equal(want), "dp seed=%d", seed)
			Expect(b.Value()).To(Equal(want), "bnb seed=%d", seed)
			Expect(a.Feasible()).To(BeTrue())
			Expect(b.Feasible()).To(BeTrue())
		}
	})

	It("respects the single-item lower bound ⌊B/c⌋·v", func() {
		for b := 0; b <= 40; b++ {
			inst := instanceOf(b, [2]int{7, 3})
			Expect(unbounded.Solve(inst).Value()).To(BeNumerically(">=", (b/3)*7))
		}
	})

	It("dominates the 0/1 optimum", func() {
		for seed := uint64(100); seed < 120; seed++ {
			inst := knapsacktest.RandomPositive(seed, 8, 40, 10, 30)
			Expect(unbounded.Solve(inst).Value()).To(BeNumerically(">=", bnb.Solve(inst).Value()))
		}
	})
})
