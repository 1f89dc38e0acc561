package dp

import "github.com/katalvlaran/knapsack"

// table is a rows×cols grid of values backed by a single allocation;
// t[i][w] addresses row i, capacity w.
type table[V knapsack.Number] [][]V

func newTable[V knapsack.Number](rows, cols int) table[V] {
	var (
		buf = make([]V, rows*cols)
		t   = make(table[V], rows)
		i   int
	)
	for i = range t {
		t[i] = buf[i*cols : (i+1)*cols : (i+1)*cols]
	}

	return t
}

// cells returns rows·cols as reported in Stats.
func (t table[V]) cells() int64 {
	if len(t) == 0 {
		return 0
	}

	return int64(len(t)) * int64(len(t[0]))
}
