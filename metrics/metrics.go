// Package metrics exports solver statistics to Prometheus.
//
// A Recorder implements knapsack.Observer; hand it to any solver with
// knapsack.WithObserver and every solve call updates the counters below,
// labelled by solver name ("dp", "dp-value", "dp-unbounded", "bnb",
// "unbounded"):
//
//	<ns>_solves_total                  solve calls
//	<ns>_search_nodes_total            include decisions pushed (BnB)
//	<ns>_pruned_total                  subtrees cut by the bound (BnB)
//	<ns>_improvements_total            incumbent updates (BnB)
//	<ns>_dp_cells_total                table cells evaluated (DP)
//	<ns>_solve_duration_seconds        solve wall-clock time (histogram)
//
// The namespace defaults to "knapsack".
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/knapsack"
)

// DefaultNamespace prefixes every metric name unless WithNamespace is used.
const DefaultNamespace = "knapsack"

// ErrNilRegisterer is returned by NewRecorder when reg is nil.
var ErrNilRegisterer = errors.New("metrics: registerer is nil")

// Recorder turns knapsack.Stats into Prometheus metrics.
// It is safe for concurrent use.
type Recorder struct {
	solves       *prometheus.CounterVec
	nodes        *prometheus.CounterVec
	pruned       *prometheus.CounterVec
	improvements *prometheus.CounterVec
	cells        *prometheus.CounterVec
	duration     *prometheus.HistogramVec
}

var _ knapsack.Observer = (*Recorder)(nil)

type config struct {
	namespace string
	buckets   []float64
}

// RecorderOption configures NewRecorder.
type RecorderOption func(*config)

// WithNamespace overrides DefaultNamespace.
func WithNamespace(ns string) RecorderOption {
	return func(c *config) {
		c.namespace = ns
	}
}

// WithBuckets overrides the duration histogram buckets (seconds).
func WithBuckets(b []float64) RecorderOption {
	return func(c *config) {
		c.buckets = b
	}
}

// NewRecorder creates the metric vectors and registers them with reg.
//
// Errors:
//   - ErrNilRegisterer if reg is nil.
//   - a wrapped prometheus registration error (e.g. AlreadyRegisteredError
//     when two recorders share a namespace on one registry).
func NewRecorder(reg prometheus.Registerer, opts ...RecorderOption) (*Recorder, error) {
	if reg == nil {
		return nil, ErrNilRegisterer
	}
	cfg := config{
		namespace: DefaultNamespace,
		buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12), // 1µs to ~4s
	}
	for _, fn := range opts {
		fn(&cfg)
	}

	labels := []string{"solver"}
	counter := func(name, help string) *prometheus.CounterVec {
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.namespace,
			Name:      name,
			Help:      help,
		}, labels)
	}

	r := &Recorder{
		solves:       counter("solves_total", "Solve calls by solver."),
		nodes:        counter("search_nodes_total", "Include decisions pushed on the branch-and-bound stack."),
		pruned:       counter("pruned_total", "Subtrees cut by the relaxation bound."),
		improvements: counter("improvements_total", "Incumbent improvements during branch-and-bound."),
		cells:        counter("dp_cells_total", "Dynamic-programming table cells evaluated."),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: cfg.namespace,
			Name:      "solve_duration_seconds",
			Help:      "Solve wall-clock duration in seconds.",
			Buckets:   cfg.buckets,
		}, labels),
	}

	for _, c := range []prometheus.Collector{r.solves, r.nodes, r.pruned, r.improvements, r.cells, r.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register collector: %w", err)
		}
	}

	return r, nil
}

// ObserveSolve records st.
func (r *Recorder) ObserveSolve(st knapsack.Stats) {
	r.solves.WithLabelValues(st.Solver).Inc()
	r.nodes.WithLabelValues(st.Solver).Add(float64(st.Nodes))
	r.pruned.WithLabelValues(st.Solver).Add(float64(st.Pruned))
	r.improvements.WithLabelValues(st.Solver).Add(float64(st.Improvements))
	r.cells.WithLabelValues(st.Solver).Add(float64(st.Cells))
	r.duration.WithLabelValues(st.Solver).Observe(st.Elapsed.Seconds())
}
