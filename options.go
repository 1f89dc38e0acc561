package knapsack

import (
	"time"

	"github.com/go-logr/logr"
)

// Stats summarises one solve call. Counters that do not apply to an engine
// stay zero (DP solvers fill Cells, branch-and-bound solvers fill Nodes,
// Pruned and Improvements).
type Stats struct {
	Solver       string        // engine name: "dp", "dp-value", "dp-unbounded", "bnb", "unbounded"
	Items        int           // items in the instance
	Candidates   int           // items that survived the cost > budget filter
	Nodes        int64         // include decisions pushed on the search stack
	Pruned       int64         // subtrees cut by the relaxation bound
	Improvements int64         // incumbent updates
	Cells        int64         // DP table cells evaluated
	Elapsed      time.Duration // wall-clock time of the call
}

// Observer receives the Stats of every solve call.
// Implementations must be safe for concurrent use if solvers run concurrently.
type Observer interface {
	ObserveSolve(st Stats)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(st Stats)

// ObserveSolve calls f(st).
func (f ObserverFunc) ObserveSolve(st Stats) { f(st) }

// NopObserver discards everything.
type NopObserver struct{}

// ObserveSolve does nothing.
func (NopObserver) ObserveSolve(Stats) {}

// Options configures the ambient behaviour shared by all solvers. None of
// the fields influence which selection is returned.
//
// Logger   – receives one V(1) "solve finished" line per call and one V(2)
// line per incumbent improvement. Default: logr.Discard().
//
// Observer – receives the Stats of every call. Default: NopObserver.
type Options struct {
	Logger   logr.Logger
	Observer Observer
}

// Option represents a functional option for configuring a solver.
type Option func(*Options)

// DefaultOptions returns silent options: no logging, no observation.
func DefaultOptions() Options {
	return Options{
		Logger:   logr.Discard(),
		Observer: NopObserver{},
	}
}

// NewOptions applies opts on top of DefaultOptions. Nil options are skipped.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithLogger sets the logger used for solve summaries and search tracing.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithObserver sets the Stats observer. A nil observer restores NopObserver.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs == nil {
			obs = NopObserver{}
		}
		o.Observer = obs
	}
}

// Report logs the summary of st at V(1) and hands st to the observer.
// Solver packages call it exactly once per solve.
func (o Options) Report(st Stats) {
	o.Logger.V(1).Info("solve finished",
		"solver", st.Solver,
		"items", st.Items,
		"candidates", st.Candidates,
		"nodes", st.Nodes,
		"pruned", st.Pruned,
		"improvements", st.Improvements,
		"cells", st.Cells,
	)
	if o.Observer != nil {
		o.Observer.ObserveSolve(st)
	}
}
