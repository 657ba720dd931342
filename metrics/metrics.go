// Package metrics records search outcomes as Prometheus series.
//
// Series:
//
//	gridpath_search_runs_total{algorithm,outcome}   counter
//	gridpath_search_expansions{algorithm}          histogram
//	gridpath_search_path_length{algorithm}         histogram
//	gridpath_search_duration_seconds{algorithm}    histogram
//
// Outcomes are "found", "no_path", "cancelled" and "invalid". Only found runs
// contribute to the path-length histogram; invalid runs only bump the counter.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/gridpath/search"
)

// Outcome labels.
const (
	OutcomeFound     = "found"
	OutcomeNoPath    = "no_path"
	OutcomeCancelled = "cancelled"
	OutcomeInvalid   = "invalid"
)

// Recorder owns the search series on its own registry.
type Recorder struct {
	registry *prometheus.Registry

	runs       *prometheus.CounterVec
	expansions *prometheus.HistogramVec
	pathLength *prometheus.HistogramVec
	duration   *prometheus.HistogramVec
}

// NewRecorder registers the search series on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,

		// runs counts searches by algorithm and outcome
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_search_runs_total",
			Help: "Total searches by algorithm and outcome",
		}, []string{"algorithm", "outcome"}),

		// expansions tracks cells expanded per search
		expansions: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridpath_search_expansions",
			Help:    "Cells expanded per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~260k
		}, []string{"algorithm"}),

		// pathLength tracks cells between start and end on found routes
		pathLength: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridpath_search_path_length",
			Help:    "Path cells between start and end for found routes",
			Buckets: []float64{0, 5, 10, 25, 50, 100, 250, 500, 1000},
		}, []string{"algorithm"}),

		// duration tracks wall time per search, including step callbacks
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridpath_search_duration_seconds",
			Help:    "Search duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 18), // 0.1ms to ~13s
		}, []string{"algorithm"}),
	}
}

// Observe records one search. err is the error returned by the search, if any.
func (r *Recorder) Observe(alg search.Algorithm, res search.Result, err error) {
	if r == nil {
		return
	}
	name := alg.String()
	outcome := Outcome(res, err)
	r.runs.WithLabelValues(name, outcome).Inc()
	if outcome == OutcomeInvalid {
		return
	}

	r.expansions.WithLabelValues(name).Observe(float64(res.Expanded))
	r.duration.WithLabelValues(name).Observe(res.Elapsed.Seconds())
	if outcome == OutcomeFound {
		r.pathLength.WithLabelValues(name).Observe(float64(res.PathLength))
	}
}

// Registry exposes the underlying registry for gathering in tests.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Outcome classifies a search result into one of the outcome labels.
func Outcome(res search.Result, err error) string {
	switch {
	case err != nil:
		return OutcomeInvalid
	case res.Cancelled:
		return OutcomeCancelled
	case res.Found:
		return OutcomeFound
	default:
		return OutcomeNoPath
	}
}
