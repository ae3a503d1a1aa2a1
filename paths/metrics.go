package paths

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	modeSequential = "sequential"
	modeParallel   = "parallel"
)

const (
	resultOK          = "ok"
	resultUnreachable = "unreachable"
	resultBound       = "bound"
	resultCanceled    = "canceled"
	resultError       = "error"
)

var (
	// searchesTotal counts Count calls that got past validation.
	// Labels: policy, mode ("sequential", "parallel"),
	// result ("ok", "unreachable", "bound", "canceled", "error").
	searchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cavepaths_searches_total",
		Help: "Path counting searches by policy, mode and result",
	}, []string{"policy", "mode", "result"})

	pathsCountedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cavepaths_paths_counted_total",
		Help: "Paths counted by successful searches",
	}, []string{"policy"})

	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cavepaths_search_duration_seconds",
		Help:    "Wall time of a path counting search",
		Buckets: []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1, 1, 10},
	}, []string{"policy"})
)

func observe(p Policy, mode, result string, n int64, began time.Time) {
	searchesTotal.WithLabelValues(p.String(), mode, result).Inc()
	searchDuration.WithLabelValues(p.String()).Observe(time.Since(began).Seconds())
	if n > 0 {
		pathsCountedTotal.WithLabelValues(p.String()).Add(float64(n))
	}
}

func classify(err error) string {
	switch {
	case errors.Is(err, ErrSearchBound):
		return resultBound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return resultCanceled
	}

	return resultError
}
