package solver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("heatpath.solver")

// Result labels for solveTotal.
const (
	resultOK          = "ok"
	resultUnreachable = "unreachable"
	resultError       = "error"
)

var (
	// solveTotal counts searches by variant and outcome
	solveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "heatpath_solve_total",
		Help: "Total constrained searches by variant and result",
	}, []string{"variant", "result"})

	// solveDuration tracks search latency
	solveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "heatpath_solve_duration_seconds",
		Help:    "Constrained search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~800ms
	}, []string{"variant"})

	// settledStates tracks how many states a search finalized
	settledStates = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "heatpath_settled_states",
		Help:    "States settled per constrained search",
		Buckets: prometheus.ExponentialBuckets(16, 4, 10),
	}, []string{"variant"})

	// parseErrors counts inputs rejected before any search
	parseErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "heatpath_parse_errors_total",
		Help: "Total inputs rejected as malformed grids",
	})
)
