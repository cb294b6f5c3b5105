package observability

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registerOnce sync.Once

	oscSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scenectl",
			Subsystem: "osc",
			Name:      "messages_sent_total",
			Help:      "OSC messages handed to the socket.",
		},
		[]string{"kind", "param", "success"},
	)
	oscDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "scenectl",
			Subsystem: "osc",
			Name:      "inbound_dropped_total",
			Help:      "Inbound datagrams dropped: malformed or queue full.",
		},
	)
	parseWarnings = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "scenectl",
			Subsystem: "scene",
			Name:      "parse_warnings_total",
			Help:      "Scene-file fields skipped by the parser.",
		},
	)
	applyPasses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scenectl",
			Subsystem: "apply",
			Name:      "passes_total",
			Help:      "Watch-loop apply passes, by outcome.",
		},
		[]string{"outcome"},
	)
	applyDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "scenectl",
			Subsystem: "apply",
			Name:      "pass_duration_seconds",
			Help:      "Apply pass duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(oscSent, oscDropped, parseWarnings, applyPasses, applyDuration)
	})
}

func RecordSend(kind, param string, success bool) {
	RegisterMetrics()
	oscSent.WithLabelValues(kind, param, strconv.FormatBool(success)).Inc()
}

func RecordInboundDropped() {
	RegisterMetrics()
	oscDropped.Inc()
}

func RecordParseWarnings(n int) {
	RegisterMetrics()
	parseWarnings.Add(float64(n))
}

func RecordApplyPass(outcome string, duration time.Duration) {
	RegisterMetrics()
	applyPasses.WithLabelValues(outcome).Inc()
	applyDuration.Observe(duration.Seconds())
}

// ServeMetrics exposes the Prometheus endpoint on addr. It blocks, so run
// it on its own goroutine; an empty addr disables the endpoint.
func ServeMetrics(addr string) error {
	if addr == "" {
		return nil
	}
	RegisterMetrics()
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(addr, mux)
}
