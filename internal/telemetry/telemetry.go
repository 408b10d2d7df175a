// Package telemetry provides Prometheus metrics and OpenTelemetry tracing
// for the botsift service.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "botsift"

// Metrics holds the service's Prometheus metrics.
type Metrics struct {
	BatchesAnalyzed prometheus.Counter
	CommentsScored  prometheus.Counter
	SuspiciousFound prometheus.Counter
	ScoreDuration   prometheus.Histogram
	BatchSize       prometheus.Histogram
	FlagTotal       *prometheus.CounterVec
	SecondaryCalls  *prometheus.CounterVec
	FetchedComments prometheus.Counter
	FetchFailures   prometheus.Counter
}

// Provider wraps the tracer and metrics.
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics.
func NewProvider() *Provider {
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(),
	}
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics() *Metrics {
	return &Metrics{
		BatchesAnalyzed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "botsift_batches_analyzed_total",
			Help: "Total comment batches analyzed",
		}),
		CommentsScored: promauto.NewCounter(prometheus.CounterOpts{
			Name: "botsift_comments_scored_total",
			Help: "Total comments scored",
		}),
		SuspiciousFound: promauto.NewCounter(prometheus.CounterOpts{
			Name: "botsift_suspicious_total",
			Help: "Total comments at or above the suspicious threshold",
		}),
		ScoreDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "botsift_score_duration_seconds",
			Help:    "Time to score one batch",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		}),
		BatchSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "botsift_batch_size",
			Help:    "Comments per analyzed batch",
			Buckets: []float64{1, 10, 25, 50, 100, 200, 500, 1000},
		}),
		FlagTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "botsift_flags_total",
			Help: "Total triggered flags by label",
		}, []string{"flag"}),
		SecondaryCalls: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "botsift_secondary_calls_total",
			Help: "Secondary classifier calls by outcome",
		}, []string{"outcome"}),
		FetchedComments: promauto.NewCounter(prometheus.CounterOpts{
			Name: "botsift_fetched_comments_total",
			Help: "Total comments fetched from the comment API",
		}),
		FetchFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "botsift_fetch_failures_total",
			Help: "Failed comment fetches",
		}),
	}
}

// RecordBatch records the metrics for one scored batch.
func (m *Metrics) RecordBatch(size, suspicious int, duration time.Duration) {
	m.BatchesAnalyzed.Inc()
	m.CommentsScored.Add(float64(size))
	m.SuspiciousFound.Add(float64(suspicious))
	m.ScoreDuration.Observe(duration.Seconds())
	m.BatchSize.Observe(float64(size))
}

// StartSpan starts a tracing span for one analysis.
func (p *Provider) StartSpan(ctx context.Context, name string, batchSize int) (context.Context, trace.Span) {
	return p.Tracer.Start(ctx, name, trace.WithAttributes(
		attribute.Int("batch.size", batchSize),
	))
}
