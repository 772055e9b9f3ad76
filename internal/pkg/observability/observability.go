package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "codeshare"
)

var (
	FormatDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "format", "duration_seconds"),
		Help:    "Duration of formatting engine invocations in seconds",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
	}, []string{"result"})
	SnippetCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "snippet", "created_total"),
		Help: "Number of snippets persisted",
	})
	HighlightFallbackTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "highlight", "fallback_total"),
		Help: "Number of highlight invocations degraded to the plain-text fallback",
	})
)
