package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Gacha Metrics
var (
	RollsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRollsTotal,
			Help: HelpTextRollsTotal,
		},
		[]string{LabelOutcome},
	)

	DropsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDropsTotal,
			Help: HelpTextDropsTotal,
		},
		[]string{LabelRarity},
	)

	ShortBatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameShortBatchesTotal,
			Help: HelpTextShortBatchesTotal,
		},
		[]string{LabelReason},
	)
)

// Image Generation Metrics
var (
	ImageGenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameImageGenerationsTotal,
			Help: HelpTextImageGenerationsTotal,
		},
		[]string{LabelResult},
	)

	ImageGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameImageGenerationSeconds,
			Help:    HelpTextImageGenerationSeconds,
			Buckets: GenerationLatencyBuckets,
		},
	)

	AsyncCallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAsyncCallbacksTotal,
			Help: HelpTextAsyncCallbacksTotal,
		},
		[]string{LabelStatus},
	)
)

// Background Work Metrics
var (
	BackfillRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBackfillRunsTotal,
			Help: HelpTextBackfillRunsTotal,
		},
		[]string{LabelResult},
	)

	WorkerQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameWorkerQueueDepth,
			Help: HelpTextWorkerQueueDepth,
		},
	)

	StreamClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameStreamClients,
			Help: HelpTextStreamClients,
		},
	)

	StreamEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStreamEventsTotal,
			Help: HelpTextStreamEventsTotal,
		},
		[]string{LabelType, LabelResult},
	)
)
