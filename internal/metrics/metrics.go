package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sertdev/ctxscale/internal/translate"
)

// Metrics holds all Prometheus metric collectors for ctxscale.
type Metrics struct {
	Registry          *prometheus.Registry
	RequestsTotal     *prometheus.CounterVec
	RequestDuration   *prometheus.HistogramVec
	TranslationsTotal *prometheus.CounterVec
	RawPromptTokens   *prometheus.HistogramVec
	DisplayRatio      *prometheus.HistogramVec
	Compression       prometheus.Histogram
}

// New creates and registers a new Metrics instance using a dedicated registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		Registry: reg,

		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ctxscale_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "path", "status_code"}),

		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ctxscale_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),

		TranslationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ctxscale_translations_total",
			Help: "Usage translations by model family and whether scaling applied.",
		}, []string{"family", "scaled"}),

		RawPromptTokens: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ctxscale_raw_prompt_tokens",
			Help:    "Raw backend prompt tokens of scaled translations.",
			Buckets: prometheus.ExponentialBuckets(32_768, 2, 8),
		}, []string{"family"}),

		DisplayRatio: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ctxscale_display_ratio",
			Help:    "Client-visible fraction of the target window after scaling.",
			Buckets: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 0.97},
		}, []string{"family"}),

		Compression: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ctxscale_compression_factor",
			Help:    "Raw prompt tokens divided by reported prompt tokens.",
			Buckets: []float64{1, 1.5, 2, 3, 5, 8, 13, 21},
		}),
	}

	reg.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.TranslationsTotal,
		m.RawPromptTokens,
		m.DisplayRatio,
		m.Compression,
	)

	return m
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint
// using the metrics instance's dedicated registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// RecordTranslation counts one translated usage block. Safe on a nil receiver.
func (m *Metrics) RecordTranslation(model string, scaled bool) {
	if m == nil {
		return
	}
	m.TranslationsTotal.WithLabelValues(translate.ModelFamily(model), strconv.FormatBool(scaled)).Inc()
}

// ObserveScaling implements translate.UsageObserver.
func (m *Metrics) ObserveScaling(ev translate.ScalingEvent) {
	family := translate.ModelFamily(ev.Model)
	m.RawPromptTokens.WithLabelValues(family).Observe(float64(ev.RawPrompt))
	m.DisplayRatio.WithLabelValues(family).Observe(ev.DisplayRatio)
	if ev.Scaled > 0 {
		m.Compression.Observe(float64(ev.RawPrompt) / float64(ev.Scaled))
	}
}
