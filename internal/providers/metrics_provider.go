package providers

import (
	"guildpreview/internal/structures"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncUpstreamRequests(status int)
	ObserveUpstreamDuration(duration time.Duration)
	IncThrottled()
	ObserveChannels(rendered int, dropped int)
}

type MetricsProvider struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	upstreamTotal    *prometheus.CounterVec
	upstreamDuration prometheus.Histogram
	throttledTotal   prometheus.Counter
	channelsRendered prometheus.Histogram
	channelsDropped  prometheus.Counter
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// IncUpstreamRequests counts template API calls; status 0 marks a transport
// failure.
func (m *MetricsProvider) IncUpstreamRequests(status int) {
	bucket := "error"
	if status > 0 {
		bucket = httpStatusBucket(status)
	}
	m.upstreamTotal.WithLabelValues(bucket).Inc()
}

func (m *MetricsProvider) ObserveUpstreamDuration(duration time.Duration) {
	m.upstreamDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) IncThrottled() {
	m.throttledTotal.Inc()
}

func (m *MetricsProvider) ObserveChannels(rendered int, dropped int) {
	m.channelsRendered.Observe(float64(rendered))
	m.channelsDropped.Add(float64(dropped))
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "guildpreview_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "guildpreview_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		upstreamTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "guildpreview_upstream_requests_total",
			Help: "Total number of template API requests by response status",
		}, []string{"status"}),

		upstreamDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "guildpreview_upstream_duration_seconds",
			Help:    "Template API round trip in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		throttledTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "guildpreview_throttled_total",
			Help: "Total number of requests rejected by the client throttle",
		}),

		channelsRendered: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "guildpreview_channels_per_template",
			Help:    "Channels placed in the tree per rendered template",
			Buckets: []float64{0, 5, 10, 25, 50, 100, 250, 500},
		}),

		channelsDropped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "guildpreview_channels_dropped_total",
			Help: "Channels omitted because their parent id matched no channel",
		}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncUpstreamRequests(_ int)                        {}
func (n *noopMetrics) ObserveUpstreamDuration(_ time.Duration)          {}
func (n *noopMetrics) IncThrottled()                                    {}
func (n *noopMetrics) ObserveChannels(_ int, _ int)                     {}
