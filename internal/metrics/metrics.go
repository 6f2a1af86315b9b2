package metrics

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hirematch"

// Outcome labels
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Metrics owns the collectors of one process. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	registry *prometheus.Registry

	resumesParsed         *prometheus.CounterVec
	parseDuration         *prometheus.HistogramVec
	recommendations       prometheus.Counter
	recommendationResults prometheus.Histogram
	parseTasks            *prometheus.CounterVec
}

// New registers every collector on a fresh registry together with the Go
// runtime and process collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		resumesParsed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resumes_parsed_total",
			Help:      "Resumes run through the parser, by document format and outcome.",
		}, []string{"format", "status"}),
		parseDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "resume_parse_duration_seconds",
			Help:      "Time spent extracting and parsing a resume.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"format"}),
		recommendations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommendations_total",
			Help:      "Recommendation requests served.",
		}),
		recommendationResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recommendation_results",
			Help:      "Number of jobs returned per recommendation request.",
			Buckets:   []float64{0, 1, 5, 10, 20, 50, 100},
		}),
		parseTasks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parse_tasks_total",
			Help:      "Background parse tasks by final status.",
		}, []string{"status"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.resumesParsed,
		m.parseDuration,
		m.recommendations,
		m.recommendationResults,
		m.parseTasks,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		Registry: m.registry,
	}))
}

// ObserveParse records one parser run
func (m *Metrics) ObserveParse(format string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	status := StatusSuccess
	if err != nil {
		status = StatusFailure
	}
	m.resumesParsed.WithLabelValues(format, status).Inc()
	m.parseDuration.WithLabelValues(format).Observe(elapsed.Seconds())
}

// ObserveRecommendations records one ranked response of n jobs
func (m *Metrics) ObserveRecommendations(n int) {
	if m == nil {
		return
	}
	m.recommendations.Inc()
	m.recommendationResults.Observe(float64(n))
}

// ObserveTask records a finished background parse task
func (m *Metrics) ObserveTask(status string) {
	if m == nil {
		return
	}
	m.parseTasks.WithLabelValues(status).Inc()
}
