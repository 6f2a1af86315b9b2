package metrics

import (
	"errors"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func family(t *testing.T, m *Metrics, name string) *dto.MetricFamily {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == name {
			return f
		}
	}
	t.Fatalf("metric family %s not gathered", name)
	return nil
}

func TestObserveParse(t *testing.T) {
	m := New()
	m.ObserveParse("pdf", nil, 20*time.Millisecond)
	m.ObserveParse("pdf", errors.New("corrupt"), time.Millisecond)
	m.ObserveParse("docx", nil, time.Millisecond)

	parsed := family(t, m, "hirematch_resumes_parsed_total")
	assert.Len(t, parsed.GetMetric(), 3)

	total := 0.0
	for _, metric := range parsed.GetMetric() {
		total += metric.GetCounter().GetValue()
	}
	assert.Equal(t, 3.0, total)

	duration := family(t, m, "hirematch_resume_parse_duration_seconds")
	assert.Len(t, duration.GetMetric(), 2)
}

func TestObserveRecommendations(t *testing.T) {
	m := New()
	m.ObserveRecommendations(0)
	m.ObserveRecommendations(7)

	assert.Equal(t, 2.0, family(t, m, "hirematch_recommendations_total").GetMetric()[0].GetCounter().GetValue())

	hist := family(t, m, "hirematch_recommendation_results").GetMetric()[0].GetHistogram()
	assert.Equal(t, uint64(2), hist.GetSampleCount())
	assert.Equal(t, 7.0, hist.GetSampleSum())
}

func TestObserveTask(t *testing.T) {
	m := New()
	m.ObserveTask(StatusSuccess)
	m.ObserveTask(StatusFailure)
	m.ObserveTask(StatusFailure)

	tasks := family(t, m, "hirematch_parse_tasks_total")
	values := map[string]float64{}
	for _, metric := range tasks.GetMetric() {
		values[metric.GetLabel()[0].GetValue()] = metric.GetCounter().GetValue()
	}
	assert.Equal(t, map[string]float64{StatusSuccess: 1, StatusFailure: 2}, values)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveParse("pdf", nil, time.Second)
		m.ObserveRecommendations(3)
		m.ObserveTask(StatusSuccess)
	})
}
