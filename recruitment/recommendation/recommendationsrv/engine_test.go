package recommendationsrv

import (
	"testing"
	"time"

	"github.com/Abraxas-365/hirematch/pkg/errx"
	"github.com/Abraxas-365/hirematch/recruitment/job"
	"github.com/Abraxas-365/hirematch/recruitment/recommendation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(recommendation.DefaultWeights(), WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	return e
}

func intPtr(v int) *int { return &v }

func daysAgo(d float64) *time.Time {
	t := fixedNow.Add(-time.Duration(d * 24 * float64(time.Hour)))
	return &t
}

func TestNewEngineRejectsInvalidWeights(t *testing.T) {
	tests := []struct {
		name string
		w    recommendation.Weights
	}{
		{"sum above one", recommendation.Weights{Skill: 0.6, Experience: 0.25, Freshness: 0.15, Location: 0.1, Threshold: 0.6}},
		{"negative", recommendation.Weights{Skill: 1.1, Experience: -0.1, Threshold: 0.5}},
		{"threshold above one", recommendation.Weights{Skill: 1, Threshold: 1.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEngine(tt.w)
			assert.True(t, errx.IsCode(err, recommendation.CodeInvalidWeights))
		})
	}

	_, err := NewEngine(recommendation.DefaultWeights())
	assert.NoError(t, err)
}

func TestSkillMatch(t *testing.T) {
	e := newTestEngine(t)

	assert.InDelta(t, 1.0, e.SkillMatch([]string{"Python", "SQL"}, []string{"Python", "SQL"}), 1e-9)
	assert.InDelta(t, 1.0, e.SkillMatch([]string{"python", "sql"}, []string{"SQL", "Python"}), 1e-9)
	assert.Equal(t, 0.0, e.SkillMatch(nil, []string{"Go"}))
	assert.Equal(t, 0.0, e.SkillMatch([]string{"Go"}, nil))
	assert.Equal(t, 0.0, e.SkillMatch([]string{"Go"}, []string{"Rust"}))

	partial := e.SkillMatch([]string{"Python", "SQL", "Docker"}, []string{"Python", "Kubernetes"})
	assert.Greater(t, partial, 0.0)
	assert.Less(t, partial, 1.0)

	t.Run("single letter skills have no tokens", func(t *testing.T) {
		assert.Equal(t, 0.0, e.SkillMatch([]string{"C"}, []string{"C"}))
	})
}

func TestExperienceMatch(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name     string
		months   int
		min, max *int
		want     float64
	}{
		{"no constraint", 0, nil, nil, 1},
		{"min only met", 36, intPtr(3), nil, 1},
		{"min only short", 24, intPtr(5), nil, 0.4},
		{"min zero", 0, intPtr(0), nil, 1},
		{"max only within", 24, nil, intPtr(3), 1},
		{"max only over", 72, nil, intPtr(3), 0.5},
		{"range lower bound", 12, intPtr(1), intPtr(3), 1},
		{"range upper bound", 36, intPtr(1), intPtr(3), 1},
		{"range below", 6, intPtr(1), intPtr(3), 0.5},
		{"range slightly over", 48, intPtr(1), intPtr(3), 0.75},
		{"range far over floors at 0.7", 120, intPtr(1), intPtr(3), 0.7},
		{"no experience against max only", 0, nil, intPtr(0), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, e.ExperienceMatch(tt.months, tt.min, tt.max), 1e-9)
		})
	}
}

func TestExperienceMatchBoundaries(t *testing.T) {
	e := newTestEngine(t)
	min, max := intPtr(2), intPtr(4)

	assert.Equal(t, 1.0, e.ExperienceMatch(24, min, max))
	assert.Equal(t, 1.0, e.ExperienceMatch(48, min, max))
	assert.Less(t, e.ExperienceMatch(23, min, max), 1.0)
	assert.Less(t, e.ExperienceMatch(49, min, max), 1.0)
}

func TestFreshness(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name   string
		posted *time.Time
		want   float64
	}{
		{"missing date", nil, 0.5},
		{"today", daysAgo(0), 1},
		{"seven days", daysAgo(7), 1},
		{"seven and a half days floors to seven", daysAgo(7.5), 1},
		{"eight days", daysAgo(8), 1 - (1.0/23.0)*0.5},
		{"thirty days", daysAgo(30), 0.5},
		{"sixty days", daysAgo(60), 0.3},
		{"ninety days", daysAgo(90), 0.1},
		{"a year", daysAgo(365), 0.1},
		{"future date", daysAgo(-3), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, e.Freshness(tt.posted), 1e-9)
		})
	}
}

func TestLocationMatch(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		candidate, job string
		want           float64
	}{
		{"Remote", "", 1},
		{"", "", 1},
		{"", "Pune", 0.5},
		{"pune", "Pune", 1},
		{"Pune", "Pune, Maharashtra", 0.8},
		{"Bangalore, India", "Bangalore", 0.8},
		{"Chennai", "Pune", 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.candidate+"/"+tt.job, func(t *testing.T) {
			assert.Equal(t, tt.want, e.LocationMatch(tt.candidate, tt.job))
		})
	}
}

func TestScoreEndToEnd(t *testing.T) {
	e := newTestEngine(t)

	profile := recommendation.CandidateProfile{
		Skills:           []string{"Python", "SQL"},
		ExperienceMonths: 24,
		Location:         "Remote",
	}
	posting := job.JobPosting{
		ID:             "j1",
		RequiredSkills: []string{"Python", "SQL"},
		ExperienceMin:  intPtr(1),
		ExperienceMax:  intPtr(3),
		PostedDate:     daysAgo(2),
		Status:         job.JobStatusActive,
	}

	res := e.Score(profile, posting)

	assert.InDelta(t, 1.0, res.SubScores.Skill, 1e-9)
	assert.Equal(t, 1.0, res.SubScores.Experience)
	assert.Equal(t, 1.0, res.SubScores.Freshness)
	assert.Equal(t, 1.0, res.SubScores.Location)
	assert.InDelta(t, 1.0, res.Score, 1e-9)
	assert.True(t, e.Qualifies(res))

	assert.Equal(t, 100.0, res.Explanation.FinalScore)
	assert.Equal(t, recommendation.Component{Score: 100, Weight: 50, Contribution: 50}, res.Explanation.Breakdown.SkillMatch)
	assert.Equal(t, recommendation.Component{Score: 100, Weight: 25, Contribution: 25}, res.Explanation.Breakdown.ExperienceMatch)
	assert.Equal(t, recommendation.Component{Score: 100, Weight: 15, Contribution: 15}, res.Explanation.Breakdown.JobFreshness)
	assert.Equal(t, recommendation.Component{Score: 100, Weight: 10, Contribution: 10}, res.Explanation.Breakdown.LocationMatch)
}

func TestScoreIsWeightedSum(t *testing.T) {
	e := newTestEngine(t)

	profile := recommendation.CandidateProfile{
		Skills:           []string{"Python", "SQL", "Docker"},
		ExperienceMonths: 24,
		Location:         "Chennai",
	}
	posting := job.JobPosting{
		RequiredSkills: []string{"Python", "Kubernetes"},
		ExperienceMin:  intPtr(5),
		PostedDate:     daysAgo(45),
		Location:       "Pune",
		Status:         job.JobStatusActive,
	}

	res := e.Score(profile, posting)
	sub := res.SubScores

	assert.InDelta(t, 0.4, sub.Experience, 1e-9)
	assert.InDelta(t, 0.4, sub.Freshness, 1e-9)
	assert.Equal(t, 0.3, sub.Location)
	assert.InDelta(t, sub.Skill*0.5+sub.Experience*0.25+sub.Freshness*0.15+sub.Location*0.10, res.Score, 1e-12)
	assert.False(t, e.Qualifies(res))
}

func TestQualifiesAtThreshold(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		score float64
		want  bool
	}{
		{0.6, true},
		{0.61, true},
		{0.5999, false},
		{0, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, e.Qualifies(recommendation.Result{Score: tt.score}), "score %v", tt.score)
	}
}
