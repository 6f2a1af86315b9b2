package recommendationsrv

import (
	"math"
	"strings"
	"time"

	"github.com/Abraxas-365/hirematch/internal/tfidf"
	"github.com/Abraxas-365/hirematch/recruitment/job"
	"github.com/Abraxas-365/hirematch/recruitment/recommendation"
)

// Freshness curve
const (
	freshDays       = 7
	decayEndDays    = 30
	staleSpanDays   = 60
	minFreshness    = 0.1
	neutralScore    = 0.5
	overqualifiedAt = 0.7
)

// Location scores
const (
	locationExact   = 1.0
	locationPartial = 0.8
	locationOther   = 0.3
)

// Engine scores a candidate against a job. It holds no mutable state and is
// safe for concurrent use.
type Engine struct {
	weights recommendation.Weights
	now     func() time.Time
}

type Option func(*Engine)

// WithClock replaces the clock used for freshness
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func NewEngine(weights recommendation.Weights, opts ...Option) (*Engine, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		weights: weights,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func (e *Engine) Weights() recommendation.Weights {
	return e.weights
}

// SkillMatch compares the two skill lists as TF-IDF documents. Either list
// being empty, or neither containing a usable token, scores 0.
func (e *Engine) SkillMatch(candidate, required []string) float64 {
	if len(candidate) == 0 || len(required) == 0 {
		return 0
	}

	sim, err := tfidf.Similarity(strings.Join(candidate, " "), strings.Join(required, " "), 0)
	if err != nil {
		return 0
	}
	return sim
}

// ExperienceMatch scores months of experience against a job's range in years
func (e *Engine) ExperienceMatch(months int, minYears, maxYears *int) float64 {
	if minYears == nil && maxYears == nil {
		return 1
	}

	years := float64(months) / 12.0

	switch {
	case maxYears == nil:
		lo := float64(*minYears)
		if years >= lo {
			return 1
		}
		return ratio(years, lo)

	case minYears == nil:
		hi := float64(*maxYears)
		if years <= hi {
			return 1
		}
		return ratio(hi, years)

	default:
		lo, hi := float64(*minYears), float64(*maxYears)
		if years >= lo && years <= hi {
			return 1
		}
		if years < lo {
			return ratio(years, lo)
		}
		if years == 0 {
			return 0
		}
		// Overqualification is penalised less than underqualification
		return math.Max(overqualifiedAt, hi/years)
	}
}

func ratio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}

// Freshness decays with the age of a posting in whole days. Postings with
// no date score 0.5.
func (e *Engine) Freshness(posted *time.Time) float64 {
	if posted == nil {
		return neutralScore
	}

	days := math.Floor(e.now().Sub(*posted).Hours() / 24)

	switch {
	case days <= freshDays:
		return 1
	case days <= decayEndDays:
		return 1 - ((days-freshDays)/(decayEndDays-freshDays))*0.5
	default:
		return math.Max(minFreshness, 0.5-((days-decayEndDays)/staleSpanDays)*0.4)
	}
}

// LocationMatch compares locations case-insensitively. A job without a
// location is remote and always matches.
func (e *Engine) LocationMatch(candidate, jobLocation string) float64 {
	jobLoc := strings.ToLower(strings.TrimSpace(jobLocation))
	if jobLoc == "" {
		return 1
	}

	cand := strings.ToLower(strings.TrimSpace(candidate))
	if cand == "" {
		return neutralScore
	}

	switch {
	case cand == jobLoc:
		return locationExact
	case strings.Contains(jobLoc, cand), strings.Contains(cand, jobLoc):
		return locationPartial
	default:
		return locationOther
	}
}

// Score computes every sub-score of the pair and their weighted sum
func (e *Engine) Score(profile recommendation.CandidateProfile, posting job.JobPosting) recommendation.Result {
	sub := recommendation.SubScores{
		Skill:      e.SkillMatch(profile.Skills, posting.RequiredSkills),
		Experience: e.ExperienceMatch(profile.ExperienceMonths, posting.ExperienceMin, posting.ExperienceMax),
		Freshness:  e.Freshness(posting.PostedDate),
		Location:   e.LocationMatch(profile.Location, posting.Location),
	}

	w := e.weights
	score := sub.Skill*w.Skill +
		sub.Experience*w.Experience +
		sub.Freshness*w.Freshness +
		sub.Location*w.Location

	return recommendation.Result{
		Job:         posting,
		Score:       score,
		SubScores:   sub,
		Explanation: e.explain(sub, score),
	}
}

// Qualifies reports whether the result meets the recommendation threshold
func (e *Engine) Qualifies(r recommendation.Result) bool {
	return r.Score >= e.weights.Threshold
}

func (e *Engine) explain(sub recommendation.SubScores, score float64) recommendation.Explanation {
	w := e.weights
	return recommendation.Explanation{
		FinalScore: recommendation.Percent(score),
		Breakdown: recommendation.Breakdown{
			SkillMatch:      component(sub.Skill, w.Skill),
			ExperienceMatch: component(sub.Experience, w.Experience),
			JobFreshness:    component(sub.Freshness, w.Freshness),
			LocationMatch:   component(sub.Location, w.Location),
		},
	}
}

func component(score, weight float64) recommendation.Component {
	return recommendation.Component{
		Score:        recommendation.Percent(score),
		Weight:       recommendation.Percent(weight),
		Contribution: recommendation.Percent(score * weight),
	}
}
