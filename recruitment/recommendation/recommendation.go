package recommendation

import (
	"math"

	"github.com/Abraxas-365/hirematch/pkg/kernel"
	"github.com/Abraxas-365/hirematch/recruitment/job"
)

const weightTolerance = 1e-9

// Weights are the sub-score weights and the minimum composite score a job
// needs to be recommended
type Weights struct {
	Skill      float64 `json:"skill"`
	Experience float64 `json:"experience"`
	Freshness  float64 `json:"freshness"`
	Location   float64 `json:"location"`
	Threshold  float64 `json:"threshold"`
}

func DefaultWeights() Weights {
	return Weights{
		Skill:      0.5,
		Experience: 0.25,
		Freshness:  0.15,
		Location:   0.10,
		Threshold:  0.6,
	}
}

// Validate rejects negative weights, weights that do not sum to one and a
// threshold outside [0, 1]
func (w Weights) Validate() error {
	for name, v := range map[string]float64{
		"skill":      w.Skill,
		"experience": w.Experience,
		"freshness":  w.Freshness,
		"location":   w.Location,
	} {
		if v < 0 || math.IsNaN(v) {
			return ErrInvalidWeights().WithDetail(name, v)
		}
	}

	sum := w.Skill + w.Experience + w.Freshness + w.Location
	if math.Abs(sum-1) > weightTolerance {
		return ErrInvalidWeights().WithDetail("sum", sum)
	}

	if w.Threshold < 0 || w.Threshold > 1 || math.IsNaN(w.Threshold) {
		return ErrInvalidWeights().WithDetail("threshold", w.Threshold)
	}
	return nil
}

// CandidateProfile is the slice of a candidate the scoring engine reads.
// An empty Location means the candidate has none on record.
type CandidateProfile struct {
	UserID           kernel.UserID
	Skills           []string
	ExperienceMonths int
	Location         string
}

func (p CandidateProfile) HasSkills() bool {
	return len(p.Skills) > 0
}

// Component explains one sub-score, all values in percent
type Component struct {
	Score        float64 `json:"score"`
	Weight       float64 `json:"weight"`
	Contribution float64 `json:"contribution"`
}

type Breakdown struct {
	SkillMatch      Component `json:"skill_match"`
	ExperienceMatch Component `json:"experience_match"`
	JobFreshness    Component `json:"job_freshness"`
	LocationMatch   Component `json:"location_match"`
}

// Explanation is the display form of a score
type Explanation struct {
	FinalScore float64   `json:"final_score"`
	Breakdown  Breakdown `json:"breakdown"`
}

// SubScores are the raw sub-scores of one candidate/job pair, each in [0, 1]
type SubScores struct {
	Skill      float64
	Experience float64
	Freshness  float64
	Location   float64
}

// Result is one scored job. Results are computed per request and never stored.
type Result struct {
	Job         job.JobPosting
	Score       float64 // composite, in [0, 1]
	SubScores   SubScores
	Explanation Explanation
}

// SimilarJob pairs a job with its cosine similarity to a reference job
type SimilarJob struct {
	Job        job.JobPosting
	Similarity float64
}

// Percent converts a [0, 1] value to a percentage rounded to two decimals
func Percent(v float64) float64 {
	return math.Round(v*100*100) / 100
}
