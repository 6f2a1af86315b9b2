package recommendationsrv

import (
	"sort"

	"github.com/Abraxas-365/hirematch/recruitment/job"
	"github.com/Abraxas-365/hirematch/recruitment/recommendation"
)

// Ranker applies the engine to a catalog
type Ranker struct {
	engine *Engine
}

func NewRanker(engine *Engine) *Ranker {
	return &Ranker{engine: engine}
}

// Rank scores the active jobs of catalog, keeps those meeting the threshold
// and returns at most limit of them, best first. Equal scores keep catalog
// order.
func (r *Ranker) Rank(profile recommendation.CandidateProfile, catalog []job.JobPosting, limit int) []recommendation.Result {
	results := []recommendation.Result{}
	if !profile.HasSkills() || limit <= 0 {
		return results
	}

	for _, posting := range catalog {
		if !posting.IsActive() {
			continue
		}
		res := r.engine.Score(profile, posting)
		if r.engine.Qualifies(res) {
			results = append(results, res)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}
