package recommendationsrv

import (
	"testing"

	"github.com/Abraxas-365/hirematch/pkg/kernel"
	"github.com/Abraxas-365/hirematch/recruitment/job"
	"github.com/Abraxas-365/hirematch/recruitment/recommendation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func posting(id string, status job.JobStatus, skills ...string) job.JobPosting {
	return job.JobPosting{
		ID:             kernel.JobID(id),
		RequiredSkills: skills,
		PostedDate:     daysAgo(1),
		Status:         status,
	}
}

func TestRank(t *testing.T) {
	ranker := NewRanker(newTestEngine(t))
	profile := recommendation.CandidateProfile{Skills: []string{"Python", "SQL"}, ExperienceMonths: 24}

	catalog := []job.JobPosting{
		posting("exact-1", job.JobStatusActive, "Python", "SQL"),
		posting("unrelated", job.JobStatusActive, "Photoshop"),
		posting("partial", job.JobStatusActive, "Python", "Django"),
		posting("closed", job.JobStatusClosed, "Python", "SQL"),
		posting("exact-2", job.JobStatusActive, "SQL", "Python"),
	}

	results := ranker.Rank(profile, catalog, 10)

	ids := make([]kernel.JobID, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.Job.ID)
		assert.GreaterOrEqual(t, r.Score, 0.6)
	}
	assert.Equal(t, []kernel.JobID{"exact-1", "exact-2", "partial"}, ids)
	assert.NotContains(t, ids, kernel.JobID("closed"))
	assert.NotContains(t, ids, kernel.JobID("unrelated"))
}

func TestRankExcludesBelowThreshold(t *testing.T) {
	ranker := NewRanker(newTestEngine(t))
	profile := recommendation.CandidateProfile{Skills: []string{"Photoshop"}, Location: "Chennai"}

	stale := posting("stale", job.JobStatusActive, "Go")
	stale.PostedDate = daysAgo(200)
	stale.Location = "Pune"
	stale.ExperienceMin = intPtr(10)

	// 0*0.5 + 0*0.25 + 0.1*0.15 + 0.3*0.1 = 0.045
	assert.Empty(t, ranker.Rank(profile, []job.JobPosting{stale}, 5))
}

func TestRankLimit(t *testing.T) {
	ranker := NewRanker(newTestEngine(t))
	profile := recommendation.CandidateProfile{Skills: []string{"Go"}}

	var catalog []job.JobPosting
	for _, id := range []string{"a", "b", "c", "d"} {
		catalog = append(catalog, posting(id, job.JobStatusActive, "Go"))
	}

	results := ranker.Rank(profile, catalog, 2)
	require.Len(t, results, 2)
	assert.Equal(t, kernel.JobID("a"), results[0].Job.ID)
	assert.Equal(t, kernel.JobID("b"), results[1].Job.ID)

	assert.Empty(t, ranker.Rank(profile, catalog, 0))
	assert.Empty(t, ranker.Rank(profile, catalog, -1))
}

func TestRankWithoutSkills(t *testing.T) {
	ranker := NewRanker(newTestEngine(t))
	catalog := []job.JobPosting{posting("a", job.JobStatusActive, "Go")}

	results := ranker.Rank(recommendation.CandidateProfile{ExperienceMonths: 60}, catalog, 10)

	assert.NotNil(t, results)
	assert.Empty(t, results)
}
