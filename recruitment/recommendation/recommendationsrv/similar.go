package recommendationsrv

import (
	"sort"

	"github.com/Abraxas-365/hirematch/internal/tfidf"
	"github.com/Abraxas-365/hirematch/recruitment/job"
	"github.com/Abraxas-365/hirematch/recruitment/recommendation"
)

const (
	DefaultMaxFeatures  = 100
	DefaultSimilarLimit = 10
)

// SimilarityFinder ranks catalog jobs by textual similarity to a reference job
type SimilarityFinder struct {
	MaxFeatures int
	Limit       int
}

func NewSimilarityFinder() *SimilarityFinder {
	return &SimilarityFinder{
		MaxFeatures: DefaultMaxFeatures,
		Limit:       DefaultSimilarLimit,
	}
}

// FindSimilar compares reference with every other active job in catalog.
// The vocabulary is fitted over the reference and the candidates together.
func (f *SimilarityFinder) FindSimilar(reference job.JobPosting, catalog []job.JobPosting) []recommendation.SimilarJob {
	similar := []recommendation.SimilarJob{}

	candidates := make([]job.JobPosting, 0, len(catalog))
	for _, posting := range catalog {
		if posting.IsActive() && posting.ID != reference.ID {
			candidates = append(candidates, posting)
		}
	}
	if len(candidates) == 0 {
		return similar
	}

	docs := make([]string, 0, len(candidates)+1)
	docs = append(docs, reference.Text())
	for i := range candidates {
		docs = append(docs, candidates[i].Text())
	}

	matrix, err := tfidf.Vectorizer{MaxFeatures: f.MaxFeatures}.FitTransform(docs)
	if err != nil {
		return similar
	}

	for i, posting := range candidates {
		similar = append(similar, recommendation.SimilarJob{
			Job:        posting,
			Similarity: tfidf.Cosine(matrix.Rows[0], matrix.Rows[i+1]),
		})
	}

	sort.SliceStable(similar, func(i, j int) bool {
		return similar[i].Similarity > similar[j].Similarity
	})

	if f.Limit > 0 && len(similar) > f.Limit {
		similar = similar[:f.Limit]
	}
	return similar
}
