package recommendation

import "github.com/Abraxas-365/hirematch/recruitment/job"

// NoResumeMessage accompanies every empty recommendation list
const NoResumeMessage = "No recommendations found. Please upload a resume first."

// RecommendationItem is one recommended job
type RecommendationItem struct {
	Job         job.JobSummary `json:"job"`
	MatchScore  float64        `json:"match_score"` // percent
	Explanation Explanation    `json:"explanation"`
}

type RecommendationsResponse struct {
	Recommendations []RecommendationItem `json:"recommendations"`
	Total           int                  `json:"total"`
	Message         string               `json:"message,omitempty"`
}

// SimilarJobItem is one job similar to a reference job
type SimilarJobItem struct {
	Job             job.JobSummary `json:"job"`
	SimilarityScore float64        `json:"similarity_score"` // percent
}

type SimilarJobsResponse struct {
	SimilarJobs []SimilarJobItem `json:"similar_jobs"`
	Total       int              `json:"total"`
}

// ToItem converts a scored job to its response form
func (r *Result) ToItem() RecommendationItem {
	return RecommendationItem{
		Job:         r.Job.ToSummary(),
		MatchScore:  Percent(r.Score),
		Explanation: r.Explanation,
	}
}

func (s *SimilarJob) ToItem() SimilarJobItem {
	return SimilarJobItem{
		Job:             s.Job.ToSummary(),
		SimilarityScore: Percent(s.Similarity),
	}
}
