package recommendationsrv

import (
	"context"

	"github.com/Abraxas-365/hirematch/internal/metrics"
	"github.com/Abraxas-365/hirematch/pkg/errx"
	"github.com/Abraxas-365/hirematch/pkg/kernel"
	"github.com/Abraxas-365/hirematch/pkg/logx"
	"github.com/Abraxas-365/hirematch/recruitment/job"
	"github.com/Abraxas-365/hirematch/recruitment/recommendation"
	"github.com/Abraxas-365/hirematch/recruitment/resume"
	"golang.org/x/sync/errgroup"
)

// Service assembles a candidate profile from its sources and ranks the
// active catalog against it
type Service struct {
	resumes   recommendation.ResumeSource
	locations recommendation.LocationSource
	catalog   recommendation.JobCatalog
	ranker    *Ranker
	finder    *SimilarityFinder
	metrics   *metrics.Metrics
}

func NewService(
	resumes recommendation.ResumeSource,
	locations recommendation.LocationSource,
	catalog recommendation.JobCatalog,
	ranker *Ranker,
	finder *SimilarityFinder,
	m *metrics.Metrics,
) *Service {
	return &Service{
		resumes:   resumes,
		locations: locations,
		catalog:   catalog,
		ranker:    ranker,
		finder:    finder,
		metrics:   m,
	}
}

// ============================================================================
// Recommendations
// ============================================================================

// Recommend ranks the active catalog for a user. Any empty result, including
// a user without an active resume or without skills, carries a message.
func (s *Service) Recommend(ctx context.Context, userID kernel.UserID, limit int) (*recommendation.RecommendationsResponse, error) {
	var (
		active   *resume.Resume
		location string
		catalog  []job.JobPosting
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r, err := s.resumes.GetActiveByUserID(gctx, userID)
		if err != nil {
			if errx.IsCode(err, resume.CodeNoActiveResume) {
				return nil
			}
			return recommendation.ErrProfileUnavailable().WithCause(err)
		}
		active = r
		return nil
	})

	g.Go(func() error {
		loc, err := s.locations.Location(gctx, userID)
		if err != nil {
			return recommendation.ErrProfileUnavailable().WithCause(err)
		}
		location = loc
		return nil
	})

	g.Go(func() error {
		jobs, err := s.catalog.ListActive(gctx)
		if err != nil {
			return recommendation.ErrCatalogUnavailable().WithCause(err)
		}
		catalog = jobs
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if active == nil || len(active.SkillNames()) == 0 {
		s.metrics.ObserveRecommendations(0)
		return &recommendation.RecommendationsResponse{
			Recommendations: []recommendation.RecommendationItem{},
			Message:         recommendation.NoResumeMessage,
		}, nil
	}

	profile := recommendation.CandidateProfile{
		UserID:           userID,
		Skills:           active.SkillNames(),
		ExperienceMonths: active.TotalExperienceMonths,
		Location:         location,
	}

	results := s.ranker.Rank(profile, catalog, limit)
	s.metrics.ObserveRecommendations(len(results))

	logx.Debugf("Ranked %d active jobs for user %s: %d recommended", len(catalog), userID, len(results))

	items := make([]recommendation.RecommendationItem, 0, len(results))
	for i := range results {
		items = append(items, results[i].ToItem())
	}

	resp := &recommendation.RecommendationsResponse{
		Recommendations: items,
		Total:           len(items),
	}
	if len(items) == 0 {
		resp.Message = recommendation.NoResumeMessage
	}
	return resp, nil
}

// ============================================================================
// Similar Jobs
// ============================================================================

// SimilarJobs lists the active jobs most similar to jobID
func (s *Service) SimilarJobs(ctx context.Context, jobID kernel.JobID) (*recommendation.SimilarJobsResponse, error) {
	reference, err := s.catalog.GetPosting(ctx, jobID)
	if err != nil {
		return nil, err
	}

	catalog, err := s.catalog.ListActive(ctx)
	if err != nil {
		return nil, recommendation.ErrCatalogUnavailable().WithCause(err)
	}

	similar := s.finder.FindSimilar(*reference, catalog)

	items := make([]recommendation.SimilarJobItem, 0, len(similar))
	for i := range similar {
		items = append(items, similar[i].ToItem())
	}

	return &recommendation.SimilarJobsResponse{
		SimilarJobs: items,
		Total:       len(items),
	}, nil
}
