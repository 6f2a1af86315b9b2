package applicationsrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/hirematch/pkg/errx"
	"github.com/Abraxas-365/hirematch/pkg/kernel"
	"github.com/Abraxas-365/hirematch/pkg/logx"
	"github.com/Abraxas-365/hirematch/recruitment/application"
	"github.com/Abraxas-365/hirematch/recruitment/candidate"
	"github.com/Abraxas-365/hirematch/recruitment/job"
	"github.com/Abraxas-365/hirematch/recruitment/recommendation"
	"github.com/Abraxas-365/hirematch/recruitment/resume"
	"github.com/google/uuid"
)

// ApplicationService provides business operations for applications and saved jobs
type ApplicationService struct {
	applicationRepo application.Repository
	savedJobRepo    application.SavedJobRepository
	jobs            application.JobCatalog
	profiles        application.ProfileSource
	resumes         application.ResumeSource
	scorer          application.Scorer
	now             func() time.Time
}

// NewApplicationService creates a new instance of the application service
func NewApplicationService(
	applicationRepo application.Repository,
	savedJobRepo application.SavedJobRepository,
	jobs application.JobCatalog,
	profiles application.ProfileSource,
	resumes application.ResumeSource,
	scorer application.Scorer,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		savedJobRepo:    savedJobRepo,
		jobs:            jobs,
		profiles:        profiles,
		resumes:         resumes,
		scorer:          scorer,
		now:             time.Now,
	}
}

// ============================================================================
// Applications
// ============================================================================

// Apply submits the user's application to an active job. The match score is
// computed once from the attached resume and stored with the application.
func (s *ApplicationService) Apply(
	ctx context.Context,
	userID kernel.UserID,
	jobID kernel.JobID,
	req application.ApplyRequest,
) (*application.ApplicationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile.Role != candidate.RoleJobSeeker {
		return nil, application.ErrNotJobSeeker().WithDetail("role", profile.Role)
	}

	posting, err := s.jobs.GetPosting(ctx, jobID)
	if err != nil {
		if errx.IsCode(err, job.CodeJobNotFound) {
			return nil, application.ErrJobNotActive().WithDetail("job_id", jobID.String())
		}
		return nil, err
	}
	if !posting.IsActive() {
		return nil, application.ErrJobNotActive().
			WithDetail("job_id", jobID.String()).
			WithDetail("status", posting.Status)
	}

	// Business rule: one application per user and job
	exists, err := s.applicationRepo.ExistsByUserAndJob(ctx, userID, jobID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to check duplicate application", errx.TypeInternal)
	}
	if exists {
		return nil, application.ErrAlreadyApplied().WithDetail("job_id", jobID.String())
	}

	attached, err := s.resumeFor(ctx, userID, req.ResumeID)
	if err != nil {
		return nil, err
	}

	newApplication := &application.Application{
		ID:          kernel.NewApplicationID(uuid.NewString()),
		UserID:      userID,
		JobID:       jobID,
		Status:      application.ApplicationStatusPending,
		CoverLetter: req.CoverLetter,
		AppliedAt:   s.now().UTC(),
	}

	if attached != nil {
		resumeID := attached.ID
		newApplication.ResumeID = &resumeID

		result := s.scorer.Score(recommendation.CandidateProfile{
			UserID:           userID,
			Skills:           attached.SkillNames(),
			ExperienceMonths: attached.TotalExperienceMonths,
			Location:         profile.Location,
		}, *posting)
		score := recommendation.Percent(result.Score)
		newApplication.MatchScore = &score
	}

	if err := s.applicationRepo.Create(ctx, newApplication); err != nil {
		return nil, errx.Wrap(err, "failed to create application", errx.TypeInternal)
	}

	logx.Infof("User %s applied to job %s", userID, jobID)
	resp := newApplication.ToResponse(posting)
	return &resp, nil
}

// resumeFor returns the resume to attach: the requested one, which must
// belong to the user, or else the active one. It is nil when the user has
// no active resume.
func (s *ApplicationService) resumeFor(ctx context.Context, userID kernel.UserID, resumeID kernel.ResumeID) (*resume.Resume, error) {
	if !resumeID.IsEmpty() {
		r, err := s.resumes.GetByID(ctx, resumeID)
		if err != nil {
			return nil, err
		}
		if !r.OwnedBy(userID) {
			return nil, resume.ErrNotOwner().WithDetail("resume_id", resumeID.String())
		}
		return r, nil
	}

	r, err := s.resumes.GetActiveByUserID(ctx, userID)
	if err != nil {
		if errx.IsCode(err, resume.CodeNoActiveResume) {
			return nil, nil
		}
		return nil, err
	}
	return r, nil
}

// ListMyApplications lists the user's applications with their jobs, newest first
func (s *ApplicationService) ListMyApplications(ctx context.Context, userID kernel.UserID) (*application.MyApplicationsResponse, error) {
	apps, err := s.applicationRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list applications", errx.TypeInternal)
	}

	ids := make([]kernel.JobID, 0, len(apps))
	for i := range apps {
		ids = append(ids, apps[i].JobID)
	}
	postings, err := s.jobs.GetPostings(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]application.ApplicationResponse, 0, len(apps))
	for i := range apps {
		var posting *job.JobPosting
		if p, ok := postings[apps[i].JobID]; ok {
			posting = &p
		}
		items = append(items, apps[i].ToResponse(posting))
	}

	return &application.MyApplicationsResponse{
		Applications: items,
		Count:        len(items),
	}, nil
}

// ============================================================================
// Saved Jobs
// ============================================================================

// SaveJob bookmarks an existing job for the user
func (s *ApplicationService) SaveJob(ctx context.Context, userID kernel.UserID, jobID kernel.JobID) (*application.SavedJob, error) {
	if _, err := s.jobs.GetPosting(ctx, jobID); err != nil {
		return nil, err
	}

	saved := &application.SavedJob{
		UserID:  userID,
		JobID:   jobID,
		SavedAt: s.now().UTC(),
	}
	if err := s.savedJobRepo.Save(ctx, saved); err != nil {
		return nil, errx.Wrap(err, "failed to save job", errx.TypeInternal)
	}

	logx.Debugf("User %s saved job %s", userID, jobID)
	return saved, nil
}

// ListSavedJobs lists the jobs the user saved, newest first. Jobs deleted
// since are skipped.
func (s *ApplicationService) ListSavedJobs(ctx context.Context, userID kernel.UserID) (*application.SavedJobsResponse, error) {
	saved, err := s.savedJobRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list saved jobs", errx.TypeInternal)
	}

	ids := make([]kernel.JobID, 0, len(saved))
	for i := range saved {
		ids = append(ids, saved[i].JobID)
	}
	postings, err := s.jobs.GetPostings(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]application.SavedJobItem, 0, len(saved))
	for i := range saved {
		p, ok := postings[saved[i].JobID]
		if !ok {
			continue
		}
		items = append(items, application.SavedJobItem{
			JobSummary: p.ToSummary(),
			SavedAt:    saved[i].SavedAt,
		})
	}

	return &application.SavedJobsResponse{
		Jobs:  items,
		Count: len(items),
	}, nil
}
