package jobsrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/hirematch/pkg/errx"
	"github.com/Abraxas-365/hirematch/pkg/kernel"
	"github.com/Abraxas-365/hirematch/pkg/logx"
	"github.com/Abraxas-365/hirematch/recruitment/job"
	"github.com/google/uuid"
)

// JobService provides business operations for jobs
type JobService struct {
	jobRepo job.Repository
	now     func() time.Time
}

// NewJobService creates a new instance of the job service
func NewJobService(jobRepo job.Repository) *JobService {
	return &JobService{
		jobRepo: jobRepo,
		now:     time.Now,
	}
}

// CreateJob creates a new active job posting
func (s *JobService) CreateJob(ctx context.Context, req job.CreateJobRequest) (*job.JobResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	newJob := &job.JobPosting{
		ID:             kernel.NewJobID(uuid.NewString()),
		PostedBy:       req.PostedBy,
		Title:          req.Title,
		Company:        req.Company,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
		ExperienceMin:  req.ExperienceMin,
		ExperienceMax:  req.ExperienceMax,
		Location:       req.Location,
		JobType:        req.JobType,
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		PostedDate:     &now,
		Deadline:       req.Deadline,
		Status:         job.JobStatusActive,
		Source:         req.Source,
		ExternalURL:    req.ExternalURL,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if newJob.JobType == "" {
		newJob.JobType = job.DefaultJobType
	}
	if newJob.Source == "" {
		newJob.Source = job.SourceInternal
	}

	if err := s.jobRepo.Create(ctx, newJob); err != nil {
		return nil, errx.Wrap(err, "failed to create job", errx.TypeInternal)
	}

	logx.Infof("Job %s created by %s: %s", newJob.ID, newJob.PostedBy, newJob.Title)
	return newJob.ToResponse(), nil
}

// GetJob retrieves a job and records a view
func (s *JobService) GetJob(ctx context.Context, jobID kernel.JobID) (*job.JobResponse, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if err := s.jobRepo.IncrementViewCount(ctx, jobID); err != nil {
		logx.Warnf("Failed to record view for job %s: %v", jobID, err)
	} else {
		jobEntity.ViewCount++
	}

	return jobEntity.ToResponse(), nil
}

// SearchJobs lists jobs matching the filters
func (s *JobService) SearchJobs(ctx context.Context, req job.SearchJobsRequest) (*job.PaginatedJobsResponse, error) {
	req = req.Normalize()
	if !req.Status.IsValid() {
		return nil, job.ErrInvalidStatus().WithDetail("status", req.Status)
	}

	jobs, err := s.jobRepo.Search(ctx, req)
	if err != nil {
		return nil, errx.Wrap(err, "failed to search jobs", errx.TypeInternal)
	}

	summaries := make([]job.JobSummary, 0, len(jobs.Items))
	for i := range jobs.Items {
		summaries = append(summaries, jobs.Items[i].ToSummary())
	}

	return &job.PaginatedJobsResponse{
		Items: summaries,
		Page:  jobs.Page,
		Empty: len(summaries) == 0,
	}, nil
}

// UpdateJobStatus closes, fills or reopens a job.
// Only the poster may change it unless canManageAll is set.
func (s *JobService) UpdateJobStatus(
	ctx context.Context,
	actor kernel.UserID,
	canManageAll bool,
	jobID kernel.JobID,
	req job.UpdateJobStatusRequest,
) (*job.JobResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	jobEntity, err := s.ownedJob(ctx, actor, canManageAll, jobID)
	if err != nil {
		return nil, err
	}

	if err := jobEntity.ChangeStatus(req.Status, s.now().UTC()); err != nil {
		return nil, err
	}

	if err := s.jobRepo.UpdateStatus(ctx, jobID, jobEntity.Status, jobEntity.UpdatedAt); err != nil {
		return nil, errx.Wrap(err, "failed to update job status", errx.TypeInternal)
	}

	logx.Infof("Job %s moved to %s by %s", jobID, jobEntity.Status, actor)
	return jobEntity.ToResponse(), nil
}

// UpdateJob edits the fields present in req.
// Only the poster may edit it unless canManageAll is set.
func (s *JobService) UpdateJob(
	ctx context.Context,
	actor kernel.UserID,
	canManageAll bool,
	jobID kernel.JobID,
	req job.UpdateJobRequest,
) (*job.JobResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	jobEntity, err := s.ownedJob(ctx, actor, canManageAll, jobID)
	if err != nil {
		return nil, err
	}

	if err := jobEntity.ApplyUpdate(req, s.now().UTC()); err != nil {
		return nil, err
	}

	if err := s.jobRepo.Update(ctx, jobEntity); err != nil {
		return nil, errx.Wrap(err, "failed to update job", errx.TypeInternal)
	}

	logx.Infof("Job %s updated by %s", jobID, actor)
	return jobEntity.ToResponse(), nil
}

// DeleteJob removes a job together with its applications and saves
func (s *JobService) DeleteJob(ctx context.Context, actor kernel.UserID, canManageAll bool, jobID kernel.JobID) error {
	if _, err := s.ownedJob(ctx, actor, canManageAll, jobID); err != nil {
		return err
	}

	if err := s.jobRepo.Delete(ctx, jobID); err != nil {
		return errx.Wrap(err, "failed to delete job", errx.TypeInternal)
	}

	logx.Infof("Job %s deleted by %s", jobID, actor)
	return nil
}

func (s *JobService) ownedJob(ctx context.Context, actor kernel.UserID, canManageAll bool, jobID kernel.JobID) (*job.JobPosting, error) {
	jobEntity, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !canManageAll && jobEntity.PostedBy != actor {
		return nil, job.ErrNotOwner().WithDetail("job_id", jobID.String())
	}
	return jobEntity, nil
}

// ListActive returns the active catalog
func (s *JobService) ListActive(ctx context.Context) ([]job.JobPosting, error) {
	jobs, err := s.jobRepo.ListActive(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list active jobs", errx.TypeInternal)
	}
	return jobs, nil
}

// GetPosting retrieves a job without recording a view
func (s *JobService) GetPosting(ctx context.Context, jobID kernel.JobID) (*job.JobPosting, error) {
	return s.jobRepo.GetByID(ctx, jobID)
}

// GetPostings retrieves the jobs among ids that still exist, keyed by ID
func (s *JobService) GetPostings(ctx context.Context, ids []kernel.JobID) (map[kernel.JobID]job.JobPosting, error) {
	jobs, err := s.jobRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load jobs", errx.TypeInternal)
	}

	byID := make(map[kernel.JobID]job.JobPosting, len(jobs))
	for _, j := range jobs {
		byID[j.ID] = j
	}
	return byID, nil
}
