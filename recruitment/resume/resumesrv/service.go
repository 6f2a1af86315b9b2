package resumesrv

import (
	"context"
	"errors"
	"time"

	"github.com/Abraxas-365/hirematch/internal/metrics"
	"github.com/Abraxas-365/hirematch/pkg/errx"
	"github.com/Abraxas-365/hirematch/pkg/fsx"
	"github.com/Abraxas-365/hirematch/pkg/kernel"
	"github.com/Abraxas-365/hirematch/pkg/logx"
	"github.com/Abraxas-365/hirematch/recruitment/resume"
	"github.com/google/uuid"
)

type Service struct {
	repo    resume.Repository
	parser  resume.Parser
	files   fsx.FileSystem
	tasks   resume.TaskStore
	queue   resume.TaskQueue
	metrics *metrics.Metrics
}

// NewService creates a new resume service
func NewService(
	repo resume.Repository,
	parser resume.Parser,
	files fsx.FileSystem,
	tasks resume.TaskStore,
	queue resume.TaskQueue,
	m *metrics.Metrics,
) *Service {
	return &Service{
		repo:    repo,
		parser:  parser,
		files:   files,
		tasks:   tasks,
		queue:   queue,
		metrics: m,
	}
}

// ============================================================================
// Upload & Parse Resume
// ============================================================================

// UploadResume parses a stored file and makes it the user's active resume.
// When parsing or saving fails the stored file is removed and the error returned.
func (s *Service) UploadResume(ctx context.Context, req resume.UploadResumeRequest) (*resume.ResumeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	logx.Infof("Parsing resume for user %s: %s", req.UserID, req.FilePath)

	start := time.Now()
	result, err := s.parser.Parse(ctx, req.FilePath, req.FileType)
	s.metrics.ObserveParse(req.FileType, err, time.Since(start))
	if err != nil {
		s.removeFile(req.FilePath)
		return nil, asParseError(err).
			WithDetail("file_name", req.FileName)
	}

	r := resume.NewResume(kernel.NewResumeID(uuid.NewString()), req, result)
	if err := s.repo.CreateActive(ctx, r); err != nil {
		s.removeFile(req.FilePath)
		return nil, err
	}

	logx.Infof("Resume %s parsed: %d skills, %d months, quality %.1f",
		r.ID, len(r.Profile.Skills), r.TotalExperienceMonths, r.QualityScore)
	return r.ToResponse(), nil
}

// removeFile deletes an upload that will never be referenced by a resume
func (s *Service) removeFile(path string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.files.DeleteFile(ctx, path); err != nil {
		logx.Warnf("Failed to delete orphaned upload %s: %v", path, err)
	}
}

func asParseError(err error) *errx.Error {
	var e *errx.Error
	if errors.As(err, &e) {
		return e
	}
	return resume.ErrRegistry.NewWithCause(resume.CodeResumeParseFailed, err)
}

// ============================================================================
// Queries
// ============================================================================

func (s *Service) GetActiveResume(ctx context.Context, userID kernel.UserID) (*resume.ResumeResponse, error) {
	r, err := s.repo.GetActiveByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return r.ToResponse(), nil
}

// GetResume returns a resume owned by userID
func (s *Service) GetResume(ctx context.Context, userID kernel.UserID, id kernel.ResumeID) (*resume.ResumeResponse, error) {
	r, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return r.ToResponse(), nil
}

func (s *Service) ListResumes(
	ctx context.Context,
	userID kernel.UserID,
	pagination kernel.PaginationOptions,
) (*kernel.Paginated[resume.ResumeSummary], error) {
	page, err := s.repo.ListByUserID(ctx, userID, pagination.Normalize())
	if err != nil {
		return nil, err
	}

	items := make([]resume.ResumeSummary, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, page.Items[i].ToSummary())
	}

	return &kernel.Paginated[resume.ResumeSummary]{
		Items: items,
		Page:  page.Page,
		Empty: len(items) == 0,
	}, nil
}

// ============================================================================
// Commands
// ============================================================================

// ActivateResume makes one of the user's resumes the active one
func (s *Service) ActivateResume(ctx context.Context, userID kernel.UserID, id kernel.ResumeID) (*resume.ResumeResponse, error) {
	r, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetActive(ctx, userID, id); err != nil {
		return nil, err
	}

	r.Activate()
	logx.Infof("Resume %s activated for user %s", id, userID)
	return r.ToResponse(), nil
}

// DeleteResume removes the resume record and its stored file
func (s *Service) DeleteResume(ctx context.Context, userID kernel.UserID, id kernel.ResumeID) error {
	r, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.files.DeleteFile(ctx, r.FilePath); err != nil {
		logx.Warnf("Resume %s deleted but its file %s was not: %v", id, r.FilePath, err)
	}
	return nil
}

func (s *Service) getOwned(ctx context.Context, userID kernel.UserID, id kernel.ResumeID) (*resume.Resume, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !r.OwnedBy(userID) {
		return nil, resume.ErrNotOwner().
			WithDetail("resume_id", id).
			WithDetail("user_id", userID)
	}
	return r, nil
}
