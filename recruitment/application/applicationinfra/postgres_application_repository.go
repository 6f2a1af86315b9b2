package applicationinfra

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Abraxas-365/hirematch/pkg/kernel"
	"github.com/Abraxas-365/hirematch/recruitment/application"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// PostgresApplicationRepository implements application.Repository and
// application.SavedJobRepository using PostgreSQL
type PostgresApplicationRepository struct {
	db *sqlx.DB
}

// NewPostgresApplicationRepository creates a new PostgreSQL application repository
func NewPostgresApplicationRepository(db *sqlx.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{
		db: db,
	}
}

// ============================================================================
// Database Models
// ============================================================================

type applicationModel struct {
	ID          string          `db:"id"`
	UserID      string          `db:"user_id"`
	JobID       string          `db:"job_id"`
	ResumeID    sql.NullString  `db:"resume_id"`
	Status      string          `db:"status"`
	CoverLetter sql.NullString  `db:"cover_letter"`
	MatchScore  sql.NullFloat64 `db:"match_score"`
	AppliedDate time.Time       `db:"applied_date"`
}

// toEntity converts database model to domain entity
func (m *applicationModel) toEntity() application.Application {
	a := application.Application{
		ID:          kernel.ApplicationID(m.ID),
		UserID:      kernel.UserID(m.UserID),
		JobID:       kernel.JobID(m.JobID),
		Status:      application.ApplicationStatus(m.Status),
		CoverLetter: m.CoverLetter.String,
		AppliedAt:   m.AppliedDate,
	}
	if m.ResumeID.Valid {
		resumeID := kernel.ResumeID(m.ResumeID.String)
		a.ResumeID = &resumeID
	}
	if m.MatchScore.Valid {
		score := m.MatchScore.Float64
		a.MatchScore = &score
	}
	return a
}

// fromEntity converts domain entity to database model
func fromEntity(a *application.Application) *applicationModel {
	m := &applicationModel{
		ID:          a.ID.String(),
		UserID:      a.UserID.String(),
		JobID:       a.JobID.String(),
		Status:      string(a.Status),
		CoverLetter: sql.NullString{String: a.CoverLetter, Valid: a.CoverLetter != ""},
		AppliedDate: a.AppliedAt,
	}
	if a.HasResume() {
		m.ResumeID = sql.NullString{String: a.ResumeID.String(), Valid: true}
	}
	if a.MatchScore != nil {
		m.MatchScore = sql.NullFloat64{Float64: *a.MatchScore, Valid: true}
	}
	return m
}

type savedJobModel struct {
	UserID    string    `db:"user_id"`
	JobID     string    `db:"job_id"`
	SavedDate time.Time `db:"saved_date"`
}

func (m *savedJobModel) toEntity() application.SavedJob {
	return application.SavedJob{
		UserID:  kernel.UserID(m.UserID),
		JobID:   kernel.JobID(m.JobID),
		SavedAt: m.SavedDate,
	}
}

// ============================================================================
// Applications
// ============================================================================

// Create creates a new application
func (r *PostgresApplicationRepository) Create(ctx context.Context, a *application.Application) error {
	query := `
		INSERT INTO applications (
			id, user_id, job_id, resume_id, status, cover_letter, match_score, applied_date
		) VALUES (
			:id, :user_id, :job_id, :resume_id, :status, :cover_letter, :match_score, :applied_date
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, fromEntity(a))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case pqUniqueViolation:
				return application.ErrAlreadyApplied().WithDetail("job_id", a.JobID.String())
			case pqForeignKeyViolation:
				return application.ErrInvalidRequest().WithCause(err).WithDetail("constraint", pqErr.Constraint)
			}
		}
		return application.ErrSaveFailed().WithCause(err)
	}

	return nil
}

// ExistsByUserAndJob checks if the user already applied to the job
func (r *PostgresApplicationRepository) ExistsByUserAndJob(ctx context.Context, userID kernel.UserID, jobID kernel.JobID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE user_id = $1 AND job_id = $2)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, userID.String(), jobID.String()); err != nil {
		return false, application.ErrQueryFailed().WithCause(err)
	}
	return exists, nil
}

// ListByUserID lists a user's applications, newest first
func (r *PostgresApplicationRepository) ListByUserID(ctx context.Context, userID kernel.UserID) ([]application.Application, error) {
	query := `
		SELECT id, user_id, job_id, resume_id, status, cover_letter, match_score, applied_date
		FROM applications
		WHERE user_id = $1
		ORDER BY applied_date DESC, id
	`

	var models []applicationModel
	if err := r.db.SelectContext(ctx, &models, query, userID.String()); err != nil {
		return nil, application.ErrQueryFailed().WithCause(err)
	}

	apps := make([]application.Application, 0, len(models))
	for i := range models {
		apps = append(apps, models[i].toEntity())
	}
	return apps, nil
}

// ============================================================================
// Saved Jobs
// ============================================================================

// SavedJobs exposes the saved job half of the repository
func (r *PostgresApplicationRepository) SavedJobs() application.SavedJobRepository {
	return savedJobRepository{db: r.db}
}

type savedJobRepository struct {
	db *sqlx.DB
}

// Save bookmarks a job for a user
func (r savedJobRepository) Save(ctx context.Context, saved *application.SavedJob) error {
	query := `INSERT INTO saved_jobs (user_id, job_id, saved_date) VALUES ($1, $2, $3)`

	_, err := r.db.ExecContext(ctx, query, saved.UserID.String(), saved.JobID.String(), saved.SavedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case pqUniqueViolation:
				return application.ErrAlreadySaved().WithDetail("job_id", saved.JobID.String())
			case pqForeignKeyViolation:
				return application.ErrInvalidRequest().WithCause(err).WithDetail("constraint", pqErr.Constraint)
			}
		}
		return application.ErrSaveFailed().WithCause(err)
	}

	return nil
}

// ListByUserID lists a user's saved jobs, newest first
func (r savedJobRepository) ListByUserID(ctx context.Context, userID kernel.UserID) ([]application.SavedJob, error) {
	query := `SELECT user_id, job_id, saved_date FROM saved_jobs WHERE user_id = $1 ORDER BY saved_date DESC, job_id`

	var models []savedJobModel
	if err := r.db.SelectContext(ctx, &models, query, userID.String()); err != nil {
		return nil, application.ErrQueryFailed().WithCause(err)
	}

	saved := make([]application.SavedJob, 0, len(models))
	for i := range models {
		saved = append(saved, models[i].toEntity())
	}
	return saved, nil
}
