package jobinfra

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Abraxas-365/hirematch/pkg/kernel"
	"github.com/Abraxas-365/hirematch/recruitment/job"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresJobRepository implements job.Repository using PostgreSQL
type PostgresJobRepository struct {
	db *sqlx.DB
}

// NewPostgresJobRepository creates a new PostgreSQL job repository
func NewPostgresJobRepository(db *sqlx.DB) *PostgresJobRepository {
	return &PostgresJobRepository{
		db: db,
	}
}

// ============================================================================
// Database Model
// ============================================================================

const jobColumns = `
	id, posted_by, title, company_name, description, required_skills,
	experience_min, experience_max, location, job_type, salary_min, salary_max,
	posted_date, deadline, status, source, external_url, view_count,
	created_at, updated_at`

type jobModel struct {
	ID             string         `db:"id"`
	PostedBy       sql.NullString `db:"posted_by"`
	Title          string         `db:"title"`
	CompanyName    string         `db:"company_name"`
	Description    string         `db:"description"`
	RequiredSkills pq.StringArray `db:"required_skills"`
	ExperienceMin  *int           `db:"experience_min"`
	ExperienceMax  *int           `db:"experience_max"`
	Location       sql.NullString `db:"location"`
	JobType        sql.NullString `db:"job_type"`
	SalaryMin      *float64       `db:"salary_min"`
	SalaryMax      *float64       `db:"salary_max"`
	PostedDate     *time.Time     `db:"posted_date"`
	Deadline       *time.Time     `db:"deadline"`
	Status         string         `db:"status"`
	Source         string         `db:"source"`
	ExternalURL    sql.NullString `db:"external_url"`
	ViewCount      int            `db:"view_count"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

// toEntity converts database model to domain entity
func (m *jobModel) toEntity() job.JobPosting {
	skills := []string(m.RequiredSkills)
	if skills == nil {
		skills = []string{}
	}

	return job.JobPosting{
		ID:             kernel.JobID(m.ID),
		PostedBy:       kernel.UserID(m.PostedBy.String),
		Title:          m.Title,
		Company:        m.CompanyName,
		Description:    m.Description,
		RequiredSkills: skills,
		ExperienceMin:  m.ExperienceMin,
		ExperienceMax:  m.ExperienceMax,
		Location:       m.Location.String,
		JobType:        m.JobType.String,
		SalaryMin:      m.SalaryMin,
		SalaryMax:      m.SalaryMax,
		PostedDate:     m.PostedDate,
		Deadline:       m.Deadline,
		Status:         job.JobStatus(m.Status),
		Source:         job.Source(m.Source),
		ExternalURL:    m.ExternalURL.String,
		ViewCount:      m.ViewCount,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// fromEntity converts domain entity to database model
func fromEntity(j *job.JobPosting) *jobModel {
	return &jobModel{
		ID:             j.ID.String(),
		PostedBy:       nullString(j.PostedBy.String()),
		Title:          j.Title,
		CompanyName:    j.Company,
		Description:    j.Description,
		RequiredSkills: pq.StringArray(j.RequiredSkills),
		ExperienceMin:  j.ExperienceMin,
		ExperienceMax:  j.ExperienceMax,
		Location:       nullString(j.Location),
		JobType:        nullString(j.JobType),
		SalaryMin:      j.SalaryMin,
		SalaryMax:      j.SalaryMax,
		PostedDate:     j.PostedDate,
		Deadline:       j.Deadline,
		Status:         string(j.Status),
		Source:         string(j.Source),
		ExternalURL:    nullString(j.ExternalURL),
		ViewCount:      j.ViewCount,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func toEntities(models []jobModel) []job.JobPosting {
	entities := make([]job.JobPosting, 0, len(models))
	for i := range models {
		entities = append(entities, models[i].toEntity())
	}
	return entities
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new job
func (r *PostgresJobRepository) Create(ctx context.Context, jobEntity *job.JobPosting) error {
	query := `
		INSERT INTO jobs (
			id, posted_by, title, company_name, description, required_skills,
			experience_min, experience_max, location, job_type, salary_min, salary_max,
			posted_date, deadline, status, source, external_url, view_count,
			created_at, updated_at
		) VALUES (
			:id, :posted_by, :title, :company_name, :description, :required_skills,
			:experience_min, :experience_max, :location, :job_type, :salary_min, :salary_max,
			:posted_date, :deadline, :status, :source, :external_url, :view_count,
			:created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, fromEntity(jobEntity))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			if pqErr.Code == "23505" { // unique_violation
				return job.ErrJobAlreadyExists().WithDetail("job_id", jobEntity.ID.String())
			}
			if pqErr.Code == "23503" { // foreign_key_violation
				return job.ErrInvalidJobData().WithCause(err).WithDetail("posted_by", jobEntity.PostedBy.String())
			}
		}
		return job.ErrJobSaveFailed().WithCause(err)
	}

	return nil
}

// GetByID retrieves a job by ID
func (r *PostgresJobRepository) GetByID(ctx context.Context, id kernel.JobID) (*job.JobPosting, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	var model jobModel
	err := r.db.GetContext(ctx, &model, query, id.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, job.ErrJobNotFound().WithDetail("job_id", id.String())
		}
		return nil, job.ErrJobQueryFailed().WithCause(err)
	}

	entity := model.toEntity()
	return &entity, nil
}

// IncrementViewCount adds one view to the job
func (r *PostgresJobRepository) IncrementViewCount(ctx context.Context, id kernel.JobID) error {
	query := `UPDATE jobs SET view_count = view_count + 1 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id.String())
	if err != nil {
		return job.ErrJobSaveFailed().WithCause(err)
	}

	return requireRow(result, id)
}

// UpdateStatus changes the status of a job
func (r *PostgresJobRepository) UpdateStatus(ctx context.Context, id kernel.JobID, status job.JobStatus, updatedAt time.Time) error {
	query := `UPDATE jobs SET status = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, string(status), updatedAt, id.String())
	if err != nil {
		return job.ErrJobSaveFailed().WithCause(err)
	}

	return requireRow(result, id)
}

// Update saves the editable fields of a job
func (r *PostgresJobRepository) Update(ctx context.Context, jobEntity *job.JobPosting) error {
	query := `
		UPDATE jobs SET
			title = :title,
			company_name = :company_name,
			description = :description,
			required_skills = :required_skills,
			experience_min = :experience_min,
			experience_max = :experience_max,
			location = :location,
			job_type = :job_type,
			salary_min = :salary_min,
			salary_max = :salary_max,
			deadline = :deadline,
			status = :status,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, fromEntity(jobEntity))
	if err != nil {
		return job.ErrJobSaveFailed().WithCause(err)
	}

	return requireRow(result, jobEntity.ID)
}

// Delete removes a job. Applications and saves cascade.
func (r *PostgresJobRepository) Delete(ctx context.Context, id kernel.JobID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id.String())
	if err != nil {
		return job.ErrJobSaveFailed().WithCause(err)
	}

	return requireRow(result, id)
}

func requireRow(result sql.Result, id kernel.JobID) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return job.ErrJobSaveFailed().WithCause(err)
	}
	if rows == 0 {
		return job.ErrJobNotFound().WithDetail("job_id", id.String())
	}
	return nil
}

// ListActive returns every active job, newest posting first
func (r *PostgresJobRepository) ListActive(ctx context.Context) ([]job.JobPosting, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE status = $1 ORDER BY posted_date DESC NULLS LAST, id`

	var models []jobModel
	if err := r.db.SelectContext(ctx, &models, query, string(job.JobStatusActive)); err != nil {
		return nil, job.ErrJobQueryFailed().WithCause(err)
	}

	return toEntities(models), nil
}

// ListByIDs returns the jobs among ids that exist
func (r *PostgresJobRepository) ListByIDs(ctx context.Context, ids []kernel.JobID) ([]job.JobPosting, error) {
	if len(ids) == 0 {
		return []job.JobPosting{}, nil
	}

	keys := make(pq.StringArray, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, id.String())
	}

	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = ANY($1)`

	var models []jobModel
	if err := r.db.SelectContext(ctx, &models, query, keys); err != nil {
		return nil, job.ErrJobQueryFailed().WithCause(err)
	}

	return toEntities(models), nil
}

// Search lists jobs matching the request filters
func (r *PostgresJobRepository) Search(ctx context.Context, req job.SearchJobsRequest) (*kernel.Paginated[job.JobPosting], error) {
	req = req.Normalize()
	whereClause, args := buildSearchFilter(req)

	// Count total
	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM jobs %s", whereClause)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, job.ErrJobQueryFailed().WithCause(err)
	}

	argCount := len(args) + 1
	query := fmt.Sprintf(`
		SELECT %s
		FROM jobs
		%s
		ORDER BY posted_date DESC NULLS LAST, id
		LIMIT $%d OFFSET $%d
	`, jobColumns, whereClause, argCount, argCount+1)

	args = append(args, req.Pagination.PageSize, req.Pagination.Offset())

	var models []jobModel
	if err := r.db.SelectContext(ctx, &models, query, args...); err != nil {
		return nil, job.ErrJobQueryFailed().WithCause(err)
	}

	return kernel.NewPaginated(toEntities(models), req.Pagination, total), nil
}

// buildSearchFilter renders the WHERE clause and its positional arguments
func buildSearchFilter(req job.SearchJobsRequest) (string, []any) {
	whereConditions := []string{}
	args := []any{}
	argCount := 1

	if req.Status != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("status = $%d", argCount))
		args = append(args, string(req.Status))
		argCount++
	}

	if req.Query != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("(title ILIKE $%d OR company_name ILIKE $%d)", argCount, argCount))
		args = append(args, "%"+req.Query+"%")
		argCount++
	}

	if req.Location != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("location ILIKE $%d", argCount))
		args = append(args, "%"+req.Location+"%")
		argCount++
	}

	if req.JobType != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("job_type = $%d", argCount))
		args = append(args, req.JobType)
		argCount++
	}

	if len(req.Skills) > 0 {
		whereConditions = append(whereConditions, fmt.Sprintf("required_skills && $%d", argCount))
		args = append(args, pq.StringArray(req.Skills))
		argCount++
	}

	if req.ExperienceMax != nil {
		whereConditions = append(whereConditions, fmt.Sprintf("(experience_min IS NULL OR experience_min <= $%d)", argCount))
		args = append(args, *req.ExperienceMax)
	}

	if len(whereConditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(whereConditions, " AND "), args
}
