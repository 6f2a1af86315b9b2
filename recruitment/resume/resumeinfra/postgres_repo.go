package resumeinfra

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Abraxas-365/hirematch/pkg/kernel"
	"github.com/Abraxas-365/hirematch/pkg/logx"
	"github.com/Abraxas-365/hirematch/recruitment/resume"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const resumeColumns = `
	id, user_id, file_name, file_path, file_type, file_size,
	parsed_data, total_experience_months, quality_score, is_active,
	uploaded_at, updated_at`

type PostgresResumeRepository struct {
	db *sqlx.DB
}

func NewPostgresResumeRepository(db *sqlx.DB) *PostgresResumeRepository {
	return &PostgresResumeRepository{db: db}
}

var _ resume.Repository = (*PostgresResumeRepository)(nil)

// ============================================================================
// CRUD Operations
// ============================================================================

// CreateActive inserts the resume and its skills, deactivating every other
// resume of the same user in the same transaction
func (r *PostgresResumeRepository) CreateActive(ctx context.Context, res *resume.Resume) error {
	row, err := fromDomain(res)
	if err != nil {
		return resume.ErrInvalidResumeData().
			WithDetail("field", "parsed_data").
			WithDetail("error", err.Error())
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return resume.ErrRegistry.NewWithCause(resume.CodeResumeSaveFailed, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`UPDATE resumes SET is_active = FALSE, updated_at = NOW() WHERE user_id = $1 AND is_active`,
		row.UserID,
	); err != nil {
		return resume.ErrRegistry.NewWithCause(resume.CodeResumeSaveFailed, err).
			WithDetail("operation", "deactivate")
	}

	row.IsActive = true
	query := `
		INSERT INTO resumes (` + resumeColumns + `)
		VALUES (
			:id, :user_id, :file_name, :file_path, :file_type, :file_size,
			:parsed_data, :total_experience_months, :quality_score, :is_active,
			:uploaded_at, :updated_at
		)`
	if _, err := tx.NamedExecContext(ctx, query, row); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return resume.ErrResumeAlreadyExists().WithDetail("resume_id", res.ID)
		}
		return resume.ErrRegistry.NewWithCause(resume.CodeResumeSaveFailed, err).
			WithDetail("resume_id", res.ID).
			WithDetail("operation", "insert")
	}

	if skills := skillRows(res); len(skills) > 0 {
		if _, err := tx.NamedExecContext(ctx, `
			INSERT INTO resume_skills (resume_id, skill_name, skill_category)
			VALUES (:resume_id, :skill_name, :skill_category)`, skills); err != nil {
			return resume.ErrRegistry.NewWithCause(resume.CodeResumeSaveFailed, err).
				WithDetail("resume_id", res.ID).
				WithDetail("operation", "insert_skills")
		}
	}

	if err := tx.Commit(); err != nil {
		return resume.ErrRegistry.NewWithCause(resume.CodeResumeSaveFailed, err)
	}

	res.IsActive = true
	logx.Infof("Stored resume %s for user %s (%d skills)", res.ID, res.UserID, len(res.Profile.Skills))
	return nil
}

// GetByID retrieves a resume by ID
func (r *PostgresResumeRepository) GetByID(ctx context.Context, id kernel.ResumeID) (*resume.Resume, error) {
	var row resumeRow
	err := r.db.GetContext(ctx, &row, `SELECT `+resumeColumns+` FROM resumes WHERE id = $1`, id.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, resume.ErrResumeNotFound().WithDetail("resume_id", id)
		}
		return nil, resume.ErrRegistry.NewWithCause(resume.CodeResumeQueryFailed, err).
			WithDetail("resume_id", id)
	}
	return row.toDomain()
}

// GetActiveByUserID retrieves the newest active resume of a user
func (r *PostgresResumeRepository) GetActiveByUserID(ctx context.Context, userID kernel.UserID) (*resume.Resume, error) {
	var row resumeRow
	err := r.db.GetContext(ctx, &row, `
		SELECT `+resumeColumns+`
		FROM resumes
		WHERE user_id = $1 AND is_active
		ORDER BY uploaded_at DESC
		LIMIT 1`, userID.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, resume.ErrNoActiveResume().WithDetail("user_id", userID)
		}
		return nil, resume.ErrRegistry.NewWithCause(resume.CodeResumeQueryFailed, err).
			WithDetail("user_id", userID)
	}
	return row.toDomain()
}

// ListByUserID lists a user's resumes, newest first
func (r *PostgresResumeRepository) ListByUserID(
	ctx context.Context,
	userID kernel.UserID,
	pagination kernel.PaginationOptions,
) (*kernel.Paginated[resume.Resume], error) {
	pagination = pagination.Normalize()

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM resumes WHERE user_id = $1`, userID.String()); err != nil {
		return nil, resume.ErrRegistry.NewWithCause(resume.CodeResumeQueryFailed, err).
			WithDetail("user_id", userID).
			WithDetail("operation", "count")
	}

	var rows []resumeRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT `+resumeColumns+`
		FROM resumes
		WHERE user_id = $1
		ORDER BY uploaded_at DESC
		LIMIT $2 OFFSET $3`,
		userID.String(), pagination.PageSize, pagination.Offset())
	if err != nil {
		return nil, resume.ErrRegistry.NewWithCause(resume.CodeResumeQueryFailed, err).
			WithDetail("user_id", userID)
	}

	items := make([]resume.Resume, 0, len(rows))
	for _, row := range rows {
		res, err := row.toDomain()
		if err != nil {
			logx.Errorf("Failed to convert resume %s: %v", row.ID, err)
			continue
		}
		items = append(items, *res)
	}

	return kernel.NewPaginated(items, pagination, total), nil
}

// SetActive makes id the only active resume of userID
func (r *PostgresResumeRepository) SetActive(ctx context.Context, userID kernel.UserID, id kernel.ResumeID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return resume.ErrRegistry.NewWithCause(resume.CodeResumeSaveFailed, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`UPDATE resumes SET is_active = FALSE, updated_at = NOW() WHERE user_id = $1 AND id <> $2 AND is_active`,
		userID.String(), id.String(),
	); err != nil {
		return resume.ErrRegistry.NewWithCause(resume.CodeResumeSaveFailed, err).
			WithDetail("operation", "deactivate")
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE resumes SET is_active = TRUE, updated_at = NOW() WHERE id = $1 AND user_id = $2`,
		id.String(), userID.String(),
	)
	if err != nil {
		return resume.ErrRegistry.NewWithCause(resume.CodeResumeSaveFailed, err).
			WithDetail("resume_id", id)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return resume.ErrRegistry.NewWithCause(resume.CodeResumeSaveFailed, err)
	}
	if rows == 0 {
		return resume.ErrResumeNotFound().WithDetail("resume_id", id)
	}

	if err := tx.Commit(); err != nil {
		return resume.ErrRegistry.NewWithCause(resume.CodeResumeSaveFailed, err)
	}
	return nil
}

// Delete removes a resume; resume_skills rows cascade
func (r *PostgresResumeRepository) Delete(ctx context.Context, id kernel.ResumeID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM resumes WHERE id = $1`, id.String())
	if err != nil {
		return resume.ErrRegistry.NewWithCause(resume.CodeResumeSaveFailed, err).
			WithDetail("resume_id", id).
			WithDetail("operation", "delete")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return resume.ErrRegistry.NewWithCause(resume.CodeResumeSaveFailed, err)
	}
	if rows == 0 {
		return resume.ErrResumeNotFound().WithDetail("resume_id", id)
	}
	return nil
}
