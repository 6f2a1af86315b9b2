package candidateinfra

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Abraxas-365/hirematch/pkg/kernel"
	"github.com/Abraxas-365/hirematch/recruitment/candidate"
	"github.com/jmoiron/sqlx"
)

// PostgresCandidateRepository reads candidate profiles from the users table
type PostgresCandidateRepository struct {
	db *sqlx.DB
}

func NewPostgresCandidateRepository(db *sqlx.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

type profileModel struct {
	ID        string         `db:"id"`
	Email     string         `db:"email"`
	Role      string         `db:"role"`
	FullName  sql.NullString `db:"full_name"`
	Phone     sql.NullString `db:"phone"`
	Location  sql.NullString `db:"location"`
	Bio       sql.NullString `db:"bio"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (m *profileModel) toEntity() *candidate.Profile {
	return &candidate.Profile{
		UserID:    kernel.UserID(m.ID),
		Email:     m.Email,
		Role:      candidate.Role(m.Role),
		FullName:  m.FullName.String,
		Phone:     m.Phone.String,
		Location:  m.Location.String,
		Bio:       m.Bio.String,
		UpdatedAt: m.UpdatedAt,
	}
}

// GetByUserID retrieves the profile of a user account
func (r *PostgresCandidateRepository) GetByUserID(ctx context.Context, userID kernel.UserID) (*candidate.Profile, error) {
	query := `
		SELECT id, email, role, full_name, phone, location, bio, updated_at
		FROM users
		WHERE id = $1
	`

	var model profileModel
	if err := r.db.GetContext(ctx, &model, query, userID.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, candidate.ErrCandidateNotFound().WithDetail("user_id", userID.String())
		}
		return nil, candidate.ErrProfileQueryFailed().WithCause(err)
	}

	return model.toEntity(), nil
}

// UpdateProfile saves the editable profile fields
func (r *PostgresCandidateRepository) UpdateProfile(ctx context.Context, p *candidate.Profile) error {
	query := `
		UPDATE users
		SET full_name = $2, phone = $3, location = $4, bio = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		p.UserID.String(),
		nullString(p.FullName),
		nullString(p.Phone),
		nullString(p.Location),
		nullString(p.Bio),
		p.UpdatedAt,
	)
	if err != nil {
		return candidate.ErrProfileSaveFailed().WithCause(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return candidate.ErrProfileSaveFailed().WithCause(err)
	}
	if rows == 0 {
		return candidate.ErrCandidateNotFound().WithDetail("user_id", p.UserID.String())
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
