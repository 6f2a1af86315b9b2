package resumeinfra

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Abraxas-365/hirematch/pkg/kernel"
	"github.com/Abraxas-365/hirematch/recruitment/resume"
)

// resumeRow represents a row from the resumes table
type resumeRow struct {
	ID                    string    `db:"id"`
	UserID                string    `db:"user_id"`
	FileName              string    `db:"file_name"`
	FilePath              string    `db:"file_path"`
	FileType              string    `db:"file_type"`
	FileSize              int64     `db:"file_size"`
	ParsedData            []byte    `db:"parsed_data"`
	TotalExperienceMonths int       `db:"total_experience_months"`
	QualityScore          float64   `db:"quality_score"`
	IsActive              bool      `db:"is_active"`
	UploadedAt            time.Time `db:"uploaded_at"`
	UpdatedAt             time.Time `db:"updated_at"`
}

// skillRow is one denormalized skill of a resume, used for SQL filtering
type skillRow struct {
	ResumeID      string `db:"resume_id"`
	SkillName     string `db:"skill_name"`
	SkillCategory string `db:"skill_category"`
}

// toDomain converts a resumeRow to a resume.Resume domain model
func (r *resumeRow) toDomain() (*resume.Resume, error) {
	out := &resume.Resume{
		ID:                    kernel.ResumeID(r.ID),
		UserID:                kernel.UserID(r.UserID),
		FileName:              r.FileName,
		FilePath:              r.FilePath,
		FileType:              r.FileType,
		FileSize:              r.FileSize,
		TotalExperienceMonths: r.TotalExperienceMonths,
		QualityScore:          r.QualityScore,
		IsActive:              r.IsActive,
		UploadedAt:            r.UploadedAt,
		UpdatedAt:             r.UpdatedAt,
	}

	if len(r.ParsedData) > 0 {
		if err := json.Unmarshal(r.ParsedData, &out.Profile); err != nil {
			return nil, fmt.Errorf("failed to unmarshal parsed_data: %w", err)
		}
	}
	return out, nil
}

// fromDomain converts a resume.Resume into its row form
func fromDomain(r *resume.Resume) (*resumeRow, error) {
	parsed, err := json.Marshal(r.Profile)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal parsed_data: %w", err)
	}

	return &resumeRow{
		ID:                    r.ID.String(),
		UserID:                r.UserID.String(),
		FileName:              r.FileName,
		FilePath:              r.FilePath,
		FileType:              r.FileType,
		FileSize:              r.FileSize,
		ParsedData:            parsed,
		TotalExperienceMonths: r.TotalExperienceMonths,
		QualityScore:          r.QualityScore,
		IsActive:              r.IsActive,
		UploadedAt:            r.UploadedAt,
		UpdatedAt:             r.UpdatedAt,
	}, nil
}

func skillRows(r *resume.Resume) []skillRow {
	rows := make([]skillRow, 0, len(r.Profile.Skills))
	for _, s := range r.Profile.Skills {
		rows = append(rows, skillRow{
			ResumeID:      r.ID.String(),
			SkillName:     s.Name,
			SkillCategory: s.Category,
		})
	}
	return rows
}
