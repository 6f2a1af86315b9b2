package resume

import (
	"time"

	"github.com/Abraxas-365/hirematch/pkg/kernel"
	"github.com/Abraxas-365/hirematch/recruitment/skill"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ============================================================================
// Request DTOs
// ============================================================================

// UploadResumeRequest describes a stored file awaiting parsing
type UploadResumeRequest struct {
	UserID   kernel.UserID `json:"user_id" validate:"required"`
	FilePath string        `json:"file_path" validate:"required"`
	FileName string        `json:"file_name" validate:"required"`
	FileType string        `json:"file_type" validate:"required,oneof=pdf docx"`
	FileSize int64         `json:"file_size" validate:"gte=0"`
}

// Validate checks the request's struct tags
func (r *UploadResumeRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return ErrInvalidResumeData().WithCause(err)
	}
	return nil
}

// ============================================================================
// Response DTOs
// ============================================================================

// ResumeResponse is the API view of a resume
type ResumeResponse struct {
	ID                    kernel.ResumeID   `json:"id"`
	FileName              string            `json:"file_name"`
	FileType              string            `json:"file_type"`
	FileSize              int64             `json:"file_size"`
	ParsedData            StructuredProfile `json:"parsed_data"`
	Skills                []skill.Tag       `json:"skills"`
	TotalExperienceMonths int               `json:"total_experience_months"`
	QualityScore          float64           `json:"quality_score"`
	IsActive              bool              `json:"is_active"`
	UploadedAt            time.Time         `json:"uploaded_at"`
}

// ResumeSummary is the list view of a resume
type ResumeSummary struct {
	ID                    kernel.ResumeID `json:"id"`
	FileName              string          `json:"file_name"`
	FileType              string          `json:"file_type"`
	SkillCount            int             `json:"skill_count"`
	TotalExperienceMonths int             `json:"total_experience_months"`
	QualityScore          float64         `json:"quality_score"`
	IsActive              bool            `json:"is_active"`
	UploadedAt            time.Time       `json:"uploaded_at"`
}

func (r *Resume) ToResponse() *ResumeResponse {
	skills := r.Profile.Skills
	if skills == nil {
		skills = []skill.Tag{}
	}
	return &ResumeResponse{
		ID:                    r.ID,
		FileName:              r.FileName,
		FileType:              r.FileType,
		FileSize:              r.FileSize,
		ParsedData:            r.Profile,
		Skills:                skills,
		TotalExperienceMonths: r.TotalExperienceMonths,
		QualityScore:          r.QualityScore,
		IsActive:              r.IsActive,
		UploadedAt:            r.UploadedAt,
	}
}

func (r *Resume) ToSummary() ResumeSummary {
	return ResumeSummary{
		ID:                    r.ID,
		FileName:              r.FileName,
		FileType:              r.FileType,
		SkillCount:            len(r.Profile.Skills),
		TotalExperienceMonths: r.TotalExperienceMonths,
		QualityScore:          r.QualityScore,
		IsActive:              r.IsActive,
		UploadedAt:            r.UploadedAt,
	}
}
