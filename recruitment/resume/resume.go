package resume

import (
	"time"

	"github.com/Abraxas-365/hirematch/pkg/kernel"
	"github.com/Abraxas-365/hirematch/recruitment/skill"
)

// DegreeLevel is the family a detected degree mention belongs to
type DegreeLevel string

const (
	DegreeBachelor  DegreeLevel = "bachelor"
	DegreeMaster    DegreeLevel = "master"
	DegreeDoctorate DegreeLevel = "doctorate"
	DegreeAssociate DegreeLevel = "associate"
)

// Resume is a stored resume file together with its parsed profile
type Resume struct {
	ID     kernel.ResumeID `db:"id" json:"id"`
	UserID kernel.UserID   `db:"user_id" json:"user_id"`

	// File metadata
	FileName string `db:"file_name" json:"file_name"`
	FilePath string `db:"file_path" json:"file_path"`
	FileType string `db:"file_type" json:"file_type"`
	FileSize int64  `db:"file_size" json:"file_size"`

	Profile               StructuredProfile `db:"parsed_data" json:"parsed_data"`
	TotalExperienceMonths int               `db:"total_experience_months" json:"total_experience_months"`
	QualityScore          float64           `db:"quality_score" json:"quality_score"`
	IsActive              bool              `db:"is_active" json:"is_active"`

	UploadedAt time.Time `db:"uploaded_at" json:"uploaded_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// StructuredProfile is everything the parser derives from a document's text
type StructuredProfile struct {
	Contact    Contact           `json:"contact"`
	Skills     []skill.Tag       `json:"skills"`
	Education  []EducationEntry  `json:"education"`
	Experience []ExperienceEntry `json:"experience"`

	// TotalExperienceMonths is derived from Experience, never set independently
	TotalExperienceMonths int `json:"total_experience_months"`

	Links          *ProfileLinks `json:"profile_links,omitempty"`
	RawTextPreview string        `json:"raw_text,omitempty"`
}

type Contact struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type EducationEntry struct {
	Degree  string      `json:"degree"`
	Level   DegreeLevel `json:"level"`
	Year    string      `json:"year,omitempty"`
	Context string      `json:"context"`
}

type ExperienceEntry struct {
	DateRange string `json:"date_range"`
	Context   string `json:"context"`
}

// ProfileLinks holds public profile references found in the text
type ProfileLinks struct {
	GitHub    string `json:"github,omitempty"`
	LeetCode  string `json:"leetcode,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

// ParseResult is the output of a successful parse
type ParseResult struct {
	Profile      StructuredProfile `json:"profile"`
	QualityScore float64           `json:"quality_score"`
}

// ============================================================================
// Domain Methods
// ============================================================================

func (p *StructuredProfile) HasEmail() bool     { return p.Contact.Email != "" }
func (p *StructuredProfile) HasPhone() bool     { return p.Contact.Phone != "" }
func (p *StructuredProfile) HasEducation() bool { return len(p.Education) > 0 }
func (p *StructuredProfile) HasExperience() bool {
	return len(p.Experience) > 0
}

// SkillNames returns the canonical skills in match order
func (p *StructuredProfile) SkillNames() []string {
	names := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		names = append(names, s.Name)
	}
	return names
}

// NewResume builds an active resume record from a parse result
func NewResume(id kernel.ResumeID, req UploadResumeRequest, result *ParseResult) *Resume {
	now := time.Now()
	return &Resume{
		ID:                    id,
		UserID:                req.UserID,
		FileName:              req.FileName,
		FilePath:              req.FilePath,
		FileType:              req.FileType,
		FileSize:              req.FileSize,
		Profile:               result.Profile,
		TotalExperienceMonths: result.Profile.TotalExperienceMonths,
		QualityScore:          result.QualityScore,
		IsActive:              true,
		UploadedAt:            now,
		UpdatedAt:             now,
	}
}

// Activate sets the resume as the user's active one
func (r *Resume) Activate() {
	r.IsActive = true
	r.UpdatedAt = time.Now()
}

// Deactivate removes the active flag
func (r *Resume) Deactivate() {
	r.IsActive = false
	r.UpdatedAt = time.Now()
}

func (r *Resume) OwnedBy(userID kernel.UserID) bool {
	return r.UserID == userID
}

// ExperienceYears converts stored months to fractional years
func (r *Resume) ExperienceYears() float64 {
	return float64(r.TotalExperienceMonths) / 12.0
}

func (r *Resume) SkillNames() []string {
	return r.Profile.SkillNames()
}
