package candidate

import (
	"strings"
	"time"

	"github.com/Abraxas-365/hirematch/pkg/kernel"
)

// Role distinguishes job seekers from recruiters
type Role string

const (
	RoleJobSeeker Role = "job_seeker"
	RoleRecruiter Role = "recruiter"
)

// Profile is the part of a user account the matching pipeline reads.
// Accounts are created and authenticated elsewhere.
type Profile struct {
	UserID    kernel.UserID `db:"id" json:"id"`
	Email     string        `db:"email" json:"email"`
	Role      Role          `db:"role" json:"role"`
	FullName  string        `db:"full_name" json:"full_name"`
	Phone     string        `db:"phone" json:"phone"`
	Location  string        `db:"location" json:"location"`
	Bio       string        `db:"bio" json:"bio"`
	UpdatedAt time.Time     `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// HasLocation checks if the candidate told us where they are
func (p *Profile) HasLocation() bool {
	return strings.TrimSpace(p.Location) != ""
}

// ApplyUpdate copies the fields present in req onto the profile
func (p *Profile) ApplyUpdate(req UpdateProfileRequest, now time.Time) {
	if req.FullName != nil {
		p.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Phone != nil {
		p.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Location != nil {
		p.Location = strings.TrimSpace(*req.Location)
	}
	if req.Bio != nil {
		p.Bio = *req.Bio
	}
	p.UpdatedAt = now
}
