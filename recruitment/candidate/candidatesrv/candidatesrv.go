package candidatesrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/hirematch/pkg/errx"
	"github.com/Abraxas-365/hirematch/pkg/kernel"
	"github.com/Abraxas-365/hirematch/pkg/logx"
	"github.com/Abraxas-365/hirematch/recruitment/candidate"
)

// CandidateService provides profile operations for candidates
type CandidateService struct {
	candidateRepo candidate.Repository
	now           func() time.Time
}

// NewCandidateService creates a new instance of the candidate service
func NewCandidateService(candidateRepo candidate.Repository) *CandidateService {
	return &CandidateService{
		candidateRepo: candidateRepo,
		now:           time.Now,
	}
}

// GetProfile retrieves the caller's profile
func (s *CandidateService) GetProfile(ctx context.Context, userID kernel.UserID) (*candidate.Profile, error) {
	return s.candidateRepo.GetByUserID(ctx, userID)
}

// UpdateProfile edits the caller's profile
func (s *CandidateService) UpdateProfile(ctx context.Context, userID kernel.UserID, req candidate.UpdateProfileRequest) (*candidate.Profile, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	profile, err := s.candidateRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.ApplyUpdate(req, s.now().UTC())

	if err := s.candidateRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, errx.Wrap(err, "failed to update profile", errx.TypeInternal)
	}

	return profile, nil
}

// Location returns the candidate's location, or "" when the user has no
// profile or never set one
func (s *CandidateService) Location(ctx context.Context, userID kernel.UserID) (string, error) {
	profile, err := s.candidateRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errx.IsCode(err, candidate.CodeCandidateNotFound) {
			logx.Debugf("No profile for user %s, scoring without location", userID)
			return "", nil
		}
		return "", err
	}
	return profile.Location, nil
}
