package candidatesrv

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Abraxas-365/hirematch/pkg/errx"
	"github.com/Abraxas-365/hirematch/pkg/kernel"
	"github.com/Abraxas-365/hirematch/recruitment/candidate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	profiles map[kernel.UserID]candidate.Profile
	err      error
}

func (r *fakeRepo) GetByUserID(_ context.Context, id kernel.UserID) (*candidate.Profile, error) {
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.profiles[id]
	if !ok {
		return nil, candidate.ErrCandidateNotFound()
	}
	return &p, nil
}

func (r *fakeRepo) UpdateProfile(_ context.Context, p *candidate.Profile) error {
	r.profiles[p.UserID] = *p
	return nil
}

func strPtr(s string) *string { return &s }

func TestLocation(t *testing.T) {
	repo := &fakeRepo{profiles: map[kernel.UserID]candidate.Profile{
		"u1": {UserID: "u1", Location: "Bangalore"},
	}}
	s := NewCandidateService(repo)

	loc, err := s.Location(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Bangalore", loc)

	loc, err = s.Location(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Empty(t, loc)

	repo.err = errors.New("connection reset")
	_, err = s.Location(context.Background(), "u1")
	assert.Error(t, err)
}

func TestUpdateProfile(t *testing.T) {
	repo := &fakeRepo{profiles: map[kernel.UserID]candidate.Profile{
		"u1": {UserID: "u1", FullName: "Asha Rao", Location: "Pune"},
	}}
	s := NewCandidateService(repo)
	s.now = func() time.Time { return time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC) }

	p, err := s.UpdateProfile(context.Background(), "u1", candidate.UpdateProfileRequest{Location: strPtr("  Mumbai ")})
	require.NoError(t, err)

	assert.Equal(t, "Mumbai", p.Location)
	assert.Equal(t, "Asha Rao", p.FullName)
	assert.Equal(t, "Mumbai", repo.profiles["u1"].Location)
	assert.Equal(t, s.now(), repo.profiles["u1"].UpdatedAt)

	t.Run("too long phone", func(t *testing.T) {
		_, err := s.UpdateProfile(context.Background(), "u1", candidate.UpdateProfileRequest{Phone: strPtr("123456789012345678901234")})
		assert.True(t, errx.IsCode(err, candidate.CodeInvalidProfileData))
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := s.UpdateProfile(context.Background(), "ghost", candidate.UpdateProfileRequest{})
		assert.True(t, errx.IsCode(err, candidate.CodeCandidateNotFound))
	})
}
