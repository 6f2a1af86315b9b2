package candidate

import (
	"context"

	"github.com/Abraxas-365/hirematch/pkg/kernel"
)

type Repository interface {
	// GetByUserID retrieves the profile of a user account
	GetByUserID(ctx context.Context, userID kernel.UserID) (*Profile, error)

	// UpdateProfile saves the editable profile fields
	UpdateProfile(ctx context.Context, profile *Profile) error
}
