package candidate

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// UpdateProfileRequest - DTO for editing the caller's profile.
// Nil fields are left untouched; an empty Location clears it.
type UpdateProfileRequest struct {
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=255"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Location *string `json:"location,omitempty" validate:"omitempty,max=255"`
	Bio      *string `json:"bio,omitempty" validate:"omitempty,max=2000"`
}

func (r *UpdateProfileRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return ErrInvalidProfileData().WithCause(err)
	}
	return nil
}
