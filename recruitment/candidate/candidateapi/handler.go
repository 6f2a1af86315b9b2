package candidateapi

import (
	"context"

	"github.com/Abraxas-365/hirematch/pkg/iam/auth"
	"github.com/Abraxas-365/hirematch/pkg/kernel"
	"github.com/Abraxas-365/hirematch/recruitment/candidate"
	"github.com/gofiber/fiber/v2"
)

// Service is the part of candidatesrv the handlers call
type Service interface {
	GetProfile(ctx context.Context, userID kernel.UserID) (*candidate.Profile, error)
	UpdateProfile(ctx context.Context, userID kernel.UserID, req candidate.UpdateProfileRequest) (*candidate.Profile, error)
}

// Handlers provides HTTP handlers for the caller's profile
type Handlers struct {
	service Service
}

// NewHandlers creates a new candidate handlers instance
func NewHandlers(service Service) *Handlers {
	return &Handlers{
		service: service,
	}
}

func (h *Handlers) RegisterRoutes(app *fiber.App, authMiddleware *auth.Middleware) {
	profile := app.Group("/api/v1/profile", authMiddleware.Authenticate())

	profile.Get("/", h.GetProfile)
	profile.Put("/", h.UpdateProfile)
}

// GetProfile returns the caller's profile
// GET /api/v1/profile
func (h *Handlers) GetProfile(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	profile, err := h.service.GetProfile(c.UserContext(), authCtx.UserID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"user": profile})
}

// UpdateProfile edits the caller's profile
// PUT /api/v1/profile
func (h *Handlers) UpdateProfile(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req candidate.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return candidate.ErrInvalidProfileData().WithDetail("parse_error", err.Error())
	}

	profile, err := h.service.UpdateProfile(c.UserContext(), authCtx.UserID, req)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
		"user":    profile,
	})
}
