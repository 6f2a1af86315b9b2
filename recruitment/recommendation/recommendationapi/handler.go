package recommendationapi

import (
	"context"

	"github.com/Abraxas-365/hirematch/pkg/fiberx"
	"github.com/Abraxas-365/hirematch/pkg/iam/auth"
	"github.com/Abraxas-365/hirematch/pkg/kernel"
	"github.com/Abraxas-365/hirematch/recruitment/job"
	"github.com/Abraxas-365/hirematch/recruitment/recommendation"
	"github.com/gofiber/fiber/v2"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Service is the part of recommendationsrv the handlers call
type Service interface {
	Recommend(ctx context.Context, userID kernel.UserID, limit int) (*recommendation.RecommendationsResponse, error)
	SimilarJobs(ctx context.Context, jobID kernel.JobID) (*recommendation.SimilarJobsResponse, error)
}

type Handlers struct {
	service      Service
	defaultLimit int
	maxLimit     int
}

// NewHandlers creates the recommendation handlers. Non-positive limits fall
// back to the defaults.
func NewHandlers(service Service, defaultLimit, maxLimit int) *Handlers {
	if maxLimit <= 0 {
		maxLimit = MaxLimit
	}
	if defaultLimit <= 0 || defaultLimit > maxLimit {
		defaultLimit = min(DefaultLimit, maxLimit)
	}
	return &Handlers{
		service:      service,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

func (h *Handlers) RegisterRoutes(app *fiber.App, authMiddleware *auth.Middleware) {
	read := authMiddleware.RequireScope(auth.ScopeRecommendationsRead)

	app.Get("/api/v1/recommendations", authMiddleware.Authenticate(), read, h.GetRecommendations)
	app.Get("/api/v1/jobs/:id/similar", authMiddleware.Authenticate(), read, h.GetSimilarJobs)
}

// GetRecommendations ranks the active catalog for the caller
// GET /api/v1/recommendations?limit=20
func (h *Handlers) GetRecommendations(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	limit := fiberx.QueryLimit(c, "limit", h.defaultLimit, h.maxLimit)

	resp, err := h.service.Recommend(c.UserContext(), authCtx.UserID, limit)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// GetSimilarJobs lists the active jobs closest to a job
// GET /api/v1/jobs/:id/similar
func (h *Handlers) GetSimilarJobs(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID.IsEmpty() {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	resp, err := h.service.SimilarJobs(c.UserContext(), jobID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}
