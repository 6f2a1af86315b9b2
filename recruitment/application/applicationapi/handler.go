package applicationapi

import (
	"context"

	"github.com/Abraxas-365/hirematch/pkg/iam/auth"
	"github.com/Abraxas-365/hirematch/pkg/kernel"
	"github.com/Abraxas-365/hirematch/recruitment/application"
	"github.com/gofiber/fiber/v2"
)

// Service is the part of applicationsrv the handlers call
type Service interface {
	Apply(ctx context.Context, userID kernel.UserID, jobID kernel.JobID, req application.ApplyRequest) (*application.ApplicationResponse, error)
	ListMyApplications(ctx context.Context, userID kernel.UserID) (*application.MyApplicationsResponse, error)
	SaveJob(ctx context.Context, userID kernel.UserID, jobID kernel.JobID) (*application.SavedJob, error)
	ListSavedJobs(ctx context.Context, userID kernel.UserID) (*application.SavedJobsResponse, error)
}

// Handlers provides HTTP handlers for applications and saved jobs
type Handlers struct {
	service Service
}

// NewHandlers creates a new application handlers instance
func NewHandlers(service Service) *Handlers {
	return &Handlers{
		service: service,
	}
}

// RegisterRoutes mounts the routes under /api/v1/jobs. Call it before the job
// routes so "/saved" and "/my-applications" are not taken for job IDs.
func (h *Handlers) RegisterRoutes(app *fiber.App, authMiddleware *auth.Middleware) {
	jobs := app.Group("/api/v1/jobs", authMiddleware.Authenticate())
	read := authMiddleware.RequireScope(auth.ScopeApplicationsRead)
	write := authMiddleware.RequireScope(auth.ScopeApplicationsWrite)

	jobs.Get("/my-applications", read, h.ListMyApplications)
	jobs.Get("/saved", read, h.ListSavedJobs)
	jobs.Post("/:id/apply", write, h.Apply)
	jobs.Post("/:id/save", write, h.SaveJob)
}

// Apply submits the caller's application to a job
// POST /api/v1/jobs/:id/apply
func (h *Handlers) Apply(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req application.ApplyRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
		}
	}

	resp, err := h.service.Apply(c.UserContext(), authCtx.UserID, kernel.JobID(c.Params("id")), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Application submitted successfully",
		"application": resp,
	})
}

// ListMyApplications lists the caller's applications
// GET /api/v1/jobs/my-applications
func (h *Handlers) ListMyApplications(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	resp, err := h.service.ListMyApplications(c.UserContext(), authCtx.UserID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// SaveJob bookmarks a job for the caller
// POST /api/v1/jobs/:id/save
func (h *Handlers) SaveJob(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	saved, err := h.service.SaveJob(c.UserContext(), authCtx.UserID, kernel.JobID(c.Params("id")))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Job saved successfully",
		"saved":   saved,
	})
}

// ListSavedJobs lists the caller's saved jobs
// GET /api/v1/jobs/saved
func (h *Handlers) ListSavedJobs(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	resp, err := h.service.ListSavedJobs(c.UserContext(), authCtx.UserID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}
