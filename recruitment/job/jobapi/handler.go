package jobapi

import (
	"context"
	"strings"

	"github.com/Abraxas-365/hirematch/pkg/fiberx"
	"github.com/Abraxas-365/hirematch/pkg/iam/auth"
	"github.com/Abraxas-365/hirematch/pkg/kernel"
	"github.com/Abraxas-365/hirematch/recruitment/job"
	"github.com/gofiber/fiber/v2"
)

// Service is the part of jobsrv the handlers call
type Service interface {
	CreateJob(ctx context.Context, req job.CreateJobRequest) (*job.JobResponse, error)
	GetJob(ctx context.Context, jobID kernel.JobID) (*job.JobResponse, error)
	SearchJobs(ctx context.Context, req job.SearchJobsRequest) (*job.PaginatedJobsResponse, error)
	UpdateJobStatus(ctx context.Context, actor kernel.UserID, canManageAll bool, jobID kernel.JobID, req job.UpdateJobStatusRequest) (*job.JobResponse, error)
	UpdateJob(ctx context.Context, actor kernel.UserID, canManageAll bool, jobID kernel.JobID, req job.UpdateJobRequest) (*job.JobResponse, error)
	DeleteJob(ctx context.Context, actor kernel.UserID, canManageAll bool, jobID kernel.JobID) error
}

// Handlers provides HTTP handlers for job operations
type Handlers struct {
	service Service
}

// NewHandlers creates a new job handlers instance
func NewHandlers(service Service) *Handlers {
	return &Handlers{
		service: service,
	}
}

// RegisterRoutes mounts the job routes. Routes with a fixed path segment under
// /api/v1/jobs must be registered before this call or "/:id" shadows them.
func (h *Handlers) RegisterRoutes(app *fiber.App, authMiddleware *auth.Middleware) {
	jobs := app.Group("/api/v1/jobs", authMiddleware.Authenticate())
	read := authMiddleware.RequireScope(auth.ScopeJobsRead)
	write := authMiddleware.RequireScope(auth.ScopeJobsWrite)

	jobs.Post("/", write, h.CreateJob)
	jobs.Get("/", read, h.SearchJobs)
	jobs.Get("/:id", read, h.GetJob)
	jobs.Put("/:id", write, h.UpdateJob)
	jobs.Delete("/:id", write, h.DeleteJob)
	jobs.Put("/:id/status", write, h.UpdateJobStatus)
}

// CreateJob creates a new job posting
// POST /api/v1/jobs
func (h *Handlers) CreateJob(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req job.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidJobData().WithDetail("parse_error", err.Error())
	}

	// The poster is always the authenticated user
	req.PostedBy = authCtx.UserID

	newJob, err := h.service.CreateJob(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Job created successfully",
		"job":     newJob,
	})
}

// GetJob retrieves a job by ID
// GET /api/v1/jobs/:id
func (h *Handlers) GetJob(c *fiber.Ctx) error {
	jobID := kernel.JobID(c.Params("id"))
	if jobID.IsEmpty() {
		return job.ErrJobNotFound().WithDetail("id", "missing or empty")
	}

	jobResp, err := h.service.GetJob(c.UserContext(), jobID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"job": jobResp})
}

// SearchJobs lists jobs matching query filters
// GET /api/v1/jobs?search=&status=&location=&job_type=&skills=a,b&experience=&page=&page_size=
func (h *Handlers) SearchJobs(c *fiber.Ctx) error {
	req := job.SearchJobsRequest{
		Query:      c.Query("search"),
		Status:     job.JobStatus(c.Query("status")),
		Location:   c.Query("location"),
		JobType:    c.Query("job_type"),
		Pagination: fiberx.ParsePagination(c),
	}

	if skills := c.Query("skills"); skills != "" {
		req.Skills = strings.Split(skills, ",")
	}

	if c.Query("experience") != "" {
		years := c.QueryInt("experience", 0)
		req.ExperienceMax = &years
	}

	jobs, err := h.service.SearchJobs(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.JSON(jobs)
}

// UpdateJobStatus closes, fills or reopens a job
// PUT /api/v1/jobs/:id/status
func (h *Handlers) UpdateJobStatus(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req job.UpdateJobStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidStatus().WithDetail("parse_error", err.Error())
	}

	updated, err := h.service.UpdateJobStatus(
		c.UserContext(),
		authCtx.UserID,
		authCtx.HasScope(auth.ScopeAll),
		kernel.JobID(c.Params("id")),
		req,
	)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Job updated successfully",
		"job":     updated,
	})
}

// UpdateJob edits a job
// PUT /api/v1/jobs/:id
func (h *Handlers) UpdateJob(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req job.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidJobData().WithDetail("parse_error", err.Error())
	}

	updated, err := h.service.UpdateJob(
		c.UserContext(),
		authCtx.UserID,
		authCtx.HasScope(auth.ScopeAll),
		kernel.JobID(c.Params("id")),
		req,
	)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Job updated successfully",
		"job":     updated,
	})
}

// DeleteJob removes a job
// DELETE /api/v1/jobs/:id
func (h *Handlers) DeleteJob(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	err := h.service.DeleteJob(
		c.UserContext(),
		authCtx.UserID,
		authCtx.HasScope(auth.ScopeAll),
		kernel.JobID(c.Params("id")),
	)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Job deleted successfully"})
}
