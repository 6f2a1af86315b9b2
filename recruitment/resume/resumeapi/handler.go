package resumeapi

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/Abraxas-365/hirematch/internal/docreader"
	"github.com/Abraxas-365/hirematch/pkg/fiberx"
	"github.com/Abraxas-365/hirematch/pkg/fsx"
	"github.com/Abraxas-365/hirematch/pkg/iam/auth"
	"github.com/Abraxas-365/hirematch/pkg/kernel"
	"github.com/Abraxas-365/hirematch/recruitment/resume"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const DefaultMaxFileSize = 5 << 20

// Service is the part of resumesrv the handlers call
type Service interface {
	UploadResume(ctx context.Context, req resume.UploadResumeRequest) (*resume.ResumeResponse, error)
	ParseResumeAsync(ctx context.Context, req resume.UploadResumeRequest) (*resume.TaskStatusResponse, error)
	GetTaskStatus(ctx context.Context, userID kernel.UserID, id kernel.TaskID) (*resume.TaskStatusResponse, error)
	GetActiveResume(ctx context.Context, userID kernel.UserID) (*resume.ResumeResponse, error)
	GetResume(ctx context.Context, userID kernel.UserID, id kernel.ResumeID) (*resume.ResumeResponse, error)
	ListResumes(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[resume.ResumeSummary], error)
	ActivateResume(ctx context.Context, userID kernel.UserID, id kernel.ResumeID) (*resume.ResumeResponse, error)
	DeleteResume(ctx context.Context, userID kernel.UserID, id kernel.ResumeID) error
}

type ResumeHandlers struct {
	service     Service
	fileSystem  fsx.FileSystem
	maxFileSize int64
	now         func() time.Time
}

func NewResumeHandlers(service Service, fileSystem fsx.FileSystem, maxFileSize int64) *ResumeHandlers {
	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxFileSize
	}
	return &ResumeHandlers{
		service:     service,
		fileSystem:  fileSystem,
		maxFileSize: maxFileSize,
		now:         time.Now,
	}
}

func (h *ResumeHandlers) RegisterRoutes(app *fiber.App, authMiddleware *auth.Middleware) {
	resumes := app.Group("/api/v1/resumes", authMiddleware.Authenticate())
	read := authMiddleware.RequireScope(auth.ScopeResumesRead)
	write := authMiddleware.RequireScope(auth.ScopeResumesWrite)

	resumes.Post("/upload", write, h.UploadResume)    // Parse synchronously
	resumes.Post("/parse", write, h.ParseResume)      // Parse in the worker pool
	resumes.Get("/tasks/:task_id", read, h.GetTaskStatus)
	resumes.Get("/active", read, h.GetActiveResume)
	resumes.Get("/", read, h.ListResumes)
	resumes.Get("/:id", read, h.GetResume)
	resumes.Put("/:id/activate", write, h.ActivateResume)
	resumes.Delete("/:id", write, h.DeleteResume)
}

// ============================================================================
// Upload Handlers
// ============================================================================

// UploadResume stores and parses a resume in the request
// POST /api/v1/resumes/upload
func (h *ResumeHandlers) UploadResume(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	req, err := h.storeUpload(c, authCtx.UserID)
	if err != nil {
		return err
	}

	response, err := h.service.UploadResume(c.UserContext(), *req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Resume uploaded and parsed successfully",
		"resume":  response,
	})
}

// ParseResume stores a resume and queues it for background parsing
// POST /api/v1/resumes/parse
func (h *ResumeHandlers) ParseResume(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	req, err := h.storeUpload(c, authCtx.UserID)
	if err != nil {
		return err
	}

	task, err := h.service.ParseResumeAsync(c.UserContext(), *req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message":    "Resume upload successful, processing started",
		"task":       task,
		"status_url": fmt.Sprintf("/api/v1/resumes/tasks/%s", task.TaskID),
	})
}

// GetTaskStatus reports the state of a background parse
// GET /api/v1/resumes/tasks/:task_id
func (h *ResumeHandlers) GetTaskStatus(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	status, err := h.service.GetTaskStatus(c.UserContext(), authCtx.UserID, kernel.TaskID(c.Params("task_id")))
	if err != nil {
		return err
	}
	return c.JSON(status)
}

// storeUpload validates the multipart file and writes it to storage under
// resumes/{user}/{yyyy}/{mm}/{uuid}.{ext}
func (h *ResumeHandlers) storeUpload(c *fiber.Ctx, userID kernel.UserID) (*resume.UploadResumeRequest, error) {
	file, err := c.FormFile("file")
	if err != nil {
		return nil, resume.ErrFileRequired()
	}

	if file.Size > h.maxFileSize {
		return nil, resume.ErrFileTooLarge().
			WithDetail("max_size", h.maxFileSize).
			WithDetail("size", file.Size)
	}

	extension := strings.ToLower(filepath.Ext(file.Filename))
	format, err := docreader.ParseFormat(extension)
	if err != nil {
		return nil, resume.ErrInvalidFileFormat().
			WithDetail("file_extension", extension).
			WithDetail("supported_types", docreader.SupportedFormats)
	}

	path, err := h.write(c, userID, file, extension)
	if err != nil {
		return nil, err
	}

	return &resume.UploadResumeRequest{
		UserID:   userID,
		FilePath: path,
		FileName: file.Filename,
		FileType: string(format),
		FileSize: file.Size,
	}, nil
}

func (h *ResumeHandlers) write(c *fiber.Ctx, userID kernel.UserID, file *multipart.FileHeader, extension string) (string, error) {
	uploaded, err := file.Open()
	if err != nil {
		return "", resume.ErrRegistry.NewWithCause(resume.CodeStorageFailed, err)
	}
	defer uploaded.Close()

	now := h.now()
	path := h.fileSystem.Join(
		"resumes",
		userID.String(),
		fmt.Sprintf("%d", now.Year()),
		fmt.Sprintf("%02d", now.Month()),
		uuid.NewString()+extension,
	)

	if err := h.fileSystem.WriteFileStream(c.UserContext(), path, uploaded); err != nil {
		return "", resume.ErrRegistry.NewWithCause(resume.CodeStorageFailed, err).
			WithDetail("file_name", file.Filename)
	}
	return path, nil
}

// ============================================================================
// Resume Handlers
// ============================================================================

// GetActiveResume returns the caller's active resume
// GET /api/v1/resumes/active
func (h *ResumeHandlers) GetActiveResume(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	response, err := h.service.GetActiveResume(c.UserContext(), authCtx.UserID)
	if err != nil {
		return err
	}
	return c.JSON(response)
}

// ListResumes lists the caller's resumes
// GET /api/v1/resumes?page=1&page_size=20
func (h *ResumeHandlers) ListResumes(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	page, err := h.service.ListResumes(c.UserContext(), authCtx.UserID, fiberx.ParsePagination(c))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// GET /api/v1/resumes/:id
func (h *ResumeHandlers) GetResume(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	response, err := h.service.GetResume(c.UserContext(), authCtx.UserID, kernel.ResumeID(c.Params("id")))
	if err != nil {
		return err
	}
	return c.JSON(response)
}

// PUT /api/v1/resumes/:id/activate
func (h *ResumeHandlers) ActivateResume(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	response, err := h.service.ActivateResume(c.UserContext(), authCtx.UserID, kernel.ResumeID(c.Params("id")))
	if err != nil {
		return err
	}
	return c.JSON(response)
}

// DELETE /api/v1/resumes/:id
func (h *ResumeHandlers) DeleteResume(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	if err := h.service.DeleteResume(c.UserContext(), authCtx.UserID, kernel.ResumeID(c.Params("id"))); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
