package jobapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Abraxas-365/hirematch/pkg/fiberx"
	"github.com/Abraxas-365/hirematch/pkg/iam/auth"
	"github.com/Abraxas-365/hirematch/pkg/kernel"
	"github.com/Abraxas-365/hirematch/recruitment/job"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	created      []job.CreateJobRequest
	search       job.SearchJobsRequest
	canManageAll bool
	updated      job.UpdateJobRequest
	deleted      []kernel.JobID
}

func (s *fakeService) CreateJob(_ context.Context, req job.CreateJobRequest) (*job.JobResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	s.created = append(s.created, req)
	return (&job.JobPosting{ID: "j-1", Title: req.Title, PostedBy: req.PostedBy, Status: job.JobStatusActive}).ToResponse(), nil
}

func (s *fakeService) GetJob(_ context.Context, id kernel.JobID) (*job.JobResponse, error) {
	if id != "j-1" {
		return nil, job.ErrJobNotFound()
	}
	return (&job.JobPosting{ID: id, Description: "Go APIs"}).ToResponse(), nil
}

func (s *fakeService) SearchJobs(_ context.Context, req job.SearchJobsRequest) (*job.PaginatedJobsResponse, error) {
	s.search = req
	return kernel.NewPaginated([]job.JobSummary{{ID: "j-1"}}, req.Pagination.Normalize(), 1), nil
}

func (s *fakeService) UpdateJobStatus(_ context.Context, actor kernel.UserID, canManageAll bool, id kernel.JobID, req job.UpdateJobStatusRequest) (*job.JobResponse, error) {
	s.canManageAll = canManageAll
	return (&job.JobPosting{ID: id, PostedBy: actor, Status: req.Status}).ToResponse(), nil
}

func (s *fakeService) UpdateJob(_ context.Context, actor kernel.UserID, canManageAll bool, id kernel.JobID, req job.UpdateJobRequest) (*job.JobResponse, error) {
	if actor != "recruiter-1" {
		return nil, job.ErrNotOwner()
	}
	s.canManageAll = canManageAll
	s.updated = req
	posting := &job.JobPosting{ID: id, PostedBy: actor}
	if req.Title != nil {
		posting.Title = *req.Title
	}
	return posting.ToResponse(), nil
}

func (s *fakeService) DeleteJob(_ context.Context, _ kernel.UserID, _ bool, id kernel.JobID) error {
	if id != "j-1" {
		return job.ErrJobNotFound()
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func newApp(t *testing.T, scopes ...string) (*fiber.App, *fakeService, string) {
	t.Helper()

	tokens := auth.NewJWTService("secret", "test", time.Hour)
	token, err := tokens.GenerateAccessToken("recruiter-1", "", scopes)
	require.NoError(t, err)

	svc := &fakeService{}
	app := fiber.New(fiber.Config{ErrorHandler: fiberx.ErrorHandler})
	NewHandlers(svc).RegisterRoutes(app, auth.NewMiddleware(tokens))
	return app, svc, token
}

func call(t *testing.T, app *fiber.App, token, method, target, body string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", "Bearer "+token)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestCreateJob(t *testing.T) {
	app, svc, token := newApp(t, auth.ScopeJobsAll)

	status, body := call(t, app, token, http.MethodPost, "/api/v1/jobs",
		`{"title":"Backend Engineer","company_name":"Acme","description":"APIs","required_skills":["Go"],"experience_min":2}`)

	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Job created successfully", body["message"])
	require.Len(t, svc.created, 1)
	assert.Equal(t, kernel.UserID("recruiter-1"), svc.created[0].PostedBy)
	require.NotNil(t, svc.created[0].ExperienceMin)
	assert.Equal(t, 2, *svc.created[0].ExperienceMin)
}

func TestCreateJobRequiresWriteScope(t *testing.T) {
	app, svc, token := newApp(t, auth.ScopeJobsRead)

	status, body := call(t, app, token, http.MethodPost, "/api/v1/jobs", `{"title":"x"}`)

	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, string(auth.CodeInsufficientScope), body["code"])
	assert.Empty(t, svc.created)
}

func TestCreateJobValidationError(t *testing.T) {
	app, _, token := newApp(t, auth.ScopeJobsWrite)

	status, body := call(t, app, token, http.MethodPost, "/api/v1/jobs", `{"title":"Only a title"}`)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, string(job.CodeInvalidJobData), body["code"])
}

func TestSearchJobsParsesFilters(t *testing.T) {
	app, svc, token := newApp(t, auth.ScopeJobsRead)

	status, body := call(t, app, token, http.MethodGet,
		"/api/v1/jobs?search=go&location=Pune&job_type=Contract&skills=Go,Docker&experience=3&page=2&page_size=5", "")

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "go", svc.search.Query)
	assert.Equal(t, "Pune", svc.search.Location)
	assert.Equal(t, "Contract", svc.search.JobType)
	assert.Equal(t, []string{"Go", "Docker"}, svc.search.Skills)
	require.NotNil(t, svc.search.ExperienceMax)
	assert.Equal(t, 3, *svc.search.ExperienceMax)
	assert.Equal(t, kernel.PaginationOptions{Page: 2, PageSize: 5}, svc.search.Pagination)
	assert.Len(t, body["items"], 1)
}

func TestGetJob(t *testing.T) {
	app, _, token := newApp(t, auth.ScopeJobsRead)

	status, body := call(t, app, token, http.MethodGet, "/api/v1/jobs/j-1", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Go APIs", body["job"].(map[string]any)["description"])

	status, body = call(t, app, token, http.MethodGet, "/api/v1/jobs/missing", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, string(job.CodeJobNotFound), body["code"])
}

func TestUpdateJobStatus(t *testing.T) {
	t.Run("recruiter", func(t *testing.T) {
		app, svc, token := newApp(t, auth.ScopeJobsWrite)

		status, body := call(t, app, token, http.MethodPut, "/api/v1/jobs/j-1/status", `{"status":"filled"}`)

		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "filled", body["job"].(map[string]any)["status"])
		assert.False(t, svc.canManageAll)
	})

	t.Run("admin", func(t *testing.T) {
		app, svc, token := newApp(t, auth.ScopeAll)

		status, _ := call(t, app, token, http.MethodPut, "/api/v1/jobs/j-1/status", `{"status":"closed"}`)

		require.Equal(t, http.StatusOK, status)
		assert.True(t, svc.canManageAll)
	})
}

func TestUpdateJob(t *testing.T) {
	app, svc, token := newApp(t, auth.ScopeJobsWrite)

	status, body := call(t, app, token, http.MethodPut, "/api/v1/jobs/j-1", `{"title":"Staff Engineer","salary_max":90000}`)

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Staff Engineer", body["job"].(map[string]any)["title"])
	require.NotNil(t, svc.updated.SalaryMax)
	assert.Equal(t, 90000.0, *svc.updated.SalaryMax)
	assert.Nil(t, svc.updated.Description)
}

func TestUpdateJobRequiresWriteScope(t *testing.T) {
	app, svc, token := newApp(t, auth.ScopeJobsRead)

	status, _ := call(t, app, token, http.MethodPut, "/api/v1/jobs/j-1", `{"title":"x"}`)

	assert.Equal(t, http.StatusForbidden, status)
	assert.Nil(t, svc.updated.Title)
}

func TestDeleteJob(t *testing.T) {
	app, svc, token := newApp(t, auth.ScopeJobsAll)

	status, body := call(t, app, token, http.MethodDelete, "/api/v1/jobs/j-1", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Job deleted successfully", body["message"])
	assert.Equal(t, []kernel.JobID{"j-1"}, svc.deleted)

	status, body = call(t, app, token, http.MethodDelete, "/api/v1/jobs/missing", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, string(job.CodeJobNotFound), body["code"])
}
