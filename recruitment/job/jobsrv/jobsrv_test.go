package jobsrv

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/Abraxas-365/hirematch/pkg/errx"
	"github.com/Abraxas-365/hirematch/pkg/kernel"
	"github.com/Abraxas-365/hirematch/recruitment/job"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	jobs       map[kernel.JobID]*job.JobPosting
	viewErr    error
	lastSearch job.SearchJobsRequest
}

func newFakeRepo(jobs ...job.JobPosting) *fakeRepo {
	r := &fakeRepo{jobs: map[kernel.JobID]*job.JobPosting{}}
	for i := range jobs {
		j := jobs[i]
		r.jobs[j.ID] = &j
	}
	return r
}

func (r *fakeRepo) Create(_ context.Context, j *job.JobPosting) error {
	if _, ok := r.jobs[j.ID]; ok {
		return job.ErrJobAlreadyExists()
	}
	cp := *j
	r.jobs[j.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id kernel.JobID) (*job.JobPosting, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, job.ErrJobNotFound()
	}
	cp := *j
	return &cp, nil
}

func (r *fakeRepo) IncrementViewCount(_ context.Context, id kernel.JobID) error {
	if r.viewErr != nil {
		return r.viewErr
	}
	r.jobs[id].ViewCount++
	return nil
}

func (r *fakeRepo) Search(_ context.Context, req job.SearchJobsRequest) (*kernel.Paginated[job.JobPosting], error) {
	r.lastSearch = req
	var items []job.JobPosting
	for _, j := range r.jobs {
		if j.Status == req.Status {
			items = append(items, *j)
		}
	}
	sort.Slice(items, func(a, b int) bool { return items[a].ID < items[b].ID })
	return kernel.NewPaginated(items, req.Pagination, len(items)), nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id kernel.JobID, status job.JobStatus, updatedAt time.Time) error {
	j, ok := r.jobs[id]
	if !ok {
		return job.ErrJobNotFound()
	}
	j.Status = status
	j.UpdatedAt = updatedAt
	return nil
}

func (r *fakeRepo) Update(_ context.Context, j *job.JobPosting) error {
	if _, ok := r.jobs[j.ID]; !ok {
		return job.ErrJobNotFound()
	}
	cp := *j
	r.jobs[j.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id kernel.JobID) error {
	if _, ok := r.jobs[id]; !ok {
		return job.ErrJobNotFound()
	}
	delete(r.jobs, id)
	return nil
}

func (r *fakeRepo) ListByIDs(_ context.Context, ids []kernel.JobID) ([]job.JobPosting, error) {
	var out []job.JobPosting
	for _, id := range ids {
		if j, ok := r.jobs[id]; ok {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListActive(_ context.Context) ([]job.JobPosting, error) {
	var out []job.JobPosting
	for _, j := range r.jobs {
		if j.IsActive() {
			out = append(out, *j)
		}
	}
	return out, nil
}

func newTestService(repo *fakeRepo) *JobService {
	s := NewJobService(repo)
	s.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func validRequest() job.CreateJobRequest {
	return job.CreateJobRequest{
		Title:          "Backend Engineer",
		Company:        "Acme",
		Description:    "Build APIs in Go",
		RequiredSkills: []string{"Go", "PostgreSQL"},
		PostedBy:       "recruiter-1",
	}
}

func TestCreateJob(t *testing.T) {
	repo := newFakeRepo()
	s := newTestService(repo)

	resp, err := s.CreateJob(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, job.JobStatusActive, resp.Status)
	assert.Equal(t, job.DefaultJobType, resp.JobType)
	assert.Equal(t, job.SourceInternal, resp.Source)
	require.NotNil(t, resp.PostedDate)
	assert.Equal(t, s.now(), *resp.PostedDate)
	assert.Contains(t, repo.jobs, resp.ID)
}

func TestCreateJobValidation(t *testing.T) {
	five, two := 5, 2

	tests := []struct {
		name   string
		mutate func(*job.CreateJobRequest)
	}{
		{"missing title", func(r *job.CreateJobRequest) { r.Title = "" }},
		{"no skills", func(r *job.CreateJobRequest) { r.RequiredSkills = nil }},
		{"blank skill", func(r *job.CreateJobRequest) { r.RequiredSkills = []string{"Go", ""} }},
		{"reversed experience", func(r *job.CreateJobRequest) { r.ExperienceMin, r.ExperienceMax = &five, &two }},
		{"unknown job type", func(r *job.CreateJobRequest) { r.JobType = "Gig" }},
		{"bad url", func(r *job.CreateJobRequest) { r.ExternalURL = "not a url" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			req := validRequest()
			tt.mutate(&req)

			_, err := newTestService(repo).CreateJob(context.Background(), req)

			assert.True(t, errx.IsCode(err, job.CodeInvalidJobData))
			assert.Empty(t, repo.jobs)
		})
	}
}

func TestGetJobIncrementsViews(t *testing.T) {
	repo := newFakeRepo(job.JobPosting{ID: "j1", Status: job.JobStatusActive, ViewCount: 4})
	s := newTestService(repo)

	resp, err := s.GetJob(context.Background(), "j1")
	require.NoError(t, err)
	assert.Equal(t, 5, resp.ViewCount)
	assert.Equal(t, 5, repo.jobs["j1"].ViewCount)

	t.Run("view failure does not fail the read", func(t *testing.T) {
		repo.viewErr = errors.New("db down")
		resp, err := s.GetJob(context.Background(), "j1")
		require.NoError(t, err)
		assert.Equal(t, 5, resp.ViewCount)
	})

	t.Run("missing job", func(t *testing.T) {
		_, err := s.GetJob(context.Background(), "nope")
		assert.True(t, errx.IsCode(err, job.CodeJobNotFound))
	})
}

func TestSearchJobs(t *testing.T) {
	repo := newFakeRepo(
		job.JobPosting{ID: "a", Status: job.JobStatusActive, Description: "hidden"},
		job.JobPosting{ID: "b", Status: job.JobStatusClosed},
	)
	s := newTestService(repo)

	page, err := s.SearchJobs(context.Background(), job.SearchJobsRequest{})
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.Equal(t, kernel.JobID("a"), page.Items[0].ID)
	assert.Equal(t, job.JobStatusActive, repo.lastSearch.Status)
	assert.Equal(t, kernel.DefaultPageSize, repo.lastSearch.Pagination.PageSize)

	_, err = s.SearchJobs(context.Background(), job.SearchJobsRequest{Status: "archived"})
	assert.True(t, errx.IsCode(err, job.CodeInvalidStatus))
}

func TestUpdateJobStatus(t *testing.T) {
	seed := job.JobPosting{ID: "j1", PostedBy: "owner", Status: job.JobStatusActive}

	t.Run("owner closes job", func(t *testing.T) {
		repo := newFakeRepo(seed)
		s := newTestService(repo)

		resp, err := s.UpdateJobStatus(context.Background(), "owner", false, "j1", job.UpdateJobStatusRequest{Status: job.JobStatusClosed})
		require.NoError(t, err)
		assert.Equal(t, job.JobStatusClosed, resp.Status)
		assert.Equal(t, job.JobStatusClosed, repo.jobs["j1"].Status)
		assert.Equal(t, s.now(), repo.jobs["j1"].UpdatedAt)
	})

	t.Run("other user rejected", func(t *testing.T) {
		repo := newFakeRepo(seed)
		_, err := newTestService(repo).UpdateJobStatus(context.Background(), "someone", false, "j1", job.UpdateJobStatusRequest{Status: job.JobStatusFilled})
		assert.True(t, errx.IsCode(err, job.CodeNotOwner))
		assert.Equal(t, job.JobStatusActive, repo.jobs["j1"].Status)
	})

	t.Run("admin may change any job", func(t *testing.T) {
		repo := newFakeRepo(seed)
		_, err := newTestService(repo).UpdateJobStatus(context.Background(), "admin", true, "j1", job.UpdateJobStatusRequest{Status: job.JobStatusFilled})
		require.NoError(t, err)
		assert.Equal(t, job.JobStatusFilled, repo.jobs["j1"].Status)
	})

	t.Run("unchanged status", func(t *testing.T) {
		repo := newFakeRepo(seed)
		_, err := newTestService(repo).UpdateJobStatus(context.Background(), "owner", false, "j1", job.UpdateJobStatusRequest{Status: job.JobStatusActive})
		assert.True(t, errx.IsCode(err, job.CodeStatusUnchanged))
	})

	t.Run("invalid status", func(t *testing.T) {
		repo := newFakeRepo(seed)
		_, err := newTestService(repo).UpdateJobStatus(context.Background(), "owner", false, "j1", job.UpdateJobStatusRequest{Status: "draft"})
		assert.True(t, errx.IsCode(err, job.CodeInvalidStatus))
	})
}

func TestUpdateJob(t *testing.T) {
	seed := job.JobPosting{ID: "j1", PostedBy: "owner", Title: "Engineer", Status: job.JobStatusActive}
	title := "Senior Engineer"
	location := "Pune"

	t.Run("owner edits fields", func(t *testing.T) {
		repo := newFakeRepo(seed)
		s := newTestService(repo)

		resp, err := s.UpdateJob(context.Background(), "owner", false, "j1", job.UpdateJobRequest{Title: &title, Location: &location})
		require.NoError(t, err)
		assert.Equal(t, "Senior Engineer", resp.Title)
		assert.Equal(t, "Pune", repo.jobs["j1"].Location)
		assert.Equal(t, s.now(), repo.jobs["j1"].UpdatedAt)
	})

	t.Run("other user rejected", func(t *testing.T) {
		repo := newFakeRepo(seed)
		_, err := newTestService(repo).UpdateJob(context.Background(), "someone", false, "j1", job.UpdateJobRequest{Title: &title})
		assert.True(t, errx.IsCode(err, job.CodeNotOwner))
		assert.Equal(t, "Engineer", repo.jobs["j1"].Title)
	})

	t.Run("missing job", func(t *testing.T) {
		_, err := newTestService(newFakeRepo()).UpdateJob(context.Background(), "owner", false, "nope", job.UpdateJobRequest{Title: &title})
		assert.True(t, errx.IsCode(err, job.CodeJobNotFound))
	})
}

func TestDeleteJob(t *testing.T) {
	seed := job.JobPosting{ID: "j1", PostedBy: "owner", Status: job.JobStatusActive}

	t.Run("other user rejected", func(t *testing.T) {
		repo := newFakeRepo(seed)
		err := newTestService(repo).DeleteJob(context.Background(), "someone", false, "j1")
		assert.True(t, errx.IsCode(err, job.CodeNotOwner))
		assert.Contains(t, repo.jobs, kernel.JobID("j1"))
	})

	t.Run("owner deletes", func(t *testing.T) {
		repo := newFakeRepo(seed)
		require.NoError(t, newTestService(repo).DeleteJob(context.Background(), "owner", false, "j1"))
		assert.NotContains(t, repo.jobs, kernel.JobID("j1"))
	})

	t.Run("admin deletes any job", func(t *testing.T) {
		repo := newFakeRepo(seed)
		require.NoError(t, newTestService(repo).DeleteJob(context.Background(), "admin", true, "j1"))
		assert.Empty(t, repo.jobs)
	})
}

func TestListActive(t *testing.T) {
	repo := newFakeRepo(
		job.JobPosting{ID: "a", Status: job.JobStatusActive},
		job.JobPosting{ID: "b", Status: job.JobStatusFilled},
	)

	jobs, err := newTestService(repo).ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, kernel.JobID("a"), jobs[0].ID)
}

func TestGetPostings(t *testing.T) {
	repo := newFakeRepo(
		job.JobPosting{ID: "a", Title: "A"},
		job.JobPosting{ID: "b", Title: "B"},
	)

	byID, err := newTestService(repo).GetPostings(context.Background(), []kernel.JobID{"a", "gone"})
	require.NoError(t, err)
	require.Len(t, byID, 1)
	assert.Equal(t, "A", byID["a"].Title)
}
