package jobinfra

import (
	"testing"

	"github.com/Abraxas-365/hirematch/recruitment/job"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestBuildSearchFilter(t *testing.T) {
	t.Run("defaults to active jobs", func(t *testing.T) {
		where, args := buildSearchFilter(job.SearchJobsRequest{}.Normalize())

		assert.Equal(t, "WHERE status = $1", where)
		assert.Equal(t, []any{"active"}, args)
	})

	t.Run("all filters", func(t *testing.T) {
		years := 3
		req := job.SearchJobsRequest{
			Query:         " golang ",
			Status:        job.JobStatusClosed,
			Location:      "Pune",
			JobType:       "Contract",
			Skills:        []string{"Go", " ", "Docker"},
			ExperienceMax: &years,
		}.Normalize()

		where, args := buildSearchFilter(req)

		assert.Equal(t,
			"WHERE status = $1 AND (title ILIKE $2 OR company_name ILIKE $2) AND location ILIKE $3"+
				" AND job_type = $4 AND required_skills && $5 AND (experience_min IS NULL OR experience_min <= $6)",
			where)
		assert.Equal(t, []any{
			"closed", "%golang%", "%Pune%", "Contract", pq.StringArray{"Go", "Docker"}, 3,
		}, args)
	})

	t.Run("no status", func(t *testing.T) {
		where, args := buildSearchFilter(job.SearchJobsRequest{})

		assert.Empty(t, where)
		assert.Empty(t, args)
	})
}

func TestModelRoundTripKeepsEmptyFieldsNull(t *testing.T) {
	entity := &job.JobPosting{
		ID:             "j1",
		Title:          "Backend Engineer",
		RequiredSkills: []string{"Go"},
		Status:         job.JobStatusActive,
		Source:         job.SourceInternal,
	}

	model := fromEntity(entity)
	assert.False(t, model.Location.Valid)
	assert.False(t, model.ExternalURL.Valid)
	assert.False(t, model.PostedBy.Valid)

	back := model.toEntity()
	assert.Equal(t, *entity, back)
}
