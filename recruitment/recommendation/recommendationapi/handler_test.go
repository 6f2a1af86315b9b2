package recommendationapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Abraxas-365/hirematch/pkg/fiberx"
	"github.com/Abraxas-365/hirematch/pkg/iam/auth"
	"github.com/Abraxas-365/hirematch/pkg/kernel"
	"github.com/Abraxas-365/hirematch/recruitment/job"
	"github.com/Abraxas-365/hirematch/recruitment/recommendation"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	limits []int
	user   kernel.UserID
}

func (s *fakeService) Recommend(_ context.Context, userID kernel.UserID, limit int) (*recommendation.RecommendationsResponse, error) {
	s.user = userID
	s.limits = append(s.limits, limit)
	return &recommendation.RecommendationsResponse{
		Recommendations: []recommendation.RecommendationItem{{Job: job.JobSummary{ID: "j1"}, MatchScore: 87.5}},
		Total:           1,
	}, nil
}

func (s *fakeService) SimilarJobs(_ context.Context, id kernel.JobID) (*recommendation.SimilarJobsResponse, error) {
	if id != "j1" {
		return nil, job.ErrJobNotFound()
	}
	return &recommendation.SimilarJobsResponse{
		SimilarJobs: []recommendation.SimilarJobItem{{Job: job.JobSummary{ID: "j2"}, SimilarityScore: 42.1}},
		Total:       1,
	}, nil
}

func setup(t *testing.T, scopes ...string) (*fiber.App, *fakeService, string) {
	t.Helper()

	tokens := auth.NewJWTService("secret", "test", time.Hour)
	token, err := tokens.GenerateAccessToken("u1", "", scopes)
	require.NoError(t, err)

	svc := &fakeService{}
	app := fiber.New(fiber.Config{ErrorHandler: fiberx.ErrorHandler})
	NewHandlers(svc, 0, 0).RegisterRoutes(app, auth.NewMiddleware(tokens))
	return app, svc, token
}

func get(t *testing.T, app *fiber.App, token, target string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestGetRecommendationsLimit(t *testing.T) {
	app, svc, token := setup(t, auth.ScopeRecommendationsRead)

	for _, target := range []string{
		"/api/v1/recommendations",
		"/api/v1/recommendations?limit=5",
		"/api/v1/recommendations?limit=500",
		"/api/v1/recommendations?limit=abc",
		"/api/v1/recommendations?limit=0",
	} {
		status, _ := get(t, app, token, target)
		require.Equal(t, http.StatusOK, status, target)
	}

	assert.Equal(t, []int{DefaultLimit, 5, MaxLimit, DefaultLimit, 0}, svc.limits)
	assert.Equal(t, kernel.UserID("u1"), svc.user)
}

func TestGetRecommendationsBody(t *testing.T) {
	app, _, token := setup(t, auth.ScopeAll)

	status, body := get(t, app, token, "/api/v1/recommendations")

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["total"])
	assert.NotContains(t, body, "message")
	items := body["recommendations"].([]any)
	assert.Equal(t, 87.5, items[0].(map[string]any)["match_score"])
}

func TestRecommendationsRequireScope(t *testing.T) {
	app, svc, token := setup(t, auth.ScopeJobsRead)

	status, _ := get(t, app, token, "/api/v1/recommendations")

	assert.Equal(t, http.StatusForbidden, status)
	assert.Empty(t, svc.limits)
}

func TestGetSimilarJobs(t *testing.T) {
	app, _, token := setup(t, auth.ScopeRecommendationsRead)

	status, body := get(t, app, token, "/api/v1/jobs/j1/similar")
	require.Equal(t, http.StatusOK, status)
	items := body["similar_jobs"].([]any)
	assert.Equal(t, 42.1, items[0].(map[string]any)["similarity_score"])

	status, body = get(t, app, token, "/api/v1/jobs/nope/similar")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, string(job.CodeJobNotFound), body["code"])
}
