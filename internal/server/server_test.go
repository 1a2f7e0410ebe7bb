package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitflexhq/gitflex/internal/analysis"
	"github.com/gitflexhq/gitflex/internal/mock"
	"github.com/gitflexhq/gitflex/internal/store"
	"github.com/gitflexhq/gitflex/internal/types"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reports, err := store.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { reports.Close() })

	analyzer := analysis.NewAnalyzerAt(mock.ReferenceTime)
	return New(DefaultConfig(), analyzer, reports), reports
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyzeProfileEndpoint(t *testing.T) {
	r, reports := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/analyze/profile", types.ProfileRequest{
		Username: "octocat",
		Records:  mock.ArchitectRecords(),
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp AnalysisResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, analysis.RoleBackendArchitect, resp.Report.Primary.Role)
	assert.Len(t, resp.Variants, 4)

	// The analysis is persisted under the username.
	_, err := reports.Load("octocat", store.KindProfile)
	assert.NoError(t, err)
}

func TestAnalyzeProfileEmptyRecords(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/analyze/profile", types.ProfileRequest{
		Username: "ghost",
		Records:  []types.RepositoryRecord{},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp AnalysisResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, analysis.RoleExplorer, resp.Report.Primary.Role)
	assert.Equal(t, 100, resp.Report.Primary.Confidence)
}

func TestAnalyzeProfileValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	t.Run("malformed body", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze/profile", bytes.NewReader([]byte("not json")))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("record without name", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/analyze/profile", types.ProfileRequest{
			Username: "octocat",
			Records:  []types.RepositoryRecord{{Language: "Go"}},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAnalyzeRepoEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/analyze/repo", types.RepoRequest{
		Username: "octocat",
		Record:   mock.ArchitectRecords()[0],
		Files:    []string{"Cargo.toml", "docker-compose.yml"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp RepoAnalysisResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Len(t, resp.Variants, 3)
	assert.Equal(t, "octocat", resp.Report.Target.Owner)
	require.NotNil(t, resp.Report.Install)
	assert.Equal(t, "cargo", resp.Report.Install.Manager)
}

func TestRefineEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	analyzer := analysis.NewAnalyzerAt(mock.ReferenceTime)
	report := analyzer.AnalyzeProfile(mock.ArchitectRecords(), "octocat")

	t.Run("valid role override", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/refine", RefineRequest{
			Username: "octocat",
			Report:   report,
			Role:     analysis.RoleCreativeTechnologist,
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp AnalysisResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		assert.Equal(t, analysis.RoleCreativeTechnologist, resp.Report.Primary.Role)
		assert.True(t, resp.Report.IsUserRefined)
		assert.Len(t, resp.Variants, 4)
	})

	t.Run("unknown role", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/refine", RefineRequest{
			Username: "octocat",
			Report:   report,
			Role:     analysis.Role("Time Traveler"),
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReportLifecycle(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/analyze/profile", types.ProfileRequest{
		Username: "octocat",
		Records:  mock.MinimalistRecords(),
	})
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("fetch stored report", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/reports/octocat", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp AnalysisResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Report.Primary.Role)
	})

	t.Run("list recent reports", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/reports", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Reports []store.ReportSummary `json:"reports"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Reports, 1)
		assert.Equal(t, "octocat", resp.Reports[0].Username)
	})

	t.Run("delete and miss", func(t *testing.T) {
		w := doJSON(t, r, http.MethodDelete, "/api/v1/reports/octocat", nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, r, http.MethodGet, "/api/v1/reports/octocat", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHealthEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var health map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "ok", health["status"])
	assert.Contains(t, health, "cache")
	assert.Contains(t, health, "rate_limit")
	assert.Contains(t, health, "store")
}

func TestRequestIDHeader(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w2 := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	r.ServeHTTP(w2, req)
	assert.Equal(t, "fixed-id", w2.Header().Get("X-Request-ID"))
}
