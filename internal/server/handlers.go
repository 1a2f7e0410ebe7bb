package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gitflexhq/gitflex/internal/analysis"
	apperrors "github.com/gitflexhq/gitflex/internal/errors"
	"github.com/gitflexhq/gitflex/internal/readme"
	"github.com/gitflexhq/gitflex/internal/store"
	"github.com/gitflexhq/gitflex/internal/types"
)

// Handler wires the scoring engine, renderer, and report store into HTTP
// endpoints.
type Handler struct {
	analyzer *analysis.Analyzer
	reports  *store.Store
}

// NewHandler creates a handler. The store may be nil, in which case report
// persistence endpoints return 404 and analyses are not saved.
func NewHandler(analyzer *analysis.Analyzer, reports *store.Store) *Handler {
	return &Handler{
		analyzer: analyzer,
		reports:  reports,
	}
}

// AnalysisResponse pairs a report with its regenerated variants.
type AnalysisResponse struct {
	Report   analysis.Report  `json:"report"`
	Variants []readme.Variant `json:"variants"`
}

// RepoAnalysisResponse pairs a repository report with its variants.
type RepoAnalysisResponse struct {
	Report   analysis.RepoReport `json:"report"`
	Variants []readme.Variant    `json:"variants"`
}

// RefineRequest carries a user override of the primary persona.
type RefineRequest struct {
	Username string          `json:"username"`
	Report   analysis.Report `json:"report"`
	Role     analysis.Role   `json:"role" binding:"required"`
}

// validateRecords rejects malformed records at the boundary; the engine
// assumes well-shaped input.
func validateRecords(records []types.RepositoryRecord) error {
	for i, r := range records {
		if r.Name == "" {
			return fmt.Errorf("record %d is missing a name", i)
		}
	}
	return nil
}

// AnalyzeProfile handles POST /api/v1/analyze/profile.
func (h *Handler) AnalyzeProfile(c *gin.Context) {
	var req types.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWith(c, apperrors.NewValidationError("invalid profile analysis request", err))
		return
	}

	if err := validateRecords(req.Records); err != nil {
		abortWith(c, apperrors.NewValidationError(err.Error(), nil))
		return
	}

	report := h.analyzer.AnalyzeProfile(req.Records, req.Username)
	response := AnalysisResponse{
		Report:   report,
		Variants: readme.GenerateVariants(report),
	}

	h.persist(c, req.Username, store.KindProfile, response)

	c.JSON(http.StatusOK, response)
}

// AnalyzeRepo handles POST /api/v1/analyze/repo.
func (h *Handler) AnalyzeRepo(c *gin.Context) {
	var req types.RepoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWith(c, apperrors.NewValidationError("invalid repository analysis request", err))
		return
	}

	if req.Record.Name == "" {
		abortWith(c, apperrors.NewValidationError("record is missing a name", nil))
		return
	}

	report := h.analyzer.AnalyzeRepository(req.Record, req.Files, req.Username)
	response := RepoAnalysisResponse{
		Report:   report,
		Variants: readme.GenerateRepoVariants(report),
	}

	h.persist(c, req.Username, store.KindRepo, response)

	c.JSON(http.StatusOK, response)
}

// Refine handles POST /api/v1/refine: the user picks a different primary
// persona and every variant is regenerated from the refined report.
func (h *Handler) Refine(c *gin.Context) {
	var req RefineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWith(c, apperrors.NewValidationError("invalid refine request", err))
		return
	}

	if !analysis.KnownRole(req.Role) {
		abortWith(c, apperrors.NewValidationError(fmt.Sprintf("unknown role %q", req.Role), nil))
		return
	}

	refined := analysis.Refine(req.Report, req.Role)
	response := AnalysisResponse{
		Report:   refined,
		Variants: readme.GenerateVariants(refined),
	}

	h.persist(c, req.Username, store.KindProfile, response)

	c.JSON(http.StatusOK, response)
}

// ListReports handles GET /api/v1/reports: the most recently refreshed
// analyses, newest first.
func (h *Handler) ListReports(c *gin.Context) {
	if h.reports == nil {
		abortWith(c, apperrors.NewNotFoundError("report persistence is disabled"))
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	summaries, err := h.reports.Recent(limit)
	if err != nil {
		abortWith(c, apperrors.NewInternalError("failed to list reports", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": summaries})
}

// GetReport handles GET /api/v1/reports/:username.
func (h *Handler) GetReport(c *gin.Context) {
	if h.reports == nil {
		abortWith(c, apperrors.NewNotFoundError("report persistence is disabled"))
		return
	}

	username := c.Param("username")
	kind := reportKind(c)

	payload, err := h.reports.Load(username, kind)
	if err == store.ErrNotFound {
		abortWith(c, apperrors.NewNotFoundError(fmt.Sprintf("no stored %s report for %s", kind, username)))
		return
	}
	if err != nil {
		abortWith(c, apperrors.NewInternalError("failed to load report", err))
		return
	}

	c.Data(http.StatusOK, "application/json", payload)
}

// DeleteReport handles DELETE /api/v1/reports/:username.
func (h *Handler) DeleteReport(c *gin.Context) {
	if h.reports == nil {
		abortWith(c, apperrors.NewNotFoundError("report persistence is disabled"))
		return
	}

	username := c.Param("username")
	kind := reportKind(c)

	if err := h.reports.Delete(username, kind); err != nil {
		abortWith(c, apperrors.NewInternalError("failed to delete report", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": username, "kind": kind})
}

func reportKind(c *gin.Context) store.Kind {
	if c.Query("kind") == string(store.KindRepo) {
		return store.KindRepo
	}
	return store.KindProfile
}

// persist saves the analysis under the username, best-effort. A storage
// failure never fails the request.
func (h *Handler) persist(c *gin.Context, username string, kind store.Kind, response any) {
	if h.reports == nil || username == "" {
		return
	}

	payload, err := json.Marshal(response)
	if err != nil {
		return
	}
	if err := h.reports.Save(username, kind, payload); err != nil {
		apperrors.LogError(c, apperrors.NewInternalError("failed to persist report", err))
	}
}

func abortWith(c *gin.Context, err *apperrors.AppError) {
	apperrors.LogError(c, err)
	c.AbortWithStatusJSON(err.HTTPStatus, err)
}
