package handlers

import (
	"net/url"
	"strings"

	"expense-explorer/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AnalysisHandler struct {
	analysisService *service.AnalysisService
	logger          *zap.Logger
}

func NewAnalysisHandler(analysisService *service.AnalysisService, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
		logger:          logger,
	}
}

// GetInsights godoc
// @Summary Rule-based insights
// @Description Insights over regular transactions carrying the configured marker tag
// @Tags analysis
// @Produce json
// @Success 200 {array} models.Insight
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/insights [get]
func (h *AnalysisHandler) GetInsights(c *fiber.Ctx) error {
	insights, err := h.analysisService.Insights(c.UserContext())
	if err != nil {
		return ledgerError(c, h.logger, "Failed to generate insights", err)
	}
	return c.JSON(insights)
}

// GetTags godoc
// @Summary Tag catalogue
// @Description Every tag with its transaction count, total and categories, largest total first
// @Tags analysis
// @Produce json
// @Param start_date query string false "Inclusive start, YYYY-MM-DD or RFC3339"
// @Param end_date query string false "Inclusive end, YYYY-MM-DD or RFC3339"
// @Param categories query string false "Comma-separated category labels"
// @Param include_excluded query bool false "Include excluded records"
// @Success 200 {object} models.TagCatalogue
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/analysis/tags [get]
func (h *AnalysisHandler) GetTags(c *fiber.Ctx) error {
	q, err := parseQuery(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	catalogue, err := h.analysisService.Tags(c.UserContext(), q)
	if err != nil {
		return ledgerError(c, h.logger, "Failed to list tags", err)
	}
	return c.JSON(catalogue)
}

// GetTagOverlap godoc
// @Summary Tag and category overlap
// @Description Splits the transactions carrying a tag by category (Venn data)
// @Tags analysis
// @Produce json
// @Param tag path string true "Tag, case-insensitive"
// @Param start_date query string false "Inclusive start, YYYY-MM-DD or RFC3339"
// @Param end_date query string false "Inclusive end, YYYY-MM-DD or RFC3339"
// @Success 200 {object} models.TagOverlap
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/analysis/tags/{tag}/overlap [get]
func (h *AnalysisHandler) GetTagOverlap(c *fiber.Ctx) error {
	tag, err := url.PathUnescape(c.Params("tag"))
	if err != nil || strings.TrimSpace(tag) == "" {
		return errorJSON(c, fiber.StatusBadRequest, "Tag is required")
	}

	q, err := parseQuery(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	overlap, err := h.analysisService.TagOverlap(c.UserContext(), strings.TrimSpace(tag), q)
	if err != nil {
		return ledgerError(c, h.logger, "Failed to compute tag overlap", err)
	}
	return c.JSON(overlap)
}

// GetMultiOverlap godoc
// @Summary Multi-tag and multi-category overlap
// @Description Non-empty intersections of each requested tag with each requested category
// @Tags analysis
// @Produce json
// @Param tags query string true "Comma-separated tags"
// @Param categories query string true "Comma-separated category labels"
// @Success 200 {object} models.MultiTagOverlap
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/analysis/overlap [get]
func (h *AnalysisHandler) GetMultiOverlap(c *fiber.Ctx) error {
	q, err := parseQuery(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}
	if len(q.Tags) == 0 || len(q.Categories) == 0 {
		return errorJSON(c, fiber.StatusBadRequest, "Both tags and categories are required")
	}

	// The pair lists define the cross product; they must not also narrow the records.
	tags, categories := q.Tags, q.Categories
	q.Tags, q.Categories = nil, nil

	overlap, err := h.analysisService.MultiOverlap(c.UserContext(), tags, categories, q)
	if err != nil {
		return ledgerError(c, h.logger, "Failed to compute overlap", err)
	}
	return c.JSON(overlap)
}

// GetCategoryHierarchy godoc
// @Summary Category hierarchy
// @Description All category labels, parent labels and per-parent child counts, excluded records included
// @Tags analysis
// @Produce json
// @Success 200 {object} models.CategoryHierarchy
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/categories [get]
func (h *AnalysisHandler) GetCategoryHierarchy(c *fiber.Ctx) error {
	hierarchy, err := h.analysisService.CategoryHierarchy(c.UserContext())
	if err != nil {
		return ledgerError(c, h.logger, "Failed to list categories", err)
	}
	return c.JSON(hierarchy)
}
