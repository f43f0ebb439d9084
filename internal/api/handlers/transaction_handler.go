package handlers

import (
	"expense-explorer/internal/dto"
	"expense-explorer/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type TransactionHandler struct {
	analysisService *service.AnalysisService
	logger          *zap.Logger
}

func NewTransactionHandler(analysisService *service.AnalysisService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		analysisService: analysisService,
		logger:          logger,
	}
}

// ListTransactions godoc
// @Summary List transactions
// @Description Filtered ledger records in source order. Excluded records are hidden unless include_excluded is set.
// @Tags transactions
// @Produce json
// @Param start_date query string false "Inclusive start, YYYY-MM-DD or RFC3339"
// @Param end_date query string false "Inclusive end, YYYY-MM-DD or RFC3339"
// @Param categories query string false "Comma-separated category labels"
// @Param transaction_types query string false "Comma-separated: regular, internal_transfer, income"
// @Param tags query string false "Comma-separated tags, any match"
// @Param min_amount query number false "Minimum absolute amount"
// @Param max_amount query number false "Maximum absolute amount"
// @Param search_text query string false "Case-insensitive description substring"
// @Param include_excluded query bool false "Include excluded records"
// @Success 200 {object} dto.TransactionListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) ListTransactions(c *fiber.Ctx) error {
	q, err := parseQuery(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	records, err := h.analysisService.Transactions(c.UserContext(), q)
	if err != nil {
		return ledgerError(c, h.logger, "Failed to list transactions", err)
	}

	return c.JSON(dto.TransactionListResponse{
		Transactions: records,
		Count:        len(records),
	})
}

// GetCategories godoc
// @Summary List categories
// @Description Categories of the visible records with display names, colors, icons and net totals
// @Tags transactions
// @Produce json
// @Success 200 {array} models.CategoryInfo
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/transactions/categories [get]
func (h *TransactionHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.analysisService.Categories(c.UserContext())
	if err != nil {
		return ledgerError(c, h.logger, "Failed to list categories", err)
	}
	return c.JSON(categories)
}

// GetSummary godoc
// @Summary Summary statistics
// @Description Totals, category breakdown, monthly trend, top merchants and spending velocity for the filtered records
// @Tags transactions
// @Produce json
// @Param start_date query string false "Inclusive start, YYYY-MM-DD or RFC3339"
// @Param end_date query string false "Inclusive end, YYYY-MM-DD or RFC3339"
// @Param categories query string false "Comma-separated category labels"
// @Param transaction_types query string false "Comma-separated: regular, internal_transfer, income"
// @Param tags query string false "Comma-separated tags, any match"
// @Param min_amount query number false "Minimum absolute amount"
// @Param max_amount query number false "Maximum absolute amount"
// @Param search_text query string false "Case-insensitive description substring"
// @Param include_excluded query bool false "Include excluded records"
// @Success 200 {object} models.TransactionSummary
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/transactions/summary [get]
func (h *TransactionHandler) GetSummary(c *fiber.Ctx) error {
	q, err := parseQuery(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	}

	summary, err := h.analysisService.Summary(c.UserContext(), q)
	if err != nil {
		return ledgerError(c, h.logger, "Failed to build summary", err)
	}
	return c.JSON(summary)
}
