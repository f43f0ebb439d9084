package handlers

import (
	"errors"

	"expense-explorer/internal/dto"
	"expense-explorer/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type QueryHandler struct {
	queryService *service.QueryService
	logger       *zap.Logger
}

func NewQueryHandler(queryService *service.QueryService, logger *zap.Logger) *QueryHandler {
	return &QueryHandler{
		queryService: queryService,
		logger:       logger,
	}
}

// Query godoc
// @Summary Ask a question about the ledger
// @Description Answers a free-text question with the configured LLM, plus chart data for the tags and categories it mentions
// @Tags query
// @Accept json
// @Produce json
// @Param request body dto.QueryRequest true "Question and optional extra context"
// @Success 200 {object} dto.QueryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/query [post]
func (h *QueryHandler) Query(c *fiber.Ctx) error {
	var req dto.QueryRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}

	answer, err := h.queryService.Ask(c.UserContext(), req.Question, req.Context)
	switch {
	case errors.Is(err, service.ErrEmptyQuestion):
		return errorJSON(c, fiber.StatusBadRequest, "Question is required")
	case errors.Is(err, service.ErrGeneration):
		h.logger.Error("Failed to generate answer", zap.Error(err))
		return errorJSON(c, fiber.StatusBadGateway, "The language model could not answer right now, please try again later")
	case err != nil:
		return ledgerError(c, h.logger, "Failed to answer question", err)
	}

	return c.JSON(dto.NewQueryResponse(answer))
}
