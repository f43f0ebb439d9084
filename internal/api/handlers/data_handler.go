package handlers

import (
	"errors"

	"expense-explorer/internal/dto"
	"expense-explorer/internal/ledger"
	"expense-explorer/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DataHandler struct {
	analysisService *service.AnalysisService
	logger          *zap.Logger
}

func NewDataHandler(analysisService *service.AnalysisService, logger *zap.Logger) *DataHandler {
	return &DataHandler{
		analysisService: analysisService,
		logger:          logger,
	}
}

// Sync godoc
// @Summary Reload the ledger
// @Description Re-reads the CSV from its source and swaps the in-memory snapshot
// @Tags data
// @Produce json
// @Success 200 {object} dto.SyncResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/data/sync [post]
func (h *DataHandler) Sync(c *fiber.Ctx) error {
	res, err := h.analysisService.Sync(c.UserContext())
	if err != nil {
		return ledgerError(c, h.logger, "Failed to reload ledger", err)
	}
	return c.JSON(dto.NewSyncResponse("Data loaded successfully", res))
}

// Upload godoc
// @Summary Upload a ledger CSV
// @Description Replaces the ledger with the uploaded CSV and reloads it
// @Tags data
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Ledger CSV"
// @Success 200 {object} dto.SyncResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/data/upload [post]
func (h *DataHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "File is required")
	}

	src, err := file.Open()
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Failed to open file")
	}
	defer src.Close()

	res, err := h.analysisService.Upload(c.UserContext(), src)
	if errors.Is(err, ledger.ErrNoHeader) {
		return errorJSON(c, fiber.StatusBadRequest, "CSV file has no header row")
	}
	if err != nil {
		h.logger.Error("Failed to upload ledger", zap.String("file_name", file.Filename), zap.Error(err))
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to upload ledger")
	}

	h.logger.Info("Ledger uploaded", zap.String("file_name", file.Filename), zap.Int("records", res.Records))
	return c.JSON(dto.NewSyncResponse("CSV uploaded and processed successfully", res))
}

// Validate godoc
// @Summary Validate a ledger CSV
// @Description Checks required columns and row values without storing the file
// @Tags data
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Ledger CSV"
// @Success 200 {object} ledger.ValidationReport
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/data/validate [post]
func (h *DataHandler) Validate(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "File is required")
	}

	src, err := file.Open()
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Failed to open file")
	}
	defer src.Close()

	return c.JSON(ledger.Validate(src))
}

// SampleCSV godoc
// @Summary Download a sample ledger
// @Tags data
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Router /api/v1/data/sample-csv [get]
func (h *DataHandler) SampleCSV(c *fiber.Ctx) error {
	c.Attachment("sample_transactions.csv")
	if err := ledger.WriteSample(c); err != nil {
		h.logger.Error("Failed to write sample CSV", zap.Error(err))
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to generate sample CSV")
	}
	return nil
}
