package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"expense-explorer/internal/dto"
	"expense-explorer/internal/models"
	"expense-explorer/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const dateOnly = "2006-01-02"

// parseQuery reads the shared transaction filters from the query string.
func parseQuery(c *fiber.Ctx) (models.TransactionQuery, error) {
	var q models.TransactionQuery

	if v := c.Query("start_date"); v != "" {
		t, _, err := parseDate(v)
		if err != nil {
			return q, fmt.Errorf("invalid start_date %q: use YYYY-MM-DD or RFC3339", v)
		}
		q.StartDate = &t
	}
	if v := c.Query("end_date"); v != "" {
		t, dayOnly, err := parseDate(v)
		if err != nil {
			return q, fmt.Errorf("invalid end_date %q: use YYYY-MM-DD or RFC3339", v)
		}
		// A bare date covers the whole day.
		if dayOnly {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		q.EndDate = &t
	}
	if q.StartDate != nil && q.EndDate != nil && q.StartDate.After(*q.EndDate) {
		return q, errors.New("start_date must not be after end_date")
	}

	for _, v := range splitList(c.Query("categories")) {
		q.Categories = append(q.Categories, strings.ToLower(v))
	}
	for _, v := range splitList(c.Query("transaction_types")) {
		tt := models.TransactionType(strings.ReplaceAll(strings.ToLower(v), " ", "_"))
		if !tt.Valid() {
			return q, fmt.Errorf("invalid transaction type %q: use regular, internal_transfer or income", v)
		}
		q.TransactionTypes = append(q.TransactionTypes, tt)
	}
	q.Tags = splitList(c.Query("tags"))

	var err error
	if q.MinAmount, err = parseAmount(c.Query("min_amount"), "min_amount"); err != nil {
		return q, err
	}
	if q.MaxAmount, err = parseAmount(c.Query("max_amount"), "max_amount"); err != nil {
		return q, err
	}
	if q.MinAmount != nil && q.MaxAmount != nil && q.MinAmount.GreaterThan(*q.MaxAmount) {
		return q, errors.New("min_amount must not be greater than max_amount")
	}

	q.SearchText = strings.TrimSpace(c.Query("search_text"))

	if v := c.Query("include_excluded"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return q, fmt.Errorf("invalid include_excluded %q: use true or false", v)
		}
		q.IncludeExcluded = b
	}
	return q, nil
}

func parseDate(v string) (time.Time, bool, error) {
	if t, err := time.Parse(dateOnly, v); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	return t, false, err
}

func parseAmount(v, name string) (*decimal.Decimal, error) {
	if v == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: must be a number", name, v)
	}
	return &d, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func errorJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: msg})
}

// ledgerError answers for a failed ledger load and logs the cause.
func ledgerError(c *fiber.Ctx, logger *zap.Logger, msg string, err error) error {
	if errors.Is(err, repository.ErrSourceNotFound) {
		logger.Warn("Ledger source missing", zap.Error(err))
		return errorJSON(c, fiber.StatusNotFound, "Ledger data not found")
	}
	logger.Error(msg, zap.Error(err))
	return errorJSON(c, fiber.StatusInternalServerError, msg)
}
