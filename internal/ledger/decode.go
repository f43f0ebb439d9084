// Package ledger turns CSV expense exports into transactions.
package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"expense-explorer/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrNoHeader = errors.New("ledger has no header row")

const sourceCSV = "csv"

// idNamespace seeds generated transaction ids.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("expense-explorer/transactions"))

type Result struct {
	Transactions []models.Transaction
	Columns      []string
	// Skipped counts rows dropped because the CSV itself was malformed.
	Skipped  int
	Warnings int
}

type Decoder struct {
	logger *zap.Logger
	now    func() time.Time
}

type Option func(*Decoder)

// WithClock sets the time used for rows with a missing or unreadable date.
func WithClock(now func() time.Time) Option {
	return func(d *Decoder) { d.now = now }
}

func NewDecoder(logger *zap.Logger, opts ...Option) *Decoder {
	d := &Decoder{
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func newCSVReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return cr
}

// Decode reads a whole ledger. Bad rows are skipped and bad values defaulted;
// only a missing header or an I/O failure aborts the batch.
func (d *Decoder) Decode(r io.Reader) (*Result, error) {
	cr := newCSVReader(r)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	cols := resolveColumns(header)

	res := &Result{
		Transactions: []models.Transaction{},
		Columns:      header,
	}
	seen := make(map[string]struct{})

	for rowNum := 2; ; rowNum++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if !errors.As(err, &perr) {
				return nil, fmt.Errorf("failed to read row %d: %w", rowNum, err)
			}
			res.Skipped++
			d.logger.Warn("Skipping malformed ledger row",
				zap.Int("row", rowNum),
				zap.Error(err),
			)
			continue
		}

		t, warnings := d.decodeRow(cols, row, rowNum)
		if _, dup := seen[t.ID]; dup {
			d.logger.Warn("Duplicate transaction id, generating a new one",
				zap.Int("row", rowNum),
				zap.String("id", t.ID),
			)
			t.ID = generatedID(rowNum, t)
			warnings++
		}
		seen[t.ID] = struct{}{}

		res.Warnings += warnings
		res.Transactions = append(res.Transactions, t)
	}

	d.logger.Info("Ledger decoded",
		zap.Int("transactions", len(res.Transactions)),
		zap.Int("skipped", res.Skipped),
		zap.Int("warnings", res.Warnings),
	)

	return res, nil
}

func (d *Decoder) decodeRow(cols columns, row []string, rowNum int) (models.Transaction, int) {
	warnings := 0

	rawAmount := cols.value(row, fieldAmount)
	amount, ok := parseAmount(rawAmount)
	if !ok {
		warnings++
		d.logger.Warn("Unreadable amount, using 0",
			zap.Int("row", rowNum),
			zap.String("value", rawAmount),
		)
	}

	rawDate := cols.value(row, fieldDate)
	date, ok := parseDate(rawDate)
	if !ok {
		date = d.now()
		warnings++
		d.logger.Warn("Unreadable date, using current time",
			zap.Int("row", rowNum),
			zap.String("value", rawDate),
		)
	}

	description := optional(cols.value(row, fieldDescription))

	t := models.Transaction{
		ID:              optional(cols.value(row, fieldID)),
		Amount:          amount,
		Description:     description,
		Merchant:        optional(cols.value(row, fieldMerchant)),
		Account:         optional(cols.value(row, fieldAccount)),
		AccountMask:     optional(cols.value(row, fieldAccountMask)),
		Notes:           optional(cols.value(row, fieldNotes)),
		Category:        resolveCategory(cols.value(row, fieldCategory), cols.value(row, fieldParentCategory), description),
		Date:            date,
		Tags:            parseTags(cols.value(row, fieldTags)),
		TransactionType: models.ParseTransactionType(cols.value(row, fieldType)),
		Excluded:        parseBool(cols.value(row, fieldExcluded)),
		Status:          optional(cols.value(row, fieldStatus)),
		Recurring:       optional(cols.value(row, fieldRecurring)),
		Source:          sourceCSV,
	}
	if t.ID == "" {
		t.ID = generatedID(rowNum, t)
	}

	return t, warnings
}

// generatedID is stable for a given row position, date and description.
func generatedID(rowNum int, t models.Transaction) string {
	name := strconv.Itoa(rowNum) + "|" + t.Date.Format(time.RFC3339) + "|" + t.Description
	return uuid.NewSHA1(idNamespace, []byte(name)).String()
}
