package ledger

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"02/01/2006",
	"2006-01-02 15:04:05",
	"01/02/2006 15:04:05",
	"02/01/2006 15:04:05",
	time.RFC3339,
}

var amountNoise = strings.NewReplacer("$", "", "€", "", "£", "", ",", "", " ", "")

// nullish reports whether s is one of the placeholders spreadsheets export for an empty cell.
func nullish(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "nan", "null", "none":
		return true
	}
	return false
}

func optional(s string) string {
	if nullish(s) {
		return ""
	}
	return strings.TrimSpace(s)
}

// parseAmount accepts values such as "$1,234.50", "-12" and "(45.00)".
func parseAmount(s string) (decimal.Decimal, bool) {
	s = amountNoise.Replace(strings.TrimSpace(s))
	if nullish(s) {
		return decimal.Zero, false
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if negative {
		v = v.Abs().Neg()
	}
	return v, true
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if nullish(s) {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseTags splits on the first of ',', ';' or '|' present in s.
func parseTags(s string) []string {
	if nullish(s) {
		return []string{}
	}

	parts := []string{s}
	for _, sep := range []string{",", ";", "|"} {
		if strings.Contains(s, sep) {
			parts = strings.Split(s, sep)
			break
		}
	}

	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y":
		return true
	}
	b, _ := strconv.ParseBool(strings.TrimSpace(s))
	return b
}
