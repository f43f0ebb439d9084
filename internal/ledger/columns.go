package ledger

import "strings"

type field int

const (
	fieldID field = iota
	fieldAmount
	fieldDescription
	fieldMerchant
	fieldCategory
	fieldParentCategory
	fieldDate
	fieldTags
	fieldExcluded
	fieldStatus
	fieldNotes
	fieldType
	fieldAccount
	fieldAccountMask
	fieldRecurring
	fieldCount
)

// aliases lists the accepted header spellings per field, most preferred first.
// Comparison is case-insensitive on trimmed header cells.
var aliases = [fieldCount][]string{
	fieldID:             {"id"},
	fieldAmount:         {"amount", "value"},
	fieldDescription:    {"name", "description", "memo"},
	fieldMerchant:       {"name", "merchant", "payee"},
	fieldCategory:       {"category"},
	fieldParentCategory: {"parent category", "parent_category"},
	fieldDate:           {"date", "transaction date", "posted date"},
	fieldTags:           {"tags", "labels"},
	fieldExcluded:       {"excluded"},
	fieldStatus:         {"status"},
	fieldNotes:          {"note", "notes"},
	fieldType:           {"type", "transaction type", "transaction_type"},
	fieldAccount:        {"account", "account name"},
	fieldAccountMask:    {"account mask", "account_mask"},
	fieldRecurring:      {"recurring"},
}

var fieldNames = [fieldCount]string{
	fieldID:             "id",
	fieldAmount:         "amount",
	fieldDescription:    "description",
	fieldMerchant:       "merchant",
	fieldCategory:       "category",
	fieldParentCategory: "parent_category",
	fieldDate:           "date",
	fieldTags:           "tags",
	fieldExcluded:       "excluded",
	fieldStatus:         "status",
	fieldNotes:          "notes",
	fieldType:           "type",
	fieldAccount:        "account",
	fieldAccountMask:    "account_mask",
	fieldRecurring:      "recurring",
}

// columns maps each field to a header position, or -1 when the field is absent.
type columns [fieldCount]int

func resolveColumns(header []string) columns {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := pos[key]; !dup {
			pos[key] = i
		}
	}

	var c columns
	for f := field(0); f < fieldCount; f++ {
		c[f] = -1
		for _, alias := range aliases[f] {
			if i, ok := pos[alias]; ok {
				c[f] = i
				break
			}
		}
	}
	return c
}

func (c columns) has(f field) bool {
	return c[f] >= 0
}

// value returns the trimmed cell for f, or "" when the column is absent or the row is short.
func (c columns) value(row []string, f field) string {
	i := c[f]
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
