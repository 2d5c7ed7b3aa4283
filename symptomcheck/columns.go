package symptomcheck

import (
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Default column names used when a dataset does not override them.
const (
	DefaultSymptomColumn   = "Symptom"
	DefaultConditionColumn = "Condition"
)

// findColumn resolves a header name or a 1-based "#n" reference. Names are
// matched case-insensitively after NFKC normalization.
func findColumn(header []string, ref string) (int, error) {
	trimmed := strings.TrimSpace(ref)
	if trimmed == "" {
		return -1, goerr.Wrap(ErrMissingColumn, "empty column reference")
	}
	want := normalizeHeader(trimmed)
	for i, col := range header {
		if normalizeHeader(col) == want {
			return i, nil
		}
	}
	if strings.HasPrefix(trimmed, "#") {
		idx, err := parseColumnIndex(trimmed)
		if err != nil {
			return -1, err
		}
		if idx >= len(header) {
			return -1, goerr.Wrap(ErrMissingColumn, "column index is out of range",
				goerr.V(ColumnKey, trimmed), goerr.V("columns", len(header)))
		}
		return idx, nil
	}
	return -1, goerr.Wrap(ErrMissingColumn, "column not found in header",
		goerr.V(ColumnKey, trimmed), goerr.V("header", header))
}

func parseColumnIndex(token string) (int, error) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(token, "#"))
	idx, err := strconv.Atoi(trimmed)
	if err != nil || idx <= 0 {
		return -1, goerr.Wrap(ErrMissingColumn, "column indices are 1-based integers",
			goerr.V(ColumnKey, token))
	}
	return idx - 1, nil
}
