package symptomcheck

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// NormalizeQuery lower-cases text and collapses whitespace runs to single spaces.
func NormalizeQuery(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// normalizeHeader prepares a header cell or column reference for comparison.
func normalizeHeader(text string) string {
	normed := norm.NFKC.String(text)
	normed = strings.TrimPrefix(normed, "\ufeff")
	normed = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, normed)
	normed = strings.Join(strings.Fields(normed), " ")
	return cases.Fold().String(normed)
}

// isMissing reports whether a cell should be treated as an absent value.
func isMissing(cell string) bool {
	return strings.TrimSpace(cell) == ""
}

func uniqueInOrder(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if isMissing(v) {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
