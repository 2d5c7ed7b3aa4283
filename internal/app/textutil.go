package app

import (
	"fmt"
	"strings"

	"yashubustudio/symptomcheck/symptomcheck"
)

func splitNonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

func insightsSummary(in symptomcheck.Insights) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Unique symptoms: %d\n", in.UniqueSymptoms)
	fmt.Fprintf(&b, "Total data points: %d\n", in.TotalRows)
	for _, src := range in.Sources {
		fmt.Fprintf(&b, "%s: %s\n", src.Name, strings.Join(src.Symptoms, ", "))
	}
	if len(in.Conditions) > 0 {
		fmt.Fprintf(&b, "Conditions: %s\n", strings.Join(in.Conditions, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}
