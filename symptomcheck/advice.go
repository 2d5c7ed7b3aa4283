package symptomcheck

// FallbackAdvice is returned for conditions without a dedicated suggestion.
const FallbackAdvice = "General support recommended"

// Built-in conditions with coping suggestions.
const (
	ConditionAnxiety    = "Anxiety"
	ConditionDepression = "Depression"
	ConditionStress     = "Stress"
)

func defaultAdvice() map[string]string {
	return map[string]string{
		ConditionAnxiety:    "Practice mindfulness and deep breathing techniques.",
		ConditionDepression: "Consider professional counseling and journaling.",
		ConditionStress:     "Implement stress management and seek social support.",
	}
}

// AdviceTable maps a condition label to a coping suggestion.
type AdviceTable struct {
	entries map[string]string
}

// DefaultAdviceTable returns the built-in table.
func DefaultAdviceTable() AdviceTable {
	return AdviceTable{entries: defaultAdvice()}
}

// NewAdviceTable returns the built-in table with overrides applied on top.
// Empty suggestions in overrides are ignored.
func NewAdviceTable(overrides map[string]string) AdviceTable {
	t := DefaultAdviceTable()
	for condition, advice := range overrides {
		if condition == "" || advice == "" {
			continue
		}
		t.entries[condition] = advice
	}
	return t
}

// Lookup returns the suggestion for condition or FallbackAdvice.
func (t AdviceTable) Lookup(condition string) string {
	if advice, ok := t.entries[condition]; ok {
		return advice
	}
	return FallbackAdvice
}

// Len returns the number of explicit entries.
func (t AdviceTable) Len() int {
	return len(t.entries)
}
