package symptomcheck

// Sentinel outcome returned when no vocabulary symptom occurs in a query.
const (
	NoSymptomsCondition   = "No symptoms found"
	NoSymptomsExplanation = "Please describe symptoms more clearly"
)

// Source is one loaded symptom dataset.
type Source struct {
	Name string `json:"name" yaml:"name"`
	// Symptoms holds the raw symptom cells in file order, duplicates included.
	Symptoms []string `json:"symptoms" yaml:"symptoms"`
	// Conditions is only populated when the dataset exposes a condition column.
	Conditions []string `json:"conditions,omitempty" yaml:"conditions,omitempty"`
	Rows       int      `json:"rows" yaml:"rows"`
}

// FeatureVector is a binary presence vector aligned to a Vocabulary.
type FeatureVector []float32

// Count returns how many positions are set.
func (v FeatureVector) Count() int {
	n := 0
	for _, x := range v {
		if x != 0 {
			n++
		}
	}
	return n
}

// Prediction is the outcome of a single query.
type Prediction struct {
	Query       string `json:"query" yaml:"query"`
	Condition   string `json:"condition" yaml:"condition"`
	Explanation string `json:"explanation" yaml:"explanation"`
	Advice      string `json:"advice" yaml:"advice"`
	Matched     int    `json:"matched" yaml:"matched"`
	Total       int    `json:"total" yaml:"total"`
	// Found is false for the no-symptoms sentinel.
	Found bool `json:"found" yaml:"found"`
}

// SourceSymptoms lists the distinct symptoms of one source.
type SourceSymptoms struct {
	Name     string   `json:"name" yaml:"name"`
	Symptoms []string `json:"symptoms" yaml:"symptoms"`
}

// Insights summarizes the datasets backing a predictor.
type Insights struct {
	UniqueSymptoms int              `json:"unique_symptoms" yaml:"unique_symptoms"`
	Sources        []SourceSymptoms `json:"sources" yaml:"sources"`
	Conditions     []string         `json:"conditions,omitempty" yaml:"conditions,omitempty"`
	TotalRows      int              `json:"total_rows" yaml:"total_rows"`
}
