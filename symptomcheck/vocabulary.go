package symptomcheck

import "sort"

// Vocabulary is the sorted, duplicate-free list of known symptom labels.
// It must not be modified after it has been handed to a Predictor.
type Vocabulary []string

// BuildVocabulary returns the sorted union of the given label collections.
// Equality is case-sensitive; empty and whitespace-only labels are skipped.
func BuildVocabulary(collections ...[]string) Vocabulary {
	seen := make(map[string]struct{})
	for _, labels := range collections {
		for _, label := range labels {
			if isMissing(label) {
				continue
			}
			seen[label] = struct{}{}
		}
	}
	vocab := make(Vocabulary, 0, len(seen))
	for label := range seen {
		vocab = append(vocab, label)
	}
	sort.Strings(vocab)
	return vocab
}

// Size returns the number of labels.
func (v Vocabulary) Size() int {
	return len(v)
}

// Index returns the position of label, or -1.
func (v Vocabulary) Index(label string) int {
	i := sort.SearchStrings(v, label)
	if i < len(v) && v[i] == label {
		return i
	}
	return -1
}

// Matches returns the labels set in vec.
func (v Vocabulary) Matches(vec FeatureVector) []string {
	var out []string
	for i, x := range vec {
		if x != 0 && i < len(v) {
			out = append(out, v[i])
		}
	}
	return out
}
