package symptomcheck

import "strings"

// Encode builds the presence vector of text against vocab. Position i is 1 when
// the lower-cased vocab[i] occurs anywhere in the normalized text.
func Encode(text string, vocab Vocabulary) FeatureVector {
	return encodeLowered(NormalizeQuery(text), lowerAll(vocab))
}

func encodeLowered(normalized string, lowered []string) FeatureVector {
	vec := make(FeatureVector, len(lowered))
	if normalized == "" {
		return vec
	}
	for i, label := range lowered {
		if strings.Contains(normalized, label) {
			vec[i] = 1
		}
	}
	return vec
}

func lowerAll(vocab Vocabulary) []string {
	out := make([]string, len(vocab))
	for i, label := range vocab {
		out[i] = strings.ToLower(label)
	}
	return out
}
