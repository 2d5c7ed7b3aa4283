package symptomcheck

// Classifier predicts a condition label from a single feature vector.
type Classifier interface {
	Predict(features FeatureVector) (string, error)
}

// VocabularyBinder is implemented by classifiers that need to check or prepare
// for the vocabulary before the first prediction. A Bind error aborts
// predictor construction.
type VocabularyBinder interface {
	Bind(vocab Vocabulary) error
}

// ClassifierFunc adapts a plain function to Classifier.
type ClassifierFunc func(features FeatureVector) (string, error)

// Predict calls f.
func (f ClassifierFunc) Predict(features FeatureVector) (string, error) {
	return f(features)
}

// Classifier kinds accepted in configuration.
const (
	KindLinear = "linear"
	KindONNX   = "onnx"
)
