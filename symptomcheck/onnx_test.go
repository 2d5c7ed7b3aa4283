package symptomcheck

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Only the checks that run before onnxruntime is loaded are covered here.
func TestNewONNXClassifier_Errors(t *testing.T) {
	model := filepath.Join("testdata", "model.json")

	t.Run("labels required", func(t *testing.T) {
		_, err := NewONNXClassifier(ONNXConfig{ModelPath: model, OrtLibrary: model})
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
	t.Run("model missing", func(t *testing.T) {
		_, err := NewONNXClassifier(ONNXConfig{
			ModelPath:  filepath.Join("testdata", "absent.onnx"),
			OrtLibrary: model,
			Labels:     []string{"Anxiety"},
		})
		require.ErrorIs(t, err, ErrClassifierUnavailable)
	})
	t.Run("runtime library missing", func(t *testing.T) {
		_, err := NewONNXClassifier(ONNXConfig{
			ModelPath: model,
			Labels:    []string{"Anxiety"},
		})
		require.ErrorIs(t, err, ErrClassifierUnavailable)
	})
}

func TestONNXClassifier_PredictBeforeBind(t *testing.T) {
	model := filepath.Join("testdata", "model.json")
	clf, err := NewONNXClassifier(ONNXConfig{ModelPath: model, OrtLibrary: model, Labels: []string{"Anxiety"}})
	require.NoError(t, err)

	_, err = clf.Predict(FeatureVector{1})
	require.ErrorIs(t, err, ErrClassifierUnavailable)
	require.NoError(t, clf.Close())
}
