package symptomcheck

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
)

// LinearModel is a per-label weight table. Each label scores
// bias[label] + sum(weights[label][i] * x[i]) and the highest score wins;
// ties go to the label listed first.
type LinearModel struct {
	Labels   []string    `json:"labels"`
	Features []string    `json:"features,omitempty"`
	Weights  [][]float32 `json:"weights"`
	Bias     []float32   `json:"bias,omitempty"`
}

// LoadLinearModel reads a JSON weight table.
func LoadLinearModel(path string) (*LinearModel, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, goerr.Wrap(ErrClassifierUnavailable, "model file not found",
				goerr.V(PathKey, path), goerr.V(ClassifierKey, KindLinear))
		}
		return nil, goerr.Wrap(err, "failed to read model file", goerr.V(PathKey, path))
	}
	var m LinearModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, goerr.Wrap(ErrIncompatibleClassifier, "failed to decode model file",
			goerr.V(PathKey, path), goerr.V("cause", err.Error()))
	}
	if err := m.validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid model file", goerr.V(PathKey, path))
	}
	return &m, nil
}

func (m *LinearModel) validate() error {
	if len(m.Labels) == 0 {
		return goerr.Wrap(ErrIncompatibleClassifier, "model declares no labels")
	}
	if len(m.Weights) != len(m.Labels) {
		return goerr.Wrap(ErrIncompatibleClassifier, "weight rows do not match labels",
			goerr.V("labels", len(m.Labels)), goerr.V("rows", len(m.Weights)))
	}
	if m.Bias != nil && len(m.Bias) != len(m.Labels) {
		return goerr.Wrap(ErrIncompatibleClassifier, "bias does not match labels",
			goerr.V("labels", len(m.Labels)), goerr.V("bias", len(m.Bias)))
	}
	width := len(m.Weights[0])
	for i, row := range m.Weights {
		if len(row) != width {
			return goerr.Wrap(ErrIncompatibleClassifier, "ragged weight rows",
				goerr.V("label", m.Labels[i]), goerr.V("width", len(row)), goerr.V("expected", width))
		}
	}
	if m.Features != nil && len(m.Features) != width {
		return goerr.Wrap(ErrIncompatibleClassifier, "feature names do not match weight width",
			goerr.V("features", len(m.Features)), goerr.V("width", width))
	}
	return nil
}

// Bind checks that the model was trained on vocab.
func (m *LinearModel) Bind(vocab Vocabulary) error {
	if err := m.validate(); err != nil {
		return err
	}
	if m.Features != nil {
		if len(m.Features) != len(vocab) {
			return goerr.Wrap(ErrIncompatibleClassifier, "feature count differs from vocabulary",
				goerr.V("features", len(m.Features)), goerr.V("vocabulary", len(vocab)))
		}
		for i, name := range m.Features {
			if name != vocab[i] {
				return goerr.Wrap(ErrIncompatibleClassifier, "feature order differs from vocabulary",
					goerr.V("position", i), goerr.V("feature", name), goerr.V("symptom", vocab[i]))
			}
		}
		return nil
	}
	if width := len(m.Weights[0]); width != len(vocab) {
		return goerr.Wrap(ErrIncompatibleClassifier, "weight width differs from vocabulary",
			goerr.V("width", width), goerr.V("vocabulary", len(vocab)))
	}
	return nil
}

// Predict returns the highest scoring label.
func (m *LinearModel) Predict(features FeatureVector) (string, error) {
	if len(m.Weights) == 0 {
		return "", goerr.Wrap(ErrClassifierUnavailable, "model has no weights")
	}
	if len(features) != len(m.Weights[0]) {
		return "", goerr.New("feature vector width mismatch",
			goerr.V("got", len(features)), goerr.V("expected", len(m.Weights[0])))
	}
	best := -1
	var bestScore float32
	for i, row := range m.Weights {
		var score float32
		if m.Bias != nil {
			score = m.Bias[i]
		}
		for j, x := range features {
			score += row[j] * x
		}
		if best < 0 || score > bestScore {
			best = i
			bestScore = score
		}
	}
	return m.Labels[best], nil
}
