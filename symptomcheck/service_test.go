package symptomcheck

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bundledConfig(t *testing.T) Config {
	t.Helper()
	cfg, err := LoadConfig(filepath.Join("..", "symptomcheck.toml"))
	require.NoError(t, err)
	return cfg
}

func TestOpen_BundledData(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	p, err := Open(context.Background(), bundledConfig(t), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })

	assert.Equal(t, 17, p.Vocabulary().Size())
	assert.Contains(t, buf.String(), "predictor ready")

	tests := []struct {
		query     string
		condition string
		matched   int
	}{
		{query: "feeling tired and restless", condition: "Anxiety", matched: 2},
		{query: "lack of sleep and anxiety", condition: "Anxiety", matched: 2},
		{query: "depressed mood", condition: "Depression", matched: 1},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := p.Predict(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.condition, got.Condition)
			assert.Equal(t, tt.matched, got.Matched)
			assert.Equal(t, 17, got.Total)
		})
	}

	insights := p.Insights()
	assert.Equal(t, 17, insights.UniqueSymptoms)
	require.Len(t, insights.Sources, 3)
	assert.Equal(t, []string{"tech_survey", "depression_anxiety", "who"},
		[]string{insights.Sources[0].Name, insights.Sources[1].Name, insights.Sources[2].Name})
}

func TestOpen_Failures(t *testing.T) {
	t.Run("missing dataset", func(t *testing.T) {
		cfg := bundledConfig(t)
		cfg.Datasets[1].Path = filepath.Join(t.TempDir(), "nope.csv")
		_, err := Open(context.Background(), cfg, nil)
		require.ErrorIs(t, err, ErrDatasetNotFound)
	})
	t.Run("missing model", func(t *testing.T) {
		cfg := bundledConfig(t)
		cfg.Classifier.Path = filepath.Join(t.TempDir(), "nope.json")
		_, err := Open(context.Background(), cfg, nil)
		require.ErrorIs(t, err, ErrClassifierUnavailable)
	})
	t.Run("model for another vocabulary", func(t *testing.T) {
		cfg := bundledConfig(t)
		cfg.Classifier.Path = filepath.Join("testdata", "model.json")
		_, err := Open(context.Background(), cfg, nil)
		require.ErrorIs(t, err, ErrIncompatibleClassifier)
	})
	t.Run("no datasets", func(t *testing.T) {
		cfg := bundledConfig(t)
		cfg.Datasets = nil
		_, err := Open(context.Background(), cfg, nil)
		require.ErrorIs(t, err, ErrNoSources)
	})
	t.Run("invalid config", func(t *testing.T) {
		cfg := bundledConfig(t)
		cfg.Classifier.Kind = "forest"
		_, err := Open(context.Background(), cfg, nil)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestOpen_AdviceOverrides(t *testing.T) {
	cfg := bundledConfig(t)
	cfg.Advice = map[string]string{"Depression": "Reach out to someone you trust."}

	p, err := Open(context.Background(), cfg, nil)
	require.NoError(t, err)
	got, err := p.Predict("depressed mood")
	require.NoError(t, err)
	assert.Equal(t, "Reach out to someone you trust.", got.Advice)
}
