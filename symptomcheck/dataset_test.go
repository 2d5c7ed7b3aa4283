package symptomcheck

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSource(t *testing.T) {
	src, err := LoadSource(DatasetConfig{
		Name:            "scores",
		Path:            filepath.Join("testdata", "scores.csv"),
		ConditionColumn: "Condition",
	})
	require.NoError(t, err)

	assert.Equal(t, "scores", src.Name)
	assert.Equal(t, 4, src.Rows)
	assert.Equal(t, []string{"worry", "panic", "", "hopeless"}, src.Symptoms)
	assert.Equal(t, []string{"Anxiety", "Anxiety", "Anxiety", "Depression"}, src.Conditions)
	assert.Equal(t, Vocabulary{"hopeless", "panic", "worry"}, BuildVocabulary(src.Symptoms))
}

func TestLoadSource_DefaultNameAndTSV(t *testing.T) {
	src, err := LoadSource(DatasetConfig{Path: filepath.Join("testdata", "bom.tsv")})
	require.NoError(t, err)

	assert.Equal(t, "bom", src.Name)
	assert.Equal(t, []string{"fatigue", "worry"}, src.Symptoms)
	assert.Nil(t, src.Conditions)
	assert.Equal(t, 2, src.Rows)
}

func TestLoadSource_UTF16(t *testing.T) {
	src, err := LoadSource(DatasetConfig{
		Name:            "utf16",
		Path:            filepath.Join("testdata", "utf16.csv"),
		ConditionColumn: "Condition",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"insomnia"}, src.Symptoms)
	assert.Equal(t, []string{"Stress"}, src.Conditions)
}

func TestLoadSource_Errors(t *testing.T) {
	tests := []struct {
		name string
		ds   DatasetConfig
		want error
	}{
		{
			name: "missing file",
			ds: DatasetConfig{Path: filepath.Join("testdata", "absent.csv")},
			want: ErrDatasetNotFound,
		},
		{
			name: "no symptom column",
			ds: DatasetConfig{Path: filepath.Join("testdata", "nosymptom.csv")},
			want: ErrMissingColumn,
		},
		{
			name: "missing condition column",
			ds: DatasetConfig{Path: filepath.Join("testdata", "scores.csv"), ConditionColumn: "Label"},
			want: ErrMissingColumn,
		},
		{
			name: "ragged rows",
			ds: DatasetConfig{Path: filepath.Join("testdata", "ragged.csv")},
			want: ErrMalformedDataset,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSource(tt.ds)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestReadSource(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := ReadSource("empty", strings.NewReader(""), ',', "", "")
		require.ErrorIs(t, err, ErrMalformedDataset)
	})
	t.Run("header only", func(t *testing.T) {
		src, err := ReadSource("h", strings.NewReader("Symptom\n"), ',', "", "")
		require.NoError(t, err)
		assert.Equal(t, 0, src.Rows)
		assert.Empty(t, src.Symptoms)
	})
	t.Run("column by position", func(t *testing.T) {
		src, err := ReadSource("pos", strings.NewReader("a,b\nx,tired\ny,sad\n"), ',', "#2", "")
		require.NoError(t, err)
		assert.Equal(t, []string{"tired", "sad"}, src.Symptoms)
	})
	t.Run("position out of range", func(t *testing.T) {
		_, err := ReadSource("pos", strings.NewReader("a,b\nx,y\n"), ',', "#3", "")
		require.ErrorIs(t, err, ErrMissingColumn)
	})
	t.Run("header matched ignoring case and spacing", func(t *testing.T) {
		src, err := ReadSource("h", strings.NewReader("  SYMPTOM ,x\nworry,1\n"), ',', "Symptom", "")
		require.NoError(t, err)
		assert.Equal(t, []string{"worry"}, src.Symptoms)
	})
	t.Run("cells keep their case", func(t *testing.T) {
		src, err := ReadSource("c", strings.NewReader("Symptom\nWorry\nworry\n"), ',', "", "")
		require.NoError(t, err)
		assert.Equal(t, Vocabulary{"Worry", "worry"}, BuildVocabulary(src.Symptoms))
	})
}
