package app

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yashubustudio/symptomcheck/internal/logging"
	"yashubustudio/symptomcheck/symptomcheck"
)

func newTestUI(t *testing.T) *uiState {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	logs := newLogPane()
	logger, err := logging.New(logs, "debug", false)
	require.NoError(t, err)

	sources := []symptomcheck.Source{
		{Name: "survey", Symptoms: []string{"worry", "fatigue"}, Rows: 2},
		{Name: "scores", Symptoms: []string{"hopeless"}, Conditions: []string{"Depression"}, Rows: 1},
	}
	clf := symptomcheck.ClassifierFunc(func(features symptomcheck.FeatureVector) (string, error) {
		// vocabulary order: fatigue, hopeless, worry
		if features[1] == 1 {
			return "Depression", nil
		}
		return "Anxiety", nil
	})
	p, err := symptomcheck.New(sources, clf, symptomcheck.WithLogger(logger))
	require.NoError(t, err)
	return buildUI(a, p, logs)
}

func TestBuildUI(t *testing.T) {
	u := newTestUI(t)

	assert.Equal(t, "SymptomCheck", u.w.Title())
	assert.Contains(t, u.insights.Text, "Unique symptoms: 3")
	assert.Contains(t, u.insights.Text, "survey: worry, fatigue")
	assert.Contains(t, u.logs.Text(), "symptom vocabulary built")
}

func TestPredictButton(t *testing.T) {
	u := newTestUI(t)

	u.input.SetText("feeling hopeless")
	test.Tap(u.predictBtn)

	assert.Equal(t, "Depression", u.condition.Text)
	assert.Equal(t, "Prediction based on symptoms matching 1 of 3 known symptoms", u.explanation.Text)
	assert.Equal(t, "Consider professional counseling and journaling.", u.advice.Text)
	require.Len(t, u.rows, 1)
}

func TestPredictButton_MultipleLines(t *testing.T) {
	u := newTestUI(t)

	u.input.SetText("worry and fatigue\n\nnothing to report\n")
	test.Tap(u.predictBtn)

	require.Len(t, u.rows, 2)
	assert.Equal(t, "Anxiety", u.rows[0].Condition)
	assert.Equal(t, 2, u.rows[0].Matched)
	assert.Equal(t, "No symptoms found", u.condition.Text)
	assert.Equal(t, "Please describe symptoms more clearly", u.explanation.Text)
	assert.Equal(t, "", u.advice.Text)
	assert.Equal(t, "Predicted 2 description(s)", u.status.Text)
}

func TestPredictButton_EmptyInput(t *testing.T) {
	u := newTestUI(t)

	test.Tap(u.predictBtn)
	assert.Equal(t, "No symptoms found", u.condition.Text)
	require.Len(t, u.rows, 1)
}

func TestClearButton(t *testing.T) {
	u := newTestUI(t)

	u.input.SetText("worry")
	test.Tap(u.predictBtn)
	test.Tap(u.clearBtn)

	assert.Empty(t, u.rows)
	assert.Equal(t, "", u.input.Text)
	assert.Equal(t, "", u.condition.Text)
	assert.Equal(t, "Ready", u.status.Text)
}

func TestLoadQueries(t *testing.T) {
	lines, err := loadQueries("q.txt", []byte("worry\r\n\n fatigue \n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"worry", "fatigue"}, lines)

	lines, err = loadQueries("q.csv", []byte("Id,Symptom\n1,lack of sleep\n2,\n3,worry\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"lack of sleep", "worry"}, lines)

	_, err = loadQueries("q.tsv", []byte("Id\tNote\n1\tx\n"))
	require.ErrorIs(t, err, symptomcheck.ErrMissingColumn)
}

func TestLogPane(t *testing.T) {
	logs := newLogPane()
	for i := 0; i < maxLogLines+10; i++ {
		_, err := logs.Write([]byte("line\n"))
		require.NoError(t, err)
	}
	_, err := logs.Write([]byte("first\nsecond\n"))
	require.NoError(t, err)

	text := logs.Text()
	assert.Contains(t, text, "first\nsecond")
	bound, err := logs.bind.Get()
	require.NoError(t, err)
	assert.Equal(t, text, bound)
}
