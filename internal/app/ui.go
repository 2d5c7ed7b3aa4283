package app

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"yashubustudio/symptomcheck/symptomcheck"
)

type tableColumn struct {
	Title  string
	Width  float32
	Render func(symptomcheck.Prediction) string
}

type uiState struct {
	predictor *symptomcheck.Predictor
	logs      *logPane

	w           fyne.Window
	input       *widget.Entry
	log         *widget.Entry
	status      *widget.Label
	condition   *widget.Label
	explanation *widget.Label
	advice      *widget.Label
	insights    *widget.Label
	resTbl      *widget.Table
	columns     []tableColumn
	rows        []symptomcheck.Prediction

	predictBtn *widget.Button
	loadBtn    *widget.Button
	clearBtn   *widget.Button
}

func buildUI(a fyne.App, p *symptomcheck.Predictor, logs *logPane) *uiState {
	u := &uiState{predictor: p, logs: logs}
	u.w = a.NewWindow("SymptomCheck")

	u.input = widget.NewMultiLineEntry()
	u.input.SetPlaceHolder("Describe how you feel (one description per line)")

	u.log = widget.NewEntryWithData(logs.bind)
	u.log.MultiLine = true
	u.log.Wrapping = fyne.TextWrapWord
	u.log.SetPlaceHolder("Log")
	u.log.Disable()

	u.status = widget.NewLabel("Ready")
	u.condition = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	u.explanation = widget.NewLabel("")
	u.explanation.Wrapping = fyne.TextWrapWord
	u.advice = widget.NewLabel("")
	u.advice.Wrapping = fyne.TextWrapWord
	u.insights = widget.NewLabel(insightsSummary(p.Insights()))
	u.insights.Wrapping = fyne.TextWrapWord

	u.predictBtn = widget.NewButtonWithIcon("Predict", theme.ConfirmIcon(), func() { u.onPredict() })
	u.loadBtn = widget.NewButtonWithIcon("Load file", theme.FolderOpenIcon(), func() { u.onLoadFile() })
	u.clearBtn = widget.NewButtonWithIcon("Clear", theme.ContentClearIcon(), func() { u.onClear() })

	u.columns = makeColumns()
	u.resTbl = widget.NewTable(
		func() (int, int) {
			return len(u.rows) + 1, len(u.columns)
		},
		func() fyne.CanvasObject {
			lbl := widget.NewLabel("")
			lbl.Wrapping = fyne.TextWrapWord
			return lbl
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			lbl := obj.(*widget.Label)
			if id.Row == 0 {
				lbl.TextStyle = fyne.TextStyle{Bold: true}
				lbl.SetText(u.columns[id.Col].Title)
				return
			}
			lbl.TextStyle = fyne.TextStyle{}
			rowIdx := id.Row - 1
			if rowIdx >= len(u.rows) {
				lbl.SetText("")
				return
			}
			lbl.SetText(u.columns[id.Col].Render(u.rows[rowIdx]))
		},
	)
	for i, col := range u.columns {
		u.resTbl.SetColumnWidth(i, col.Width)
	}

	result := widget.NewForm(
		widget.NewFormItem("Condition", u.condition),
		widget.NewFormItem("Explanation", u.explanation),
		widget.NewFormItem("Suggestion", u.advice),
	)
	left := container.NewVBox(
		widget.NewLabelWithStyle("Symptoms", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		u.input,
		container.NewGridWithColumns(3, u.predictBtn, u.loadBtn, u.clearBtn),
		u.status,
		widget.NewSeparator(),
		result,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Dataset insights", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		u.insights,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Log", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		u.log,
	)

	split := container.NewHSplit(container.NewVScroll(left), u.resTbl)
	split.Offset = 0.4

	u.w.SetContent(split)
	u.w.Resize(fyne.NewSize(1100, 720))
	return u
}

func makeColumns() []tableColumn {
	return []tableColumn{
		{Title: "Input", Width: 280, Render: func(p symptomcheck.Prediction) string { return p.Query }},
		{Title: "Condition", Width: 150, Render: func(p symptomcheck.Prediction) string { return p.Condition }},
		{Title: "Matched", Width: 90, Render: func(p symptomcheck.Prediction) string {
			return strconv.Itoa(p.Matched) + "/" + strconv.Itoa(p.Total)
		}},
		{Title: "Suggestion", Width: 360, Render: func(p symptomcheck.Prediction) string { return p.Advice }},
	}
}

// onPredict treats each non-empty line as one description. The result panel
// shows the last prediction; the table keeps every row.
func (u *uiState) onPredict() {
	lines := splitNonEmptyLines(u.input.Text)
	if len(lines) == 0 {
		lines = []string{u.input.Text}
	}

	rows := make([]symptomcheck.Prediction, 0, len(lines))
	for _, line := range lines {
		pred, err := u.predictor.Predict(line)
		if err != nil {
			u.status.SetText("Error")
			dialog.ShowError(err, u.w)
			return
		}
		rows = append(rows, pred)
	}

	u.rows = rows
	u.resTbl.Refresh()
	u.showPrediction(rows[len(rows)-1])
	u.status.SetText(fmt.Sprintf("Predicted %d description(s)", len(rows)))
}

func (u *uiState) showPrediction(p symptomcheck.Prediction) {
	u.condition.SetText(p.Condition)
	u.explanation.SetText(p.Explanation)
	u.advice.SetText(p.Advice)
}

func (u *uiState) onClear() {
	u.input.SetText("")
	u.rows = nil
	u.resTbl.Refresh()
	u.showPrediction(symptomcheck.Prediction{})
	u.status.SetText("Ready")
}

func (u *uiState) onLoadFile() {
	fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			dialog.ShowError(err, u.w)
			return
		}
		lines, err := loadQueries(rc.URI().Path(), data)
		if err != nil {
			dialog.ShowError(err, u.w)
			return
		}
		u.input.SetText(strings.Join(lines, "\n"))
		u.status.SetText(fmt.Sprintf("Loaded %s (%d lines)", filepath.Base(rc.URI().Path()), len(lines)))
	}, u.w)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".txt", ".csv", ".tsv"}))
	fd.Show()
}

// loadQueries returns descriptions from a text file, or from the Symptom
// column of a CSV/TSV file.
func loadQueries(path string, data []byte) ([]string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".csv" && ext != ".tsv" {
		return splitNonEmptyLines(string(data)), nil
	}
	delim := ','
	if ext == ".tsv" {
		delim = '\t'
	}
	src, err := symptomcheck.ReadSource(filepath.Base(path), bytes.NewReader(data), delim, "", "")
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, s := range src.Symptoms {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines, nil
}
