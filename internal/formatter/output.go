// Package formatter renders predictions and dataset insights for the terminal.
package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"

	"yashubustudio/symptomcheck/symptomcheck"
)

// Format selects an output encoding.
type Format string

const (
	FormatHuman Format = "human"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = goerr.New("unknown output format")

// ParseFormat accepts human, json or yaml. Empty means human.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return FormatHuman, nil
	case FormatHuman, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", goerr.Wrap(ErrUnknownFormat, "cannot parse output format", goerr.V("format", name))
	}
}

// Report is what a command prints. Either part may be empty.
type Report struct {
	Insights    *symptomcheck.Insights    `json:"insights,omitempty" yaml:"insights,omitempty"`
	Predictions []symptomcheck.Prediction `json:"predictions,omitempty" yaml:"predictions,omitempty"`
}

// Write renders report to w.
func Write(w io.Writer, format Format, report Report) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, report)
	case FormatYAML:
		return writeYAML(w, report)
	case FormatHuman, "":
		writeHuman(w, report)
		return nil
	default:
		return goerr.Wrap(ErrUnknownFormat, "cannot render report", goerr.V("format", string(format)))
	}
}

func writeJSON(w io.Writer, report Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return goerr.Wrap(err, "failed to encode json report")
	}
	return nil
}

func writeYAML(w io.Writer, report Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return goerr.Wrap(err, "failed to encode yaml report")
	}
	return enc.Close()
}

func writeHuman(w io.Writer, report Report) {
	if report.Insights != nil {
		writeInsights(w, *report.Insights)
	}
	for _, p := range report.Predictions {
		writePrediction(w, p)
	}
}

func writeInsights(w io.Writer, in symptomcheck.Insights) {
	heading := color.New(color.FgCyan, color.Bold)

	heading.Fprintln(w, "Dataset Insights:")
	fmt.Fprintf(w, "   Unique symptoms:   %d\n", in.UniqueSymptoms)
	fmt.Fprintf(w, "   Total data points: %d\n", in.TotalRows)
	for _, src := range in.Sources {
		fmt.Fprintf(w, "   Symptoms in %s: %s\n", src.Name, strings.Join(src.Symptoms, ", "))
	}
	if len(in.Conditions) > 0 {
		fmt.Fprintf(w, "   Conditions: %s\n", strings.Join(in.Conditions, ", "))
	}
}

func writePrediction(w io.Writer, p symptomcheck.Prediction) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Input: %s\n", p.Query)
	conditionColor(p).Fprintf(w, "Predicted Condition: %s\n", p.Condition)
	fmt.Fprintf(w, "Explanation: %s\n", p.Explanation)
	if p.Advice != "" {
		fmt.Fprintf(w, "Suggestion: %s\n", color.GreenString(p.Advice))
	} else {
		fmt.Fprintln(w, "Suggestion:")
	}
}

func conditionColor(p symptomcheck.Prediction) *color.Color {
	if !p.Found {
		return color.New(color.FgYellow)
	}
	return color.New(color.FgRed, color.Bold)
}
