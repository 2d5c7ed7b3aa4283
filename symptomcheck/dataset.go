package symptomcheck

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DatasetConfig names a tabular symptom source.
type DatasetConfig struct {
	Name            string `toml:"name"`
	Path            string `toml:"path"`
	SymptomColumn   string `toml:"symptom_column"`
	ConditionColumn string `toml:"condition_column"`
}

// LoadSource reads the dataset described by ds.
func LoadSource(ds DatasetConfig) (Source, error) {
	name := ds.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(ds.Path), filepath.Ext(ds.Path))
	}
	f, err := os.Open(filepath.Clean(ds.Path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Source{}, goerr.Wrap(ErrDatasetNotFound, "dataset file does not exist",
				goerr.V(DatasetKey, name), goerr.V(PathKey, ds.Path))
		}
		return Source{}, goerr.Wrap(err, "failed to open dataset",
			goerr.V(DatasetKey, name), goerr.V(PathKey, ds.Path))
	}
	defer f.Close()

	comma := ','
	if strings.EqualFold(filepath.Ext(ds.Path), ".tsv") {
		comma = '\t'
	}
	src, err := ReadSource(name, f, comma, ds.SymptomColumn, ds.ConditionColumn)
	if err != nil {
		return Source{}, goerr.Wrap(err, "failed to load dataset", goerr.V(PathKey, ds.Path))
	}
	return src, nil
}

// ReadSource parses delimited data with a header row. An empty symptomColumn
// selects DefaultSymptomColumn; an empty conditionColumn skips conditions.
func ReadSource(name string, r io.Reader, comma rune, symptomColumn, conditionColumn string) (Source, error) {
	if symptomColumn == "" {
		symptomColumn = DefaultSymptomColumn
	}
	// UTF-8 without a BOM passes through unchanged; a UTF-16 BOM switches decoding.
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	reader := csv.NewReader(decoded)
	reader.Comma = comma
	rows, err := reader.ReadAll()
	if err != nil {
		return Source{}, goerr.Wrap(ErrMalformedDataset, "failed to parse rows",
			goerr.V(DatasetKey, name), goerr.V("cause", err.Error()))
	}
	if len(rows) == 0 {
		return Source{}, goerr.Wrap(ErrMalformedDataset, "dataset has no header row",
			goerr.V(DatasetKey, name))
	}
	header := rows[0]
	symptomIdx, err := findColumn(header, symptomColumn)
	if err != nil {
		return Source{}, goerr.Wrap(err, "symptom column unavailable", goerr.V(DatasetKey, name))
	}
	conditionIdx := -1
	if strings.TrimSpace(conditionColumn) != "" {
		if conditionIdx, err = findColumn(header, conditionColumn); err != nil {
			return Source{}, goerr.Wrap(err, "condition column unavailable", goerr.V(DatasetKey, name))
		}
	}

	data := rows[1:]
	src := Source{
		Name:     name,
		Symptoms: make([]string, 0, len(data)),
		Rows:     len(data),
	}
	if conditionIdx >= 0 {
		src.Conditions = make([]string, 0, len(data))
	}
	for _, row := range data {
		src.Symptoms = append(src.Symptoms, row[symptomIdx])
		if conditionIdx >= 0 {
			src.Conditions = append(src.Conditions, row[conditionIdx])
		}
	}
	return src, nil
}
