package symptomcheck

import "github.com/m-mizutani/goerr/v2"

// Initialization failures abort construction; no degraded predictor is returned.
var (
	ErrNoSources              = goerr.New("at least one symptom source is required")
	ErrDatasetNotFound        = goerr.New("dataset not found")
	ErrMalformedDataset       = goerr.New("malformed dataset")
	ErrMissingColumn          = goerr.New("expected column is missing")
	ErrClassifierUnavailable  = goerr.New("classifier is unavailable")
	ErrIncompatibleClassifier = goerr.New("classifier is incompatible with the symptom vocabulary")
	ErrInvalidConfig          = goerr.New("invalid configuration")
)

// ErrPrediction wraps a classifier failure at prediction time.
var ErrPrediction = goerr.New("classifier prediction failed")

// Keys for goerr values.
const (
	DatasetKey    = "dataset"
	PathKey       = "path"
	ColumnKey     = "column"
	ClassifierKey = "classifier"
)
