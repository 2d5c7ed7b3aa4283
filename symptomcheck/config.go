package symptomcheck

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

const defaultConfigFile = "symptomcheck.toml"

// LogConfig controls logger construction.
type LogConfig struct {
	Level string `toml:"level"`
	Color bool   `toml:"color"`
}

// ClassifierConfig selects and locates the classifier artifact.
type ClassifierConfig struct {
	Kind       string   `toml:"kind"`
	Path       string   `toml:"path"`
	OrtLibrary string   `toml:"ort_library"`
	InputName  string   `toml:"input_name"`
	OutputName string   `toml:"output_name"`
	Labels     []string `toml:"labels"`
}

// Config aggregates runtime settings read from symptomcheck.toml.
type Config struct {
	Log        LogConfig         `toml:"log"`
	Datasets   []DatasetConfig     `toml:"dataset"`
	Classifier ClassifierConfig  `toml:"classifier"`
	Advice     map[string]string `toml:"advice"`
}

// DefaultConfig mirrors the bundled data directory.
func DefaultConfig() Config {
	cfg := Config{Log: LogConfig{Color: true}}
	cfg.ApplyDefaults()
	return cfg
}

func defaultDatasets() []DatasetConfig {
	return []DatasetConfig{
		{Name: "tech_survey", Path: "data/survey.csv", SymptomColumn: DefaultSymptomColumn},
		{Name: "depression_anxiety", Path: "data/scores.csv", SymptomColumn: DefaultSymptomColumn, ConditionColumn: DefaultConditionColumn},
		{Name: "who", Path: "data/mental.csv", SymptomColumn: DefaultSymptomColumn},
	}
}

// LoadConfig loads configuration from path or the default symptomcheck.toml.
// A missing file yields the defaults; relative paths inside the file resolve
// against its directory.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		path = defaultConfigFile
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, goerr.Wrap(err, "failed to read config", goerr.V(PathKey, path))
	}
	cfg := Config{Log: LogConfig{Color: true}}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, goerr.Wrap(ErrInvalidConfig, "failed to decode config",
			goerr.V(PathKey, path), goerr.V("cause", err.Error()))
	}
	cfg.ApplyDefaults()
	cfg.resolvePaths(filepath.Dir(path))
	if err := cfg.Validate(); err != nil {
		return Config{}, goerr.Wrap(err, "config validation failed", goerr.V(PathKey, path))
	}
	return cfg, nil
}

// ApplyDefaults populates zero values.
func (c *Config) ApplyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if len(c.Datasets) == 0 {
		c.Datasets = defaultDatasets()
	}
	for i := range c.Datasets {
		if c.Datasets[i].SymptomColumn == "" {
			c.Datasets[i].SymptomColumn = DefaultSymptomColumn
		}
	}
	if c.Classifier.Kind == "" {
		c.Classifier.Kind = KindLinear
	}
	if c.Classifier.Path == "" && c.Classifier.Kind == KindLinear {
		c.Classifier.Path = "data/model.json"
	}
	if c.Classifier.Kind == KindONNX {
		if c.Classifier.InputName == "" {
			c.Classifier.InputName = "float_input"
		}
		if c.Classifier.OutputName == "" {
			c.Classifier.OutputName = "label"
		}
	}
}

// Validate rejects configurations that cannot produce a predictor.
func (c Config) Validate() error {
	switch c.Classifier.Kind {
	case KindLinear, KindONNX:
	default:
		return goerr.Wrap(ErrInvalidConfig, "unknown classifier kind", goerr.V(ClassifierKey, c.Classifier.Kind))
	}
	if c.Classifier.Path == "" {
		return goerr.Wrap(ErrInvalidConfig, "classifier path is required", goerr.V(ClassifierKey, c.Classifier.Kind))
	}
	if c.Classifier.Kind == KindONNX && len(c.Classifier.Labels) == 0 {
		return goerr.Wrap(ErrInvalidConfig, "onnx classifier requires labels")
	}
	seen := make(map[string]struct{}, len(c.Datasets))
	for i, ds := range c.Datasets {
		if strings.TrimSpace(ds.Name) == "" {
			return goerr.Wrap(ErrInvalidConfig, "dataset name is required", goerr.V("index", i))
		}
		if strings.TrimSpace(ds.Path) == "" {
			return goerr.Wrap(ErrInvalidConfig, "dataset path is required", goerr.V(DatasetKey, ds.Name))
		}
		if _, ok := seen[ds.Name]; ok {
			return goerr.Wrap(ErrInvalidConfig, "duplicate dataset name", goerr.V(DatasetKey, ds.Name))
		}
		seen[ds.Name] = struct{}{}
	}
	return nil
}

func (c *Config) resolvePaths(base string) {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}
	for i := range c.Datasets {
		c.Datasets[i].Path = resolve(c.Datasets[i].Path)
	}
	c.Classifier.Path = resolve(c.Classifier.Path)
	c.Classifier.OrtLibrary = resolve(c.Classifier.OrtLibrary)
}
