package symptomcheck

import (
	"context"
	"io"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
)

// OpenClassifier constructs the classifier named by cfg.
func OpenClassifier(cfg ClassifierConfig) (Classifier, error) {
	switch cfg.Kind {
	case KindLinear, "":
		return LoadLinearModel(cfg.Path)
	case KindONNX:
		return NewONNXClassifier(ONNXConfig{
			ModelPath:  cfg.Path,
			OrtLibrary: cfg.OrtLibrary,
			InputName:  cfg.InputName,
			OutputName: cfg.OutputName,
			Labels:     cfg.Labels,
		})
	default:
		return nil, goerr.Wrap(ErrInvalidConfig, "unknown classifier kind", goerr.V(ClassifierKey, cfg.Kind))
	}
}

// LoadSources reads every dataset in order.
func LoadSources(datasets []DatasetConfig) ([]Source, error) {
	sources := make([]Source, 0, len(datasets))
	for _, ds := range datasets {
		src, err := LoadSource(ds)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, nil
}

// Open loads the datasets and classifier named by cfg and returns a ready
// Predictor. Any failure is fatal and releases what was already opened.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*Predictor, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sources, err := LoadSources(cfg.Datasets)
	if err != nil {
		return nil, err
	}
	for _, src := range sources {
		logger.InfoContext(ctx, "dataset loaded",
			slog.String("dataset", src.Name),
			slog.Int("rows", src.Rows),
		)
	}

	clf, err := OpenClassifier(cfg.Classifier)
	if err != nil {
		return nil, err
	}
	p, err := New(sources, clf, WithLogger(logger), WithAdvice(NewAdviceTable(cfg.Advice)))
	if err != nil {
		if closer, ok := clf.(io.Closer); ok {
			if cerr := closer.Close(); cerr != nil {
				logger.WarnContext(ctx, "failed to release classifier", slog.Any("error", cerr))
			}
		}
		return nil, err
	}
	logger.InfoContext(ctx, "predictor ready",
		slog.String("classifier", cfg.Classifier.Kind),
		slog.String("model", cfg.Classifier.Path),
	)
	return p, nil
}
