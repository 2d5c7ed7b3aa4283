package symptomcheck

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
)

// Predictor maps free-text symptom descriptions to a condition and advice.
// All state is fixed at construction, so a Predictor may be shared by
// concurrent callers.
type Predictor struct {
	sources    []Source
	vocab      Vocabulary
	lowered    []string
	classifier Classifier
	advice     AdviceTable
	logger     *slog.Logger
}

// Option customizes a Predictor.
type Option func(*Predictor)

// WithLogger sets the logger. The default discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Predictor) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithAdvice replaces the advice table.
func WithAdvice(table AdviceTable) Option {
	return func(p *Predictor) {
		p.advice = table
	}
}

// New builds the vocabulary from sources and binds clf to it.
func New(sources []Source, clf Classifier, opts ...Option) (*Predictor, error) {
	if len(sources) == 0 {
		return nil, goerr.Wrap(ErrNoSources, "cannot build a vocabulary")
	}
	if clf == nil {
		return nil, goerr.Wrap(ErrClassifierUnavailable, "no classifier supplied")
	}
	p := &Predictor{
		sources:    cloneSources(sources),
		classifier: clf,
		advice:     DefaultAdviceTable(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}

	collections := make([][]string, len(p.sources))
	for i, src := range p.sources {
		collections[i] = src.Symptoms
	}
	p.vocab = BuildVocabulary(collections...)
	p.lowered = lowerAll(p.vocab)

	if binder, ok := clf.(VocabularyBinder); ok {
		if err := binder.Bind(p.vocab); err != nil {
			return nil, goerr.Wrap(err, "classifier rejected vocabulary", goerr.V("vocabulary", len(p.vocab)))
		}
	}

	p.logger.Info("symptom vocabulary built",
		slog.Int("sources", len(p.sources)),
		slog.Int("symptoms", len(p.vocab)),
		slog.Int("advice_entries", p.advice.Len()),
	)
	return p, nil
}

// Vocabulary returns a copy of the symptom vocabulary.
func (p *Predictor) Vocabulary() Vocabulary {
	return append(Vocabulary(nil), p.vocab...)
}

// Encode returns the feature vector for text.
func (p *Predictor) Encode(text string) FeatureVector {
	return encodeLowered(NormalizeQuery(text), p.lowered)
}

// Predict classifies a single free-text description. A query matching no known
// symptom yields the no-symptoms sentinel without consulting the classifier.
func (p *Predictor) Predict(text string) (Prediction, error) {
	vec := p.Encode(text)
	matched := vec.Count()
	if matched == 0 {
		p.logger.Debug("no symptoms matched", slog.Int("total", len(p.vocab)))
		return Prediction{
			Query:       text,
			Condition:   NoSymptomsCondition,
			Explanation: NoSymptomsExplanation,
			Advice:      "",
			Total:       len(p.vocab),
		}, nil
	}

	condition, err := p.classifier.Predict(vec)
	if err != nil {
		return Prediction{}, goerr.Wrap(ErrPrediction, "classifier returned an error",
			goerr.V("matched", matched), goerr.V("cause", err.Error()))
	}

	p.logger.Debug("prediction",
		slog.String("condition", condition),
		slog.Int("matched", matched),
		slog.Int("total", len(p.vocab)),
	)
	return Prediction{
		Query:       text,
		Condition:   condition,
		Explanation: explain(matched, len(p.vocab)),
		Advice:      p.advice.Lookup(condition),
		Matched:     matched,
		Total:       len(p.vocab),
		Found:       true,
	}, nil
}

func explain(matched, total int) string {
	return fmt.Sprintf("Prediction based on symptoms matching %d of %d known symptoms", matched, total)
}

// Insights reports the vocabulary size, distinct symptoms per source,
// reporting conditions and the total row count.
func (p *Predictor) Insights() Insights {
	out := Insights{
		UniqueSymptoms: len(p.vocab),
		Sources:        make([]SourceSymptoms, 0, len(p.sources)),
	}
	var conditions []string
	for _, src := range p.sources {
		out.Sources = append(out.Sources, SourceSymptoms{
			Name:     src.Name,
			Symptoms: uniqueInOrder(src.Symptoms),
		})
		conditions = append(conditions, src.Conditions...)
		out.TotalRows += src.Rows
	}
	out.Conditions = uniqueInOrder(conditions)
	return out
}

// Close releases classifier resources when the classifier holds any.
func (p *Predictor) Close() error {
	if closer, ok := p.classifier.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func cloneSources(in []Source) []Source {
	out := make([]Source, len(in))
	for i, src := range in {
		out[i] = Source{
			Name:       src.Name,
			Symptoms:   append([]string(nil), src.Symptoms...),
			Conditions: append([]string(nil), src.Conditions...),
			Rows:       src.Rows,
		}
	}
	return out
}
