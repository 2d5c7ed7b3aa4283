package symptomcheck

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	ort "github.com/yalue/onnxruntime_go"
)

// ONNXConfig describes an ONNX classifier whose single input is a [1, N]
// float32 tensor and whose output is a [1] int64 class index.
type ONNXConfig struct {
	ModelPath  string
	OrtLibrary string
	InputName  string
	OutputName string
	// Labels maps the output class index to a condition label.
	Labels []string
}

// ONNXClassifier runs a model through onnxruntime. The session and its tensors
// are shared, so calls are serialized.
type ONNXClassifier struct {
	cfg ONNXConfig

	mu      sync.Mutex
	session *ort.AdvancedSession
	input   *ort.Tensor[float32]
	output  *ort.Tensor[int64]
	ownsEnv bool
}

var ortEnvMu sync.Mutex

// NewONNXClassifier checks the configuration and model files. The session is
// created by Bind once the vocabulary size is known.
func NewONNXClassifier(cfg ONNXConfig) (*ONNXClassifier, error) {
	if cfg.InputName == "" {
		cfg.InputName = "float_input"
	}
	if cfg.OutputName == "" {
		cfg.OutputName = "label"
	}
	if len(cfg.Labels) == 0 {
		return nil, goerr.Wrap(ErrInvalidConfig, "onnx classifier requires labels",
			goerr.V(ClassifierKey, KindONNX))
	}
	for _, p := range []string{cfg.ModelPath, cfg.OrtLibrary} {
		if p == "" {
			return nil, goerr.Wrap(ErrClassifierUnavailable, "onnx model and runtime library paths are required",
				goerr.V(ClassifierKey, KindONNX))
		}
		if _, err := os.Stat(filepath.Clean(p)); err != nil {
			return nil, goerr.Wrap(ErrClassifierUnavailable, "onnx artifact not accessible",
				goerr.V(PathKey, p), goerr.V(ClassifierKey, KindONNX), goerr.V("cause", err.Error()))
		}
	}
	return &ONNXClassifier{cfg: cfg}, nil
}

// Bind initializes the runtime and allocates a session for len(vocab) features.
func (c *ONNXClassifier) Bind(vocab Vocabulary) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != nil {
		if got := len(c.input.GetData()); got != len(vocab) {
			return goerr.Wrap(ErrIncompatibleClassifier, "classifier already bound to a different vocabulary",
				goerr.V("bound", got), goerr.V("vocabulary", len(vocab)))
		}
		return nil
	}
	if len(vocab) == 0 {
		return goerr.Wrap(ErrIncompatibleClassifier, "onnx classifier needs a non-empty vocabulary")
	}

	ortEnvMu.Lock()
	if !ort.IsInitialized() {
		ort.SetSharedLibraryPath(c.cfg.OrtLibrary)
		if err := ort.InitializeEnvironment(); err != nil {
			ortEnvMu.Unlock()
			return goerr.Wrap(ErrClassifierUnavailable, "failed to initialize onnxruntime",
				goerr.V(PathKey, c.cfg.OrtLibrary), goerr.V("cause", err.Error()))
		}
		c.ownsEnv = true
	}
	ortEnvMu.Unlock()

	input, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(len(vocab))))
	if err != nil {
		c.releaseLocked()
		return goerr.Wrap(err, "failed to allocate input tensor")
	}
	c.input = input
	output, err := ort.NewEmptyTensor[int64](ort.NewShape(1))
	if err != nil {
		c.releaseLocked()
		return goerr.Wrap(err, "failed to allocate output tensor")
	}
	c.output = output

	session, err := ort.NewAdvancedSession(c.cfg.ModelPath,
		[]string{c.cfg.InputName}, []string{c.cfg.OutputName},
		[]ort.Value{input}, []ort.Value{output}, nil)
	if err != nil {
		c.releaseLocked()
		return goerr.Wrap(ErrIncompatibleClassifier, "failed to create onnx session",
			goerr.V(PathKey, c.cfg.ModelPath), goerr.V("cause", err.Error()))
	}
	c.session = session
	return nil
}

// Predict runs the model on a single feature vector.
func (c *ONNXClassifier) Predict(features FeatureVector) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return "", goerr.Wrap(ErrClassifierUnavailable, "onnx classifier is not bound")
	}
	buf := c.input.GetData()
	if len(features) != len(buf) {
		return "", goerr.New("feature vector width mismatch",
			goerr.V("got", len(features)), goerr.V("expected", len(buf)))
	}
	copy(buf, features)
	if err := c.session.Run(); err != nil {
		return "", goerr.Wrap(err, "onnx session run failed")
	}
	idx := c.output.GetData()[0]
	if idx < 0 || int(idx) >= len(c.cfg.Labels) {
		return "", goerr.New("onnx model returned an unknown class index",
			goerr.V("index", idx), goerr.V("labels", len(c.cfg.Labels)))
	}
	return c.cfg.Labels[idx], nil
}

// Close releases the session, tensors and, if this classifier created it, the
// runtime environment.
func (c *ONNXClassifier) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.releaseLocked()
}

func (c *ONNXClassifier) releaseLocked() error {
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if c.session != nil {
		keep(c.session.Destroy())
		c.session = nil
	}
	if c.input != nil {
		keep(c.input.Destroy())
		c.input = nil
	}
	if c.output != nil {
		keep(c.output.Destroy())
		c.output = nil
	}
	if c.ownsEnv {
		ortEnvMu.Lock()
		keep(ort.DestroyEnvironment())
		ortEnvMu.Unlock()
		c.ownsEnv = false
	}
	return firstErr
}
