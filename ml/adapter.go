package ml

import (
	"errors"
	"fmt"
)

// Adapter turns a single measurement vector into a label.
type Adapter struct {
	model Classifier
}

func NewAdapter(model Classifier) *Adapter {
	return &Adapter{model: model}
}

// Classify reshapes vec into a one-sample batch and returns its label.
// Errors from the model are returned as-is, never mapped to a label.
func (a *Adapter) Classify(vec []float64) (int, error) {
	if len(vec) != FeatureCount {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrFeatureCount, len(vec), FeatureCount)
	}
	sample := append([]float64(nil), vec...)
	labels, err := a.model.Predict([][]float64{sample})
	if err != nil {
		return 0, fmt.Errorf("predict: %w", err)
	}
	if len(labels) != 1 {
		return 0, errors.New("predict: model returned no label for the sample")
	}
	return labels[0], nil
}
