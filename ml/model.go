package ml

import "errors"

// FeatureCount is the number of measurements a single sample carries.
const FeatureCount = 4

var (
	ErrFeatureCount = errors.New("unexpected feature count")
	ErrEmptyModel   = errors.New("model has no nodes")
	ErrInvalidTree  = errors.New("invalid tree state")
)

// Classifier predicts one label per sample. Implementations must be safe for
// concurrent use and must not mutate themselves during Predict.
type Classifier interface {
	Predict(samples [][]float64) ([]int, error)
}
