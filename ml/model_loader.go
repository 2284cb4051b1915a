package ml

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadModel reads the artifact at path and returns a ready classifier.
func LoadModel(path string) (Classifier, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	var a artifact
	if err := json.Unmarshal(payload, &a); err != nil {
		return nil, fmt.Errorf("decode model artifact %s: %w", path, err)
	}
	if a.Features != 0 && a.Features != FeatureCount {
		return nil, fmt.Errorf("%w: artifact expects %d features", ErrFeatureCount, a.Features)
	}

	switch a.ModelType {
	case decisionTreeType:
		model, err := NewDecisionTree(a.Nodes)
		if err != nil {
			return nil, fmt.Errorf("load model artifact %s: %w", path, err)
		}
		return model, nil
	default:
		return nil, fmt.Errorf("unsupported model type %q", a.ModelType)
	}
}
