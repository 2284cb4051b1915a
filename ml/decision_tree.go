package ml

import (
	"encoding/json"
	"fmt"
	"os"
)

const decisionTreeType = "decision_tree"

type DecisionTree struct {
	nodes []TreeNode
}

type TreeNode struct {
	FeatureIdx int     `json:"feature_idx"`
	Threshold  float64 `json:"threshold"`
	LeftChild  int     `json:"left_child"`
	RightChild int     `json:"right_child"`
	ClassLabel int     `json:"class_label"`
	IsLeaf     bool    `json:"is_leaf"`
}

// artifact is the on-disk layout of a serialized model.
type artifact struct {
	ModelType string     `json:"model_type"`
	Features  int        `json:"n_features"`
	Nodes     []TreeNode `json:"nodes"`
}

func NewDecisionTree(nodes []TreeNode) (*DecisionTree, error) {
	if err := validateNodes(nodes); err != nil {
		return nil, err
	}
	return &DecisionTree{nodes: append([]TreeNode(nil), nodes...)}, nil
}

func (dt *DecisionTree) Predict(samples [][]float64) ([]int, error) {
	if len(dt.nodes) == 0 {
		return nil, ErrEmptyModel
	}
	labels := make([]int, len(samples))
	for i, features := range samples {
		label, err := dt.predictOne(features)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		labels[i] = label
	}
	return labels, nil
}

func (dt *DecisionTree) predictOne(features []float64) (int, error) {
	if len(features) != FeatureCount {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrFeatureCount, len(features), FeatureCount)
	}
	idx := 0
	for {
		node := dt.nodes[idx]
		if node.IsLeaf {
			return node.ClassLabel, nil
		}
		if features[node.FeatureIdx] <= node.Threshold {
			idx = node.LeftChild
		} else {
			idx = node.RightChild
		}
	}
}

func (dt *DecisionTree) Save(path string) error {
	if len(dt.nodes) == 0 {
		return ErrEmptyModel
	}
	payload, err := json.MarshalIndent(artifact{
		ModelType: decisionTreeType,
		Features:  FeatureCount,
		Nodes:     dt.nodes,
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

// validateNodes checks the flat node list once at load time so that Predict
// can walk it without bounds checks. Children must come after their parent,
// which also rules out cycles.
func validateNodes(nodes []TreeNode) error {
	if len(nodes) == 0 {
		return ErrEmptyModel
	}
	for i, node := range nodes {
		if node.IsLeaf {
			continue
		}
		if node.FeatureIdx < 0 || node.FeatureIdx >= FeatureCount {
			return fmt.Errorf("%w: node %d uses feature %d", ErrInvalidTree, i, node.FeatureIdx)
		}
		for _, child := range []int{node.LeftChild, node.RightChild} {
			if child <= i || child >= len(nodes) {
				return fmt.Errorf("%w: node %d points to child %d", ErrInvalidTree, i, child)
			}
		}
	}
	return nil
}
