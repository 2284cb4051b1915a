package ml

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func constantTree(t *testing.T, label int) *DecisionTree {
	t.Helper()
	tree, err := NewDecisionTree([]TreeNode{
		{FeatureIdx: -1, LeftChild: -1, RightChild: -1, ClassLabel: label, IsLeaf: true},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tree
}

func predictOne(t *testing.T, h *Handle) int {
	t.Helper()
	labels, err := h.Predict([][]float64{{1, 1, 1, 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return labels[0]
}

func TestOpenHandleMissingArtifact(t *testing.T) {
	if _, err := OpenHandle(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing artifact")
	}
}

func TestHandleReloadKeepsPreviousOnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	if err := constantTree(t, 0).Save(path); err != nil {
		t.Fatal(err)
	}
	h, err := OpenHandle(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := constantTree(t, 2).Save(path); err != nil {
		t.Fatal(err)
	}
	if err := h.Reload(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := predictOne(t, h); got != 2 {
		t.Fatalf("expected label 2 after reload, got %d", got)
	}

	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := h.Reload(); err == nil {
		t.Fatal("expected reload error for corrupt artifact")
	}
	if got := predictOne(t, h); got != 2 {
		t.Fatalf("expected previous model to stay active, got label %d", got)
	}
}

func TestHandleWatchPicksUpRewrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	if err := constantTree(t, 0).Save(path); err != nil {
		t.Fatal(err)
	}
	h, err := OpenHandle(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.Watch(ctx, zap.NewNop()) }()
	defer func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("watch returned error: %v", err)
		}
	}()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		// Rewrite until the watcher has registered and seen an event.
		if err := constantTree(t, 1).Save(path); err != nil {
			t.Fatal(err)
		}
		if predictOne(t, h) == 1 {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatal("watcher did not reload the rewritten artifact")
}
