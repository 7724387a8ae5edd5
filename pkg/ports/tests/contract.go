package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/riglab/dembones/pkg/domain"
	"github.com/riglab/dembones/pkg/ports"
)

// StateStoreContractTest is a reusable test suite that verifies if an adapter
// complies with ports.StateStore. The store must start out empty.
func StateStoreContractTest(t *testing.T, store ports.StateStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("Load_Empty", func(t *testing.T) {
		_, err := store.Load(ctx)
		if !errors.Is(err, domain.ErrStateNotFound) {
			t.Fatalf("expected ErrStateNotFound from empty store, got %v", err)
		}
	})

	t.Run("Save_Load_RoundTrip", func(t *testing.T) {
		saved := &domain.ToolState{
			SourceMesh: "|rig|body_skinned",
			TargetMesh: "|export|body_target",
		}
		if err := store.Save(ctx, saved); err != nil {
			t.Fatalf("unexpected error saving state: %v", err)
		}

		loaded, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("unexpected error loading state: %v", err)
		}
		if loaded.SourceMesh != saved.SourceMesh || loaded.TargetMesh != saved.TargetMesh {
			t.Errorf("state mismatch. got %+v, want %+v", loaded, saved)
		}
	})

	t.Run("Save_Overwrites", func(t *testing.T) {
		if err := store.Save(ctx, &domain.ToolState{SourceMesh: "|a"}); err != nil {
			t.Fatalf("unexpected error saving state: %v", err)
		}
		if err := store.Save(ctx, &domain.ToolState{SourceMesh: "|b"}); err != nil {
			t.Fatalf("unexpected error saving state: %v", err)
		}
		loaded, err := store.Load(ctx)
		if err != nil {
			t.Fatalf("unexpected error loading state: %v", err)
		}
		if loaded.SourceMesh != "|b" {
			t.Errorf("expected last save to win, got %q", loaded.SourceMesh)
		}
	})

	t.Run("Clear", func(t *testing.T) {
		if err := store.Clear(ctx); err != nil {
			t.Fatalf("unexpected error clearing state: %v", err)
		}
		if _, err := store.Load(ctx); !errors.Is(err, domain.ErrStateNotFound) {
			t.Fatalf("expected ErrStateNotFound after clear, got %v", err)
		}

		// Clearing an already-clean store is not an error.
		if err := store.Clear(ctx); err != nil {
			t.Fatalf("unexpected error clearing empty store: %v", err)
		}
	})
}
