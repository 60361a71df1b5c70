package oauth

import (
	"context"
	"testing"

	"github.com/meettrack-team/meettrack/internal/infrastructure/cache"
)

func TestStateManagerRoundTrip(t *testing.T) {
	sm := NewStateManager(cache.NewMemoryStore())
	ctx := context.Background()

	state, err := sm.GenerateState(ctx)
	if err != nil {
		t.Fatalf("failed to generate state: %v", err)
	}
	if state == "" {
		t.Fatal("expected non-empty state")
	}

	if !sm.ValidateState(ctx, state) {
		t.Fatal("freshly generated state should validate")
	}

	// One-time use: second validation must fail
	if sm.ValidateState(ctx, state) {
		t.Fatal("state should be consumed after first validation")
	}
}

func TestStateManagerRejectsUnknownState(t *testing.T) {
	sm := NewStateManager(cache.NewMemoryStore())

	if sm.ValidateState(context.Background(), "never-issued") {
		t.Fatal("unknown state should not validate")
	}
}
