package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"
)

// Store abstracts the state backend. Both the Redis client and the in-memory
// store satisfy it, so multi-instance deployments share state through Redis
// while tests and dev setups stay self-contained.
type Store interface {
	Set(ctx context.Context, key string, value string, expiration time.Duration)
	Get(ctx context.Context, key string) (string, bool)
	Delete(ctx context.Context, key string)
}

// StateManager manages OAuth state tokens for CSRF protection
type StateManager struct {
	store      Store
	expiration time.Duration
}

// NewStateManager creates a new state manager
func NewStateManager(store Store) *StateManager {
	return &StateManager{
		store:      store,
		expiration: 15 * time.Minute, // State expires in 15 minutes
	}
}

// GenerateState generates a random state token and stores it
func (sm *StateManager) GenerateState(ctx context.Context) (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	state := base64.URLEncoding.EncodeToString(b)

	key := fmt.Sprintf("oauth:state:%s", state)
	sm.store.Set(ctx, key, "valid", sm.expiration)

	return state, nil
}

// ValidateState validates a state token (one-time use)
func (sm *StateManager) ValidateState(ctx context.Context, state string) bool {
	key := fmt.Sprintf("oauth:state:%s", state)

	value, exists := sm.store.Get(ctx, key)
	if !exists || value != "valid" {
		return false
	}

	// Delete the state immediately (one-time use)
	sm.store.Delete(ctx, key)

	return true
}
