package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/meettrack-team/meettrack/internal/domain/entities"
)

// SessionRepository defines the interface for session data access
type SessionRepository interface {
	// Create creates a new session
	Create(ctx context.Context, session *entities.Session) error

	// FindByToken finds an unrevoked session by its refresh token
	FindByToken(ctx context.Context, token string) (*entities.Session, error)

	// FindByUserID finds all sessions for a user
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Session, error)

	// UpdateLastUsed updates the last used timestamp
	UpdateLastUsed(ctx context.Context, sessionID uuid.UUID) error

	// Revoke revokes a session
	Revoke(ctx context.Context, sessionID uuid.UUID) error

	// RevokeAllByUserID revokes all sessions for a user
	RevokeAllByUserID(ctx context.Context, userID uuid.UUID) error

	// DeleteExpired deletes sessions that expired before the given time
	DeleteExpired(ctx context.Context, before time.Time) error
}
