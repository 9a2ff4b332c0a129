// Package store keeps short-lived state: wizard sessions and revoked tokens.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/pridecenter/pride-backend/internal/models"
)

// ErrNotFound is returned for unknown or expired sessions.
var ErrNotFound = errors.New("store: not found")

// WizardStore persists in-progress wizard sessions. Every Save restarts the
// session's TTL.
type WizardStore interface {
	Get(ctx context.Context, id string) (*models.WizardSession, error)
	Save(ctx context.Context, session *models.WizardSession) error
	Delete(ctx context.Context, id string) error
}

// TokenDenylist remembers logged-out token ids until they would expire anyway.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
