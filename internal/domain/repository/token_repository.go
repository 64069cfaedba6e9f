package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenRepository tracks issued access tokens so that logout can revoke
// them before their JWT expiry.
type TokenRepository interface {
	Save(ctx context.Context, doctorID uuid.UUID, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, doctorID uuid.UUID, tokenID string) (bool, error)
	Delete(ctx context.Context, doctorID uuid.UUID, tokenID string) error
}
