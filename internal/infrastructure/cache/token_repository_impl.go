package cache

import (
	"context"
	"fmt"
	"time"

	domainRepo "clinic-prescription-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const accessTokenKeyPrefix = "access_token:"

// redisTokenRepository stores issued token IDs in Redis with a TTL matching
// the JWT expiry, so logout can revoke a token before it expires.
type redisTokenRepository struct {
	client *redis.Client
}

func NewRedisTokenRepository(client *redis.Client) domainRepo.TokenRepository {
	return &redisTokenRepository{client: client}
}

func tokenKey(doctorID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("%s%s:%s", accessTokenKeyPrefix, doctorID.String(), tokenID)
}

func (r *redisTokenRepository) Save(ctx context.Context, doctorID uuid.UUID, tokenID string, ttl time.Duration) error {
	return r.client.Set(ctx, tokenKey(doctorID, tokenID), "valid", ttl).Err()
}

func (r *redisTokenRepository) Exists(ctx context.Context, doctorID uuid.UUID, tokenID string) (bool, error) {
	exists, err := r.client.Exists(ctx, tokenKey(doctorID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

func (r *redisTokenRepository) Delete(ctx context.Context, doctorID uuid.UUID, tokenID string) error {
	return r.client.Del(ctx, tokenKey(doctorID, tokenID)).Err()
}
