// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	refreshTokenKeyPrefix = "refresh_token:"
	userTokensKeyPrefix   = "user_tokens:"
)

// TokenRepository defines the interface for refresh token tracking.
type TokenRepository interface {
	// SaveRefreshToken records a refresh token until its expiry.
	SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error

	// IsRefreshTokenValid checks if a refresh token is known and not invalidated.
	IsRefreshTokenValid(ctx context.Context, token string) (bool, error)

	// InvalidateRefreshToken removes a refresh token.
	InvalidateRefreshToken(ctx context.Context, token string) error

	// InvalidateAllUserRefreshTokens removes every refresh token for a user.
	InvalidateAllUserRefreshTokens(ctx context.Context, userID uuid.UUID) error
}

// tokenRepository implements TokenRepository on Redis. Tokens expire on
// their own via TTL; invalidation deletes them eagerly.
type tokenRepository struct {
	client *redis.Client
}

// NewTokenRepository creates a new Redis-backed token repository instance.
func NewTokenRepository(client *redis.Client) TokenRepository {
	return &tokenRepository{
		client: client,
	}
}

// SaveRefreshToken records a refresh token with a TTL matching its expiry
// and indexes it under the owning user for bulk invalidation.
func (r *tokenRepository) SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, refreshTokenKeyPrefix+token, userID.String(), ttl)
	pipe.SAdd(ctx, userTokensKeyPrefix+userID.String(), token)
	pipe.Expire(ctx, userTokensKeyPrefix+userID.String(), ttl)
	_, err := pipe.Exec(ctx)
	return err
}

// IsRefreshTokenValid checks if a refresh token is present (not expired and
// not invalidated).
func (r *tokenRepository) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	count, err := r.client.Exists(ctx, refreshTokenKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InvalidateRefreshToken removes a refresh token.
func (r *tokenRepository) InvalidateRefreshToken(ctx context.Context, token string) error {
	userID, err := r.client.Get(ctx, refreshTokenKeyPrefix+token).Result()
	if err != nil {
		if err == redis.Nil {
			return nil
		}
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, refreshTokenKeyPrefix+token)
	pipe.SRem(ctx, userTokensKeyPrefix+userID, token)
	_, err = pipe.Exec(ctx)
	return err
}

// InvalidateAllUserRefreshTokens removes every refresh token for a user.
func (r *tokenRepository) InvalidateAllUserRefreshTokens(ctx context.Context, userID uuid.UUID) error {
	setKey := userTokensKeyPrefix + userID.String()
	tokens, err := r.client.SMembers(ctx, setKey).Result()
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	for _, token := range tokens {
		pipe.Del(ctx, refreshTokenKeyPrefix+token)
	}
	pipe.Del(ctx, setKey)
	_, err = pipe.Exec(ctx)
	return err
}
