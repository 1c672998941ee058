package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/incident_reporting_system/internal/service"
)

const revokedTokenKeyPrefix = "revoked:jti:"

// TokenRevocationRepository хранит идентификаторы отозванных токенов в Redis
// до истечения срока их действия
type TokenRevocationRepository struct {
	redisClient *redis.Client
}

func NewTokenRevocationRepository(redisClient *redis.Client) service.TokenRevocationStore {
	return &TokenRevocationRepository{redisClient: redisClient}
}

// Revoke помечает токен отозванным на время ttl
func (r *TokenRevocationRepository) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := r.redisClient.Set(ctx, revokedTokenKeyPrefix+jti, 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsRevoked сообщает, был ли токен отозван
func (r *TokenRevocationRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := r.redisClient.Get(ctx, revokedTokenKeyPrefix+jti).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return true, nil
}
