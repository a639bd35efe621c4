package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/tumpang/internal/pkg/constants"
	"github.com/piresc/tumpang/internal/pkg/models"
)

// RevokeToken marks a token id as signed out until it would have expired
func (r *SessionRepo) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	key := fmt.Sprintf(constants.KeyRevokedToken, tokenID)
	if err := r.redisClient.Set(ctx, key, "1", ttl); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsTokenRevoked reports whether a token id was signed out
func (r *SessionRepo) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := fmt.Sprintf(constants.KeyRevokedToken, tokenID)
	revoked, err := r.redisClient.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return revoked, nil
}

// SaveOAuthState stores the pending OAuth login behind its random state
func (r *SessionRepo) SaveOAuthState(ctx context.Context, state string, data *models.OAuthState, ttl time.Duration) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal oauth state: %w", err)
	}

	key := fmt.Sprintf(constants.KeyOAuthState, state)
	if err := r.redisClient.Set(ctx, key, payload, ttl); err != nil {
		return fmt.Errorf("failed to save oauth state: %w", err)
	}
	return nil
}

// ConsumeOAuthState reads and deletes an OAuth state; a state can be used once
func (r *SessionRepo) ConsumeOAuthState(ctx context.Context, state string) (*models.OAuthState, error) {
	key := fmt.Sprintf(constants.KeyOAuthState, state)
	payload, err := r.redisClient.GetDel(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("oauth state expired or unknown: %w", models.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to read oauth state: %w", err)
	}

	var data models.OAuthState
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal oauth state: %w", err)
	}
	return &data, nil
}
