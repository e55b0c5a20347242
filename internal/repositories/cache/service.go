// Package cache provides a Redis-backed read cache for wallet lookups.
// Writes go through the ledger engine, which invalidates the cached
// wallet after every committed balance mutation.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"walletledger/internal/models"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when the requested key is not cached.
var ErrCacheMiss = errors.New("cache miss")

// CacheService wraps a Redis client with wallet-shaped operations.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCacheService creates a cache service with the given default TTL.
func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

func walletKey(id string) string {
	return "wallet:" + id
}

// GetWallet returns the cached wallet or ErrCacheMiss.
func (s *CacheService) GetWallet(ctx context.Context, id string) (*models.Wallet, error) {
	val, err := s.client.Get(ctx, walletKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read cached wallet: %w", err)
	}

	var wallet models.Wallet
	if err := json.Unmarshal([]byte(val), &wallet); err != nil {
		return nil, fmt.Errorf("failed to decode cached wallet: %w", err)
	}
	return &wallet, nil
}

// SetWallet stores the wallet under the default TTL.
func (s *CacheService) SetWallet(ctx context.Context, wallet *models.Wallet) error {
	data, err := json.Marshal(wallet)
	if err != nil {
		return fmt.Errorf("failed to encode wallet: %w", err)
	}
	return s.client.Set(ctx, walletKey(wallet.ID), data, s.ttl).Err()
}

// InvalidateWallet drops the cached wallet, if any.
func (s *CacheService) InvalidateWallet(ctx context.Context, id string) error {
	return s.client.Del(ctx, walletKey(id)).Err()
}

// FlushAll clears the whole cache. Used on startup so stale balances
// from a previous run never survive a restart.
func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

// HealthCheck pings the Redis backend.
func (s *CacheService) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

// Close releases the underlying Redis connection.
func (s *CacheService) Close() error {
	return s.client.Close()
}
