package roll

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dicetray/internal/models"
)

const (
	// Key prefix for the latest roll of a set
	latestRollKeyPrefix = "roll:latest:"
)

// ErrRollSetNotFound is returned when a set has not been rolled
var ErrRollSetNotFound = errors.New("roll set not found")

// Config holds configuration for the Redis roll repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// TTL expires stored rolls, zero keeps them forever
	TTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed roll repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.TTL < 0 {
		return nil, errors.New("ttl cannot be negative")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
		ttl:    cfg.TTL,
	}, nil
}

func latestRollKey(setID string) string {
	return latestRollKeyPrefix + setID
}

// SaveRollSet overwrites the latest roll for the set
func (r *redisRepository) SaveRollSet(ctx context.Context, input *SaveRollSetInput) error {
	if input == nil || input.RollSet == nil {
		return errors.New("input and roll set cannot be nil")
	}

	if input.RollSet.SetID == "" {
		return errors.New("set ID cannot be empty")
	}

	rollJSON, err := json.Marshal(input.RollSet)
	if err != nil {
		return fmt.Errorf("failed to marshal roll set: %w", err)
	}

	if err := r.client.Set(ctx, latestRollKey(input.RollSet.SetID), rollJSON, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save roll set: %w", err)
	}

	return nil
}

// GetLatestRollSet retrieves the latest roll for a set from Redis
func (r *redisRepository) GetLatestRollSet(ctx context.Context, input *GetLatestRollSetInput) (*models.RollSet, error) {
	if input == nil || input.SetID == "" {
		return nil, errors.New("input and set ID cannot be empty")
	}

	rollJSON, err := r.client.Get(ctx, latestRollKey(input.SetID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRollSetNotFound
		}
		return nil, fmt.Errorf("failed to get roll set: %w", err)
	}

	var rollSet models.RollSet
	if err := json.Unmarshal([]byte(rollJSON), &rollSet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal roll set: %w", err)
	}

	return &rollSet, nil
}

// DeleteRollSets removes the latest rolls for the given sets
func (r *redisRepository) DeleteRollSets(ctx context.Context, input *DeleteRollSetsInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if len(input.SetIDs) == 0 {
		return nil
	}

	keys := make([]string, len(input.SetIDs))
	for i, setID := range input.SetIDs {
		keys[i] = latestRollKey(setID)
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete roll sets: %w", err)
	}

	return nil
}
