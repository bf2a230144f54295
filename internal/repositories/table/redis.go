package table

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dicetray/internal/models"
)

const (
	// Key prefixes for Redis
	tableKeyPrefix     = "table:"
	setKeyPrefix       = "dice_set:"
	tableSetsKeyPrefix = "table_sets:" // Sorted set of set IDs scored by position
)

var (
	// ErrTableNotFound is returned when a table is not found
	ErrTableNotFound = errors.New("table not found")

	// ErrSetNotFound is returned when a dice set is not found
	ErrSetNotFound = errors.New("dice set not found")
)

// Config holds configuration for the Redis table repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed table repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func tableKey(tableID string) string {
	return tableKeyPrefix + tableID
}

func setKey(setID string) string {
	return setKeyPrefix + setID
}

func tableSetsKey(tableID string) string {
	return tableSetsKeyPrefix + tableID
}

// SaveTable persists a table to Redis
func (r *redisRepository) SaveTable(ctx context.Context, input *SaveTableInput) error {
	if input == nil || input.Table == nil {
		return errors.New("input and table cannot be nil")
	}

	if input.Table.ID == "" {
		return errors.New("table ID cannot be empty")
	}

	tableJSON, err := json.Marshal(input.Table)
	if err != nil {
		return fmt.Errorf("failed to marshal table: %w", err)
	}

	if err := r.client.Set(ctx, tableKey(input.Table.ID), tableJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save table: %w", err)
	}

	return nil
}

// GetTable retrieves a table by ID from Redis
func (r *redisRepository) GetTable(ctx context.Context, input *GetTableInput) (*models.Table, error) {
	if input == nil || input.TableID == "" {
		return nil, errors.New("input and table ID cannot be empty")
	}

	tableJSON, err := r.client.Get(ctx, tableKey(input.TableID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrTableNotFound
		}
		return nil, fmt.Errorf("failed to get table: %w", err)
	}

	var table models.Table
	if err := json.Unmarshal([]byte(tableJSON), &table); err != nil {
		return nil, fmt.Errorf("failed to unmarshal table: %w", err)
	}

	return &table, nil
}

// DeleteTable removes a table and its sets from Redis
func (r *redisRepository) DeleteTable(ctx context.Context, input *DeleteTableInput) (*DeleteTableOutput, error) {
	if input == nil || input.TableID == "" {
		return nil, errors.New("input and table ID cannot be empty")
	}

	if _, err := r.GetTable(ctx, &GetTableInput{TableID: input.TableID}); err != nil {
		return nil, err
	}

	setIDs, err := r.client.ZRange(ctx, tableSetsKey(input.TableID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get table sets: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, tableKey(input.TableID))
	pipe.Del(ctx, tableSetsKey(input.TableID))
	for _, setID := range setIDs {
		pipe.Del(ctx, setKey(setID))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to delete table: %w", err)
	}

	return &DeleteTableOutput{
		RemovedSetIDs: setIDs,
	}, nil
}

// ReplaceSets writes the table and its new sets in one transaction
func (r *redisRepository) ReplaceSets(ctx context.Context, input *ReplaceSetsInput) (*ReplaceSetsOutput, error) {
	if input == nil || input.Table == nil {
		return nil, errors.New("input and table cannot be nil")
	}

	if input.Table.ID == "" {
		return nil, errors.New("table ID cannot be empty")
	}

	oldSetIDs, err := r.client.ZRange(ctx, tableSetsKey(input.Table.ID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get table sets: %w", err)
	}

	tableJSON, err := json.Marshal(input.Table)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal table: %w", err)
	}

	pipe := r.client.TxPipeline()

	for _, setID := range oldSetIDs {
		pipe.Del(ctx, setKey(setID))
	}
	pipe.Del(ctx, tableSetsKey(input.Table.ID))

	pipe.Set(ctx, tableKey(input.Table.ID), tableJSON, 0)

	for _, set := range input.Sets {
		if set == nil {
			continue
		}

		setJSON, err := json.Marshal(set)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal dice set: %w", err)
		}

		pipe.Set(ctx, setKey(set.ID), setJSON, 0)
		pipe.ZAdd(ctx, tableSetsKey(input.Table.ID), redis.Z{
			Score:  float64(set.Position),
			Member: set.ID,
		})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to replace sets: %w", err)
	}

	return &ReplaceSetsOutput{
		RemovedSetIDs: oldSetIDs,
	}, nil
}

// SaveSet persists a dice set and indexes it under its table
func (r *redisRepository) SaveSet(ctx context.Context, input *SaveSetInput) error {
	if input == nil || input.Set == nil {
		return errors.New("input and set cannot be nil")
	}

	if input.Set.ID == "" || input.Set.TableID == "" {
		return errors.New("set ID and table ID cannot be empty")
	}

	setJSON, err := json.Marshal(input.Set)
	if err != nil {
		return fmt.Errorf("failed to marshal dice set: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, setKey(input.Set.ID), setJSON, 0)
	pipe.ZAdd(ctx, tableSetsKey(input.Set.TableID), redis.Z{
		Score:  float64(input.Set.Position),
		Member: input.Set.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save dice set: %w", err)
	}

	return nil
}

// GetSet retrieves a dice set by ID from Redis
func (r *redisRepository) GetSet(ctx context.Context, input *GetSetInput) (*models.DiceSet, error) {
	if input == nil || input.SetID == "" {
		return nil, errors.New("input and set ID cannot be empty")
	}

	setJSON, err := r.client.Get(ctx, setKey(input.SetID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSetNotFound
		}
		return nil, fmt.Errorf("failed to get dice set: %w", err)
	}

	var set models.DiceSet
	if err := json.Unmarshal([]byte(setJSON), &set); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dice set: %w", err)
	}

	return &set, nil
}

// GetSetByPosition looks up the set ID by its score in the table index
func (r *redisRepository) GetSetByPosition(ctx context.Context, input *GetSetByPositionInput) (*models.DiceSet, error) {
	if input == nil || input.TableID == "" {
		return nil, errors.New("input and table ID cannot be empty")
	}

	position := strconv.Itoa(input.Position)
	setIDs, err := r.client.ZRangeByScore(ctx, tableSetsKey(input.TableID), &redis.ZRangeBy{
		Min: position,
		Max: position,
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get set at position %d: %w", input.Position, err)
	}

	if len(setIDs) == 0 {
		return nil, ErrSetNotFound
	}

	return r.GetSet(ctx, &GetSetInput{SetID: setIDs[0]})
}

// GetSetsByTable retrieves all sets on a table ordered by position
func (r *redisRepository) GetSetsByTable(ctx context.Context, input *GetSetsByTableInput) (*GetSetsByTableOutput, error) {
	if input == nil || input.TableID == "" {
		return nil, errors.New("input and table ID cannot be empty")
	}

	setIDs, err := r.client.ZRange(ctx, tableSetsKey(input.TableID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get table sets: %w", err)
	}

	if len(setIDs) == 0 {
		return &GetSetsByTableOutput{
			Sets: []*models.DiceSet{},
		}, nil
	}

	// Get all sets in one round trip
	pipe := r.client.Pipeline()
	setCommands := make([]*redis.StringCmd, len(setIDs))
	for i, setID := range setIDs {
		setCommands[i] = pipe.Get(ctx, setKey(setID))
	}

	// redis.Nil from a missing set is handled per command below
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get dice sets: %w", err)
	}

	sets := make([]*models.DiceSet, 0, len(setIDs))
	for i, cmd := range setCommands {
		setJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Set was removed between reading the index and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get dice set %s: %w", setIDs[i], err)
		}

		var set models.DiceSet
		if err := json.Unmarshal([]byte(setJSON), &set); err != nil {
			return nil, fmt.Errorf("failed to unmarshal dice set %s: %w", setIDs[i], err)
		}

		sets = append(sets, &set)
	}

	return &GetSetsByTableOutput{
		Sets: sets,
	}, nil
}
