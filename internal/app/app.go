package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/dicetray/internal/common/clock"
	"github.com/KirkDiggler/dicetray/internal/common/uuid"
	"github.com/KirkDiggler/dicetray/internal/config"
	"github.com/KirkDiggler/dicetray/internal/dice"
	"github.com/KirkDiggler/dicetray/internal/render/face"
	rollRepo "github.com/KirkDiggler/dicetray/internal/repositories/roll"
	tableRepo "github.com/KirkDiggler/dicetray/internal/repositories/table"
	"github.com/KirkDiggler/dicetray/internal/services/messaging"
	"github.com/KirkDiggler/dicetray/internal/services/roller"
)

// pingTimeout bounds the startup Redis check
const pingTimeout = 5 * time.Second

// Services are the shared dependencies of the bot and the HTTP server
type Services struct {
	Redis     *redis.Client
	Roller    roller.Service
	Messaging messaging.Service
}

// Close releases the Redis connection
func (s *Services) Close() error {
	if s == nil || s.Redis == nil {
		return nil
	}
	return s.Redis.Close()
}

// NewServices connects to Redis and builds the roller and messaging services
func NewServices(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Services, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
	}
	logger.Info("connected to redis", zap.String("addr", cfg.RedisAddr), zap.Int("db", cfg.RedisDB))

	tables, err := tableRepo.NewRedis(&tableRepo.Config{RedisClient: redisClient})
	if err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to create table repository: %w", err)
	}

	rolls, err := rollRepo.NewRedis(&rollRepo.Config{
		RedisClient: redisClient,
		TTL:         cfg.RollTTL,
	})
	if err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to create roll repository: %w", err)
	}

	renderer, err := face.NewRenderer()
	if err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to create face renderer: %w", err)
	}

	rollerSvc, err := roller.New(&roller.Config{
		Supersample:   cfg.Supersample,
		TableRepo:     tables,
		RollRepo:      rolls,
		DiceRoller:    dice.New(&dice.Config{}),
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Renderer:      renderer,
	})
	if err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to create roller service: %w", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		DefaultLocale: cfg.Locale,
	})
	if err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to create messaging service: %w", err)
	}

	return &Services{
		Redis:     redisClient,
		Roller:    rollerSvc,
		Messaging: messagingSvc,
	}, nil
}
