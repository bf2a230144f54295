package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/dicetray/internal/render/board"
	"github.com/KirkDiggler/dicetray/internal/services/messaging"
)

// Config is the process configuration shared by every entrypoint
type Config struct {
	// Redis
	RedisAddr     string `env:"REDIS_ADDR"     envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"       envDefault:"0"`

	// RollTTL expires stored rolls, zero keeps them
	RollTTL time.Duration `env:"ROLL_TTL" envDefault:"0s"`

	// Discord
	DiscordToken  string `env:"DISCORD_TOKEN"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`

	// HTTP
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	// Rendering
	Locale          string `env:"LOCALE"           envDefault:"en-US"`
	ImageFormat     string `env:"IMAGE_FORMAT"     envDefault:"png"`
	ContainerWidth  int    `env:"CONTAINER_WIDTH"  envDefault:"800"`
	ContainerHeight int    `env:"CONTAINER_HEIGHT" envDefault:"600"`
	Supersample     int    `env:"SUPERSAMPLE"      envDefault:"2"`

	// Logging
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogDev   bool   `env:"LOG_DEV"   envDefault:"false"`
}

// Load reads the given .env files, when present, then parses the environment.
// With no files it tries ".env" in the working directory.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	return parse(env.Options{})
}

// FromMap parses configuration from an explicit environment, ignoring the process env
func FromMap(environment map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environment})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values the environment parser cannot
func (c *Config) Validate() error {
	if _, err := board.ParseFormat(c.ImageFormat); err != nil {
		return fmt.Errorf("IMAGE_FORMAT: %w", err)
	}

	if c.ContainerWidth <= 0 || c.ContainerHeight <= 0 ||
		c.ContainerWidth > board.MaxCanvasSize || c.ContainerHeight > board.MaxCanvasSize {
		return fmt.Errorf("CONTAINER_WIDTH and CONTAINER_HEIGHT must be between 1 and %d", board.MaxCanvasSize)
	}

	if c.Supersample < 1 || c.Supersample > board.MaxSupersample {
		return fmt.Errorf("SUPERSAMPLE must be between 1 and %d", board.MaxSupersample)
	}

	if c.RollTTL < 0 {
		return errors.New("ROLL_TTL cannot be negative")
	}

	supported := false
	for _, locale := range messaging.SupportedLocales() {
		if c.Locale == locale {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("LOCALE %q is not supported", c.Locale)
	}

	return nil
}
