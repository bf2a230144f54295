package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/KirkDiggler/dicetray/internal/app"
	"github.com/KirkDiggler/dicetray/internal/common/logger"
	"github.com/KirkDiggler/dicetray/internal/config"
	"github.com/KirkDiggler/dicetray/internal/handlers/discord"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	if cfg.DiscordToken == "" {
		zapLogger.Fatal("DISCORD_TOKEN environment variable is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	services, err := app.NewServices(ctx, cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to create services", zap.Error(err))
	}
	defer services.Close()

	bot, err := discord.New(&discord.Config{
		Token:            cfg.DiscordToken,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		DefaultLocale:    cfg.Locale,
		ImageFormat:      cfg.ImageFormat,
		ContainerWidth:   cfg.ContainerWidth,
		ContainerHeight:  cfg.ContainerHeight,
		RollerService:    services.Roller,
		MessagingService: services.Messaging,
		Logger:           zapLogger,
	})
	if err != nil {
		zapLogger.Fatal("Failed to create Discord bot", zap.Error(err))
	}

	if err := bot.Start(); err != nil {
		zapLogger.Fatal("Failed to start Discord bot", zap.Error(err))
	}

	// Wait for interrupt signal to gracefully shutdown
	<-ctx.Done()

	if err := bot.Stop(); err != nil {
		zapLogger.Error("Error stopping bot", zap.Error(err))
	}

	zapLogger.Info("Bot has been shut down")
}
