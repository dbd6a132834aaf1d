package internal

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

type Config struct {
	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true"`
	NATSURL           string        `env:"NATS_URL,default=nats://localhost:4222"`
	Host              string        `env:"HOST,default=localhost"`
	Port              int           `env:"PORT,default=8080"`
	LogLevel          string        `env:"LOG_LEVEL,default=INFO"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
	// JWTSecret overrides the built-in development signing key.
	JWTSecret       string `env:"JWT_SECRET"`
	SlackWebhookURL string `env:"SLACK_WEBHOOK_URL"`
	// DrainTimeout bounds the NATS connection drain during graceful shutdown.
	DrainTimeout time.Duration `env:"NATS_DRAIN_TIMEOUT,default=25s"`
}

// SlogLevel maps the LOG_LEVEL string onto a slog level.
func SlogLevel(level string) (slog.Level, error) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown LOG_LEVEL %q", level)
	}
}
