package main

import (
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-progression/internal/engine/queue"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// Config is read from the environment; persistent flags override it
type Config struct {
	RedisAddr       string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	CatalogPath     string `env:"CATALOG_PATH"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
	MaxQueueSeconds uint64 `env:"MAX_QUEUE_SECONDS"`
}

var (
	cfg *Config

	flagRedisAddr       string
	flagCatalogPath     string
	flagLogLevel        string
	flagMaxQueueSeconds uint64
)

func loadConfig(cmd *cobra.Command) (*Config, error) {
	c := &Config{}
	if err := env.Parse(c); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid environment")
	}

	flags := cmd.Flags()
	if flags.Changed("redis") {
		c.RedisAddr = flagRedisAddr
	}
	if flags.Changed("catalog") {
		c.CatalogPath = flagCatalogPath
	}
	if flags.Changed("log-level") {
		c.LogLevel = flagLogLevel
	}
	if flags.Changed("max-queue-seconds") {
		c.MaxQueueSeconds = flagMaxQueueSeconds
	}
	if c.MaxQueueSeconds == 0 {
		c.MaxQueueSeconds = queue.DefaultMaxQueueSeconds
	}

	return c, nil
}

func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(loaded.LogLevel)); err != nil {
		return errors.InvalidArgumentf("invalid log level %q", loaded.LogLevel)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	cfg = loaded
	return nil
}
