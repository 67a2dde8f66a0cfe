package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config aggregates the service configuration.
type Config struct {
	Server ServerConfig
	Chat   ChatConfig
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Port string `env:"PORT" envDefault:"8080"`

	// Addr is the normalized listen address derived from Port.
	Addr string `env:"-"`
}

// ChatConfig tunes the conversation core.
type ChatConfig struct {
	// ReplyDelayMS is the fixed typing-simulation pause before a bot
	// reply is appended.
	ReplyDelayMS int `env:"REPLY_DELAY_MS" envDefault:"900"`
	// HistoryLimit caps transcript length returned to clients; zero
	// means unlimited.
	HistoryLimit int `env:"HISTORY_LIMIT" envDefault:"0"`
}

// ReplyDelay returns the configured delay as a duration.
func (c ChatConfig) ReplyDelay() time.Duration {
	return time.Duration(c.ReplyDelayMS) * time.Millisecond
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	addr, err := normalizeAddr(cfg.Server.Port)
	if err != nil {
		return nil, err
	}
	cfg.Server.Addr = addr

	if cfg.Chat.ReplyDelayMS < 0 {
		return nil, fmt.Errorf("invalid REPLY_DELAY_MS value: %d", cfg.Chat.ReplyDelayMS)
	}
	if cfg.Chat.HistoryLimit < 0 {
		return nil, fmt.Errorf("invalid HISTORY_LIMIT value: %d", cfg.Chat.HistoryLimit)
	}

	return &cfg, nil
}

// normalizeAddr accepts "8080", ":8080" or "127.0.0.1:8080".
func normalizeAddr(port string) (string, error) {
	port = strings.TrimSpace(port)
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		return port, nil
	}

	if strings.Contains(port, " ") {
		return "", fmt.Errorf("invalid PORT value: %q", port)
	}

	return ":" + port, nil
}
