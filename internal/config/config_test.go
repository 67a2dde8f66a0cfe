package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("expected default addr :8080, got %s", cfg.Server.Addr)
	}
	if cfg.Chat.ReplyDelay() != 900*time.Millisecond {
		t.Fatalf("expected default reply delay 900ms, got %s", cfg.Chat.ReplyDelay())
	}
	if cfg.Chat.HistoryLimit != 0 {
		t.Fatalf("expected unlimited history by default, got %d", cfg.Chat.HistoryLimit)
	}
}

func TestLoadPortVariants(t *testing.T) {
	cases := []struct {
		name string
		port string
		want string
	}{
		{"bare port", "9090", ":9090"},
		{"prefixed", ":9090", ":9090"},
		{"host and port", "127.0.0.1:9090", "127.0.0.1:9090"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("PORT", tc.port)
			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load err: %v", err)
			}
			if cfg.Server.Addr != tc.want {
				t.Fatalf("addr = %s, want %s", cfg.Server.Addr, tc.want)
			}
		})
	}
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("PORT", "80 80")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for PORT containing spaces")
	}
}

func TestLoadInvalidReplyDelay(t *testing.T) {
	t.Setenv("REPLY_DELAY_MS", "-5")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative reply delay")
	}
}

func TestLoadReplyDelayOverride(t *testing.T) {
	t.Setenv("REPLY_DELAY_MS", "50")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Chat.ReplyDelay() != 50*time.Millisecond {
		t.Fatalf("expected 50ms, got %s", cfg.Chat.ReplyDelay())
	}
}
