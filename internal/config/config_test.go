package config

import (
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MaxTurns != 400 || cfg.LogLevel != "warn" || cfg.Locale != "en-US" {
		t.Fatalf("defaults = %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BOXSHOGI_MAX_TURNS", "12")
	t.Setenv("BOXSHOGI_LOG_LEVEL", "debug")
	t.Setenv("BOXSHOGI_LOCALE", "zh-CN")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MaxTurns != 12 || cfg.LogLevel != "debug" || cfg.Locale != "zh-CN" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("BOXSHOGI_MAX_TURNS", "many")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"ok", Config{MaxTurns: 1, LogLevel: "info", Locale: "en"}, true},
		{"zero turns", Config{MaxTurns: 0, LogLevel: "info", Locale: "en"}, false},
		{"bad level", Config{MaxTurns: 10, LogLevel: "loud", Locale: "en"}, false},
		{"bad locale", Config{MaxTurns: 10, LogLevel: "info", Locale: "not a locale!"}, false},
	}
	for _, tc := range cases {
		err := tc.cfg.Validate()
		if (err == nil) != tc.ok {
			t.Fatalf("%s: err = %v", tc.name, err)
		}
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("error")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	if logger.Core().Enabled(zapcore.WarnLevel) {
		t.Fatalf("warn should be disabled at error level")
	}
	if !logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatalf("error should be enabled")
	}
	if _, err := NewLogger("chatty"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
