package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

// Config 命令行程序的环境变量配置
type Config struct {
	MaxTurns int    `env:"BOXSHOGI_MAX_TURNS" envDefault:"400"`
	LogLevel string `env:"BOXSHOGI_LOG_LEVEL" envDefault:"warn"`
	Locale   string `env:"BOXSHOGI_LOCALE" envDefault:"en-US"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load 读取并校验配置
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.MaxTurns <= 0 {
		return errors.New("BOXSHOGI_MAX_TURNS must be positive")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("BOXSHOGI_LOCALE: %w", err)
	}
	return nil
}
