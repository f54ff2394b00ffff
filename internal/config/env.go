package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvConfig holds game overrides read from the environment. Nil fields are unset.
type EnvConfig struct {
	Difficulty *string  `env:"HITZONE_DIFFICULTY"`
	CountHits  *int     `env:"HITZONE_COUNT_HITS"`
	Speed      *float64 `env:"HITZONE_SPEED"`
}

// ServerConfig controls the SSH server.
type ServerConfig struct {
	Host        string `env:"HITZONE_SSH_HOST"     envDefault:"::"`
	Port        string `env:"HITZONE_SSH_PORT"     envDefault:"2222"`
	HostKeyPath string `env:"HITZONE_SSH_HOST_KEY"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv reads game overrides from the environment.
func LoadEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := ParseEnv(&cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// LoadServerEnv reads SSH server settings from the environment.
// The host key falls back to DefaultHostKeyPath.
func LoadServerEnv() (ServerConfig, error) {
	var cfg ServerConfig
	if err := ParseEnv(&cfg); err != nil {
		return ServerConfig{}, err
	}
	if cfg.HostKeyPath == "" {
		cfg.HostKeyPath = DefaultHostKeyPath()
	}
	return cfg, nil
}

// Overlay returns g with every value set in e replacing the file value.
func (g GameConfig) Overlay(e EnvConfig) GameConfig {
	if e.Difficulty != nil {
		g.Difficulty = e.Difficulty
	}
	if e.CountHits != nil {
		g.CountHits = e.CountHits
	}
	if e.Speed != nil {
		g.Speed = e.Speed
	}
	return g
}
