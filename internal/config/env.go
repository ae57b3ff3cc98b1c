package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Env holds process settings taken from the environment. Address and
// IdleBattleTTL override the config file when set.
type Env struct {
	ConfigPath    string        `env:"PROMOTION_CONFIG" envDefault:"./promotion_config.yaml"`
	DBPath        string        `env:"PROMOTION_DB" envDefault:"./data/promotion.db"`
	Address       string        `env:"PROMOTION_ADDR"`
	IdleBattleTTL time.Duration `env:"PROMOTION_IDLE_TTL"`
}

// ParseEnv loads Env from the environment.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// Apply copies the overrides that are set onto cfg.
func (e Env) Apply(cfg *LoadedConfig) {
	if cfg == nil {
		return
	}
	if e.Address != "" {
		cfg.ServerAddress = e.Address
	}
	if e.IdleBattleTTL > 0 {
		cfg.IdleBattleTTL = e.IdleBattleTTL
	}
}
