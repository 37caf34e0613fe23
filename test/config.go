package test

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	RateLimitMax int `envconfig:"TEST_RATE_LIMIT_MAX" default:"3"`
	// Window is long on purpose: expiry behavior is covered by the
	// ratelimit package tests, the scenario only needs a live window.
	RateLimitWindow   time.Duration `envconfig:"TEST_RATE_LIMIT_WINDOW" default:"24h"`
	ClassifierTimeout time.Duration `envconfig:"TEST_CLASSIFIER_TIMEOUT" default:"2s"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
