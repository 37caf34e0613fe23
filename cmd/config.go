package main

import (
	"strings"
	"time"
)

type Config struct {
	BadgerFilepath     string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel           string        `env:"LOG_LEVEL,required=true"`
	Host               string        `env:"HOST,default=localhost"`
	Port               int           `env:"PORT,default=8080"`
	GeminiAPIKey       string        `env:"GEMINI_API_KEY,required=true"`
	GeminiModel        string        `env:"GEMINI_MODEL,default=gemini-2.5-flash"`
	GeminiBaseURL      string        `env:"GEMINI_BASE_URL,default=https://generativelanguage.googleapis.com"`
	ClassifierTimeout  time.Duration `env:"CLASSIFIER_TIMEOUT,default=30s"`
	RateLimitMax       int           `env:"RATE_LIMIT_MAX,default=10"`
	RateLimitWindow    time.Duration `env:"RATE_LIMIT_WINDOW,default=24h"`
	IdentityHashSecret string        `env:"IDENTITY_HASH_SECRET,required=true"`
	JWTSecret          string        `env:"JWT_SECRET,required=true"`
	BlockedWords       string        `env:"BLOCKED_WORDS"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
}

// Blocklist splits the comma-separated BLOCKED_WORDS value, dropping
// empties.
func (c Config) Blocklist() []string {
	var words []string
	for _, word := range strings.Split(c.BlockedWords, ",") {
		if trimmed := strings.TrimSpace(word); trimmed != "" {
			words = append(words, trimmed)
		}
	}
	return words
}
