// Package config holds process configuration for the call-start function.
package config

import "os"

// Config is read once at cold start and not mutated afterwards.
type Config struct {
	BaseURL string
	APIKey  string
}

// FromEnv reads configuration from the environment. Both variables are
// optional: with no base URL outbound delivery is skipped, with no API key
// requests are sent unauthenticated.
func FromEnv() Config {
	return Config{
		BaseURL: os.Getenv("BASE_URL"),
		APIKey:  os.Getenv("API_KEY"),
	}
}
