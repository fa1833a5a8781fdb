package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names for the test-target settings.
const (
	EnvBaseURL  = "JOURNEY_BASE_URL"
	EnvUsername = "JOURNEY_USERNAME"
	EnvPassword = "JOURNEY_PASSWORD"
)

// Symbolic tokens that scenarios use in place of real credentials, so
// feature files never embed secrets.
const (
	TokenUsername = "VALID_USERNAME"
	TokenPassword = "VALID_PASSWORD"
)

// Settings holds the environment-sourced test-target configuration: the
// base URL of the application under test and one set of valid
// credentials.
type Settings struct {
	BaseURL  string
	Username string
	Password string
}

// Load reads settings from the process environment, after loading a .env
// file if one exists in the working directory. The base URL is required;
// credentials are only required by scenarios that log in.
func Load() (*Settings, error) {
	// Missing .env is fine; the variables may come from the real
	// environment (CI).
	_ = godotenv.Load()

	s := &Settings{
		BaseURL:  os.Getenv(EnvBaseURL),
		Username: os.Getenv(EnvUsername),
		Password: os.Getenv(EnvPassword),
	}

	if s.BaseURL == "" {
		return nil, fmt.Errorf("%s is not set", EnvBaseURL)
	}

	return s, nil
}

// ResolveValue substitutes recognized credential tokens with their
// configured values. Any other token passes through unchanged, so plain
// literal values in feature files keep working.
func (s *Settings) ResolveValue(token string) string {
	switch token {
	case TokenUsername:
		return s.Username
	case TokenPassword:
		return s.Password
	default:
		return token
	}
}
