package config

import (
	"errors"
	"os"
	"strings"
)

// Backend identifies which document store the seeder writes to.
type Backend string

const (
	BackendFirestore Backend = "firestore"
	BackendPostgres  Backend = "postgres"
	BackendMemory    Backend = "memory"
)

var (
	ErrUnknownBackend     = errors.New("unknown SEED_BACKEND (want firestore, postgres or memory)")
	ErrMissingDatabaseURL = errors.New("DATABASE_URL is required for the postgres backend")
	ErrMissingProjectID   = errors.New("PROJECT_ID is required for the firestore backend")
)

// Config holds the store connection settings.
type Config struct {
	Backend Backend

	// Firebase web app settings. Only APIKey and ProjectID reach the
	// Firestore client; the rest are carried so one .env serves the app too.
	APIKey            string
	AuthDomain        string
	ProjectID         string
	StorageBucket     string
	MessagingSenderID string
	AppID             string

	// Postgres document store
	DatabaseURL string

	defaulted []string
}

type setting struct {
	key      string
	fallback string
	dst      func(*Config) *string
}

// Demo values used when a key is absent. Development convenience only.
var settings = []setting{
	{"API_KEY", "demo-api-key", func(c *Config) *string { return &c.APIKey }},
	{"AUTH_DOMAIN", "emotodo-dev.firebaseapp.com", func(c *Config) *string { return &c.AuthDomain }},
	{"PROJECT_ID", "emotodo-dev", func(c *Config) *string { return &c.ProjectID }},
	{"STORAGE_BUCKET", "emotodo-dev.appspot.com", func(c *Config) *string { return &c.StorageBucket }},
	{"MESSAGING_SENDER_ID", "123456789", func(c *Config) *string { return &c.MessagingSenderID }},
	{"APP_ID", "1:123456789:web:abcdef", func(c *Config) *string { return &c.AppID }},
}

// LoadFromEnv loads configuration from environment variables.
//
// Environment variables:
//   - API_KEY, AUTH_DOMAIN, PROJECT_ID, STORAGE_BUCKET, MESSAGING_SENDER_ID,
//     APP_ID: Firebase settings, also read with a FIREBASE_ prefix (the
//     prefixed name wins). Absent keys fall back to emotodo-dev demo values.
//   - SEED_BACKEND: "firestore", "postgres" or "memory" (default: "firestore")
//   - DATABASE_URL: Postgres DSN (required if using postgres)
func LoadFromEnv() Config {
	var cfg Config

	for _, s := range settings {
		v := lookup(s.key)
		if v == "" {
			v = s.fallback
			cfg.defaulted = append(cfg.defaulted, s.key)
		}
		*s.dst(&cfg) = v
	}

	cfg.Backend = Backend(strings.ToLower(strings.TrimSpace(os.Getenv("SEED_BACKEND"))))
	if cfg.Backend == "" {
		cfg.Backend = BackendFirestore
	}
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))

	return cfg
}

func lookup(key string) string {
	if v := strings.TrimSpace(os.Getenv("FIREBASE_" + key)); v != "" {
		return v
	}
	return strings.TrimSpace(os.Getenv(key))
}

// UsingDemoDefaults lists the keys that fell back to demo values.
func (c Config) UsingDemoDefaults() []string {
	return c.defaulted
}

// Defaulted reports whether key fell back to its demo value.
func (c Config) Defaulted(key string) bool {
	for _, k := range c.defaulted {
		if k == key {
			return true
		}
	}
	return false
}

// Validate checks that the configuration is usable for the selected backend.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendFirestore:
		if c.ProjectID == "" {
			return ErrMissingProjectID
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return ErrMissingDatabaseURL
		}
	case BackendMemory:
	default:
		return ErrUnknownBackend
	}
	return nil
}
