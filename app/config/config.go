// Package config loads the service configuration from the environment.
//
// Variables use the BLOGCOMMENTS_ prefix and a double underscore for nesting,
// so BLOGCOMMENTS_SERVER__PORT maps to server.port. A .env file in the working
// directory is loaded first when present.
package config

import (
	"fmt"
	"strings"
	"time"

	"blogcomments/app/validation"

	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const EnvPrefix = "BLOGCOMMENTS_"

const (
	DriverBadger = "badger"
	DriverMongo  = "mongo"
)

// Config is the root configuration object for the application.
type Config struct {
	Env    string       `koanf:"env" validate:"required,oneof=development test production"`
	Server ServerConfig `koanf:"server"`
	Store  StoreConfig  `koanf:"store"`
	Auth   AuthConfig   `koanf:"auth"`
	Log    LogConfig    `koanf:"log"`
}

// ServerConfig groups settings for the HTTP server runtime.
type ServerConfig struct {
	Port            string        `koanf:"port" validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `koanf:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// StoreConfig selects and configures the document store.
type StoreConfig struct {
	Driver        string `koanf:"driver" validate:"required,oneof=badger mongo"`
	BadgerPath    string `koanf:"badger_path" validate:"required_if=Driver badger"`
	MongoURI      string `koanf:"mongo_uri" validate:"required_if=Driver mongo"`
	MongoDatabase string `koanf:"mongo_database" validate:"required_if=Driver mongo"`
}

// AuthConfig stores the bearer token settings.
type AuthConfig struct {
	SecretKey string        `koanf:"secret_key" validate:"required"`
	Issuer    string        `koanf:"issuer" validate:"required"`
	TokenTTL  time.Duration `koanf:"token_ttl" validate:"gt=0"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"required,oneof=trace debug info warn error"`
	Pretty bool   `koanf:"pretty"`
}

// Default returns the configuration used for every value the environment
// leaves unset.
func Default() *Config {
	return &Config{
		Env: "development",
		Server: ServerConfig{
			Port:            "8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Store: StoreConfig{
			Driver:        DriverBadger,
			BadgerPath:    "data/badger",
			MongoDatabase: "blog",
		},
		Auth: AuthConfig{
			Issuer:   "blogcomments",
			TokenTTL: 24 * time.Hour,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// envKey turns BLOGCOMMENTS_SERVER__READ_TIMEOUT into server.read_timeout.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// Load reads the environment on top of Default and validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if err := validation.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %s", validation.Message(err))
	}

	return cfg, nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Addr is the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	if strings.Contains(s.Port, ":") {
		return s.Port
	}
	return ":" + s.Port
}
