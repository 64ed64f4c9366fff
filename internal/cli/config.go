package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Cache backend names accepted in the config file.
const (
	cacheBackendFile  = "file"
	cacheBackendRedis = "redis"
	cacheBackendNone  = "none"
)

// Config holds CLI configuration loaded from a TOML file.
//
// Example config (~/.config/mermaidgen/config.toml):
//
//	[defaults]
//	direction = "LR"
//	theme = "default"
//	look = "classic"
//	layout = "dagre"
//
//	[cache]
//	backend = "file"   # file, redis, or none
//	dir = ""           # file backend only; empty means ~/.cache/mermaidgen/
//
//	[cache.redis]
//	addr = "localhost:6379"
//
//	[server]
//	addr = ":8080"
//
//	[server.mongo]
//	uri = "mongodb://localhost:27017"
//	database = "mermaidgen"
type Config struct {
	Defaults DefaultsConfig `toml:"defaults"`
	Cache    CacheConfig    `toml:"cache"`
	Server   ServerConfig   `toml:"server"`
}

// DefaultsConfig sets document-level defaults applied when a document
// leaves the corresponding field empty.
type DefaultsConfig struct {
	Direction string `toml:"direction"`
	Theme     string `toml:"theme"`
	Look      string `toml:"look"`
	Layout    string `toml:"layout"`
}

// CacheConfig selects and configures the render cache backend.
type CacheConfig struct {
	Backend string      `toml:"backend"`
	Dir     string      `toml:"dir"`
	Redis   RedisConfig `toml:"redis"`
}

// RedisConfig holds connection settings for the redis cache backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// ServerConfig holds settings for the serve command.
type ServerConfig struct {
	Addr  string      `toml:"addr"`
	Mongo MongoConfig `toml:"mongo"`
}

// MongoConfig holds connection settings for the MongoDB diagram store.
// An empty URI means the server uses an in-memory store.
type MongoConfig struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// defaultConfig returns the configuration used when no config file exists.
func defaultConfig() *Config {
	return &Config{
		Cache:  CacheConfig{Backend: cacheBackendFile},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// loadConfig reads the config file at path, or the default location when
// path is empty. A missing file is not an error; defaults apply.
func loadConfig(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		p, err := defaultConfigPath()
		if err != nil {
			return defaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return defaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := defaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// defaultConfigPath returns the XDG config location (~/.config/mermaidgen/config.toml).
func defaultConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// configKey is the context key for storing the resolved config.
const configKey ctxKey = 1

// withConfig returns a new context with the given config attached.
func withConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext retrieves the config from ctx, or defaults if unset.
func configFromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(configKey).(*Config); ok {
		return cfg
	}
	return defaultConfig()
}
