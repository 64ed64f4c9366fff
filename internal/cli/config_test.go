package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[defaults]
direction = "TB"
theme = "dark"

[cache]
backend = "redis"

[cache.redis]
addr = "localhost:6379"
db = 2

[server]
addr = ":9999"

[server.mongo]
uri = "mongodb://localhost:27017"
database = "diagrams"
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if cfg.Defaults.Direction != "TB" {
		t.Errorf("Direction = %q, want TB", cfg.Defaults.Direction)
	}
	if cfg.Defaults.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", cfg.Defaults.Theme)
	}
	if cfg.Cache.Backend != cacheBackendRedis {
		t.Errorf("Backend = %q, want redis", cfg.Cache.Backend)
	}
	if cfg.Cache.Redis.Addr != "localhost:6379" {
		t.Errorf("Redis.Addr = %q", cfg.Cache.Redis.Addr)
	}
	if cfg.Cache.Redis.DB != 2 {
		t.Errorf("Redis.DB = %d, want 2", cfg.Cache.Redis.DB)
	}
	if cfg.Server.Addr != ":9999" {
		t.Errorf("Server.Addr = %q, want :9999", cfg.Server.Addr)
	}
	if cfg.Server.Mongo.Database != "diagrams" {
		t.Errorf("Mongo.Database = %q, want diagrams", cfg.Server.Mongo.Database)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	// Unset sections keep their defaults.
	path := writeConfig(t, `
[defaults]
direction = "RL"
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Defaults.Direction != "RL" {
		t.Errorf("Direction = %q, want RL", cfg.Defaults.Direction)
	}
	if cfg.Cache.Backend != cacheBackendFile {
		t.Errorf("Backend = %q, want file default", cfg.Cache.Backend)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want :8080 default", cfg.Server.Addr)
	}
}

func TestLoadConfigMissingExplicitPath(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("explicitly named missing config should error")
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, `not [valid toml`)
	if _, err := loadConfig(path); err == nil {
		t.Error("malformed config should error")
	}
}

func TestConfigContext(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Addr: ":1234"}}
	ctx := withConfig(context.Background(), cfg)

	if got := configFromContext(ctx); got != cfg {
		t.Error("configFromContext should return the attached config")
	}

	// Without a config, defaults apply.
	got := configFromContext(context.Background())
	if got.Cache.Backend != cacheBackendFile {
		t.Errorf("default Backend = %q, want file", got.Cache.Backend)
	}
}
