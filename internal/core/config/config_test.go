package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("jwt:\n  secret: test-secret\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	c := Load(path)

	if c.JWT.Secret != "test-secret" {
		t.Fatalf("got secret %q", c.JWT.Secret)
	}
	if c.App.HTTP.Port != 8080 {
		t.Fatalf("got port %d want default 8080", c.App.HTTP.Port)
	}
	if c.DB.Driver != "sqlite" || !c.DB.AutoMigrate {
		t.Fatalf("db defaults wrong: %+v", c.DB)
	}
	if c.JWT.Issuer != "ovapal" || c.JWT.AccessTokenTTLMin != 60 {
		t.Fatalf("jwt defaults wrong: %+v", c.JWT)
	}
	if c.Redis.Addr != "" {
		t.Fatalf("redis should be off by default, got %q", c.Redis.Addr)
	}
	if c.Redis.UserCacheTTLSec != 30 {
		t.Fatalf("got ttl %d want 30", c.Redis.UserCacheTTLSec)
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
app:
  http:
    port: 9090
jwt:
  secret: s
db:
  driver: postgres
  dsn: host=localhost dbname=ovapal
redis:
  addr: 127.0.0.1:6379
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	c := Load(path)
	if c.App.HTTP.Port != 9090 {
		t.Fatalf("got port %d", c.App.HTTP.Port)
	}
	if c.DB.Driver != "postgres" {
		t.Fatalf("got driver %q", c.DB.Driver)
	}
	if c.Redis.Addr != "127.0.0.1:6379" {
		t.Fatalf("got addr %q", c.Redis.Addr)
	}
}
