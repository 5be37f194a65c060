package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

func TestLoad_DefaultsAndYAML(t *testing.T) {
	path := writeYAML(t, `
storage:
  driver: memory
jwt:
  secret: s3cret
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("default addr: got %q", cfg.Server.Addr)
	}
	if cfg.Pagination.PageSize != 10 {
		t.Fatalf("default page size: got %d", cfg.Pagination.PageSize)
	}
	if cfg.Storage.Driver != "memory" {
		t.Fatalf("driver: got %q", cfg.Storage.Driver)
	}
	if cfg.Cache.Kind != "memory" {
		t.Fatalf("default cache kind: got %q", cfg.Cache.Kind)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("PAGE_SIZE", "25")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.JWT.Secret != "from-env" {
		t.Fatalf("jwt secret: got %q", cfg.JWT.Secret)
	}
	if cfg.Pagination.PageSize != 25 {
		t.Fatalf("page size: got %d", cfg.Pagination.PageSize)
	}
}

func TestValidate_RejectsBadConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "x")

	// postgres sin DSN
	t.Setenv("STORAGE_DRIVER", "postgres")
	if _, err := Load(""); err == nil {
		t.Fatal("expected error for postgres driver without dsn")
	}

	// driver desconocido
	t.Setenv("STORAGE_DRIVER", "cassandra")
	if _, err := Load(""); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestTTLFallbacks(t *testing.T) {
	var c Config
	c.JWT.AccessTTL = "garbage"
	if got := c.AccessTTL().Minutes(); got != 15 {
		t.Fatalf("AccessTTL fallback: got %v min", got)
	}
	c.JWT.AccessTTL = "30m"
	if got := c.AccessTTL().Minutes(); got != 30 {
		t.Fatalf("AccessTTL parse: got %v min", got)
	}
	c.Cache.Memory.DefaultTTL = ""
	if got := c.CacheTTL().Minutes(); got != 2 {
		t.Fatalf("CacheTTL fallback: got %v min", got)
	}
}
