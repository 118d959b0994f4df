package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, errLoad := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if errLoad != nil {
		t.Fatalf("load: %v", errLoad)
	}
	if cfg.Server.Addr != DefaultAddr {
		t.Fatalf("addr = %q, want %q", cfg.Server.Addr, DefaultAddr)
	}
	if cfg.Database.DSN != DefaultDSN {
		t.Fatalf("dsn = %q, want %q", cfg.Database.DSN, DefaultDSN)
	}
	if cfg.Admin.Email != DefaultAdminEmail {
		t.Fatalf("admin email = %q, want %q", cfg.Admin.Email, DefaultAdminEmail)
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "server:\n  addr: \":9090\"\ndatabase:\n  dsn: \"file:test.db\"\nadmin:\n  email: file@example.test\n"
	if errWrite := os.WriteFile(path, []byte(content), 0600); errWrite != nil {
		t.Fatalf("write config: %v", errWrite)
	}

	t.Setenv("ADMIN_EMAIL", "env@example.test")

	cfg, errLoad := Load(path)
	if errLoad != nil {
		t.Fatalf("load: %v", errLoad)
	}
	if cfg.Server.Addr != ":9090" {
		t.Fatalf("addr = %q, want :9090", cfg.Server.Addr)
	}
	if cfg.Database.DSN != "file:test.db" {
		t.Fatalf("dsn = %q", cfg.Database.DSN)
	}
	if cfg.Admin.Email != "env@example.test" {
		t.Fatalf("admin email = %q, env should override file", cfg.Admin.Email)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if errWrite := os.WriteFile(path, []byte("server: [broken"), 0600); errWrite != nil {
		t.Fatalf("write config: %v", errWrite)
	}
	if _, errLoad := Load(path); errLoad == nil {
		t.Fatalf("expected parse error")
	}
}
