package config

import (
	"os"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "ENV", "STORAGE_DRIVER", "DATABASE_URL", "SEED_DEMO_DATA",
		"CORS_ORIGINS", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
	} {
		old, had := os.LookupEnv(k)
		os.Unsetenv(k)
		if had {
			t.Cleanup(func() { os.Setenv(k, old) })
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if cfg.StorageDriver != StorageMemory {
		t.Errorf("expected default storage driver memory, got %s", cfg.StorageDriver)
	}
	if !cfg.SeedDemoData {
		t.Error("expected seeding enabled by default")
	}
	if !cfg.IsDev() {
		t.Error("expected development mode by default")
	}
}

func TestLoad_PostgresRequiresDatabaseURL(t *testing.T) {
	clearEnv(t)
	os.Setenv("STORAGE_DRIVER", StoragePostgres)
	defer os.Unsetenv("STORAGE_DRIVER")

	if _, err := Load(); err == nil {
		t.Error("expected error when STORAGE_DRIVER=postgres without DATABASE_URL")
	}
}

func TestLoad_UnknownDriver(t *testing.T) {
	clearEnv(t)
	os.Setenv("STORAGE_DRIVER", "cassandra")
	defer os.Unsetenv("STORAGE_DRIVER")

	if _, err := Load(); err == nil {
		t.Error("expected error for unknown storage driver")
	}
}

func TestLoad_CORSOriginsSplit(t *testing.T) {
	clearEnv(t)
	os.Setenv("CORS_ORIGINS", "http://a.example,http://b.example")
	defer os.Unsetenv("CORS_ORIGINS")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.CORSOrigins)
	}
	if cfg.CORSOrigins[1] != "http://b.example" {
		t.Errorf("unexpected second origin: %s", cfg.CORSOrigins[1])
	}
}
