package config

import (
	"os"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// An empty working directory has no .env to pick up
	chdir(t, t.TempDir())
	unsetEnv(t, "PORT", "STATIC_DIR", "DEFAULT_NUM_PIECES", "MAX_MULTIPART_MEMORY")

	cfg := LoadConfig()

	if cfg.Port != "8080" {
		t.Errorf("expected default Port='8080', got %q", cfg.Port)
	}
	if cfg.StaticDir != "static" {
		t.Errorf("expected default StaticDir='static', got %q", cfg.StaticDir)
	}
	if cfg.DefaultNumPieces != "25" {
		t.Errorf("expected default DefaultNumPieces='25', got %q", cfg.DefaultNumPieces)
	}
	if cfg.MaxMultipartMemory != 32<<20 {
		t.Errorf("expected default MaxMultipartMemory=%d, got %d", 32<<20, cfg.MaxMultipartMemory)
	}
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "5000")
	t.Setenv("STATIC_DIR", "/srv/static")
	t.Setenv("DEFAULT_NUM_PIECES", "100")
	t.Setenv("MAX_MULTIPART_MEMORY", "1024")

	cfg := LoadConfig()

	if cfg.Port != "5000" {
		t.Errorf("expected Port='5000', got %q", cfg.Port)
	}
	if cfg.StaticDir != "/srv/static" {
		t.Errorf("expected StaticDir='/srv/static', got %q", cfg.StaticDir)
	}
	if cfg.DefaultNumPieces != "100" {
		t.Errorf("expected DefaultNumPieces='100', got %q", cfg.DefaultNumPieces)
	}
	if cfg.MaxMultipartMemory != 1024 {
		t.Errorf("expected MaxMultipartMemory=1024, got %d", cfg.MaxMultipartMemory)
	}
}

func TestGetEnvInt64_InvalidFallsBack(t *testing.T) {
	t.Setenv("MAX_MULTIPART_MEMORY", "lots")

	if got := getEnvInt64("MAX_MULTIPART_MEMORY", 42); got != 42 {
		t.Errorf("expected fallback 42, got %d", got)
	}
}

// unsetEnv removes keys for the duration of the test; t.Setenv restores them afterwards.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

// chdir changes the working directory for the duration of the test, like
// testing.T.Chdir (Go 1.24+), and restores it afterwards.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
