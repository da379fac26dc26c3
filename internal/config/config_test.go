package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"BACKEND_URL", "PLANNER_CONFIG", "PLANNER_LOG_FORMAT", "PLANNER_DEBUG", "REQUEST_TIMEOUT"} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "planner.yml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BackendURL != DefaultBackendURL {
		t.Fatalf("expected %q, got %q", DefaultBackendURL, cfg.BackendURL)
	}
	if cfg.RequestTimeout != 0 {
		t.Fatalf("expected no timeout by default, got %s", cfg.RequestTimeout)
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
backendURL: http://planner.internal:9000/
requestTimeout: 5s
log:
  format: json
  debug: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BackendURL != "http://planner.internal:9000" {
		t.Fatalf("expected trimmed url, got %q", cfg.BackendURL)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Fatalf("expected 5s timeout, got %s", cfg.RequestTimeout)
	}
	if cfg.Log.Format != "JSON" || !cfg.Log.Debug {
		t.Fatalf("unexpected log config: %+v", cfg.Log)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "backendURL: http://from-file:1\n")
	t.Setenv("BACKEND_URL", "http://from-env:2")
	t.Setenv("REQUEST_TIMEOUT", "250ms")
	t.Setenv("PLANNER_DEBUG", "YES")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BackendURL != "http://from-env:2" {
		t.Fatalf("expected env url, got %q", cfg.BackendURL)
	}
	if cfg.RequestTimeout != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %s", cfg.RequestTimeout)
	}
	if !cfg.Log.Debug {
		t.Fatal("expected debug from PLANNER_DEBUG")
	}
}

func TestLoadPlannerConfigEnv(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "backendURL: http://via-env-path:3\n")
	t.Setenv("PLANNER_CONFIG", path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BackendURL != "http://via-env-path:3" {
		t.Fatalf("expected url from PLANNER_CONFIG file, got %q", cfg.BackendURL)
	}
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatal("expected error for missing explicit file")
	}

	if _, err := Load(writeConfig(t, "backendURL: [")); err == nil {
		t.Fatal("expected parse error")
	}

	if _, err := Load(writeConfig(t, "backendURL: not a url\n")); err == nil {
		t.Fatal("expected validation error for bad url")
	}

	if _, err := Load(writeConfig(t, "log:\n  format: xml\n")); err == nil {
		t.Fatal("expected validation error for unknown log format")
	}

	t.Setenv("REQUEST_TIMEOUT", "soon")
	if _, err := Load(writeConfig(t, "")); err == nil {
		t.Fatal("expected error for bad REQUEST_TIMEOUT")
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
