package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "server:\n  port: \"\"\n"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != "8600" {
		t.Fatalf("port = %q, want 8600", cfg.Server.Port)
	}
	if cfg.Database.Path != "data/ranker.db" {
		t.Fatalf("db path = %q", cfg.Database.Path)
	}
	if cfg.Reranker.URL != "http://localhost:8601/score" {
		t.Fatalf("reranker url = %q", cfg.Reranker.URL)
	}
	if cfg.Generation.TimeoutSeconds != 120 {
		t.Fatalf("timeout = %d, want 120", cfg.Generation.TimeoutSeconds)
	}
	if cfg.EvalLimit != 200 {
		t.Fatalf("eval limit = %d, want 200", cfg.EvalLimit)
	}
}

func TestLoadConfigValues(t *testing.T) {
	body := `
server:
  port: "9000"
database:
  path: /tmp/other.db
generation:
  endpoint: https://example.test/model
  token: secret
  timeout_seconds: 30
reranker:
  url: http://scorer:8601/score
  load_dir: /models/ft
eval_limit: 50
`
	cfg, err := LoadConfig(writeConfig(t, body))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != "9000" {
		t.Fatalf("port = %q", cfg.Server.Port)
	}
	if cfg.Generation.Endpoint != "https://example.test/model" || cfg.Generation.Token != "secret" {
		t.Fatalf("generation = %+v", cfg.Generation)
	}
	if cfg.Generation.TimeoutSeconds != 30 {
		t.Fatalf("timeout = %d", cfg.Generation.TimeoutSeconds)
	}
	if cfg.Reranker.LoadDir != "/models/ft" {
		t.Fatalf("load dir = %q", cfg.Reranker.LoadDir)
	}
	if cfg.EvalLimit != 50 {
		t.Fatalf("eval limit = %d", cfg.EvalLimit)
	}
}

func TestLoadConfigExpandsEnv(t *testing.T) {
	t.Setenv("RANKER_TEST_TOKEN", "hf_abc123")
	cfg, err := LoadConfig(writeConfig(t, "generation:\n  token: ${RANKER_TEST_TOKEN}\n"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Generation.Token != "hf_abc123" {
		t.Fatalf("token = %q, want expanded env value", cfg.Generation.Token)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Server.Port != "8600" || cfg.Reranker.Base == "" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}
