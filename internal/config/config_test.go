package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Filter.Enabled {
		t.Error("expected filtering enabled by default")
	}
	if cfg.Store.Path != "" {
		t.Errorf("expected empty store path default, got %q", cfg.Store.Path)
	}
}

func TestLoadLocalConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	data := []byte(`{"store":{"path":"/tmp/words.db"},"filter":{"enabled":false},"logging":{"debug":true}}`)
	if err := os.WriteFile("fillerclaw.json", data, 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Store.Path != "/tmp/words.db" {
		t.Errorf("store path = %q", cfg.Store.Path)
	}
	if cfg.Filter.Enabled {
		t.Error("expected filtering disabled")
	}
	if !cfg.Logging.Debug {
		t.Error("expected debug logging enabled")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Chdir(t.TempDir())

	// Seed a local config so Save targets the working directory
	if err := os.WriteFile("fillerclaw.json", []byte("{}"), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := Default()
	cfg.Store.Path = "~/words.db"
	cfg.Logging.Debug = true

	if err := Save(cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Store.Path != cfg.Store.Path || loaded.Logging.Debug != cfg.Logging.Debug {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestAtomicWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.json")

	if err := AtomicWriteJSON(path, map[string]int{"a": 1}, 0600); err != nil {
		t.Fatalf("AtomicWriteJSON failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var got map[string]int
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["a"] != 1 {
		t.Errorf("unexpected content: %v", got)
	}
}
