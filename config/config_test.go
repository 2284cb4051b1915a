package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	config, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Http.Port != 5000 {
		t.Errorf("expected default port 5000, got %d", config.Http.Port)
	}
	if config.Model.Path != "models/iris_tree.json" {
		t.Errorf("unexpected model path: %s", config.Model.Path)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
debug: true
http:
  port: 8080
  timeout: 5s
model:
  path: /srv/iris.json
  watch: true
log:
  level: warn
  file: /var/log/irisform.log
`)
	config, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !config.Debug {
		t.Error("expected debug to be enabled")
	}
	if config.Http.Port != 8080 {
		t.Errorf("expected port 8080, got %d", config.Http.Port)
	}
	if config.Http.Timeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", config.Http.Timeout)
	}
	if config.Http.MaxFormBytes != 1<<16 {
		t.Errorf("expected default form limit to survive, got %d", config.Http.MaxFormBytes)
	}
	if config.Model.Path != "/srv/iris.json" || !config.Model.Watch {
		t.Errorf("unexpected model config: %+v", config.Model)
	}
	if config.Log.Level != "warn" || config.Log.File != "/var/log/irisform.log" {
		t.Errorf("unexpected log config: %+v", config.Log)
	}
	if config.Log.MaxBackups != 3 {
		t.Errorf("expected default max_backups, got %d", config.Log.MaxBackups)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	if _, err := Load(writeConfig(t, "http: [")); err == nil {
		t.Fatal("expected decode error")
	}
	if _, err := Load(writeConfig(t, "http:\n  port: 70000\n")); err == nil {
		t.Fatal("expected port validation error")
	}
	if _, err := Load(writeConfig(t, "model:\n  path: \"\"\n")); err == nil {
		t.Fatal("expected model path validation error")
	}
}
