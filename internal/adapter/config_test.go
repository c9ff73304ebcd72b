package adapter

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoadConfigFrom_Defaults(t *testing.T) {
	cfg, err := LoadConfigFrom(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfigFrom: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("config without file differs from defaults (-want +got):\n%s", diff)
	}
}

func TestLoadConfigFrom_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
catalog:
  base_url: http://localhost:9000
  timeout: 5s
storage:
  driver: memory
ui:
  start_page: favorites
`)
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SHOWBOX_LOGGING_LEVEL", "DEBUG")

	cfg, err := LoadConfigFrom(dir)
	if err != nil {
		t.Fatalf("LoadConfigFrom: %v", err)
	}

	if cfg.Catalog.URL != "http://localhost:9000" {
		t.Errorf("Catalog.URL = %q", cfg.Catalog.URL)
	}
	if cfg.Catalog.Timeout != 5*time.Second {
		t.Errorf("Catalog.Timeout = %v", cfg.Catalog.Timeout)
	}
	if cfg.Catalog.Type != CatalogTypeTVMaze {
		t.Errorf("Catalog.Type = %q, want default", cfg.Catalog.Type)
	}
	if cfg.Storage.Driver != "memory" || cfg.UI.StartPage != "favorites" {
		t.Errorf("Storage/UI = %+v / %+v", cfg.Storage, cfg.UI)
	}
	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("env override ignored: Logging.Level = %q", cfg.Logging.Level)
	}
}

func TestLoadConfigFrom_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":     "catalog: [",
		"bad driver":   "storage:\n  driver: floppy\n",
		"redis no url": "storage:\n  driver: redis\n",
		"bad page":     "ui:\n  start_page: settings\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfigFrom(dir); err == nil {
				t.Error("LoadConfigFrom accepted invalid config")
			}
		})
	}
}

func TestSaveConfigTo_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Storage.Driver = "redis"
	cfg.Storage.RedisURL = "redis://localhost:6379/1"
	cfg.UI.GenreLimit = 5

	if err := SaveConfigTo(dir, cfg); err != nil {
		t.Fatalf("SaveConfigTo: %v", err)
	}
	got, err := LoadConfigFrom(dir)
	if err != nil {
		t.Fatalf("LoadConfigFrom: %v", err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"ERROR":   slog.LevelError,
		"":        slog.LevelInfo,
		"chatty":  slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLogLevel(in); got != want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, "WARN")
	logger.Info("dropped")
	logger.Warn("kept", "page", 3)

	var rec map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("log output is not one JSON record: %q", buf.String())
	}
	if rec["msg"] != "kept" || rec["page"] != float64(3) {
		t.Errorf("record = %v", rec)
	}
}

func TestSetupLogger_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "showbox.log")
	logger, closer, err := SetupLogger(&LoggingConfig{File: path, Level: "INFO"})
	if err != nil {
		t.Fatalf("SetupLogger: %v", err)
	}
	logger.Info("hello")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil || !bytes.Contains(data, []byte(`"msg":"hello"`)) {
		t.Errorf("log file = %q, %v", data, err)
	}
}
