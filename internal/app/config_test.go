package app

import (
	"testing"
	"time"

	"github.com/yungbote/zoomtube-backend/internal/platform/envutil"
	"github.com/yungbote/zoomtube-backend/internal/platform/logger"
)

func TestLoadConfigDefaults(t *testing.T) {
	src := envutil.NewSource(logger.Nop())
	cfg := LoadConfig(src)

	if cfg.StoreBackend != StorePostgres {
		t.Fatalf("unexpected store backend: got=%q want=%q", cfg.StoreBackend, StorePostgres)
	}
	if cfg.Captions.Timeout != 15*time.Second || cfg.Captions.DefaultLang != "en" {
		t.Fatalf("unexpected captions config: %+v", cfg.Captions)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected shutdown timeout: got=%v", cfg.ShutdownTimeout)
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	src := envutil.NewSource(logger.Nop())
	err := src.LoadYAML([]byte(`
store_backend: SQLite
sqlite_path: /tmp/lectures.db
captions_http_timeout: 3s
cors_allow_origins: "https://a.example.com, https://b.example.com"
otel_sampler_ratio: 0.5
`))
	if err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}
	t.Setenv("SQLITE_PATH", "/var/lib/zoomtube.db")

	cfg := LoadConfig(src)
	if cfg.StoreBackend != StoreSQLite {
		t.Fatalf("unexpected store backend: got=%q want=%q", cfg.StoreBackend, StoreSQLite)
	}
	if cfg.SQLitePath != "/var/lib/zoomtube.db" {
		t.Fatalf("environment should override file: got=%q", cfg.SQLitePath)
	}
	if cfg.Captions.Timeout != 3*time.Second {
		t.Fatalf("unexpected timeout: got=%v want=%v", cfg.Captions.Timeout, 3*time.Second)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example.com" {
		t.Fatalf("unexpected origins: %v", cfg.CORSOrigins)
	}
	if cfg.Otel.SampleRatio != 0.5 {
		t.Fatalf("unexpected sample ratio: got=%v", cfg.Otel.SampleRatio)
	}
}
