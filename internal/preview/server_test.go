package preview

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	s, err := NewServer(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return s
}

func get(t *testing.T, handler http.Handler, path string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	res := rec.Result()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	return res, string(body)
}

func TestIndexListsAllDemos(t *testing.T) {
	s := newTestServer(t, DefaultConfig())
	res, body := get(t, s.Handler(), "/")

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	for _, demo := range Demos() {
		if !strings.Contains(body, "/preview/"+demo.Name) {
			t.Errorf("expected index to link %q", demo.Name)
		}
	}
}

func TestPreviewRendersComponent(t *testing.T) {
	s := newTestServer(t, DefaultConfig())
	res, body := get(t, s.Handler(), "/preview/button")

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if !strings.Contains(body, "<button") {
		t.Errorf("expected rendered button markup, got %s", body)
	}
}

func TestPreviewUnknownComponent(t *testing.T) {
	s := newTestServer(t, DefaultConfig())
	res, _ := get(t, s.Handler(), "/preview/nope")

	if res.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", res.StatusCode)
	}
}

func TestDocsPage(t *testing.T) {
	s := newTestServer(t, DefaultConfig())
	res, body := get(t, s.Handler(), "/docs")

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if !strings.Contains(body, "Resolution order") {
		t.Errorf("expected rendered documentation, got %s", body)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, DefaultConfig())
	// Render once so the counters exist.
	get(t, s.Handler(), "/preview/button")

	res, body := get(t, s.Handler(), "/metrics")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if !strings.Contains(body, "loom_preview_renders_total") {
		t.Errorf("expected render counter, got %s", body)
	}
}

func TestServerAppliesOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "overrides.yaml")
	if err := os.WriteFile(path, []byte("button:\n  class: \"bg-indigo-600\"\n"), 0o644); err != nil {
		t.Fatalf("writing overrides: %v", err)
	}

	cfg := DefaultConfig()
	cfg.Overrides = path
	s := newTestServer(t, cfg)

	_, body := get(t, s.Handler(), "/preview/button")
	if !strings.Contains(body, "bg-indigo-600") {
		t.Errorf("expected override applied, got %s", body)
	}
	if strings.Contains(body, "bg-zinc-900") {
		t.Errorf("expected default background displaced, got %s", body)
	}
}

func TestServerMissingOverridesFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Overrides = "/nonexistent/overrides.yaml"
	if _, err := NewServer(cfg, zerolog.Nop()); err == nil {
		t.Fatal("expected error for missing overrides file")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected default config valid, got %v", err)
	}

	cfg.Addr = "not an address"
	if err := cfg.Validate(); err == nil {
		t.Error("expected invalid addr rejected")
	}

	cfg = DefaultConfig()
	cfg.LogLevel = "loud"
	if err := cfg.Validate(); err == nil {
		t.Error("expected invalid log level rejected")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "preview.yaml")
	if err := os.WriteFile(path, []byte("addr: \"127.0.0.1:9999\"\nlog_level: debug\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9999" {
		t.Errorf("expected addr from file, got %q", cfg.Addr)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level from file, got %q", cfg.LogLevel)
	}
}
