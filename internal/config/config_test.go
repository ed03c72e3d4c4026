package config

import (
	"bytes"
	stderrors "errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hxo-dev/hxo/internal/errors"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Log.Level != DefaultLogLevel || cfg.Log.Format != DefaultLogFormat {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.Render.Indent != DefaultIndent {
		t.Errorf("Render.Indent = %q", cfg.Render.Indent)
	}
	if cfg.I18n.Locale != DefaultLocale || cfg.I18n.CacheSize != DefaultCacheSize {
		t.Errorf("I18n = %+v", cfg.I18n)
	}
	if cfg.Bench.Iterations != DefaultIterations || cfg.Bench.Width != DefaultWidth {
		t.Errorf("Bench = %+v", cfg.Bench)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := Load(tmpDir)
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Code != errors.CodeConfigMissing {
		t.Fatalf("Load(empty dir) = %v, want %s", err, errors.CodeConfigMissing)
	}

	path := writeConfig(t, tmpDir, `{
  "log": {"level": "debug", "format": "json"},
  "render": {"pretty": true},
  "bench": {"iterations": 50}
}`)

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if !cfg.Render.Pretty || cfg.Render.Indent != DefaultIndent {
		t.Errorf("Render = %+v", cfg.Render)
	}
	if cfg.Bench.Iterations != 50 || cfg.Bench.Width != DefaultWidth {
		t.Errorf("Bench = %+v", cfg.Bench)
	}
	if cfg.Path() != path || cfg.Dir() != tmpDir {
		t.Errorf("Path = %q Dir = %q", cfg.Path(), cfg.Dir())
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, "{\n  \"log\": {,\n}")

	_, err := Load(tmpDir)
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("expected *errors.Error, got %T", err)
	}
	if e.Code != errors.CodeConfigSyntax {
		t.Errorf("Code = %s", e.Code)
	}
	if e.Location == nil || e.Location.Line != 2 {
		t.Errorf("Location = %v, want line 2", e.Location)
	}
}

func TestLoadWrongType(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `{"bench": {"iterations": "many"}}`)

	_, err := Load(tmpDir)
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Location == nil {
		t.Fatalf("Load = %v, want located error", err)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	cfg := New()
	cfg.Log.Level = "warn"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Log.Level != "warn" {
		t.Errorf("Log.Level = %q", loaded.Log.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, true},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"negative cache", func(c *Config) { c.I18n.CacheSize = -1 }, true},
		{"negative width", func(c *Config) { c.Bench.Width = -3 }, true},
		{"warning alias", func(c *Config) { c.Log.Level = "WARNING" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{}`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := filepath.Abs(root)
	if got != want {
		t.Errorf("FindProjectRoot = %q, want %q", got, want)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvLogLevel:         " DEBUG ",
		EnvLogFormat:        "json",
		EnvRenderPretty:     "true",
		EnvLocale:           "fr",
		EnvMetricsNamespace: "",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := New()
	if err := cfg.ApplyEnv(lookup); err != nil {
		t.Fatal(err)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if !cfg.Render.Pretty || cfg.I18n.Locale != "fr" {
		t.Errorf("Render = %+v I18n = %+v", cfg.Render, cfg.I18n)
	}
	if cfg.Metrics.Namespace != DefaultNamespace {
		t.Errorf("empty variables should be ignored, got %q", cfg.Metrics.Namespace)
	}

	env[EnvRenderPretty] = "sometimes"
	if err := New().ApplyEnv(lookup); err == nil {
		t.Error("expected error for a non-boolean HXO_RENDER_PRETTY")
	}
}

func TestLoadDirWithEnvFile(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{"i18n": {"locale": "en"}}`)
	if err := os.WriteFile(filepath.Join(root, EnvFileName), []byte("HXO_LOCALE=de\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// godotenv does not override variables that are already set.
	t.Setenv(EnvLocale, "")
	os.Unsetenv(EnvLocale)

	cfg, err := LoadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.I18n.Locale != "de" {
		t.Errorf("I18n.Locale = %q, want de", cfg.I18n.Locale)
	}
}

func TestLoadDirWithoutConfig(t *testing.T) {
	cfg, err := LoadDir(t.TempDir())
	if err != nil {
		t.Fatalf("LoadDir without hxo.json should use defaults: %v", err)
	}
	if cfg.Path() != "" {
		t.Errorf("Path = %q, want empty", cfg.Path())
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := New()
	cfg.Log.Format = "json"
	cfg.Log.Level = "warn"

	logger := cfg.Logger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info should be filtered at warn level")
	}
	if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"k":"v"`) {
		t.Errorf("json output = %s", out)
	}

	if lvl, err := ParseLevel("error"); err != nil || lvl != slog.LevelError {
		t.Errorf("ParseLevel(error) = %v, %v", lvl, err)
	}
}
