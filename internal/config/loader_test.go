package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadYAML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.yaml", "endpoint: http://h:1\nanimation_ms: 900\nstrict: true\ncors_origins: [\"*\"]\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Endpoint != "http://h:1" || cfg.AnimationMS != 900 || !cfg.Strict || len(cfg.CORSOrigins) != 1 {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadJSON(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.json", `{"endpoint":"http://j","toast_ms":100,"log_level":"debug"}`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Endpoint != "http://j" || cfg.ToastMS != 100 || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadTOML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.toml", "endpoint=\"http://t\"\nconfetti_count=10\nstub_addr=\":9000\"\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Endpoint != "http://t" || cfg.ConfettiCount != 10 || cfg.StubAddr != ":9000" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error on empty path")
	}
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.txt", "not supported")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected unsupported extension error")
	}
}

func TestWithDefaults(t *testing.T) {
	cfg := Config{RequestTimeoutMS: -5}.WithDefaults()
	if cfg.Endpoint != DefaultEndpoint || cfg.AnimationDuration() != 1500*time.Millisecond {
		t.Fatalf("defaults: %+v", cfg)
	}
	if cfg.ToastDuration() != 5*time.Second || cfg.ScrollDelay() != 300*time.Millisecond {
		t.Fatalf("defaults: %+v", cfg)
	}
	if cfg.ConfettiCount != 50 || cfg.RequestTimeout() != 0 {
		t.Fatalf("defaults: %+v", cfg)
	}
	kept := Config{Endpoint: "http://x", AnimationMS: 10}.WithDefaults()
	if kept.Endpoint != "http://x" || kept.AnimationMS != 10 {
		t.Fatalf("explicit values overwritten: %+v", kept)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("HOMEPRICE_ENDPOINT", "http://env")
	t.Setenv("HOMEPRICE_LOG_LEVEL", "warn")
	cfg := Config{Endpoint: "http://file"}.ApplyEnv()
	if cfg.Endpoint != "http://env" || cfg.LogLevel != "warn" {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestLoadValues(t *testing.T) {
	d := t.TempDir()
	cases := map[string]string{
		"in.yaml": "bhk: 3\nsize_sqft: 1200.5\nfacing: \"2\"\nsecurity: null\n",
		"in.json": `{"bhk":3,"size_sqft":1200.5,"facing":"2","security":null}`,
		"in.toml": "bhk=3\nsize_sqft=1200.5\nfacing=\"2\"\n",
	}
	for name, body := range cases {
		p := writeTempFile(t, d, name, body)
		v, err := LoadValues(p)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if v["bhk"] != "3" || v["size_sqft"] != "1200.5" || v["facing"] != "2" {
			t.Fatalf("%s: unexpected values %v", name, v)
		}
		if s, ok := v["security"]; ok && s != "" {
			t.Fatalf("%s: null should be empty, got %q", name, s)
		}
	}
	p := writeTempFile(t, d, "nested.json", `{"bhk":{"x":1}}`)
	if _, err := LoadValues(p); err == nil {
		t.Fatalf("expected error for nested value")
	}
}
