package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/unkn0wn-root/brcache"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadFromYAML(t *testing.T) {
	path := writeFile(t, "brcache.yaml", `
prefix: "app-"
compressor: zstd
zstd_level: 2
compress_threshold: 512
ttl: 5m
`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Prefix != "app-" || s.Compressor != "zstd" || s.ZstdLevel != 2 {
		t.Fatalf("unexpected settings: %+v", s)
	}
	if s.CompressThreshold != 512 || s.TTL != 5*time.Minute {
		t.Fatalf("unexpected settings: %+v", s)
	}
	comp, err := s.NewCompressor()
	if err != nil {
		t.Fatalf("NewCompressor: %v", err)
	}
	if comp.Name() != "zstd" {
		t.Fatalf("compressor = %q", comp.Name())
	}
}

func TestLoadDefaultsAndEnv(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Compressor != "brotli" || s.Prefix != "" || s.TTL != 0 {
		t.Fatalf("unexpected defaults: %+v", s)
	}

	t.Setenv("BRCACHE_COMPRESSOR", "s2")
	t.Setenv("BRCACHE_COMPRESS_THRESHOLD", "2048")
	s, err = Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Compressor != "s2" || s.CompressThreshold != 2048 {
		t.Fatalf("env overlay not applied: %+v", s)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "brcache.yaml", "compressor: gzip\n")
	t.Setenv("BRCACHE_COMPRESSOR", "snappy")
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Compressor != "snappy" {
		t.Fatalf("env must win over file, got %q", s.Compressor)
	}
}

func TestNewCompressorRejectsUnknown(t *testing.T) {
	if _, err := (Settings{Compressor: "lz4"}).NewCompressor(); err == nil {
		t.Fatalf("expected error for unknown compressor")
	}
}

func TestApply(t *testing.T) {
	s := Settings{
		Compressor:        "none",
		Prefix:            "cfg-",
		CompressThreshold: 256,
		TTL:               time.Minute,
	}
	var opts brcache.Options[string]
	if err := Apply(s, &opts); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if opts.Prefix != "cfg-" || opts.CompressThreshold != 256 || opts.TTL != time.Minute {
		t.Fatalf("options not applied: %+v", opts)
	}
	if opts.Compressor == nil || opts.Compressor.Name() != "none" {
		t.Fatalf("compressor not applied")
	}
	if err := Apply(Settings{Compressor: "bogus"}, &opts); err == nil {
		t.Fatalf("expected error for bogus compressor")
	}
}
