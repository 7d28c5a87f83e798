package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Coalesce || cfg.TraceFormat != "text" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_OverridesOnlySpecifiedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".blangrc.yaml")
	if err := os.WriteFile(path, []byte("failOnDiagnostic: false\ncoalesce: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.FailOnDiagnostic {
		t.Errorf("expected FailOnDiagnostic=false (explicit override)")
	}
	if cfg.Coalesce {
		t.Errorf("expected Coalesce=false (explicit override)")
	}
	if cfg.TraceFormat != "text" {
		t.Errorf("expected TraceFormat to keep its default, got %q", cfg.TraceFormat)
	}
}
