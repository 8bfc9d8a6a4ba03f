package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveAndLoad_RoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "settings.json")

	want := Settings{ScanMode: ScanModeDiff, LastUpdated: "2026-07-31T00:00:00Z"}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestLoad_MissingFileDefaultsToBoth(t *testing.T) {
	dir := t.TempDir()
	got, err := Load(filepath.Join(dir, "missing.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ScanMode != ScanModeBoth {
		t.Fatalf("got %+v, want ScanMode=both", got)
	}
}

func TestRenderYAML_IncludesBothFields(t *testing.T) {
	out, err := RenderYAML(Settings{ScanMode: ScanModeRepo, LastUpdated: "2026-07-31"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "scan_mode: repo") || !strings.Contains(out, "last_updated:") {
		t.Fatalf("got %q", out)
	}
}
