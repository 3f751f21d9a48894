package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("QSOLOG_CONFIG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Layout.Dir != "layouts" {
		t.Fatalf("layout dir = %q, want layouts", cfg.Layout.Dir)
	}
	want := filepath.Join(home, ".local", "share", "qsolog", "qsolog.db")
	if cfg.Database.Path != want {
		t.Fatalf("db path = %q, want %q", cfg.Database.Path, want)
	}
	if got := cfg.LayoutResource(); got != filepath.Join("layouts", "qsolog.toml") {
		t.Fatalf("layout resource = %q", got)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("QSOLOG_CONFIG", "")
	t.Setenv("QSOLOG_DATABASE_PATH", "/tmp/other.db")
	t.Setenv("QSOLOG_STATION_CALLSIGN", "M0XYZ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Database.Path != "/tmp/other.db" {
		t.Fatalf("db path = %q", cfg.Database.Path)
	}
	if cfg.Station.Callsign != "M0XYZ" {
		t.Fatalf("callsign = %q", cfg.Station.Callsign)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "[station]\ncallsign = \"G4ABC\"\n\n[layout]\ndir = \"/usr/share/qsolog/layouts\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("HOME", dir)
	t.Setenv("QSOLOG_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Station.Callsign != "G4ABC" {
		t.Fatalf("callsign = %q", cfg.Station.Callsign)
	}
	if cfg.Layout.Dir != "/usr/share/qsolog/layouts" {
		t.Fatalf("layout dir = %q", cfg.Layout.Dir)
	}
}
