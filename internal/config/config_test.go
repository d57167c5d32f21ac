package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.AuthURL != "" || cfg.WallpaperURL != "" {
		t.Fatalf("endpoint urls = %q/%q, want empty defaults", cfg.AuthURL, cfg.WallpaperURL)
	}
	if !strings.HasPrefix(cfg.DataDir, home) {
		t.Fatalf("DataDir = %q, want under home %q", cfg.DataDir, home)
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	tmp := t.TempDir()
	cfgFile := filepath.Join(tmp, "config.toml")
	body := "auth_url = \"https://auth.example.com\"\n" +
		"wallpaper_url = \"https://wall.example.com\"\n" +
		"data_dir = \"" + filepath.Join(tmp, "data") + "\"\n"
	if err := os.WriteFile(cfgFile, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(cfgFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.AuthURL != "https://auth.example.com" {
		t.Fatalf("AuthURL = %q", cfg.AuthURL)
	}
	if cfg.WallpaperURL != "https://wall.example.com" {
		t.Fatalf("WallpaperURL = %q", cfg.WallpaperURL)
	}
	if cfg.DataDir != filepath.Join(tmp, "data") {
		t.Fatalf("DataDir = %q", cfg.DataDir)
	}
}

func TestLoad_InvalidTOMLIsAnError(t *testing.T) {
	tmp := t.TempDir()
	cfgFile := filepath.Join(tmp, "config.toml")
	if err := os.WriteFile(cfgFile, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(cfgFile); err == nil {
		t.Fatalf("Load accepted invalid TOML")
	}
}

func TestSessionDBPath(t *testing.T) {
	cfg := Config{DataDir: "/tmp/mural-data"}
	if got := cfg.SessionDBPath(); got != "/tmp/mural-data/session.db" {
		t.Fatalf("SessionDBPath = %q", got)
	}
}
