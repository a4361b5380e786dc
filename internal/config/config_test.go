package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ImTheFrack/VibeManga/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.Paths.LibraryRoot != filepath.Join(tempHome, "manga") {
		t.Fatalf("unexpected library root: %q", cfg.Paths.LibraryRoot)
	}
	if cfg.Workers.ScanPoolSize != 8 {
		t.Fatalf("unexpected scan pool size: %d", cfg.Workers.ScanPoolSize)
	}
	if len(cfg.Parsing.NoisePhrases) == 0 {
		t.Fatal("expected default noise phrases to be populated")
	}
}

func TestLoadFromFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vibemanga.toml")
	contents := `
[paths]
library_root = "` + filepath.Join(dir, "library") + `"

[workers]
scan_pool_size = 3

[renamer]
preferred_title = "romanized"
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved != path {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if cfg.Workers.ScanPoolSize != 3 {
		t.Fatalf("unexpected scan pool size: %d", cfg.Workers.ScanPoolSize)
	}
	if cfg.Renamer.PreferredTitle != "romanized" {
		t.Fatalf("unexpected preferred title: %q", cfg.Renamer.PreferredTitle)
	}
	// Fields left unset in the file still receive repository defaults.
	if cfg.Cache.MaxAgeSeconds != 3000 {
		t.Fatalf("unexpected cache max age: %d", cfg.Cache.MaxAgeSeconds)
	}
}

func TestValidateRejectsBadPreferredTitle(t *testing.T) {
	cfg := config.Default()
	cfg.Renamer.PreferredTitle = "klingon"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for bad preferred_title")
	}
}

func TestValidateRejectsOutOfRangeThreshold(t *testing.T) {
	cfg := config.Default()
	cfg.Matching.FuzzyAcceptThreshold = 1.5
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for out-of-range threshold")
	}
}

func TestValidateRejectsBadYearWindow(t *testing.T) {
	cfg := config.Default()
	cfg.Parsing.YearMin = 2000
	cfg.Parsing.YearMax = 1999
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for inverted year window")
	}
}
