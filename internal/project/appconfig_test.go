package project

import (
	"path/filepath"
	"testing"

	"github.com/piwi3910/StairMason/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultSlabSize = "60 x 40"
	cfg.DefaultGapMM = 5
	cfg.Theme = "dark"
	cfg.RecentJobs = []string{"/tmp/garden.toml", "/tmp/terrace.toml"}

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	if loaded.DefaultSlabSize != "60 x 40" {
		t.Errorf("expected DefaultSlabSize=60 x 40, got %s", loaded.DefaultSlabSize)
	}
	if loaded.DefaultGapMM != 5 {
		t.Errorf("expected DefaultGapMM=5, got %f", loaded.DefaultGapMM)
	}
	if loaded.Theme != "dark" {
		t.Errorf("expected Theme=dark, got %s", loaded.Theme)
	}
	if len(loaded.RecentJobs) != 2 {
		t.Errorf("expected 2 recent jobs, got %d", len(loaded.RecentJobs))
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}

	defaults := model.DefaultAppConfig()
	if cfg.DefaultSlabSize != defaults.DefaultSlabSize {
		t.Errorf("expected default slab size %s, got %s", defaults.DefaultSlabSize, cfg.DefaultSlabSize)
	}
	if cfg.Theme != "system" {
		t.Errorf("expected theme=system, got %s", cfg.Theme)
	}
	if cfg.RecentJobs == nil {
		t.Error("RecentJobs should never be nil")
	}
}

func TestAppConfigAppliesToSettings(t *testing.T) {
	cfg := model.DefaultAppConfig()
	cfg.DefaultSlabSize = "120 x 60"
	cfg.DefaultCutPolicy = string(model.TwoCuts)

	settings := model.DefaultEstimateSettings()
	cfg.ApplyToSettings(&settings)

	if settings.SlabSize != "120 x 60" {
		t.Errorf("expected applied slab size, got %s", settings.SlabSize)
	}
	if settings.Policy != model.TwoCuts {
		t.Errorf("expected applied cut policy, got %s", settings.Policy)
	}
}
