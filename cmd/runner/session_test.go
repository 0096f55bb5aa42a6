package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRuntimeConfigSeed(t *testing.T) {
	flagFPS = 30
	flagSeed = 42
	defer func() { flagFPS, flagSeed = 60, 0 }()

	cfg := runtimeConfig(100, 40)
	if cfg.Seed != 42 || cfg.TickRate != 30 || cfg.ScreenW != 100 || cfg.ScreenH != 40 {
		t.Errorf("runtimeConfig() = %+v", cfg)
	}

	flagSeed = 0
	if runtimeConfig(0, 0).Seed == 0 {
		t.Error("a zero seed flag should pick a time-based seed")
	}
}

func TestApplyRunFlags(t *testing.T) {
	defer func() { flagDifficulty, flagConfig = "", "" }()

	flagDifficulty = "hard"
	if err := applyRunFlags(); err != nil {
		t.Errorf("valid preset rejected: %v", err)
	}

	flagDifficulty = "insane"
	if err := applyRunFlags(); err == nil {
		t.Error("unknown preset should be rejected")
	}

	flagDifficulty = ""
	flagConfig = filepath.Join(t.TempDir(), "missing.yaml")
	if err := applyRunFlags(); err == nil {
		t.Error("missing config file should be rejected")
	}

	flagConfig = ""
	for _, fps := range []int{0, -30} {
		flagFPS = fps
		if err := applyRunFlags(); err == nil {
			t.Errorf("--fps %d should be rejected", fps)
		}
	}
	flagFPS = 60

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("obstacles:\n  min_gap: 900\n  max_gap: 100\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	flagConfig = bad
	if err := applyRunFlags(); err == nil {
		t.Error("invalid config should be rejected")
	}
}

func TestOpenSoundMuted(t *testing.T) {
	flagMute = true
	defer func() { flagMute = false }()

	sink, closeFn := openSound()
	if sink != nil {
		t.Error("muted run should have no sound sink")
	}
	closeFn()
}

func TestSetupLoggingToFile(t *testing.T) {
	flagLogPath = filepath.Join(t.TempDir(), "runner.log")
	defer func() { flagLogPath = "" }()

	closeFn, err := setupLogging(os.Stderr)
	if err != nil {
		t.Fatalf("setupLogging() error: %v", err)
	}
	closeFn()

	if _, err := os.Stat(flagLogPath); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}
