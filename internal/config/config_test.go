package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseRunner(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
		t.Errorf("embedded YAML and DefaultRunnerConfig differ:\n yaml: %+v\n code: %+v", cfg, DefaultRunnerConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultRunnerConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadRunnerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runner.yaml")
	data := []byte(`
progression:
  base_speed: 9
obstacles:
  shapes:
    - { width: 10, height: 10 }
  gap_policy: once
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() error: %v", err)
	}

	if cfg.Progression.BaseSpeed != 9 {
		t.Errorf("base_speed = %g, expected 9", cfg.Progression.BaseSpeed)
	}
	if len(cfg.Obstacles.Shapes) != 1 {
		t.Errorf("shapes should be replaced, got %d entries", len(cfg.Obstacles.Shapes))
	}
	if cfg.Obstacles.GapPolicy != GapOnce {
		t.Errorf("gap_policy = %q, expected %q", cfg.Obstacles.GapPolicy, GapOnce)
	}
	// Keys not in the file keep their defaults
	if cfg.Physics.Gravity != DefaultRunnerConfig().Physics.Gravity {
		t.Errorf("gravity = %g, expected default", cfg.Physics.Gravity)
	}
}

func TestLoadRunnerCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadRunner(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRunner(bad); err == nil {
		t.Error("malformed custom config should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("obstacles:\n  min_gap: 700\n  max_gap: 100\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadRunner(invalid)
	if err == nil || !strings.Contains(err.Error(), "gap range") {
		t.Errorf("inverted gap range should be rejected, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
		want   string
	}{
		{"zero world", func(c *RunnerConfig) { c.World.Width = 0 }, "world size"},
		{"ground below world", func(c *RunnerConfig) { c.World.GroundY = 400 }, "ground_y"},
		{"no gravity", func(c *RunnerConfig) { c.Physics.Gravity = 0 }, "gravity"},
		{"downward jump", func(c *RunnerConfig) { c.Physics.JumpImpulse = 3 }, "jump_impulse"},
		{"empty catalog", func(c *RunnerConfig) { c.Obstacles.Shapes = nil }, "shapes must not be empty"},
		{"flat obstacle", func(c *RunnerConfig) { c.Obstacles.Shapes[0].Height = 0 }, "shapes[0]"},
		{"unknown policy", func(c *RunnerConfig) { c.Obstacles.GapPolicy = "sometimes" }, "gap_policy"},
		{"chance above one", func(c *RunnerConfig) { c.Decorations.Chance = 1.5 }, "decorations.chance"},
		{"stalled world", func(c *RunnerConfig) { c.Progression.BaseSpeed = 0 }, "base_speed"},
		{"negative interval", func(c *RunnerConfig) { c.Progression.Interval = -1 }, "interval"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestApplyRunnerPreset(t *testing.T) {
	base := DefaultRunnerConfig()

	easy := DefaultRunnerConfig()
	ApplyRunnerPreset(&easy, DifficultyEasy)
	if easy.Progression.BaseSpeed >= base.Progression.BaseSpeed {
		t.Errorf("easy should start slower than default, got %g", easy.Progression.BaseSpeed)
	}

	hard := DefaultRunnerConfig()
	ApplyRunnerPreset(&hard, DifficultyHard)
	if hard.Progression.BaseSpeed <= base.Progression.BaseSpeed {
		t.Errorf("hard should start faster than default, got %g", hard.Progression.BaseSpeed)
	}
	if hard.Obstacles.MaxGap >= base.Obstacles.MaxGap {
		t.Errorf("hard should tighten obstacle gaps, got max %g", hard.Obstacles.MaxGap)
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset should stay valid: %v", err)
	}

	fixed := DefaultRunnerConfig()
	ApplyRunnerPreset(&fixed, DifficultyFixed)
	if fixed.Progression.Increment != 0 || fixed.Progression.Interval != 0 {
		t.Errorf("fixed should disable speed-ups, got %+v", fixed.Progression)
	}
	if fixed.Progression.BaseSpeed != base.Progression.BaseSpeed {
		t.Errorf("fixed should keep base speed, got %g", fixed.Progression.BaseSpeed)
	}

	untouched := DefaultRunnerConfig()
	ApplyRunnerPreset(&untouched, "")
	if !reflect.DeepEqual(untouched, base) {
		t.Error("empty preset should not modify the config")
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) unexpected error: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}
