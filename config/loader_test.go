package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFromEnv_Strings(t *testing.T) {
	t.Setenv("SIMUDUCK_DUCK", "rubber")
	t.Setenv("SIMUDUCK_FLY", "wings")
	t.Setenv("SIMUDUCK_QUACK", "mute")
	t.Setenv("SIMUDUCK_MODE", "show")
	t.Setenv("SIMUDUCK_COLOR", "never")

	cfg := &Config{}
	LoadFromEnv(cfg)

	if cfg.Duck != "rubber" || cfg.Fly != "wings" || cfg.Quack != "mute" {
		t.Errorf("duck fields = %q/%q/%q", cfg.Duck, cfg.Fly, cfg.Quack)
	}
	if cfg.Mode != "show" || cfg.Color != "never" {
		t.Errorf("mode=%q color=%q", cfg.Mode, cfg.Color)
	}
}

func TestLoadFromEnv_Stats(t *testing.T) {
	for _, v := range []string{"1", "true", "yes", "TRUE", "Yes"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("SIMUDUCK_STATS", v)
			cfg := &Config{}
			LoadFromEnv(cfg)
			if !cfg.Stats {
				t.Error("Stats should be true")
			}
		})
	}
}

func TestLoadFromEnv_Verbose(t *testing.T) {
	t.Setenv("SIMUDUCK_VERBOSE", "3")
	cfg := &Config{}
	LoadFromEnv(cfg)
	if cfg.Verbose != 3 {
		t.Errorf("Verbose = %d, want 3", cfg.Verbose)
	}
}

// TestLoadFromEnv_VerboseZero checks that quiet mode can be requested
// from the environment over a file that raised verbosity.
func TestLoadFromEnv_VerboseZero(t *testing.T) {
	t.Setenv("SIMUDUCK_VERBOSE", "0")
	cfg := &Config{Verbose: 2}
	LoadFromEnv(cfg)
	if cfg.Verbose != 0 {
		t.Errorf("Verbose = %d, want 0", cfg.Verbose)
	}
}

func TestLoadFromEnv_InvalidIntIgnored(t *testing.T) {
	t.Setenv("SIMUDUCK_VERBOSE", "not-a-number")
	cfg := &Config{Verbose: 2}
	LoadFromEnv(cfg)
	if cfg.Verbose != 2 {
		t.Errorf("Verbose should stay 2 for invalid input, got %d", cfg.Verbose)
	}
}

func TestLoadFromEnv_NoOverrideWhenEmpty(t *testing.T) {
	for _, k := range []string{"SIMUDUCK_DUCK", "SIMUDUCK_MODE", "SIMUDUCK_VERBOSE"} {
		t.Setenv(k, "")
	}

	cfg := &Config{Duck: "model", Mode: "show", Verbose: 2}
	LoadFromEnv(cfg)

	if cfg.Duck != "model" || cfg.Mode != "show" || cfg.Verbose != 2 {
		t.Errorf("overridden: %s", cfg)
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "simuduck.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile_Overlay(t *testing.T) {
	path := writeFile(t, "duck: decoy\nfly: wings\nstats: true\n")

	cfg := Defaults()
	if err := LoadFile(path, cfg); err != nil {
		t.Fatal(err)
	}

	if cfg.Duck != "decoy" || cfg.Fly != "wings" || !cfg.Stats {
		t.Errorf("file values not applied: %s", cfg)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Quack != DefaultQuack || cfg.Mode != DefaultMode {
		t.Errorf("defaults lost: %s", cfg)
	}
}

func TestLoadFile_Empty(t *testing.T) {
	cfg := Defaults()
	if err := LoadFile(writeFile(t, ""), cfg); err != nil {
		t.Fatalf("empty file should be accepted: %v", err)
	}
	if cfg.Duck != DefaultDuck {
		t.Errorf("Duck = %q", cfg.Duck)
	}
}

func TestLoadFile_UnknownKey(t *testing.T) {
	err := LoadFile(writeFile(t, "duk: mallard\n"), Defaults())
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "duk") {
		t.Errorf("error should name the key, got %v", err)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"), Defaults())
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

// TestPrecedence checks file < env.
func TestPrecedence(t *testing.T) {
	path := writeFile(t, "duck: decoy\nquack: mute\n")
	t.Setenv("SIMUDUCK_DUCK", "rubber")

	cfg := Defaults()
	if err := LoadFile(path, cfg); err != nil {
		t.Fatal(err)
	}
	LoadFromEnv(cfg)

	if cfg.Duck != "rubber" {
		t.Errorf("env should win over file, Duck = %q", cfg.Duck)
	}
	if cfg.Quack != "mute" {
		t.Errorf("file should win over default, Quack = %q", cfg.Quack)
	}
}
