// Package config defines the runtime configuration for simuduck and
// validates duck kinds, behaviour keys and modes before anything runs.
package config

import (
	"fmt"
	"strings"

	"simuduck/internal/behavior"
	"simuduck/internal/duck"
	sderr "simuduck/internal/errors"
)

// Config holds every tuneable for a single simuduck run.  The yaml tags
// are the keys accepted by LoadFile.
type Config struct {
	// ── Duck ─────────────────────────────────────────────────────────
	Duck  string `yaml:"duck"`  // duck kind, e.g. "mallard"
	Fly   string `yaml:"fly"`   // fly behaviour swapped in by the demo
	Quack string `yaml:"quack"` // quack behaviour swapped in by the demo

	// ── Run ──────────────────────────────────────────────────────────
	Mode   string `yaml:"mode"` // demo, show or list
	DryRun bool   `yaml:"-"`

	// ── Output ───────────────────────────────────────────────────────
	Verbose int    `yaml:"verbose"`
	Color   string `yaml:"color"` // auto, always or never
	Stats   bool   `yaml:"stats"`

	ConfigFile string `yaml:"-"` // path given with --config
}

// Modes accepted by Validate, in display order.
var Modes = []string{ModeDemo, ModeShow, ModeList}

// Mode names.
const (
	ModeDemo = "demo"
	ModeShow = "show"
	ModeList = "list"
)

// Color settings.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Normalize lower-cases and trims every enumerated field.
func (c *Config) Normalize() {
	c.Duck = norm(c.Duck)
	c.Fly = norm(c.Fly)
	c.Quack = norm(c.Quack)
	c.Mode = norm(c.Mode)
	c.Color = norm(c.Color)
}

// ── Validation ───────────────────────────────────────────────────────

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if !contains(Modes, c.Mode) {
		return &sderr.ConfigError{
			Field:   "mode",
			Value:   c.Mode,
			Message: "unknown mode",
			Hint:    "use one of " + strings.Join(Modes, ", "),
		}
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return &sderr.ConfigError{
			Field:   "color",
			Value:   c.Color,
			Message: "unknown color setting",
			Hint:    "use auto, always or never",
		}
	}

	if c.Verbose < 0 {
		return &sderr.ConfigError{Field: "verbose", Value: c.Verbose, Message: "must not be negative"}
	}

	// List mode ignores the duck settings entirely.
	if c.Mode == ModeList {
		return nil
	}

	if c.Duck == "" {
		return &sderr.ConfigError{
			Field:   "duck",
			Message: "required",
			Hint:    "use one of " + strings.Join(duck.Kinds(), ", "),
		}
	}
	if !contains(duck.Kinds(), c.Duck) {
		return &sderr.ConfigError{
			Field:   "duck",
			Value:   c.Duck,
			Message: "unknown duck kind",
			Hint:    "use one of " + strings.Join(duck.Kinds(), ", "),
		}
	}

	if c.Mode == ModeDemo {
		if _, err := behavior.LookupFly(c.Fly); err != nil {
			return &sderr.ConfigError{
				Field:   "fly",
				Value:   c.Fly,
				Message: "unknown fly behavior",
				Hint:    "use one of " + strings.Join(behavior.FlyKeys(), ", "),
			}
		}
		if _, err := behavior.LookupQuack(c.Quack); err != nil {
			return &sderr.ConfigError{
				Field:   "quack",
				Value:   c.Quack,
				Message: "unknown quack behavior",
				Hint:    "use one of " + strings.Join(behavior.QuackKeys(), ", "),
			}
		}
	}

	return nil
}

// String renders the effective configuration for debug logging.
func (c *Config) String() string {
	return fmt.Sprintf("mode=%s duck=%s fly=%s quack=%s color=%s stats=%t verbose=%d",
		c.Mode, c.Duck, c.Fly, c.Quack, c.Color, c.Stats, c.Verbose)
}

// ── helpers ──────────────────────────────────────────────────────────

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
