package config

// ── Default values ───────────────────────────────────────────────────
//
// All defaults live here so they are easy to audit and reuse across
// CLI flags, config file parsing, and environment variable loading.

const (
	// DefaultDuck is the duck the demo is run on.
	DefaultDuck = "mallard"

	// DefaultFly is the fly behaviour the demo swaps in.
	DefaultFly = "rocket"

	// DefaultQuack is the quack behaviour the demo swaps in.
	DefaultQuack = "squeak"

	// DefaultMode runs the full swap sequence.
	DefaultMode = ModeDemo

	// DefaultColor highlights notices only on a terminal.
	DefaultColor = ColorAuto

	// DefaultVerbosity prints errors only; each -v raises it by one.
	DefaultVerbosity = 0
)

// Defaults returns a Config populated with every default.
func Defaults() *Config {
	return &Config{
		Duck:    DefaultDuck,
		Fly:     DefaultFly,
		Quack:   DefaultQuack,
		Mode:    DefaultMode,
		Color:   DefaultColor,
		Verbose: DefaultVerbosity,
	}
}
