// Package cmd wires up the CLI flags and dispatches to the run modes.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"golang.org/x/term"

	"simuduck/config"
	"simuduck/internal/behavior"
	"simuduck/internal/core"
	"simuduck/internal/duck"
	"simuduck/internal/metrics"
	"simuduck/internal/session"
	"simuduck/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X simuduck/cmd.version=2.0.0"
var version = "1.0.0" //nolint:gochecknoglobals

// Execute parses args and runs the selected mode against the process
// stdout and stderr.
func Execute(ctx context.Context, args []string) error {
	return Run(ctx, args, os.Stdout, os.Stderr)
}

// Run is Execute with explicit output streams.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("simuduck", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var f config.Config

	// ── duck ─────────────────────────────────────────────────────
	fs.StringVarP(&f.Duck, "duck", "d", config.DefaultDuck,
		"Duck kind ("+strings.Join(duck.Kinds(), "|")+")")
	fs.StringVar(&f.Fly, "fly", config.DefaultFly,
		"Fly behavior swapped in by the demo ("+strings.Join(behavior.FlyKeys(), "|")+")")
	fs.StringVar(&f.Quack, "quack", config.DefaultQuack,
		"Quack behavior swapped in by the demo ("+strings.Join(behavior.QuackKeys(), "|")+")")

	// ── run ──────────────────────────────────────────────────────
	fs.StringVarP(&f.Mode, "mode", "m", config.DefaultMode,
		"Run mode ("+strings.Join(config.Modes, "|")+")")
	fs.StringVar(&f.ConfigFile, "config", "", "YAML config file")
	fs.BoolVar(&f.DryRun, "dry-run", false, "Validate configuration and exit")

	// ── output ───────────────────────────────────────────────────
	fs.CountVarP(&f.Verbose, "verbose", "v", "Increase verbosity (repeatable)")
	fs.StringVar(&f.Color, "color", config.DefaultColor, "Highlight notices (auto|always|never)")
	fs.BoolVar(&f.Stats, "stats", false, "Print run statistics as JSON")

	var showVersion, showHelp bool
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")

	fs.Usage = func() { printUsage(fs, stderr) }

	// ── parse ────────────────────────────────────────────────────
	if err := fs.Parse(args); err != nil {
		return err
	}
	if showHelp {
		printUsage(fs, stderr)
		return nil
	}
	if showVersion {
		fmt.Fprintf(stdout, "simuduck %s\n", version)
		return nil
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q (use --help for usage)", fs.Arg(0))
	}

	cfg, err := resolveConfig(fs, &f)
	if err != nil {
		return err
	}

	// ── build components ─────────────────────────────────────────
	logger := util.NewLogger(cfg.Verbose)
	logger.SetOutput(stderr)
	logger.Debug("config: %s", cfg)

	m := metrics.New()
	sess := session.New(stdout, logger, m)
	sess.Color = useColor(cfg.Color, stdout)

	mode, err := core.Build(cfg, sess)
	if err != nil {
		return err
	}
	if cfg.DryRun {
		logger.Info("configuration valid (mode=%s)", cfg.Mode)
		return nil
	}

	if err := mode.Run(ctx); err != nil {
		m.RecordError(err.Error())
		return err
	}

	if cfg.Stats {
		fmt.Fprintln(stdout, m.JSON())
	}
	return nil
}

// ── helpers ──────────────────────────────────────────────────────────

// resolveConfig layers defaults, the config file, the environment and
// explicitly set flags, in that order, then validates the result.
func resolveConfig(fs *flag.FlagSet, f *config.Config) (*config.Config, error) {
	cfg := config.Defaults()
	if f.ConfigFile != "" {
		if err := config.LoadFile(f.ConfigFile, cfg); err != nil {
			return nil, err
		}
		cfg.ConfigFile = f.ConfigFile
	}
	config.LoadFromEnv(cfg)

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "duck":
			cfg.Duck = f.Duck
		case "fly":
			cfg.Fly = f.Fly
		case "quack":
			cfg.Quack = f.Quack
		case "mode":
			cfg.Mode = f.Mode
		case "verbose":
			cfg.Verbose = f.Verbose
		case "color":
			cfg.Color = f.Color
		case "stats":
			cfg.Stats = f.Stats
		}
	})
	cfg.DryRun = f.DryRun

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// useColor resolves the --color setting.  "auto" highlights only when
// stdout is a terminal.
func useColor(setting string, stdout io.Writer) bool {
	switch setting {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := stdout.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, `SimUDuck – strategy pattern demo v%s

Ducks delegate flying and quacking to behaviors that can be
swapped while the duck is alive.

Usage:
  simuduck [options]                     Run the swap demo on a mallard
  simuduck -m show -d rubber             Show a duck's default behaviors
  simuduck -m list                       List ducks and behaviors

Options:
`, version)
	fs.PrintDefaults()
	fmt.Fprintf(w, `
Examples:
  simuduck                               Mallard, then rocket, then squeak
  simuduck -d model --fly rocket         Give the model duck a rocket
  simuduck --quack mute --stats          Silence the duck, print counters
  SIMUDUCK_DUCK=decoy simuduck -m show   Pick the duck from the environment
`)
}
