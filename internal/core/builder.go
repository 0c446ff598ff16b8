package core

import (
	"fmt"

	"simuduck/config"
	"simuduck/internal/behavior"
	"simuduck/internal/duck"
	"simuduck/internal/session"
)

// Build constructs the appropriate Mode from the given configuration.
// cfg is expected to have passed Validate.
func Build(cfg *config.Config, sess *session.Session) (Mode, error) {
	switch cfg.Mode {
	case config.ModeList:
		return &ListMode{Session: sess}, nil
	case config.ModeShow:
		return buildShow(cfg, sess)
	case config.ModeDemo:
		return buildDemo(cfg, sess)
	default:
		return nil, fmt.Errorf("unknown mode %q", cfg.Mode)
	}
}

// ── mode builders ────────────────────────────────────────────────────

func buildShow(cfg *config.Config, sess *session.Session) (Mode, error) {
	d, err := buildDuck(cfg, sess)
	if err != nil {
		return nil, err
	}
	return &ShowMode{Duck: d, Session: sess}, nil
}

func buildDemo(cfg *config.Config, sess *session.Session) (Mode, error) {
	d, err := buildDuck(cfg, sess)
	if err != nil {
		return nil, err
	}
	fb, err := behavior.LookupFly(cfg.Fly)
	if err != nil {
		return nil, err
	}
	qb, err := behavior.LookupQuack(cfg.Quack)
	if err != nil {
		return nil, err
	}
	return &DemoMode{Duck: d, Fly: fb, Quack: qb, Session: sess}, nil
}

// ── shared helpers ───────────────────────────────────────────────────

// buildDuck creates the configured duck with its swaps announced
// through the session and counted in the metrics.
func buildDuck(cfg *config.Config, sess *session.Session) (duck.Duck, error) {
	log := sess.Logger.With("duck")
	return duck.New(cfg.Duck, duck.WithChangeHook(func(c duck.Change) {
		sess.Notice(c.String())
		sess.Metrics.BehaviorSwapped(c.Capability)
		log.Verbose("%s: %s %s -> %s", c.Duck, c.Capability, c.From, c.To)
	}))
}
