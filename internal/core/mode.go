// Package core is the orchestration layer.  It composes ducks,
// behaviours and the console session into complete run modes and
// provides a builder that selects the right mode from a Config.
//
// Architecture layers (bottom → top):
//
//	behavior  →  duck  →  session  →  core  →  cmd (CLI)
package core

import (
	"context"

	"simuduck/internal/duck"
	"simuduck/internal/metrics"
	"simuduck/internal/session"
)

// Mode represents a complete run of simuduck (demo, show or list).
type Mode interface {
	Run(ctx context.Context) error
}

// step is one narrated action of a mode.
type step func() error

// runSteps executes steps in order, stopping early if ctx is done.
func runSteps(ctx context.Context, steps []step) error {
	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s(); err != nil {
			return err
		}
	}
	return nil
}

// ── shared steps ─────────────────────────────────────────────────────

func display(sess *session.Session, d duck.Duck) step {
	return func() error {
		sess.Metrics.Record(metrics.ActionDisplay)
		sess.Say(d.Display())
		return nil
	}
}

func performFly(sess *session.Session, d duck.Duck) step {
	return func() error {
		sess.Metrics.Record(metrics.ActionFly)
		sess.Say(d.PerformFly())
		return nil
	}
}

func performQuack(sess *session.Session, d duck.Duck) step {
	return func() error {
		sess.Metrics.Record(metrics.ActionQuack)
		sess.Say(d.PerformQuack())
		return nil
	}
}

func swim(sess *session.Session, d duck.Duck) step {
	return func() error {
		sess.Metrics.Record(metrics.ActionSwim)
		sess.Say(d.Swim())
		return nil
	}
}

func separator(sess *session.Session) step {
	return func() error {
		sess.Break()
		return nil
	}
}
