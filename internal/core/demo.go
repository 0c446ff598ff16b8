package core

import (
	"context"
	"fmt"

	"simuduck/internal/behavior"
	"simuduck/internal/duck"
	"simuduck/internal/session"
)

// DemoMode is the reference sequence: show the duck with its default
// behaviours, then swap in Fly and Quack one after the other and
// perform each again.
type DemoMode struct {
	Duck    duck.Duck
	Fly     behavior.FlyBehavior
	Quack   behavior.QuackBehavior
	Session *session.Session
}

// Run narrates the sequence through the session.
func (m *DemoMode) Run(ctx context.Context) error {
	sess, d := m.Session, m.Duck
	log := sess.Logger.With("demo")

	log.Verbose("running demo on %s (%s/%s)", d.Kind(),
		d.FlyBehavior().Name(), d.QuackBehavior().Name())

	return runSteps(ctx, []step{
		display(sess, d),
		performQuack(sess, d),
		performFly(sess, d),
		swim(sess, d),
		separator(sess),
		func() error {
			if err := d.SetFlyBehavior(m.Fly); err != nil {
				return fmt.Errorf("demo: %w", err)
			}
			return nil
		},
		performFly(sess, d),
		separator(sess),
		func() error {
			if err := d.SetQuackBehavior(m.Quack); err != nil {
				return fmt.Errorf("demo: %w", err)
			}
			return nil
		},
		performQuack(sess, d),
	})
}
