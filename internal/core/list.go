package core

import (
	"context"
	"fmt"

	"simuduck/internal/behavior"
	"simuduck/internal/duck"
	"simuduck/internal/session"
)

// ListMode prints every duck kind and behaviour key the CLI accepts.
type ListMode struct {
	Session *session.Session
}

// Run lists ducks with their defaults, then fly and quack behaviours
// with their effects.
func (m *ListMode) Run(ctx context.Context) error {
	sess := m.Session

	sess.Say("Ducks:")
	for _, kind := range duck.Kinds() {
		if err := ctx.Err(); err != nil {
			return err
		}
		d, err := duck.New(kind)
		if err != nil {
			return err
		}
		sess.Say(fmt.Sprintf("  %-8s %s (%s, %s)", kind, d.Display(),
			d.FlyBehavior().Name(), d.QuackBehavior().Name()))
	}

	sess.Say("Fly behaviors:")
	for _, key := range behavior.FlyKeys() {
		b, err := behavior.LookupFly(key)
		if err != nil {
			return err
		}
		sess.Say(fmt.Sprintf("  %-8s %-18s %s", key, b.Name(), b.Fly()))
	}

	sess.Say("Quack behaviors:")
	for _, key := range behavior.QuackKeys() {
		b, err := behavior.LookupQuack(key)
		if err != nil {
			return err
		}
		sess.Say(fmt.Sprintf("  %-8s %-18s %s", key, b.Name(), b.Quack()))
	}
	return nil
}
