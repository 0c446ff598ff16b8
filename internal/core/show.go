package core

import (
	"context"

	"simuduck/internal/duck"
	"simuduck/internal/session"
)

// ShowMode presents a duck with its default behaviours and no swaps.
type ShowMode struct {
	Duck    duck.Duck
	Session *session.Session
}

// Run narrates display, quack, fly and swim.
func (m *ShowMode) Run(ctx context.Context) error {
	sess, d := m.Session, m.Duck
	return runSteps(ctx, []step{
		display(sess, d),
		performQuack(sess, d),
		performFly(sess, d),
		swim(sess, d),
	})
}
