// Package duck implements the duck family.  A duck does not fly or
// quack by itself: it holds a FlyBehavior and a QuackBehavior and
// delegates to whichever pair is bound at the moment.  Either one can
// be replaced while the duck is alive.
//
// Base carries the shared state and behaviour but has no Display, so
// it does not satisfy Duck on its own.  Every concrete duck embeds a
// *Base and supplies Display; the compiler rejects one that forgets.
package duck

import (
	"fmt"

	"simuduck/internal/behavior"
	sderr "simuduck/internal/errors"
)

// Duck is the full contract of a concrete duck.
type Duck interface {
	Kind() string
	Display() string
	PerformFly() string
	PerformQuack() string
	Swim() string

	FlyBehavior() behavior.FlyBehavior
	QuackBehavior() behavior.QuackBehavior
	SetFlyBehavior(b behavior.FlyBehavior) error
	SetQuackBehavior(b behavior.QuackBehavior) error
}

// SwimEffect is what every duck does in water, whatever its behaviours.
const SwimEffect = "All ducks float, even decoys!"

// Capability names carried in Change and in errors.
const (
	CapabilityFly   = "fly"
	CapabilityQuack = "quack"
)

// Change describes one successful behaviour replacement.
type Change struct {
	Duck       string // duck kind
	Capability string // CapabilityFly or CapabilityQuack
	From       string // previous variant name
	To         string // new variant name
}

func (c Change) String() string {
	return fmt.Sprintf("Changing %s behavior to %s", c.Capability, c.To)
}

// ChangeHook is notified after a behaviour has been replaced.
type ChangeHook func(Change)

// Option configures a Base at construction time.
type Option func(*Base)

// WithChangeHook registers fn to be called on every behaviour swap.
func WithChangeHook(fn ChangeHook) Option {
	return func(b *Base) { b.onChange = fn }
}

// Base is the state shared by all ducks: the two bound behaviours.
type Base struct {
	kind     string
	fly      behavior.FlyBehavior
	quack    behavior.QuackBehavior
	onChange ChangeHook
}

// NewBase binds both behaviours.  A nil behaviour has no operation to
// delegate to, so it is rejected with ErrUnimplemented.
func NewBase(kind string, fly behavior.FlyBehavior, quack behavior.QuackBehavior, opts ...Option) (*Base, error) {
	if fly == nil {
		return nil, sderr.Unimplemented("new", CapabilityFly)
	}
	if quack == nil {
		return nil, sderr.Unimplemented("new", CapabilityQuack)
	}
	b := &Base{kind: kind, fly: fly, quack: quack}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// mustBase is for the concrete constructors, whose defaults are never nil.
func mustBase(kind string, fly behavior.FlyBehavior, quack behavior.QuackBehavior, opts []Option) *Base {
	b, err := NewBase(kind, fly, quack, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// Kind returns the registry key of the duck, e.g. "mallard".
func (b *Base) Kind() string { return b.kind }

// PerformFly delegates to the bound FlyBehavior.
func (b *Base) PerformFly() string { return b.fly.Fly() }

// PerformQuack delegates to the bound QuackBehavior.
func (b *Base) PerformQuack() string { return b.quack.Quack() }

// Swim is common to the whole family and is not delegated.
func (b *Base) Swim() string { return SwimEffect }

func (b *Base) FlyBehavior() behavior.FlyBehavior     { return b.fly }
func (b *Base) QuackBehavior() behavior.QuackBehavior { return b.quack }

// SetFlyBehavior replaces the fly behaviour for all later PerformFly
// calls.  On error the previous behaviour stays bound.
func (b *Base) SetFlyBehavior(fb behavior.FlyBehavior) error {
	if fb == nil {
		return sderr.Unimplemented("set", CapabilityFly)
	}
	prev := b.fly
	b.fly = fb
	b.notify(CapabilityFly, prev.Name(), fb.Name())
	return nil
}

// SetQuackBehavior replaces the quack behaviour for all later
// PerformQuack calls.  On error the previous behaviour stays bound.
func (b *Base) SetQuackBehavior(qb behavior.QuackBehavior) error {
	if qb == nil {
		return sderr.Unimplemented("set", CapabilityQuack)
	}
	prev := b.quack
	b.quack = qb
	b.notify(CapabilityQuack, prev.Name(), qb.Name())
	return nil
}

func (b *Base) notify(capability, from, to string) {
	if b.onChange == nil {
		return
	}
	b.onChange(Change{Duck: b.kind, Capability: capability, From: from, To: to})
}
