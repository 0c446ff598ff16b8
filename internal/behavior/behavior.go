// Package behavior defines the interchangeable strategies a duck
// delegates to.  Each behaviour is an interface with a single
// operation; variants are stateless values, so one instance may be
// shared by any number of ducks.
//
// Operations return their effect as text rather than printing it.
// Presentation belongs to the session (see internal/session).
package behavior

// FlyBehavior is the flying strategy.
type FlyBehavior interface {
	// Name identifies the variant, e.g. "FlyRocketPowered".
	Name() string
	// Fly returns the effect of flying.
	Fly() string
}

// QuackBehavior is the quacking strategy.
type QuackBehavior interface {
	// Name identifies the variant, e.g. "Squeak".
	Name() string
	// Quack returns the effect of quacking.
	Quack() string
}
