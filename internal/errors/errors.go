// Package errors provides domain-specific error types for simuduck.
//
// These types carry structured context (operation, capability, the
// offending key) so callers and the CLI can print actionable messages
// instead of plain wrapped strings.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	// ErrUnimplemented marks a capability or duck operation that has no
	// concrete implementation behind it.
	ErrUnimplemented   = errors.New("unimplemented abstract operation")
	ErrUnknownDuck     = errors.New("unknown duck kind")
	ErrUnknownBehavior = errors.New("unknown behavior")
)

// ── Structured error types ───────────────────────────────────────────

// UnimplementedError reports an operation that reached a missing
// capability.  It always unwraps to ErrUnimplemented.
type UnimplementedError struct {
	Op         string // "new", "set"
	Capability string // "fly" or "quack"
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("%s %s behavior: %v", e.Op, e.Capability, ErrUnimplemented)
}

func (e *UnimplementedError) Unwrap() error { return ErrUnimplemented }

// BehaviorError represents a lookup of a duck kind or capability
// variant that is not registered.
type BehaviorError struct {
	Kind  string   // "duck", "fly", "quack"
	Key   string   // the key that was requested
	Known []string // valid keys, listed in the message
	Err   error    // ErrUnknownDuck or ErrUnknownBehavior
}

func (e *BehaviorError) Error() string {
	msg := fmt.Sprintf("%s %q: %v", e.Kind, e.Key, e.Err)
	if len(e.Known) > 0 {
		msg += " (known: " + strings.Join(e.Known, ", ") + ")"
	}
	return msg
}

func (e *BehaviorError) Unwrap() error { return e.Err }

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	Field   string      // config field name
	Value   interface{} // the invalid value (nil if missing)
	Message string      // human-readable explanation
	Hint    string      // suggestion for the user (optional)
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("config: --%s", e.Field)
	if e.Value != nil {
		msg += fmt.Sprintf("=%v", e.Value)
	}
	msg += ": " + e.Message
	if e.Hint != "" {
		msg += "\n  hint: " + e.Hint
	}
	return msg
}

// ── Constructors ─────────────────────────────────────────────────────

// Unimplemented creates an UnimplementedError.
func Unimplemented(op, capability string) *UnimplementedError {
	return &UnimplementedError{Op: op, Capability: capability}
}

// UnknownDuck creates a BehaviorError for an unregistered duck kind.
func UnknownDuck(key string, known []string) *BehaviorError {
	return &BehaviorError{Kind: "duck", Key: key, Known: known, Err: ErrUnknownDuck}
}

// UnknownBehavior creates a BehaviorError for an unregistered
// capability variant of the given kind ("fly" or "quack").
func UnknownBehavior(kind, key string, known []string) *BehaviorError {
	return &BehaviorError{Kind: kind, Key: key, Known: known, Err: ErrUnknownBehavior}
}

// ── Classification helpers ───────────────────────────────────────────

// IsUnimplemented reports whether err stems from a missing capability.
func IsUnimplemented(err error) bool {
	return errors.Is(err, ErrUnimplemented)
}

// IsUnknown reports whether err is a failed duck or behavior lookup.
func IsUnknown(err error) bool {
	return errors.Is(err, ErrUnknownDuck) || errors.Is(err, ErrUnknownBehavior)
}

// ── Re-exports for convenience ───────────────────────────────────────
//
// These allow callers to use simuduck/internal/errors as a drop-in
// replacement for the standard library in common operations.

// As is [errors.As].
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// New is [errors.New].
func New(text string) error { return errors.New(text) }

// Unwrap is [errors.Unwrap].
func Unwrap(err error) error { return errors.Unwrap(err) }

// Join is [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }
