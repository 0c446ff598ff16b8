// Package metrics provides lightweight, lock-free counters for
// tracking what happened during a simuduck run: how often ducks flew,
// quacked and swam, and how many behaviours were swapped.
//
// All methods are safe for concurrent use.  A nil *Collector is a
// valid no-op receiver, so callers never need to nil-check.
package metrics

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"
)

// Action is a duck operation counted by the collector.
type Action int

const (
	ActionDisplay Action = iota
	ActionFly
	ActionQuack
	ActionSwim
)

// Collector tracks runtime metrics for a run.
// A nil Collector is safe to use — all methods become no-ops.
type Collector struct {
	displays    atomic.Int64
	flights     atomic.Int64
	quacks      atomic.Int64
	swims       atomic.Int64
	flySwaps    atomic.Int64
	quackSwaps  atomic.Int64
	errorsTotal atomic.Int64

	mu           sync.RWMutex
	startTime    time.Time
	lastError    time.Time
	lastErrorMsg string
}

// New creates a metrics collector with the start time set to now.
func New() *Collector {
	return &Collector{startTime: time.Now()}
}

// ── Action metrics ───────────────────────────────────────────────────

// Record counts one performed action.
func (c *Collector) Record(a Action) {
	if c == nil {
		return
	}
	switch a {
	case ActionDisplay:
		c.displays.Add(1)
	case ActionFly:
		c.flights.Add(1)
	case ActionQuack:
		c.quacks.Add(1)
	case ActionSwim:
		c.swims.Add(1)
	}
}

// Flights returns how many times a duck performed fly.
func (c *Collector) Flights() int64 {
	if c == nil {
		return 0
	}
	return c.flights.Load()
}

// Quacks returns how many times a duck performed quack.
func (c *Collector) Quacks() int64 {
	if c == nil {
		return 0
	}
	return c.quacks.Load()
}

// ── Swap metrics ─────────────────────────────────────────────────────

// BehaviorSwapped records a behaviour replacement for the given
// capability ("fly" or "quack").  Other values are ignored.
func (c *Collector) BehaviorSwapped(capability string) {
	if c == nil {
		return
	}
	switch capability {
	case "fly":
		c.flySwaps.Add(1)
	case "quack":
		c.quackSwaps.Add(1)
	}
}

// Swaps returns the total number of behaviour replacements.
func (c *Collector) Swaps() int64 {
	if c == nil {
		return 0
	}
	return c.flySwaps.Load() + c.quackSwaps.Load()
}

// ── Error metrics ────────────────────────────────────────────────────

// RecordError increments the error counter and stores the message.
func (c *Collector) RecordError(msg string) {
	if c == nil {
		return
	}
	c.errorsTotal.Add(1)
	c.mu.Lock()
	c.lastError = time.Now()
	c.lastErrorMsg = msg
	c.mu.Unlock()
}

// ErrorCount returns the total number of errors recorded.
func (c *Collector) ErrorCount() int64 {
	if c == nil {
		return 0
	}
	return c.errorsTotal.Load()
}

// ── Snapshot ─────────────────────────────────────────────────────────

// Snapshot is a point-in-time view of all metrics.
type Snapshot struct {
	Uptime           string `json:"uptime"`
	Displays         int64  `json:"displays"`
	Flights          int64  `json:"flights"`
	Quacks           int64  `json:"quacks"`
	Swims            int64  `json:"swims"`
	FlySwaps         int64  `json:"fly_swaps"`
	QuackSwaps       int64  `json:"quack_swaps"`
	ErrorsTotal      int64  `json:"errors_total"`
	LastError        string `json:"last_error,omitempty"`
	LastErrorMessage string `json:"last_error_message,omitempty"`
}

// Snapshot returns a copy of all current metrics.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Snapshot{
		Uptime:      time.Since(c.startTime).Truncate(time.Millisecond).String(),
		Displays:    c.displays.Load(),
		Flights:     c.flights.Load(),
		Quacks:      c.quacks.Load(),
		Swims:       c.swims.Load(),
		FlySwaps:    c.flySwaps.Load(),
		QuackSwaps:  c.quackSwaps.Load(),
		ErrorsTotal: c.errorsTotal.Load(),
	}
	if !c.lastError.IsZero() {
		s.LastError = c.lastError.Format(time.RFC3339)
		s.LastErrorMessage = c.lastErrorMsg
	}
	return s
}

// JSON returns the snapshot as indented JSON.
func (c *Collector) JSON() string {
	data, _ := json.MarshalIndent(c.Snapshot(), "", "  ")
	return string(data)
}
