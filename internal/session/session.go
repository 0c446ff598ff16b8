// Package session is the console side of a simuduck run.  Ducks and
// behaviours only return their effects as text; a Session prints them
// to its writer and records a transcript of everything it printed.
//
// Modes talk to a Session rather than os.Stdout, which keeps them
// testable: a test passes a bytes.Buffer and inspects Transcript().
package session

import (
	"fmt"
	"io"

	"simuduck/internal/metrics"
	"simuduck/util"
)

const (
	ansiBold  = "\x1b[1m"
	ansiReset = "\x1b[0m"
)

// Session encapsulates the output endpoint, logger and metrics for a
// single run.
type Session struct {
	Stdout  io.Writer
	Logger  *util.Logger
	Metrics *metrics.Collector
	Color   bool // highlight behaviour-change notices

	transcript []string
}

// New creates a Session writing to stdout.  A nil collector is allowed.
func New(stdout io.Writer, logger *util.Logger, m *metrics.Collector) *Session {
	return &Session{
		Stdout:  stdout,
		Logger:  logger,
		Metrics: m,
	}
}

// Say prints one effect line.
func (s *Session) Say(effect string) {
	s.emit(effect, effect)
}

// Notice prints a behaviour-change notification, highlighted when
// colour is enabled.  The transcript always keeps the plain text.
func (s *Session) Notice(msg string) {
	if s.Color {
		s.emit(msg, ansiBold+msg+ansiReset)
		return
	}
	s.emit(msg, msg)
}

// Break prints the blank separator between demo sections.
func (s *Session) Break() {
	s.emit("", "")
}

// Transcript returns a copy of every line printed so far.
func (s *Session) Transcript() []string {
	return append([]string(nil), s.transcript...)
}

func (s *Session) emit(plain, rendered string) {
	s.transcript = append(s.transcript, plain)
	if _, err := fmt.Fprintln(s.Stdout, rendered); err != nil {
		s.Metrics.RecordError(err.Error())
		s.Logger.Debug("write failed: %v", err)
	}
}
