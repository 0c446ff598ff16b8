package session

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"simuduck/internal/metrics"
	"simuduck/util"
)

func TestSession_SayAndTranscript(t *testing.T) {
	var out bytes.Buffer
	sess := New(&out, util.NewLogger(0), nil)

	sess.Say("Quack")
	sess.Break()
	sess.Notice("Changing fly behavior to FlyRocketPowered")

	want := "Quack\n\nChanging fly behavior to FlyRocketPowered\n"
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}

	tr := sess.Transcript()
	if len(tr) != 3 || tr[0] != "Quack" || tr[1] != "" {
		t.Errorf("transcript = %q", tr)
	}

	// Transcript returns a copy.
	tr[0] = "mutated"
	if sess.Transcript()[0] != "Quack" {
		t.Error("Transcript should return a copy")
	}
}

func TestSession_ColorNotice(t *testing.T) {
	var out bytes.Buffer
	sess := New(&out, util.NewLogger(0), nil)
	sess.Color = true

	sess.Notice("Changing quack behavior to Squeak")
	sess.Say("Squeak")

	if !strings.HasPrefix(out.String(), ansiBold) {
		t.Errorf("notice should be highlighted, got %q", out.String())
	}
	if strings.Contains(sess.Transcript()[0], "\x1b") {
		t.Error("transcript must hold plain text")
	}
	if strings.Contains(strings.Split(out.String(), "\n")[1], "\x1b") {
		t.Error("effects are never highlighted")
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestSession_WriteErrorRecorded(t *testing.T) {
	m := metrics.New()
	sess := New(failWriter{}, util.NewLogger(0), m)

	sess.Say("Quack")

	if m.ErrorCount() != 1 {
		t.Errorf("errors = %d, want 1", m.ErrorCount())
	}
	if len(sess.Transcript()) != 1 {
		t.Error("line should still be recorded")
	}
}
