package handler

import (
	"errors"
	"testing"

	"go.uber.org/multierr"

	"github.com/philipp01105/conlog/core"
)

type recordingHandler struct {
	messages []string
	err      error
	closeErr error
	closed   bool
}

func (h *recordingHandler) Handle(e *core.Entry) error {
	h.messages = append(h.messages, e.Message)
	return h.err
}

func (h *recordingHandler) Close() error {
	h.closed = true
	return h.closeErr
}

func TestMultiHandler(t *testing.T) {
	h1, h2 := &recordingHandler{}, &recordingHandler{}
	multi := NewMultiHandler(h1, h2)

	entry := core.GetEntry()
	entry.Message = "multi test"

	if err := multi.Handle(entry); err != nil {
		t.Errorf("Handle() error = %v", err)
	}

	if len(h1.messages) != 1 || h1.messages[0] != "multi test" {
		t.Error("First handler did not receive message")
	}
	if len(h2.messages) != 1 || h2.messages[0] != "multi test" {
		t.Error("Second handler did not receive message")
	}
}

func TestMultiHandler_ErrorsAreCombined(t *testing.T) {
	errA, errB := errors.New("a"), errors.New("b")
	h1 := &recordingHandler{err: errA}
	h2 := &recordingHandler{}
	h3 := &recordingHandler{err: errB}
	multi := NewMultiHandler(h1, h2, h3)

	err := multi.Handle(&core.Entry{Message: "x"})
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Fatalf("Handle() error = %v, want both a and b", err)
	}
	if n := len(multierr.Errors(err)); n != 2 {
		t.Errorf("got %d combined errors, want 2", n)
	}
	if len(h2.messages) != 1 || len(h3.messages) != 1 {
		t.Error("a failing handler stopped the fan-out")
	}
}

func TestMultiHandler_Close(t *testing.T) {
	errClose := errors.New("close")
	h1 := &recordingHandler{closeErr: errClose}
	h2 := &recordingHandler{}
	multi := NewMultiHandler(h1, h2)

	if err := multi.Close(); !errors.Is(err, errClose) {
		t.Errorf("Close() error = %v, want %v", err, errClose)
	}
	if !h1.closed || !h2.closed {
		t.Error("Close() did not close every handler")
	}
}

func TestStats(t *testing.T) {
	s := NewStats()
	s.IncrementWritten(core.DebugLevel)
	s.IncrementWritten(core.WarnLevel)
	s.IncrementWritten(core.WarnLevel)
	s.IncrementWritten(core.Level(42)) // ignored
	s.IncrementFailed()

	if got := s.GetWritten(core.WarnLevel); got != 2 {
		t.Errorf("GetWritten(WARN) = %d, want 2", got)
	}
	if got := s.GetTotalWritten(); got != 3 {
		t.Errorf("GetTotalWritten() = %d, want 3", got)
	}
	if got := s.GetFailed(); got != 1 {
		t.Errorf("GetFailed() = %d, want 1", got)
	}

	s.Reset()
	if s.GetTotalWritten() != 0 || s.GetFailed() != 0 {
		t.Error("Reset() did not clear counters")
	}
}
