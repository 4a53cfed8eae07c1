package log

import (
	"testing"
	"time"
)

// recordingLogger records events for testing.
type recordingLogger struct {
	events []Event
}

func (r *recordingLogger) Log(event Event) {
	r.events = append(r.events, event)
}

func TestNoopLoggerDoesNotPanic(t *testing.T) {
	logger := NoopLogger{}

	event := Event{Timestamp: time.Now(), SessionID: "test"}
	logger.Log(event)

	event.Call = &CallEvent{Name: "FE_GET_INFO"}
	logger.Log(event)

	event.Call = nil
	event.StateChange = &StateChangeEvent{Entity: StateEntitySession, NewState: "open"}
	logger.Log(event)

	event.StateChange = nil
	event.Error = &ErrorEventData{Message: "test error"}
	logger.Log(event)
}

func TestMultiLoggerCallsAll(t *testing.T) {
	a := &recordingLogger{}
	b := &recordingLogger{}

	multi := NewMultiLogger(a, nil, b)
	multi.Log(Event{SessionID: "sess-123"})

	for i, r := range []*recordingLogger{a, b} {
		if len(r.events) != 1 {
			t.Errorf("logger %d: got %d events, want 1", i, len(r.events))
			continue
		}
		if r.events[0].SessionID != "sess-123" {
			t.Errorf("logger %d: SessionID = %q, want %q", i, r.events[0].SessionID, "sess-123")
		}
	}
}

func TestMultiLoggerEmptyList(t *testing.T) {
	NewMultiLogger().Log(Event{SessionID: "nobody"})
}
