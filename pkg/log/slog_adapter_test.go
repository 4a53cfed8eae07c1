package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"
)

func logOne(t *testing.T, event Event) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	NewSlogAdapter(slog.New(handler)).Log(event)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output %q: %v", buf.String(), err)
	}
	return entry
}

func TestSlogAdapterLogsCallEvent(t *testing.T) {
	v := uint32(1)
	entry := logOne(t, Event{
		Timestamp: time.Now(),
		SessionID: "sess-123",
		Direction: DirectionOut,
		Layer:     LayerDevice,
		Category:  CategoryCall,
		Device:    "/dev/dvb/adapter0/frontend0",
		Call: &CallEvent{
			Name:    "FE_DISEQC_SEND_MASTER_CMD",
			Value:   &v,
			Payload: []byte{0xe0, 0x10, 0x38},
		},
	})

	if entry["msg"] != "frontend" {
		t.Errorf("msg: got %v", entry["msg"])
	}
	if entry["session_id"] != "sess-123" {
		t.Errorf("session_id: got %v, want %q", entry["session_id"], "sess-123")
	}
	if entry["direction"] != "OUT" {
		t.Errorf("direction: got %v, want %q", entry["direction"], "OUT")
	}
	if entry["call"] != "FE_DISEQC_SEND_MASTER_CMD" {
		t.Errorf("call: got %v", entry["call"])
	}
	if entry["payload"] != "e0 10 38" {
		t.Errorf("payload: got %v, want %q", entry["payload"], "e0 10 38")
	}
	if entry["value"] != float64(1) {
		t.Errorf("value: got %v, want 1", entry["value"])
	}
}

func TestSlogAdapterLogsStateChange(t *testing.T) {
	entry := logOne(t, Event{
		SessionID: "sess-1",
		Layer:     LayerSession,
		Category:  CategoryState,
		StateChange: &StateChangeEvent{
			Entity:   StateEntityDeliverySystem,
			OldState: "DVBS",
			NewState: "DVBT",
			Reason:   "activate",
		},
	})

	if entry["entity"] != "DELIVERY_SYSTEM" {
		t.Errorf("entity: got %v", entry["entity"])
	}
	if entry["old_state"] != "DVBS" || entry["new_state"] != "DVBT" {
		t.Errorf("states: got %v -> %v", entry["old_state"], entry["new_state"])
	}
	if entry["reason"] != "activate" {
		t.Errorf("reason: got %v", entry["reason"])
	}
}

func TestSlogAdapterLogsError(t *testing.T) {
	code := 22
	entry := logOne(t, Event{
		Category: CategoryError,
		Error: &ErrorEventData{
			Layer:   LayerSession,
			Message: "invalid argument",
			Code:    &code,
			Context: "set delivery system",
		},
	})

	if entry["error_msg"] != "invalid argument" {
		t.Errorf("error_msg: got %v", entry["error_msg"])
	}
	if entry["error_code"] != float64(22) {
		t.Errorf("error_code: got %v", entry["error_code"])
	}
	if entry["error_layer"] != "SESSION" {
		t.Errorf("error_layer: got %v", entry["error_layer"])
	}
}

func TestSlogAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	NewSlogAdapter(slog.New(handler)).Log(Event{SessionID: "quiet"})

	if buf.Len() != 0 {
		t.Errorf("expected no output at Info level, got %q", buf.String())
	}
}
