package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/dvbfe/dvbfe-go/pkg/log"
)

func TestFormatCallEvent(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, sampleSession()[0])
	output := buf.String()

	for _, want := range []string{
		"2026-03-02T20:15:32.123456Z",
		"[sess:3f2a9c1e]",
		"OUT DEVICE FE_SET_PROPERTY",
		"Device: /dev/dvb/adapter0/frontend0",
		"DTV_FREQUENCY = 474000000",
		"DTV_MODULATION = QAM/64",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got:\n%s", want, output)
		}
	}
}

func TestFormatCallReply(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, sampleSession()[1])
	output := buf.String()

	if !strings.Contains(output, "Duration: 850.000us") {
		t.Errorf("expected duration, got:\n%s", output)
	}
	if !strings.Contains(output, "Error: device or resource busy") {
		t.Errorf("expected call error, got:\n%s", output)
	}
}

func TestFormatCallValueAndPayload(t *testing.T) {
	v := uint32(0x1f)
	event := log.Event{
		Timestamp: testTime,
		SessionID: "short",
		Call: &log.CallEvent{
			Name:    "FE_DISEQC_SEND_MASTER_CMD",
			Value:   &v,
			Payload: []byte{0xe0, 0x10, 0x38, 0xf3},
		},
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	if !strings.Contains(output, "[sess:short]") {
		t.Errorf("expected short session ID kept, got:\n%s", output)
	}
	if !strings.Contains(output, "Value: 31 (0x1f)") {
		t.Errorf("expected value, got:\n%s", output)
	}
	if !strings.Contains(output, "Payload: e01038f3") {
		t.Errorf("expected payload, got:\n%s", output)
	}
}

func TestFormatStateChangeEvent(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, sampleSession()[3])
	output := buf.String()

	if !strings.Contains(output, "SESSION State") {
		t.Errorf("expected state label, got:\n%s", output)
	}
	if !strings.Contains(output, "Entity: DELIVERY_SYSTEM") {
		t.Errorf("expected entity, got:\n%s", output)
	}
	if !strings.Contains(output, "DVBT -> DVBT2") {
		t.Errorf("expected transition, got:\n%s", output)
	}

	buf.Reset()
	formatStateChangeDetails(&buf, &log.StateChangeEvent{NewState: "PROPERTY", Reason: "API 5.11"})
	if !strings.Contains(buf.String(), "  -> PROPERTY") || !strings.Contains(buf.String(), "Reason: API 5.11") {
		t.Errorf("unexpected initial state output:\n%s", buf.String())
	}
}

func TestFormatErrorEvent(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, sampleSession()[2])
	output := buf.String()

	for _, want := range []string{"Error", "Layer: SESSION", "Code: 16", "Context: FE_SET_PROPERTY"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got:\n%s", want, output)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Nanosecond, "0.500us"},
		{1500 * time.Microsecond, "1.500ms"},
		{2500 * time.Millisecond, "2.500s"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestParseFlags(t *testing.T) {
	if l, err := parseLayer("Device"); err != nil || l != log.LayerDevice {
		t.Errorf("parseLayer(Device) = %v, %v", l, err)
	}
	if l, err := parseLayer("SESSION"); err != nil || l != log.LayerSession {
		t.Errorf("parseLayer(SESSION) = %v, %v", l, err)
	}
	if _, err := parseLayer("wire"); err == nil {
		t.Error("expected error for unknown layer")
	}
	if d, err := parseDirection("OUT"); err != nil || d != log.DirectionOut {
		t.Errorf("parseDirection(OUT) = %v, %v", d, err)
	}
	if _, err := parseDirection("sideways"); err == nil {
		t.Error("expected error for unknown direction")
	}
	if c, err := parseCategory("state"); err != nil || c != log.CategoryState {
		t.Errorf("parseCategory(state) = %v, %v", c, err)
	}
	if _, err := parseCategory("message"); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestRunView(t *testing.T) {
	path := createTestLogFile(t, sampleSession())

	var buf bytes.Buffer
	if err := RunView(path, ViewFilter{}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	if n := strings.Count(buf.String(), "[sess:"); n != 4 {
		t.Errorf("expected 4 events, got %d", n)
	}
}

func TestRunViewFiltered(t *testing.T) {
	path := createTestLogFile(t, sampleSession())

	cat := log.CategoryState
	var buf bytes.Buffer
	if err := RunView(path, ViewFilter{Category: &cat}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	if n := strings.Count(buf.String(), "[sess:"); n != 1 {
		t.Errorf("expected 1 state event, got %d", n)
	}

	dir := log.DirectionOut
	buf.Reset()
	if err := RunView(path, ViewFilter{Direction: &dir, Call: "FE_SET_PROPERTY"}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	if n := strings.Count(buf.String(), "[sess:"); n != 1 {
		t.Errorf("expected 1 outgoing call, got %d", n)
	}
}

func TestRunViewMissingFile(t *testing.T) {
	var buf bytes.Buffer
	if err := RunView("/nonexistent/trace.flog", ViewFilter{}, &buf); err == nil {
		t.Error("expected error for missing file")
	}
}
