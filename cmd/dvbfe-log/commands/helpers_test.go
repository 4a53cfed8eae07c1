package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/dvbfe/dvbfe-go/pkg/dvb"
	"github.com/dvbfe/dvbfe-go/pkg/log"
)

var testTime = time.Date(2026, 3, 2, 20, 15, 32, 123456000, time.UTC)

const testSession = "3f2a9c1e-6789-0123-4567-890abcdef012"

func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.flog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

// sampleSession is a short trace: open, a property write that fails,
// and a delivery system switch.
func sampleSession() []log.Event {
	dur := 850 * time.Microsecond
	code := 16
	return []log.Event{
		{
			Timestamp: testTime,
			SessionID: testSession,
			Direction: log.DirectionOut,
			Layer:     log.LayerDevice,
			Category:  log.CategoryCall,
			Device:    "/dev/dvb/adapter0/frontend0",
			Call: &log.CallEvent{
				Name: "FE_SET_PROPERTY",
				Properties: []log.PropertyValue{
					{Cmd: uint32(dvb.CmdFrequency), Value: 474000000},
					{Cmd: uint32(dvb.CmdModulation), Value: dvb.ModQAM64},
				},
			},
		},
		{
			Timestamp: testTime.Add(time.Millisecond),
			SessionID: testSession,
			Direction: log.DirectionIn,
			Layer:     log.LayerDevice,
			Category:  log.CategoryCall,
			Device:    "/dev/dvb/adapter0/frontend0",
			Call: &log.CallEvent{
				Name:     "FE_SET_PROPERTY",
				Duration: &dur,
				Err:      "device or resource busy",
			},
		},
		{
			Timestamp: testTime.Add(2 * time.Millisecond),
			SessionID: testSession,
			Direction: log.DirectionIn,
			Layer:     log.LayerSession,
			Category:  log.CategoryError,
			Device:    "/dev/dvb/adapter0/frontend0",
			Error: &log.ErrorEventData{
				Layer:   log.LayerSession,
				Message: "FE_SET_PROPERTY: device or resource busy",
				Code:    &code,
				Context: "FE_SET_PROPERTY",
			},
		},
		{
			Timestamp: testTime.Add(time.Second),
			SessionID: testSession,
			Direction: log.DirectionIn,
			Layer:     log.LayerSession,
			Category:  log.CategoryState,
			Device:    "/dev/dvb/adapter0/frontend0",
			StateChange: &log.StateChangeEvent{
				Entity:   log.StateEntityDeliverySystem,
				OldState: "DVBT",
				NewState: "DVBT2",
			},
		},
	}
}
