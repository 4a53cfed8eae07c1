package log

import (
	"context"
	"fmt"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger at Debug level.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session_id", event.SessionID),
		slog.String("direction", event.Direction.String()),
		slog.String("layer", event.Layer.String()),
		slog.String("category", event.Category.String()),
	}
	if event.Device != "" {
		attrs = append(attrs, slog.String("device", event.Device))
	}

	switch {
	case event.Call != nil:
		attrs = append(attrs, slog.String("call", event.Call.Name))
		if n := len(event.Call.Properties); n > 0 {
			attrs = append(attrs, slog.Int("props", n))
		}
		if event.Call.Value != nil {
			attrs = append(attrs, slog.Uint64("value", uint64(*event.Call.Value)))
		}
		if len(event.Call.Payload) > 0 {
			attrs = append(attrs, slog.String("payload", fmt.Sprintf("% x", event.Call.Payload)))
		}
		if event.Call.Duration != nil {
			attrs = append(attrs, slog.Duration("duration", *event.Call.Duration))
		}
		if event.Call.Err != "" {
			attrs = append(attrs, slog.String("err", event.Call.Err))
		}
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("entity", event.StateChange.Entity.String()),
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_layer", event.Error.Layer.String()),
			slog.String("error_msg", event.Error.Message),
			slog.String("error_context", event.Error.Context),
		)
		if event.Error.Code != nil {
			attrs = append(attrs, slog.Int("error_code", *event.Error.Code))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "frontend", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
