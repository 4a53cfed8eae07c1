// Package log provides structured trace logging for DVB frontend sessions.
//
// This package defines the Logger interface and Event types for capturing
// control calls and session state changes. It is separate from operational
// logging (slog): the trace is a complete machine-readable record of what
// was sent to the device and what came back.
//
// # Basic Usage
//
// Sessions are configured with a Logger implementation:
//
//	// For development: log to console via slog
//	cfg.ProtocolLogger = log.NewSlogAdapter(slog.Default())
//
//	// For field captures: write to binary file
//	cfg.ProtocolLogger, _ = log.NewFileLogger("/var/log/dvbfe/adapter0.flog")
//
//	// Both: use MultiLogger
//	cfg.ProtocolLogger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Types
//
//   - Device: one CallEvent per request (OUT) and reply (IN)
//   - Session: generation detection and delivery-system switches (StateChangeEvent)
//
// Errors have a dedicated event type.
//
// # File Format
//
// Trace files are a stream of CBOR-encoded events with the .flog
// extension. The dvbfe-log tool views, filters and exports them.
package log
