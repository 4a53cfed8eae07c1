// Package frontend implements a DVB frontend session: it opens a tuner,
// detects whether it speaks the property protocol (DVB API 5.5+) or only
// the legacy fixed-struct protocol, enumerates its delivery systems, and
// presents one property-based interface for tuning either way.
//
// A Frontend is not safe for concurrent use. Every method is a blocking
// device call; nothing is retried.
package frontend

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dvbfe/dvbfe-go/pkg/catalog"
	"github.com/dvbfe/dvbfe-go/pkg/dvb"
	"github.com/dvbfe/dvbfe-go/pkg/log"
	"github.com/dvbfe/dvbfe-go/pkg/sec"
	"github.com/dvbfe/dvbfe-go/pkg/version"
)

// Config configures a session.
type Config struct {
	// Verbose enables diagnostics: 1 reports the device and parameter
	// dumps, 2 adds statistics.
	Verbose int

	// ForceLegacy restricts the session to the legacy protocol even on
	// devices that support properties.
	ForceLegacy bool

	// Logger receives operational logs. Defaults to slog.Default().
	Logger *slog.Logger

	// ProtocolLogger receives a trace of every control call and session
	// state change. Nil disables tracing.
	ProtocolLogger log.Logger

	// LNB is the alias of the LNB fitted to a satellite frontend (see
	// sec.LNBs). Empty leaves frequencies untranslated.
	LNB string

	// SatNumber selects the DiSEqC switch input; negative disables DiSEqC.
	SatNumber int

	// DiseqcWait is an extra settle time after DiSEqC commands.
	DiseqcWait time.Duration
}

// DefaultConfig returns a quiet configuration without LNB translation.
func DefaultConfig() Config {
	return Config{SatNumber: -1}
}

// Frontend is an open tuner session.
type Frontend struct {
	dev       dvb.Device
	path      string
	sessionID string
	info      dvb.FrontendInfo

	verbose int
	logger  *slog.Logger
	plog    log.Logger

	version version.API
	legacy  bool
	current dvb.DeliverySystem
	systems []dvb.DeliverySystem

	store Store
	stats [dvb.MaxStats]dvb.Property

	sec      *sec.Controller
	resolver *sec.Resolver

	closed bool
}

// Open opens /dev/dvb/adapterN/frontendM and starts a session on it.
func Open(adapter, frontend int, cfg Config) (*Frontend, error) {
	dev, err := dvb.OpenFrontend(adapter, frontend)
	if err != nil {
		return nil, err
	}
	return newFrontend(dev, dvb.FrontendPath(adapter, frontend), cfg)
}

// New starts a session on an already open device. The device is closed
// when the session cannot be established.
func New(dev dvb.Device, cfg Config) (*Frontend, error) {
	return newFrontend(dev, "", cfg)
}

func newFrontend(dev dvb.Device, path string, cfg Config) (*Frontend, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	f := &Frontend{
		path:      path,
		sessionID: uuid.NewString(),
		verbose:   cfg.Verbose,
		plog:      cfg.ProtocolLogger,
	}
	f.logger = logger.With("component", "frontend", "sessionID", f.sessionID)
	if path != "" {
		f.logger = f.logger.With("device", path)
	}
	f.dev = dvb.Trace(dev, cfg.ProtocolLogger, f.sessionID, path)
	f.sec = sec.NewController(f.dev, logger, cfg.Verbose)

	if err := f.init(cfg); err != nil {
		f.logger.Error("frontend open failed", "error", err)
		_ = f.dev.Close()
		return nil, err
	}
	f.state(log.StateEntitySession, "", "OPEN", f.info.DeviceName())
	return f, nil
}

func (f *Frontend) init(cfg Config) error {
	info, err := f.dev.GetInfo()
	if err != nil {
		return dvb.NewError(dvb.KindOpen, "FE_GET_INFO", err)
	}
	f.info = info
	if f.verbose > 0 {
		f.logger.Info("device capabilities",
			"name", info.DeviceName(),
			"caps", catalog.CapNames(info.Caps))
	}

	g := detectGeneration(f.dev, cfg.ForceLegacy)
	f.version, f.legacy = g.version, g.legacy
	if f.verbose > 0 {
		f.logger.Info("DVB API version",
			"version", g.version.String(),
			"forceLegacy", cfg.ForceLegacy,
			"current", g.current.String())
	}
	protocol := "PROPERTY"
	if f.legacy {
		protocol = "LEGACY"
	}
	f.state(log.StateEntityProtocol, "", protocol, "API "+g.version.String())

	systems, current, err := enumerate(f.dev, info, g)
	if err != nil {
		return err
	}
	f.systems = systems
	f.current = current
	f.reportSystems()

	if !catalog.Known(current) {
		f.logger.Warn("delivery system has no property list", "system", current.String())
	}
	f.store.reset(current)
	f.state(log.StateEntityDeliverySystem, "", current.String(), "open")

	for i := range f.stats {
		f.stats[i].Cmd = dvb.StatCommandStart + dvb.Command(i)
	}

	if cfg.LNB != "" {
		lnb, err := sec.LookupLNB(cfg.LNB)
		if err != nil {
			return err
		}
		f.resolver = sec.NewResolver(f.sec, lnb, cfg.SatNumber, cfg.DiseqcWait)
	}
	return nil
}

func (f *Frontend) reportSystems() {
	if f.verbose == 0 {
		return
	}
	names := make([]string, len(f.systems))
	for i, s := range f.systems {
		if s == f.current {
			names[i] = "[" + s.String() + "]"
		} else {
			names[i] = s.String()
		}
	}
	f.logger.Info("supported delivery systems", "systems", strings.Join(names, " "))
	if f.legacy {
		f.logger.Warn("new delivery systems like ISDB-T, ISDB-S, DMB-TH, DSS, ATSC-MH will be mis-detected by a DVBv5.4 or earlier API call")
	}
}

// state records a session state change in the protocol trace.
func (f *Frontend) state(entity log.StateEntity, from, to, reason string) {
	if f.plog == nil {
		return
	}
	f.plog.Log(log.Event{
		Timestamp: time.Now(),
		SessionID: f.sessionID,
		Direction: log.DirectionIn,
		Layer:     log.LayerSession,
		Category:  log.CategoryState,
		Device:    f.path,
		StateChange: &log.StateChangeEvent{
			Entity:   entity,
			OldState: from,
			NewState: to,
			Reason:   reason,
		},
	})
}

// fail logs err and records it in the protocol trace.
func (f *Frontend) fail(op string, err error) error {
	f.logger.Error("frontend call failed", "op", op, "error", err)
	if f.plog != nil {
		code := dvb.Code(err)
		f.plog.Log(log.Event{
			Timestamp: time.Now(),
			SessionID: f.sessionID,
			Direction: log.DirectionIn,
			Layer:     log.LayerSession,
			Category:  log.CategoryError,
			Device:    f.path,
			Error: &log.ErrorEventData{
				Layer:   log.LayerSession,
				Message: err.Error(),
				Code:    &code,
				Context: op,
			},
		})
	}
	return err
}

// Close powers the LNB off when a satellite system is active and closes
// the device. Closing twice is a no-op.
func (f *Frontend) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	if catalog.IsSatellite(f.current) {
		// Best effort; the handle is released either way.
		_ = f.sec.SetVoltage(false, false)
	}
	err := f.dev.Close()
	f.state(log.StateEntitySession, "OPEN", "CLOSED", "")
	if err != nil {
		return fmt.Errorf("close %s: %w", f.path, err)
	}
	return nil
}

// SessionID returns the trace session identifier.
func (f *Frontend) SessionID() string { return f.sessionID }

// Path returns the device path, empty for sessions started with New.
func (f *Frontend) Path() string { return f.path }

// Info returns the legacy info report read at open.
func (f *Frontend) Info() dvb.FrontendInfo { return f.info }

// APIVersion returns the API version the device reported.
func (f *Frontend) APIVersion() version.API { return f.version }

// LegacyOnly reports whether the session uses the legacy protocol.
func (f *Frontend) LegacyOnly() bool { return f.legacy }

// DeliverySystem returns the active delivery system.
func (f *Frontend) DeliverySystem() dvb.DeliverySystem { return f.current }

// SupportedSystems returns the delivery systems of the device in device
// order.
func (f *Frontend) SupportedSystems() []dvb.DeliverySystem {
	out := make([]dvb.DeliverySystem, len(f.systems))
	copy(out, f.systems)
	return out
}

// Properties returns a copy of the property store.
func (f *Frontend) Properties() []dvb.Property {
	return f.store.Properties()
}

// RetrieveParm returns the stored value of cmd.
func (f *Frontend) RetrieveParm(cmd dvb.Command) (uint32, error) {
	v, ok := f.store.Get(cmd)
	if !ok {
		f.logger.Error("command not found during retrieve", "cmd", cmd.String())
		return 0, dvb.NewError(dvb.KindLookupMiss, "retrieve "+cmd.String(), nil)
	}
	return v, nil
}

// StoreParm sets the stored value of cmd. The command must belong to the
// active delivery system.
func (f *Frontend) StoreParm(cmd dvb.Command, v uint32) error {
	if !f.store.Set(cmd, v) {
		f.logger.Error("command not found during store", "cmd", cmd.String())
		return dvb.NewError(dvb.KindLookupMiss, "store "+cmd.String(), nil)
	}
	return nil
}

// dump logs the store with value labels.
func (f *Frontend) dump(msg string) {
	args := make([]any, 0, 2*f.store.Len()+2)
	args = append(args, "system", f.current.String())
	for _, p := range f.store.Properties() {
		args = append(args, p.Cmd.String(), catalog.AttrName(p.Cmd, p.Data))
	}
	f.logger.Info(msg, args...)
}

var _ sec.Params = (*Frontend)(nil)
