// Command dvbfe-tool opens a DVB frontend and drives it through the
// frontend session layer.
//
// Usage:
//
//	dvbfe-tool [flags] [CMD=VALUE...]
//
// Flags:
//
//	-adapter int          DVB adapter number
//	-frontend int         Frontend number on the adapter
//	-config string        Configuration file path (YAML)
//	-simulate string      Use a simulated tuner: dvbt, dvbs
//	-v int                Verbosity (1: device and parameters, 2: statistics)
//	-legacy               Use the legacy (DVBv3) protocol only
//	-lnb string           LNB type for satellite tuning
//	-sat int              DiSEqC satellite number (default -1)
//	-sys string           Delivery system to switch to
//	-compat               Allow switching to an emulated delivery system
//	-tune                 Send the parameters to the device
//	-wait duration        After tuning, wait for a lock
//	-stats                Print lock status and signal quality
//	-interactive          Start the interactive shell
//	-trace string         Record a protocol trace (.flog)
//	-log-file string      Write logs to a rotating file
//	-log-level string     Log level: debug, info, warn, error (default "info")
//
// Examples:
//
//	# Show the current DVB-T parameters of adapter 0
//	dvbfe-tool -v 1
//
//	# Tune DVB-T2 at 474 MHz and wait for a lock
//	dvbfe-tool -sys DVBT2 -tune -wait 2s FREQUENCY=474000000 BANDWIDTH_HZ=8000000
//
//	# Satellite tuning through a universal LNB on DiSEqC input 1
//	dvbfe-tool -sys DVBS2 -lnb UNIVERSAL -sat 1 -tune FREQUENCY=11778000 POLARIZATION=VERTICAL SYMBOL_RATE=27500000
//
//	# Explore a simulated tuner interactively
//	dvbfe-tool -simulate dvbs -interactive
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dvbfe/dvbfe-go/cmd/dvbfe-tool/interactive"
	"github.com/dvbfe/dvbfe-go/pkg/catalog"
	"github.com/dvbfe/dvbfe-go/pkg/dvb"
	"github.com/dvbfe/dvbfe-go/pkg/dvb/dvbsim"
	"github.com/dvbfe/dvbfe-go/pkg/frontend"
	"github.com/dvbfe/dvbfe-go/pkg/log"
)

// lockPoll is the interval between status reads while waiting for a lock.
const lockPoll = 100 * time.Millisecond

func main() {
	opts, err := parseOptions(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to a process exit status: the errno of frontend
// errors, 1 for everything else.
func exitCode(err error) int {
	if dvb.KindOf(err) == 0 {
		return 1
	}
	if code := dvb.Code(err); code > 0 {
		return code
	}
	return 1
}

func run(ctx context.Context, opts Options, stdout, stderr io.Writer) error {
	logger, logCloser, err := newLogger(opts.Log, stderr)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	cfg := frontend.DefaultConfig()
	cfg.Verbose = opts.Verbose
	cfg.ForceLegacy = opts.Legacy
	cfg.Logger = logger
	cfg.LNB = opts.LNB
	cfg.SatNumber = opts.Sat
	cfg.DiseqcWait = opts.DiseqcWait

	if opts.Trace != "" {
		trace, err := log.NewFileLogger(opts.Trace)
		if err != nil {
			return fmt.Errorf("failed to create trace file: %w", err)
		}
		defer trace.Close()
		cfg.ProtocolLogger = trace
		logger.Info("protocol trace enabled", "path", opts.Trace)
	}

	fe, err := openFrontend(opts, cfg)
	if err != nil {
		return err
	}
	defer fe.Close()

	if opts.System != "" {
		sys, err := dvb.ParseDeliverySystem(opts.System)
		if err != nil {
			return err
		}
		if opts.Compat {
			err = fe.SetCompatibleDeliverySystem(sys)
		} else {
			err = fe.SetDeliverySystem(sys)
		}
		if err != nil {
			return err
		}
	}

	for _, a := range opts.Params {
		cmd, v, err := interactive.ParseAssignment(a)
		if err != nil {
			return err
		}
		if err := fe.StoreParm(cmd, v); err != nil {
			return err
		}
	}

	switch {
	case opts.Tune:
		if err := fe.SetParameters(); err != nil {
			return err
		}
		if opts.Wait > 0 {
			if err := waitForLock(ctx, fe, opts.Wait); err != nil {
				return err
			}
		}
	case len(opts.Params) == 0:
		if err := fe.GetParameters(); err != nil {
			return err
		}
		printProperties(stdout, fe)
	}

	if opts.Stats {
		printStats(stdout, fe.GetStats(), fe.Stats())
	}

	if opts.Interactive {
		shell, err := interactive.New(fe)
		if err != nil {
			return err
		}
		shell.Run(ctx)
	}
	return nil
}

// openFrontend opens the configured device, or a simulated one.
func openFrontend(opts Options, cfg frontend.Config) (*frontend.Frontend, error) {
	switch strings.ToLower(opts.Simulate) {
	case "":
		return frontend.Open(opts.Adapter, opts.Frontend, cfg)
	case "dvbt":
		return frontend.New(dvbsim.New(dvbsim.DVBT()), cfg)
	case "dvbs":
		return frontend.New(dvbsim.New(dvbsim.DVBS()), cfg)
	}
	return nil, fmt.Errorf("unknown simulated tuner %q (want dvbt or dvbs)", opts.Simulate)
}

// waitForLock polls the frontend status until it reports a lock.
func waitForLock(ctx context.Context, fe *frontend.Frontend, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(lockPoll)
	defer ticker.Stop()

	for {
		if fe.GetStats().Has(dvb.StatusHasLock) {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("no lock after %v", timeout)
		case <-ticker.C:
		}
	}
}

func printProperties(w io.Writer, fe *frontend.Frontend) {
	fmt.Fprintf(w, "%s:\n", fe.DeliverySystem())
	for _, p := range fe.Properties() {
		fmt.Fprintf(w, "  %-28s %s\n", p.Cmd.String(), catalog.AttrName(p.Cmd, p.Data))
	}
}

func printStats(w io.Writer, status dvb.Status, stats []dvb.Property) {
	fmt.Fprintf(w, "Status: %s\n", strings.Join(catalog.StatusNames(status), " "))
	for _, p := range stats[1:] {
		fmt.Fprintf(w, "  %-24s %d\n", p.Cmd.String(), p.Data)
	}
}
