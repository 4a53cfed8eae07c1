package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
	"gopkg.in/yaml.v3"
)

// Options holds the tool configuration. Every field can be set in the YAML
// config file; flags given on the command line take precedence.
type Options struct {
	ConfigFile string `yaml:"-"`

	Adapter  int    `yaml:"adapter"`
	Frontend int    `yaml:"frontend"`
	Simulate string `yaml:"simulate"`
	Verbose  int    `yaml:"verbose"`
	Legacy   bool   `yaml:"legacy"`

	LNB        string        `yaml:"lnb"`
	Sat        int           `yaml:"sat"`
	DiseqcWait time.Duration `yaml:"diseqc_wait"`

	System string   `yaml:"system"`
	Compat bool     `yaml:"compat"`
	Params []string `yaml:"params"`

	Tune        bool          `yaml:"tune"`
	Wait        time.Duration `yaml:"wait"`
	Stats       bool          `yaml:"stats"`
	Interactive bool          `yaml:"interactive"`

	Trace string     `yaml:"trace"`
	Log   LogOptions `yaml:"log"`
}

// LogOptions configures operational logging.
type LogOptions struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

func defaultOptions() Options {
	return Options{
		Sat: -1,
		Log: LogOptions{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
	}
}

func newFlagSet(opts *Options) *flag.FlagSet {
	fs := flag.NewFlagSet("dvbfe-tool", flag.ContinueOnError)
	fs.StringVar(&opts.ConfigFile, "config", "", "Configuration file path (YAML)")
	fs.IntVar(&opts.Adapter, "adapter", opts.Adapter, "DVB adapter number")
	fs.IntVar(&opts.Frontend, "frontend", opts.Frontend, "Frontend number on the adapter")
	fs.StringVar(&opts.Simulate, "simulate", opts.Simulate, "Use a simulated tuner instead of a device: dvbt, dvbs")
	fs.IntVar(&opts.Verbose, "v", opts.Verbose, "Verbosity: 1 reports device and parameters, 2 adds statistics")
	fs.BoolVar(&opts.Legacy, "legacy", opts.Legacy, "Use the legacy (DVBv3) protocol only")
	fs.StringVar(&opts.LNB, "lnb", opts.LNB, "LNB type for satellite tuning (e.g. UNIVERSAL)")
	fs.IntVar(&opts.Sat, "sat", opts.Sat, "DiSEqC satellite number, -1 disables DiSEqC")
	fs.DurationVar(&opts.DiseqcWait, "diseqc-wait", opts.DiseqcWait, "Extra wait after DiSEqC commands")
	fs.StringVar(&opts.System, "sys", opts.System, "Delivery system to switch to (e.g. DVBT2)")
	fs.BoolVar(&opts.Compat, "compat", opts.Compat, "Allow switching to an emulated delivery system")
	fs.BoolVar(&opts.Tune, "tune", opts.Tune, "Send the parameters to the device")
	fs.DurationVar(&opts.Wait, "wait", opts.Wait, "After tuning, wait up to this long for a lock")
	fs.BoolVar(&opts.Stats, "stats", opts.Stats, "Print lock status and signal quality")
	fs.BoolVar(&opts.Interactive, "interactive", opts.Interactive, "Start the interactive shell")
	fs.StringVar(&opts.Trace, "trace", opts.Trace, "Record a protocol trace (.flog) to this file")
	fs.StringVar(&opts.Log.File, "log-file", opts.Log.File, "Write logs to a rotating file instead of stderr")
	fs.StringVar(&opts.Log.Level, "log-level", opts.Log.Level, "Log level: debug, info, warn, error")
	return fs
}

// parseOptions parses the command line. Values from -config are applied
// first; flags set explicitly on the command line override them. Remaining
// arguments are CMD=VALUE assignments appended to the configured params.
func parseOptions(args []string, output io.Writer) (Options, error) {
	opts := defaultOptions()
	fs := newFlagSet(&opts)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintln(output, "Usage: dvbfe-tool [flags] [CMD=VALUE...]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if opts.ConfigFile != "" {
		set := make(map[string]string)
		fs.Visit(func(f *flag.Flag) { set[f.Name] = f.Value.String() })

		if err := loadConfigFile(opts.ConfigFile, &opts); err != nil {
			return opts, err
		}
		for name, v := range set {
			if err := fs.Set(name, v); err != nil {
				return opts, err
			}
		}
	}

	opts.Params = append(opts.Params, fs.Args()...)
	return opts, nil
}

func loadConfigFile(path string, opts *Options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, opts); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

// newLogger builds the operational logger. Without a log file it writes
// text to stderr; with one it writes JSON to a lumberjack-rotated file,
// which the returned closer flushes and closes.
func newLogger(cfg LogOptions, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	if cfg.File == "" {
		return slog.New(slog.NewTextHandler(stderr, handlerOpts)), nopCloser{}, nil
	}

	w := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
		LocalTime:  true,
	}
	return slog.New(slog.NewJSONHandler(w, handlerOpts)), w, nil
}
