// Package interactive provides the interactive command-line interface of
// dvbfe-tool.
package interactive

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/dvbfe/dvbfe-go/pkg/catalog"
	"github.com/dvbfe/dvbfe-go/pkg/dvb"
	"github.com/dvbfe/dvbfe-go/pkg/version"
)

// Frontend is the part of a frontend session the shell drives.
type Frontend interface {
	SessionID() string
	Info() dvb.FrontendInfo
	APIVersion() version.API
	LegacyOnly() bool
	DeliverySystem() dvb.DeliverySystem
	SupportedSystems() []dvb.DeliverySystem
	Properties() []dvb.Property

	SetDeliverySystem(sys dvb.DeliverySystem) error
	SetCompatibleDeliverySystem(sys dvb.DeliverySystem) error
	GetParameters() error
	SetParameters() error
	RetrieveParm(cmd dvb.Command) (uint32, error)
	StoreParm(cmd dvb.Command, v uint32) error

	GetStats() dvb.Status
	Stats() []dvb.Property
	GetEvent() (dvb.Status, error)

	SecVoltage(on, v18 bool) error
	SecTone(t dvb.Tone) error
	LNBHighVoltage(on bool) error
	DiseqcBurst(miniB bool) error
	DiseqcCmd(msg []byte) error
	DiseqcReply(maxLen int, timeout time.Duration) ([]byte, error)
}

// Shell handles interactive mode for dvbfe-tool.
type Shell struct {
	fe  Frontend
	rl  *readline.Instance
	out io.Writer
}

// New creates a shell reading commands through readline.
func New(fe Frontend) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "dvbfe> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Shell{fe: fe, rl: rl, out: rl.Stdout()}, nil
}

func completer() *readline.PrefixCompleter {
	systems := readline.PcItemDynamic(func(string) []string {
		return systemNames()
	})
	return readline.NewPrefixCompleter(
		readline.PcItem("help"),
		readline.PcItem("info"),
		readline.PcItem("sys", systems),
		readline.PcItem("compat", systems),
		readline.PcItem("get"),
		readline.PcItem("set"),
		readline.PcItem("tune"),
		readline.PcItem("props"),
		readline.PcItem("stats"),
		readline.PcItem("event"),
		readline.PcItem("voltage", readline.PcItem("13"), readline.PcItem("18"), readline.PcItem("off")),
		readline.PcItem("tone", readline.PcItem("on"), readline.PcItem("off")),
		readline.PcItem("highvolt", readline.PcItem("on"), readline.PcItem("off")),
		readline.PcItem("burst", readline.PcItem("a"), readline.PcItem("b")),
		readline.PcItem("diseqc"),
		readline.PcItem("reply"),
		readline.PcItem("quit"),
	)
}

func systemNames() []string {
	var names []string
	for _, sys := range dvb.AllDeliverySystems() {
		names = append(names, sys.String())
	}
	return names
}

// Stdout returns a writer that properly coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (s *Shell) Stdout() io.Writer {
	return s.rl.Stdout()
}

// Stderr returns a writer that properly coordinates with the readline input.
func (s *Shell) Stderr() io.Writer {
	return s.rl.Stderr()
}

// Run starts the interactive command loop. It returns when the user quits,
// input ends or ctx is done.
func (s *Shell) Run(ctx context.Context) {
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			return
		}
		if !s.Exec(line) {
			return
		}
	}
}

// Exec runs one command line. It returns false when the shell should exit.
func (s *Shell) Exec(line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()
	case "info", "i":
		s.cmdInfo()
	case "sys":
		s.cmdSys(args, false)
	case "compat":
		s.cmdSys(args, true)
	case "get", "g":
		s.cmdGet(args)
	case "set", "s":
		s.cmdSet(args)
	case "tune", "t":
		s.report(s.fe.SetParameters())
	case "props", "p":
		s.printProperties()
	case "stats":
		s.cmdStats()
	case "event", "e":
		s.cmdEvent()
	case "voltage", "v":
		s.cmdVoltage(args)
	case "tone":
		s.cmdTone(args)
	case "highvolt":
		s.cmdHighVoltage(args)
	case "burst":
		s.cmdBurst(args)
	case "diseqc":
		s.cmdDiseqc(args)
	case "reply":
		s.cmdReply(args)
	case "quit", "exit", "q":
		fmt.Fprintln(s.out, "Exiting...")
		return false
	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
DVB Frontend Commands:
  Session:
    info                 - Show device, API version and delivery systems
    sys <system>         - Switch delivery system (e.g. DVBT2, DVBC/ANNEX_A)
    compat <system>      - Switch to a system directly or through emulation

  Parameters:
    props                - Show the property store
    get [cmd...]         - Read parameters from the device and show them
    set <cmd> <value>    - Store a value (e.g. set FREQUENCY 474000000, set MODULATION QAM/64)
    tune                 - Send the stored parameters to the device

  Statistics:
    stats                - Read lock status and signal quality
    event                - Refresh parameters and statistics

  Satellite Equipment Control:
    voltage 13|18|off    - Set the LNB supply
    tone on|off          - Switch the 22 kHz tone
    highvolt on|off      - Raise the LNB supply
    burst a|b            - Send a mini DiSEqC burst
    diseqc <hex>         - Send a DiSEqC master command (e.g. diseqc e0 10 38 f3)
    reply [len] [ms]     - Wait for a DiSEqC slave reply

  General:
    help                 - Show this help
    quit                 - Exit`)
}

// report prints the outcome of a command.
func (s *Shell) report(err error) {
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v (code %d)\n", err, dvb.Code(err))
		return
	}
	fmt.Fprintln(s.out, "OK")
}

func (s *Shell) cmdInfo() {
	info := s.fe.Info()
	mode := "property"
	if s.fe.LegacyOnly() {
		mode = "legacy"
	}

	fmt.Fprintln(s.out, "\nFrontend")
	fmt.Fprintln(s.out, "-------------------------------------------")
	fmt.Fprintf(s.out, "  Name:        %s\n", info.DeviceName())
	fmt.Fprintf(s.out, "  Type:        %s\n", info.Type)
	fmt.Fprintf(s.out, "  API:         %s (%s)\n", s.fe.APIVersion(), mode)
	fmt.Fprintf(s.out, "  Frequency:   %d - %d\n", info.FrequencyMin, info.FrequencyMax)
	fmt.Fprintf(s.out, "  Caps:        %s\n", strings.Join(catalog.CapNames(info.Caps), " "))
	fmt.Fprintf(s.out, "  Session:     %s\n", s.fe.SessionID())

	names := make([]string, 0, len(s.fe.SupportedSystems()))
	for _, sys := range s.fe.SupportedSystems() {
		if sys == s.fe.DeliverySystem() {
			names = append(names, "["+sys.String()+"]")
		} else {
			names = append(names, sys.String())
		}
	}
	fmt.Fprintf(s.out, "  Systems:     %s\n", strings.Join(names, " "))
	fmt.Fprintln(s.out)
}

func (s *Shell) cmdSys(args []string, compat bool) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: sys <system>")
		fmt.Fprintf(s.out, "  Systems: %s\n", strings.Join(systemNames(), " "))
		return
	}
	sys, err := dvb.ParseDeliverySystem(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Invalid system: %v\n", err)
		return
	}
	if compat {
		s.report(s.fe.SetCompatibleDeliverySystem(sys))
	} else {
		s.report(s.fe.SetDeliverySystem(sys))
	}
}

func (s *Shell) cmdGet(args []string) {
	if err := s.fe.GetParameters(); err != nil {
		s.report(err)
		return
	}
	if len(args) == 0 {
		s.printProperties()
		return
	}
	for _, a := range args {
		cmd, err := dvb.ParseCommand(a)
		if err != nil {
			fmt.Fprintf(s.out, "Invalid command: %v\n", err)
			continue
		}
		v, err := s.fe.RetrieveParm(cmd)
		if err != nil {
			fmt.Fprintf(s.out, "  %s: not in the %s property list\n", cmd, s.fe.DeliverySystem())
			continue
		}
		fmt.Fprintf(s.out, "  %s = %s\n", cmd, catalog.AttrName(cmd, v))
	}
}

func (s *Shell) cmdSet(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(s.out, "Usage: set <cmd> <value>")
		fmt.Fprintln(s.out, "  Example: set FREQUENCY 474000000")
		return
	}
	cmd, v, err := ParseAssignment(args[0] + "=" + args[1])
	if err != nil {
		fmt.Fprintf(s.out, "Invalid value: %v\n", err)
		return
	}
	s.report(s.fe.StoreParm(cmd, v))
}

func (s *Shell) printProperties() {
	fmt.Fprintf(s.out, "\n%s properties:\n", s.fe.DeliverySystem())
	for _, p := range s.fe.Properties() {
		fmt.Fprintf(s.out, "  %-28s %s\n", p.Cmd.String(), catalog.AttrName(p.Cmd, p.Data))
	}
}

func (s *Shell) printStats(status dvb.Status) {
	fmt.Fprintf(s.out, "  Status: %s\n", strings.Join(catalog.StatusNames(status), " "))
	for _, p := range s.fe.Stats()[1:] {
		fmt.Fprintf(s.out, "  %-24s %d (0x%x)\n", p.Cmd.String(), p.Data, p.Data)
	}
}

func (s *Shell) cmdStats() {
	s.printStats(s.fe.GetStats())
}

func (s *Shell) cmdEvent() {
	status, err := s.fe.GetEvent()
	if err != nil {
		s.report(err)
		return
	}
	s.printStats(status)
}

func parseOnOff(args []string) (bool, bool) {
	if len(args) != 1 {
		return false, false
	}
	switch strings.ToLower(args[0]) {
	case "on", "1", "true":
		return true, true
	case "off", "0", "false":
		return false, true
	}
	return false, false
}

func (s *Shell) cmdVoltage(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: voltage 13|18|off")
		return
	}
	switch strings.ToLower(args[0]) {
	case "13":
		s.report(s.fe.SecVoltage(true, false))
	case "18":
		s.report(s.fe.SecVoltage(true, true))
	case "off", "0":
		s.report(s.fe.SecVoltage(false, false))
	default:
		fmt.Fprintln(s.out, "Usage: voltage 13|18|off")
	}
}

func (s *Shell) cmdTone(args []string) {
	on, ok := parseOnOff(args)
	if !ok {
		fmt.Fprintln(s.out, "Usage: tone on|off")
		return
	}
	if on {
		s.report(s.fe.SecTone(dvb.ToneOn))
	} else {
		s.report(s.fe.SecTone(dvb.ToneOff))
	}
}

func (s *Shell) cmdHighVoltage(args []string) {
	on, ok := parseOnOff(args)
	if !ok {
		fmt.Fprintln(s.out, "Usage: highvolt on|off")
		return
	}
	s.report(s.fe.LNBHighVoltage(on))
}

func (s *Shell) cmdBurst(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: burst a|b")
		return
	}
	switch strings.ToLower(args[0]) {
	case "a":
		s.report(s.fe.DiseqcBurst(false))
	case "b":
		s.report(s.fe.DiseqcBurst(true))
	default:
		fmt.Fprintln(s.out, "Usage: burst a|b")
	}
}

func (s *Shell) cmdDiseqc(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "Usage: diseqc <hex bytes>")
		fmt.Fprintln(s.out, "  Example: diseqc e0 10 38 f3")
		return
	}
	msg, err := hex.DecodeString(strings.Join(args, ""))
	if err != nil {
		fmt.Fprintf(s.out, "Invalid message: %v\n", err)
		return
	}
	s.report(s.fe.DiseqcCmd(msg))
}

func (s *Shell) cmdReply(args []string) {
	maxLen, timeout := dvb.MaxSlaveReplyLen, 100*time.Millisecond
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(s.out, "Invalid length: %v\n", err)
			return
		}
		maxLen = n
	}
	if len(args) > 1 {
		ms, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintf(s.out, "Invalid timeout: %v\n", err)
			return
		}
		timeout = time.Duration(ms) * time.Millisecond
	}

	reply, err := s.fe.DiseqcReply(maxLen, timeout)
	if err != nil {
		s.report(err)
		return
	}
	fmt.Fprintf(s.out, "  Reply: % x\n", reply)
}

// ParseAssignment parses "CMD=VALUE", where CMD is a property command name
// with or without the DTV_ prefix and VALUE a number or a value label.
func ParseAssignment(s string) (dvb.Command, uint32, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return 0, 0, fmt.Errorf("%q is not CMD=VALUE", s)
	}
	cmd, err := dvb.ParseCommand(name)
	if err != nil {
		return 0, 0, err
	}
	v, err := catalog.ParseAttr(cmd, value)
	if err != nil {
		return 0, 0, err
	}
	return cmd, v, nil
}
