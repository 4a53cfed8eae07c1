// Package dvbsim provides an in-memory DVB frontend that implements
// dvb.Device. It models both protocol generations: devices reporting an API
// version below 5.0 reject property calls the way pre-v5 kernels do.
package dvbsim

import (
	"maps"
	"slices"
	"sync"
	"syscall"

	"github.com/dvbfe/dvbfe-go/pkg/dvb"
)

// Config describes the simulated hardware.
type Config struct {
	Name       string
	Type       dvb.FEType
	Caps       dvb.Caps
	APIVersion uint32

	// Systems lists the delivery systems reported by enumeration, in
	// device order. Current is the system active at power-on.
	Systems []dvb.DeliverySystem
	Current dvb.DeliverySystem
	// Emulated systems are accepted by set-properties without being
	// enumerated, as drivers do for systems they emulate.
	Emulated []dvb.DeliverySystem

	// Signal quality returned once tuned.
	BER               uint32
	SignalStrength    uint16
	SNR               uint16
	UncorrectedBlocks uint32
}

// Device is a simulated frontend. It is safe for concurrent use.
type Device struct {
	mu     sync.Mutex
	cfg    Config
	closed bool

	current dvb.DeliverySystem
	values  map[dvb.Command]uint32
	legacy  dvb.FrontendParameters
	status  dvb.Status
	tuned   int

	voltage     dvb.Voltage
	tone        dvb.Tone
	highVoltage bool
	bursts      []dvb.MiniCmd
	commands    [][]byte
	replies     [][]byte

	calls  []string
	faults map[string]error
}

// New returns a simulated frontend in its power-on state.
func New(cfg Config) *Device {
	return &Device{
		cfg:     cfg,
		current: cfg.Current,
		values:  make(map[dvb.Command]uint32),
		voltage: dvb.VoltageOff,
		tone:    dvb.ToneOff,
		faults:  make(map[string]error),
	}
}

// DVBT returns the configuration of a DVB-T/T2 terrestrial tuner.
func DVBT() Config {
	return Config{
		Name:       "Simulated DVB-T/T2",
		Type:       dvb.FETypeOFDM,
		Caps:       dvb.CapsCanInversionAuto | dvb.CapsCanFECAuto | dvb.CapsCanQAMAuto | dvb.CapsCanTransmissionModeAuto | dvb.CapsCanGuardIntervalAuto | dvb.CapsCanHierarchyAuto | dvb.CapsCan2GModulation,
		APIVersion: 0x0505,
		Systems:    []dvb.DeliverySystem{dvb.SysDVBT, dvb.SysDVBT2},
		Current:    dvb.SysDVBT,
	}
}

// DVBS returns the configuration of a DVB-S/S2 satellite tuner.
func DVBS() Config {
	return Config{
		Name:       "Simulated DVB-S/S2",
		Type:       dvb.FETypeQPSK,
		Caps:       dvb.CapsCanInversionAuto | dvb.CapsCanFECAuto | dvb.CapsCanQPSK | dvb.CapsCan2GModulation,
		APIVersion: 0x0505,
		Systems:    []dvb.DeliverySystem{dvb.SysDVBS, dvb.SysDVBS2},
		Current:    dvb.SysDVBS,
	}
}

// Fail makes every later call named op (e.g. "FE_READ_BER") return err.
// A nil err clears the fault.
func (d *Device) Fail(op string, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err == nil {
		delete(d.faults, op)
		return
	}
	d.faults[op] = err
}

// QueueReply queues a DiSEqC slave reply for the next receive.
func (d *Device) QueueReply(msg []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.replies = append(d.replies, slices.Clone(msg))
}

// Calls returns the names of all control calls made so far.
func (d *Device) Calls() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.calls)
}

// Snapshot is the observable state of the simulated hardware.
type Snapshot struct {
	Current     dvb.DeliverySystem
	Values      map[dvb.Command]uint32
	Legacy      dvb.FrontendParameters
	Tuned       int
	Voltage     dvb.Voltage
	Tone        dvb.Tone
	HighVoltage bool
	Bursts      []dvb.MiniCmd
	Commands    [][]byte
	Closed      bool
}

// State returns a copy of the simulated hardware state.
func (d *Device) State() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	cmds := make([][]byte, len(d.commands))
	for i, c := range d.commands {
		cmds[i] = slices.Clone(c)
	}
	return Snapshot{
		Current:     d.current,
		Values:      maps.Clone(d.values),
		Legacy:      d.legacy,
		Tuned:       d.tuned,
		Voltage:     d.voltage,
		Tone:        d.tone,
		HighVoltage: d.highVoltage,
		Bursts:      slices.Clone(d.bursts),
		Commands:    cmds,
		Closed:      d.closed,
	}
}

// enter records the call and returns the error it must fail with, if any.
// The caller holds d.mu.
func (d *Device) enter(op string) error {
	d.calls = append(d.calls, op)
	if d.closed {
		return dvb.NewError(dvb.KindDevice, op, syscall.EBADF)
	}
	if err, ok := d.faults[op]; ok {
		return dvb.NewError(dvb.KindDevice, op, err)
	}
	return nil
}

func (d *Device) modern() bool {
	return d.cfg.APIVersion >= 0x0500
}

func (d *Device) GetInfo() (dvb.FrontendInfo, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.enter("FE_GET_INFO"); err != nil {
		return dvb.FrontendInfo{}, err
	}
	info := dvb.FrontendInfo{
		Type:          d.cfg.Type,
		Caps:          d.cfg.Caps,
		FrequencyMin:  47000000,
		FrequencyMax:  862000000,
		SymbolRateMin: 1000000,
		SymbolRateMax: 45000000,
	}
	if d.cfg.Type == dvb.FETypeQPSK {
		// Satellite tuners report kHz.
		info.FrequencyMin, info.FrequencyMax = 950000, 2150000
	}
	info.SetDeviceName(d.cfg.Name)
	return info, nil
}

func (d *Device) GetProperties(props []dvb.Property) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.enter("FE_GET_PROPERTY"); err != nil {
		return err
	}
	if !d.modern() {
		return dvb.NewError(dvb.KindDevice, "FE_GET_PROPERTY", syscall.ENOTTY)
	}
	for i := range props {
		switch c := props[i].Cmd; {
		case c == dvb.CmdAPIVersion:
			props[i].Data = d.cfg.APIVersion
		case c == dvb.CmdDeliverySystem:
			props[i].Data = uint32(d.current)
		case !c.IsStandard():
			return dvb.NewError(dvb.KindDevice, "FE_GET_PROPERTY", syscall.EINVAL)
		default:
			props[i].Data = d.values[c]
		}
	}
	return nil
}

func (d *Device) SetProperties(props []dvb.Property) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.enter("FE_SET_PROPERTY"); err != nil {
		return err
	}
	if !d.modern() {
		return dvb.NewError(dvb.KindDevice, "FE_SET_PROPERTY", syscall.ENOTTY)
	}
	for _, p := range props {
		switch {
		case !p.Cmd.IsStandard():
			return dvb.NewError(dvb.KindDevice, "FE_SET_PROPERTY", syscall.EINVAL)
		case p.Cmd == dvb.CmdDeliverySystem:
			sys := dvb.DeliverySystem(p.Data)
			if !slices.Contains(d.cfg.Systems, sys) && !slices.Contains(d.cfg.Emulated, sys) {
				return dvb.NewError(dvb.KindDevice, "FE_SET_PROPERTY", syscall.EINVAL)
			}
			d.current = sys
		case p.Cmd == dvb.CmdClear:
			clear(d.values)
		case p.Cmd == dvb.CmdTune:
			d.tune(d.values[dvb.CmdFrequency])
		default:
			d.values[p.Cmd] = p.Data
		}
	}
	return nil
}

// tune locks onto any non-zero frequency. The caller holds d.mu.
func (d *Device) tune(freq uint32) {
	d.tuned++
	if freq == 0 {
		d.status = dvb.StatusTimedOut
		return
	}
	d.status = dvb.StatusHasSignal | dvb.StatusHasCarrier | dvb.StatusHasViterbi | dvb.StatusHasSync | dvb.StatusHasLock
}

func (d *Device) EnumDeliverySystems() ([]dvb.DeliverySystem, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.enter("FE_GET_PROPERTY"); err != nil {
		return nil, err
	}
	if d.cfg.APIVersion < 0x0505 {
		return nil, dvb.NewError(dvb.KindDevice, "FE_GET_PROPERTY", syscall.EINVAL)
	}
	return slices.Clone(d.cfg.Systems), nil
}

func (d *Device) GetFrontend() (dvb.FrontendParameters, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.enter("FE_GET_FRONTEND"); err != nil {
		return dvb.FrontendParameters{}, err
	}
	return d.legacy, nil
}

func (d *Device) SetFrontend(p dvb.FrontendParameters) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.enter("FE_SET_FRONTEND"); err != nil {
		return err
	}
	d.legacy = p
	d.tune(p.Frequency)
	return nil
}

func (d *Device) GetEvent() (dvb.FrontendEvent, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.enter("FE_GET_EVENT"); err != nil {
		return dvb.FrontendEvent{}, err
	}
	if d.tuned == 0 {
		return dvb.FrontendEvent{}, dvb.NewError(dvb.KindDevice, "FE_GET_EVENT", syscall.EWOULDBLOCK)
	}
	return dvb.FrontendEvent{Status: d.status, Parameters: d.legacy}, nil
}

func (d *Device) ReadStatus() (dvb.Status, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.enter("FE_READ_STATUS"); err != nil {
		return 0, err
	}
	return d.status, nil
}

func (d *Device) locked() bool {
	return d.status.Has(dvb.StatusHasLock)
}

func (d *Device) ReadBER() (uint32, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.enter("FE_READ_BER"); err != nil {
		return 0, err
	}
	if !d.locked() {
		return 0, nil
	}
	return d.cfg.BER, nil
}

func (d *Device) ReadSignalStrength() (uint16, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.enter("FE_READ_SIGNAL_STRENGTH"); err != nil {
		return 0, err
	}
	if !d.locked() {
		return 0, nil
	}
	return d.cfg.SignalStrength, nil
}

func (d *Device) ReadSNR() (uint16, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.enter("FE_READ_SNR"); err != nil {
		return 0, err
	}
	if !d.locked() {
		return 0, nil
	}
	return d.cfg.SNR, nil
}

func (d *Device) ReadUncorrectedBlocks() (uint32, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.enter("FE_READ_UNCORRECTED_BLOCKS"); err != nil {
		return 0, err
	}
	return d.cfg.UncorrectedBlocks, nil
}

func (d *Device) SetVoltage(v dvb.Voltage) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.enter("FE_SET_VOLTAGE"); err != nil {
		return err
	}
	if v > dvb.VoltageOff {
		return dvb.NewError(dvb.KindDevice, "FE_SET_VOLTAGE", syscall.EINVAL)
	}
	d.voltage = v
	return nil
}

func (d *Device) SetTone(t dvb.Tone) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.enter("FE_SET_TONE"); err != nil {
		return err
	}
	if t > dvb.ToneOff {
		return dvb.NewError(dvb.KindDevice, "FE_SET_TONE", syscall.EINVAL)
	}
	d.tone = t
	return nil
}

func (d *Device) EnableHighLNBVoltage(on bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.enter("FE_ENABLE_HIGH_LNB_VOLTAGE"); err != nil {
		return err
	}
	d.highVoltage = on
	return nil
}

func (d *Device) SendBurst(b dvb.MiniCmd) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.enter("FE_DISEQC_SEND_BURST"); err != nil {
		return err
	}
	d.bursts = append(d.bursts, b)
	return nil
}

func (d *Device) SendMasterCmd(cmd dvb.DiseqcMasterCmd) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.enter("FE_DISEQC_SEND_MASTER_CMD"); err != nil {
		return err
	}
	if cmd.MsgLen < 3 || int(cmd.MsgLen) > len(cmd.Msg) {
		return dvb.NewError(dvb.KindDevice, "FE_DISEQC_SEND_MASTER_CMD", syscall.EINVAL)
	}
	d.commands = append(d.commands, slices.Clone(cmd.Msg[:cmd.MsgLen]))
	return nil
}

func (d *Device) RecvSlaveReply(reply *dvb.DiseqcSlaveReply) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.enter("FE_DISEQC_RECV_SLAVE_REPLY"); err != nil {
		return err
	}
	if len(d.replies) == 0 {
		return dvb.NewError(dvb.KindDevice, "FE_DISEQC_RECV_SLAVE_REPLY", syscall.ETIMEDOUT)
	}
	msg := d.replies[0]
	d.replies = d.replies[1:]

	n := min(len(msg), int(reply.MsgLen), len(reply.Msg))
	reply.Msg = [dvb.MaxSlaveReplyLen]uint8{}
	copy(reply.Msg[:], msg[:n])
	reply.MsgLen = uint8(n)
	return nil
}

func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.enter("close"); err != nil {
		return err
	}
	d.closed = true
	return nil
}

var _ dvb.Device = (*Device)(nil)
