package dvb

import (
	"bytes"
	"unsafe"
)

// Property is a single (command, value) pair of the property protocol.
type Property struct {
	Cmd  Command
	Data uint32
}

// FrontendInfo mirrors struct dvb_frontend_info.
type FrontendInfo struct {
	Name                [128]byte
	Type                FEType
	FrequencyMin        uint32
	FrequencyMax        uint32
	FrequencyStepSize   uint32
	FrequencyTolerance  uint32
	SymbolRateMin       uint32
	SymbolRateMax       uint32
	SymbolRateTolerance uint32
	NotifierDelay       uint32
	Caps                Caps
}

// DeviceName returns the NUL-terminated device name as a string.
func (i *FrontendInfo) DeviceName() string {
	if n := bytes.IndexByte(i.Name[:], 0); n >= 0 {
		return string(i.Name[:n])
	}
	return string(i.Name[:])
}

// SetDeviceName stores name, truncated to fit with a terminating NUL.
func (i *FrontendInfo) SetDeviceName(name string) {
	i.Name = [128]byte{}
	copy(i.Name[:len(i.Name)-1], name)
}

// FrontendParameters mirrors struct dvb_frontend_parameters. U holds the
// per-family union; use QPSK, QAM, OFDM or VSB to view it.
type FrontendParameters struct {
	Frequency uint32
	Inversion uint32
	U         [7]uint32
}

// QPSKParameters is the satellite view of the legacy union.
type QPSKParameters struct {
	SymbolRate uint32
	FECInner   uint32
}

// QAMParameters is the cable view of the legacy union.
type QAMParameters struct {
	SymbolRate uint32
	FECInner   uint32
	Modulation uint32
}

// OFDMParameters is the terrestrial view of the legacy union.
type OFDMParameters struct {
	Bandwidth        uint32
	CodeRateHP       uint32
	CodeRateLP       uint32
	Constellation    uint32
	TransmissionMode uint32
	GuardInterval    uint32
	Hierarchy        uint32
}

// VSBParameters is the ATSC view of the legacy union.
type VSBParameters struct {
	Modulation uint32
}

// QPSK returns the union viewed as satellite parameters.
func (p *FrontendParameters) QPSK() *QPSKParameters {
	return (*QPSKParameters)(unsafe.Pointer(&p.U))
}

// QAM returns the union viewed as cable parameters.
func (p *FrontendParameters) QAM() *QAMParameters {
	return (*QAMParameters)(unsafe.Pointer(&p.U))
}

// OFDM returns the union viewed as terrestrial parameters.
func (p *FrontendParameters) OFDM() *OFDMParameters {
	return (*OFDMParameters)(unsafe.Pointer(&p.U))
}

// VSB returns the union viewed as ATSC parameters.
func (p *FrontendParameters) VSB() *VSBParameters {
	return (*VSBParameters)(unsafe.Pointer(&p.U))
}

// FrontendEvent mirrors struct dvb_frontend_event.
type FrontendEvent struct {
	Status     Status
	Parameters FrontendParameters
}

// Satellite Equipment Control values.
type (
	// Voltage selects the LNB supply voltage (fe_sec_voltage_t).
	Voltage uint32
	// Tone selects the 22 kHz continuous tone (fe_sec_tone_mode_t).
	Tone uint32
	// MiniCmd selects the tone-burst satellite (fe_sec_mini_cmd_t).
	MiniCmd uint32
)

const (
	Voltage13  Voltage = 0
	Voltage18  Voltage = 1
	VoltageOff Voltage = 2

	ToneOn  Tone = 0
	ToneOff Tone = 1

	MiniA MiniCmd = 0
	MiniB MiniCmd = 1
)

func (v Voltage) String() string {
	switch v {
	case Voltage13:
		return "13V"
	case Voltage18:
		return "18V"
	case VoltageOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

func (t Tone) String() string {
	switch t {
	case ToneOn:
		return "ON"
	case ToneOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// DiSEqC message limits.
const (
	// MaxMasterCmdLen is the longest DiSEqC master command in bytes.
	MaxMasterCmdLen = 6

	// MaxSlaveReplyLen is the longest DiSEqC slave reply in bytes.
	MaxSlaveReplyLen = 4
)

// DiseqcMasterCmd mirrors struct dvb_diseqc_master_cmd.
type DiseqcMasterCmd struct {
	Msg    [MaxMasterCmdLen]uint8
	MsgLen uint8
}

// DiseqcSlaveReply mirrors struct dvb_diseqc_slave_reply. Timeout is in
// milliseconds.
type DiseqcSlaveReply struct {
	Msg     [MaxSlaveReplyLen]uint8
	MsgLen  uint8
	Timeout int32
}
