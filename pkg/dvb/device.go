package dvb

import "fmt"

// Device is an open DVB frontend. Each method maps to one control call and
// blocks until the device answers. Implementations are not required to be
// safe for concurrent use.
type Device interface {
	// GetInfo returns the legacy info report (name, type, caps).
	GetInfo() (FrontendInfo, error)

	// GetProperties reads the values of props in place.
	GetProperties(props []Property) error

	// SetProperties writes props in order.
	SetProperties(props []Property) error

	// EnumDeliverySystems returns the delivery systems the device supports.
	EnumDeliverySystems() ([]DeliverySystem, error)

	GetFrontend() (FrontendParameters, error)
	SetFrontend(p FrontendParameters) error
	GetEvent() (FrontendEvent, error)

	ReadStatus() (Status, error)
	ReadBER() (uint32, error)
	ReadSignalStrength() (uint16, error)
	ReadSNR() (uint16, error)
	ReadUncorrectedBlocks() (uint32, error)

	SetVoltage(v Voltage) error
	SetTone(t Tone) error
	EnableHighLNBVoltage(on bool) error
	SendBurst(b MiniCmd) error
	SendMasterCmd(cmd DiseqcMasterCmd) error

	// RecvSlaveReply waits up to reply.Timeout milliseconds for at most
	// reply.MsgLen bytes and updates reply with what the device received.
	RecvSlaveReply(reply *DiseqcSlaveReply) error

	Close() error
}

// FrontendPath returns the character device path of a frontend.
func FrontendPath(adapter, frontend int) string {
	return fmt.Sprintf("/dev/dvb/adapter%d/frontend%d", adapter, frontend)
}
