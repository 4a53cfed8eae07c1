package dvb

import (
	"encoding/binary"
	"time"

	"github.com/dvbfe/dvbfe-go/pkg/log"
)

// tracedDevice records every control call of the wrapped Device as an
// OUT event before the call and an IN event after it.
type tracedDevice struct {
	dev       Device
	logger    log.Logger
	sessionID string
	name      string
	now       func() time.Time
}

// Trace wraps dev so that its control calls are logged to logger. name
// identifies the device in the events (usually its path). A nil logger
// returns dev unchanged.
func Trace(dev Device, logger log.Logger, sessionID, name string) Device {
	if logger == nil {
		return dev
	}
	return &tracedDevice{dev: dev, logger: logger, sessionID: sessionID, name: name, now: time.Now}
}

func (t *tracedDevice) emit(dir log.Direction, call *log.CallEvent) {
	t.logger.Log(log.Event{
		Timestamp: t.now(),
		SessionID: t.sessionID,
		Direction: dir,
		Layer:     log.LayerDevice,
		Category:  log.CategoryCall,
		Device:    t.name,
		Call:      call,
	})
}

// call logs req, runs fn and logs the reply built by reply.
func (t *tracedDevice) call(req *log.CallEvent, fn func() error, reply func(*log.CallEvent)) error {
	t.emit(log.DirectionOut, req)
	start := t.now()
	err := fn()
	d := t.now().Sub(start)

	rep := &log.CallEvent{Name: req.Name, Duration: &d}
	if err != nil {
		rep.Err = err.Error()
	} else if reply != nil {
		reply(rep)
	}
	t.emit(log.DirectionIn, rep)
	return err
}

func propertyValues(props []Property) []log.PropertyValue {
	out := make([]log.PropertyValue, len(props))
	for i, p := range props {
		out[i] = log.PropertyValue{Cmd: uint32(p.Cmd), Value: p.Data}
	}
	return out
}

func value(v uint32) *uint32 { return &v }

// parameterCall records frequency and inversion as properties and the
// union words little-endian in the payload.
func parameterCall(r *log.CallEvent, p FrontendParameters) {
	r.Properties = []log.PropertyValue{
		{Cmd: uint32(CmdFrequency), Value: p.Frequency},
		{Cmd: uint32(CmdInversion), Value: p.Inversion},
	}
	r.Payload = make([]byte, 0, 4*len(p.U))
	for _, w := range p.U {
		r.Payload = binary.LittleEndian.AppendUint32(r.Payload, w)
	}
}

func (t *tracedDevice) GetInfo() (info FrontendInfo, err error) {
	err = t.call(&log.CallEvent{Name: "FE_GET_INFO"},
		func() error { info, err = t.dev.GetInfo(); return err },
		func(r *log.CallEvent) {
			r.Value = value(uint32(info.Type))
			r.Payload = []byte(info.DeviceName())
		})
	return info, err
}

func (t *tracedDevice) GetProperties(props []Property) error {
	return t.call(&log.CallEvent{Name: "FE_GET_PROPERTY", Properties: propertyValues(props)},
		func() error { return t.dev.GetProperties(props) },
		func(r *log.CallEvent) { r.Properties = propertyValues(props) })
}

func (t *tracedDevice) SetProperties(props []Property) error {
	return t.call(&log.CallEvent{Name: "FE_SET_PROPERTY", Properties: propertyValues(props)},
		func() error { return t.dev.SetProperties(props) }, nil)
}

func (t *tracedDevice) EnumDeliverySystems() (systems []DeliverySystem, err error) {
	err = t.call(&log.CallEvent{Name: "FE_GET_PROPERTY", Properties: []log.PropertyValue{{Cmd: uint32(CmdEnumDelsys)}}},
		func() error { systems, err = t.dev.EnumDeliverySystems(); return err },
		func(r *log.CallEvent) {
			r.Payload = make([]byte, len(systems))
			for i, s := range systems {
				r.Payload[i] = byte(s)
			}
		})
	return systems, err
}

func (t *tracedDevice) GetFrontend() (p FrontendParameters, err error) {
	err = t.call(&log.CallEvent{Name: "FE_GET_FRONTEND"},
		func() error { p, err = t.dev.GetFrontend(); return err },
		func(r *log.CallEvent) { parameterCall(r, p) })
	return p, err
}

func (t *tracedDevice) SetFrontend(p FrontendParameters) error {
	req := &log.CallEvent{Name: "FE_SET_FRONTEND"}
	parameterCall(req, p)
	return t.call(req, func() error { return t.dev.SetFrontend(p) }, nil)
}

func (t *tracedDevice) GetEvent() (ev FrontendEvent, err error) {
	err = t.call(&log.CallEvent{Name: "FE_GET_EVENT"},
		func() error { ev, err = t.dev.GetEvent(); return err },
		func(r *log.CallEvent) {
			parameterCall(r, ev.Parameters)
			r.Value = value(uint32(ev.Status))
		})
	return ev, err
}

func (t *tracedDevice) ReadStatus() (s Status, err error) {
	err = t.call(&log.CallEvent{Name: "FE_READ_STATUS"},
		func() error { s, err = t.dev.ReadStatus(); return err },
		func(r *log.CallEvent) { r.Value = value(uint32(s)) })
	return s, err
}

func (t *tracedDevice) ReadBER() (v uint32, err error) {
	err = t.call(&log.CallEvent{Name: "FE_READ_BER"},
		func() error { v, err = t.dev.ReadBER(); return err },
		func(r *log.CallEvent) { r.Value = value(v) })
	return v, err
}

func (t *tracedDevice) ReadSignalStrength() (v uint16, err error) {
	err = t.call(&log.CallEvent{Name: "FE_READ_SIGNAL_STRENGTH"},
		func() error { v, err = t.dev.ReadSignalStrength(); return err },
		func(r *log.CallEvent) { r.Value = value(uint32(v)) })
	return v, err
}

func (t *tracedDevice) ReadSNR() (v uint16, err error) {
	err = t.call(&log.CallEvent{Name: "FE_READ_SNR"},
		func() error { v, err = t.dev.ReadSNR(); return err },
		func(r *log.CallEvent) { r.Value = value(uint32(v)) })
	return v, err
}

func (t *tracedDevice) ReadUncorrectedBlocks() (v uint32, err error) {
	err = t.call(&log.CallEvent{Name: "FE_READ_UNCORRECTED_BLOCKS"},
		func() error { v, err = t.dev.ReadUncorrectedBlocks(); return err },
		func(r *log.CallEvent) { r.Value = value(v) })
	return v, err
}

func (t *tracedDevice) SetVoltage(v Voltage) error {
	return t.call(&log.CallEvent{Name: "FE_SET_VOLTAGE", Value: value(uint32(v))},
		func() error { return t.dev.SetVoltage(v) }, nil)
}

func (t *tracedDevice) SetTone(tone Tone) error {
	return t.call(&log.CallEvent{Name: "FE_SET_TONE", Value: value(uint32(tone))},
		func() error { return t.dev.SetTone(tone) }, nil)
}

func (t *tracedDevice) EnableHighLNBVoltage(on bool) error {
	var v uint32
	if on {
		v = 1
	}
	return t.call(&log.CallEvent{Name: "FE_ENABLE_HIGH_LNB_VOLTAGE", Value: &v},
		func() error { return t.dev.EnableHighLNBVoltage(on) }, nil)
}

func (t *tracedDevice) SendBurst(b MiniCmd) error {
	return t.call(&log.CallEvent{Name: "FE_DISEQC_SEND_BURST", Value: value(uint32(b))},
		func() error { return t.dev.SendBurst(b) }, nil)
}

func (t *tracedDevice) SendMasterCmd(cmd DiseqcMasterCmd) error {
	n := min(int(cmd.MsgLen), len(cmd.Msg))
	return t.call(&log.CallEvent{Name: "FE_DISEQC_SEND_MASTER_CMD", Payload: append([]byte(nil), cmd.Msg[:n]...)},
		func() error { return t.dev.SendMasterCmd(cmd) }, nil)
}

func (t *tracedDevice) RecvSlaveReply(reply *DiseqcSlaveReply) error {
	return t.call(&log.CallEvent{Name: "FE_DISEQC_RECV_SLAVE_REPLY", Value: value(uint32(reply.Timeout))},
		func() error { return t.dev.RecvSlaveReply(reply) },
		func(r *log.CallEvent) {
			n := min(int(reply.MsgLen), len(reply.Msg))
			r.Payload = append([]byte(nil), reply.Msg[:n]...)
		})
}

func (t *tracedDevice) Close() error {
	return t.call(&log.CallEvent{Name: "close"}, t.dev.Close, nil)
}

var _ Device = (*tracedDevice)(nil)
