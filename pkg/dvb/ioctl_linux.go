//go:build linux

package dvb

import (
	"encoding/binary"
	"unsafe"

	"golang.org/x/sys/unix"
)

// rawProperty mirrors the packed struct dtv_property. The union is kept as
// raw bytes: u.data lives at U[0:4], u.buffer.data at U[0:32] and
// u.buffer.len at U[32:36].
type rawProperty struct {
	Cmd      uint32
	Reserved [3]uint32
	U        [32 + 4 + 12 + unsafe.Sizeof(uintptr(0))]byte
	Result   int32
}

// rawProperties mirrors struct dtv_properties.
type rawProperties struct {
	Num   uint32
	Props *rawProperty
}

const (
	iocNone  = 0
	iocWrite = 1
	iocRead  = 2
)

func ioc(dir, nr, size uintptr) uintptr {
	return dir<<30 | size<<16 | uintptr('o')<<8 | nr
}

var (
	feGetInfo              = ioc(iocRead, 61, unsafe.Sizeof(FrontendInfo{}))
	feDiseqcSendMasterCmd  = ioc(iocWrite, 63, unsafe.Sizeof(DiseqcMasterCmd{}))
	feDiseqcRecvSlaveReply = ioc(iocRead, 64, unsafe.Sizeof(DiseqcSlaveReply{}))
	feDiseqcSendBurst      = ioc(iocNone, 65, 0)
	feSetTone              = ioc(iocNone, 66, 0)
	feSetVoltage           = ioc(iocNone, 67, 0)
	feEnableHighLNBVoltage = ioc(iocNone, 68, 0)
	feReadStatus           = ioc(iocRead, 69, 4)
	feReadBER              = ioc(iocRead, 70, 4)
	feReadSignalStrength   = ioc(iocRead, 71, 2)
	feReadSNR              = ioc(iocRead, 72, 2)
	feReadUncorrected      = ioc(iocRead, 73, 4)
	feSetFrontend          = ioc(iocWrite, 76, unsafe.Sizeof(FrontendParameters{}))
	feGetFrontend          = ioc(iocRead, 77, unsafe.Sizeof(FrontendParameters{}))
	feGetEvent             = ioc(iocRead, 78, unsafe.Sizeof(FrontendEvent{}))
	feSetProperty          = ioc(iocWrite, 82, unsafe.Sizeof(rawProperties{}))
	feGetProperty          = ioc(iocRead, 83, unsafe.Sizeof(rawProperties{}))
)

// frontendFile is the Linux character-device implementation of Device.
type frontendFile struct {
	fd   int
	path string
}

// OpenFrontend opens /dev/dvb/adapterN/frontendM for reading and writing.
func OpenFrontend(adapter, frontend int) (Device, error) {
	path := FrontendPath(adapter, frontend)
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, NewError(KindOpen, path, err)
	}
	return &frontendFile{fd: fd, path: path}, nil
}

func (f *frontendFile) ioctl(op string, req uintptr, arg unsafe.Pointer) error {
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(f.fd), req, uintptr(arg)); errno != 0 {
		return NewError(KindDevice, op, errno)
	}
	return nil
}

// ioctlValue passes v directly as the ioctl argument.
func (f *frontendFile) ioctlValue(op string, req uintptr, v uintptr) error {
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(f.fd), req, v); errno != 0 {
		return NewError(KindDevice, op, errno)
	}
	return nil
}

func (f *frontendFile) GetInfo() (FrontendInfo, error) {
	var info FrontendInfo
	err := f.ioctl("FE_GET_INFO", feGetInfo, unsafe.Pointer(&info))
	return info, err
}

func (f *frontendFile) properties(op string, req uintptr, props []Property) ([]rawProperty, error) {
	if len(props) == 0 {
		return nil, nil
	}
	raw := make([]rawProperty, len(props))
	for i, p := range props {
		raw[i].Cmd = uint32(p.Cmd)
		binary.NativeEndian.PutUint32(raw[i].U[0:4], p.Data)
	}
	arg := rawProperties{Num: uint32(len(raw)), Props: &raw[0]}
	if err := f.ioctl(op, req, unsafe.Pointer(&arg)); err != nil {
		return nil, err
	}
	return raw, nil
}

func (f *frontendFile) GetProperties(props []Property) error {
	raw, err := f.properties("FE_GET_PROPERTY", feGetProperty, props)
	if err != nil {
		return err
	}
	for i := range raw {
		props[i].Data = binary.NativeEndian.Uint32(raw[i].U[0:4])
	}
	return nil
}

func (f *frontendFile) SetProperties(props []Property) error {
	_, err := f.properties("FE_SET_PROPERTY", feSetProperty, props)
	return err
}

func (f *frontendFile) EnumDeliverySystems() ([]DeliverySystem, error) {
	raw, err := f.properties("FE_GET_PROPERTY", feGetProperty, []Property{{Cmd: CmdEnumDelsys}})
	if err != nil {
		return nil, err
	}
	n := binary.NativeEndian.Uint32(raw[0].U[32:36])
	if n > 32 {
		n = 32
	}
	out := make([]DeliverySystem, 0, n)
	for _, b := range raw[0].U[:n] {
		out = append(out, DeliverySystem(b))
	}
	return out, nil
}

func (f *frontendFile) GetFrontend() (FrontendParameters, error) {
	var p FrontendParameters
	err := f.ioctl("FE_GET_FRONTEND", feGetFrontend, unsafe.Pointer(&p))
	return p, err
}

func (f *frontendFile) SetFrontend(p FrontendParameters) error {
	return f.ioctl("FE_SET_FRONTEND", feSetFrontend, unsafe.Pointer(&p))
}

func (f *frontendFile) GetEvent() (FrontendEvent, error) {
	var ev FrontendEvent
	err := f.ioctl("FE_GET_EVENT", feGetEvent, unsafe.Pointer(&ev))
	return ev, err
}

func (f *frontendFile) ReadStatus() (Status, error) {
	var s Status
	err := f.ioctl("FE_READ_STATUS", feReadStatus, unsafe.Pointer(&s))
	return s, err
}

func (f *frontendFile) ReadBER() (uint32, error) {
	var v uint32
	err := f.ioctl("FE_READ_BER", feReadBER, unsafe.Pointer(&v))
	return v, err
}

func (f *frontendFile) ReadSignalStrength() (uint16, error) {
	var v uint16
	err := f.ioctl("FE_READ_SIGNAL_STRENGTH", feReadSignalStrength, unsafe.Pointer(&v))
	return v, err
}

func (f *frontendFile) ReadSNR() (uint16, error) {
	var v uint16
	err := f.ioctl("FE_READ_SNR", feReadSNR, unsafe.Pointer(&v))
	return v, err
}

func (f *frontendFile) ReadUncorrectedBlocks() (uint32, error) {
	var v uint32
	err := f.ioctl("FE_READ_UNCORRECTED_BLOCKS", feReadUncorrected, unsafe.Pointer(&v))
	return v, err
}

func (f *frontendFile) SetVoltage(v Voltage) error {
	return f.ioctlValue("FE_SET_VOLTAGE", feSetVoltage, uintptr(v))
}

func (f *frontendFile) SetTone(t Tone) error {
	return f.ioctlValue("FE_SET_TONE", feSetTone, uintptr(t))
}

func (f *frontendFile) EnableHighLNBVoltage(on bool) error {
	var v uintptr
	if on {
		v = 1
	}
	return f.ioctlValue("FE_ENABLE_HIGH_LNB_VOLTAGE", feEnableHighLNBVoltage, v)
}

func (f *frontendFile) SendBurst(b MiniCmd) error {
	return f.ioctlValue("FE_DISEQC_SEND_BURST", feDiseqcSendBurst, uintptr(b))
}

func (f *frontendFile) SendMasterCmd(cmd DiseqcMasterCmd) error {
	return f.ioctl("FE_DISEQC_SEND_MASTER_CMD", feDiseqcSendMasterCmd, unsafe.Pointer(&cmd))
}

func (f *frontendFile) RecvSlaveReply(reply *DiseqcSlaveReply) error {
	return f.ioctl("FE_DISEQC_RECV_SLAVE_REPLY", feDiseqcRecvSlaveReply, unsafe.Pointer(reply))
}

func (f *frontendFile) Close() error {
	if err := unix.Close(f.fd); err != nil {
		return NewError(KindDevice, "close "+f.path, err)
	}
	return nil
}
