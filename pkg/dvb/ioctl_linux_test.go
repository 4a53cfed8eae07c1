//go:build linux

package dvb

import (
	"testing"
	"unsafe"
)

func TestIoctlNumbers(t *testing.T) {
	tests := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"FE_GET_INFO", feGetInfo, 0x80a86f3d},
		{"FE_DISEQC_SEND_MASTER_CMD", feDiseqcSendMasterCmd, 0x40076f3f},
		{"FE_DISEQC_RECV_SLAVE_REPLY", feDiseqcRecvSlaveReply, 0x800c6f40},
		{"FE_DISEQC_SEND_BURST", feDiseqcSendBurst, 0x6f41},
		{"FE_SET_TONE", feSetTone, 0x6f42},
		{"FE_SET_VOLTAGE", feSetVoltage, 0x6f43},
		{"FE_ENABLE_HIGH_LNB_VOLTAGE", feEnableHighLNBVoltage, 0x6f44},
		{"FE_READ_STATUS", feReadStatus, 0x80046f45},
		{"FE_READ_BER", feReadBER, 0x80046f46},
		{"FE_READ_SIGNAL_STRENGTH", feReadSignalStrength, 0x80026f47},
		{"FE_READ_SNR", feReadSNR, 0x80026f48},
		{"FE_READ_UNCORRECTED_BLOCKS", feReadUncorrected, 0x80046f49},
		{"FE_SET_FRONTEND", feSetFrontend, 0x40246f4c},
		{"FE_GET_FRONTEND", feGetFrontend, 0x80246f4d},
		{"FE_GET_EVENT", feGetEvent, 0x80286f4e},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %#x, want %#x", tt.name, tt.got, tt.want)
		}
	}
}

func TestPropertyIoctlsOn64Bit(t *testing.T) {
	if unsafe.Sizeof(uintptr(0)) != 8 {
		t.Skip("64-bit layout only")
	}
	if unsafe.Sizeof(rawProperty{}) != 76 {
		t.Errorf("sizeof(dtv_property) = %d, want 76", unsafe.Sizeof(rawProperty{}))
	}
	if feSetProperty != 0x40106f52 {
		t.Errorf("FE_SET_PROPERTY = %#x", feSetProperty)
	}
	if feGetProperty != 0x80106f53 {
		t.Errorf("FE_GET_PROPERTY = %#x", feGetProperty)
	}
}

func TestOpenFrontendMissingDevice(t *testing.T) {
	_, err := OpenFrontend(97, 42)
	if err == nil {
		t.Fatal("expected error opening a missing adapter")
	}
	if KindOf(err) != KindOpen {
		t.Errorf("KindOf = %v, want %v", KindOf(err), KindOpen)
	}
}
