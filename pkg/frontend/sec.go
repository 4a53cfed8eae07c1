package frontend

import (
	"time"

	"github.com/dvbfe/dvbfe-go/pkg/dvb"
	"github.com/dvbfe/dvbfe-go/pkg/sec"
)

// SEC returns the satellite equipment controller of the session.
func (f *Frontend) SEC() *sec.Controller { return f.sec }

// Resolver returns the satellite frequency resolver, nil without an LNB.
func (f *Frontend) Resolver() *sec.Resolver { return f.resolver }

// SecVoltage switches the LNB supply off, or on at 13 V or 18 V.
func (f *Frontend) SecVoltage(on, v18 bool) error {
	return f.sec.SetVoltage(on, v18)
}

// SecTone switches the 22 kHz tone.
func (f *Frontend) SecTone(t dvb.Tone) error {
	return f.sec.SetTone(t)
}

// LNBHighVoltage enables or disables the raised LNB supply.
func (f *Frontend) LNBHighVoltage(on bool) error {
	return f.sec.SetHighLNBVoltage(on)
}

// DiseqcBurst sends a mini DiSEqC burst for satellite A or B.
func (f *Frontend) DiseqcBurst(miniB bool) error {
	return f.sec.SendBurst(miniB)
}

// DiseqcCmd sends a DiSEqC master command of up to six bytes.
func (f *Frontend) DiseqcCmd(msg []byte) error {
	return f.sec.SendCommand(msg)
}

// DiseqcReply waits for a DiSEqC slave reply of up to four bytes.
func (f *Frontend) DiseqcReply(maxLen int, timeout time.Duration) ([]byte, error) {
	return f.sec.ReceiveReply(maxLen, timeout)
}
