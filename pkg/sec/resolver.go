package sec

import (
	"fmt"
	"time"

	"github.com/dvbfe/dvbfe-go/pkg/dvb"
)

// Params is the property access a Resolver needs from a frontend session.
type Params interface {
	RetrieveParm(cmd dvb.Command) (uint32, error)
	StoreParm(cmd dvb.Command, v uint32) error
}

// diseqcSettle is the pause the DiSEqC bus needs between messages.
const diseqcSettle = 15 * time.Millisecond

// Resolver translates between the logical satellite frequency callers
// store and the intermediate frequency produced by the LNB, and prepares
// the LNB (supply voltage, tone, DiSEqC switch) for the selected band.
//
// Frequencies are in kHz.
type Resolver struct {
	ctrl *Controller
	lnb  LNB

	// satNumber selects the DiSEqC 1.0 committed switch port; negative
	// disables DiSEqC.
	satNumber int
	// diseqcWait is added after the switch command.
	diseqcWait time.Duration

	sleep func(time.Duration)

	// oscillator of the last tune, used on read back
	lo       uint32
	inverted bool
	tuned    bool
}

// NewResolver returns a resolver driving ctrl for lnb.
func NewResolver(ctrl *Controller, lnb LNB, satNumber int, diseqcWait time.Duration) *Resolver {
	return &Resolver{
		ctrl:       ctrl,
		lnb:        lnb,
		satNumber:  satNumber,
		diseqcWait: diseqcWait,
		sleep:      time.Sleep,
	}
}

// LNB returns the LNB the resolver drives.
func (r *Resolver) LNB() LNB {
	return r.lnb
}

// SetSleep replaces the function used to wait between DiSEqC messages.
func (r *Resolver) SetSleep(fn func(time.Duration)) {
	r.sleep = fn
}

// ToIF prepares the LNB for the stored frequency and polarization and
// replaces the stored frequency with the intermediate frequency.
func (r *Resolver) ToIF(p Params) error {
	freq, err := p.RetrieveParm(dvb.CmdFrequency)
	if err != nil {
		return err
	}
	pol, err := p.RetrieveParm(dvb.CmdPolarization)
	if err != nil {
		pol = dvb.PolarizationV
	}

	if !r.lnb.InRange(freq) {
		r.ctrl.logger.Warn("frequency outside LNB range", "lnb", r.lnb.Alias, "freq", freq)
	}

	lo, high := r.lnb.oscillator(freq, pol)
	if err := r.setup(pol, high); err != nil {
		return err
	}
	r.lo, r.inverted, r.tuned = lo, freq < lo, true

	ifreq := absDiff(freq, lo)
	r.ctrl.debug("satellite IF", "freq", freq, "lo", lo, "if", ifreq)
	return p.StoreParm(dvb.CmdFrequency, ifreq)
}

// FromIF converts the intermediate frequency read back from the tuner to
// the logical frequency. Without a previous ToIF the low band oscillator
// is assumed.
func (r *Resolver) FromIF(p Params) error {
	ifreq, err := p.RetrieveParm(dvb.CmdFrequency)
	if err != nil {
		return err
	}
	lo, inverted := r.lo, r.inverted
	if !r.tuned {
		lo, inverted = r.lnb.LowFreq*1000, r.lnb.aboveBand()
	}

	freq := ifreq + lo
	if inverted {
		freq = lo - min(ifreq, lo)
	}
	return p.StoreParm(dvb.CmdFrequency, freq)
}

// setup powers the LNB for the polarization, drives the DiSEqC switch when
// a satellite number is configured, and selects the band tone.
func (r *Resolver) setup(pol uint32, high bool) error {
	v18 := pol == dvb.PolarizationH || pol == dvb.PolarizationL
	if err := r.ctrl.SetVoltage(true, v18); err != nil {
		return err
	}

	if r.satNumber >= 0 {
		if err := r.ctrl.SetTone(dvb.ToneOff); err != nil {
			return err
		}
		r.sleep(diseqcSettle)

		if err := r.ctrl.SendCommand(CommittedSwitch(r.satNumber, v18, high)); err != nil {
			return fmt.Errorf("DiSEqC switch: %w", err)
		}
		r.sleep(diseqcSettle + r.diseqcWait)

		if err := r.ctrl.SendBurst(r.satNumber%2 == 1); err != nil {
			return err
		}
		r.sleep(diseqcSettle)
	}

	tone := dvb.ToneOff
	if high && r.lnb.DualBand() {
		tone = dvb.ToneOn
	}
	return r.ctrl.SetTone(tone)
}

// CommittedSwitch builds the DiSEqC 1.0 "write N0" command selecting
// input sat (0-3), polarization and band of a committed switch.
func CommittedSwitch(sat int, horizontal, high bool) []byte {
	b := byte(0xf0) | byte(sat&0x03)<<2
	if horizontal {
		b |= 0x02
	}
	if high {
		b |= 0x01
	}
	return []byte{0xe0, 0x10, 0x38, b}
}

func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}
