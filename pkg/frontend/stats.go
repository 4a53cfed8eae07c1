package frontend

import (
	"github.com/dvbfe/dvbfe-go/pkg/catalog"
	"github.com/dvbfe/dvbfe-go/pkg/dvb"
)

// Values stored for a metric whose read failed.
const (
	statusUnknown   = 0xFFFFFFFF
	strengthUnknown = 0xFFFF
	snrUnknown      = 0xFFFF
)

// GetStats reads lock status, bit error rate, signal strength, SNR and
// uncorrected blocks into the statistics set and returns the status. A
// failing read stores that metric's unknown value; the others are still
// read.
func (f *Frontend) GetStats() dvb.Status {
	status, err := f.dev.ReadStatus()
	if err != nil {
		f.logger.Error("frontend call failed", "op", "FE_READ_STATUS", "error", err)
		status = statusUnknown
	}
	f.storeStat(dvb.StatStatus, uint32(status))

	ber, err := f.dev.ReadBER()
	if err != nil {
		ber = 0
	}
	f.storeStat(dvb.StatBER, ber)

	strength, err := f.dev.ReadSignalStrength()
	if err != nil {
		strength = strengthUnknown
	}
	f.storeStat(dvb.StatSignalStrength, uint32(strength))

	snr, err := f.dev.ReadSNR()
	if err != nil {
		snr = snrUnknown
	}
	f.storeStat(dvb.StatSNR, uint32(snr))

	ucb, err := f.dev.ReadUncorrectedBlocks()
	if err != nil {
		ucb = 0
	}
	f.storeStat(dvb.StatUncorrectedBlocks, ucb)

	if f.verbose > 1 {
		f.logger.Info("frontend stats",
			"status", catalog.StatusNames(status),
			"ber", ber,
			"strength", strength,
			"snr", snr,
			"ucb", ucb)
	}
	return status
}

func (f *Frontend) storeStat(cmd dvb.Command, v uint32) {
	for i := range f.stats {
		if f.stats[i].Cmd == cmd {
			f.stats[i].Data = v
			return
		}
	}
}

// RetrieveStats returns the last value read for a statistics command.
func (f *Frontend) RetrieveStats(cmd dvb.Command) (uint32, error) {
	for _, p := range f.stats {
		if p.Cmd == cmd {
			return p.Data, nil
		}
	}
	f.logger.Error("statistic not found on retrieve", "cmd", cmd.String())
	return 0, dvb.NewError(dvb.KindLookupMiss, "retrieve "+cmd.String(), nil)
}

// StoreStats overrides the value of a statistics command.
func (f *Frontend) StoreStats(cmd dvb.Command, v uint32) error {
	for i := range f.stats {
		if f.stats[i].Cmd == cmd {
			f.stats[i].Data = v
			return nil
		}
	}
	f.logger.Error("statistic not found on store", "cmd", cmd.String())
	return dvb.NewError(dvb.KindLookupMiss, "store "+cmd.String(), nil)
}

// Stats returns a copy of the statistics set.
func (f *Frontend) Stats() []dvb.Property {
	out := make([]dvb.Property, len(f.stats))
	copy(out, f.stats[:])
	return out
}

// GetEvent refreshes parameters and statistics. Property sessions read
// both directly; legacy sessions take the next frontend event, store its
// status and parameters, then read statistics.
func (f *Frontend) GetEvent() (dvb.Status, error) {
	if !f.legacy {
		if err := f.GetParameters(); err != nil {
			return 0, err
		}
		return f.GetStats(), nil
	}

	fields, err := f.legacyLayout("FE_GET_EVENT")
	if err != nil {
		return 0, err
	}
	ev, err := f.dev.GetEvent()
	if err != nil {
		return 0, f.fail("FE_GET_EVENT", err)
	}
	if f.verbose > 1 {
		f.logger.Info("frontend event", "status", catalog.StatusNames(ev.Status))
	}
	f.storeStat(dvb.StatStatus, uint32(ev.Status))
	toStore(fields, &ev.Parameters, &f.store)

	if f.resolver != nil && catalog.IsSatellite(f.current) {
		if err := f.resolver.FromIF(f); err != nil {
			return 0, err
		}
	}
	return f.GetStats(), nil
}
