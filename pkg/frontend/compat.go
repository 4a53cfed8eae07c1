package frontend

import (
	"fmt"
	"slices"

	"github.com/dvbfe/dvbfe-go/pkg/catalog"
	"github.com/dvbfe/dvbfe-go/pkg/dvb"
)

// isdbtDefaults puts an ISDB-T session into automatic layer mode.
var isdbtDefaults = []dvb.Property{
	{Cmd: dvb.CmdBandwidthHz, Data: 6000000},
	{Cmd: dvb.CmdISDBTPartialReception, Data: 0},
	{Cmd: dvb.CmdISDBTSoundBroadcasting, Data: 0},
	{Cmd: dvb.CmdISDBTSBSubchannelID, Data: 0},
	{Cmd: dvb.CmdISDBTSBSegmentIdx, Data: 0},
	{Cmd: dvb.CmdISDBTSBSegmentCount, Data: 0},
	{Cmd: dvb.CmdISDBTLayerEnabled, Data: 7},
	{Cmd: dvb.CmdISDBTLayerAFEC, Data: dvb.FECAuto},
	{Cmd: dvb.CmdISDBTLayerBFEC, Data: dvb.FECAuto},
	{Cmd: dvb.CmdISDBTLayerCFEC, Data: dvb.FECAuto},
	{Cmd: dvb.CmdISDBTLayerAModulation, Data: dvb.ModQAMAuto},
	{Cmd: dvb.CmdISDBTLayerBModulation, Data: dvb.ModQAMAuto},
	{Cmd: dvb.CmdISDBTLayerCModulation, Data: dvb.ModQAMAuto},
	{Cmd: dvb.CmdISDBTLayerASegmentCount, Data: 0},
	{Cmd: dvb.CmdISDBTLayerATimeInterleaving, Data: 0},
	{Cmd: dvb.CmdISDBTLayerBSegmentCount, Data: 0},
	{Cmd: dvb.CmdISDBTLayerBTimeInterleaving, Data: 0},
	{Cmd: dvb.CmdISDBTLayerCSegmentCount, Data: 0},
	{Cmd: dvb.CmdISDBTLayerCTimeInterleaving, Data: 0},
}

// SetCompatibleDeliverySystem activates desired on devices that support
// it directly or that can emulate it through a newer system of the same
// modulation family. The legacy base systems (DVB-T, DVB-C annex A,
// DVB-S, ATSC) never count as emulation targets.
//
// When no system qualifies the error matches dvb.ErrNoCompatibleSystem
// (dvb.Code -1) and the session is unchanged. ISDB-T sessions are seeded
// with automatic layer parameters.
func (f *Frontend) SetCompatibleDeliverySystem(desired dvb.DeliverySystem) error {
	if slices.Contains(f.systems, desired) {
		return f.SetDeliverySystem(desired)
	}

	via := compatibleSystem(f.systems, desired)
	if via == dvb.SysUndefined {
		return dvb.NewError(dvb.KindUnsupportedTransition, "set compatible delivery system",
			fmt.Errorf("%w for %v", dvb.ErrNoCompatibleSystem, desired))
	}
	if f.verbose > 0 {
		f.logger.Info("emulating delivery system", "desired", desired.String(), "via", via.String())
	}

	if err := f.SetDeliverySystem(desired); err != nil {
		return err
	}
	if desired == dvb.SysISDBT {
		for _, p := range isdbtDefaults {
			f.store.Set(p.Cmd, p.Data)
		}
	}
	return nil
}

// compatibleSystem returns the last supported non-base system sharing the
// modulation family of desired, or SysUndefined.
func compatibleSystem(systems []dvb.DeliverySystem, desired dvb.DeliverySystem) dvb.DeliverySystem {
	family := catalog.FamilyOf(desired)
	if family == catalog.FamilyUnknown {
		return dvb.SysUndefined
	}
	match := dvb.SysUndefined
	for _, s := range systems {
		if catalog.FamilyOf(s) == family && !catalog.IsLegacySystem(s) {
			match = s
		}
	}
	return match
}
