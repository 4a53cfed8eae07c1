package frontend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvbfe/dvbfe-go/pkg/dvb"
	"github.com/dvbfe/dvbfe-go/pkg/dvb/dvbsim"
)

func TestCompatibleWithoutEmulationTarget(t *testing.T) {
	cfg := dvbsim.DVBT()
	cfg.Systems = []dvb.DeliverySystem{dvb.SysDVBT}
	f, sim := openSim(t, cfg, DefaultConfig())
	require.NoError(t, f.StoreParm(dvb.CmdFrequency, 474000000))
	before := f.Properties()

	err := f.SetCompatibleDeliverySystem(dvb.SysISDBT)
	assert.ErrorIs(t, err, dvb.ErrNoCompatibleSystem)
	assert.Equal(t, -1, dvb.Code(err))
	assert.Equal(t, dvb.SysDVBT, f.DeliverySystem())
	assert.Equal(t, before, f.Properties())
	assert.NotContains(t, sim.Calls(), "FE_SET_PROPERTY")
}

func emulatingISDBT(t *testing.T) (*Frontend, *dvbsim.Device) {
	t.Helper()
	cfg := dvbsim.DVBT()
	cfg.Emulated = []dvb.DeliverySystem{dvb.SysISDBT}
	return openSim(t, cfg, Config{Verbose: 1, SatNumber: -1, Logger: discard()})
}

func TestCompatibleISDBT(t *testing.T) {
	f, sim := emulatingISDBT(t)

	require.NoError(t, f.SetCompatibleDeliverySystem(dvb.SysISDBT))
	assert.Equal(t, dvb.SysISDBT, f.DeliverySystem())
	assert.Equal(t, dvb.SysISDBT, sim.State().Current)

	want := map[dvb.Command]uint32{
		dvb.CmdBandwidthHz:           6000000,
		dvb.CmdISDBTLayerEnabled:     7,
		dvb.CmdISDBTLayerAFEC:        dvb.FECAuto,
		dvb.CmdISDBTLayerCModulation: dvb.ModQAMAuto,
		dvb.CmdISDBTSBSegmentCount:   0,
		dvb.CmdFrequency:             0,
	}
	for cmd, v := range want {
		got, err := f.RetrieveParm(cmd)
		require.NoError(t, err)
		assert.Equal(t, v, got, cmd.String())
	}
}

func TestCompatibleISDBTIdempotent(t *testing.T) {
	f, _ := emulatingISDBT(t)

	require.NoError(t, f.SetCompatibleDeliverySystem(dvb.SysISDBT))
	first := f.Properties()
	require.NoError(t, f.SetCompatibleDeliverySystem(dvb.SysISDBT))
	assert.Equal(t, first, f.Properties())
}

func TestCompatibleDirectlySupported(t *testing.T) {
	f, sim := openSim(t, dvbsim.DVBT(), DefaultConfig())

	require.NoError(t, f.SetCompatibleDeliverySystem(dvb.SysDVBT2))
	assert.Equal(t, dvb.SysDVBT2, f.DeliverySystem())
	assert.Equal(t, dvb.SysDVBT2, sim.State().Current)

	bw, err := f.RetrieveParm(dvb.CmdBandwidthHz)
	require.NoError(t, err)
	assert.Zero(t, bw, "only ISDB-T is seeded")
}

func TestCompatibleUnknownFamily(t *testing.T) {
	f, _ := openSim(t, dvbsim.DVBT(), DefaultConfig())

	err := f.SetCompatibleDeliverySystem(dvb.SysDAB)
	assert.ErrorIs(t, err, dvb.ErrNoCompatibleSystem)
	assert.Equal(t, dvb.SysDVBT, f.DeliverySystem())
}

func TestCompatibleLegacySession(t *testing.T) {
	cfg := dvbsim.DVBT()
	cfg.APIVersion = 0x0500
	cfg.Emulated = []dvb.DeliverySystem{dvb.SysISDBT}
	f, _ := openSim(t, cfg, Config{ForceLegacy: true, SatNumber: -1})

	err := f.SetCompatibleDeliverySystem(dvb.SysISDBT)
	assert.ErrorIs(t, err, dvb.ErrUnsupportedTransition)
	assert.NotErrorIs(t, err, dvb.ErrNoCompatibleSystem)
	assert.Equal(t, dvb.SysDVBT, f.DeliverySystem())
}

func TestCompatibleSystem(t *testing.T) {
	tests := []struct {
		name    string
		systems []dvb.DeliverySystem
		desired dvb.DeliverySystem
		want    dvb.DeliverySystem
	}{
		{"ISDB-T via DVB-T2", []dvb.DeliverySystem{dvb.SysDVBT, dvb.SysDVBT2}, dvb.SysISDBT, dvb.SysDVBT2},
		{"base system never qualifies", []dvb.DeliverySystem{dvb.SysDVBT}, dvb.SysISDBT, dvb.SysUndefined},
		{"last match wins", []dvb.DeliverySystem{dvb.SysDVBS2, dvb.SysDVBS, dvb.SysTurbo}, dvb.SysDSS, dvb.SysTurbo},
		{"ATSC via annex B", []dvb.DeliverySystem{dvb.SysDVBCAnnexB}, dvb.SysATSC, dvb.SysDVBCAnnexB},
		{"annex C on annex A", []dvb.DeliverySystem{dvb.SysDVBCAnnexA}, dvb.SysDVBCAnnexC, dvb.SysUndefined},
		{"annex A via annex C", []dvb.DeliverySystem{dvb.SysDVBCAnnexC}, dvb.SysDVBCAnnexA, dvb.SysDVBCAnnexC},
		{"other family", []dvb.DeliverySystem{dvb.SysDVBS2}, dvb.SysDMBTH, dvb.SysUndefined},
		{"unknown family", []dvb.DeliverySystem{dvb.SysDVBT2}, dvb.SysCMMB, dvb.SysUndefined},
		{"no systems", nil, dvb.SysISDBT, dvb.SysUndefined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compatibleSystem(tt.systems, tt.desired); got != tt.want {
				t.Errorf("compatibleSystem(%v, %v) = %v, want %v", tt.systems, tt.desired, got, tt.want)
			}
		})
	}
}
