package frontend

import (
	"slices"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dvbfe/dvbfe-go/pkg/catalog"
	"github.com/dvbfe/dvbfe-go/pkg/dvb"
	"github.com/dvbfe/dvbfe-go/pkg/dvb/dvbsim"
	"github.com/dvbfe/dvbfe-go/pkg/dvb/mocks"
	"github.com/dvbfe/dvbfe-go/pkg/log"
	"github.com/dvbfe/dvbfe-go/pkg/version"
)

func TestOpenPropertyDevice(t *testing.T) {
	f, _ := openSim(t, dvbsim.DVBT(), DefaultConfig())

	assert.False(t, f.LegacyOnly())
	assert.Equal(t, version.V5_5, f.APIVersion())
	assert.Equal(t, []dvb.DeliverySystem{dvb.SysDVBT, dvb.SysDVBT2}, f.SupportedSystems())
	assert.Equal(t, dvb.SysDVBT, f.DeliverySystem())
	assert.NotEmpty(t, f.SessionID())
	assert.Equal(t, "Simulated DVB-T/T2", f.Info().DeviceName())

	props := f.Properties()
	want := catalog.Properties(dvb.SysDVBT)
	require.Len(t, props, len(want)+1)
	for i, cmd := range want {
		assert.Equal(t, dvb.Property{Cmd: cmd}, props[i])
	}
	assert.Equal(t, dvb.Property{Cmd: dvb.CmdDeliverySystem, Data: uint32(dvb.SysDVBT)}, props[len(props)-1])
}

func TestOpenForcedLegacyOFDM(t *testing.T) {
	cfg := dvbsim.DVBT()
	cfg.APIVersion = 0x0500

	f, sim := openSim(t, cfg, Config{ForceLegacy: true, SatNumber: -1})

	assert.True(t, f.LegacyOnly())
	assert.Equal(t, []dvb.DeliverySystem{dvb.SysDVBT, dvb.SysDVBT2}, f.SupportedSystems())
	assert.Equal(t, dvb.SysDVBT, f.DeliverySystem())
	assert.NotContains(t, sim.Calls(), "FE_SET_PROPERTY")
}

func TestOpenLegacyOnlyDevice(t *testing.T) {
	f, _ := openSim(t, legacyDVBT(), DefaultConfig())

	assert.True(t, f.LegacyOnly())
	assert.Equal(t, version.V3, f.APIVersion())
	assert.Equal(t, []dvb.DeliverySystem{dvb.SysDVBT}, f.SupportedSystems())
}

func TestOpenUndefinedCurrentUsesFirstSystem(t *testing.T) {
	cfg := dvbsim.DVBS()
	cfg.Current = dvb.SysUndefined

	f, _ := openSim(t, cfg, DefaultConfig())
	assert.Equal(t, dvb.SysDVBS, f.DeliverySystem())
}

func TestOpenDoesNotSwitchSystem(t *testing.T) {
	cfg := dvbsim.DVBT()
	cfg.Current = dvb.SysDVBT2

	f, sim := openSim(t, cfg, DefaultConfig())
	assert.Equal(t, dvb.SysDVBT2, f.DeliverySystem())
	assert.Equal(t, []string{"FE_GET_INFO", "FE_GET_PROPERTY", "FE_GET_PROPERTY"}, sim.Calls())
}

func TestOpenInfoFailure(t *testing.T) {
	sim := dvbsim.New(dvbsim.DVBT())
	sim.Fail("FE_GET_INFO", syscall.EACCES)

	f, err := New(sim, DefaultConfig())
	assert.Nil(t, f)
	assert.ErrorIs(t, err, dvb.ErrOpen)
	assert.ErrorIs(t, err, syscall.EACCES)
	assert.True(t, sim.State().Closed)
}

func TestOpenEnumerationFailure(t *testing.T) {
	dev := mocks.NewMockDevice(t)
	expectOpen(dev, dvb.FETypeOFDM, dvb.SysDVBT)
	dev.EXPECT().Close().Return(nil).Once()

	f, err := New(dev, DefaultConfig())
	assert.Nil(t, f)
	assert.ErrorIs(t, err, dvb.ErrEnumeration)
	assert.Equal(t, int(syscall.EIO), dvb.Code(err))
}

func TestOpenLegacyNothingDerived(t *testing.T) {
	sim := dvbsim.New(dvbsim.Config{Type: dvb.FETypeATSC, APIVersion: 0x0300})

	_, err := New(sim, DefaultConfig())
	assert.ErrorIs(t, err, dvb.ErrEnumeration)
	assert.True(t, sim.State().Closed)
}

func TestOpenUnknownLNB(t *testing.T) {
	sim := dvbsim.New(dvbsim.DVBS())

	_, err := New(sim, Config{LNB: "KA-BAND", SatNumber: -1})
	assert.ErrorIs(t, err, dvb.ErrLookupMiss)
	assert.True(t, sim.State().Closed)
}

func TestOpenMissingDevice(t *testing.T) {
	_, err := Open(97, 42, DefaultConfig())
	assert.ErrorIs(t, err, dvb.ErrOpen)
}

func TestCloseSatellitePowersOff(t *testing.T) {
	dev := mocks.NewMockDevice(t)
	expectOpen(dev, dvb.FETypeQPSK, dvb.SysDVBS2, dvb.SysDVBS, dvb.SysDVBS2)

	f, err := New(dev, DefaultConfig())
	require.NoError(t, err)

	mock.InOrder(
		dev.EXPECT().SetVoltage(dvb.VoltageOff).Return(syscall.EIO).Once().Call,
		dev.EXPECT().Close().Return(nil).Once().Call,
	)
	assert.NoError(t, f.Close())
	assert.NoError(t, f.Close())
}

func TestCloseTerrestrial(t *testing.T) {
	f, sim := openSim(t, dvbsim.DVBT(), DefaultConfig())

	require.NoError(t, f.Close())
	assert.True(t, sim.State().Closed)
	assert.NotContains(t, sim.Calls(), "FE_SET_VOLTAGE")
}

func TestCloseError(t *testing.T) {
	f, sim := openSim(t, dvbsim.DVBT(), DefaultConfig())
	sim.Fail("close", syscall.EIO)

	assert.ErrorIs(t, f.Close(), syscall.EIO)
}

func TestRetrieveStoreRoundTrip(t *testing.T) {
	f, _ := openSim(t, dvbsim.DVBS(), DefaultConfig())

	for i, p := range f.Properties() {
		v := uint32(1000 + i)
		require.NoError(t, f.StoreParm(p.Cmd, v))

		got, err := f.RetrieveParm(p.Cmd)
		require.NoError(t, err)
		if got != v {
			t.Errorf("%v: retrieved %d, stored %d", p.Cmd, got, v)
		}
	}
}

func TestLookupMiss(t *testing.T) {
	f, _ := openSim(t, dvbsim.DVBT(), DefaultConfig())
	before := f.Properties()

	err := f.StoreParm(dvb.CmdSymbolRate, 27500000)
	assert.ErrorIs(t, err, dvb.ErrLookupMiss)
	assert.Equal(t, int(syscall.EINVAL), dvb.Code(err))

	_, err = f.RetrieveParm(dvb.CmdPolarization)
	assert.ErrorIs(t, err, dvb.ErrLookupMiss)

	assert.Equal(t, before, f.Properties())
}

func TestProtocolTrace(t *testing.T) {
	rec := &recorder{}
	f, _ := openSim(t, dvbsim.DVBT(), Config{ProtocolLogger: rec, SatNumber: -1})

	require.NoError(t, f.SetDeliverySystem(dvb.SysDVBT2))
	require.NoError(t, f.Close())

	states := rec.states()
	require.Len(t, states, 5)
	assert.Equal(t, log.StateChangeEvent{Entity: log.StateEntityProtocol, NewState: "PROPERTY", Reason: "API 5.5"}, states[0])
	assert.Equal(t, log.StateEntityDeliverySystem, states[1].Entity)
	assert.Equal(t, "DVBT", states[1].NewState)
	assert.Equal(t, log.StateEntitySession, states[2].Entity)
	assert.Equal(t, log.StateChangeEvent{Entity: log.StateEntityDeliverySystem, OldState: "DVBT", NewState: "DVBT2"}, states[3])
	assert.Equal(t, "CLOSED", states[4].NewState)

	// GET_INFO, two GET_PROPERTY, SET_PROPERTY and close, each OUT and IN.
	assert.Equal(t, 10, rec.count(log.CategoryCall))
	for _, e := range rec.events {
		assert.Equal(t, f.SessionID(), e.SessionID)
	}
}

func TestErrorsAreTraced(t *testing.T) {
	rec := &recorder{}
	f, sim := openSim(t, dvbsim.DVBT(), Config{ProtocolLogger: rec, SatNumber: -1})
	sim.Fail("FE_SET_PROPERTY", syscall.EBUSY)

	require.Error(t, f.SetParameters())
	require.Equal(t, 1, rec.count(log.CategoryError))

	i := slices.IndexFunc(rec.events, func(e log.Event) bool { return e.Error != nil })
	ev := rec.events[i].Error
	assert.Equal(t, "FE_SET_PROPERTY", ev.Context)
	assert.Equal(t, int(syscall.EBUSY), *ev.Code)
}
