package frontend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dvbfe/dvbfe-go/pkg/dvb"
	"github.com/dvbfe/dvbfe-go/pkg/dvb/dvbsim"
	"github.com/dvbfe/dvbfe-go/pkg/version"
)

func TestLegacySystems(t *testing.T) {
	tests := []struct {
		name        string
		fe          dvb.FEType
		caps        dvb.Caps
		version     version.API
		wantSystems []dvb.DeliverySystem
		wantCurrent dvb.DeliverySystem
	}{
		{
			name:        "QPSK",
			fe:          dvb.FETypeQPSK,
			version:     version.V5,
			wantSystems: []dvb.DeliverySystem{dvb.SysDVBS},
			wantCurrent: dvb.SysDVBS,
		},
		{
			name:        "QPSK 2G turbo",
			fe:          dvb.FETypeQPSK,
			caps:        dvb.CapsCan2GModulation | dvb.CapsCanTurboFEC,
			version:     version.V5,
			wantSystems: []dvb.DeliverySystem{dvb.SysDVBS, dvb.SysDVBS2, dvb.SysTurbo},
			wantCurrent: dvb.SysDVBS,
		},
		{
			name:        "QPSK 2G on API 3",
			fe:          dvb.FETypeQPSK,
			caps:        dvb.CapsCan2GModulation | dvb.CapsCanTurboFEC,
			version:     version.V3,
			wantSystems: []dvb.DeliverySystem{dvb.SysDVBS},
			wantCurrent: dvb.SysDVBS,
		},
		{
			name:        "QAM ignores 2G",
			fe:          dvb.FETypeQAM,
			caps:        dvb.CapsCan2GModulation | dvb.CapsCanTurboFEC,
			version:     version.V5,
			wantSystems: []dvb.DeliverySystem{dvb.SysDVBCAnnexA},
			wantCurrent: dvb.SysDVBCAnnexA,
		},
		{
			name:        "OFDM 2G",
			fe:          dvb.FETypeOFDM,
			caps:        dvb.CapsCan2GModulation,
			version:     version.V5,
			wantSystems: []dvb.DeliverySystem{dvb.SysDVBT, dvb.SysDVBT2},
			wantCurrent: dvb.SysDVBT,
		},
		{
			name:        "OFDM 2G on API 3",
			fe:          dvb.FETypeOFDM,
			caps:        dvb.CapsCan2GModulation,
			version:     version.V3,
			wantSystems: []dvb.DeliverySystem{dvb.SysDVBT},
			wantCurrent: dvb.SysDVBT,
		},
		{
			name:        "ATSC VSB and QAM",
			fe:          dvb.FETypeATSC,
			caps:        dvb.CapsCan8VSB | dvb.CapsCanQAM256,
			version:     version.V3,
			wantSystems: []dvb.DeliverySystem{dvb.SysATSC, dvb.SysDVBCAnnexB},
			wantCurrent: dvb.SysATSC,
		},
		{
			name:        "ATSC QAM only",
			fe:          dvb.FETypeATSC,
			caps:        dvb.CapsCanQAMAuto,
			version:     version.V3,
			wantSystems: []dvb.DeliverySystem{dvb.SysDVBCAnnexB},
			wantCurrent: dvb.SysDVBCAnnexB,
		},
		{
			name:        "ATSC 16VSB",
			fe:          dvb.FETypeATSC,
			caps:        dvb.CapsCan16VSB,
			version:     version.V5,
			wantSystems: []dvb.DeliverySystem{dvb.SysATSC},
			wantCurrent: dvb.SysATSC,
		},
		{
			name:        "ATSC without caps",
			fe:          dvb.FETypeATSC,
			version:     version.V5,
			wantCurrent: dvb.SysUndefined,
		},
		{
			name:        "unknown type",
			fe:          dvb.FEType(9),
			caps:        dvb.CapsCan2GModulation,
			version:     version.V5_5,
			wantCurrent: dvb.SysUndefined,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			systems, current := legacySystems(tt.fe, tt.caps, tt.version)
			assert.Equal(t, tt.wantSystems, systems)
			assert.Equal(t, tt.wantCurrent, current)
		})
	}
}

func TestDetectGeneration(t *testing.T) {
	tests := []struct {
		name        string
		apiVersion  uint32
		force       bool
		wantVersion version.API
		wantCurrent dvb.DeliverySystem
		wantLegacy  bool
	}{
		{"API 3 cannot answer", 0x0300, false, version.V3, dvb.SysUndefined, true},
		{"API 5.0", 0x0500, false, version.V5, dvb.SysDVBT, true},
		{"API 5.4", 0x0504, false, version.New(5, 4), dvb.SysDVBT, true},
		{"API 5.5", 0x0505, false, version.V5_5, dvb.SysDVBT, false},
		{"API 5.5 forced", 0x0505, true, version.V5_5, dvb.SysDVBT, true},
		{"API 5.11", 0x050b, false, version.New(5, 11), dvb.SysDVBT, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := dvbsim.DVBT()
			cfg.APIVersion = tt.apiVersion
			g := detectGeneration(dvbsim.New(cfg), tt.force)

			if g.version != tt.wantVersion || g.current != tt.wantCurrent || g.legacy != tt.wantLegacy {
				t.Errorf("detectGeneration = %+v, want version %v current %v legacy %v",
					g, tt.wantVersion, tt.wantCurrent, tt.wantLegacy)
			}
		})
	}
}

func TestEnumerateModern(t *testing.T) {
	cfg := dvbsim.DVBS()
	cfg.Current = dvb.SysUndefined
	sim := dvbsim.New(cfg)

	systems, current, err := enumerate(sim, dvb.FrontendInfo{}, generation{version: version.V5_5})
	assert.NoError(t, err)
	assert.Equal(t, []dvb.DeliverySystem{dvb.SysDVBS, dvb.SysDVBS2}, systems)
	assert.Equal(t, dvb.SysDVBS, current)
}

func TestEnumerateFailures(t *testing.T) {
	sim := dvbsim.New(dvbsim.Config{APIVersion: 0x0505})
	_, _, err := enumerate(sim, dvb.FrontendInfo{}, generation{version: version.V5_5})
	assert.ErrorIs(t, err, dvb.ErrEnumeration)

	sim = dvbsim.New(dvbsim.DVBT())
	sim.Fail("FE_GET_PROPERTY", assert.AnError)
	_, _, err = enumerate(sim, dvb.FrontendInfo{}, generation{version: version.V5_5})
	assert.ErrorIs(t, err, dvb.ErrEnumeration)
	assert.ErrorIs(t, err, assert.AnError)

	_, _, err = enumerate(sim, dvb.FrontendInfo{Type: dvb.FETypeATSC}, generation{version: version.V3, legacy: true})
	assert.Equal(t, dvb.KindEnumeration, dvb.KindOf(err))
}
