package frontend

import (
	"github.com/dvbfe/dvbfe-go/pkg/catalog"
	"github.com/dvbfe/dvbfe-go/pkg/dvb"
)

// legacyField binds a property command to a word of the legacy parameter
// struct. Both transfer directions use the same binding.
type legacyField struct {
	cmd       dvb.Command
	word      func(p *dvb.FrontendParameters) *uint32
	bandwidth bool // word holds a bandwidth code, the property Hz
}

var (
	fieldFrequency = legacyField{cmd: dvb.CmdFrequency, word: func(p *dvb.FrontendParameters) *uint32 { return &p.Frequency }}
	fieldInversion = legacyField{cmd: dvb.CmdInversion, word: func(p *dvb.FrontendParameters) *uint32 { return &p.Inversion }}
)

// legacyFields is the legacy struct layout of each modulation family.
var legacyFields = map[catalog.Family][]legacyField{
	catalog.FamilyQPSK: {
		fieldFrequency,
		fieldInversion,
		{cmd: dvb.CmdSymbolRate, word: func(p *dvb.FrontendParameters) *uint32 { return &p.QPSK().SymbolRate }},
		{cmd: dvb.CmdInnerFEC, word: func(p *dvb.FrontendParameters) *uint32 { return &p.QPSK().FECInner }},
	},
	catalog.FamilyQAM: {
		fieldFrequency,
		fieldInversion,
		{cmd: dvb.CmdSymbolRate, word: func(p *dvb.FrontendParameters) *uint32 { return &p.QAM().SymbolRate }},
		{cmd: dvb.CmdInnerFEC, word: func(p *dvb.FrontendParameters) *uint32 { return &p.QAM().FECInner }},
		{cmd: dvb.CmdModulation, word: func(p *dvb.FrontendParameters) *uint32 { return &p.QAM().Modulation }},
	},
	catalog.FamilyATSC: {
		fieldFrequency,
		fieldInversion,
		{cmd: dvb.CmdModulation, word: func(p *dvb.FrontendParameters) *uint32 { return &p.VSB().Modulation }},
	},
	catalog.FamilyOFDM: {
		fieldFrequency,
		fieldInversion,
		{cmd: dvb.CmdBandwidthHz, word: func(p *dvb.FrontendParameters) *uint32 { return &p.OFDM().Bandwidth }, bandwidth: true},
		{cmd: dvb.CmdCodeRateHP, word: func(p *dvb.FrontendParameters) *uint32 { return &p.OFDM().CodeRateHP }},
		{cmd: dvb.CmdCodeRateLP, word: func(p *dvb.FrontendParameters) *uint32 { return &p.OFDM().CodeRateLP }},
		{cmd: dvb.CmdModulation, word: func(p *dvb.FrontendParameters) *uint32 { return &p.OFDM().Constellation }},
		{cmd: dvb.CmdTransmissionMode, word: func(p *dvb.FrontendParameters) *uint32 { return &p.OFDM().TransmissionMode }},
		{cmd: dvb.CmdGuardInterval, word: func(p *dvb.FrontendParameters) *uint32 { return &p.OFDM().GuardInterval }},
		{cmd: dvb.CmdHierarchy, word: func(p *dvb.FrontendParameters) *uint32 { return &p.OFDM().Hierarchy }},
	},
}

// toStore copies the legacy struct into the store. Commands the store
// does not list are skipped.
func toStore(fields []legacyField, p *dvb.FrontendParameters, s *Store) {
	for _, f := range fields {
		v := *f.word(p)
		if f.bandwidth {
			v, _ = catalog.BandwidthHz(v)
		}
		s.Set(f.cmd, v)
	}
}

// fromStore fills the legacy struct from the store. Unlisted commands
// leave their word zero.
func fromStore(fields []legacyField, s *Store) dvb.FrontendParameters {
	var p dvb.FrontendParameters
	for _, f := range fields {
		v, ok := s.Get(f.cmd)
		if !ok {
			continue
		}
		if f.bandwidth {
			v = catalog.BandwidthCode(v)
		}
		*f.word(&p) = v
	}
	return p
}
