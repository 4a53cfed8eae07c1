package dvb

// FEType is the modulation family reported by the legacy info call.
type FEType uint32

// Legacy frontend types.
const (
	FETypeQPSK FEType = 0
	FETypeQAM  FEType = 1
	FETypeOFDM FEType = 2
	FETypeATSC FEType = 3
)

// String returns the legacy type name.
func (t FEType) String() string {
	switch t {
	case FETypeQPSK:
		return "QPSK"
	case FETypeQAM:
		return "QAM"
	case FETypeOFDM:
		return "OFDM"
	case FETypeATSC:
		return "ATSC"
	default:
		return "UNKNOWN"
	}
}

// Caps is the frontend capability bitmask (fe_caps_t).
type Caps uint32

// Capability bits.
const (
	CapsIsStupid                Caps = 0
	CapsCanInversionAuto        Caps = 0x1
	CapsCanFEC12                Caps = 0x2
	CapsCanFEC23                Caps = 0x4
	CapsCanFEC34                Caps = 0x8
	CapsCanFEC45                Caps = 0x10
	CapsCanFEC56                Caps = 0x20
	CapsCanFEC67                Caps = 0x40
	CapsCanFEC78                Caps = 0x80
	CapsCanFEC89                Caps = 0x100
	CapsCanFECAuto              Caps = 0x200
	CapsCanQPSK                 Caps = 0x400
	CapsCanQAM16                Caps = 0x800
	CapsCanQAM32                Caps = 0x1000
	CapsCanQAM64                Caps = 0x2000
	CapsCanQAM128               Caps = 0x4000
	CapsCanQAM256               Caps = 0x8000
	CapsCanQAMAuto              Caps = 0x10000
	CapsCanTransmissionModeAuto Caps = 0x20000
	CapsCanBandwidthAuto        Caps = 0x40000
	CapsCanGuardIntervalAuto    Caps = 0x80000
	CapsCanHierarchyAuto        Caps = 0x100000
	CapsCan8VSB                 Caps = 0x200000
	CapsCan16VSB                Caps = 0x400000
	CapsHasExtendedCaps         Caps = 0x800000
	CapsCanMultistream          Caps = 0x4000000
	CapsCanTurboFEC             Caps = 0x8000000
	CapsCan2GModulation         Caps = 0x10000000
	CapsNeedsBending            Caps = 0x20000000
	CapsCanRecover              Caps = 0x40000000
	CapsCanMuteTS               Caps = 0x80000000
)

// Has reports whether all bits of c2 are set in c.
func (c Caps) Has(c2 Caps) bool {
	return c&c2 == c2
}

// Status is the frontend lock status bitmask (fe_status_t).
type Status uint32

// Status bits.
const (
	StatusHasSignal  Status = 0x01
	StatusHasCarrier Status = 0x02
	StatusHasViterbi Status = 0x04
	StatusHasSync    Status = 0x08
	StatusHasLock    Status = 0x10
	StatusTimedOut   Status = 0x20
	StatusReinit     Status = 0x40
)

// Has reports whether all bits of s2 are set in s.
func (s Status) Has(s2 Status) bool {
	return s&s2 == s2
}

// Inversion values (fe_spectral_inversion_t).
const (
	InversionOff  uint32 = 0
	InversionOn   uint32 = 1
	InversionAuto uint32 = 2
)

// Code rates (fe_code_rate_t).
const (
	FECNone uint32 = iota
	FEC12
	FEC23
	FEC34
	FEC45
	FEC56
	FEC67
	FEC78
	FEC89
	FECAuto
	FEC35
	FEC910
)

// Modulations (fe_modulation_t).
const (
	ModQPSK uint32 = iota
	ModQAM16
	ModQAM32
	ModQAM64
	ModQAM128
	ModQAM256
	ModQAMAuto
	ModVSB8
	ModVSB16
	ModPSK8
	ModAPSK16
	ModAPSK32
	ModDQPSK
)

// Transmission modes (fe_transmit_mode_t).
const (
	TransmissionMode2K uint32 = iota
	TransmissionMode8K
	TransmissionModeAuto
	TransmissionMode4K
	TransmissionMode1K
	TransmissionMode16K
	TransmissionMode32K
)

// Legacy bandwidth codes (fe_bandwidth_t). The property protocol carries
// bandwidth in Hz instead; see catalog.BandwidthHz.
const (
	Bandwidth8MHz uint32 = iota
	Bandwidth7MHz
	Bandwidth6MHz
	BandwidthAuto
	Bandwidth5MHz
	Bandwidth10MHz
	Bandwidth1712kHz
)

// Guard intervals (fe_guard_interval_t).
const (
	GuardInterval1_32 uint32 = iota
	GuardInterval1_16
	GuardInterval1_8
	GuardInterval1_4
	GuardIntervalAuto
	GuardInterval1_128
	GuardInterval19_128
	GuardInterval19_256
)

// Hierarchy values (fe_hierarchy_t).
const (
	HierarchyNone uint32 = iota
	Hierarchy1
	Hierarchy2
	Hierarchy4
	HierarchyAuto
)

// Pilot values (fe_pilot_t).
const (
	PilotOn uint32 = iota
	PilotOff
	PilotAuto
)

// Rolloff values (fe_rolloff_t).
const (
	Rolloff35 uint32 = iota
	Rolloff20
	Rolloff25
	RolloffAuto
)

// Polarization values stored under CmdPolarization.
const (
	PolarizationH uint32 = iota
	PolarizationV
	PolarizationL
	PolarizationR
)
