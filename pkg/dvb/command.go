package dvb

import (
	"fmt"
	"strconv"
	"strings"
)

// Command identifies a frontend property.
type Command uint32

// Kernel property commands.
const (
	CmdUndefined                    Command = 0
	CmdTune                         Command = 1
	CmdClear                        Command = 2
	CmdFrequency                    Command = 3
	CmdModulation                   Command = 4
	CmdBandwidthHz                  Command = 5
	CmdInversion                    Command = 6
	CmdDiseqcMaster                 Command = 7
	CmdSymbolRate                   Command = 8
	CmdInnerFEC                     Command = 9
	CmdVoltage                      Command = 10
	CmdTone                         Command = 11
	CmdPilot                        Command = 12
	CmdRolloff                      Command = 13
	CmdDiseqcSlaveReply             Command = 14
	CmdFECapabilityCount            Command = 15
	CmdFECapability                 Command = 16
	CmdDeliverySystem               Command = 17
	CmdISDBTPartialReception        Command = 18
	CmdISDBTSoundBroadcasting       Command = 19
	CmdISDBTSBSubchannelID          Command = 20
	CmdISDBTSBSegmentIdx            Command = 21
	CmdISDBTSBSegmentCount          Command = 22
	CmdISDBTLayerAFEC               Command = 23
	CmdISDBTLayerAModulation        Command = 24
	CmdISDBTLayerASegmentCount      Command = 25
	CmdISDBTLayerATimeInterleaving  Command = 26
	CmdISDBTLayerBFEC               Command = 27
	CmdISDBTLayerBModulation        Command = 28
	CmdISDBTLayerBSegmentCount      Command = 29
	CmdISDBTLayerBTimeInterleaving  Command = 30
	CmdISDBTLayerCFEC               Command = 31
	CmdISDBTLayerCModulation        Command = 32
	CmdISDBTLayerCSegmentCount      Command = 33
	CmdISDBTLayerCTimeInterleaving  Command = 34
	CmdAPIVersion                   Command = 35
	CmdCodeRateHP                   Command = 36
	CmdCodeRateLP                   Command = 37
	CmdGuardInterval                Command = 38
	CmdTransmissionMode             Command = 39
	CmdHierarchy                    Command = 40
	CmdISDBTLayerEnabled            Command = 41
	CmdISDBSTSID                    Command = 42
	CmdDVBT2PLPID                   Command = 43
	CmdEnumDelsys                   Command = 44
	CmdATSCMHFICVer                 Command = 45
	CmdATSCMHParadeID               Command = 46
	CmdATSCMHNog                    Command = 47
	CmdATSCMHTNog                   Command = 48
	CmdATSCMHSGN                    Command = 49
	CmdATSCMHPRC                    Command = 50
	CmdATSCMHRSFrameMode            Command = 51
	CmdATSCMHRSFrameEnsemble        Command = 52
	CmdATSCMHRSCodeModePri          Command = 53
	CmdATSCMHRSCodeModeSec          Command = 54
	CmdATSCMHSCCCBlockMode          Command = 55
	CmdATSCMHSCCCCodeModeA          Command = 56
	CmdATSCMHSCCCCodeModeB          Command = 57
	CmdATSCMHSCCCCodeModeC          Command = 58
	CmdATSCMHSCCCCodeModeD          Command = 59
	CmdInterleaving                 Command = 60
	CmdLNA                          Command = 61

	// MaxCommand is the highest kernel property command.
	MaxCommand = CmdLNA
)

// User-extension commands. They are kept in a session's property list for
// local bookkeeping and are never passed to the device.
const (
	UserCommandStart Command = 256

	CmdPolarization Command = UserCommandStart + 0
	CmdVideoPID     Command = UserCommandStart + 1
	CmdAudioPID     Command = UserCommandStart + 2
	CmdServiceID    Command = UserCommandStart + 3
	CmdChannelName  Command = UserCommandStart + 4
	CmdVChannel     Command = UserCommandStart + 5
	CmdSatNumber    Command = UserCommandStart + 6
	CmdDiseqcWait   Command = UserCommandStart + 7
	CmdDiseqcLNB    Command = UserCommandStart + 8
	CmdFreqBPF      Command = UserCommandStart + 9

	// MaxUserCommand is the highest user-extension command.
	MaxUserCommand = CmdFreqBPF
)

// Statistics slots.
const (
	StatCommandStart Command = 512

	StatStatus            Command = StatCommandStart + 0
	StatBER               Command = StatCommandStart + 1
	StatSignalStrength    Command = StatCommandStart + 2
	StatSNR               Command = StatCommandStart + 3
	StatUncorrectedBlocks Command = StatCommandStart + 4

	// MaxStats is the number of statistics slots.
	MaxStats = 5
)

var commandNames = [...]string{
	CmdUndefined:                   "DTV_UNDEFINED",
	CmdTune:                        "DTV_TUNE",
	CmdClear:                       "DTV_CLEAR",
	CmdFrequency:                   "DTV_FREQUENCY",
	CmdModulation:                  "DTV_MODULATION",
	CmdBandwidthHz:                 "DTV_BANDWIDTH_HZ",
	CmdInversion:                   "DTV_INVERSION",
	CmdDiseqcMaster:                "DTV_DISEQC_MASTER",
	CmdSymbolRate:                  "DTV_SYMBOL_RATE",
	CmdInnerFEC:                    "DTV_INNER_FEC",
	CmdVoltage:                     "DTV_VOLTAGE",
	CmdTone:                        "DTV_TONE",
	CmdPilot:                       "DTV_PILOT",
	CmdRolloff:                     "DTV_ROLLOFF",
	CmdDiseqcSlaveReply:            "DTV_DISEQC_SLAVE_REPLY",
	CmdFECapabilityCount:           "DTV_FE_CAPABILITY_COUNT",
	CmdFECapability:                "DTV_FE_CAPABILITY",
	CmdDeliverySystem:              "DTV_DELIVERY_SYSTEM",
	CmdISDBTPartialReception:       "DTV_ISDBT_PARTIAL_RECEPTION",
	CmdISDBTSoundBroadcasting:      "DTV_ISDBT_SOUND_BROADCASTING",
	CmdISDBTSBSubchannelID:         "DTV_ISDBT_SB_SUBCHANNEL_ID",
	CmdISDBTSBSegmentIdx:           "DTV_ISDBT_SB_SEGMENT_IDX",
	CmdISDBTSBSegmentCount:         "DTV_ISDBT_SB_SEGMENT_COUNT",
	CmdISDBTLayerAFEC:              "DTV_ISDBT_LAYERA_FEC",
	CmdISDBTLayerAModulation:       "DTV_ISDBT_LAYERA_MODULATION",
	CmdISDBTLayerASegmentCount:     "DTV_ISDBT_LAYERA_SEGMENT_COUNT",
	CmdISDBTLayerATimeInterleaving: "DTV_ISDBT_LAYERA_TIME_INTERLEAVING",
	CmdISDBTLayerBFEC:              "DTV_ISDBT_LAYERB_FEC",
	CmdISDBTLayerBModulation:       "DTV_ISDBT_LAYERB_MODULATION",
	CmdISDBTLayerBSegmentCount:     "DTV_ISDBT_LAYERB_SEGMENT_COUNT",
	CmdISDBTLayerBTimeInterleaving: "DTV_ISDBT_LAYERB_TIME_INTERLEAVING",
	CmdISDBTLayerCFEC:              "DTV_ISDBT_LAYERC_FEC",
	CmdISDBTLayerCModulation:       "DTV_ISDBT_LAYERC_MODULATION",
	CmdISDBTLayerCSegmentCount:     "DTV_ISDBT_LAYERC_SEGMENT_COUNT",
	CmdISDBTLayerCTimeInterleaving: "DTV_ISDBT_LAYERC_TIME_INTERLEAVING",
	CmdAPIVersion:                  "DTV_API_VERSION",
	CmdCodeRateHP:                  "DTV_CODE_RATE_HP",
	CmdCodeRateLP:                  "DTV_CODE_RATE_LP",
	CmdGuardInterval:               "DTV_GUARD_INTERVAL",
	CmdTransmissionMode:            "DTV_TRANSMISSION_MODE",
	CmdHierarchy:                   "DTV_HIERARCHY",
	CmdISDBTLayerEnabled:           "DTV_ISDBT_LAYER_ENABLED",
	CmdISDBSTSID:                   "DTV_ISDBS_TS_ID",
	CmdDVBT2PLPID:                  "DTV_DVBT2_PLP_ID",
	CmdEnumDelsys:                  "DTV_ENUM_DELSYS",
	CmdATSCMHFICVer:                "DTV_ATSCMH_FIC_VER",
	CmdATSCMHParadeID:              "DTV_ATSCMH_PARADE_ID",
	CmdATSCMHNog:                   "DTV_ATSCMH_NOG",
	CmdATSCMHTNog:                  "DTV_ATSCMH_TNOG",
	CmdATSCMHSGN:                   "DTV_ATSCMH_SGN",
	CmdATSCMHPRC:                   "DTV_ATSCMH_PRC",
	CmdATSCMHRSFrameMode:           "DTV_ATSCMH_RS_FRAME_MODE",
	CmdATSCMHRSFrameEnsemble:       "DTV_ATSCMH_RS_FRAME_ENSEMBLE",
	CmdATSCMHRSCodeModePri:         "DTV_ATSCMH_RS_CODE_MODE_PRI",
	CmdATSCMHRSCodeModeSec:         "DTV_ATSCMH_RS_CODE_MODE_SEC",
	CmdATSCMHSCCCBlockMode:         "DTV_ATSCMH_SCCC_BLOCK_MODE",
	CmdATSCMHSCCCCodeModeA:         "DTV_ATSCMH_SCCC_CODE_MODE_A",
	CmdATSCMHSCCCCodeModeB:         "DTV_ATSCMH_SCCC_CODE_MODE_B",
	CmdATSCMHSCCCCodeModeC:         "DTV_ATSCMH_SCCC_CODE_MODE_C",
	CmdATSCMHSCCCCodeModeD:         "DTV_ATSCMH_SCCC_CODE_MODE_D",
	CmdInterleaving:                "DTV_INTERLEAVING",
	CmdLNA:                         "DTV_LNA",
}

var userCommandNames = [...]string{
	CmdPolarization - UserCommandStart: "DTV_POLARIZATION",
	CmdVideoPID - UserCommandStart:     "DTV_VIDEO_PID",
	CmdAudioPID - UserCommandStart:     "DTV_AUDIO_PID",
	CmdServiceID - UserCommandStart:    "DTV_SERVICE_ID",
	CmdChannelName - UserCommandStart:  "DTV_CH_NAME",
	CmdVChannel - UserCommandStart:     "DTV_VCHANNEL",
	CmdSatNumber - UserCommandStart:    "DTV_SAT_NUMBER",
	CmdDiseqcWait - UserCommandStart:   "DTV_DISEQC_WAIT",
	CmdDiseqcLNB - UserCommandStart:    "DTV_DISEQC_LNB",
	CmdFreqBPF - UserCommandStart:      "DTV_FREQ_BPF",
}

var statCommandNames = [...]string{
	StatStatus - StatCommandStart:            "DTV_STATUS",
	StatBER - StatCommandStart:               "DTV_BER",
	StatSignalStrength - StatCommandStart:    "DTV_SIGNAL_STRENGTH",
	StatSNR - StatCommandStart:               "DTV_SNR",
	StatUncorrectedBlocks - StatCommandStart: "DTV_UNCORRECTED_BLOCKS",
}

// IsUser reports whether c is a user-extension command.
func (c Command) IsUser() bool {
	return c >= UserCommandStart && c <= MaxUserCommand
}

// IsStandard reports whether c is a kernel property command, the only
// range that may be passed to a device.
func (c Command) IsStandard() bool {
	return c < UserCommandStart
}

// String returns the catalog name of the command (e.g. "DTV_FREQUENCY").
func (c Command) String() string {
	switch {
	case c <= MaxCommand:
		return commandNames[c]
	case c.IsUser():
		return userCommandNames[c-UserCommandStart]
	case c >= StatCommandStart && c < StatCommandStart+MaxStats:
		return statCommandNames[c-StatCommandStart]
	default:
		return "DTV_CMD_" + strconv.FormatUint(uint64(c), 10)
	}
}

// ParseCommand resolves a command name. The "DTV_" prefix is optional and
// matching is case-insensitive. Numeric ids are accepted as well.
func ParseCommand(name string) (Command, error) {
	s := strings.ToUpper(strings.TrimSpace(name))
	if n, err := strconv.ParseUint(s, 0, 32); err == nil {
		return Command(n), nil
	}
	if !strings.HasPrefix(s, "DTV_") {
		s = "DTV_" + s
	}
	if c, ok := commandsByName[s]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("unknown property command %q", name)
}

var commandsByName = func() map[string]Command {
	m := make(map[string]Command, len(commandNames)+len(userCommandNames)+len(statCommandNames))
	for i, n := range commandNames {
		m[n] = Command(i)
	}
	for i, n := range userCommandNames {
		m[n] = UserCommandStart + Command(i)
	}
	for i, n := range statCommandNames {
		m[n] = StatCommandStart + Command(i)
	}
	return m
}()
