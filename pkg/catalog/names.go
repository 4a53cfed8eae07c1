package catalog

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dvbfe/dvbfe-go/pkg/dvb"
)

//go:embed labels.yaml
var labelsYAML []byte

var labels map[dvb.Command][]string

func loadLabels(data []byte) (map[dvb.Command][]string, error) {
	var doc struct {
		Sets map[string]struct {
			Labels   []string `yaml:"labels"`
			Commands []string `yaml:"commands"`
		} `yaml:"sets"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	out := make(map[dvb.Command][]string)
	for name, set := range doc.Sets {
		for _, c := range set.Commands {
			cmd, err := dvb.ParseCommand(c)
			if err != nil {
				return nil, fmt.Errorf("set %s: %w", name, err)
			}
			if _, dup := out[cmd]; dup {
				return nil, fmt.Errorf("set %s: %s labelled twice", name, cmd)
			}
			out[cmd] = set.Labels
		}
	}
	return out, nil
}

// CmdName returns the name of a property command (e.g. "DTV_FREQUENCY").
func CmdName(cmd dvb.Command) string {
	return cmd.String()
}

// AttrNames returns the value labels of cmd indexed by value, or nil when
// the command carries a plain number (frequency, symbol rate...).
func AttrNames(cmd dvb.Command) []string {
	return labels[cmd]
}

// AttrName returns the label of value v of cmd. Unlabelled commands and
// out-of-range values render as the decimal number.
func AttrName(cmd dvb.Command, v uint32) string {
	if l := labels[cmd]; uint64(v) < uint64(len(l)) {
		return l[v]
	}
	return strconv.FormatUint(uint64(v), 10)
}

// ParseAttr resolves a value of cmd from its label (case-insensitive) or
// a number in any base strconv accepts.
func ParseAttr(cmd dvb.Command, s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseUint(s, 0, 32); err == nil {
		return uint32(n), nil
	}
	for i, l := range labels[cmd] {
		if strings.EqualFold(l, s) {
			return uint32(i), nil
		}
	}
	return 0, fmt.Errorf("invalid value %q for %s", s, cmd)
}

// bandwidthHz maps legacy bandwidth codes to Hz. BandwidthAuto has no
// frequency and maps to 0.
var bandwidthHz = [...]uint32{
	dvb.Bandwidth8MHz:    8000000,
	dvb.Bandwidth7MHz:    7000000,
	dvb.Bandwidth6MHz:    6000000,
	dvb.BandwidthAuto:    0,
	dvb.Bandwidth5MHz:    5000000,
	dvb.Bandwidth10MHz:   10000000,
	dvb.Bandwidth1712kHz: 1712000,
}

// BandwidthHz converts a legacy bandwidth code to Hz. Unknown codes map to
// 0 and ok is false.
func BandwidthHz(code uint32) (hz uint32, ok bool) {
	if uint64(code) >= uint64(len(bandwidthHz)) {
		return 0, false
	}
	return bandwidthHz[code], true
}

// BandwidthCode converts a bandwidth in Hz to its legacy code. Widths
// without a code map to dvb.BandwidthAuto.
func BandwidthCode(hz uint32) uint32 {
	if hz == 0 {
		return dvb.BandwidthAuto
	}
	for code, v := range bandwidthHz {
		if v == hz {
			return uint32(code)
		}
	}
	return dvb.BandwidthAuto
}

type flagName struct {
	bit  uint32
	name string
}

var capNames = []flagName{
	{uint32(dvb.CapsCanInversionAuto), "CAN_INVERSION_AUTO"},
	{uint32(dvb.CapsCanFEC12), "CAN_FEC_1_2"},
	{uint32(dvb.CapsCanFEC23), "CAN_FEC_2_3"},
	{uint32(dvb.CapsCanFEC34), "CAN_FEC_3_4"},
	{uint32(dvb.CapsCanFEC45), "CAN_FEC_4_5"},
	{uint32(dvb.CapsCanFEC56), "CAN_FEC_5_6"},
	{uint32(dvb.CapsCanFEC67), "CAN_FEC_6_7"},
	{uint32(dvb.CapsCanFEC78), "CAN_FEC_7_8"},
	{uint32(dvb.CapsCanFEC89), "CAN_FEC_8_9"},
	{uint32(dvb.CapsCanFECAuto), "CAN_FEC_AUTO"},
	{uint32(dvb.CapsCanQPSK), "CAN_QPSK"},
	{uint32(dvb.CapsCanQAM16), "CAN_QAM_16"},
	{uint32(dvb.CapsCanQAM32), "CAN_QAM_32"},
	{uint32(dvb.CapsCanQAM64), "CAN_QAM_64"},
	{uint32(dvb.CapsCanQAM128), "CAN_QAM_128"},
	{uint32(dvb.CapsCanQAM256), "CAN_QAM_256"},
	{uint32(dvb.CapsCanQAMAuto), "CAN_QAM_AUTO"},
	{uint32(dvb.CapsCanTransmissionModeAuto), "CAN_TRANSMISSION_MODE_AUTO"},
	{uint32(dvb.CapsCanBandwidthAuto), "CAN_BANDWIDTH_AUTO"},
	{uint32(dvb.CapsCanGuardIntervalAuto), "CAN_GUARD_INTERVAL_AUTO"},
	{uint32(dvb.CapsCanHierarchyAuto), "CAN_HIERARCHY_AUTO"},
	{uint32(dvb.CapsCan8VSB), "CAN_8VSB"},
	{uint32(dvb.CapsCan16VSB), "CAN_16VSB"},
	{uint32(dvb.CapsHasExtendedCaps), "HAS_EXTENDED_CAPS"},
	{uint32(dvb.CapsCanMultistream), "CAN_MULTISTREAM"},
	{uint32(dvb.CapsCanTurboFEC), "CAN_TURBO_FEC"},
	{uint32(dvb.CapsCan2GModulation), "CAN_2G_MODULATION"},
	{uint32(dvb.CapsNeedsBending), "NEEDS_BENDING"},
	{uint32(dvb.CapsCanRecover), "CAN_RECOVER"},
	{uint32(dvb.CapsCanMuteTS), "CAN_MUTE_TS"},
}

var statusNames = []flagName{
	{uint32(dvb.StatusHasSignal), "SIGNAL"},
	{uint32(dvb.StatusHasCarrier), "CARRIER"},
	{uint32(dvb.StatusHasViterbi), "VITERBI"},
	{uint32(dvb.StatusHasSync), "SYNC"},
	{uint32(dvb.StatusHasLock), "LOCK"},
	{uint32(dvb.StatusTimedOut), "TIMEDOUT"},
	{uint32(dvb.StatusReinit), "REINIT"},
}

func flagNames(table []flagName, v uint32) []string {
	out := []string{}
	for _, f := range table {
		if v&f.bit != 0 {
			out = append(out, f.name)
		}
	}
	return out
}

// CapNames returns the names of the capability bits set in c, in bit order.
func CapNames(c dvb.Caps) []string {
	return flagNames(capNames, uint32(c))
}

// StatusNames returns the names of the status bits set in s, in bit order.
func StatusNames(s dvb.Status) []string {
	return flagNames(statusNames, uint32(s))
}

// ToneName returns "ON" or "OFF" for a tone mode.
func ToneName(t dvb.Tone) string {
	return AttrName(dvb.CmdTone, uint32(t))
}
