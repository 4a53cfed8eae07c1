// Package catalog holds the static tables of the DVB frontend layer: the
// property list of every delivery system, the legacy modulation family of
// each system, value labels, the legacy bandwidth code table and the
// capability and status flag names.
//
// The tables are embedded YAML loaded once at init; a malformed table is a
// build defect and panics.
package catalog

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/dvbfe/dvbfe-go/pkg/dvb"
)

//go:embed delsys.yaml
var delsysYAML []byte

// Family is the legacy (DVB API v3) modulation family of a delivery system.
type Family uint8

const (
	FamilyUnknown Family = iota
	FamilyQAM
	FamilyQPSK
	FamilyOFDM
	FamilyATSC
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case FamilyQAM:
		return "QAM"
	case FamilyQPSK:
		return "QPSK"
	case FamilyOFDM:
		return "OFDM"
	case FamilyATSC:
		return "ATSC"
	default:
		return "UNKNOWN"
	}
}

// FamilyFor returns the family a legacy frontend type belongs to.
func FamilyFor(t dvb.FEType) Family {
	switch t {
	case dvb.FETypeQPSK:
		return FamilyQPSK
	case dvb.FETypeQAM:
		return FamilyQAM
	case dvb.FETypeOFDM:
		return FamilyOFDM
	case dvb.FETypeATSC:
		return FamilyATSC
	default:
		return FamilyUnknown
	}
}

type systemEntry struct {
	Family     string   `yaml:"family"`
	Satellite  bool     `yaml:"satellite"`
	Legacy     bool     `yaml:"legacy"`
	Properties []string `yaml:"properties"`
}

type systemInfo struct {
	family    Family
	satellite bool
	legacy    bool
	props     []dvb.Command
}

var systems map[dvb.DeliverySystem]systemInfo

func init() {
	var err error
	if systems, err = loadSystems(delsysYAML); err != nil {
		panic(fmt.Sprintf("catalog: delsys.yaml: %v", err))
	}
	if labels, err = loadLabels(labelsYAML); err != nil {
		panic(fmt.Sprintf("catalog: labels.yaml: %v", err))
	}
}

func parseFamily(s string) (Family, error) {
	switch s {
	case "":
		return FamilyUnknown, nil
	case "QAM":
		return FamilyQAM, nil
	case "QPSK":
		return FamilyQPSK, nil
	case "OFDM":
		return FamilyOFDM, nil
	case "ATSC":
		return FamilyATSC, nil
	default:
		return FamilyUnknown, fmt.Errorf("unknown family %q", s)
	}
}

func loadSystems(data []byte) (map[dvb.DeliverySystem]systemInfo, error) {
	var doc struct {
		Systems map[string]systemEntry `yaml:"systems"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	out := make(map[dvb.DeliverySystem]systemInfo, len(doc.Systems))
	for name, e := range doc.Systems {
		sys, err := dvb.ParseDeliverySystem(name)
		if err != nil {
			return nil, err
		}
		fam, err := parseFamily(e.Family)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		info := systemInfo{family: fam, satellite: e.Satellite, legacy: e.Legacy}
		for _, p := range e.Properties {
			cmd, err := dvb.ParseCommand(p)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			if slices.Contains(info.props, cmd) {
				return nil, fmt.Errorf("%s: duplicate property %s", name, cmd)
			}
			info.props = append(info.props, cmd)
		}
		out[sys] = info
	}
	return out, nil
}

// Properties returns the property commands of sys, in table order. The
// result is a fresh slice; it is empty for systems without a table entry.
func Properties(sys dvb.DeliverySystem) []dvb.Command {
	return slices.Clone(systems[sys].props)
}

// Known reports whether sys has a property list.
func Known(sys dvb.DeliverySystem) bool {
	_, ok := systems[sys]
	return ok
}

// FamilyOf returns the legacy modulation family of sys.
func FamilyOf(sys dvb.DeliverySystem) Family {
	return systems[sys].family
}

// IsSatellite reports whether sys is received through an LNB and needs
// satellite equipment control.
func IsSatellite(sys dvb.DeliverySystem) bool {
	return systems[sys].satellite
}

// IsLegacySystem reports whether sys is one of the base systems a legacy
// API can express directly (DVB-T, DVB-C annex A, DVB-S, ATSC).
func IsLegacySystem(sys dvb.DeliverySystem) bool {
	return systems[sys].legacy
}
