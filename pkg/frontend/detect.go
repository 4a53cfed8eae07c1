package frontend

import (
	"fmt"

	"github.com/dvbfe/dvbfe-go/pkg/dvb"
	"github.com/dvbfe/dvbfe-go/pkg/version"
)

// generation is the outcome of protocol detection.
type generation struct {
	version version.API
	current dvb.DeliverySystem
	legacy  bool
}

// detectGeneration asks the device for its API version and current
// delivery system. Devices that do not answer are treated as API 3.0
// with no current system.
func detectGeneration(dev dvb.Device, forceLegacy bool) generation {
	props := []dvb.Property{
		{Cmd: dvb.CmdAPIVersion},
		{Cmd: dvb.CmdDeliverySystem},
	}
	if err := dev.GetProperties(props); err != nil {
		props[0].Data = uint32(version.V3)
		props[1].Data = uint32(dvb.SysUndefined)
	}

	g := generation{
		version: version.API(props[0].Data),
		current: dvb.DeliverySystem(props[1].Data),
	}
	if !g.version.AtLeast(version.V5) {
		forceLegacy = true
	}
	g.legacy = forceLegacy || !g.version.AtLeast(version.V5_5)
	return g
}

// legacySystems derives the delivery systems of a device that can only
// describe itself through the legacy info report. The second return value
// is the system to activate.
func legacySystems(fe dvb.FEType, caps dvb.Caps, v version.API) ([]dvb.DeliverySystem, dvb.DeliverySystem) {
	modern := v.AtLeast(version.V5)

	var systems []dvb.DeliverySystem
	switch fe {
	case dvb.FETypeQPSK:
		systems = append(systems, dvb.SysDVBS)
		if modern && caps.Has(dvb.CapsCan2GModulation) {
			systems = append(systems, dvb.SysDVBS2)
		}
		if modern && caps.Has(dvb.CapsCanTurboFEC) {
			systems = append(systems, dvb.SysTurbo)
		}
		return systems, dvb.SysDVBS

	case dvb.FETypeQAM:
		return []dvb.DeliverySystem{dvb.SysDVBCAnnexA}, dvb.SysDVBCAnnexA

	case dvb.FETypeOFDM:
		systems = append(systems, dvb.SysDVBT)
		if modern && caps.Has(dvb.CapsCan2GModulation) {
			systems = append(systems, dvb.SysDVBT2)
		}
		return systems, dvb.SysDVBT

	case dvb.FETypeATSC:
		if caps&(dvb.CapsCan8VSB|dvb.CapsCan16VSB) != 0 {
			systems = append(systems, dvb.SysATSC)
		}
		if caps&(dvb.CapsCanQAM64|dvb.CapsCanQAM256|dvb.CapsCanQAMAuto) != 0 {
			systems = append(systems, dvb.SysDVBCAnnexB)
		}
		if len(systems) == 0 {
			return nil, dvb.SysUndefined
		}
		return systems, systems[0]

	default:
		return nil, dvb.SysUndefined
	}
}

// enumerate fills the supported systems and resolves the system to
// activate.
func enumerate(dev dvb.Device, info dvb.FrontendInfo, g generation) ([]dvb.DeliverySystem, dvb.DeliverySystem, error) {
	if g.legacy {
		systems, current := legacySystems(info.Type, info.Caps, g.version)
		if len(systems) == 0 {
			return nil, dvb.SysUndefined, dvb.NewError(dvb.KindEnumeration, "legacy info",
				fmt.Errorf("delivery system not detected for %v frontend", info.Type))
		}
		return systems, current, nil
	}

	systems, err := dev.EnumDeliverySystems()
	if err != nil {
		return nil, dvb.SysUndefined, dvb.NewError(dvb.KindEnumeration, "DTV_ENUM_DELSYS", err)
	}
	if len(systems) == 0 {
		return nil, dvb.SysUndefined, dvb.NewError(dvb.KindEnumeration, "DTV_ENUM_DELSYS",
			fmt.Errorf("device reported no delivery system"))
	}

	current := g.current
	if current == dvb.SysUndefined {
		current = systems[0]
	}
	return systems, current, nil
}
