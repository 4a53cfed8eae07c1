package frontend

import (
	"fmt"

	"github.com/dvbfe/dvbfe-go/pkg/catalog"
	"github.com/dvbfe/dvbfe-go/pkg/dvb"
	"github.com/dvbfe/dvbfe-go/pkg/log"
)

// SetDeliverySystem makes sys the active delivery system and rebuilds the
// property store for it with zero values.
//
// Leaving a satellite system for a terrestrial or cable one switches the
// LNB supply off first. Legacy sessions cannot change standard and fail
// with dvb.ErrUnsupportedTransition, keeping the previous system.
func (f *Frontend) SetDeliverySystem(sys dvb.DeliverySystem) error {
	if !catalog.Known(sys) {
		return f.fail("set delivery system", dvb.NewError(dvb.KindUnsupportedTransition,
			"set delivery system", fmt.Errorf("%v has no property list", sys)))
	}

	prev := f.current
	if sys != prev {
		if catalog.IsSatellite(prev) && !catalog.IsSatellite(sys) {
			_ = f.sec.SetVoltage(false, false)
		}
		if f.legacy {
			return dvb.NewError(dvb.KindUnsupportedTransition, "set delivery system",
				fmt.Errorf("cannot switch %v to %v with the legacy API", prev, sys))
		}
		props := []dvb.Property{{Cmd: dvb.CmdDeliverySystem, Data: uint32(sys)}}
		if err := f.dev.SetProperties(props); err != nil {
			return f.fail("set delivery system", err)
		}
	}

	f.store.reset(sys)
	f.current = sys
	if sys != prev {
		f.state(log.StateEntityDeliverySystem, prev.String(), sys.String(), "")
	}
	return nil
}

// legacyLayout returns the legacy struct layout of the active system.
func (f *Frontend) legacyLayout(op string) ([]legacyField, error) {
	fields, ok := legacyFields[catalog.FamilyOf(f.current)]
	if !ok {
		return nil, f.fail(op, dvb.NewError(dvb.KindUnsupportedTransition, op,
			fmt.Errorf("%w: %v", dvb.ErrUnknownFamily, f.current)))
	}
	return fields, nil
}

// GetParameters reads the tuning parameters of the active system from the
// device into the store. On satellite systems the frequency read back is
// converted from the LNB intermediate frequency.
func (f *Frontend) GetParameters() error {
	if f.legacy {
		fields, err := f.legacyLayout("FE_GET_FRONTEND")
		if err != nil {
			return err
		}
		p, err := f.dev.GetFrontend()
		if err != nil {
			return f.fail("FE_GET_FRONTEND", err)
		}
		toStore(fields, &p, &f.store)
	} else {
		req := f.store.request(false)
		if err := f.dev.GetProperties(req); err != nil {
			return f.fail("FE_GET_PROPERTY", err)
		}
		f.store.update(req)
	}

	if f.verbose > 0 {
		f.dump("got parameters")
	}

	if f.resolver != nil && catalog.IsSatellite(f.current) {
		return f.resolver.FromIF(f)
	}
	return nil
}

// SetParameters tunes the device to the stored parameters. On satellite
// systems the LNB is set up and the intermediate frequency is sent; the
// stored frequency is restored afterwards whatever the outcome.
func (f *Frontend) SetParameters() error {
	if f.resolver != nil && catalog.IsSatellite(f.current) {
		freq, _ := f.store.Get(dvb.CmdFrequency)
		defer f.store.Set(dvb.CmdFrequency, freq)

		if err := f.resolver.ToIF(f); err != nil {
			return f.fail("satellite setup", err)
		}
	}

	if f.legacy {
		fields, err := f.legacyLayout("FE_SET_FRONTEND")
		if err != nil {
			return err
		}
		if err := f.dev.SetFrontend(fromStore(fields, &f.store)); err != nil {
			if f.verbose > 0 {
				f.dump("parameters")
			}
			return f.fail("FE_SET_FRONTEND", err)
		}
		return nil
	}

	if err := f.dev.SetProperties(f.store.request(true)); err != nil {
		if f.verbose > 0 {
			f.dump("parameters")
		}
		return f.fail("FE_SET_PROPERTY", err)
	}
	return nil
}
