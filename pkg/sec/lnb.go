package sec

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dvbfe/dvbfe-go/pkg/dvb"
)

//go:embed lnb.yaml
var lnbYAML []byte

// Range is a received frequency range in MHz.
type Range struct {
	Low, High uint32
}

// LNB describes a low-noise block downconverter. Frequencies are in MHz.
type LNB struct {
	Alias string
	Name  string

	// LowFreq is the local oscillator of the low band.
	LowFreq uint32
	// HighFreq is the second local oscillator, 0 for single-LO LNBs.
	HighFreq uint32
	// RangeSwitch is the frequency from which the high band is used.
	RangeSwitch uint32
	// Multipoint LNBs select the oscillator by polarization, not band.
	Multipoint bool

	Ranges []Range
}

type lnbEntry struct {
	Alias       string     `yaml:"alias"`
	Name        string     `yaml:"name"`
	LowFreq     uint32     `yaml:"lowfreq"`
	HighFreq    uint32     `yaml:"highfreq"`
	RangeSwitch uint32     `yaml:"rangeswitch"`
	Multipoint  bool       `yaml:"multipoint"`
	Ranges      [][]uint32 `yaml:"ranges"`
}

var lnbs []LNB

func init() {
	var err error
	if lnbs, err = loadLNBs(lnbYAML); err != nil {
		panic(fmt.Sprintf("sec: lnb.yaml: %v", err))
	}
}

func loadLNBs(data []byte) ([]LNB, error) {
	var doc struct {
		LNBs []lnbEntry `yaml:"lnbs"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	out := make([]LNB, 0, len(doc.LNBs))
	for _, e := range doc.LNBs {
		if e.Alias == "" || e.LowFreq == 0 {
			return nil, fmt.Errorf("entry %q: alias and lowfreq are required", e.Name)
		}
		for _, l := range out {
			if strings.EqualFold(l.Alias, e.Alias) {
				return nil, fmt.Errorf("duplicate alias %s", e.Alias)
			}
		}
		if e.RangeSwitch != 0 && e.HighFreq == 0 {
			return nil, fmt.Errorf("%s: rangeswitch without highfreq", e.Alias)
		}

		l := LNB{
			Alias:       e.Alias,
			Name:        e.Name,
			LowFreq:     e.LowFreq,
			HighFreq:    e.HighFreq,
			RangeSwitch: e.RangeSwitch,
			Multipoint:  e.Multipoint,
		}
		for _, r := range e.Ranges {
			if len(r) != 2 || r[0] > r[1] {
				return nil, fmt.Errorf("%s: bad range %v", e.Alias, r)
			}
			l.Ranges = append(l.Ranges, Range{Low: r[0], High: r[1]})
		}
		out = append(out, l)
	}
	return out, nil
}

// LNBs returns the catalog in declaration order.
func LNBs() []LNB {
	return slices.Clone(lnbs)
}

// LookupLNB finds a catalog entry by alias, ignoring case.
func LookupLNB(alias string) (LNB, error) {
	for _, l := range lnbs {
		if strings.EqualFold(l.Alias, alias) {
			return l, nil
		}
	}
	return LNB{}, dvb.NewError(dvb.KindLookupMiss, "lnb", fmt.Errorf("unknown LNB %q", alias))
}

// DualBand reports whether the LNB switches oscillators by frequency.
func (l LNB) DualBand() bool {
	return l.HighFreq != 0 && l.RangeSwitch != 0
}

// InRange reports whether freq (kHz) lies within one of the LNB ranges.
// An LNB without ranges accepts any frequency.
func (l LNB) InRange(freq uint32) bool {
	if len(l.Ranges) == 0 {
		return true
	}
	for _, r := range l.Ranges {
		if freq >= r.Low*1000 && freq <= r.High*1000 {
			return true
		}
	}
	return false
}

// oscillator returns the local oscillator in kHz for a logical frequency
// in kHz and a polarization, and whether the high band was selected.
func (l LNB) oscillator(freq, pol uint32) (lo uint32, high bool) {
	switch {
	case l.Multipoint && l.HighFreq != 0:
		high = pol == dvb.PolarizationH || pol == dvb.PolarizationL
	case l.DualBand():
		high = freq >= l.RangeSwitch*1000
	}
	if high {
		return l.HighFreq * 1000, true
	}
	return l.LowFreq * 1000, false
}

// aboveBand reports whether the low band oscillator sits above every
// received range, as on C band LNBs.
func (l LNB) aboveBand() bool {
	if len(l.Ranges) == 0 {
		return false
	}
	for _, r := range l.Ranges {
		if r.High >= l.LowFreq {
			return false
		}
	}
	return true
}
