package frontend

import (
	"github.com/dvbfe/dvbfe-go/pkg/catalog"
	"github.com/dvbfe/dvbfe-go/pkg/dvb"
)

// MaxProperties is the capacity of a Store. The longest delivery system
// list plus the delivery system entry and the tune marker fit.
const MaxProperties = 64

// Store is the property list of a session: the commands of the active
// delivery system followed by DTV_DELIVERY_SYSTEM. Commands are unique;
// lookups scan in order.
type Store struct {
	props [MaxProperties]dvb.Property
	n     int
}

// reset rebuilds the list for sys with zero values, ending with the
// delivery system itself.
func (s *Store) reset(sys dvb.DeliverySystem) {
	s.n = 0
	for _, cmd := range catalog.Properties(sys) {
		s.props[s.n] = dvb.Property{Cmd: cmd}
		s.n++
	}
	s.props[s.n] = dvb.Property{Cmd: dvb.CmdDeliverySystem, Data: uint32(sys)}
	s.n++
}

// Len returns the number of entries.
func (s *Store) Len() int { return s.n }

// Properties returns a copy of the entries in order.
func (s *Store) Properties() []dvb.Property {
	out := make([]dvb.Property, s.n)
	copy(out, s.props[:s.n])
	return out
}

// Get returns the value stored for cmd.
func (s *Store) Get(cmd dvb.Command) (uint32, bool) {
	for i := range s.n {
		if s.props[i].Cmd == cmd {
			return s.props[i].Data, true
		}
	}
	return 0, false
}

// Set replaces the value of cmd. It reports false when cmd is not listed.
func (s *Store) Set(cmd dvb.Command, v uint32) bool {
	for i := range s.n {
		if s.props[i].Cmd == cmd {
			s.props[i].Data = v
			return true
		}
	}
	return false
}

// request copies the standard-range entries for a device call. User
// commands stay local.
func (s *Store) request(tune bool) []dvb.Property {
	out := make([]dvb.Property, 0, s.n+1)
	for _, p := range s.props[:s.n] {
		if p.Cmd.IsStandard() {
			out = append(out, p)
		}
	}
	if tune {
		out = append(out, dvb.Property{Cmd: dvb.CmdTune})
	}
	return out
}

// update copies device replies back into matching entries.
func (s *Store) update(props []dvb.Property) {
	for _, p := range props {
		if p.Cmd == dvb.CmdTune {
			continue
		}
		s.Set(p.Cmd, p.Data)
	}
}
