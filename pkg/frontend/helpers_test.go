package frontend

import (
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dvbfe/dvbfe-go/pkg/dvb"
	"github.com/dvbfe/dvbfe-go/pkg/dvb/dvbsim"
	"github.com/dvbfe/dvbfe-go/pkg/dvb/mocks"
	"github.com/dvbfe/dvbfe-go/pkg/log"
)

// openSim starts a session on a simulated device.
func openSim(t *testing.T, simCfg dvbsim.Config, cfg Config) (*Frontend, *dvbsim.Device) {
	t.Helper()
	sim := dvbsim.New(simCfg)
	f, err := New(sim, cfg)
	require.NoError(t, err)
	return f, sim
}

func discard() *slog.Logger { return slog.New(slog.DiscardHandler) }

func legacyDVBT() dvbsim.Config {
	c := dvbsim.DVBT()
	c.APIVersion = 0x0300
	return c
}

// expectOpen sets up the calls a property-protocol open makes.
func expectOpen(dev *mocks.MockDevice, fe dvb.FEType, current dvb.DeliverySystem, systems ...dvb.DeliverySystem) {
	dev.EXPECT().GetInfo().Return(dvb.FrontendInfo{Type: fe}, nil).Once()
	dev.EXPECT().GetProperties(mock.MatchedBy(func(props []dvb.Property) bool {
		return len(props) == 2 && props[0].Cmd == dvb.CmdAPIVersion
	})).Run(func(props []dvb.Property) {
		props[0].Data = 0x0505
		props[1].Data = uint32(current)
	}).Return(nil).Once()
	dev.EXPECT().EnumDeliverySystems().Return(systems, nil).Once()
}

// deliverySystemSet matches a set-properties call switching to sys.
func deliverySystemSet(sys dvb.DeliverySystem) interface{} {
	return mock.MatchedBy(func(props []dvb.Property) bool {
		return len(props) == 1 && props[0].Cmd == dvb.CmdDeliverySystem && props[0].Data == uint32(sys)
	})
}

// recorder collects trace events.
type recorder struct {
	mu     sync.Mutex
	events []log.Event
}

func (r *recorder) Log(e log.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) states() []log.StateChangeEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []log.StateChangeEvent
	for _, e := range r.events {
		if e.StateChange != nil {
			out = append(out, *e.StateChange)
		}
	}
	return out
}

func (r *recorder) count(c log.Category) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Category == c {
			n++
		}
	}
	return n
}
