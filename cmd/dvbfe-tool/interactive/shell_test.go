package interactive

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvbfe/dvbfe-go/pkg/dvb"
	"github.com/dvbfe/dvbfe-go/pkg/dvb/dvbsim"
	"github.com/dvbfe/dvbfe-go/pkg/frontend"
)

func newShell(t *testing.T, simCfg dvbsim.Config) (*Shell, *bytes.Buffer, *dvbsim.Device) {
	t.Helper()
	sim := dvbsim.New(simCfg)
	cfg := frontend.DefaultConfig()
	cfg.Logger = slog.New(slog.DiscardHandler)
	fe, err := frontend.New(sim, cfg)
	require.NoError(t, err)

	var buf bytes.Buffer
	return &Shell{fe: fe, out: &buf}, &buf, sim
}

func TestExecInfo(t *testing.T) {
	s, out, _ := newShell(t, dvbsim.DVBT())

	assert.True(t, s.Exec("info"))
	assert.Contains(t, out.String(), "Simulated DVB-T/T2")
	assert.Contains(t, out.String(), "5.5 (property)")
	assert.Contains(t, out.String(), "[DVBT] DVBT2")
}

func TestExecSwitchSystem(t *testing.T) {
	s, out, sim := newShell(t, dvbsim.DVBT())

	s.Exec("sys dvbt2")
	assert.Contains(t, out.String(), "OK")
	assert.Equal(t, dvb.SysDVBT2, sim.State().Current)

	out.Reset()
	s.Exec("sys DVBS")
	assert.Contains(t, out.String(), "Error:")
	assert.Contains(t, out.String(), "(code 22)")

	out.Reset()
	s.Exec("sys NOPE")
	assert.Contains(t, out.String(), "Invalid system")
}

func TestExecSetAndTune(t *testing.T) {
	s, out, sim := newShell(t, dvbsim.DVBT())

	s.Exec("set FREQUENCY 474000000")
	s.Exec("set BANDWIDTH_HZ 8000000")
	s.Exec("tune")
	assert.Equal(t, 3, bytes.Count(out.Bytes(), []byte("OK")))

	st := sim.State()
	assert.Equal(t, 1, st.Tuned)
	assert.Equal(t, uint32(474000000), st.Values[dvb.CmdFrequency])

	out.Reset()
	s.Exec("stats")
	assert.Contains(t, out.String(), "LOCK")
}

func TestExecSetErrors(t *testing.T) {
	s, out, _ := newShell(t, dvbsim.DVBT())

	s.Exec("set FREQUENCY")
	assert.Contains(t, out.String(), "Usage: set")

	out.Reset()
	s.Exec("set MODULATION QAM/512")
	assert.Contains(t, out.String(), "Invalid value")

	out.Reset()
	s.Exec("set SYMBOL_RATE 6900000")
	assert.Contains(t, out.String(), "Error:")
}

func TestExecGet(t *testing.T) {
	s, out, _ := newShell(t, dvbsim.DVBT())

	s.Exec("get FREQUENCY VOLTAGE")
	assert.Contains(t, out.String(), "DTV_FREQUENCY = 0")
	assert.Contains(t, out.String(), "DTV_VOLTAGE: not in the DVBT property list")

	out.Reset()
	s.Exec("props")
	assert.Contains(t, out.String(), "DVBT properties:")
	assert.Contains(t, out.String(), "DTV_BANDWIDTH_HZ")
}

func TestExecSEC(t *testing.T) {
	s, out, sim := newShell(t, dvbsim.DVBS())
	sim.QueueReply([]byte{0xe4})

	for _, line := range []string{
		"voltage 18",
		"tone on",
		"highvolt on",
		"burst b",
		"diseqc e0 10 38 f3",
	} {
		out.Reset()
		s.Exec(line)
		assert.Contains(t, out.String(), "OK", line)
	}

	out.Reset()
	s.Exec("reply 4 50")
	assert.Contains(t, out.String(), "Reply: e4")

	st := sim.State()
	assert.Equal(t, dvb.Voltage18, st.Voltage)
	assert.Equal(t, dvb.ToneOn, st.Tone)
	assert.True(t, st.HighVoltage)
	assert.Equal(t, []dvb.MiniCmd{dvb.MiniB}, st.Bursts)
	assert.Equal(t, [][]byte{{0xe0, 0x10, 0x38, 0xf3}}, st.Commands)
}

func TestExecSECUsage(t *testing.T) {
	s, out, _ := newShell(t, dvbsim.DVBS())

	for _, tc := range []struct{ line, want string }{
		{"voltage 24", "Usage: voltage"},
		{"tone maybe", "Usage: tone"},
		{"highvolt", "Usage: highvolt"},
		{"burst c", "Usage: burst"},
		{"diseqc", "Usage: diseqc"},
		{"diseqc zz", "Invalid message"},
		{"reply x", "Invalid length"},
		{"diseqc 00 11 22 33 44 55 66", "Error:"},
	} {
		out.Reset()
		s.Exec(tc.line)
		assert.Contains(t, out.String(), tc.want, tc.line)
	}
}

func TestExecQuitAndUnknown(t *testing.T) {
	s, out, _ := newShell(t, dvbsim.DVBT())

	assert.True(t, s.Exec(""))
	assert.True(t, s.Exec("frobnicate"))
	assert.Contains(t, out.String(), "Unknown command: frobnicate")
	assert.False(t, s.Exec("quit"))
}

func TestParseAssignment(t *testing.T) {
	cmd, v, err := ParseAssignment("DTV_MODULATION=qam/64")
	require.NoError(t, err)
	assert.Equal(t, dvb.CmdModulation, cmd)
	assert.Equal(t, uint32(3), v)

	cmd, v, err = ParseAssignment("FREQUENCY=0x1c40aa80")
	require.NoError(t, err)
	assert.Equal(t, dvb.CmdFrequency, cmd)
	assert.Equal(t, uint32(474000000), v)

	for _, bad := range []string{"FREQUENCY", "NOPE=1", "MODULATION=QAM/512"} {
		_, _, err := ParseAssignment(bad)
		assert.Error(t, err, bad)
	}
}
