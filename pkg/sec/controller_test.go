package sec

import (
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dvbfe/dvbfe-go/pkg/dvb"
	"github.com/dvbfe/dvbfe-go/pkg/dvb/mocks"
)

func TestSetVoltage(t *testing.T) {
	tests := []struct {
		on, v18 bool
		want    dvb.Voltage
	}{
		{false, false, dvb.VoltageOff},
		{false, true, dvb.VoltageOff},
		{true, false, dvb.Voltage13},
		{true, true, dvb.Voltage18},
	}

	for _, tt := range tests {
		dev := mocks.NewMockDevice(t)
		dev.EXPECT().SetVoltage(tt.want).Return(nil).Once()

		c := NewController(dev, nil, 1)
		if err := c.SetVoltage(tt.on, tt.v18); err != nil {
			t.Errorf("SetVoltage(%v, %v): %v", tt.on, tt.v18, err)
		}
	}
}

func TestSetVoltageFailure(t *testing.T) {
	dev := mocks.NewMockDevice(t)
	dev.EXPECT().SetVoltage(dvb.Voltage18).Return(syscall.EIO).Once()

	err := NewController(dev, nil, 0).SetVoltage(true, true)
	assert.ErrorIs(t, err, syscall.EIO)
}

func TestSetToneAndHighVoltage(t *testing.T) {
	dev := mocks.NewMockDevice(t)
	dev.EXPECT().SetTone(dvb.ToneOn).Return(nil).Once()
	dev.EXPECT().EnableHighLNBVoltage(true).Return(nil).Once()
	dev.EXPECT().EnableHighLNBVoltage(false).Return(nil).Once()

	c := NewController(dev, nil, 0)
	require.NoError(t, c.SetTone(dvb.ToneOn))
	require.NoError(t, c.SetHighLNBVoltage(true))
	require.NoError(t, c.SetHighLNBVoltage(false))
}

func TestSendBurst(t *testing.T) {
	dev := mocks.NewMockDevice(t)
	dev.EXPECT().SendBurst(dvb.MiniA).Return(nil).Once()
	dev.EXPECT().SendBurst(dvb.MiniB).Return(nil).Once()

	c := NewController(dev, nil, 0)
	require.NoError(t, c.SendBurst(false))
	require.NoError(t, c.SendBurst(true))
}

func TestSendCommand(t *testing.T) {
	dev := mocks.NewMockDevice(t)
	dev.EXPECT().SendMasterCmd(dvb.DiseqcMasterCmd{
		Msg:    [6]uint8{0xe0, 0x31, 0x6b, 0x02},
		MsgLen: 4,
	}).Return(nil).Once()

	c := NewController(dev, nil, 1)
	require.NoError(t, c.SendCommand([]byte{0xe0, 0x31, 0x6b, 0x02}))
}

func TestSendCommandMaxLength(t *testing.T) {
	dev := mocks.NewMockDevice(t)
	dev.EXPECT().SendMasterCmd(mock.MatchedBy(func(cmd dvb.DiseqcMasterCmd) bool {
		return cmd.MsgLen == 6 && cmd.Msg[5] == 6
	})).Return(nil).Once()

	require.NoError(t, NewController(dev, nil, 0).SendCommand([]byte{1, 2, 3, 4, 5, 6}))
}

func TestSendCommandTooLong(t *testing.T) {
	// No expectations: any device call fails the test.
	dev := mocks.NewMockDevice(t)

	err := NewController(dev, nil, 0).SendCommand([]byte{1, 2, 3, 4, 5, 6, 7})
	require.Error(t, err)
	assert.ErrorIs(t, err, dvb.ErrFraming)
	assert.Equal(t, dvb.KindFraming, dvb.KindOf(err))
	assert.Equal(t, int(syscall.EINVAL), dvb.Code(err))
	dev.AssertNotCalled(t, "SendMasterCmd", mock.Anything)
}

func TestReceiveReplyClampsLength(t *testing.T) {
	dev := mocks.NewMockDevice(t)
	dev.EXPECT().RecvSlaveReply(mock.AnythingOfType("*dvb.DiseqcSlaveReply")).
		Run(func(reply *dvb.DiseqcSlaveReply) {
			assert.Equal(t, uint8(4), reply.MsgLen)
			assert.Equal(t, int32(250), reply.Timeout)
			reply.Msg = [4]uint8{0xe4, 0x10, 0x20, 0x30}
			reply.MsgLen = 3
		}).
		Return(nil).Once()

	got, err := NewController(dev, nil, 1).ReceiveReply(10, 250*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xe4, 0x10, 0x20}, got)
}

func TestReceiveReplyNegativeLength(t *testing.T) {
	dev := mocks.NewMockDevice(t)
	dev.EXPECT().RecvSlaveReply(mock.AnythingOfType("*dvb.DiseqcSlaveReply")).
		Run(func(reply *dvb.DiseqcSlaveReply) {
			assert.Equal(t, uint8(0), reply.MsgLen)
		}).
		Return(nil).Once()

	got, err := NewController(dev, nil, 0).ReceiveReply(-3, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReceiveReplyTimeout(t *testing.T) {
	dev := mocks.NewMockDevice(t)
	dev.EXPECT().RecvSlaveReply(mock.Anything).
		Return(dvb.NewError(dvb.KindDevice, "FE_DISEQC_RECV_SLAVE_REPLY", syscall.ETIMEDOUT)).Once()

	got, err := NewController(dev, nil, 0).ReceiveReply(4, time.Second)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, dvb.ErrDevice)
	assert.Equal(t, int(syscall.ETIMEDOUT), dvb.Code(err))
}

func TestOperationsAreRepeatable(t *testing.T) {
	dev := mocks.NewMockDevice(t)
	dev.EXPECT().SetTone(dvb.ToneOff).Return(nil).Times(3)

	c := NewController(dev, nil, 0)
	for range 3 {
		require.NoError(t, c.SetTone(dvb.ToneOff))
	}
}
