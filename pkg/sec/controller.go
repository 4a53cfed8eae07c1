// Package sec implements the satellite equipment control protocol: LNB
// supply voltage, the 22 kHz tone, mini DiSEqC bursts and DiSEqC
// master/slave message exchange. It also carries the LNB catalog and the
// resolver that converts between logical satellite frequencies and the
// LNB intermediate frequency a tuner is programmed with.
//
// Every Controller call maps to exactly one device call. Calls hold no
// state, are safe to repeat, and are never retried; failures are logged
// and returned.
package sec

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dvbfe/dvbfe-go/pkg/dvb"
)

// Controller issues satellite control calls on a frontend device.
type Controller struct {
	dev     dvb.Device
	logger  *slog.Logger
	verbose int
}

// NewController returns a controller for dev. A nil logger discards output;
// commands are logged only when verbose > 0.
func NewController(dev dvb.Device, logger *slog.Logger, verbose int) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		dev:     dev,
		logger:  logger.With("component", "sec"),
		verbose: verbose,
	}
}

func (c *Controller) debug(msg string, args ...any) {
	if c.verbose > 0 {
		c.logger.Info(msg, args...)
	}
}

func (c *Controller) fail(op string, err error) error {
	c.logger.Error("DiSEqC call failed", "op", op, "error", err)
	return err
}

// SetVoltage switches the LNB supply: off, or on at 18 V (v18) or 13 V.
func (c *Controller) SetVoltage(on, v18 bool) error {
	v := dvb.VoltageOff
	if on {
		v = dvb.Voltage13
		if v18 {
			v = dvb.Voltage18
		}
	}
	c.debug("DiSEqC voltage", "voltage", v.String())

	if err := c.dev.SetVoltage(v); err != nil {
		return c.fail("FE_SET_VOLTAGE", err)
	}
	return nil
}

// SetTone switches the 22 kHz continuous tone.
func (c *Controller) SetTone(t dvb.Tone) error {
	c.debug("DiSEqC tone", "tone", t.String())

	if err := c.dev.SetTone(t); err != nil {
		return c.fail("FE_SET_TONE", err)
	}
	return nil
}

// SetHighLNBVoltage enables the +1 V compensation for long cable runs.
func (c *Controller) SetHighLNBVoltage(on bool) error {
	c.debug("DiSEqC high LNB voltage", "on", on)

	if err := c.dev.EnableHighLNBVoltage(on); err != nil {
		return c.fail("FE_ENABLE_HIGH_LNB_VOLTAGE", err)
	}
	return nil
}

// SendBurst sends a mini DiSEqC tone burst selecting satellite B (miniB)
// or satellite A.
func (c *Controller) SendBurst(miniB bool) error {
	mini := dvb.MiniA
	name := "SEC_MINI_A"
	if miniB {
		mini, name = dvb.MiniB, "SEC_MINI_B"
	}
	c.debug("DiSEqC burst", "burst", name)

	if err := c.dev.SendBurst(mini); err != nil {
		return c.fail("FE_DISEQC_SEND_BURST", err)
	}
	return nil
}

// SendCommand sends a DiSEqC master command of at most
// dvb.MaxMasterCmdLen bytes. Longer messages fail with a framing error
// before the device is touched.
func (c *Controller) SendCommand(msg []byte) error {
	if len(msg) > dvb.MaxMasterCmdLen {
		err := dvb.NewError(dvb.KindFraming, "FE_DISEQC_SEND_MASTER_CMD",
			fmt.Errorf("%w: %d bytes, limit %d", dvb.ErrFraming, len(msg), dvb.MaxMasterCmdLen))
		return c.fail("FE_DISEQC_SEND_MASTER_CMD", err)
	}

	var cmd dvb.DiseqcMasterCmd
	copy(cmd.Msg[:], msg)
	cmd.MsgLen = uint8(len(msg))
	c.debug("DiSEqC command", "msg", fmt.Sprintf("% x", msg))

	if err := c.dev.SendMasterCmd(cmd); err != nil {
		return c.fail("FE_DISEQC_SEND_MASTER_CMD", err)
	}
	return nil
}

// ReceiveReply waits up to timeout for a DiSEqC slave reply of at most
// maxLen bytes. maxLen is clamped to dvb.MaxSlaveReplyLen. The returned
// payload has the length the device reported.
func (c *Controller) ReceiveReply(maxLen int, timeout time.Duration) ([]byte, error) {
	maxLen = min(max(maxLen, 0), dvb.MaxSlaveReplyLen)

	reply := dvb.DiseqcSlaveReply{
		MsgLen:  uint8(maxLen),
		Timeout: int32(timeout.Milliseconds()),
	}
	c.debug("DiSEqC FE_DISEQC_RECV_SLAVE_REPLY", "len", maxLen, "timeout", timeout)

	if err := c.dev.RecvSlaveReply(&reply); err != nil {
		return nil, c.fail("FE_DISEQC_RECV_SLAVE_REPLY", err)
	}

	n := min(int(reply.MsgLen), dvb.MaxSlaveReplyLen)
	out := make([]byte, n)
	copy(out, reply.Msg[:n])
	return out, nil
}
