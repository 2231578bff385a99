package gocube

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/nxcube"
)

func newTestClient() *Client {
	return &Client{logger: log.New(io.Discard), battery: -1}
}

func TestHandleNotification(t *testing.T) {
	c := newTestClient()

	var (
		moves []nxcube.Move
		types []byte
	)
	c.OnMoves(func(m []nxcube.Move) { moves = append(moves, m...) })
	c.OnMessage(func(msg *Message) { types = append(types, msg.Type) })

	c.handleNotification(frame(MsgTypeRotation, 0x08, 0x00, 0x05, 0x03))
	c.handleNotification(frame(MsgTypeBattery, 64))
	c.handleNotification(frame(MsgTypeOrientation, 0x01))

	assert.Equal(t, "R U'", nxcube.FormatMoves(moves))
	assert.Equal(t, []byte{MsgTypeRotation, MsgTypeBattery, MsgTypeOrientation}, types)
	assert.Equal(t, 64, c.Battery())
}

func TestHandleNotificationDropsBadFrames(t *testing.T) {
	c := newTestClient()

	calls := 0
	c.OnMessage(func(*Message) { calls++ })

	bad := frame(MsgTypeBattery, 64)
	bad[len(bad)-3]++
	c.handleNotification(bad)

	require.Zero(t, calls)
	assert.Equal(t, -1, c.Battery())
}
