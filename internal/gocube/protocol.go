// Package gocube links a GoCube smart cube over BLE and turns its rotation
// notifications into nxcube moves.
package gocube

import (
	"errors"
	"fmt"
)

// GoCube BLE service and characteristic UUIDs (Nordic UART layout).
const (
	ServiceUUID = "6e400001-b5a3-f393-e0a9-e50e24dcca9e"
	TxCharUUID  = "6e400003-b5a3-f393-e0a9-e50e24dcca9e" // notify
	RxCharUUID  = "6e400002-b5a3-f393-e0a9-e50e24dcca9e" // write
)

// Message types sent by the cube.
const (
	MsgTypeRotation     byte = 0x01
	MsgTypeState        byte = 0x02
	MsgTypeOrientation  byte = 0x03
	MsgTypeBattery      byte = 0x05
	MsgTypeOfflineStats byte = 0x07
	MsgTypeCubeType     byte = 0x08
)

// Commands written to the cube.
const (
	CmdRequestBattery     byte = 0x32
	CmdRequestState       byte = 0x33
	CmdResetSolved        byte = 0x35
	CmdDisableOrientation byte = 0x37
	CmdFlashBacklight     byte = 0x41
)

const (
	framePrefix  byte = 0x2A // '*'
	frameSuffix1 byte = 0x0D
	frameSuffix2 byte = 0x0A
)

var (
	ErrInvalidPrefix   = errors.New("gocube: invalid message prefix")
	ErrInvalidSuffix   = errors.New("gocube: invalid message suffix")
	ErrInvalidChecksum = errors.New("gocube: invalid checksum")
	ErrMessageTooShort = errors.New("gocube: message too short")
	ErrInvalidLength   = errors.New("gocube: invalid message length")
	ErrInvalidPayload  = errors.New("gocube: invalid payload")
)

// Message is one framed notification from the cube.
type Message struct {
	Type    byte
	Payload []byte
}

// ParseMessage parses a raw BLE notification.
//
// Frame: [0x2A] [length] [type] [payload...] [checksum] [0x0D 0x0A], where
// length counts everything after itself and the checksum is the byte sum of
// all bytes before it.
func ParseMessage(data []byte) (*Message, error) {
	if len(data) < 5 {
		return nil, ErrMessageTooShort
	}
	if data[0] != framePrefix {
		return nil, ErrInvalidPrefix
	}

	length := int(data[1])
	total := 2 + length
	if len(data) < total {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrInvalidLength, total, len(data))
	}

	sumAt := length - 1
	if sumAt < 3 {
		return nil, ErrMessageTooShort
	}
	if data[sumAt+1] != frameSuffix1 || data[sumAt+2] != frameSuffix2 {
		return nil, ErrInvalidSuffix
	}

	var sum byte
	for _, b := range data[:sumAt] {
		sum += b
	}
	if sum != data[sumAt] {
		return nil, fmt.Errorf("%w: frame says 0x%02X, computed 0x%02X", ErrInvalidChecksum, data[sumAt], sum)
	}

	payload := make([]byte, sumAt-3)
	copy(payload, data[3:sumAt])
	return &Message{Type: data[2], Payload: payload}, nil
}

// BuildCommand frames a payload-less command for the RX characteristic.
func BuildCommand(cmd byte) []byte {
	const length = 0x01
	return []byte{framePrefix, length, cmd, framePrefix + length + cmd, frameSuffix1, frameSuffix2}
}

// MessageTypeName returns a short name for a message type.
func MessageTypeName(t byte) string {
	switch t {
	case MsgTypeRotation:
		return "rotation"
	case MsgTypeState:
		return "state"
	case MsgTypeOrientation:
		return "orientation"
	case MsgTypeBattery:
		return "battery"
	case MsgTypeOfflineStats:
		return "offline_stats"
	case MsgTypeCubeType:
		return "cube_type"
	default:
		return fmt.Sprintf("unknown_0x%02X", t)
	}
}
