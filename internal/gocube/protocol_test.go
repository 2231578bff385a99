package gocube

import (
	"testing"

	"github.com/SeamusWaldron/nxcube"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// frame builds a well-formed notification around typ and payload.
func frame(typ byte, payload ...byte) []byte {
	body := append([]byte{typ}, payload...)
	data := append([]byte{framePrefix, byte(len(body) + 3)}, body...)
	var sum byte
	for _, b := range data {
		sum += b
	}
	return append(data, sum, frameSuffix1, frameSuffix2)
}

func TestParseMessage(t *testing.T) {
	msg, err := ParseMessage(frame(MsgTypeRotation, 0x08, 0x00, 0x03, 0x06))
	require.NoError(t, err)
	assert.Equal(t, MsgTypeRotation, msg.Type)
	assert.Equal(t, []byte{0x08, 0x00, 0x03, 0x06}, msg.Payload)
	assert.Equal(t, "rotation", MessageTypeName(msg.Type))
}

func TestParseMessageErrors(t *testing.T) {
	good := frame(MsgTypeBattery, 0x50)

	badPrefix := append([]byte{}, good...)
	badPrefix[0] = 0x00

	badSum := append([]byte{}, good...)
	badSum[len(badSum)-3]++

	badSuffix := append([]byte{}, good...)
	badSuffix[len(badSuffix)-1] = 0x00

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"too short", []byte{framePrefix, 0x01}, ErrMessageTooShort},
		{"prefix", badPrefix, ErrInvalidPrefix},
		{"checksum", badSum, ErrInvalidChecksum},
		{"suffix", badSuffix, ErrInvalidSuffix},
		{"truncated", good[:len(good)-2], ErrInvalidLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMessage(tt.data)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBuildCommand(t *testing.T) {
	cmd := BuildCommand(CmdRequestBattery)
	assert.Equal(t, []byte{0x2A, 0x01, 0x32, 0x5D, 0x0D, 0x0A}, cmd)
}

func TestDecodeRotation(t *testing.T) {
	// red clockwise, white counter-clockwise, blue clockwise
	rots, err := DecodeRotation([]byte{0x08, 0x00, 0x05, 0x03, 0x00, 0x06})
	require.NoError(t, err)
	require.Len(t, rots, 3)

	assert.Equal(t, nxcube.Right, rots[0].Side)
	assert.True(t, rots[0].Clockwise)
	assert.Equal(t, nxcube.Up, rots[1].Side)
	assert.False(t, rots[1].Clockwise)
	assert.Equal(t, byte(0x03), rots[1].CenterOrientation)
	assert.Equal(t, nxcube.Back, rots[2].Side)

	assert.Equal(t, "R U' B", nxcube.FormatMoves(RotationsToMoves(rots)))
}

func TestDecodeRotationErrors(t *testing.T) {
	_, err := DecodeRotation([]byte{0x00})
	assert.ErrorIs(t, err, ErrInvalidPayload)

	_, err = DecodeRotation([]byte{0x0C, 0x00})
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestDecodeBattery(t *testing.T) {
	level, err := DecodeBattery([]byte{87})
	require.NoError(t, err)
	assert.Equal(t, 87, level)

	_, err = DecodeBattery(nil)
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestMergeMoves(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"R R", "R2"},
		{"R R R", "R'"},
		{"R R'", ""},
		{"R R R R", ""},
		{"R U U' R", "R2"},
		{"R2 R", "R'"},
		{"R L R", "R L R"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			moves, err := nxcube.ParseMoves(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, nxcube.FormatMoves(MergeMoves(moves)))
		})
	}
}
